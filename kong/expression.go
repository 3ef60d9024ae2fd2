package kong

// Expression grammar, lowest precedence first:
//
//	assign         = logical { "=" logical }
//	logical        = equality { ( "||" | "&&" ) equality }
//	equality       = comparison { ( "==" | "!=" ) comparison }
//	comparison     = addition { ( ">" | ">=" | "<" | "<=" ) addition }
//	addition       = multiplication { ( "+" | "-" ) multiplication }
//	multiplication = unary { ( "*" | "/" | "%" ) unary }
//	unary          = ( "!" | "-" ) unary | primary

// expression parses an expression.
func (p *Parser) expression() (Expr, error) {
	return p.assign()
}

// assign parses = expressions. Assignment folds to the left like every other
// level unless RightAssociativeAssign is set.
func (p *Parser) assign() (Expr, error) {
	left, err := p.logical()
	if err != nil {
		return nil, err
	}

	if p.opts.RightAssociativeAssign {
		if !p.checkOp(OpAssign) {
			return left, nil
		}
		op := p.advance()
		right, err := p.assign()
		if err != nil {
			return nil, err
		}
		return binary(left, op, right), nil
	}

	for p.checkOp(OpAssign) {
		op := p.advance()
		right, err := p.logical()
		if err != nil {
			return nil, err
		}
		left = binary(left, op, right)
	}

	return left, nil
}

// logical parses || and && expressions. Both share one precedence level.
func (p *Parser) logical() (Expr, error) {
	left, err := p.equality()
	if err != nil {
		return nil, err
	}

	for p.checkOp(OpOr, OpAnd) {
		op := p.advance()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		left = binary(left, op, right)
	}

	return left, nil
}

// equality parses == and != expressions.
func (p *Parser) equality() (Expr, error) {
	left, err := p.comparison()
	if err != nil {
		return nil, err
	}

	for p.checkOp(OpEquals, OpNotEquals) {
		op := p.advance()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		left = binary(left, op, right)
	}

	return left, nil
}

// comparison parses <, >, <=, >= expressions.
func (p *Parser) comparison() (Expr, error) {
	left, err := p.addition()
	if err != nil {
		return nil, err
	}

	for p.checkOp(OpGreater, OpGreaterEqual, OpLess, OpLessEqual) {
		op := p.advance()
		right, err := p.addition()
		if err != nil {
			return nil, err
		}
		left = binary(left, op, right)
	}

	return left, nil
}

// addition parses + and - expressions.
func (p *Parser) addition() (Expr, error) {
	left, err := p.multiplication()
	if err != nil {
		return nil, err
	}

	for p.checkOp(OpPlus, OpMinus) {
		op := p.advance()
		right, err := p.multiplication()
		if err != nil {
			return nil, err
		}
		left = binary(left, op, right)
	}

	return left, nil
}

// multiplication parses *, /, % expressions.
func (p *Parser) multiplication() (Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.checkOp(OpMultiply, OpDiv, OpMod) {
		op := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = binary(left, op, right)
	}

	return left, nil
}

// unary parses prefix ! and - expressions.
func (p *Parser) unary() (Expr, error) {
	if p.checkOp(OpNot, OpMinus) {
		op := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{
			Op:    op.Op,
			Right: right,
			Span:  spanOf(op),
		}, nil
	}

	return p.primary()
}

// primary parses literals, names, calls, member access, grouping and
// constructors.
func (p *Parser) primary() (Expr, error) {
	tok := p.peek()

	switch tok.Kind {
	case TokenBool:
		p.advance()
		return &BoolLiteral{Value: tok.Bool, Span: spanOf(tok)}, nil

	case TokenNumber:
		p.advance()
		return &NumberLiteral{Value: tok.Number, Span: spanOf(tok)}, nil

	case TokenString:
		p.advance()
		return &StringLiteral{Value: tok.Text, Span: spanOf(tok)}, nil

	case TokenIdent:
		p.advance()
		if p.check(TokenLeftParen) {
			return p.call(&Ident{Name: tok.Text, Span: spanOf(tok)})
		}
		if !p.match(TokenColon) {
			return &Ident{Name: tok.Text, Span: spanOf(tok)}, nil
		}

		if !p.check(TokenIdent) {
			return nil, p.errorf(ErrExpectedIdentifier, "expected an identifier after '%s:', got %s", tok.Text, p.peek())
		}
		field := p.advance()
		member := &MemberExpr{
			Container: tok.Text,
			Field:     field.Text,
			Span:      spanOf(tok),
		}
		if p.check(TokenLeftParen) {
			return p.call(member)
		}
		return member, nil

	case TokenLeftParen:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRightParen, "to close parenthesized expression"); err != nil {
			return nil, err
		}
		return &ParenExpr{Expr: expr, Span: spanOf(tok)}, nil

	case TokenVec3, TokenVec4:
		return p.construct()

	default:
		return nil, p.errorf(ErrUnexpectedToken, "unexpected token %s in expression", tok)
	}
}

// call parses the argument list of a call on callee.
func (p *Parser) call(callee Expr) (*CallExpr, error) {
	start := p.peek()
	if err := p.expect(TokenLeftParen, "to open call arguments"); err != nil {
		return nil, err
	}

	call := &CallExpr{Callee: callee, Span: callee.Pos()}
	if p.match(TokenRightParen) {
		return call, nil
	}

	for {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)

		if !p.check(TokenComma) {
			break
		}
		if !p.opts.MultiArgumentCalls {
			return nil, p.errorf(ErrUnsupportedArguments,
				"calls with more than one argument are not supported (call opened at %s)", start.Pos())
		}
		p.advance()
	}

	if err := p.expect(TokenRightParen, "after call arguments"); err != nil {
		return nil, err
	}
	return call, nil
}

// construct parses vec3(...) and vec4(...) as a comma-separated list.
func (p *Parser) construct() (*ConstructExpr, error) {
	typ := p.advance()
	if err := p.expect(TokenLeftParen, "after '"+typ.Kind.String()+"'"); err != nil {
		return nil, err
	}

	expr := &ConstructExpr{
		Type: typ.Kind.String(),
		Args: make([]Expr, 0, 4),
		Span: spanOf(typ),
	}
	if p.match(TokenRightParen) {
		return expr, nil
	}

	for {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		expr.Args = append(expr.Args, arg)
		if !p.match(TokenComma) {
			break
		}
	}

	if err := p.expect(TokenRightParen, "after constructor arguments"); err != nil {
		return nil, err
	}
	return expr, nil
}

func binary(left Expr, op Token, right Expr) *BinaryExpr {
	return &BinaryExpr{
		Left:  left,
		Op:    op.Op,
		Right: right,
		Span:  left.Pos(),
	}
}

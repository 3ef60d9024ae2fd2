package kong

// ParserOptions enables extensions of the grammar. The zero value parses the
// base language.
type ParserOptions struct {
	// AllStructMembers keeps every member of a struct body and accepts an
	// empty body. Otherwise every member is still parsed but only the first
	// is kept.
	AllStructMembers bool

	// MultiArgumentCalls accepts comma-separated call arguments. Otherwise a
	// call takes zero or one argument.
	MultiArgumentCalls bool

	// RightAssociativeAssign parses a = b = c as a = (b = c) instead of
	// (a = b) = c.
	RightAssociativeAssign bool
}

// Parser parses Kong tokens into a list of statements.
type Parser struct {
	tokens  []Token
	current int
	opts    ParserOptions
}

// NewParser creates a new parser for the given tokens.
func NewParser(tokens []Token) *Parser {
	return NewParserWithOptions(tokens, ParserOptions{})
}

// NewParserWithOptions creates a new parser with grammar extensions.
func NewParserWithOptions(tokens []Token, opts ParserOptions) *Parser {
	return &Parser{
		tokens: tokens,
		opts:   opts,
	}
}

// Parse parses statements until TokenEOF. The first error aborts the parse
// and no statements are returned.
func (p *Parser) Parse() ([]Stmt, error) {
	stmts := make([]Stmt, 0, 8)

	for !p.isAtEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

// statement dispatches on the current token.
func (p *Parser) statement() (Stmt, error) {
	switch p.peek().Kind {
	case TokenAttribute:
		return p.directive(), nil
	case TokenIf:
		return p.ifStmt()
	case TokenLeftBrace:
		block, err := p.block()
		if err != nil {
			return nil, err
		}
		return block, nil
	case TokenIn, TokenFloat, TokenVec3, TokenVec4, TokenVoid:
		return p.declaration()
	case TokenStruct:
		return p.structStmt()
	default:
		return p.exprStmt()
	}
}

// directive parses a preprocessor directive. Parameters are not parsed.
func (p *Parser) directive() *DirectiveStmt {
	tok := p.advance()
	return &DirectiveStmt{
		Name: tok.Text,
		Span: spanOf(tok),
	}
}

// ifStmt parses `if (cond) stmt`.
func (p *Parser) ifStmt() (*IfStmt, error) {
	start := p.advance() // consume 'if'

	if err := p.expect(TokenLeftParen, "after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRightParen, "after if condition"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return &IfStmt{
		Condition: cond,
		Body:      body,
		Span:      spanOf(start),
	}, nil
}

// block parses `{ stmt* }`.
func (p *Parser) block() (*BlockStmt, error) {
	start := p.peek()
	if err := p.expect(TokenLeftBrace, "to open block"); err != nil {
		return nil, err
	}

	stmts := make([]Stmt, 0, 4)
	for !p.check(TokenRightBrace) {
		if p.isAtEnd() {
			return nil, p.errorf(ErrExpectedToken, "expected '}' to close block, got %s", p.peek())
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.advance() // consume '}'

	return &BlockStmt{
		Statements: stmts,
		Span:       spanOf(start),
	}, nil
}

// declaration parses a variable declaration or a function definition:
//
//	[in] type name = expr ;
//	[in] type name ;
//	[in] type name ( ) block
func (p *Parser) declaration() (Stmt, error) {
	start := p.peek()

	var modifiers []Modifier
	if p.match(TokenIn) {
		modifiers = append(modifiers, ModifierIn)
	}

	if !isTypeKeyword(p.peek().Kind) {
		return nil, p.errorf(ErrExpectedDeclaration, "expected a type in declaration, got %s", p.peek())
	}
	typ := p.advance()

	if !p.check(TokenIdent) {
		return nil, p.errorf(ErrExpectedIdentifier, "expected an identifier after '%s', got %s", typ.Kind, p.peek())
	}
	name := p.advance()

	switch tok := p.peek(); {
	case tok.Kind == TokenOperator && tok.Op == OpAssign:
		p.advance()
		init, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenSemicolon, "after declaration"); err != nil {
			return nil, err
		}
		return &DeclStmt{
			Modifiers: modifiers,
			Type:      typ.Kind.String(),
			Name:      name.Text,
			Init:      init,
			Span:      spanOf(start),
		}, nil

	case tok.Kind == TokenSemicolon:
		p.advance()
		return &DeclStmt{
			Modifiers: modifiers,
			Type:      typ.Kind.String(),
			Name:      name.Text,
			Span:      spanOf(start),
		}, nil

	case tok.Kind == TokenLeftParen:
		p.advance()
		if !p.check(TokenRightParen) {
			return nil, p.errorf(ErrUnsupportedParameters,
				"function parameters are not supported, expected ')' after '%s(', got %s", name.Text, p.peek())
		}
		p.advance()
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		return &FunctionStmt{
			Modifiers:  modifiers,
			ReturnType: typ.Kind.String(),
			Name:       name.Text,
			Body:       body,
			Span:       spanOf(start),
		}, nil

	default:
		return nil, p.errorf(ErrExpectedToken, "expected assign or semicolon, got %s", tok)
	}
}

// structStmt parses `struct Name { member: type; }`.
func (p *Parser) structStmt() (*StructStmt, error) {
	start := p.advance() // consume 'struct'

	if !p.check(TokenIdent) {
		return nil, p.errorf(ErrExpectedIdentifier, "expected struct name, got %s", p.peek())
	}
	name := p.advance()

	if err := p.expect(TokenLeftBrace, "after struct name"); err != nil {
		return nil, err
	}

	if p.check(TokenRightBrace) && !p.opts.AllStructMembers {
		return nil, p.errorf(ErrUnsupportedStruct, "struct %s must have a member", name.Text)
	}

	members := make([]*StructMember, 0, 1)
	for !p.check(TokenRightBrace) {
		if p.isAtEnd() {
			return nil, p.errorf(ErrExpectedToken, "expected '}' to close struct %s, got %s", name.Text, p.peek())
		}
		member, err := p.structMember()
		if err != nil {
			return nil, err
		}
		// Later members are checked but only the first is kept.
		if len(members) == 0 || p.opts.AllStructMembers {
			members = append(members, member)
		}
	}
	p.advance() // consume '}'

	return &StructStmt{
		Name:    name.Text,
		Members: members,
		Span:    spanOf(start),
	}, nil
}

// structMember parses `name: type;`. The type is an identifier or a type
// keyword.
func (p *Parser) structMember() (*StructMember, error) {
	if !p.check(TokenIdent) {
		return nil, p.errorf(ErrExpectedIdentifier, "expected member name, got %s", p.peek())
	}
	name := p.advance()

	if err := p.expect(TokenColon, "after member name"); err != nil {
		return nil, err
	}

	var typeName string
	switch tok := p.peek(); {
	case tok.Kind == TokenIdent:
		typeName = tok.Text
	case isTypeKeyword(tok.Kind):
		typeName = tok.Kind.String()
	default:
		return nil, p.errorf(ErrExpectedIdentifier, "expected member type, got %s", tok)
	}
	p.advance()

	if err := p.expect(TokenSemicolon, "after struct member"); err != nil {
		return nil, err
	}

	return &StructMember{
		Name: name.Text,
		Type: typeName,
		Span: spanOf(name),
	}, nil
}

// exprStmt parses `expr ;`.
func (p *Parser) exprStmt() (*ExprStmt, error) {
	start := p.peek()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenSemicolon, "after expression"); err != nil {
		return nil, err
	}
	return &ExprStmt{
		Expr: expr,
		Span: spanOf(start),
	}, nil
}

// Helper methods

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// peek returns the current token. A missing terminator reads as TokenEOF.
func (p *Parser) peek() Token {
	if p.current < len(p.tokens) {
		return p.tokens[p.current]
	}
	eof := Token{Kind: TokenEOF}
	if n := len(p.tokens); n > 0 {
		eof.Line, eof.Column = p.tokens[n-1].Line, p.tokens[n-1].Column
	}
	return eof
}

func (p *Parser) previous() Token {
	if p.current == 0 {
		return p.peek()
	}
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == TokenEOF
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kind TokenKind) bool {
	if p.check(kind) && !p.isAtEnd() {
		p.advance()
		return true
	}
	return false
}

// checkOp reports whether the current token is one of ops.
func (p *Parser) checkOp(ops ...Operator) bool {
	tok := p.peek()
	if tok.Kind != TokenOperator {
		return false
	}
	for _, op := range ops {
		if tok.Op == op {
			return true
		}
	}
	return false
}

// expect consumes a token of the given kind or reports what was found
// instead.
func (p *Parser) expect(kind TokenKind, context string) error {
	if p.match(kind) {
		return nil
	}
	return p.errorf(ErrExpectedToken, "expected '%s' %s, got %s", kind, context, p.peek())
}

// errorf reports an error at the current token.
func (p *Parser) errorf(kind ErrorKind, format string, args ...interface{}) error {
	return NewSourceErrorf(kind, p.peek().Pos(), format, args...)
}

func spanOf(tok Token) Span {
	return Span{Start: tok.Pos()}
}

func isTypeKeyword(kind TokenKind) bool {
	switch kind {
	case TokenFloat, TokenVec3, TokenVec4, TokenVoid:
		return true
	}
	return false
}

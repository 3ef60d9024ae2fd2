package kong

import (
	"fmt"
	"strconv"
)

// TokenKind represents the type of token.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota

	// Punctuation
	TokenLeftBrace  // {
	TokenRightBrace // }
	TokenLeftParen  // (
	TokenRightParen // )
	TokenColon      // :
	TokenSemicolon  // ;
	TokenComma      // ,

	// Operator tokens carry an Operator payload.
	TokenOperator

	// Literals and names
	TokenBool
	TokenNumber
	TokenString
	TokenIdent
	TokenAttribute

	// Keywords
	TokenIf
	TokenFloat
	TokenIn
	TokenVec3
	TokenVec4
	TokenVoid
	TokenStruct
	TokenFn
	TokenLet
	TokenMut
)

var tokenKindNames = [...]string{
	TokenEOF:        "EOF",
	TokenLeftBrace:  "{",
	TokenRightBrace: "}",
	TokenLeftParen:  "(",
	TokenRightParen: ")",
	TokenColon:      ":",
	TokenSemicolon:  ";",
	TokenComma:      ",",
	TokenOperator:   "Operator",
	TokenBool:       "Bool",
	TokenNumber:     "Number",
	TokenString:     "String",
	TokenIdent:      "Identifier",
	TokenAttribute:  "Attribute",
	TokenIf:         "if",
	TokenFloat:      "float",
	TokenIn:         "in",
	TokenVec3:       "vec3",
	TokenVec4:       "vec4",
	TokenVoid:       "void",
	TokenStruct:     "struct",
	TokenFn:         "fn",
	TokenLet:        "let",
	TokenMut:        "mut",
}

// String returns the string representation of the token kind.
func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "Unknown"
}

// Operator is the operator carried by a TokenOperator token and reused
// verbatim by BinaryExpr and UnaryExpr.
type Operator uint8

const (
	OpNone Operator = iota
	OpAssign
	OpOr
	OpAnd
	OpEquals
	OpNotEquals
	OpGreater
	OpGreaterEqual
	OpLess
	OpLessEqual
	OpPlus
	OpMinus
	OpMultiply
	OpDiv
	OpMod
	OpNot
)

var operatorSymbols = [...]string{
	OpNone:         "",
	OpAssign:       "=",
	OpOr:           "||",
	OpAnd:          "&&",
	OpEquals:       "==",
	OpNotEquals:    "!=",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpPlus:         "+",
	OpMinus:        "-",
	OpMultiply:     "*",
	OpDiv:          "/",
	OpMod:          "%",
	OpNot:          "!",
}

// String returns the source spelling of the operator.
func (op Operator) String() string {
	if int(op) < len(operatorSymbols) {
		return operatorSymbols[op]
	}
	return "?"
}

// Token represents a lexical token.
//
// Only the payload field matching Kind is meaningful: Op for TokenOperator,
// Bool for TokenBool, Number for TokenNumber, and Text for TokenString,
// TokenIdent and TokenAttribute.
type Token struct {
	Kind   TokenKind
	Op     Operator
	Bool   bool
	Number float64
	Text   string
	Lexeme string
	Line   int
	Column int
}

// String renders the token with its payload, e.g. Identifier("x").
func (t Token) String() string {
	switch t.Kind {
	case TokenOperator:
		return "Operator(" + t.Op.String() + ")"
	case TokenBool:
		return fmt.Sprintf("Bool(%t)", t.Bool)
	case TokenNumber:
		return "Number(" + strconv.FormatFloat(t.Number, 'g', -1, 64) + ")"
	case TokenString:
		return fmt.Sprintf("String(%q)", t.Text)
	case TokenIdent:
		return fmt.Sprintf("Identifier(%q)", t.Text)
	case TokenAttribute:
		return fmt.Sprintf("Attribute(%q)", t.Text)
	default:
		return t.Kind.String()
	}
}

// Pos returns the position of the first character of the token.
func (t Token) Pos() Position {
	return Position{Line: t.Line, Column: t.Column}
}

// Span represents a source code location span.
type Span struct {
	Start Position
	End   Position
}

// Position represents a position in source code. Line and Column are
// 1-based; Column counts runes.
type Position struct {
	Line   int
	Column int
}

// String renders the position as line:column.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

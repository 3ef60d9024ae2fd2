package kong

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes Kong source code.
type Lexer struct {
	source string
	pos    int
	line   int
	column int

	start       int
	startLine   int
	startColumn int

	tokens []Token
	done   bool
	err    error
}

// NewLexer creates a new lexer for the given source.
func NewLexer(source string) *Lexer {
	// Estimate ~1 token per 4 characters of source.
	estTokens := len(source) / 4
	if estTokens < 16 {
		estTokens = 16
	}
	return &Lexer{
		source: source,
		line:   1,
		column: 1,
		tokens: make([]Token, 0, estTokens),
	}
}

// Tokenize returns all tokens from the source, terminated by exactly one
// TokenEOF. On failure no tokens are returned. Later calls return the
// result of the first.
func (l *Lexer) Tokenize() ([]Token, error) {
	if l.done {
		if l.err != nil {
			return nil, l.err
		}
		return l.tokens, nil
	}
	l.done = true

	for !l.isAtEnd() {
		l.start = l.pos
		l.startLine = l.line
		l.startColumn = l.column
		if err := l.scanToken(); err != nil {
			l.err = err
			return nil, err
		}
	}

	l.tokens = append(l.tokens, Token{
		Kind:   TokenEOF,
		Line:   l.line,
		Column: l.column,
	})

	return l.tokens, nil
}

func (l *Lexer) scanToken() error {
	r := l.advance()

	switch r {
	case '{':
		l.addToken(TokenLeftBrace)
	case '}':
		l.addToken(TokenRightBrace)
	case '(':
		l.addToken(TokenLeftParen)
	case ')':
		l.addToken(TokenRightParen)
	case ':':
		l.addToken(TokenColon)
	case ';':
		l.addToken(TokenSemicolon)
	case ',':
		l.addToken(TokenComma)

	case ' ', '\t', '\r', '\n':
		// Ignore whitespace

	case '#':
		return l.attribute()
	case '"', '\'':
		return l.stringLiteral(r)

	case '/':
		if l.match('/') {
			// Line comment
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
			return nil
		}
		if l.match('*') {
			return l.blockComment()
		}
		l.addOperator(OpDiv)
	case '&', '|', '+', '-', '*', '=', '!', '<', '>', '%':
		return l.operator(r)

	default:
		if isDigit(r) {
			return l.number()
		}
		if isAlpha(r) || r == '_' {
			l.identifier()
			return nil
		}
		return l.errorf(ErrUnexpectedCharacter, "unexpected character %q", r)
	}

	return nil
}

// operator resolves two-character operators before falling back to the
// single-character form.
func (l *Lexer) operator(r rune) error {
	switch r {
	case '=':
		if l.match('=') {
			l.addOperator(OpEquals)
		} else {
			l.addOperator(OpAssign)
		}
	case '!':
		if l.match('=') {
			l.addOperator(OpNotEquals)
		} else {
			l.addOperator(OpNot)
		}
	case '<':
		if l.match('=') {
			l.addOperator(OpLessEqual)
		} else {
			l.addOperator(OpLess)
		}
	case '>':
		if l.match('=') {
			l.addOperator(OpGreaterEqual)
		} else {
			l.addOperator(OpGreater)
		}
	case '&':
		if !l.match('&') {
			return l.errorf(ErrUnknownOperator, "unknown operator %q", "&")
		}
		l.addOperator(OpAnd)
	case '|':
		if !l.match('|') {
			return l.errorf(ErrUnknownOperator, "unknown operator %q", "|")
		}
		l.addOperator(OpOr)
	case '+':
		l.addOperator(OpPlus)
	case '-':
		l.addOperator(OpMinus)
	case '*':
		l.addOperator(OpMultiply)
	case '%':
		l.addOperator(OpMod)
	}
	return nil
}

func (l *Lexer) blockComment() error {
	for !l.isAtEnd() {
		if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			return nil
		}
		l.advance()
	}
	return l.errorf(ErrUnterminatedComment, "unterminated block comment")
}

// number consumes a run of digits and decimal points.
func (l *Lexer) number() error {
	for isDigit(l.peek()) || l.peek() == '.' {
		l.advance()
	}

	text := l.source[l.start:l.pos]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return l.errorf(ErrMalformedNumber, "malformed number %q", text)
	}

	l.tokens = append(l.tokens, Token{
		Kind:   TokenNumber,
		Number: value,
		Lexeme: text,
		Line:   l.startLine,
		Column: l.startColumn,
	})
	return nil
}

// stringLiteral copies characters up to the matching quote. There are no
// escape sequences.
func (l *Lexer) stringLiteral(quote rune) error {
	for l.peek() != quote {
		if l.isAtEnd() {
			return l.errorf(ErrUnterminatedString, "unterminated string")
		}
		l.advance()
	}
	l.advance() // closing quote

	l.addText(TokenString, l.source[l.start+1:l.pos-1])
	return nil
}

// attribute scans #name or #[name].
func (l *Lexer) attribute() error {
	if l.match('[') {
		nameStart := l.pos
		for l.peek() != ']' {
			if l.isAtEnd() {
				return l.errorf(ErrUnterminatedAttribute, "unterminated attribute, expected ']'")
			}
			l.advance()
		}
		name := l.source[nameStart:l.pos]
		if name == "" {
			return l.errorf(ErrUnexpectedCharacter, "empty attribute name in '#[]'")
		}
		l.advance() // ]
		l.addText(TokenAttribute, name)
		return nil
	}

	if !isIdentChar(l.peek()) {
		return l.errorf(ErrUnexpectedCharacter, "unexpected character %q, expected attribute name after '#'", '#')
	}
	for isIdentChar(l.peek()) {
		l.advance()
	}
	l.addText(TokenAttribute, l.source[l.start+1:l.pos])
	return nil
}

func (l *Lexer) identifier() {
	for isIdentChar(l.peek()) {
		l.advance()
	}

	text := l.source[l.start:l.pos]
	switch text {
	case "true", "false":
		l.tokens = append(l.tokens, Token{
			Kind:   TokenBool,
			Bool:   text == "true",
			Lexeme: text,
			Line:   l.startLine,
			Column: l.startColumn,
		})
		return
	}
	if kind, ok := keywords[text]; ok {
		l.addToken(kind)
		return
	}
	l.addText(TokenIdent, text)
}

var keywords = map[string]TokenKind{
	"if":     TokenIf,
	"float":  TokenFloat,
	"in":     TokenIn,
	"vec3":   TokenVec3,
	"vec4":   TokenVec4,
	"void":   TokenVoid,
	"struct": TokenStruct,
	"fn":     TokenFn,
	"let":    TokenLet,
	"mut":    TokenMut,
}

func (l *Lexer) addToken(kind TokenKind) {
	l.tokens = append(l.tokens, Token{
		Kind:   kind,
		Lexeme: l.source[l.start:l.pos],
		Line:   l.startLine,
		Column: l.startColumn,
	})
}

func (l *Lexer) addOperator(op Operator) {
	l.tokens = append(l.tokens, Token{
		Kind:   TokenOperator,
		Op:     op,
		Lexeme: l.source[l.start:l.pos],
		Line:   l.startLine,
		Column: l.startColumn,
	})
}

func (l *Lexer) addText(kind TokenKind, text string) {
	l.tokens = append(l.tokens, Token{
		Kind:   kind,
		Text:   text,
		Lexeme: l.source[l.start:l.pos],
		Line:   l.startLine,
		Column: l.startColumn,
	})
}

// errorf reports an error at the start of the current token.
func (l *Lexer) errorf(kind ErrorKind, format string, args ...interface{}) error {
	err := NewSourceErrorf(kind, Position{Line: l.startLine, Column: l.startColumn}, format, args...)
	err.Span.End = Position{Line: l.line, Column: l.column}
	err.Source = l.source
	return err
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos:])
	return r
}

func (l *Lexer) peekNext() rune {
	if l.pos+1 >= len(l.source) {
		return 0
	}
	_, size := utf8.DecodeRuneInString(l.source[l.pos:])
	r, _ := utf8.DecodeRuneInString(l.source[l.pos+size:])
	return r
}

func (l *Lexer) match(expected rune) bool {
	if l.isAtEnd() || l.peek() != expected {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return unicode.IsLetter(r)
}

func isIdentChar(r rune) bool {
	return isAlpha(r) || isDigit(r) || r == '_'
}

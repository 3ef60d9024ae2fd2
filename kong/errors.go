package kong

import (
	"fmt"
	"strings"
)

// ErrorKind classifies tokenizer and parser failures. Every kind is itself
// an error, so callers can test with errors.Is(err, kong.ErrMalformedNumber).
type ErrorKind uint8

const (
	ErrUnknown ErrorKind = iota

	// Tokenizer errors
	ErrMalformedNumber
	ErrUnexpectedCharacter
	ErrUnknownOperator
	ErrUnterminatedString
	ErrUnterminatedComment
	ErrUnterminatedAttribute

	// Parser errors
	ErrExpectedToken
	ErrExpectedIdentifier
	ErrExpectedDeclaration
	ErrUnexpectedToken
	ErrUnsupportedParameters
	ErrUnsupportedArguments
	ErrUnsupportedStruct
)

var errorKindNames = [...]string{
	ErrUnknown:               "unknown error",
	ErrMalformedNumber:       "malformed number literal",
	ErrUnexpectedCharacter:   "unexpected character",
	ErrUnknownOperator:       "unknown operator",
	ErrUnterminatedString:    "unterminated string",
	ErrUnterminatedComment:   "unterminated comment",
	ErrUnterminatedAttribute: "unterminated attribute",
	ErrExpectedToken:         "missing expected token",
	ErrExpectedIdentifier:    "missing expected identifier",
	ErrExpectedDeclaration:   "missing expected declaration",
	ErrUnexpectedToken:       "unexpected token",
	ErrUnsupportedParameters: "unsupported parameter list",
	ErrUnsupportedArguments:  "unsupported argument list",
	ErrUnsupportedStruct:     "unsupported struct shape",
}

// Error implements the error interface.
func (k ErrorKind) Error() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return errorKindNames[ErrUnknown]
}

// SourceError represents an error with source location information.
type SourceError struct {
	Kind    ErrorKind
	Message string
	Span    Span
	Source  string // Original source code (for context display)
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Span.Start.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d:%d: %s", e.Span.Start.Line, e.Span.Start.Column, e.Message)
}

// Is reports whether target is the ErrorKind of e.
func (e *SourceError) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}

// FormatWithContext returns the error message with source context.
// Shows the problematic line with a caret pointing to the error location.
func (e *SourceError) FormatWithContext() string {
	if e.Source == "" || e.Span.Start.Line == 0 {
		return e.Error()
	}

	lines := strings.Split(e.Source, "\n")
	lineNum := e.Span.Start.Line
	if lineNum < 1 || lineNum > len(lines) {
		return e.Error()
	}

	line := strings.TrimRight(lines[lineNum-1], "\r")
	width := len([]rune(line))
	col := e.Span.Start.Column
	if col < 1 {
		col = 1
	}
	if col > width+1 {
		col = width + 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s\n", e.Message)
	fmt.Fprintf(&sb, "  --> line %d:%d\n", lineNum, col)
	sb.WriteString("   |\n")
	fmt.Fprintf(&sb, "%3d| %s\n", lineNum, line)
	fmt.Fprintf(&sb, "   | %s^\n", strings.Repeat(" ", col-1))

	return sb.String()
}

// NewSourceErrorf creates a new SourceError with formatted message.
func NewSourceErrorf(kind ErrorKind, pos Position, format string, args ...interface{}) *SourceError {
	return &SourceError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Span:    Span{Start: pos, End: pos},
	}
}

package kong

import (
	"errors"
	"strings"
	"testing"
)

func TestSourceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SourceError
		expected string
	}{
		{
			name: "with position",
			err: &SourceError{
				Message: "unexpected token",
				Span: Span{
					Start: Position{Line: 5, Column: 10},
				},
			},
			expected: "5:10: unexpected token",
		},
		{
			name: "without position",
			err: &SourceError{
				Message: "generic error",
				Span:    Span{},
			},
			expected: "generic error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSourceError_FormatWithContext(t *testing.T) {
	source := `in vec3 pos;
void main() {
    float x = 1.0
    x;
}`

	err := &SourceError{
		Message: "expected ';' after declaration",
		Span: Span{
			Start: Position{Line: 3, Column: 18},
		},
		Source: source,
	}

	formatted := err.FormatWithContext()

	if !strings.Contains(formatted, "expected ';' after declaration") {
		t.Error("formatted error should contain message")
	}
	if !strings.Contains(formatted, "line 3:18") {
		t.Errorf("formatted error should contain line:column, got:\n%s", formatted)
	}
	if !strings.Contains(formatted, "float x = 1.0") {
		t.Error("formatted error should contain source line")
	}
	if !strings.Contains(formatted, strings.Repeat(" ", 17)+"^") {
		t.Errorf("caret should point at column 18, got:\n%s", formatted)
	}
}

func TestSourceError_FormatWithContext_NoSource(t *testing.T) {
	err := &SourceError{
		Message: "error without source",
		Span: Span{
			Start: Position{Line: 1, Column: 1},
		},
	}

	formatted := err.FormatWithContext()
	if formatted != "1:1: error without source" {
		t.Errorf("expected simple format without source, got: %q", formatted)
	}
}

func TestSourceError_FormatWithContext_ClampsColumn(t *testing.T) {
	err := &SourceError{
		Message: "past the end",
		Span:    Span{Start: Position{Line: 1, Column: 99}},
		Source:  "abc",
	}

	formatted := err.FormatWithContext()
	if !strings.Contains(formatted, "line 1:4") {
		t.Errorf("column should clamp to end of line, got:\n%s", formatted)
	}
}

func TestSourceError_Is(t *testing.T) {
	err := error(NewSourceErrorf(ErrMalformedNumber, Position{Line: 1, Column: 1}, "malformed number %q", "1.2.3"))

	if !errors.Is(err, ErrMalformedNumber) {
		t.Error("errors.Is should match the error kind")
	}
	if errors.Is(err, ErrUnexpectedCharacter) {
		t.Error("errors.Is should not match a different kind")
	}

	var srcErr *SourceError
	if !errors.As(err, &srcErr) {
		t.Fatal("errors.As should find *SourceError")
	}
	if srcErr.Message != `malformed number "1.2.3"` {
		t.Errorf("unexpected message %q", srcErr.Message)
	}
}

func TestErrorKind_Error(t *testing.T) {
	if got := ErrUnsupportedStruct.Error(); got != "unsupported struct shape" {
		t.Errorf("ErrUnsupportedStruct.Error() = %q", got)
	}
	if got := ErrorKind(200).Error(); got != "unknown error" {
		t.Errorf("out of range kind = %q", got)
	}
}

func TestNewSourceErrorf(t *testing.T) {
	err := NewSourceErrorf(
		ErrExpectedIdentifier,
		Position{Line: 5, Column: 3},
		"expected %s, got %s",
		"identifier", "Number(1)",
	)

	if err.Message != "expected identifier, got Number(1)" {
		t.Errorf("expected formatted message, got: %q", err.Message)
	}
	if err.Span.Start.Line != 5 || err.Span.Start.Column != 3 {
		t.Errorf("expected position 5:3, got %s", err.Span.Start)
	}
	if err.Kind != ErrExpectedIdentifier {
		t.Errorf("expected kind ErrExpectedIdentifier, got %v", err.Kind)
	}
}

// Package kongruent provides the front end of the Kongruent shader compiler.
//
// It turns Kong source text into tokens and then into a list of statements:
//
//	source := `
//	in vec3 pos;
//	void main() {
//	    gl:position = vec4(pos, 1.0);
//	}
//	`
//	stmts, err := kongruent.Parse(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(kong.Dump(stmts))
//
// The two stages are also available separately as Tokenize and ParseTokens.
// Lower-level access lives in the kong package.
package kongruent

import (
	"errors"
	"fmt"

	"github.com/kongruent/kongruent/kong"
)

// Options configures parsing.
type Options struct {
	// Parser selects grammar extensions. The zero value is the base
	// grammar.
	Parser kong.ParserOptions
}

// DefaultOptions returns options that parse the base grammar.
func DefaultOptions() Options {
	return Options{}
}

// Tokenize converts source into tokens terminated by a single kong.TokenEOF.
func Tokenize(source string) ([]kong.Token, error) {
	tokens, err := kong.NewLexer(source).Tokenize()
	if err != nil {
		return nil, fmt.Errorf("tokenization error: %w", err)
	}
	return tokens, nil
}

// ParseTokens parses a complete token sequence with default options.
func ParseTokens(tokens []kong.Token) ([]kong.Stmt, error) {
	return ParseTokensWithOptions(tokens, DefaultOptions())
}

// ParseTokensWithOptions parses a complete token sequence.
func ParseTokensWithOptions(tokens []kong.Token, opts Options) ([]kong.Stmt, error) {
	stmts, err := kong.NewParserWithOptions(tokens, opts.Parser).Parse()
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return stmts, nil
}

// Parse tokenizes and parses source with default options.
func Parse(source string) ([]kong.Stmt, error) {
	return ParseWithOptions(source, DefaultOptions())
}

// ParseWithOptions tokenizes and parses source.
//
// Errors wrap a *kong.SourceError that carries source so that
// FormatWithContext can show the offending line.
func ParseWithOptions(source string, opts Options) ([]kong.Stmt, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}

	stmts, err := ParseTokensWithOptions(tokens, opts)
	if err != nil {
		var srcErr *kong.SourceError
		if errors.As(err, &srcErr) && srcErr.Source == "" {
			srcErr.Source = source
		}
		return nil, err
	}
	return stmts, nil
}

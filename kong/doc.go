// Package kong provides tokenizing and parsing of the Kong shader language.
//
// Kong is the small C-like shading language of the Kongruent compiler.
// Source files use the .kong extension.
//
// # Components
//
// The kong package consists of several components:
//
//   - Lexer: Tokenizes Kong source code into tokens
//   - Parser: Parses tokens into a list of statements
//   - AST: Type definitions for the statement and expression trees
//   - Printer: Deterministic text rendering of tokens and trees
//
// # Usage
//
// To parse a Kong shader:
//
//	source := `
//	#[vertex]
//	in vec3 pos;
//	void main() {
//	    gl:position = vec4(pos, 1.0);
//	}
//	`
//
//	lexer := kong.NewLexer(source)
//	tokens, err := lexer.Tokenize()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	parser := kong.NewParser(tokens)
//	stmts, err := parser.Parse()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Both passes stop at the first error and return no partial result. Errors
// are *SourceError values whose Kind can be tested with errors.Is:
//
//	if errors.Is(err, kong.ErrUnsupportedArguments) { ... }
//
// # Grammar limitations
//
// By default the parser accepts the base grammar: a struct keeps only its
// first member, calls take at most one argument, functions take no
// parameters and assignment folds to the left. All but the function
// parameter rule can be relaxed with ParserOptions.
package kong

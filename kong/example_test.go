package kong_test

import (
	"errors"
	"fmt"

	"github.com/kongruent/kongruent/kong"
)

// ExampleLexer_Tokenize demonstrates tokenizing a declaration.
func ExampleLexer_Tokenize() {
	tokens, err := kong.NewLexer("vec3 x = 1.5;").Tokenize()
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, tok := range tokens {
		fmt.Println(tok)
	}
	// Output:
	// vec3
	// Identifier("x")
	// Operator(=)
	// Number(1.5)
	// ;
	// EOF
}

// ExampleParser_Parse demonstrates parsing a function and dumping the tree.
func ExampleParser_Parse() {
	tokens, _ := kong.NewLexer("void main() { a + b * c; }").Tokenize()

	stmts, err := kong.NewParser(tokens).Parse()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Print(kong.Dump(stmts))
	// Output:
	// Function void main()
	//   Block
	//     Expr
	//       Binary +
	//         Ident a
	//         Binary *
	//           Ident b
	//           Ident c
}

// ExampleParserOptions shows the effect of AllStructMembers.
func ExampleParserOptions() {
	source := "struct S { a: float; b: vec3; }"
	tokens, _ := kong.NewLexer(source).Tokenize()

	for _, opts := range []kong.ParserOptions{{}, {AllStructMembers: true}} {
		stmts, _ := kong.NewParserWithOptions(tokens, opts).Parse()
		fmt.Printf("members: %d\n", len(stmts[0].(*kong.StructStmt).Members))
	}
	// Output:
	// members: 1
	// members: 2
}

// ExampleSourceError demonstrates inspecting a parse error.
func ExampleSourceError() {
	tokens, _ := kong.NewLexer("vec3 x 1;").Tokenize()

	_, err := kong.NewParser(tokens).Parse()
	fmt.Println(err)
	fmt.Println(errors.Is(err, kong.ErrExpectedToken))
	// Output:
	// 1:8: expected assign or semicolon, got Number(1)
	// true
}

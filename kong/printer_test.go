package kong

import (
	"strings"
	"testing"
)

func TestDump(t *testing.T) {
	source := `#vertex
in vec3 pos;
struct Light { color: vec3; }
void main() {
    if (pos:x > 0.5) gl:position = vec4(pos, 1.0);
    print("done");
}`

	expected := `Directive vertex
Decl in vec3 pos
Struct Light
  Member color: vec3
Function void main()
  Block
    If
      Binary >
        Member pos:x
        Number 0.5
      Expr
        Binary =
          Member gl:position
          Construct vec4
            Ident pos
            Number 1
    Expr
      Call
        Ident print
        String "done"
`

	got := Dump(parseSource(t, source))
	if got != expected {
		t.Errorf("Dump mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, expected)
	}
}

func TestDumpExpressions(t *testing.T) {
	got := Dump(parseSource(t, `x = !(a && true) - -b;`))
	expected := `Expr
  Binary =
    Ident x
    Binary -
      Unary !
        Paren
          Binary &&
            Ident a
            Bool true
      Unary -
        Ident b
`
	if got != expected {
		t.Errorf("Dump mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, expected)
	}
}

func TestFormatTokens(t *testing.T) {
	got := FormatTokens(tokenize(t, "float x;\nx = 'a';"))
	expected := strings.Join([]string{
		"1:1\tfloat",
		"1:7\tIdentifier(\"x\")",
		"1:8\t;",
		"2:1\tIdentifier(\"x\")",
		"2:3\tOperator(=)",
		"2:5\tString(\"a\")",
		"2:8\t;",
		"2:9\tEOF",
	}, "\n") + "\n"

	if got != expected {
		t.Errorf("FormatTokens mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, expected)
	}
}

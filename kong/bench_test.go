package kong

import (
	"runtime"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Test shader sources for lexer/parser benchmarks
// ---------------------------------------------------------------------------

const benchShaderSmall = `
#vertex
in vec3 pos;
void main() {
    gl:position = vec4(pos, 1.0);
}
`

const benchShaderMedium = `
#vertex
in vec3 pos;
in vec3 normal;
struct Light { color: vec3; }

// Simple lambert lighting.
void main() {
    float intensity = dot(normal);
    if (intensity < 0.0) {
        intensity = 0.0;
    }
    if (intensity > 1.0 || clamp) intensity = 1.0;
    gl:position = vec4(pos, 1.0);
    /* the color is premultiplied */
    color = vec4(intensity * 0.5, intensity * 0.25, intensity % 2.0, 1.0);
}
`

var benchShaders = []struct {
	name   string
	source string
}{
	{"small", benchShaderSmall},
	{"medium", benchShaderMedium},
	{"large", strings.Repeat(benchShaderMedium, 16)},
}

// BenchmarkLex benchmarks tokenization throughput for shaders of different sizes.
func BenchmarkLex(b *testing.B) {
	for _, bc := range benchShaders {
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(bc.source)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				lexer := NewLexer(bc.source)
				tokens, err := lexer.Tokenize()
				if err != nil {
					b.Fatalf("tokenize failed: %v", err)
				}
				runtime.KeepAlive(tokens)
			}
		})
	}
}

// BenchmarkLexKeywords benchmarks keyword classification.
func BenchmarkLexKeywords(b *testing.B) {
	source := strings.Repeat("if float in vec3 vec4 void struct fn let mut name true ", 200)

	b.ReportAllocs()
	b.SetBytes(int64(len(source)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tokens, err := NewLexer(source).Tokenize()
		if err != nil {
			b.Fatalf("tokenize failed: %v", err)
		}
		runtime.KeepAlive(tokens)
	}
}

// BenchmarkParse benchmarks parsing throughput (tokens to statements) for
// shaders of different sizes.
func BenchmarkParse(b *testing.B) {
	for _, bc := range benchShaders {
		b.Run(bc.name, func(b *testing.B) {
			// Pre-tokenize so we only measure parsing
			tokens, err := NewLexer(bc.source).Tokenize()
			if err != nil {
				b.Fatalf("tokenize failed: %v", err)
			}

			b.ReportAllocs()
			b.SetBytes(int64(len(bc.source)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				stmts, pErr := NewParser(tokens).Parse()
				if pErr != nil {
					b.Fatalf("parse failed: %v", pErr)
				}
				runtime.KeepAlive(stmts)
			}
		})
	}
}

// BenchmarkParseExpressions benchmarks the precedence chain on a long
// expression.
func BenchmarkParseExpressions(b *testing.B) {
	expr := strings.Repeat("a * b + c / d - -e % f < g == !h && i || ", 50) + "z"
	tokens, err := NewLexer("x = " + expr + ";").Tokenize()
	if err != nil {
		b.Fatalf("tokenize failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		stmts, pErr := NewParser(tokens).Parse()
		if pErr != nil {
			b.Fatalf("parse failed: %v", pErr)
		}
		runtime.KeepAlive(stmts)
	}
}

package kong

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes an indented tree of stmts to w, one node per line with
// children indented by two spaces. The output is deterministic and is used
// for golden tests.
func Fprint(w io.Writer, stmts []Stmt) error {
	pr := &printer{w: bufio.NewWriter(w)}
	for _, stmt := range stmts {
		pr.stmt(stmt, 0)
	}
	return pr.w.Flush()
}

// Dump returns the Fprint rendering of stmts.
func Dump(stmts []Stmt) string {
	var sb strings.Builder
	_ = Fprint(&sb, stmts)
	return sb.String()
}

// FormatTokens renders one token per line prefixed with its position.
func FormatTokens(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&sb, "%d:%d\t%s\n", tok.Line, tok.Column, tok)
	}
	return sb.String()
}

type printer struct {
	w *bufio.Writer
}

func (pr *printer) line(depth int, format string, args ...interface{}) {
	pr.w.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(pr.w, format, args...)
	pr.w.WriteByte('\n')
}

func (pr *printer) stmt(s Stmt, depth int) {
	switch s := s.(type) {
	case *ExprStmt:
		pr.line(depth, "Expr")
		pr.expr(s.Expr, depth+1)
	case *IfStmt:
		pr.line(depth, "If")
		pr.expr(s.Condition, depth+1)
		pr.stmt(s.Body, depth+1)
	case *BlockStmt:
		pr.line(depth, "Block")
		for _, child := range s.Statements {
			pr.stmt(child, depth+1)
		}
	case *DeclStmt:
		pr.line(depth, "Decl %s%s %s", modifierPrefix(s.Modifiers), s.Type, s.Name)
		if s.Init != nil {
			pr.expr(s.Init, depth+1)
		}
	case *DirectiveStmt:
		pr.line(depth, "Directive %s", s.Name)
		for _, param := range s.Params {
			pr.expr(param, depth+1)
		}
	case *FunctionStmt:
		pr.line(depth, "Function %s%s %s(%s)",
			modifierPrefix(s.Modifiers), s.ReturnType, s.Name, strings.Join(s.Params, ", "))
		pr.stmt(s.Body, depth+1)
	case *StructStmt:
		pr.line(depth, "Struct %s", s.Name)
		for _, m := range s.Members {
			pr.line(depth+1, "Member %s: %s", m.Name, m.Type)
		}
	default:
		pr.line(depth, "<unknown statement %T>", s)
	}
}

func (pr *printer) expr(e Expr, depth int) {
	switch e := e.(type) {
	case *BinaryExpr:
		pr.line(depth, "Binary %s", e.Op)
		pr.expr(e.Left, depth+1)
		pr.expr(e.Right, depth+1)
	case *UnaryExpr:
		pr.line(depth, "Unary %s", e.Op)
		pr.expr(e.Right, depth+1)
	case *BoolLiteral:
		pr.line(depth, "Bool %t", e.Value)
	case *NumberLiteral:
		pr.line(depth, "Number %s", strconv.FormatFloat(e.Value, 'g', -1, 64))
	case *StringLiteral:
		pr.line(depth, "String %q", e.Value)
	case *Ident:
		pr.line(depth, "Ident %s", e.Name)
	case *ParenExpr:
		pr.line(depth, "Paren")
		pr.expr(e.Expr, depth+1)
	case *MemberExpr:
		pr.line(depth, "Member %s:%s", e.Container, e.Field)
	case *CallExpr:
		pr.line(depth, "Call")
		pr.expr(e.Callee, depth+1)
		for _, arg := range e.Args {
			pr.expr(arg, depth+1)
		}
	case *ConstructExpr:
		pr.line(depth, "Construct %s", e.Type)
		for _, arg := range e.Args {
			pr.expr(arg, depth+1)
		}
	default:
		pr.line(depth, "<unknown expression %T>", e)
	}
}

func modifierPrefix(mods []Modifier) string {
	var sb strings.Builder
	for _, m := range mods {
		sb.WriteString(m.String())
		sb.WriteByte(' ')
	}
	return sb.String()
}

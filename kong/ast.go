package kong

// Node is the base interface for all AST nodes.
type Node interface {
	Pos() Span
}

// Stmt is the interface for statements.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is the interface for expressions.
type Expr interface {
	Node
	exprNode()
}

// Modifier is a declaration modifier written before the type keyword.
type Modifier uint8

const (
	ModifierIn Modifier = iota + 1
)

func (m Modifier) String() string {
	switch m {
	case ModifierIn:
		return "in"
	default:
		return "?"
	}
}

// Statements

// ExprStmt represents an expression evaluated for its side effect.
type ExprStmt struct {
	Expr Expr
	Span Span
}

func (e *ExprStmt) Pos() Span { return e.Span }
func (e *ExprStmt) stmtNode() {}

// IfStmt represents an if statement. Body is any single statement, not
// necessarily a block.
type IfStmt struct {
	Condition Expr
	Body      Stmt
	Span      Span
}

func (i *IfStmt) Pos() Span { return i.Span }
func (i *IfStmt) stmtNode() {}

// BlockStmt represents a block statement.
type BlockStmt struct {
	Statements []Stmt
	Span       Span
}

func (b *BlockStmt) Pos() Span { return b.Span }
func (b *BlockStmt) stmtNode() {}

// DeclStmt represents a variable declaration such as `in vec3 pos;` or
// `float x = 1.0;`. Init is nil when there is no initializer.
type DeclStmt struct {
	Modifiers []Modifier
	Type      string
	Name      string
	Init      Expr
	Span      Span
}

func (d *DeclStmt) Pos() Span { return d.Span }
func (d *DeclStmt) stmtNode() {}

// DirectiveStmt represents a preprocessor directive introduced by an
// attribute token. Params is always empty: nothing after the name is
// consumed.
type DirectiveStmt struct {
	Name   string
	Params []Expr
	Span   Span
}

func (d *DirectiveStmt) Pos() Span { return d.Span }
func (d *DirectiveStmt) stmtNode() {}

// FunctionStmt represents a function definition `void main() { ... }`.
// Only the empty parameter list is accepted, so Params is always empty.
type FunctionStmt struct {
	Modifiers  []Modifier
	ReturnType string
	Name       string
	Params     []string
	Body       *BlockStmt
	Span       Span
}

func (f *FunctionStmt) Pos() Span { return f.Span }
func (f *FunctionStmt) stmtNode() {}

// StructStmt represents a struct declaration.
type StructStmt struct {
	Attribute string // reserved, always empty
	Name      string
	Members   []*StructMember
	Span      Span
}

func (s *StructStmt) Pos() Span { return s.Span }
func (s *StructStmt) stmtNode() {}

// StructMember represents a struct member `name: type;`.
type StructMember struct {
	Name string
	Type string
	Span Span
}

// Expressions

// BinaryExpr represents a binary expression.
type BinaryExpr struct {
	Left  Expr
	Op    Operator
	Right Expr
	Span  Span
}

func (b *BinaryExpr) Pos() Span { return b.Span }
func (b *BinaryExpr) exprNode() {}

// UnaryExpr represents a prefix unary expression.
type UnaryExpr struct {
	Op    Operator
	Right Expr
	Span  Span
}

func (u *UnaryExpr) Pos() Span { return u.Span }
func (u *UnaryExpr) exprNode() {}

// BoolLiteral represents true or false.
type BoolLiteral struct {
	Value bool
	Span  Span
}

func (b *BoolLiteral) Pos() Span { return b.Span }
func (b *BoolLiteral) exprNode() {}

// NumberLiteral represents a numeric literal.
type NumberLiteral struct {
	Value float64
	Span  Span
}

func (n *NumberLiteral) Pos() Span { return n.Span }
func (n *NumberLiteral) exprNode() {}

// StringLiteral represents a string literal.
type StringLiteral struct {
	Value string
	Span  Span
}

func (s *StringLiteral) Pos() Span { return s.Span }
func (s *StringLiteral) exprNode() {}

// Ident represents a variable reference.
type Ident struct {
	Name string
	Span Span
}

func (i *Ident) Pos() Span { return i.Span }
func (i *Ident) exprNode() {}

// ParenExpr represents a parenthesized expression.
type ParenExpr struct {
	Expr Expr
	Span Span
}

func (p *ParenExpr) Pos() Span { return p.Span }
func (p *ParenExpr) exprNode() {}

// MemberExpr represents a namespaced access `container:field`.
type MemberExpr struct {
	Container string
	Field     string
	Span      Span
}

func (m *MemberExpr) Pos() Span { return m.Span }
func (m *MemberExpr) exprNode() {}

// CallExpr represents a function call. Callee is an *Ident or *MemberExpr.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	Span   Span
}

func (c *CallExpr) Pos() Span { return c.Span }
func (c *CallExpr) exprNode() {}

// ConstructExpr represents a vector constructor such as vec4(a, b, c, d).
type ConstructExpr struct {
	Type string
	Args []Expr
	Span Span
}

func (c *ConstructExpr) Pos() Span { return c.Span }
func (c *ConstructExpr) exprNode() {}

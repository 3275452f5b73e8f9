package nook

type Node interface {
	Pos() Position
	String() string
}

// Stmt is implemented only by the statement nodes in this file.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented only by the expression nodes in this file.
type Expr interface {
	Node
	exprNode()
}

type PrintStmt struct {
	Expr     Expr
	position Position
}

func (s *PrintStmt) stmtNode()     {}
func (s *PrintStmt) Pos() Position { return s.position }

type ExpressionStmt struct {
	Expr Expr
}

func (s *ExpressionStmt) stmtNode()     {}
func (s *ExpressionStmt) Pos() Position { return s.Expr.Pos() }

// VarStmt declares Name. Initializer is nil when the declaration has none.
type VarStmt struct {
	Name        Token
	Initializer Expr
	position    Position
}

func (s *VarStmt) stmtNode()     {}
func (s *VarStmt) Pos() Position { return s.position }

type AssignExpr struct {
	Name  Token
	Value Expr
}

func (e *AssignExpr) exprNode()     {}
func (e *AssignExpr) Pos() Position { return e.Name.Pos }

type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (e *BinaryExpr) exprNode()     {}
func (e *BinaryExpr) Pos() Position { return e.Left.Pos() }

type CallExpr struct {
	Callee Expr
	Paren  Token // closing parenthesis
	Args   []Expr
}

func (e *CallExpr) exprNode()     {}
func (e *CallExpr) Pos() Position { return e.Callee.Pos() }

type GetExpr struct {
	Object   Expr
	Property Token
}

func (e *GetExpr) exprNode()     {}
func (e *GetExpr) Pos() Position { return e.Object.Pos() }

type GroupingExpr struct {
	Expression Expr
	position   Position
}

func (e *GroupingExpr) exprNode()     {}
func (e *GroupingExpr) Pos() Position { return e.position }

type LiteralExpr struct {
	Value    Value
	position Position
}

func (e *LiteralExpr) exprNode()     {}
func (e *LiteralExpr) Pos() Position { return e.position }

// LogicalExpr is a short-circuiting && or ||.
type LogicalExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (e *LogicalExpr) exprNode()     {}
func (e *LogicalExpr) Pos() Position { return e.Left.Pos() }

type SetExpr struct {
	Object   Expr
	Property Token
	Value    Expr
}

func (e *SetExpr) exprNode()     {}
func (e *SetExpr) Pos() Position { return e.Object.Pos() }

type UnaryExpr struct {
	Operator Token
	Operand  Expr
}

func (e *UnaryExpr) exprNode()     {}
func (e *UnaryExpr) Pos() Position { return e.Operator.Pos }

type VariableExpr struct {
	Name Token
}

func (e *VariableExpr) exprNode()     {}
func (e *VariableExpr) Pos() Position { return e.Name.Pos }

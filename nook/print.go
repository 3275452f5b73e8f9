package nook

import (
	"bufio"
	"fmt"
	"io"
)

const (
	branchConnector = "├─ "
	lastConnector   = "└─ "
	branchIndent    = "│  "
	lastIndent      = "   "
)

type treePrinter struct {
	w *bufio.Writer
}

// PrintTree writes stmts as a box-drawn tree, one node per line,
// depth-first and pre-order.
func PrintTree(w io.Writer, stmts []Stmt) error {
	tp := &treePrinter{w: bufio.NewWriter(w)}
	for i, stmt := range stmts {
		tp.stmt(stmt, "", i == len(stmts)-1)
	}
	return tp.w.Flush()
}

func (tp *treePrinter) line(prefix string, last bool, label string) string {
	connector := branchConnector
	indent := branchIndent
	if last {
		connector = lastConnector
		indent = lastIndent
	}
	fmt.Fprintf(tp.w, "%s%s%s\n", prefix, connector, label)
	return prefix + indent
}

func (tp *treePrinter) stmt(stmt Stmt, prefix string, last bool) {
	switch s := stmt.(type) {
	case *PrintStmt:
		child := tp.line(prefix, last, "Print")
		tp.expr(s.Expr, child, true)
	case *ExpressionStmt:
		child := tp.line(prefix, last, "Expression")
		tp.expr(s.Expr, child, true)
	case *VarStmt:
		child := tp.line(prefix, last, "Var("+s.Name.Literal+")")
		if s.Initializer != nil {
			tp.expr(s.Initializer, child, true)
		}
	default:
		panic(fmt.Sprintf("nook: unhandled statement %T", stmt))
	}
}

func (tp *treePrinter) expr(expr Expr, prefix string, last bool) {
	switch e := expr.(type) {
	case *AssignExpr:
		child := tp.line(prefix, last, "Assign("+e.Name.Literal+")")
		tp.expr(e.Value, child, true)
	case *BinaryExpr:
		child := tp.line(prefix, last, "Binary("+e.Operator.Literal+")")
		tp.expr(e.Left, child, false)
		tp.expr(e.Right, child, true)
	case *CallExpr:
		child := tp.line(prefix, last, "Call")
		tp.expr(e.Callee, child, len(e.Args) == 0)
		for i, arg := range e.Args {
			tp.expr(arg, child, i == len(e.Args)-1)
		}
	case *GetExpr:
		child := tp.line(prefix, last, "Get("+e.Property.Literal+")")
		tp.expr(e.Object, child, true)
	case *GroupingExpr:
		child := tp.line(prefix, last, "Grouping")
		tp.expr(e.Expression, child, true)
	case *LiteralExpr:
		tp.line(prefix, last, "Literal("+e.Value.String()+")")
	case *LogicalExpr:
		child := tp.line(prefix, last, "Logical("+e.Operator.Literal+")")
		tp.expr(e.Left, child, false)
		tp.expr(e.Right, child, true)
	case *SetExpr:
		child := tp.line(prefix, last, "Set("+e.Property.Literal+")")
		tp.expr(e.Object, child, false)
		tp.expr(e.Value, child, true)
	case *UnaryExpr:
		child := tp.line(prefix, last, "Unary("+e.Operator.Literal+")")
		tp.expr(e.Operand, child, true)
	case *VariableExpr:
		tp.line(prefix, last, "Variable("+e.Name.Literal+")")
	default:
		panic(fmt.Sprintf("nook: unhandled expression %T", expr))
	}
}

package nook

import (
	"fmt"
	"strings"
)

func (s *PrintStmt) String() string {
	return "Print(" + s.Expr.String() + ")"
}

func (s *ExpressionStmt) String() string {
	return "Expression(" + s.Expr.String() + ")"
}

func (s *VarStmt) String() string {
	if s.Initializer == nil {
		return fmt.Sprintf("Var(%s, None)", s.Name.Literal)
	}
	return fmt.Sprintf("Var(%s, Some(%s))", s.Name.Literal, s.Initializer)
}

func (e *AssignExpr) String() string {
	return fmt.Sprintf("Assign(%s, %s)", e.Name.Literal, e.Value)
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("Binary(%s, %s, %s)", e.Operator.Literal, e.Left, e.Right)
}

func (e *CallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("Call(%s, [%s])", e.Callee, strings.Join(args, ", "))
}

func (e *GetExpr) String() string {
	return fmt.Sprintf("Get(%s, %s)", e.Object, e.Property.Literal)
}

func (e *GroupingExpr) String() string {
	return "Grouping(" + e.Expression.String() + ")"
}

func (e *LiteralExpr) String() string {
	return "Literal(" + e.Value.String() + ")"
}

func (e *LogicalExpr) String() string {
	return fmt.Sprintf("Logical(%s, %s, %s)", e.Operator.Literal, e.Left, e.Right)
}

func (e *SetExpr) String() string {
	return fmt.Sprintf("Set(%s, %s, %s)", e.Object, e.Property.Literal, e.Value)
}

func (e *UnaryExpr) String() string {
	return fmt.Sprintf("Unary(%s, %s)", e.Operator.Literal, e.Operand)
}

func (e *VariableExpr) String() string {
	return "Variable(" + e.Name.Literal + ")"
}

// Walk visits node and its children depth-first, pre-order. Returning
// false from fn skips the children of that node.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *PrintStmt:
		Walk(n.Expr, fn)
	case *ExpressionStmt:
		Walk(n.Expr, fn)
	case *VarStmt:
		if n.Initializer != nil {
			Walk(n.Initializer, fn)
		}
	case *AssignExpr:
		Walk(n.Value, fn)
	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *CallExpr:
		Walk(n.Callee, fn)
		for _, arg := range n.Args {
			Walk(arg, fn)
		}
	case *GetExpr:
		Walk(n.Object, fn)
	case *GroupingExpr:
		Walk(n.Expression, fn)
	case *LiteralExpr:
	case *LogicalExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *SetExpr:
		Walk(n.Object, fn)
		Walk(n.Value, fn)
	case *UnaryExpr:
		Walk(n.Operand, fn)
	case *VariableExpr:
	default:
		panic(fmt.Sprintf("nook: unhandled node %T", node))
	}
}

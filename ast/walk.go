package ast

// Inspect traverses the tree rooted at node in depth-first order. It calls
// f(node) first; if f returns true, Inspect recurses into the children.
// Nil children are skipped.
func Inspect(node Node, f func(Node) bool) {
	if isNil(node) || !f(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, f)
	}
}

// Children returns the direct, non-nil children of node in source order.
func Children(node Node) []Node {
	var out []Node
	add := func(children ...Node) {
		for _, c := range children {
			if !isNil(c) {
				out = append(out, c)
			}
		}
	}

	switch n := node.(type) {
	case *CreateTable:
		for _, col := range n.Columns {
			add(col)
		}
	case *ColumnDefinition:
		add(n.Type)
	case *TypeName:
		for _, c := range n.Constraints {
			add(c)
		}
	case *UnaryExpr:
		add(n.Operand)
	case *BinaryExpr:
		add(n.Left, n.Right)
	case *ChainedExpr:
		for _, e := range n.Exprs {
			add(e)
		}
	case *CastExpr:
		add(n.Expr, n.Type)
	case *CaseExpr:
		add(n.Operand)
		for _, w := range n.Whens {
			add(w)
		}
		add(n.Else)
	case *WhenClause:
		add(n.Condition, n.Result)
	case *CollateExpr:
		add(n.Expr)
	case *IsExpr:
		add(n.Left, n.Right)
	case *MatchExpr:
		add(n.Left, n.Right, n.Escape)
	case *NullExpr:
		add(n.Expr)
	case *BetweenExpr:
		add(n.Expr, n.Low, n.High)
	case *InListExpr:
		add(n.Expr, n.List)
	case *InTableExpr:
		add(n.Expr)
	}
	return out
}

// HasErrors reports whether the tree contains an ErrorStatement or ErrorExpr.
func HasErrors(node Node) bool {
	found := false
	Inspect(node, func(n Node) bool {
		switch n.(type) {
		case *ErrorStatement, *ErrorExpr:
			found = true
		}
		return !found
	})
	return found
}

// isNil catches both untyped nil and typed nil pointers stored in an
// interface, as pointer fields like CastExpr.Type produce.
func isNil(node Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *TypeName:
		return n == nil
	case *ChainedExpr:
		return n == nil
	case *WhenClause:
		return n == nil
	case *ColumnDefinition:
		return n == nil
	case *SignedNumber:
		return n == nil
	}
	return false
}

// Package explain renders litesql ASTs as an indented node listing, one
// line per node, used by golden tests and the litesql tool.
package explain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sqlc-dev/litesql/ast"
	"github.com/sqlc-dev/litesql/internal/format"
)

// Explain returns the node listing for a statement or expression.
func Explain(node ast.Node) string {
	var sb strings.Builder
	Node(&sb, node, 0)
	return sb.String()
}

// Node writes the listing for node at the given depth.
func Node(sb *strings.Builder, node ast.Node, depth int) {
	indent := strings.Repeat(" ", depth)

	switch n := node.(type) {
	// Statements
	case *ast.CreateTable:
		explainCreateTable(sb, n, indent, depth)
	case *ast.DropTable:
		explainDropTable(sb, n, indent)
	case *ast.ErrorStatement:
		fmt.Fprintf(sb, "%sErrorStatement\n", indent)
	case *ast.ColumnDefinition:
		explainColumnDefinition(sb, n, indent, depth)
	case *ast.TypeName:
		explainTypeName(sb, n, indent, depth)
	case *ast.SignedNumber:
		fmt.Fprintf(sb, "%sSignedNumber %s\n", indent, number(n.Value))

	// Literals
	case *ast.NumericLiteral:
		fmt.Fprintf(sb, "%sNumericLiteral %s\n", indent, number(n.Value))
	case *ast.StringLiteral:
		fmt.Fprintf(sb, "%sStringLiteral %s\n", indent, format.String(n.Value))
	case *ast.BlobLiteral:
		fmt.Fprintf(sb, "%sBlobLiteral X'%s'\n", indent, n.Value)
	case *ast.NullLiteral:
		fmt.Fprintf(sb, "%sNullLiteral\n", indent)

	// Expressions
	case *ast.ColumnName:
		fmt.Fprintf(sb, "%s%s\n", indent, label("ColumnName", n.Name()))
	case *ast.UnaryExpr:
		fmt.Fprintf(sb, "%sUnaryOperator %s (children 1)\n", indent, n.Op)
		Node(sb, n.Operand, depth+1)
	case *ast.BinaryExpr:
		fmt.Fprintf(sb, "%sBinaryOperator %s (children 2)\n", indent, n.Op)
		Node(sb, n.Left, depth+1)
		Node(sb, n.Right, depth+1)
	case *ast.ChainedExpr:
		explainChildren(sb, indent+"ChainedExpression", n, depth)
	case *ast.CastExpr:
		explainChildren(sb, indent+"Cast", n, depth)
	case *ast.CaseExpr:
		explainCase(sb, n, indent, depth)
	case *ast.WhenClause:
		explainChildren(sb, indent+"When", n, depth)
	case *ast.CollateExpr:
		explainChildren(sb, indent+label("Collate", n.Collation), n, depth)
	case *ast.IsExpr:
		explainChildren(sb, indent+negated("Is", n.Not), n, depth)
	case *ast.MatchExpr:
		explainChildren(sb, indent+negated("Match", n.Not)+" "+string(n.Op), n, depth)
	case *ast.NullExpr:
		explainChildren(sb, indent+negated("IsNull", n.Not), n, depth)
	case *ast.BetweenExpr:
		explainChildren(sb, indent+negated("Between", n.Not), n, depth)
	case *ast.InListExpr:
		explainChildren(sb, indent+negated("InList", n.Not), n, depth)
	case *ast.InTableExpr:
		explainChildren(sb, indent+label(negated("InTable", n.Not), n.Name()), n, depth)
	case *ast.ErrorExpr:
		fmt.Fprintf(sb, "%sErrorExpression\n", indent)
	}
}

// explainChildren writes a header line followed by every child of n.
func explainChildren(sb *strings.Builder, header string, n ast.Node, depth int) {
	children := ast.Children(n)
	writeHeader(sb, header, len(children))
	for _, child := range children {
		Node(sb, child, depth+1)
	}
}

func writeHeader(sb *strings.Builder, header string, children int) {
	if children > 0 {
		fmt.Fprintf(sb, "%s (children %d)\n", header, children)
	} else {
		fmt.Fprintf(sb, "%s\n", header)
	}
}

// label appends name to kind when name is not empty.
func label(kind, name string) string {
	if name == "" {
		return kind
	}
	return kind + " " + name
}

// negated prefixes name with "Not", turning Is into IsNot and Between into
// NotBetween. IsNull becomes IsNotNull.
func negated(name string, not bool) string {
	if !not {
		return name
	}
	if name == "Is" || name == "IsNull" {
		return "IsNot" + strings.TrimPrefix(name, "Is")
	}
	return "Not" + name
}

func number(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

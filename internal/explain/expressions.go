package explain

import (
	"strings"

	"github.com/sqlc-dev/litesql/ast"
)

// explainCase lists the operand, one When per clause and an Else wrapper.
func explainCase(sb *strings.Builder, n *ast.CaseExpr, indent string, depth int) {
	children := len(n.Whens)
	if n.Operand != nil {
		children++
	}
	if n.Else != nil {
		children++
	}
	writeHeader(sb, indent+"Case", children)

	if n.Operand != nil {
		Node(sb, n.Operand, depth+1)
	}
	for _, w := range n.Whens {
		Node(sb, w, depth+1)
	}
	if n.Else != nil {
		writeHeader(sb, indent+" Else", 1)
		Node(sb, n.Else, depth+2)
	}
}

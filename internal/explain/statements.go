package explain

import (
	"fmt"
	"strings"

	"github.com/sqlc-dev/litesql/ast"
)

func explainCreateTable(sb *strings.Builder, n *ast.CreateTable, indent string, depth int) {
	header := indent + label("CreateTable", n.Name())
	if n.Temporary {
		header += " TEMPORARY"
	}
	if !n.ErrorIfExists {
		header += " IF NOT EXISTS"
	}
	writeHeader(sb, header, 1)
	writeHeader(sb, indent+" Columns", len(n.Columns))
	for _, col := range n.Columns {
		Node(sb, col, depth+2)
	}
}

func explainDropTable(sb *strings.Builder, n *ast.DropTable, indent string) {
	header := indent + label("DropTable", n.Name())
	if !n.ErrorIfNotExists {
		header += " IF EXISTS"
	}
	fmt.Fprintf(sb, "%s\n", header)
}

func explainColumnDefinition(sb *strings.Builder, n *ast.ColumnDefinition, indent string, depth int) {
	children := 0
	if n.Type != nil {
		children = 1
	}
	writeHeader(sb, indent+label("ColumnDefinition", n.Name), children)
	if n.Type != nil {
		Node(sb, n.Type, depth+1)
	}
}

func explainTypeName(sb *strings.Builder, n *ast.TypeName, indent string, depth int) {
	writeHeader(sb, indent+label("TypeName", n.Name), len(n.Constraints))
	for _, c := range n.Constraints {
		Node(sb, c, depth+1)
	}
}

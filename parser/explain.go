package parser

import (
	"github.com/sqlc-dev/litesql/ast"
	"github.com/sqlc-dev/litesql/internal/explain"
)

// Explain returns the indented node listing for a statement or expression.
func Explain(node ast.Node) string {
	return explain.Explain(node)
}

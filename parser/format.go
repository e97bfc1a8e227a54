package parser

import (
	"strings"

	"github.com/sqlc-dev/litesql/ast"
	"github.com/sqlc-dev/litesql/internal/format"
)

// Format returns the SQL string representation of the statements.
func Format(stmts []ast.Statement) string {
	return format.Format(stmts)
}

// FormatExpr returns the SQL string representation of an expression.
func FormatExpr(expr ast.Expression) string {
	var sb strings.Builder
	format.Expression(&sb, expr)
	return sb.String()
}

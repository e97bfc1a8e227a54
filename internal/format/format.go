// Package format renders litesql ASTs back to canonical SQL.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/sqlc-dev/litesql/ast"
	"github.com/sqlc-dev/litesql/lexer"
	"github.com/sqlc-dev/litesql/token"
)

// Format returns the SQL string representation of the statements.
func Format(stmts []ast.Statement) string {
	var sb strings.Builder
	for i, stmt := range stmts {
		if i > 0 {
			sb.WriteString("\n")
		}
		Statement(&sb, stmt)
		sb.WriteString(";")
	}
	return sb.String()
}

// Identifier returns name as it must be written in SQL: bare when it lexes
// as a non-keyword word, double-quoted otherwise.
func Identifier(name string) string {
	if lexer.IsBareWord(name) && lexer.Keyword(name) == token.IDENT {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QualifiedName renders the non-empty parts of a dotted name.
func QualifiedName(parts ...string) string {
	var out []string
	for i, p := range parts {
		// Leading empty qualifiers are omitted; the last part is always kept.
		if p == "" && len(out) == 0 && i < len(parts)-1 {
			continue
		}
		out = append(out, Identifier(p))
	}
	return strings.Join(out, ".")
}

// String returns s as a single-quoted SQL string literal.
func String(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Number renders a numeric literal in its shortest form. Infinite values
// are written as an overflowing literal so they read back unchanged.
func Number(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "1e999"
	case math.IsInf(v, -1):
		return "-1e999"
	case v == math.Trunc(v) && math.Abs(v) < 1e15:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

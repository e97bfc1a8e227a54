package format

import (
	"strings"

	"github.com/sqlc-dev/litesql/ast"
)

// Statement formats a single statement without its trailing semicolon.
// Error statements render as nothing.
func Statement(sb *strings.Builder, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.CreateTable:
		formatCreateTable(sb, s)
	case *ast.DropTable:
		formatDropTable(sb, s)
	}
}

func formatCreateTable(sb *strings.Builder, s *ast.CreateTable) {
	sb.WriteString("CREATE ")
	if s.Temporary {
		sb.WriteString("TEMPORARY ")
	}
	sb.WriteString("TABLE ")
	if !s.ErrorIfExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(QualifiedName(s.Schema, s.Table))
	sb.WriteString(" (")
	for i, col := range s.Columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		formatColumnDefinition(sb, col)
	}
	sb.WriteString(")")
}

func formatDropTable(sb *strings.Builder, s *ast.DropTable) {
	sb.WriteString("DROP TABLE ")
	if !s.ErrorIfNotExists {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(QualifiedName(s.Schema, s.Table))
}

func formatColumnDefinition(sb *strings.Builder, col *ast.ColumnDefinition) {
	sb.WriteString(Identifier(col.Name))
	if col.Type != nil {
		sb.WriteString(" ")
		TypeName(sb, col.Type)
	}
}

// TypeName formats a type such as DECIMAL(10, 2).
func TypeName(sb *strings.Builder, t *ast.TypeName) {
	sb.WriteString(Identifier(t.Name))
	if len(t.Constraints) == 0 {
		return
	}
	sb.WriteString("(")
	for i, n := range t.Constraints {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Number(n.Value))
	}
	sb.WriteString(")")
}

package format_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlc-dev/litesql/ast"
	"github.com/sqlc-dev/litesql/internal/format"
)

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"a", "a"},
		{"col_1", "col_1"},
		{"größe", "größe"},
		{"table", `"table"`},
		{"Select", `"Select"`},
		{"ın", "ın"},
		{"ſelect", "ſelect"},
		{"two words", `"two words"`},
		{`a"b`, `"a""b"`},
		{"1abc", `"1abc"`},
		{"", `""`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, format.Identifier(tc.name))
		})
	}
}

func TestQualifiedName(t *testing.T) {
	assert.Equal(t, "t", format.QualifiedName("", "t"))
	assert.Equal(t, "s.t", format.QualifiedName("s", "t"))
	assert.Equal(t, "t.c", format.QualifiedName("", "t", "c"))
	assert.Equal(t, `s."".c`, format.QualifiedName("s", "", "c"))
	assert.Equal(t, `""`, format.QualifiedName("", ""))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "0", format.Number(0))
	assert.Equal(t, "42", format.Number(42))
	assert.Equal(t, "2.5", format.Number(2.5))
	assert.Equal(t, "1e+20", format.Number(1e20))
	assert.Equal(t, "1e999", format.Number(math.Inf(1)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "'it''s'", format.String("it's"))
	assert.Equal(t, `'\'`, format.String(`\`))
}

func TestFormatStatements(t *testing.T) {
	stmts := []ast.Statement{
		&ast.CreateTable{
			Schema:    "main",
			Table:     "t",
			Temporary: true,
			Columns: []*ast.ColumnDefinition{
				{Name: "a", Type: &ast.TypeName{Name: "INT"}},
				{Name: "b", Type: &ast.TypeName{Name: "DECIMAL", Constraints: []*ast.SignedNumber{{Value: 10}, {Value: -2}}}},
			},
		},
		&ast.DropTable{Table: "t", ErrorIfNotExists: true},
		&ast.DropTable{Schema: "s", Table: "t"},
	}
	want := strings.Join([]string{
		"CREATE TEMPORARY TABLE IF NOT EXISTS main.t (a INT, b DECIMAL(10, -2));",
		"DROP TABLE t;",
		"DROP TABLE IF EXISTS s.t;",
	}, "\n")
	assert.Equal(t, want, format.Format(stmts))
}

func TestExpression(t *testing.T) {
	x := &ast.ColumnName{Column: "x"}
	one := &ast.NumericLiteral{Value: 1}
	two := &ast.NumericLiteral{Value: 2}

	tests := []struct {
		desc string
		expr ast.Expression
		want string
	}{
		{"binary", &ast.BinaryExpr{Op: ast.OpAdd, Left: x, Right: one}, "x + 1"},
		{"unary not", &ast.UnaryExpr{Op: ast.UnaryNot, Operand: x}, "NOT x"},
		{"double minus", &ast.UnaryExpr{Op: ast.UnaryMinus, Operand: &ast.UnaryExpr{Op: ast.UnaryMinus, Operand: one}}, "- -1"},
		{"chained", &ast.ChainedExpr{Exprs: []ast.Expression{one, two}}, "(1, 2)"},
		{"cast", &ast.CastExpr{Expr: x, Type: &ast.TypeName{Name: "TEXT"}}, "CAST(x AS TEXT)"},
		{"case", &ast.CaseExpr{
			Operand: x,
			Whens:   []*ast.WhenClause{{Condition: one, Result: &ast.StringLiteral{Value: "a"}}},
			Else:    &ast.NullLiteral{},
		}, "CASE x WHEN 1 THEN 'a' ELSE NULL END"},
		{"collate", &ast.CollateExpr{Expr: x, Collation: "NOCASE"}, "x COLLATE NOCASE"},
		{"is not", &ast.IsExpr{Left: x, Right: &ast.NullLiteral{}, Not: true}, "x IS NOT NULL"},
		{"not like escape", &ast.MatchExpr{Op: ast.MatchLike, Left: x, Right: &ast.StringLiteral{Value: "a%"}, Escape: &ast.StringLiteral{Value: `\`}, Not: true}, `x NOT LIKE 'a%' ESCAPE '\'`},
		{"notnull", &ast.NullExpr{Expr: x, Not: true}, "x NOTNULL"},
		{"isnull", &ast.NullExpr{Expr: x}, "x ISNULL"},
		{"between", &ast.BetweenExpr{Expr: x, Low: one, High: two}, "x BETWEEN 1 AND 2"},
		{"not in list", &ast.InListExpr{Expr: x, List: &ast.ChainedExpr{Exprs: []ast.Expression{one}}, Not: true}, "x NOT IN (1)"},
		{"empty in list", &ast.InListExpr{Expr: x, List: &ast.ChainedExpr{}}, "x IN ()"},
		{"in table", &ast.InTableExpr{Expr: x, Schema: "s", Table: "t"}, "x IN s.t"},
		{"qualified column", &ast.ColumnName{Schema: "s", Table: "t", Column: "case"}, `s.t."case"`},
		{"blob", &ast.BlobLiteral{Value: "CAFE"}, "X'CAFE'"},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			var sb strings.Builder
			format.Expression(&sb, tc.expr)
			assert.Equal(t, tc.want, sb.String())
		})
	}
}

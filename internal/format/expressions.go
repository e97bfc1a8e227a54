package format

import (
	"strings"

	"github.com/sqlc-dev/litesql/ast"
)

// Expression formats an expression. Tokens are written in source order and
// parentheses only where the tree has a ChainedExpr, so the output parses
// back to the same tree. Error expressions render as nothing.
func Expression(sb *strings.Builder, expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.NumericLiteral:
		sb.WriteString(Number(e.Value))
	case *ast.StringLiteral:
		sb.WriteString(String(e.Value))
	case *ast.BlobLiteral:
		sb.WriteString("X'")
		sb.WriteString(e.Value)
		sb.WriteString("'")
	case *ast.NullLiteral:
		sb.WriteString("NULL")
	case *ast.ColumnName:
		sb.WriteString(QualifiedName(e.Schema, e.Table, e.Column))
	case *ast.UnaryExpr:
		formatUnaryExpr(sb, e)
	case *ast.BinaryExpr:
		Expression(sb, e.Left)
		sb.WriteString(" ")
		sb.WriteString(string(e.Op))
		sb.WriteString(" ")
		Expression(sb, e.Right)
	case *ast.ChainedExpr:
		formatChainedExpr(sb, e)
	case *ast.CastExpr:
		sb.WriteString("CAST(")
		Expression(sb, e.Expr)
		sb.WriteString(" AS ")
		if e.Type != nil {
			TypeName(sb, e.Type)
		}
		sb.WriteString(")")
	case *ast.CaseExpr:
		formatCaseExpr(sb, e)
	case *ast.CollateExpr:
		Expression(sb, e.Expr)
		sb.WriteString(" COLLATE ")
		sb.WriteString(Identifier(e.Collation))
	case *ast.IsExpr:
		Expression(sb, e.Left)
		sb.WriteString(" IS ")
		if e.Not {
			sb.WriteString("NOT ")
		}
		Expression(sb, e.Right)
	case *ast.MatchExpr:
		formatMatchExpr(sb, e)
	case *ast.NullExpr:
		Expression(sb, e.Expr)
		if e.Not {
			sb.WriteString(" NOTNULL")
		} else {
			sb.WriteString(" ISNULL")
		}
	case *ast.BetweenExpr:
		// Only a primary low bound re-parses to the same tree; the parser
		// never produces any other kind.
		Expression(sb, e.Expr)
		writeNot(sb, e.Not)
		sb.WriteString(" BETWEEN ")
		Expression(sb, e.Low)
		sb.WriteString(" AND ")
		Expression(sb, e.High)
	case *ast.InListExpr:
		Expression(sb, e.Expr)
		writeNot(sb, e.Not)
		sb.WriteString(" IN ")
		if e.List != nil {
			formatChainedExpr(sb, e.List)
		} else {
			sb.WriteString("()")
		}
	case *ast.InTableExpr:
		Expression(sb, e.Expr)
		writeNot(sb, e.Not)
		sb.WriteString(" IN ")
		sb.WriteString(QualifiedName(e.Schema, e.Table))
	}
}

func writeNot(sb *strings.Builder, not bool) {
	if not {
		sb.WriteString(" NOT")
	}
}

func formatUnaryExpr(sb *strings.Builder, e *ast.UnaryExpr) {
	var operand strings.Builder
	Expression(&operand, e.Operand)

	sb.WriteString(string(e.Op))
	// NOT needs a separator, and "- -x" must not become a line comment.
	if e.Op == ast.UnaryNot || (e.Op == ast.UnaryMinus && strings.HasPrefix(operand.String(), "-")) {
		sb.WriteString(" ")
	}
	sb.WriteString(operand.String())
}

func formatChainedExpr(sb *strings.Builder, e *ast.ChainedExpr) {
	sb.WriteString("(")
	for i, expr := range e.Exprs {
		if i > 0 {
			sb.WriteString(", ")
		}
		Expression(sb, expr)
	}
	sb.WriteString(")")
}

func formatCaseExpr(sb *strings.Builder, e *ast.CaseExpr) {
	sb.WriteString("CASE ")
	if e.Operand != nil {
		Expression(sb, e.Operand)
		sb.WriteString(" ")
	}
	for _, w := range e.Whens {
		sb.WriteString("WHEN ")
		Expression(sb, w.Condition)
		sb.WriteString(" THEN ")
		Expression(sb, w.Result)
		sb.WriteString(" ")
	}
	if e.Else != nil {
		sb.WriteString("ELSE ")
		Expression(sb, e.Else)
		sb.WriteString(" ")
	}
	sb.WriteString("END")
}

func formatMatchExpr(sb *strings.Builder, e *ast.MatchExpr) {
	Expression(sb, e.Left)
	writeNot(sb, e.Not)
	sb.WriteString(" ")
	sb.WriteString(string(e.Op))
	sb.WriteString(" ")
	Expression(sb, e.Right)
	if e.Escape != nil {
		sb.WriteString(" ESCAPE ")
		Expression(sb, e.Escape)
	}
}

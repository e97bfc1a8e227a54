// Package ast defines the abstract syntax tree for the litesql dialect.
package ast

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/sqlc-dev/litesql/token"
)

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() token.Position
	End() token.Position
}

// Statement is the interface implemented by all statement nodes.
type Statement interface {
	Node
	statementNode()
}

// Expression is the interface implemented by all expression nodes.
type Expression interface {
	Node
	expressionNode()
}

// qualify joins the non-empty parts of a dotted name.
func qualify(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ".")
}

// -----------------------------------------------------------------------------
// Statements

// CreateTable represents a CREATE TABLE statement.
type CreateTable struct {
	Position      token.Position      `json:"-"`
	Schema        string              `json:"schema,omitempty"`
	Table         string              `json:"table"`
	Columns       []*ColumnDefinition `json:"columns"`
	Temporary     bool                `json:"temporary,omitempty"`
	ErrorIfExists bool                `json:"error_if_exists"` // false when IF NOT EXISTS was given
}

func (c *CreateTable) Pos() token.Position { return c.Position }
func (c *CreateTable) End() token.Position { return c.Position }
func (c *CreateTable) statementNode()      {}

// Name returns the schema-qualified table name.
func (c *CreateTable) Name() string { return qualify(c.Schema, c.Table) }

// DropTable represents a DROP TABLE statement.
type DropTable struct {
	Position         token.Position `json:"-"`
	Schema           string         `json:"schema,omitempty"`
	Table            string         `json:"table"`
	ErrorIfNotExists bool           `json:"error_if_not_exists"` // false when IF EXISTS was given
}

func (d *DropTable) Pos() token.Position { return d.Position }
func (d *DropTable) End() token.Position { return d.Position }
func (d *DropTable) statementNode()      {}

// Name returns the schema-qualified table name.
func (d *DropTable) Name() string { return qualify(d.Schema, d.Table) }

// ErrorStatement stands in for a statement that could not be parsed.
type ErrorStatement struct {
	Position token.Position `json:"-"`
}

func (e *ErrorStatement) Pos() token.Position { return e.Position }
func (e *ErrorStatement) End() token.Position { return e.Position }
func (e *ErrorStatement) statementNode()      {}

// ColumnDefinition represents a column in CREATE TABLE.
type ColumnDefinition struct {
	Position token.Position `json:"-"`
	Name     string         `json:"name"`
	Type     *TypeName      `json:"type"`
}

func (c *ColumnDefinition) Pos() token.Position { return c.Position }
func (c *ColumnDefinition) End() token.Position { return c.Position }

// TypeName represents a column or CAST type such as VARCHAR(255) or
// DECIMAL(10, 2).
type TypeName struct {
	Position    token.Position  `json:"-"`
	Name        string          `json:"name"`
	Constraints []*SignedNumber `json:"constraints,omitempty"` // zero, one or two entries
}

func (t *TypeName) Pos() token.Position { return t.Position }
func (t *TypeName) End() token.Position { return t.Position }

// SignedNumber is a numeric literal with its sign folded in.
type SignedNumber struct {
	Position token.Position `json:"-"`
	Value    float64        `json:"value"`
}

func (s *SignedNumber) Pos() token.Position { return s.Position }
func (s *SignedNumber) End() token.Position { return s.Position }

// MarshalJSON handles special float values (NaN, +Inf, -Inf) that JSON doesn't support.
func (s *SignedNumber) MarshalJSON() ([]byte, error) {
	type signedNumberAlias SignedNumber
	if v, ok := nonFinite(s.Value); ok {
		return json.Marshal(&struct {
			*signedNumberAlias
			Value string `json:"value"`
		}{
			signedNumberAlias: (*signedNumberAlias)(s),
			Value:             v,
		})
	}
	return json.Marshal((*signedNumberAlias)(s))
}

// -----------------------------------------------------------------------------
// Literals

// NumericLiteral represents an integer or floating point literal.
type NumericLiteral struct {
	Position token.Position `json:"-"`
	Value    float64        `json:"value"`
}

func (n *NumericLiteral) Pos() token.Position { return n.Position }
func (n *NumericLiteral) End() token.Position { return n.Position }
func (n *NumericLiteral) expressionNode()     {}

// MarshalJSON handles special float values (NaN, +Inf, -Inf) that JSON doesn't support.
func (n *NumericLiteral) MarshalJSON() ([]byte, error) {
	type numericLiteralAlias NumericLiteral
	if v, ok := nonFinite(n.Value); ok {
		return json.Marshal(&struct {
			*numericLiteralAlias
			Value string `json:"value"`
		}{
			numericLiteralAlias: (*numericLiteralAlias)(n),
			Value:               v,
		})
	}
	return json.Marshal((*numericLiteralAlias)(n))
}

func nonFinite(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "+Inf", true
	case math.IsInf(f, -1):
		return "-Inf", true
	}
	return "", false
}

// StringLiteral represents a single-quoted string literal.
type StringLiteral struct {
	Position token.Position `json:"-"`
	Value    string         `json:"value"`
}

func (s *StringLiteral) Pos() token.Position { return s.Position }
func (s *StringLiteral) End() token.Position { return s.Position }
func (s *StringLiteral) expressionNode()     {}

// BlobLiteral represents X'..'. Value holds the hex digits.
type BlobLiteral struct {
	Position token.Position `json:"-"`
	Value    string         `json:"value"`
}

func (b *BlobLiteral) Pos() token.Position { return b.Position }
func (b *BlobLiteral) End() token.Position { return b.Position }
func (b *BlobLiteral) expressionNode()     {}

// NullLiteral represents NULL.
type NullLiteral struct {
	Position token.Position `json:"-"`
}

func (n *NullLiteral) Pos() token.Position { return n.Position }
func (n *NullLiteral) End() token.Position { return n.Position }
func (n *NullLiteral) expressionNode()     {}

// -----------------------------------------------------------------------------
// Expressions

// ColumnName represents column, table.column or schema.table.column.
type ColumnName struct {
	Position token.Position `json:"-"`
	Schema   string         `json:"schema,omitempty"`
	Table    string         `json:"table,omitempty"`
	Column   string         `json:"column"`
}

func (c *ColumnName) Pos() token.Position { return c.Position }
func (c *ColumnName) End() token.Position { return c.Position }
func (c *ColumnName) expressionNode()     {}

// Name returns the dotted column reference.
func (c *ColumnName) Name() string { return qualify(c.Schema, c.Table, c.Column) }

// UnaryOperator is a prefix operator.
type UnaryOperator string

const (
	UnaryMinus      UnaryOperator = "-"
	UnaryPlus       UnaryOperator = "+"
	UnaryBitwiseNot UnaryOperator = "~"
	UnaryNot        UnaryOperator = "NOT"
)

// UnaryExpr represents a prefix operator applied to an operand.
type UnaryExpr struct {
	Position token.Position `json:"-"`
	Op       UnaryOperator  `json:"op"`
	Operand  Expression     `json:"operand"`
}

func (u *UnaryExpr) Pos() token.Position { return u.Position }
func (u *UnaryExpr) End() token.Position { return u.Position }
func (u *UnaryExpr) expressionNode()     {}

// BinaryOperator is an infix operator.
type BinaryOperator string

const (
	OpConcatenate    BinaryOperator = "||"
	OpMultiply       BinaryOperator = "*"
	OpDivide         BinaryOperator = "/"
	OpModulo         BinaryOperator = "%"
	OpAdd            BinaryOperator = "+"
	OpSubtract       BinaryOperator = "-"
	OpShiftLeft      BinaryOperator = "<<"
	OpShiftRight     BinaryOperator = ">>"
	OpBitwiseAnd     BinaryOperator = "&"
	OpBitwiseOr      BinaryOperator = "|"
	OpLessThan       BinaryOperator = "<"
	OpLessOrEqual    BinaryOperator = "<="
	OpGreaterThan    BinaryOperator = ">"
	OpGreaterOrEqual BinaryOperator = ">="
	OpEquals         BinaryOperator = "="
	OpNotEquals      BinaryOperator = "!="
	OpAnd            BinaryOperator = "AND"
	OpOr             BinaryOperator = "OR"
)

// BinaryExpr represents an infix operator. Operators have no relative
// precedence: a chain is nested to the right.
type BinaryExpr struct {
	Position token.Position `json:"-"`
	Op       BinaryOperator `json:"op"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func (b *BinaryExpr) Pos() token.Position { return b.Position }
func (b *BinaryExpr) End() token.Position { return b.Position }
func (b *BinaryExpr) expressionNode()     {}

// ChainedExpr represents a parenthesized, comma-separated expression list.
type ChainedExpr struct {
	Position token.Position `json:"-"`
	Exprs    []Expression   `json:"exprs"`
}

func (c *ChainedExpr) Pos() token.Position { return c.Position }
func (c *ChainedExpr) End() token.Position { return c.Position }
func (c *ChainedExpr) expressionNode()     {}

// CastExpr represents CAST(expr AS type).
type CastExpr struct {
	Position token.Position `json:"-"`
	Expr     Expression     `json:"expr"`
	Type     *TypeName      `json:"type"`
}

func (c *CastExpr) Pos() token.Position { return c.Position }
func (c *CastExpr) End() token.Position { return c.Position }
func (c *CastExpr) expressionNode()     {}

// CaseExpr represents a CASE expression.
type CaseExpr struct {
	Position token.Position `json:"-"`
	Operand  Expression     `json:"operand,omitempty"`
	Whens    []*WhenClause  `json:"whens"`
	Else     Expression     `json:"else,omitempty"`
}

func (c *CaseExpr) Pos() token.Position { return c.Position }
func (c *CaseExpr) End() token.Position { return c.Position }
func (c *CaseExpr) expressionNode()     {}

// WhenClause represents WHEN ... THEN ... in a CASE expression.
type WhenClause struct {
	Position  token.Position `json:"-"`
	Condition Expression     `json:"condition"`
	Result    Expression     `json:"result"`
}

func (w *WhenClause) Pos() token.Position { return w.Position }
func (w *WhenClause) End() token.Position { return w.Position }

// CollateExpr represents expr COLLATE name.
type CollateExpr struct {
	Position  token.Position `json:"-"`
	Expr      Expression     `json:"expr"`
	Collation string         `json:"collation"`
}

func (c *CollateExpr) Pos() token.Position { return c.Position }
func (c *CollateExpr) End() token.Position { return c.Position }
func (c *CollateExpr) expressionNode()     {}

// IsExpr represents lhs IS [NOT] rhs.
type IsExpr struct {
	Position token.Position `json:"-"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
	Not      bool           `json:"not,omitempty"`
}

func (i *IsExpr) Pos() token.Position { return i.Position }
func (i *IsExpr) End() token.Position { return i.Position }
func (i *IsExpr) expressionNode()     {}

// MatchOperator is one of the pattern matching keywords.
type MatchOperator string

const (
	MatchLike   MatchOperator = "LIKE"
	MatchGlob   MatchOperator = "GLOB"
	MatchMatch  MatchOperator = "MATCH"
	MatchRegexp MatchOperator = "REGEXP"
)

// MatchExpr represents lhs [NOT] LIKE|GLOB|MATCH|REGEXP rhs [ESCAPE e].
type MatchExpr struct {
	Position token.Position `json:"-"`
	Op       MatchOperator  `json:"op"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
	Escape   Expression     `json:"escape,omitempty"`
	Not      bool           `json:"not,omitempty"`
}

func (m *MatchExpr) Pos() token.Position { return m.Position }
func (m *MatchExpr) End() token.Position { return m.Position }
func (m *MatchExpr) expressionNode()     {}

// NullExpr represents expr ISNULL, expr NOTNULL and expr NOT NULL.
type NullExpr struct {
	Position token.Position `json:"-"`
	Expr     Expression     `json:"expr"`
	Not      bool           `json:"not,omitempty"`
}

func (n *NullExpr) Pos() token.Position { return n.Position }
func (n *NullExpr) End() token.Position { return n.Position }
func (n *NullExpr) expressionNode()     {}

// BetweenExpr represents expr [NOT] BETWEEN low AND high.
type BetweenExpr struct {
	Position token.Position `json:"-"`
	Expr     Expression     `json:"expr"`
	Low      Expression     `json:"low"`
	High     Expression     `json:"high"`
	Not      bool           `json:"not,omitempty"`
}

func (b *BetweenExpr) Pos() token.Position { return b.Position }
func (b *BetweenExpr) End() token.Position { return b.Position }
func (b *BetweenExpr) expressionNode()     {}

// InListExpr represents expr [NOT] IN (a, b, ...).
type InListExpr struct {
	Position token.Position `json:"-"`
	Expr     Expression     `json:"expr"`
	List     *ChainedExpr   `json:"list"`
	Not      bool           `json:"not,omitempty"`
}

func (i *InListExpr) Pos() token.Position { return i.Position }
func (i *InListExpr) End() token.Position { return i.Position }
func (i *InListExpr) expressionNode()     {}

// InTableExpr represents expr [NOT] IN [schema.]table.
type InTableExpr struct {
	Position token.Position `json:"-"`
	Expr     Expression     `json:"expr"`
	Schema   string         `json:"schema,omitempty"`
	Table    string         `json:"table"`
	Not      bool           `json:"not,omitempty"`
}

func (i *InTableExpr) Pos() token.Position { return i.Position }
func (i *InTableExpr) End() token.Position { return i.Position }
func (i *InTableExpr) expressionNode()     {}

// Name returns the schema-qualified table name.
func (i *InTableExpr) Name() string { return qualify(i.Schema, i.Table) }

// ErrorExpr stands in for an expression that could not be parsed.
type ErrorExpr struct {
	Position token.Position `json:"-"`
}

func (e *ErrorExpr) Pos() token.Position { return e.Position }
func (e *ErrorExpr) End() token.Position { return e.Position }
func (e *ErrorExpr) expressionNode()     {}

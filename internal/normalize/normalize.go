// Package normalize provides SQL normalization functions for comparing
// semantically equivalent SQL statements that may differ syntactically.
package normalize

import (
	"regexp"
	"strings"

	"github.com/sqlc-dev/litesql/internal/format"
	"github.com/sqlc-dev/litesql/lexer"
	"github.com/sqlc-dev/litesql/token"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Whitespace collapses all whitespace sequences to a single space
// and trims leading/trailing whitespace.
func Whitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// SQL re-lexes s and renders every token in canonical form, separated by
// single spaces. Comments are dropped and spelling variants are folded:
// == to =, <> to !=, TEMP to TEMPORARY, and NOT NULL to NOTNULL where it
// follows an operand. Two inputs with the same normal form parse to the
// same tree.
func SQL(s string) string {
	items := lexer.Tokenize(strings.NewReader(s))

	var out []string
	prev := token.ILLEGAL
	for i := 0; i < len(items); i++ {
		item := items[i]
		switch item.Token {
		case token.EOF, token.COMMENT:
			continue
		case token.NOT:
			// After an operator NOT NULL is a unary NOT of the NULL literal.
			next := nextSignificant(items, i)
			if next > 0 && items[next].Token == token.NULL && endsOperand(prev) {
				out = append(out, token.NOTNULL.String())
				prev = token.NOTNULL
				i = next
				continue
			}
		}
		out = append(out, canonical(item))
		prev = item.Token
	}
	return strings.Join(out, " ")
}

// endsOperand reports whether a token of type t can end a complete
// expression, so that a following NOT starts a secondary form.
func endsOperand(t token.Token) bool {
	switch t {
	case token.IDENT, token.NUMBER, token.STRING, token.BLOB, token.NULL,
		token.PARAM, token.QUESTION, token.RPAREN, token.END,
		token.ISNULL, token.NOTNULL:
		return true
	}
	return false
}

// nextSignificant returns the index of the next non-comment item after i,
// or -1.
func nextSignificant(items []lexer.Item, i int) int {
	for j := i + 1; j < len(items); j++ {
		if items[j].Token != token.COMMENT {
			return j
		}
	}
	return -1
}

func canonical(item lexer.Item) string {
	switch item.Token {
	case token.IDENT:
		return format.Identifier(item.Value)
	case token.NUMBER:
		return format.Number(item.Number)
	case token.STRING:
		return format.String(item.Value)
	case token.BLOB:
		return "X'" + strings.ToUpper(item.Value) + "'"
	case token.EQEQ:
		return token.EQ.String()
	case token.LTGT:
		return token.NEQ.String()
	case token.TEMP:
		return token.TEMPORARY.String()
	case token.ILLEGAL, token.PARAM, token.QUESTION:
		return item.Value
	}
	return item.Token.String()
}

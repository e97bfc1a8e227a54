package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/litesql/internal/normalize"
	"github.com/sqlc-dev/litesql/parser"
)

func TestWhitespace(t *testing.T) {
	assert.Equal(t, "DROP TABLE t;", normalize.Whitespace("  DROP\n\tTABLE   t;\n"))
	assert.Equal(t, "", normalize.Whitespace(" \n "))
}

func TestSQL(t *testing.T) {
	tests := []struct {
		desc  string
		input string
		want  string
	}{
		{"keywords", "create temp table t (a int);", "CREATE TEMPORARY TABLE t ( a int ) ;"},
		{"comments", "DROP TABLE -- gone\n t /* x */;", "DROP TABLE t ;"},
		{"operators", "a == b AND c <> d", "a = b AND c != d"},
		{"numbers", "1.0 + 0x10 + .5e1", "1 + 16 + 5"},
		{"quoted identifiers", `"a" + [b] + "table"`, `a + b + "table"`},
		{"strings", "'it''s' || x'cafe'", "'it''s' || X'CAFE'"},
		{"not null", "x NOT /* c */ NULL", "x NOTNULL"},
		{"is not null", "x IS NOT NULL", "x IS NOT NULL"},
		{"not null after operator", "x = NOT NULL", "x = NOT NULL"},
		{"not null after paren", "(NOT NULL)", "( NOT NULL )"},
		{"not null after column", "(x) NOT NULL", "( x ) NOTNULL"},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.want, normalize.SQL(tc.input))
		})
	}
}

func TestSQLFoldsEquivalentSpellings(t *testing.T) {
	assert.Equal(t,
		normalize.SQL("CREATE TEMP TABLE \"t\" (a INT);"),
		normalize.SQL("create temporary table t(a INT) ;"),
	)
}

// Inputs that normalize alike must parse alike, and inputs that parse
// differently must not normalize alike.
func TestSQLMatchesParse(t *testing.T) {
	tests := []struct {
		a, b string
		same bool
	}{
		{"x NOT NULL", "x NOTNULL", true},
		{"x = NOT NULL", "x = NOTNULL", false},
		{"x IS NOT NULL", "x IS NOTNULL", false},
		{"a == b", "a = b", true},
		{"a <> b", "a != b", true},
	}
	for _, tc := range tests {
		t.Run(tc.a, func(t *testing.T) {
			assert.Equal(t, tc.same, normalize.SQL(tc.a) == normalize.SQL(tc.b))
			if !tc.same {
				return
			}
			exprA, err := parser.ParseExpr(tc.a)
			require.NoError(t, err)
			exprB, err := parser.ParseExpr(tc.b)
			require.NoError(t, err)
			assert.Equal(t, parser.Explain(exprA), parser.Explain(exprB))
		})
	}
}

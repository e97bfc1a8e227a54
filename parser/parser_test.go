package parser_test

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/litesql/ast"
	"github.com/sqlc-dev/litesql/internal/golden"
	"github.com/sqlc-dev/litesql/parser"
	"github.com/sqlc-dev/litesql/token"
)

// Every pointer, interface and slice costs deep a level, so nested
// expressions exceed the default depth quickly; beyond MaxDepth deep stops
// comparing and reports equality.
func init() {
	deep.MaxDepth = 10000
}

var positionType = reflect.TypeOf(token.Position{})

// stripPositions zeroes every token.Position reachable from v so parsed
// trees can be compared with hand-built ones.
func stripPositions(v any) {
	stripValue(reflect.ValueOf(v))
}

func stripValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if !v.IsNil() {
			stripValue(v.Elem())
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			stripValue(v.Index(i))
		}
	case reflect.Struct:
		if v.Type() == positionType {
			if v.CanSet() {
				v.Set(reflect.Zero(positionType))
			}
			return
		}
		for i := 0; i < v.NumField(); i++ {
			stripValue(v.Field(i))
		}
	}
}

// assertTree compares got against want ignoring source positions.
func assertTree(t *testing.T, want, got any) {
	t.Helper()
	stripPositions(got)
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("tree mismatch:\n%s", strings.Join(diff, "\n"))
	}
}

// TestParser runs the golden test cases in the testdata directory.
// Each subdirectory in testdata represents a test case with:
//   - query.sql: the SQL to parse
//   - explain.txt: the expected node listing
//   - metadata.json (optional): expected diagnostic count and whether
//     query.sql holds an expression
//
// Cases that parse cleanly must also survive a format round trip.
// Regenerate explain.txt with: go run ./cmd/regenerate-explain
func TestParser(t *testing.T) {
	cases, err := golden.Load("testdata")
	if err != nil {
		t.Fatalf("Failed to load testdata: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
			defer cancel()

			res, err := golden.Run(ctx, tc)
			require.NoError(t, err)
			assert.Equal(t, tc.Explain, res.Explain)
			assert.Len(t, res.Errors, tc.Metadata.Errors, "diagnostics: %v", res.Errors)

			if tc.Metadata.Errors != 0 {
				return
			}

			if tc.Metadata.Expression {
				again, err := parser.ParseExpr(parser.FormatExpr(res.Expression))
				require.NoError(t, err)
				stripPositions(res.Expression)
				assertTree(t, res.Expression, again)
				return
			}

			for _, stmt := range res.Statements {
				_, err := json.Marshal(stmt)
				require.NoError(t, err)
			}

			again, err := parser.ParseString(ctx, parser.Format(res.Statements))
			require.NoError(t, err)
			stripPositions(res.Statements)
			assertTree(t, res.Statements, again)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	e := parser.Error{Message: "unexpected token SELECT, expected CREATE or DROP", Pos: token.Position{Line: 2, Column: 5}}
	assert.Equal(t, "unexpected token SELECT, expected CREATE or DROP at line 2, column 5", e.Error())

	assert.NoError(t, parser.ErrorList(nil).Err())

	list := parser.ErrorList{e, {Message: "x", Pos: token.Position{Line: 1, Column: 1}}}
	assert.Equal(t, "parse errors: unexpected token SELECT, expected CREATE or DROP at line 2, column 5; x at line 1, column 1", list.Err().Error())
}

func TestMalformedInputNeverPanics(t *testing.T) {
	inputs := []string{
		"", ";", "(", ")", "CREATE", "CREATE TABLE", "CREATE TABLE t (", "CREATE TABLE t (a INT,",
		"CREATE TABLE t (a VARCHAR(", "CREATE TABLE t (a VARCHAR(-", "DROP", "DROP TABLE IF",
		"DROP TABLE s.", "CREATE TEMP TABLE IF NOT", "'unterminated", "X'zz'", "@@@", "CREATE TABLE t (a INT) junk",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert.NotPanics(t, func() {
				stmts, err := parser.ParseString(context.Background(), input)
				if strings.TrimSpace(input) == "" || input == ";" {
					assert.NoError(t, err)
					assert.Empty(t, stmts)
					return
				}
				assert.Error(t, err)
				assert.NotEmpty(t, stmts)
			})
		})
	}
}

func TestErrorsAreACopy(t *testing.T) {
	p := parser.New(strings.NewReader("SELECT"))
	p.NextStatement()
	errs := p.Errors()
	require.Len(t, errs, 1)
	errs[0].Message = "changed"
	assert.NotEqual(t, "changed", p.Errors()[0].Message)
}

func TestNodePositions(t *testing.T) {
	stmts, err := parser.ParseString(context.Background(), "DROP TABLE a;\n  CREATE TABLE b (c INT);")
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	assert.Equal(t, token.Position{Offset: 0, Line: 1, Column: 1}, stmts[0].Pos())
	create := stmts[1].(*ast.CreateTable)
	assert.Equal(t, token.Position{Offset: 16, Line: 2, Column: 3}, create.Pos())
	assert.Equal(t, 2, create.Columns[0].Pos().Line)
	assert.Equal(t, 19, create.Columns[0].Pos().Column)
}

// BenchmarkParser benchmarks the parser on a mix of statements.
func BenchmarkParser(b *testing.B) {
	query := `
		CREATE TEMP TABLE IF NOT EXISTS main.orders (
			id INTEGER,
			customer VARCHAR(255),
			amount DECIMAL(10, 2),
			notes
		);
		DROP TABLE IF EXISTS main.orders;
	`

	ctx := context.Background()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := parser.ParseString(ctx, query)
		if err != nil {
			b.Fatal(err)
		}
	}
}

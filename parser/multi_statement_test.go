package parser_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sqlc-dev/litesql/ast"
	"github.com/sqlc-dev/litesql/parser"
)

func TestMultiStatementParsing(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected int
	}{
		{
			name:     "two drops with semicolon",
			sql:      "DROP TABLE a; DROP TABLE b;",
			expected: 2,
		},
		{
			name:     "create then drop",
			sql:      "CREATE TABLE t (a INT); DROP TABLE t;",
			expected: 2,
		},
		{
			name:     "multiple semicolons between statements",
			sql:      "DROP TABLE a;; DROP TABLE b;;; DROP TABLE c;",
			expected: 3,
		},
		{
			name:     "leading semicolons",
			sql:      ";; DROP TABLE a;",
			expected: 1,
		},
		{
			name:     "newlines between statements",
			sql:      "DROP TABLE a;\nDROP TABLE b;\nDROP TABLE c;",
			expected: 3,
		},
		{
			name:     "comments only",
			sql:      "-- nothing here\n/* or here */",
			expected: 0,
		},
		{
			name:     "empty input",
			sql:      "",
			expected: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			stmts, err := parser.Parse(ctx, strings.NewReader(tc.sql))
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if len(stmts) != tc.expected {
				t.Errorf("Expected %d statements, got %d", tc.expected, len(stmts))
			}
		})
	}
}

func TestMultiStatementRecovery(t *testing.T) {
	tests := []struct {
		name   string
		sql    string
		kinds  []string
		errors int
	}{
		{
			name:   "unsupported statement in the middle",
			sql:    "DROP TABLE a; SELECT 1; DROP TABLE b;",
			kinds:  []string{"DropTable", "ErrorStatement", "DropTable"},
			errors: 1,
		},
		{
			name:   "garbage without trailing semicolon",
			sql:    "DROP TABLE a; garbage here",
			kinds:  []string{"DropTable", "ErrorStatement"},
			errors: 1,
		},
		{
			name:   "two bad statements",
			sql:    "INSERT INTO t; UPDATE t; DROP TABLE t;",
			kinds:  []string{"ErrorStatement", "ErrorStatement", "DropTable"},
			errors: 2,
		},
		{
			name:   "missing semicolon runs into the next statement",
			sql:    "DROP TABLE a DROP TABLE b;",
			kinds:  []string{"DropTable", "ErrorStatement"},
			errors: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stmts, err := parser.ParseString(context.Background(), tc.sql)

			var kinds []string
			for _, stmt := range stmts {
				switch stmt.(type) {
				case *ast.CreateTable:
					kinds = append(kinds, "CreateTable")
				case *ast.DropTable:
					kinds = append(kinds, "DropTable")
				case *ast.ErrorStatement:
					kinds = append(kinds, "ErrorStatement")
				}
			}
			if strings.Join(kinds, ",") != strings.Join(tc.kinds, ",") {
				t.Errorf("Expected statements %v, got %v", tc.kinds, kinds)
			}

			var list parser.ErrorList
			if !errors.As(err, &list) {
				t.Fatalf("Expected an ErrorList, got %v", err)
			}
			if len(list) != tc.errors {
				t.Errorf("Expected %d diagnostics, got %d: %v", tc.errors, len(list), list)
			}
		})
	}
}

func TestParseStatementsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stmts, err := parser.ParseString(ctx, "DROP TABLE a; DROP TABLE b;")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if len(stmts) != 0 {
		t.Errorf("Expected no statements, got %d", len(stmts))
	}
}

func TestParseStatementsCanceledKeepsDiagnostics(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := parser.New(strings.NewReader("SELECT 1; DROP TABLE b;"))
	p.NextStatement()

	stmts, err := p.ParseStatements(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	var diagnostics parser.ErrorList
	if !errors.As(err, &diagnostics) {
		t.Fatalf("Expected diagnostics in %v", err)
	}
	if len(diagnostics) != 1 {
		t.Errorf("Expected 1 diagnostic, got %d", len(diagnostics))
	}
	if len(stmts) != 0 {
		t.Errorf("Expected no statements, got %d", len(stmts))
	}
}

func TestParseFile(t *testing.T) {
	// Create a temporary SQL file with multiple statements
	tmpDir := t.TempDir()
	sqlFile := filepath.Join(tmpDir, "test.sql")

	content := `-- This is a SQL file with multiple statements
DROP TABLE IF EXISTS test_table;

-- Create a table
CREATE TABLE test_table (
    id INTEGER,
    name VARCHAR(64)
);

/* A temporary copy */
CREATE TEMP TABLE IF NOT EXISTS scratch (id);

DROP TABLE scratch;
`
	if err := os.WriteFile(sqlFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	ctx := context.Background()
	stmts, err := parser.ParseFile(ctx, sqlFile)
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if len(stmts) != 4 {
		t.Errorf("Expected 4 statements, got %d", len(stmts))
	}
}

func TestParseFileNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := parser.ParseFile(ctx, "/nonexistent/file.sql")
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist in chain, got %v", err)
	}
}

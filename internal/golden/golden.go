// Package golden loads and regenerates the parser's golden test cases.
//
// Each case is a directory holding query.sql, the expected node listing in
// explain.txt and an optional metadata.json.
package golden

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sqlc-dev/litesql/ast"
	"github.com/sqlc-dev/litesql/parser"
)

// Metadata holds optional per-case settings.
type Metadata struct {
	// Expression marks query.sql as a single expression rather than statements.
	Expression bool `json:"expression,omitempty"`
	// Errors is the number of diagnostics the parser is expected to record.
	Errors int    `json:"errors,omitempty"`
	Source string `json:"source,omitempty"`
}

// Case is one golden test case.
type Case struct {
	Name     string
	Dir      string
	Query    string
	Explain  string // contents of explain.txt, empty when missing
	Metadata Metadata
}

// Result is what the parser currently produces for a case.
type Result struct {
	Explain    string
	Errors     parser.ErrorList
	Statements []ast.Statement // statement cases only
	Expression ast.Expression  // expression cases only
}

// Load reads every case directory under dir, sorted by name.
func Load(dir string) ([]Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading testdata: %w", err)
	}

	var cases []Case
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		c, err := LoadCase(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })
	return cases, nil
}

// LoadCase reads a single case directory.
func LoadCase(dir string) (Case, error) {
	c := Case{Name: filepath.Base(dir), Dir: dir}

	queryBytes, err := os.ReadFile(filepath.Join(dir, "query.sql"))
	if err != nil {
		return c, fmt.Errorf("reading query.sql: %w", err)
	}
	c.Query = string(queryBytes)

	explainBytes, err := os.ReadFile(filepath.Join(dir, "explain.txt"))
	switch {
	case err == nil:
		c.Explain = string(explainBytes)
	case !errors.Is(err, os.ErrNotExist):
		return c, fmt.Errorf("reading explain.txt: %w", err)
	}

	metadataBytes, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	switch {
	case err == nil:
		if err := json.Unmarshal(metadataBytes, &c.Metadata); err != nil {
			return c, fmt.Errorf("parsing %s/metadata.json: %w", c.Name, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return c, fmt.Errorf("reading metadata.json: %w", err)
	}
	return c, nil
}

// Run parses the case's query. The returned error is non-nil only when
// parsing was interrupted; diagnostics are reported in Result.Errors.
func Run(ctx context.Context, c Case) (Result, error) {
	var res Result

	if c.Metadata.Expression {
		expr, err := parser.ParseExpr(c.Query)
		res.Expression = expr
		res.Explain = parser.Explain(expr)
		errors.As(err, &res.Errors)
		return res, nil
	}

	stmts, err := parser.ParseString(ctx, c.Query)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return res, err
	}
	if err != nil && !errors.As(err, &res.Errors) {
		return res, err
	}
	res.Statements = stmts

	var sb strings.Builder
	for _, stmt := range stmts {
		sb.WriteString(parser.Explain(stmt))
	}
	res.Explain = sb.String()
	return res, nil
}

// Passes reports whether res matches the case's expectations.
func (c Case) Passes(res Result) bool {
	return res.Explain == c.Explain && len(res.Errors) == c.Metadata.Errors
}

// Write stores res as the case's expected output. metadata.json is
// rewritten only when it exists or the case expects diagnostics.
func (c Case) Write(res Result) error {
	if err := os.WriteFile(filepath.Join(c.Dir, "explain.txt"), []byte(res.Explain), 0644); err != nil {
		return fmt.Errorf("writing explain.txt: %w", err)
	}

	metadata := c.Metadata
	metadata.Errors = len(res.Errors)
	metadataPath := filepath.Join(c.Dir, "metadata.json")
	if _, err := os.Stat(metadataPath); errors.Is(err, os.ErrNotExist) && metadata == (Metadata{}) {
		return nil
	}
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(metadataPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing metadata.json: %w", err)
	}
	return nil
}

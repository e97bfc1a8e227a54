package parser_test

import (
	"context"
	"testing"

	"github.com/sqlc-dev/litesql/internal/compat"
	"github.com/sqlc-dev/litesql/internal/golden"
	"github.com/sqlc-dev/litesql/parser"
)

// TestAfterShipParserSummary runs the AfterShip ClickHouse parser over the
// statement cases in testdata and logs where it disagrees with litesql.
// The dialects differ, so disagreement never fails the test.
// Use with: go test ./parser -run TestAfterShipParserSummary -v
func TestAfterShipParserSummary(t *testing.T) {
	cases, err := golden.Load("testdata")
	if err != nil {
		t.Fatalf("Failed to load testdata: %v", err)
	}

	var agree, disagree, panics, skipped int
	var disagreements []string

	for _, tc := range cases {
		if tc.Metadata.Expression {
			skipped++
			continue
		}

		_, parseErr := parser.ParseString(context.Background(), tc.Query)
		res := compat.Check(tc.Query)
		if res.Panicked {
			panics++
		}
		if res.Agree(parseErr == nil) {
			agree++
		} else {
			disagree++
			disagreements = append(disagreements, tc.Name)
		}
	}

	t.Logf("\n=== AfterShip Parser Comparison ===")
	t.Logf("Agree:    %d", agree)
	t.Logf("Disagree: %d", disagree)
	t.Logf("Panics:   %d", panics)
	t.Logf("Skipped:  %d", skipped)
	for _, name := range disagreements {
		t.Logf("  - %s", name)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/sqlc-dev/litesql/internal/golden"
)

type failingTest struct {
	c   golden.Case
	res golden.Result
}

func main() {
	dir := flag.String("dir", "parser/testdata", "Golden test directory")
	flag.Parse()

	cases, err := golden.Load(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading testdata: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	var failing []failingTest
	for _, c := range cases {
		res, err := golden.Run(ctx, c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", c.Name, err)
			continue
		}
		if !c.Passes(res) {
			failing = append(failing, failingTest{c: c, res: res})
		}
	}

	if len(failing) == 0 {
		fmt.Printf("All %d tests pass!\n", len(cases))
		return
	}

	// Sort by query size (shortest first)
	sort.Slice(failing, func(i, j int) bool {
		return len(failing[i].c.Query) < len(failing[j].c.Query)
	})

	next := failing[0]
	fmt.Printf("Next failing test: %s\n\n", next.c.Name)
	fmt.Printf("Query (%d bytes):\n%s\n", len(next.c.Query), next.c.Query)
	fmt.Printf("\nExpected explain (%d diagnostics):\n%s\n", next.c.Metadata.Errors, next.c.Explain)
	fmt.Printf("\nActual explain (%d diagnostics):\n%s\n", len(next.res.Errors), next.res.Explain)
	for _, e := range next.res.Errors {
		fmt.Printf("  %v\n", e)
	}

	fmt.Printf("\nRemaining failing tests: %d\n", len(failing))
}

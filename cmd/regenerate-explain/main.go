package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sqlc-dev/litesql/internal/golden"
)

func main() {
	testName := flag.String("test", "", "Single test directory name to process (if empty, process all)")
	dryRun := flag.Bool("dry-run", false, "Print changed cases without writing")
	dir := flag.String("dir", "parser/testdata", "Golden test directory")
	flag.Parse()

	testdataDir := *dir

	var cases []golden.Case
	if *testName != "" {
		c, err := golden.LoadCase(filepath.Join(testdataDir, *testName))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *testName, err)
			os.Exit(1)
		}
		cases = append(cases, c)
	} else {
		var err error
		cases, err = golden.Load(testdataDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	ctx := context.Background()
	var errors []string
	var written, unchanged int
	for _, c := range cases {
		res, err := golden.Run(ctx, c)
		if err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", c.Name, err))
			continue
		}
		if c.Passes(res) {
			unchanged++
			continue
		}

		fmt.Printf("%s (%d diagnostics)\n", c.Name, len(res.Errors))
		if *dryRun {
			fmt.Print(res.Explain)
			continue
		}
		if err := c.Write(res); err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", c.Name, err))
			continue
		}
		written++
	}

	fmt.Printf("\nWritten: %d, Unchanged: %d, Errors: %d\n", written, unchanged, len(errors))
	if len(errors) > 0 {
		fmt.Fprintf(os.Stderr, "\nErrors:\n")
		for _, e := range errors {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		os.Exit(1)
	}
}

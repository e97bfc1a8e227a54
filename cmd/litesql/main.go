// Command litesql parses SQL files, or stdin when no files are given, and
// prints the result. Diagnostics go to stderr and make the exit status 1.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sqlc-dev/litesql/ast"
	"github.com/sqlc-dev/litesql/parser"
)

var (
	mode     = flag.String("mode", "explain", "Output mode: explain, sql or json")
	exprFlag = flag.Bool("expr", false, "Parse the input as a single expression")
)

func main() {
	flag.Parse()

	switch *mode {
	case "explain", "sql", "json":
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode %q (want explain, sql or json)\n", *mode)
		os.Exit(2)
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	failed := false
	for _, name := range inputs {
		ok, err := run(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// run parses one input and prints it. It reports false when the parser
// recorded diagnostics.
func run(name string) (bool, error) {
	src, err := read(name)
	if err != nil {
		return false, err
	}

	var nodes []ast.Node
	var parseErr error
	if *exprFlag {
		var expr ast.Expression
		expr, parseErr = parser.ParseExpr(src)
		nodes = append(nodes, expr)
	} else {
		var stmts []ast.Statement
		stmts, parseErr = parser.ParseString(context.Background(), src)
		for _, stmt := range stmts {
			nodes = append(nodes, stmt)
		}
	}

	var diagnostics parser.ErrorList
	if parseErr != nil && !errors.As(parseErr, &diagnostics) {
		return false, parseErr
	}

	if err := output(nodes); err != nil {
		return false, err
	}

	for _, d := range diagnostics {
		fmt.Fprintf(os.Stderr, "%s: %v\n", displayName(name), d)
	}
	return len(diagnostics) == 0, nil
}

func read(name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}

func output(nodes []ast.Node) error {
	switch *mode {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	case "sql":
		var out []string
		for _, node := range nodes {
			switch n := node.(type) {
			case ast.Statement:
				out = append(out, parser.Format([]ast.Statement{n}))
			case ast.Expression:
				out = append(out, parser.FormatExpr(n))
			}
		}
		fmt.Println(strings.Join(out, "\n"))
	default:
		for _, node := range nodes {
			fmt.Print(parser.Explain(node))
		}
	}
	return nil
}

func displayName(name string) string {
	if name == "-" {
		return "<stdin>"
	}
	return name
}

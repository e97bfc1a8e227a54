// Package compat runs a second, independent SQL parser over queries so the
// litesql tools can report where the two disagree. The second parser
// speaks the ClickHouse dialect, so disagreement is informational only.
package compat

import (
	"fmt"

	aftership "github.com/AfterShip/clickhouse-sql-parser/parser"
)

// Result is the outcome of running the second parser over one query.
type Result struct {
	Parsed     bool  // parsed without error and produced at least one statement
	Panicked   bool  // the parser panicked; Err holds the recovered value
	Err        error // parse error, if any
	Statements int   // number of statements produced
}

// Check parses query with the AfterShip ClickHouse parser, recovering from
// panics.
func Check(query string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Panicked: true, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	p := aftership.NewParser(query)
	stmts, err := p.ParseStmts()
	if err != nil {
		return Result{Err: err, Statements: len(stmts)}
	}
	return Result{Parsed: len(stmts) > 0, Statements: len(stmts)}
}

// Agree reports whether the second parser accepted query exactly when
// litesql did.
func (r Result) Agree(accepted bool) bool {
	return r.Parsed == accepted
}

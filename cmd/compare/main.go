package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sqlc-dev/litesql/internal/compat"
	"github.com/sqlc-dev/litesql/internal/golden"
	"github.com/sqlc-dev/litesql/internal/normalize"
)

func main() {
	verbose := flag.Bool("v", false, "List every case, not only disagreements")
	dir := flag.String("dir", "parser/testdata", "Golden test directory")
	flag.Parse()

	cases, err := golden.Load(*dir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	var total, agree, disagree, panicked int
	var disagreements []string

	for _, c := range cases {
		if c.Metadata.Expression {
			continue
		}
		total++

		res, err := golden.Run(ctx, c)
		if err != nil {
			fmt.Printf("Error: %s: %v\n", c.Name, err)
			os.Exit(1)
		}
		accepted := len(res.Errors) == 0

		other := compat.Check(c.Query)
		if other.Panicked {
			panicked++
		}
		line := fmt.Sprintf("%-32s litesql=%-5t aftership=%-5t %s", c.Name, accepted, other.Parsed, normalize.SQL(c.Query))
		if other.Agree(accepted) {
			agree++
			if *verbose {
				fmt.Println(line)
			}
		} else {
			disagree++
			disagreements = append(disagreements, line)
		}
	}

	fmt.Println("╔════════════════════════════════════════════════════════════╗")
	fmt.Println("║        Comparison: litesql vs AfterShip acceptance         ║")
	fmt.Println("╠════════════════════════════════════════════════════════════╣")
	fmt.Printf("║  Statement tests:         %3d                              ║\n", total)
	fmt.Printf("║  Agree:                   %3d  (%5.1f%%)                    ║\n", agree, percent(agree, total))
	fmt.Printf("║  Disagree:                %3d  (%5.1f%%)                    ║\n", disagree, percent(disagree, total))
	fmt.Printf("║  AfterShip CRASHED:       %3d                              ║\n", panicked)
	fmt.Println("╚════════════════════════════════════════════════════════════╝")

	if len(disagreements) > 0 {
		fmt.Printf("\nDisagreements:\n")
		for _, d := range disagreements {
			fmt.Printf("  %s\n", d)
		}
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

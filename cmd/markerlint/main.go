// Command markerlint validates a marker data file: duplicate names, missing
// fields, and coordinates outside the map.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ODBDEVOPS/azeroth-map-app/internal/data"
	"github.com/ODBDEVOPS/azeroth-map-app/internal/marker"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: markerlint <file-or-url>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	ref := flag.Arg(0)

	records, err := data.Fetch(ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "markerlint: %v\n", err)
		os.Exit(1)
	}

	problems := lint(records)
	for _, p := range problems {
		fmt.Println(p)
	}

	fmt.Printf("%d markers, %d problems\n", len(records), len(problems))
	if len(problems) > 0 {
		os.Exit(1)
	}
}

// lint returns one message per problem, in record order.
func lint(records []marker.Record) []string {
	var problems []string
	report := func(i int, rec marker.Record, format string, args ...interface{}) {
		name := rec.Name
		if name == "" {
			name = fmt.Sprintf("record %d", i)
		}
		problems = append(problems, fmt.Sprintf("%s: %s", name, fmt.Sprintf(format, args...)))
	}

	seen := make(map[string]int)
	for i, rec := range records {
		if rec.Name == "" {
			report(i, rec, "empty name")
		} else if first, dup := seen[rec.Name]; dup {
			report(i, rec, "duplicate of record %d", first)
		} else {
			seen[rec.Name] = i
		}

		if rec.Category == "" {
			report(i, rec, "empty category")
		}
		if rec.Top < 0 || rec.Top > 100 {
			report(i, rec, "top %.2f outside 0-100", rec.Top)
		}
		if rec.Left < 0 || rec.Left > 100 {
			report(i, rec, "left %.2f outside 0-100", rec.Left)
		}
	}
	return problems
}

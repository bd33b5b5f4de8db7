// Command lvlcomb counts, generates, enumerates, or directly addresses
// the m-element subsets of the set {0, ..., n-1}.
//
// The count always comes first: it is cheap, it pre-sizes everything
// else, and it is where the one real failure (uint64 overflow) surfaces.
// Materialization honors a safety limit so an innocent pair of flags
// cannot eat the machine.
//
// Flags may also be supplied as environment variables (namsral/flag
// convention), e.g. LVLCOMB_N=20 lvlcomb -m 3 -print.
//
// Exit codes: 0 on success (including a skipped materialization and an
// out-of-range index), 1 on bad input, 2 on overflow.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/namsral/flag"

	"github.com/katalvlaran/lvlcomb/subsets"
)

var (
	banner = color.New(color.FgCyan)
	notice = color.New(color.FgYellow)
	fatal  = color.New(color.FgRed)
)

func main() {
	fs := flag.NewFlagSetWithEnvPrefix("lvlcomb", "LVLCOMB", flag.ExitOnError)
	var (
		n         = fs.Int("n", 16, "size of the set; elements are 0..n-1")
		m         = fs.Int("m", 4, "size of the subsets")
		limit     = fs.Uint64("limit", 1_000_000, "safety cap on produced combinations, 0 lifts it")
		iterative = fs.Bool("iterative", false, "use the iterative bulk engine")
		enumerate = fs.Bool("enumerate", false, "step through combinations instead of bulk generation")
		index     = fs.Int64("index", -1, "resolve only the combination at this index")
		printAll  = fs.Bool("print", false, "print the combinations, not only the count")
		quiet     = fs.Bool("quiet", false, "suppress the banner")
	)
	_ = fs.Parse(os.Args[1:])

	if *n < 0 {
		fail(1, "n must be non-negative, got %d", *n)
	}

	if !*quiet {
		banner.Println("Combination generator.")
	}

	set := make([]int, *n)
	for i := range set {
		set[i] = i
	}

	// Count first; every mode needs the total, and overflow ends the run
	// before any production starts.
	ix := subsets.NewIndexer(set, *m)
	total, err := ix.Total()
	if err != nil {
		fail(2, "counting C(%d,%d): %v", *n, *m, err)
	}
	fmt.Printf("Number of combinations: %d\n", total)

	switch {
	case *index >= 0:
		resolveIndex(ix, uint64(*index))
	case *enumerate:
		stepThrough(set, *m, *limit, *printAll)
	default:
		bulk(set, *m, total, *limit, *iterative, *printAll)
	}
}

// resolveIndex prints the single combination at index i, or a notice
// when the index lies past the end of the space.
func resolveIndex(ix *subsets.Indexer[int], i uint64) {
	combo, err := ix.Get(i)
	if err != nil {
		fail(2, "resolving index %d: %v", i, err)
	}
	if combo == nil {
		notice.Printf("no combination at index %d\n", i)
		return
	}
	printCombo(combo)
}

// stepThrough drives the pause/resume enumerator, stopping at the safety
// limit when one is set.
func stepThrough(set []int, m int, limit uint64, printAll bool) {
	e := subsets.NewEnumerator(set)

	var produced uint64
	for combo := e.First(m); combo != nil; combo = e.Next() {
		if limit > 0 && produced == limit {
			notice.Printf("stopped after %d combinations (limit %d; raise with -limit)\n", produced, limit)
			return
		}
		produced++
		if printAll {
			printCombo(combo)
		}
	}
	fmt.Printf("Enumerated %d combinations.\n", produced)
}

// bulk materializes the whole space, unless the count exceeds the safety
// limit.
func bulk(set []int, m int, total, limit uint64, iterative, printAll bool) {
	if limit > 0 && total > limit {
		notice.Printf("count %d exceeds limit %d; skipping materialization (raise with -limit)\n", total, limit)
		return
	}

	strategy := subsets.Recursive
	if iterative {
		strategy = subsets.Iterative
	}

	gen := subsets.NewGenerator(set, subsets.WithStrategy(strategy))
	if err := gen.Generate(m); err != nil {
		fail(2, "generating C(%d,%d): %v", len(set), m, err)
	}

	if printAll {
		for _, combo := range gen.Combinations() {
			printCombo(combo)
		}
	}
}

// printCombo writes one combination as space-separated elements; the
// empty combination prints as an empty line.
func printCombo(combo []int) {
	var sb strings.Builder
	for i, v := range combo {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	fmt.Println(sb.String())
}

// fail reports a fatal condition on stderr and exits with code.
func fail(code int, format string, args ...any) {
	fatal.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}

package subsets

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlcomb/binom"
)

// Generator materializes every m-element combination of its set in one
// call. Memory-hungry but random-access: the i-th row of Combinations is
// the i-th combination of the canonical order.
//
// The zero value is not ready; construct with NewGenerator. A Generator
// is not safe for concurrent use.
type Generator[T any] struct {
	set  []T     // private copy of the input set
	opts Options // engine configuration
	out  [][]T   // rows of the last Generate call
}

// NewGenerator returns a Generator over set. The input is copied; later
// mutation of the caller's slice does not affect generation.
func NewGenerator[T any](set []T, opts ...Option) *Generator[T] {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Generator[T]{
		set:  append([]T(nil), set...),
		opts: o,
	}
}

// Generate — materialize all C(n,m) combinations
//
// Algorithm Outline (choose-or-skip):
//  1. Validate the configured engine.
//  2. Degenerate m (m < 0 or m > n) ⇒ zero combinations, nil error.
//  3. Count first with a fresh binom.Counter: the exact C(n,m) pre-sizes
//     the result and surfaces overflow before anything is allocated.
//  4. Walk positions left to right; at each position either take the
//     element into the prefix or skip it, pruning prefixes that cannot
//     reach m elements with the positions remaining. Taking before
//     skipping yields the canonical order.
//  5. Recursive strategy recurses per position; Iterative drives the
//     explicit-stack Enumerator to exhaustion. Identical output.
//
// Complexity:
//
//	Time   = O(C(n,m)·m) element copies
//	Memory = O(C(n,m)·m) for the rows, O(m) transient
//
// Errors:
//   - ErrUnknownStrategy — Options carry an unsupported Strategy.
//   - binom.ErrOverflow (wrapped) — C(n,m) exceeds uint64.
//   - ErrCountTooLarge — C(n,m) fits uint64 but not int.
//
// On error the previous results are discarded and Len reports 0.
func (g *Generator[T]) Generate(m int) error {
	// 1) Forget previous results regardless of outcome.
	g.out = nil

	// 2) Validate the configured engine before any work.
	if g.opts.Strategy != Recursive && g.opts.Strategy != Iterative {
		return ErrUnknownStrategy
	}

	// 3) Degenerate sizes produce the empty result set.
	n := len(g.set)
	if m < 0 || m > n {
		g.out = [][]T{}

		return nil
	}

	// 4) Count first: exact pre-sizing, and failure before allocation.
	total, err := binom.NewCounter().Count(uint64(n), uint64(m))
	if err != nil {
		return fmt.Errorf("subsets: generate: %w", err)
	}
	if total > math.MaxInt {
		return ErrCountTooLarge
	}
	out := make([][]T, 0, int(total))

	// 5) Produce in canonical order with the configured engine.
	if g.opts.Strategy == Iterative {
		e := NewEnumerator(g.set)
		for combo := e.First(m); combo != nil; combo = e.Next() {
			out = append(out, combo)
		}
	} else {
		g.recurse(m, 0, make([]T, 0, m), &out)
	}

	g.out = out

	return nil
}

// recurse appends every completion of buf to out, deciding positions
// pos..n-1. buf carries capacity m, so the take branch never reallocates
// and the prefix is shared by both branches.
func (g *Generator[T]) recurse(m, pos int, buf []T, out *[][]T) {
	// 1) Complete prefix: emit a copy.
	if len(buf) == m {
		combo := make([]T, m)
		copy(combo, buf)
		*out = append(*out, combo)

		return
	}

	// 2) Prune prefixes the remaining positions cannot complete.
	if pos+(m-len(buf)) > len(g.set) {
		return
	}

	// 3) Take set[pos], then retry without it.
	g.recurse(m, pos+1, append(buf, g.set[pos]), out)
	g.recurse(m, pos+1, buf, out)
}

// Combinations returns the rows of the last successful Generate, nil
// before the first call or after a failed one. Rows are owned by the
// caller; the Generator retains the outer slice until the next Generate.
func (g *Generator[T]) Combinations() [][]T { return g.out }

// Len reports the number of combinations the last Generate produced.
func (g *Generator[T]) Len() int { return len(g.out) }

// Package subsets produces m-element subsets (combinations) of an
// n-element set, one way for every access pattern: all at once, one at a
// time, by index, over a channel, through a callback, or at random.
//
// 🚀 What is subsets?
//
//	Four producers built on one canonical order:
//	  • Generator  — materialize all C(n,m) combinations in memory,
//	    recursive or iterative strategy, byte-identical output
//	  • Enumerator — pause/resume production with an explicit stack;
//	    First(m) then Next() until nil, no recursion, no goroutines
//	  • Indexer    — direct access: the i-th combination constructed
//	    without touching the i-1 before it, plus uniform Sample
//	  • Stream & Walk — channel adapter and callback traversal over
//	    the Enumerator for range-loops and zero-allocation visits
//
// ✨ Key guarantees:
//   - Canonical order: every producer emits combinations in lexicographic
//     order of their position tuples; for index 0..C(n,m)-1 the i-th
//     combination is the same object of every producer.
//   - Degenerate sizes (m < 0 or m > n) yield defined empty results,
//     never errors, never panics.
//   - The only failure is counting overflow (binom.ErrOverflow) and its
//     materialization twin ErrCountTooLarge.
//   - Returned combinations are fresh copies; internal buffers never
//     escape (Walk is the documented exception).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlcomb/subsets"
//
//	gen := subsets.NewGenerator([]rune{'a', 'b', 'c', 'd'})
//	if err := gen.Generate(2); err != nil {
//	  // binom.ErrOverflow or subsets.ErrCountTooLarge
//	}
//	for _, combo := range gen.Combinations() {
//	  fmt.Println(string(combo)) // ab ac ad bc bd cd
//	}
//
//	e := subsets.NewEnumerator([]int{0, 1, 2, 3})
//	for combo := e.First(2); combo != nil; combo = e.Next() {
//	  fmt.Println(combo)
//	}
//
//	ix := subsets.NewIndexer([]int{0, 1, 2, 3}, 2)
//	third, _ := ix.Get(3) // [1 2] without producing the first three
//
// Ordering:
//
//	The canonical order is lexicographic over position tuples: the first
//	combination is {set[0],...,set[m-1]}, the last is the m trailing
//	elements. For sorted input this is lexicographic element order.
//
// Complexity:
//
//   - Generate: O(C(n,m)·m) time and memory
//   - First/Next: O(n) amortized per combination, O(n) state
//   - Get: O(n) counter lookups per call, memo shared across calls
//
// Concurrency:
//
//	Generator, Enumerator and Indexer are single-goroutine constructs.
//	Streamer is the one concurrent surface: a producer goroutine feeding
//	a channel, terminated by drain or Stop.
package subsets

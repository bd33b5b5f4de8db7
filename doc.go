// Package lvlcomb is your in-memory toolbox for counting, generating,
// enumerating and addressing m-element subsets (combinations) of a set.
//
// 🚀 What is lvlcomb?
//
//	A small, focused library that brings together:
//		• Counting: memoized binomial coefficients C(n,m) with overflow detection
//		• Bulk generation: all C(n,m) combinations, recursive or iterative
//		• Step enumeration: pause/resume production, one combination at a time
//		• Direct addressing: the i-th combination without touching its predecessors
//		• Streaming, walking & sampling: channel adapters, callback visits, uniform picks
//
// ✨ Why choose lvlcomb?
//
//   - One canonical order – every component emits the same lexicographic sequence
//   - Predictable failures – uint64 overflow is the only error; degenerate
//     inputs yield defined empty results, never panics
//   - Pure Go – generics for the element type, no cgo, no hidden deps
//   - Deterministic – no time-based randomness anywhere, reproducible sampling
//
// Under the hood, everything is organized under two subpackages:
//
//	binom/   — the memoized Counter for C(n,m)
//	subsets/ — Generator, Enumerator, Indexer, Stream, Walk & Sample
//
// Quick ASCII example:
//
//	set {0,1,2,3}, m = 2:
//
//	    {0,1} {0,2} {0,3} {1,2} {1,3} {2,3}
//
//	six combinations, emitted left to right by every component, with
//	{1,2} sitting at index 3 for direct access.
//
// Dive into the per-package docs for contracts, complexity and examples,
// and into cmd/lvlcomb for a ready-made command-line driver.
//
//	go get github.com/katalvlaran/lvlcomb
package lvlcomb

// Package binom computes binomial coefficients C(n,m) via the Pascal
// recurrence, with memoization and explicit uint64 overflow detection.
//
// What
//
//   - Counter answers "how many m-element subsets does an n-element set
//     have?" in exact integer arithmetic; no factorials, no floats.
//   - Every distinct subproblem is solved once per Counter; repeated and
//     overlapping queries amortize toward O(1).
//   - Overflow is detected, never wrapped silently: Count returns
//     ErrOverflow the moment a partial sum would exceed math.MaxUint64.
//
// Why
//
//   - Counting first makes generation safe. Callers can pre-size result
//     storage, enforce safety limits, and reject infeasible requests
//     before allocating anything.
//   - The subsets package leans on Counter both for bulk pre-sizing and
//     for direct index addressing, where the same subproblems recur
//     across calls and the shared memo pays for itself.
//
// Degenerate inputs
//
//	m > n yields 0 with no error: a set has no subsets larger than
//	itself. C(n,0) == 1 for every n, including n == 0.
//
// Complexity (k = min(m, n-m))
//
//   - Time:   O(n·k) on first evaluation, O(1) on memo hits
//   - Memory: O(n·k) memo entries
//
// Concurrency
//
//	A Counter is not goroutine-safe. Confine each instance to a single
//	goroutine or synchronize externally.
package binom

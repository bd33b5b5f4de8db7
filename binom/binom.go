package binom

import (
	"errors"
	"math/bits"
)

// Count — memoized binomial coefficient C(n,m)
//
// Description:
//
//	C(n,m) is the number of m-element subsets of an n-element set.
//	Counter evaluates it through the Pascal recurrence
//
//	    C(n,m) = C(n-1,m) + C(n-1,m-1)
//
//	so no factorials are ever formed, and caches every distinct
//	subproblem so overlapping queries are answered from the memo.
//
// Algorithm Outline:
//  1. m > n ⇒ 0 (a set has no subsets larger than itself).
//  2. Normalize m to min(m, n-m); C(n,m) == C(n,n-m), so the memo only
//     ever stores the smaller side.
//  3. Closed forms: m == 0 ⇒ 1, m == 1 ⇒ n.
//  4. Memo hit on the normalized pair ⇒ cached value.
//  5. Otherwise recurse on both terms and add with carry detection;
//     a nonzero carry means the true count exceeds math.MaxUint64.
//     The result is memoized only after both terms succeeded.
//
// Complexity (k = min(m, n-m)):
//
//	Time   = O(n·k) distinct subproblems on a cold memo, O(1) on hits
//	Memory = O(n·k) memo entries
//
// Errors:
//   - ErrOverflow — the exact count does not fit in uint64.
var (
	// ErrOverflow indicates the binomial coefficient exceeds math.MaxUint64.
	ErrOverflow = errors.New("binom: count overflows uint64")
)

// memoHint is the initial bucket reservation of a fresh memo table.
const memoHint = 16

// pair is a normalized memo key with m <= n-m.
type pair struct {
	n, m uint64
}

// Counter computes binomial coefficients C(n,m), caching every distinct
// subproblem across calls. The zero value is not ready for use; construct
// with NewCounter.
//
// A Counter is not safe for concurrent use; each goroutine should own its
// instance, or callers must synchronize externally.
type Counter struct {
	counts map[pair]uint64 // memoized results, keyed by normalized (n,m)
}

// NewCounter returns a Counter with an empty, pre-sized memo table.
func NewCounter() *Counter {
	return &Counter{counts: make(map[pair]uint64, memoHint)}
}

// Count returns C(n,m), the number of m-element subsets of an n-element
// set. It returns ErrOverflow when the exact value does not fit in uint64;
// every value the memo holds is exact, failed computations store nothing.
func (c *Counter) Count(n, m uint64) (uint64, error) {
	// 1) Oversized subsets do not exist.
	if m > n {
		return 0, nil
	}

	// 2) Symmetry: keep the smaller side of C(n,m) == C(n,n-m).
	if k := n - m; k < m {
		m = k
	}

	// 3) Closed forms of the recurrence.
	if m == 0 {
		return 1, nil
	}
	if m == 1 {
		return n, nil
	}

	// 4) Memo hit.
	key := pair{n: n, m: m}
	if cnt, ok := c.counts[key]; ok {
		return cnt, nil
	}

	// 5) Pascal recurrence on both subproblems.
	cnt0, err := c.Count(n-1, m)
	if err != nil {
		return 0, err
	}
	cnt1, err := c.Count(n-1, m-1)
	if err != nil {
		return 0, err
	}

	// 6) Checked addition; a carry out of the top bit is an overflow.
	cnt, carry := bits.Add64(cnt0, cnt1, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	c.counts[key] = cnt

	return cnt, nil
}

// Len reports how many distinct subproblems are currently memoized.
// Closed-form cases are never stored, so Len starts at 0 and only grows
// with genuinely recursive evaluations.
func (c *Counter) Len() int { return len(c.counts) }

// Reset drops all memoized entries, keeping the Counter usable.
func (c *Counter) Reset() {
	c.counts = make(map[pair]uint64, memoHint)
}

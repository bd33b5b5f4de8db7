package subsets

// Visit states of a position frame in the explicit-stack machine.
// Every position cycles include → exclude → retreat, and the pop
// discipline resets it to include for the next visit.
const (
	stateInclude uint8 = iota // fresh frame: take set[pos] and descend
	stateExclude              // include branch exhausted: retry without set[pos]
	stateRetreat              // both branches exhausted: reset and pop
)

// Enumerator produces the m-element combinations of its set one call at a
// time, pausing between results. It is the incremental twin of Generator:
// First(m), then Next() until nil, yields exactly the canonical sequence.
//
// The machine keeps an explicit position stack instead of a call stack, so
// a paused enumeration is plain data: no goroutines, no recursion, nothing
// running between calls.
//
// The zero value is not ready; construct with NewEnumerator. An Enumerator
// is not safe for concurrent use.
type Enumerator[T any] struct {
	set []T // private copy of the input set

	m     int     // target combination size of the current run
	cur   []T     // growing prefix, len <= m
	stack []int   // positions on the DFS path, top is the active frame
	state []uint8 // per-position visit state, len(set)+1 entries
}

// NewEnumerator returns an Enumerator over set. The input is copied, so
// later mutation of the caller's slice does not affect enumeration. All
// machine storage is allocated here; First and Next reuse it.
func NewEnumerator[T any](set []T) *Enumerator[T] {
	n := len(set)

	return &Enumerator[T]{
		set:   append([]T(nil), set...),
		cur:   make([]T, 0, n),
		stack: make([]int, 0, n+1),
		state: make([]uint8, n+1),
	}
}

// First — (re)start the machine and return the first combination
//
// First discards any paused run, records m, and produces the first
// combination of the fresh sequence:
//   - m < 0 or m > len(set): the sequence is empty. First returns nil and
//     the machine stays exhausted.
//   - m == 0: the sequence is exactly one empty combination. First
//     returns it and the machine becomes exhausted.
//   - otherwise: a copy of {set[0], ..., set[m-1]}.
//
// Complexity: O(m) to reach the first combination.
func (e *Enumerator[T]) First(m int) []T {
	n := len(e.set)

	// 1) Full reset; a paused or exhausted machine restarts cleanly.
	e.m = m
	e.cur = e.cur[:0]
	e.stack = e.stack[:0]
	clear(e.state)

	// 2) Degenerate sizes: nothing to produce, stay exhausted.
	if m < 0 || m > n {
		return nil
	}

	// 3) The empty combination is the entire m == 0 sequence.
	if m == 0 {
		return []T{}
	}

	// 4) Seed the walk at position 0 and run to the first pause.
	e.stack = append(e.stack, 0)

	return e.Next()
}

// Next — resume the machine and return the next combination
//
// Next returns nil before First and after exhaustion, idempotently.
// Every non-nil result is a fresh copy, in canonical order.
//
// The machine is a depth-first walk over take-or-skip decisions, one
// frame per position. A fresh frame takes set[pos] into the prefix and
// descends; when control returns it drops set[pos] and descends again
// without it, but only if enough positions remain to complete the
// prefix; after both branches it resets the frame and retreats. A result
// is emitted whenever the prefix reaches m elements, leaving the paused
// frames in place for the following call.
//
// Complexity: amortized O(n) per produced combination, O(n) state.
func (e *Enumerator[T]) Next() []T {
	for len(e.stack) > 0 {
		pos := e.stack[len(e.stack)-1]

		switch e.state[pos] {
		case stateInclude:
			if len(e.cur) < e.m {
				// Take set[pos] into the prefix and descend.
				e.cur = append(e.cur, e.set[pos])
				e.state[pos] = stateExclude
				e.stack = append(e.stack, pos+1)

				continue
			}
			// Prefix complete; this frame marks the pause point.
			e.stack = e.stack[:len(e.stack)-1]

			return e.emit()

		case stateExclude:
			// Drop set[pos] and retry without it, if the remaining
			// positions can still complete the prefix.
			e.cur = e.cur[:len(e.cur)-1]
			if pos+(e.m-len(e.cur)) < len(e.set) {
				e.state[pos] = stateRetreat
				e.stack = append(e.stack, pos+1)

				continue
			}
			e.state[pos] = stateInclude
			e.stack = e.stack[:len(e.stack)-1]

		default: // stateRetreat
			e.state[pos] = stateInclude
			e.stack = e.stack[:len(e.stack)-1]
		}
	}

	return nil
}

// Reset returns the machine to its not-started state: Next reports
// exhaustion until the following First. Buffers are retained.
func (e *Enumerator[T]) Reset() {
	e.m = 0
	e.cur = e.cur[:0]
	e.stack = e.stack[:0]
	clear(e.state)
}

// emit hands out a copy of the completed prefix; the internal buffer
// never escapes.
func (e *Enumerator[T]) emit() []T {
	combo := make([]T, len(e.cur))
	copy(combo, e.cur)

	return combo
}

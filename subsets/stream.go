package subsets

import "sync"

// Streamer adapts the step Enumerator to channel consumption, for
// range-loops and select statements. A single producer goroutine drives
// the machine; results arrive on Combinations in canonical order.
//
// The consumer must either drain the channel or call Stop; after either,
// the producer goroutine is gone. Leaving a Streamer neither drained nor
// stopped leaks its producer.
type Streamer[T any] struct {
	items <-chan []T
	stop  chan struct{}
	once  sync.Once
}

// Stream launches a producer over set and returns its Streamer.
// Degenerate sizes yield a channel that closes without producing;
// m == 0 produces exactly the empty combination.
//
// Each received combination is a fresh copy owned by the consumer.
func Stream[T any](set []T, m int) *Streamer[T] {
	out := make(chan []T)
	s := &Streamer[T]{items: out, stop: make(chan struct{})}

	go func() {
		defer close(out)
		e := NewEnumerator(set)
		for combo := e.First(m); combo != nil; combo = e.Next() {
			select {
			case out <- combo:
			case <-s.stop:
				return
			}
		}
	}()

	return s
}

// Combinations returns the receive side of the stream. The channel
// closes after the last combination, or soon after Stop.
func (s *Streamer[T]) Combinations() <-chan []T { return s.items }

// Stop ends production early and releases the producer goroutine.
// Idempotent; safe to call at any time, including after a full drain.
// A combination already handed to the channel may still be received.
func (s *Streamer[T]) Stop() {
	s.once.Do(func() { close(s.stop) })
}

// Walk visits every m-element combination of set in canonical order
// through a callback, with no per-combination allocation: visit receives
// a reused buffer that is only valid during the call. Returning false
// stops the walk.
//
// Degenerate sizes visit nothing and return nil; a nil visit callback is
// ErrNilVisit. For m == 0 the callback sees the empty combination once.
func Walk[T any](set []T, m int, visit func([]T) bool) error {
	if visit == nil {
		return ErrNilVisit
	}
	if m < 0 || m > len(set) {
		return nil
	}
	walkRec(set, m, 0, make([]T, 0, m), visit)

	return nil
}

// walkRec recurses over take-or-skip decisions, reporting false upward
// once the callback asks to stop.
func walkRec[T any](set []T, m, pos int, buf []T, visit func([]T) bool) bool {
	if len(buf) == m {
		return visit(buf)
	}
	if pos+(m-len(buf)) > len(set) {
		return true
	}
	if !walkRec(set, m, pos+1, append(buf, set[pos]), visit) {
		return false
	}

	return walkRec(set, m, pos+1, buf, visit)
}

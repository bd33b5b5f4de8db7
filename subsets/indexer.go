package subsets

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlcomb/binom"
)

// defaultSampleSeed is the fixed seed behind Sample's nil-rng default.
// Arbitrary but stable, so defaults stay reproducible across runs.
const defaultSampleSeed int64 = 1

// Indexer provides random access into the canonical combination order:
// Get(i) constructs the i-th m-element combination directly, without
// producing the i combinations before it.
//
// The binomial Counter persists inside the Indexer, so the subproblems
// of one Get answer the next ones from the memo. The zero value is not
// ready; construct with NewIndexer. An Indexer is not safe for
// concurrent use.
type Indexer[T any] struct {
	set     []T            // private copy of the input set
	m       int            // target combination size
	counter *binom.Counter // shared memo across Get/Total/Sample calls
}

// NewIndexer returns an Indexer over set with target size m. The input
// is copied; later mutation of the caller's slice does not affect lookups.
func NewIndexer[T any](set []T, m int) *Indexer[T] {
	return &Indexer[T]{
		set:     append([]T(nil), set...),
		m:       m,
		counter: binom.NewCounter(),
	}
}

// SetM changes the target combination size for subsequent calls.
// The memo persists: counts shared between sizes stay cached.
func (x *Indexer[T]) SetM(m int) { x.m = m }

// M reports the current target combination size.
func (x *Indexer[T]) M() int { return x.m }

// Total returns C(n,m) for the current target size. Degenerate sizes
// yield zero with no error.
func (x *Indexer[T]) Total() (uint64, error) {
	if x.m < 0 {
		return 0, nil
	}
	total, err := x.counter.Count(uint64(len(x.set)), uint64(x.m))
	if err != nil {
		return 0, fmt.Errorf("subsets: total: %w", err)
	}

	return total, nil
}

// Get — construct the i-th combination of the canonical order
//
// The first combination is {set[0],...,set[m-1]} at i == 0; the last is
// the m trailing elements at i == C(n,m)-1.
//
// Algorithm Outline:
//  1. Degenerate sizes (m < 0, m > n) ⇒ (nil, nil): no combinations.
//  2. i >= C(n,m) ⇒ (nil, nil): out of range is a non-result.
//  3. m == 0 ⇒ the empty combination, the whole space.
//  4. Decide positions left to right. With nn elements left and mm still
//     to pick, C(nn-1, mm-1) combinations start with the leading element:
//     i below that count takes it, otherwise i skips past all of them.
//     Every step retires one element either way.
//
// Returned combinations are fresh; nil and empty results are distinct
// (nil means "no such combination", empty means "the empty combination").
//
// Complexity: O(n) counter lookups, O(1) amortized each on a warm memo.
//
// Errors:
//   - binom.ErrOverflow (wrapped) — C(n,m) exceeds uint64.
func (x *Indexer[T]) Get(i uint64) ([]T, error) {
	n := len(x.set)

	// 1) Degenerate target size: there are no combinations at all.
	if x.m < 0 || x.m > n {
		return nil, nil
	}

	// 2) Count the whole space; indexes beyond it are a non-result.
	total, err := x.counter.Count(uint64(n), uint64(x.m))
	if err != nil {
		return nil, fmt.Errorf("subsets: index %d: %w", i, err)
	}
	if i >= total {
		return nil, nil
	}

	// 3) The empty combination is the entire m == 0 space.
	if x.m == 0 {
		return []T{}, nil
	}

	// 4) Take-or-skip each leading element until m are taken.
	combo := make([]T, 0, x.m)
	nn, mm := uint64(n), uint64(x.m)
	for nel := 0; mm > 0; nel++ {
		elCnt, err := x.counter.Count(nn-1, mm-1)
		if err != nil {
			return nil, fmt.Errorf("subsets: index %d: %w", i, err)
		}
		if i < elCnt {
			combo = append(combo, x.set[nel])
			mm--
		} else {
			i -= elCnt
		}
		nn--
	}

	return combo, nil
}

// GetM sets the target size and resolves the i-th combination in one
// call. Equivalent to SetM(m) followed by Get(i).
func (x *Indexer[T]) GetM(i uint64, m int) ([]T, error) {
	x.m = m

	return x.Get(i)
}

// Sample returns one combination drawn uniformly from the whole C(n,m)
// space, by unranking a uniform index. Degenerate sizes yield (nil, nil).
//
// A nil rng falls back to a fresh deterministic default stream (fixed
// seed, no time-based sources), so the zero-config draw is reproducible;
// pass your own *rand.Rand for varying draws. The rng must not be shared
// across goroutines.
func (x *Indexer[T]) Sample(rng *rand.Rand) ([]T, error) {
	if x.m < 0 || x.m > len(x.set) {
		return nil, nil
	}

	total, err := x.counter.Count(uint64(len(x.set)), uint64(x.m))
	if err != nil {
		return nil, fmt.Errorf("subsets: sample: %w", err)
	}

	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultSampleSeed))
	}

	// total >= 1 here: degenerate sizes were dismissed above.
	return x.Get(uniformIndex(r, total))
}

// uniformIndex draws uniformly from [0, total). Counts beyond Int63n's
// domain use rejection over the full 64-bit stream; with total above
// 2^63 the acceptance chance exceeds one half, so a couple of draws
// suffice in expectation.
func uniformIndex(r *rand.Rand, total uint64) uint64 {
	if total <= math.MaxInt64 {
		return uint64(r.Int63n(int64(total)))
	}
	for {
		if v := r.Uint64(); v < total {
			return v
		}
	}
}

package subsets_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/lvlcomb/subsets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

// TestStream_DrainAll verifies a full drain delivers the canonical
// sequence, closes the channel, and leaves no producer behind.
func TestStream_DrainAll(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := subsets.Stream([]int{0, 1, 2, 3, 4}, 2)

	got := [][]int{}
	for combo := range s.Combinations() {
		got = append(got, combo)
	}

	want := [][]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 2}, {1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	}
	assert.Equal(t, want, got)

	_, open := <-s.Combinations()
	assert.False(t, open, "the channel stays closed after exhaustion")
}

// TestStream_EarlyStop verifies Stop releases the producer mid-sequence.
func TestStream_EarlyStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := subsets.Stream(iotaSet(10), 3)

	first := <-s.Combinations()
	second := <-s.Combinations()
	assert.Equal(t, []int{0, 1, 2}, first)
	assert.Equal(t, []int{0, 1, 3}, second)

	// Stop, then drain whatever was already in flight. The loop ending at
	// all proves the producer closed the channel; goleak proves it exited.
	s.Stop()
	for range s.Combinations() {
	}
}

// TestStream_StopIdempotent verifies Stop is safe to repeat and safe
// after a full drain.
func TestStream_StopIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := subsets.Stream([]int{0, 1, 2}, 2)
	s.Stop()
	s.Stop()
	for range s.Combinations() {
	}

	drained := subsets.Stream([]int{0, 1, 2}, 2)
	for range drained.Combinations() {
	}
	drained.Stop()
}

// TestStream_DegenerateSizes verifies oversized and negative m close
// without producing, and m == 0 produces exactly the empty combination.
func TestStream_DegenerateSizes(t *testing.T) {
	defer goleak.VerifyNone(t)

	for _, m := range []int{-1, 4} {
		got := collectStream([]int{0, 1, 2}, m)
		assert.Empty(t, got, "degenerate m=%d must produce nothing", m)
	}

	got := collectStream([]int{0, 1, 2}, 0)
	require.Len(t, got, 1)
	assert.Empty(t, got[0], "m == 0 streams the one empty combination")
}

// TestStream_ConcurrentReaders verifies the channel contract under
// several consumers: every combination is delivered exactly once.
func TestStream_ConcurrentReaders(t *testing.T) {
	defer goleak.VerifyNone(t)

	const readers = 4
	set := iotaSet(10)

	gen := subsets.NewGenerator(set)
	require.NoError(t, gen.Generate(4))
	want := gen.Combinations()

	s := subsets.Stream(set, 4)
	parts := make([][][]int, readers)

	var g errgroup.Group
	for r := 0; r < readers; r++ {
		g.Go(func() error {
			for combo := range s.Combinations() {
				parts[r] = append(parts[r], combo)
			}

			return nil
		})
	}
	require.NoError(t, g.Wait())

	merged := [][]int{}
	for _, part := range parts {
		merged = append(merged, part...)
	}
	sort.Slice(merged, func(a, b int) bool {
		ra, rb := merged[a], merged[b]
		for k := range ra {
			if ra[k] != rb[k] {
				return ra[k] < rb[k]
			}
		}

		return false
	})

	assert.Equal(t, want, merged, "readers together see each combination exactly once")
}

// TestWalk_VisitsAll verifies the callback sees the canonical sequence.
func TestWalk_VisitsAll(t *testing.T) {
	got := collectWalk(t, []int{0, 1, 2, 3}, 2)

	want := [][]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	}
	assert.Equal(t, want, got)
}

// TestWalk_EarlyStop verifies a false return ends the walk immediately.
func TestWalk_EarlyStop(t *testing.T) {
	visits := 0
	err := subsets.Walk(iotaSet(6), 2, func(combo []int) bool {
		visits++

		return visits < 3
	})

	require.NoError(t, err)
	assert.Equal(t, 3, visits, "the stopping visit is the last one")
}

// TestWalk_NilVisit verifies the one Walk error.
func TestWalk_NilVisit(t *testing.T) {
	err := subsets.Walk(iotaSet(3), 2, nil)
	assert.ErrorIs(t, err, subsets.ErrNilVisit)
}

// TestWalk_DegenerateSizes verifies no visits and no error outside the
// valid size range.
func TestWalk_DegenerateSizes(t *testing.T) {
	for _, m := range []int{-1, 4} {
		visits := 0
		err := subsets.Walk([]int{0, 1, 2}, m, func([]int) bool {
			visits++

			return true
		})
		require.NoError(t, err)
		assert.Zero(t, visits, "degenerate m=%d must not visit", m)
	}
}

// TestWalk_BufferIsReused pins the documented aliasing contract: raw
// slices retained across visits all view the same buffer.
func TestWalk_BufferIsReused(t *testing.T) {
	raw := [][]int{}
	err := subsets.Walk(iotaSet(4), 2, func(combo []int) bool {
		raw = append(raw, combo)

		return true
	})
	require.NoError(t, err)

	require.Len(t, raw, 6)
	for i := 1; i < len(raw); i++ {
		assert.Equal(t, raw[0], raw[i], "visit %d aliases the shared buffer", i)
	}
}

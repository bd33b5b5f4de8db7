package binom_test

import (
	"testing"

	"github.com/katalvlaran/lvlcomb/binom"
)

// benchmarkCount is a helper that measures Count(n,m) with the given memo
// regime. It resets the timer after setup and fails on unexpected errors.
func benchmarkCount(b *testing.B, n, m uint64, warm bool) {
	c := binom.NewCounter()
	if warm {
		if _, err := c.Count(n, m); err != nil {
			b.Fatalf("warmup Count(%d,%d) failed: %v", n, m, err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !warm {
			c.Reset()
		}
		if _, err := c.Count(n, m); err != nil {
			b.Fatalf("Count(%d,%d) failed: %v", n, m, err)
		}
	}
}

// BenchmarkCount_ColdSmall rebuilds the memo for C(16,4) on every iteration.
func BenchmarkCount_ColdSmall(b *testing.B) { benchmarkCount(b, 16, 4, false) }

// BenchmarkCount_ColdCentral rebuilds the memo for C(30,15) on every iteration.
func BenchmarkCount_ColdCentral(b *testing.B) { benchmarkCount(b, 30, 15, false) }

// BenchmarkCount_ColdLimit rebuilds the memo for C(67,33), the largest
// central coefficient uint64 can hold.
func BenchmarkCount_ColdLimit(b *testing.B) { benchmarkCount(b, 67, 33, false) }

// BenchmarkCount_WarmCentral measures pure memo hits on C(30,15).
func BenchmarkCount_WarmCentral(b *testing.B) { benchmarkCount(b, 30, 15, true) }

// BenchmarkCount_ClosedForm measures the recursion-free floors.
func BenchmarkCount_ClosedForm(b *testing.B) {
	c := binom.NewCounter()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := c.Count(1<<40, 1); err != nil {
			b.Fatalf("Count failed: %v", err)
		}
	}
}

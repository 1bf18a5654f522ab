package fibonacci_test

import (
	"testing"

	"github.com/katalvlaran/classics/fibonacci"
)

// benchmarkStrategy runs Compute(n, s) b.N times and fails on error.
func benchmarkStrategy(b *testing.B, n int, s fibonacci.Strategy) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := fibonacci.Compute(n, s); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

// BenchmarkRecursive20 measures the exponential oracle at the checksum index.
func BenchmarkRecursive20(b *testing.B) { benchmarkStrategy(b, 20, fibonacci.StrategyRecursive) }

// BenchmarkIterative92 measures the linear pass at MaxIndex.
func BenchmarkIterative92(b *testing.B) {
	benchmarkStrategy(b, fibonacci.MaxIndex, fibonacci.StrategyIterative)
}

// BenchmarkTailRecursive92 measures the accumulator loop at MaxIndex.
func BenchmarkTailRecursive92(b *testing.B) {
	benchmarkStrategy(b, fibonacci.MaxIndex, fibonacci.StrategyTailRecursive)
}

package strsearch_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/classics/strsearch"
)

// BenchmarkIndexWorstCase uses "aaa…ab" in "aaa…a", the O(n·m) shape.
func BenchmarkIndexWorstCase(b *testing.B) {
	text := strings.Repeat("a", 10_000)
	pattern := strings.Repeat("a", 100) + "b"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if strsearch.Index(text, pattern) != strsearch.NotFound {
			b.Fatal("unexpected match")
		}
	}
}

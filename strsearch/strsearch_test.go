package strsearch_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/classics/strsearch"
	"github.com/stretchr/testify/assert"
)

const pangram = "The quick brown fox jumps over the lazy dog"

func TestIndex(t *testing.T) {
	cases := []struct {
		name             string
		haystack, needle string
		want             int
	}{
		{"Fox", pangram, "fox", 16},
		{"Lazy", pangram, "lazy", 35},
		{"CatAbsent", pangram, "cat", strsearch.NotFound},
		{"EmptyNeedle", pangram, "", 0},
		{"EmptyBoth", "", "", 0},
		{"EmptyHaystack", "", "a", strsearch.NotFound},
		{"AtStart", pangram, "The", 0},
		{"AtEnd", pangram, "dog", 40},
		{"CaseSensitive", pangram, "the", 31},
		{"FirstOfMany", "abababab", "bab", 1},
		{"PartialPrefixThenMatch", "aaab", "aab", 1},
		{"NeedleLonger", "ab", "abc", strsearch.NotFound},
		{"TruncatedAtEnd", "xxab", "abc", strsearch.NotFound},
		{"Whole", "same", "same", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, strsearch.Index(tc.haystack, tc.needle))
		})
	}
}

func TestIndex_ProgramChecksum(t *testing.T) {
	sum := strsearch.Index(pangram, "fox") + strsearch.Index(pangram, "lazy") + strsearch.Index(pangram, "cat")
	assert.Equal(t, 50, sum)
}

// TestIndex_MatchesStdlib cross-checks against strings.Index on every
// substring of a small text plus a few absent patterns.
func TestIndex_MatchesStdlib(t *testing.T) {
	text := "mississippi river"
	for i := 0; i <= len(text); i++ {
		for j := i; j <= len(text); j++ {
			p := text[i:j]
			assert.Equal(t, strings.Index(text, p), strsearch.Index(text, p), "pattern %q", p)
		}
	}
	for _, p := range []string{"ssx", "pp r", "rivers", "z"} {
		assert.Equal(t, strings.Index(text, p), strsearch.Index(text, p), "pattern %q", p)
	}
}

func TestContains(t *testing.T) {
	assert.True(t, strsearch.Contains(pangram, "brown"))
	assert.False(t, strsearch.Contains(pangram, "cat"))
	assert.True(t, strsearch.Contains("", ""))
}

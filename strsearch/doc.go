// Package strsearch finds the first occurrence of a pattern in a text with
// the naive O(n·m) scan.
//
// For each candidate start i in the text, characters are compared one by one
// against the pattern until the first mismatch or a full match. There is no
// preprocessing (no KMP or Boyer–Moore tables).
//
// Comparison is byte-wise, so offsets are byte offsets into the text.
//
//	strsearch.Index("The quick brown fox jumps over the lazy dog", "fox") // 16
//	strsearch.Index("abc", "")                                          // 0
//	strsearch.Index("abc", "z")                                         // NotFound
package strsearch

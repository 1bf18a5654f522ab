package strsearch

// NotFound is returned by Index when the pattern does not occur.
const NotFound = -1

// Index returns the byte offset of the first occurrence of needle in
// haystack, or NotFound. An empty needle matches at offset 0 of any
// haystack, including the empty one.
func Index(haystack, needle string) int {
	n, m := len(haystack), len(needle)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		j := 0
		for j < m && haystack[i+j] == needle[j] {
			j++
		}
		if j == m {
			return i
		}
	}

	return NotFound
}

// Contains reports whether needle occurs in haystack.
func Contains(haystack, needle string) bool {
	return Index(haystack, needle) != NotFound
}

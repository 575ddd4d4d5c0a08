package util

// Levenshtein returns the edit distance between two strings (rune-aware).
// Insertions, deletions and substitutions all cost 1. Two rolling rows
// keep allocations at O(min-side) instead of the full matrix.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	la, lb := len(ra), len(rb)
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			best := prev[j-1] // substitute
			if prev[j] < best {
				best = prev[j] // delete
			}
			if curr[j-1] < best {
				best = curr[j-1] // insert
			}
			curr[j] = best + 1
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

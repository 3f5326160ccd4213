package aoc

// BestSubsequence returns the k digits of ds, kept in their original order,
// that form the largest base-10 number.
//
// best[i][j] holds the best j digits picked from ds[:i]. Each digit either
// leaves the row as it was or extends best[i][j-1], and the better of the
// two candidates wins. Only best[len(ds)][k] is read at the end.
func BestSubsequence(ds []int, k int) ([]int, error) {
	if k < 0 || k > len(ds) {
		return nil, preconditionf("cannot pick %d of %d digits", k, len(ds))
	}
	n := len(ds)
	best := make([][][]int, n+1)
	for i := range best {
		best[i] = make([][]int, k+1)
	}
	best[0][0] = []int{}

	for i, d := range ds {
		for j := 0; j <= min(k, i); j++ {
			cur := best[i][j]
			if cur == nil {
				continue
			}
			// Skip d.
			if next := best[i+1][j]; next == nil || betterDigits(cur, next) {
				best[i+1][j] = cur
			}
			// Take d.
			if j < k {
				taken := make([]int, len(cur)+1)
				copy(taken, cur)
				taken[len(cur)] = d
				if next := best[i+1][j+1]; next == nil || betterDigits(taken, next) {
					best[i+1][j+1] = taken
				}
			}
		}
	}
	return best[n][k], nil
}

// betterDigits reports whether a reads as a larger number than b: the first
// differing digit decides, and on a tied common prefix the longer one wins.
func betterDigits(a, b []int) bool {
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return len(a) > len(b)
}

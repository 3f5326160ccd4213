package aoc

import (
	"cmp"
	"slices"
	"strings"
)

// Interval is the inclusive integer range [Lo, Hi].
type Interval struct {
	Lo, Hi int
}

// ParseInterval parses "lo-hi".
func ParseInterval(s string) (Interval, error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Interval{}, ParseErrorf(s, "missing '-'")
	}
	lo, err := ParseInt(a)
	if err != nil {
		return Interval{}, &ParseError{Line: s, Err: err}
	}
	hi, err := ParseInt(b)
	if err != nil {
		return Interval{}, &ParseError{Line: s, Err: err}
	}
	return Interval{lo, hi}, nil
}

func (r Interval) Contains(n int) bool {
	return r.Lo <= n && n <= r.Hi
}

// Len returns the number of integers in r.
func (r Interval) Len() int {
	if r.Hi < r.Lo {
		return 0
	}
	return r.Hi - r.Lo + 1
}

// MergeIntervals returns the union of rs as sorted, disjoint intervals.
// Overlapping and adjacent intervals are joined. rs is not modified.
func MergeIntervals(rs []Interval) []Interval {
	sorted := slices.Clone(rs)
	slices.SortFunc(sorted, func(a, b Interval) int { return cmp.Compare(a.Lo, b.Lo) })

	var merged []Interval
	for _, r := range sorted {
		if n := len(merged); n > 0 && r.Lo <= merged[n-1].Hi+1 {
			merged[n-1].Hi = max(merged[n-1].Hi, r.Hi)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

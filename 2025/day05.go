package main

import (
	"slices"

	"github.com/aocsolve/aoc"
)

/*
want=3

3-5
10-14
16-20
12-18

1
5
8
11
17
32
*/
func (s solver) D5p1() any {
	fresh, ids := parseInventory(s.Lines())
	slices.Sort(ids)
	count := 0
	// Both lists are sorted: walk them together.
	i := 0
	for _, r := range fresh {
		for ; i < len(ids) && ids[i] <= r.Hi; i++ {
			if ids[i] >= r.Lo {
				count++
			}
		}
	}
	return count
}

// want=14
func (s solver) D5p2() any {
	fresh, _ := parseInventory(s.Lines())
	total := 0
	for _, r := range fresh {
		total += r.Len()
	}
	return total
}

// parseInventory reads the fresh ID ranges up to the first blank line,
// merged, followed by the available ingredient IDs.
func parseInventory(lines []string) (fresh []aoc.Interval, ids []int) {
	i := 0
	for ; i < len(lines) && lines[i] != ""; i++ {
		fresh = append(fresh, aoc.MustGet(aoc.ParseInterval(lines[i])))
	}
	for _, l := range lines[min(i, len(lines)):] {
		if l == "" {
			continue
		}
		ids = append(ids, aoc.Int(l))
	}
	return aoc.MergeIntervals(fresh), ids
}

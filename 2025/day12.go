package main

import (
	"strconv"
	"strings"

	"github.com/aocsolve/aoc"
)

/*
want=2

0:
###
##.
##.

1:
###
##.
.##

2:
.##
###
##.

3:
##.
###
##.

4:
###
#..
###

5:
###
.#.
###

4x4: 0 0 0 0 2 0
12x5: 1 0 1 0 2 2
12x5: 1 0 1 0 3 2
*/
func (s solver) D12p1() any {
	shapes, regions, err := parsePresents(s.Lines())
	aoc.MustDo(err)
	n := 0
	for _, r := range regions {
		if r.fits(shapes) {
			n++
		}
	}
	return n
}

// region is a space under a tree and how many presents of each shape
// must fit in it.
type region struct {
	w, h   int
	counts []int // by shape index
}

// maxFill is the share of a region's area the presents may cover and still
// be assumed to pack without gaps forcing them out.
const maxFill = 0.85

// fits reports whether the presents fit in r. cells[i] is the area of
// shape i. This is a packing heuristic, not a search: it only compares
// areas.
func (r region) fits(cells map[int]int) bool {
	need := 0
	for i, c := range r.counts {
		need += cells[i] * c
	}
	area := r.w * r.h
	return need <= area && float64(need)/float64(area) < maxFill
}

// parsePresents reads shape blocks ("3:" followed by three rows of '#'
// and '.') and region lines ("12x5: 1 0 1 0 2 2"). It returns the area of
// each shape by index, and the regions. A region asking for a shape that
// no block defines is an error.
func parsePresents(lines []string) (cells map[int]int, regions []region, err error) {
	cells = make(map[int]int)
	var regionLines []string
	for i := 0; i < len(lines); i++ {
		l := strings.TrimSpace(lines[i])
		if id, ok := strings.CutSuffix(l, ":"); ok {
			if n, err := strconv.Atoi(id); err == nil {
				c := 0
				for _, row := range lines[i+1 : min(i+4, len(lines))] {
					c += strings.Count(row, "#")
				}
				cells[n] = c
				i += 3
				continue
			}
		}
		dims, counts, ok := strings.Cut(l, ":")
		if !ok {
			continue
		}
		w, h, ok := strings.Cut(dims, "x")
		if !ok {
			continue
		}
		r := region{w: aoc.Int(w), h: aoc.Int(h)}
		r.counts = aoc.Ints(strings.Fields(counts)...)
		regions = append(regions, r)
		regionLines = append(regionLines, l)
	}
	for j, r := range regions {
		for shape, c := range r.counts {
			if _, ok := cells[shape]; c > 0 && !ok {
				return nil, nil, aoc.ParseErrorf(regionLines[j], "no shape %d", shape)
			}
		}
	}
	return cells, regions, nil
}

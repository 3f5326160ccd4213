package main

import (
	"slices"
	"strings"

	"github.com/aocsolve/aoc"
)

/*
want=50

7,1
11,1
11,7
9,7
9,5
2,5
2,3
7,3
*/
func (s solver) D9p1() any {
	tiles := parseRedTiles(s.Lines())
	best := 0
	for i, a := range tiles {
		for _, b := range tiles[i+1:] {
			best = max(best, rectArea(a, b))
		}
	}
	return best
}

// want=24
func (s solver) D9p2() any {
	tiles := parseRedTiles(s.Lines())
	best := 0
	for i, a := range tiles {
		for _, b := range tiles[i+1:] {
			if area := rectArea(a, b); area > best && rectInside(a, b, tiles) {
				best = area
			}
		}
	}
	return best
}

func parseRedTiles(lines []string) []aoc.Pt {
	var out []aoc.Pt
	for _, l := range lines {
		if l == "" {
			continue
		}
		x, y, ok := strings.Cut(l, ",")
		if !ok {
			panic(aoc.ParseErrorf(l, "missing ','"))
		}
		out = append(out, aoc.Pt{X: aoc.Int(x), Y: aoc.Int(y)})
	}
	return out
}

// rectArea counts the tiles of the rectangle with opposite corners a and b.
func rectArea(a, b aoc.Pt) int {
	return (aoc.AbsDiff(a.X, b.X) + 1) * (aoc.AbsDiff(a.Y, b.Y) + 1)
}

// rectInside reports whether the rectangle with opposite corners a and b
// stays within the polygon: all four corners are inside it or are one of
// its vertices, and no side of the rectangle crosses a polygon edge.
func rectInside(a, b aoc.Pt, poly []aoc.Pt) bool {
	lo := aoc.Pt{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
	hi := aoc.Pt{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
	corners := []aoc.Pt{lo, {X: lo.X, Y: hi.Y}, hi, {X: hi.X, Y: lo.Y}}
	for _, c := range corners {
		if !aoc.PointInPolygon(c, poly) && !slices.Contains(poly, c) {
			return false
		}
	}
	for i := range poly {
		edge := aoc.Segment{A: poly[i], B: poly[(i+1)%len(poly)]}
		for j := range corners {
			side := aoc.Segment{A: corners[j], B: corners[(j+1)%len(corners)]}
			if side.Cross(edge) {
				return false
			}
		}
	}
	return true
}

package main

import (
	"bytes"

	"github.com/aocsolve/aoc"
)

/*
want=21

.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............
*/
func (s solver) D7p1() any {
	g := aoc.ParseGrid(s.Lines(), '.')
	start, ok := beamStart(g)
	if !ok {
		return 0
	}
	splits := 0
	seen := make(map[aoc.Pt]bool)
	q := aoc.NewQueue(aoc.Path{Pt: start, Dir: aoc.Down})
	q.While(func(beam aoc.Path) bool {
		next, ok := g.Move(beam)
		if !ok || seen[next.Pt] {
			return true
		}
		seen[next.Pt] = true
		if g.At(next.Pt) != '^' {
			q.Push(next)
			return true
		}
		splits++
		for _, d := range []aoc.Direction{aoc.Left, aoc.Right} {
			if side, ok := g.Move(aoc.Path{Pt: next.Pt, Dir: d}); ok {
				s.Debugf("split at %v sends a beam %v", next.Pt, d)
				q.Push(aoc.Path{Pt: side.Pt, Dir: aoc.Down})
			}
		}
		return true
	})
	return splits
}

// want=40
func (s solver) D7p2() any {
	g := aoc.ParseGrid(s.Lines(), '.')
	start, ok := beamStart(g)
	if !ok {
		return 0
	}
	// timelines[x] is the number of timelines with the particle in column
	// x of the current row.
	width := g.Size().X
	timelines := make([]int, width)
	timelines[start.X] = 1
	for _, row := range g[1:] {
		next := make([]int, width)
		for x, n := range timelines {
			switch {
			case n == 0:
			case row[x] != '^':
				next[x] += n
			default:
				if x > 0 {
					next[x-1] += n
				}
				if x+1 < width {
					next[x+1] += n
				}
			}
		}
		timelines = next
	}
	return aoc.Sum(timelines...)
}

// beamStart finds the S in the top row.
func beamStart(g aoc.Grid[byte]) (aoc.Pt, bool) {
	if len(g) == 0 {
		return aoc.Pt{}, false
	}
	x := bytes.IndexByte(g[0], 'S')
	return aoc.Pt{X: x}, x >= 0
}

package main

import "github.com/aocsolve/aoc"

/*
want=13

..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
*/
func (s solver) D4p1() any {
	return len(accessibleRolls(aoc.ParseGrid(s.Lines(), '.')))
}

// want=43
func (s solver) D4p2() any {
	g := aoc.ParseGrid(s.Lines(), '.')
	removed := 0
	for h := g.Hash(); ; {
		rolls := accessibleRolls(g)
		for _, p := range rolls {
			g.Set(p, '.')
		}
		removed += len(rolls)
		next := g.Hash()
		if next == h {
			break
		}
		h = next
	}
	return removed
}

// accessibleRolls returns the rolls of paper that have fewer than four
// rolls among their eight neighbours.
func accessibleRolls(g aoc.Grid[byte]) []aoc.Pt {
	var out []aoc.Pt
	g.ForEach(func(p aoc.Pt, v byte) {
		if v != '@' {
			return
		}
		n := 0
		p.ForNeighbors(func(q aoc.Pt) bool {
			if v, ok := g.AtOk(q); ok && v == '@' {
				n++
			}
			return n < 4
		})
		if n < 4 {
			out = append(out, p)
		}
	})
	return out
}

package main

import (
	"strings"

	"github.com/aocsolve/aoc"
)

/*
want=40

162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
*/
func (s solver) D8p1() any {
	boxes := parseJunctionBoxes(s.Lines())
	k := 1000
	if s.SampleMode {
		k = 10
	}
	circuits := aoc.ConnectClosest(boxes, k)
	s.Debugf("%d circuits after %d connections", circuits.Components(), k)
	return aoc.MustGet(aoc.TopComponentsProduct(circuits, 3))
}

// want=25272
func (s solver) D8p2() any {
	boxes := parseJunctionBoxes(s.Lines())
	e, ok := aoc.FinalConnection(boxes)
	if !ok {
		return 0
	}
	return boxes[e.A].X * boxes[e.B].X
}

func parseJunctionBoxes(lines []string) []aoc.Pt3Int {
	var out []aoc.Pt3Int
	for _, l := range lines {
		if l == "" {
			continue
		}
		out = append(out, aoc.MustGet(parsePt3(l)))
	}
	return out
}

// parsePt3 parses "x,y,z".
func parsePt3(line string) (aoc.Pt3Int, error) {
	f := strings.Split(line, ",")
	if len(f) != 3 {
		return aoc.Pt3Int{}, aoc.ParseErrorf(line, "want 3 coordinates, got %d", len(f))
	}
	var c [3]int
	for i, v := range f {
		n, err := aoc.ParseInt(v)
		if err != nil {
			return aoc.Pt3Int{}, &aoc.ParseError{Line: line, Err: err}
		}
		c[i] = n
	}
	return aoc.Pt3Int{X: c[0], Y: c[1], Z: c[2]}, nil
}

package aoc

import (
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid returns the lines as a byte grid. Short lines are padded with
// pad so that the grid is rectangular.
func ParseGrid(lines []string, pad byte) Grid[byte] {
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	g := MakeGrid[byte](w, len(lines))
	for y, l := range lines {
		n := copy(g[y], l)
		for x := n; x < w; x++ {
			g[y][x] = pad
		}
	}
	return g
}

// ForEach calls f for every cell, row by row.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

var hashers map[reflect.Type]any // of func(*Grid[T]) deephash.Sum

// Hash returns a hash of the contents of the grid.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

// Transpose returns g with rows and columns swapped. g must be
// rectangular.
func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move returns p advanced one step in its direction, or false if that
// leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	switch p.Dir {
	case Up:
		p.Pt.Y--
	case Right:
		p.Pt.X++
	case Down:
		p.Pt.Y++
	case Left:
		p.Pt.X--
	}
	if _, ok := g.AtOk(p.Pt); !ok {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// Segment is a line segment between two points.
type Segment struct {
	A, B Pt
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// ForNeighbors calls f for the eight points around p until f returns
// false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

type Pt3Int = Pt3[int]

// Dist2 returns the squared euclidean distance between a and b. It orders
// pairs of points exactly like the euclidean distance does.
func (a Pt3[T]) Dist2(b Pt3[T]) T {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}

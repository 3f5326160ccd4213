package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func diamond() *Graph[string] {
	g := &Graph[string]{}
	g.AddArc("a", "b", 1)
	g.AddArc("a", "c", 1)
	g.AddArc("b", "d", 1)
	g.AddArc("c", "d", 1)
	g.AddArc("d", "e", 1)
	g.AddArc("d", "f", 1)
	g.AddArc("e", "z", 1)
	g.AddArc("f", "z", 1)
	return g
}

func TestNumPaths(t *testing.T) {
	g := diamond()
	assert.Equal(t, 4, g.NumPaths("a", "z"))
	assert.Equal(t, 2, g.NumPaths("d", "z"))
	assert.Equal(t, 1, g.NumPaths("z", "z"))
	assert.Equal(t, 0, g.NumPaths("z", "a"), "arcs are one way")
	assert.Equal(t, 0, g.NumPaths("missing", "z"))
}

func TestNumPathsVia(t *testing.T) {
	g := diamond()
	assert.Equal(t, 2, g.NumPathsVia("a", "z", "b"))
	assert.Equal(t, 1, g.NumPathsVia("a", "z", "b", "e"))
	assert.Equal(t, 0, g.NumPathsVia("a", "z", "b", "c"))
	assert.Equal(t, 4, g.NumPathsVia("a", "z", "d"))
	assert.Equal(t, 1, g.NumPathsVia("a", "z", "e", "b"), "order of via does not matter")
}

func TestGraphEdges(t *testing.T) {
	g := &Graph[int]{}
	g.AddArc(1, 2, 5)
	g.AddArc(2, 1, 5)
	g.AddArc(2, 3, 1)
	assert.Equal(t, 5, g.Edges[2][1])
	assert.Len(t, g.Nodes, 3)
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, g.ReachableNodes(1))
	assert.Equal(t, map[int]bool{3: true}, g.ReachableNodes(3))
	assert.Equal(t, map[int]bool{9: true}, g.ReachableNodes(9))

	d := diamond()
	assert.Len(t, d.ReachableNodes("a"), 7)
	assert.Equal(t, map[string]bool{"e": true, "z": true}, d.ReachableNodes("e"))
}

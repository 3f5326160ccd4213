package aoc

import "slices"

// Graph is a weighted directed graph.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddArc adds the one-way edge a -> b.
func (g *Graph[K]) AddArc(a, b K, dist int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.AddNode(a)
	g.AddNode(b)
}

// ReachableNodes returns every node that can be reached from a, a
// included.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var st Stack[K]
	st.Push(a)
	st.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			if !visited[k] {
				st.Push(k)
			}
		}
		return true
	})
	return visited
}

// NumPaths returns the number of paths from start to end. The graph must
// be acyclic along every path out of start.
func (g *Graph[K]) NumPaths(start, end K) int {
	return g.NumPathsVia(start, end)
}

// NumPathsVia returns the number of paths from start to end that pass
// through every node in via (at most 64 of them). Counts are memoized on
// the node and the set of via nodes seen so far, so the graph must be
// acyclic along every path out of start.
func (g *Graph[K]) NumPathsVia(start, end K, via ...K) int {
	c := pathCounter[K]{
		g:    g,
		end:  end,
		via:  via,
		want: uint64(1)<<len(via) - 1,
		memo: make(map[pathState[K]]int),
	}
	return c.count(start, 0)
}

type pathState[K comparable] struct {
	node K
	seen uint64
}

type pathCounter[K comparable] struct {
	g    *Graph[K]
	end  K
	via  []K
	want uint64
	memo map[pathState[K]]int
}

func (c *pathCounter[K]) count(node K, seen uint64) int {
	if i := slices.Index(c.via, node); i >= 0 {
		seen |= 1 << i
	}
	if node == c.end {
		if seen == c.want {
			return 1
		}
		return 0
	}
	st := pathState[K]{node, seen}
	if n, ok := c.memo[st]; ok {
		return n
	}
	n := 0
	for next := range c.g.Edges[node] {
		n += c.count(next, seen)
	}
	c.memo[st] = n
	return n
}

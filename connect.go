package aoc

// Edge is a pair of node identities.
type Edge[T comparable] struct {
	A, B T
}

// ClosestPairs returns every pair of indexes into pts in a min-queue keyed
// by the squared distance between the two points. Equal distances pop in
// no particular order.
func ClosestPairs(pts []Pt3Int) *PQ[Edge[int]] {
	items := make([]*PQI[Edge[int]], 0, len(pts)*(len(pts)-1)/2)
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			items = append(items, &PQI[Edge[int]]{
				V: Edge[int]{i, j},
				P: pts[i].Dist2(pts[j]),
			})
		}
	}
	q := MinQueue[Edge[int]]()
	q.Init(items)
	return q
}

// ConnectClosest examines the k closest pairs of pts, closest first, and
// joins each pair that is not yet connected. Every examined pair counts
// towards k, whether or not it joined anything.
func ConnectClosest(pts []Pt3Int, k int) *UnionFind {
	uf := NewUnionFind(len(pts))
	q := ClosestPairs(pts)
	for i := 0; i < k && q.Len() > 0; i++ {
		e := q.Pop().V
		uf.Union(e.A, e.B)
	}
	return uf
}

// TopComponentsProduct multiplies the sizes of the n largest components of
// uf. It fails with ErrPrecondition if uf has fewer than n components.
func TopComponentsProduct(uf *UnionFind, n int) (int, error) {
	sizes := uf.Sizes()
	if len(sizes) < n {
		return 0, preconditionf("want the %d largest components, have %d", n, len(sizes))
	}
	return Product(sizes[:n]...), nil
}

// FinalConnection joins the pairs of pts closest first and returns the pair
// whose join left a single component. It reports false if that never
// happens, which is the case for fewer than two points.
func FinalConnection(pts []Pt3Int) (Edge[int], bool) {
	uf := NewUnionFind(len(pts))
	q := ClosestPairs(pts)
	for q.Len() > 0 {
		e := q.Pop().V
		if !uf.Union(e.A, e.B) {
			continue
		}
		if uf.Components() == 1 {
			return e, true
		}
	}
	return Edge[int]{}, false
}

// Package mstpoly - Euclidean minimum spanning tree via Kruskal.
package mstpoly

import (
	"errors"
	"sort"

	"github.com/katalvlaran/planar/geom"
)

// Sentinel errors.
var (
	// ErrTooFewPoints indicates fewer than three input points.
	ErrTooFewPoints = errors.New("mstpoly: need at least 3 points")

	// ErrDegenerateHull indicates the convex hull collapsed below three
	// vertices (collinear input); no faces can be extracted.
	ErrDegenerateHull = errors.New("mstpoly: degenerate convex hull")
)

// wedge is a weighted candidate edge of the complete graph. Weights carry
// squared distances: ordering-equivalent to Euclidean and cheaper to build.
type wedge struct {
	u, v int
	w    float64
}

// dsu is a disjoint-set union with path compression and union by rank.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find walks to the root, compressing grandparent links on the way.
func (d *dsu) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// union merges the sets of x and y by rank; reports whether a merge happened.
func (d *dsu) union(x, y int) bool {
	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return false
	}
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}

	return true
}

// EuclideanMST computes the minimum spanning tree of the complete Euclidean
// graph over pts and returns it as an adjacency list. Edge comparison uses
// squared distances; ties break by the original edge enumeration order
// (stable sort), so the result is deterministic.
//
// Complexity: O(n² log n) time, O(n²) memory for the candidate edge list.
func EuclideanMST(pts []geom.Point) [][]int {
	n := len(pts)
	adj := make([][]int, n)
	if n < 2 {
		return adj
	}

	edges := make([]wedge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, wedge{u: i, v: j, w: geom.DistSq(pts[i], pts[j])})
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].w < edges[j].w })

	d := newDSU(n)
	taken := 0
	for _, e := range edges {
		if d.union(e.u, e.v) {
			adj[e.u] = append(adj[e.u], e.v)
			adj[e.v] = append(adj[e.v], e.u)
			taken++
			if taken == n-1 {
				break
			}
		}
	}

	return adj
}

// attachLeavesToHull adds, for every vertex of degree 1 in adj, an edge to
// its nearest hull vertex (squared-distance nearest, excluding itself and
// vertices it already touches, so no dead end or parallel edge survives).
// Mutates adj in place.
//
// Complexity: O(L·h) for L leaves.
func attachLeavesToHull(adj [][]int, hull []int, pts []geom.Point) {
	var leaves []int
	for v := range adj {
		if len(adj[v]) == 1 {
			leaves = append(leaves, v)
		}
	}

	for _, leaf := range leaves {
		if len(adj[leaf]) != 1 {
			// A previous fix-up already raised this vertex's degree.
			continue
		}
		best := -1
		bestD := 0.0
		for _, h := range hull {
			if h == leaf || containsInt(adj[leaf], h) {
				// An edge to an existing neighbour would leave the leaf a
				// dead end (or create a parallel edge); look further.
				continue
			}
			d2 := geom.DistSq(pts[leaf], pts[h])
			if best == -1 || d2 < bestD {
				best, bestD = h, d2
			}
		}
		if best == -1 {
			continue
		}
		adj[leaf] = append(adj[leaf], best)
		adj[best] = append(adj[best], leaf)
	}
}

// mergeHull overlays the hull cycle onto adj, skipping duplicate edges.
// Returns a fresh adjacency; adj is not modified.
func mergeHull(adj [][]int, hull []int) [][]int {
	merged := make([][]int, len(adj))
	for v := range adj {
		merged[v] = append([]int(nil), adj[v]...)
	}

	h := len(hull)
	for i := 0; i < h; i++ {
		u, v := hull[i], hull[(i+1)%h]
		if !containsInt(merged[u], v) {
			merged[u] = append(merged[u], v)
		}
		if !containsInt(merged[v], u) {
			merged[v] = append(merged[v], u)
		}
	}

	return merged
}

// adjacencyWeight sums the Euclidean length of every undirected edge in adj,
// counting each edge once via the u < v convention.
func adjacencyWeight(adj [][]int, pts []geom.Point) float64 {
	var total float64
	for u := range adj {
		for _, v := range adj[u] {
			if u < v {
				total += geom.Dist(pts[u], pts[v])
			}
		}
	}

	return total
}

func containsInt(s []int, x int) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}

	return false
}

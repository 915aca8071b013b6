// Package mstpoly - planar face enumeration.
//
// Adapted from the standard planar-subdivision walk: with every vertex's
// neighbour list sorted counter-clockwise, following "arrive at u from v,
// leave along the next edge after v in u's CCW order" traces every face of
// the embedding exactly once per directed edge.
package mstpoly

import (
	"sort"

	"github.com/katalvlaran/planar/geom"
)

// Faces enumerates the interior faces of the connected planar graph adj over
// pts. Each face is returned as its vertex cycle in the reverse of the walk
// order, which puts interior faces in counter-clockwise order. The outer
// face (non-positive signed area) is identified and dropped.
//
// adj is re-sorted in place: every neighbour list ends up in CCW polar-angle
// order around its vertex.
//
// Complexity: O(Σ deg(v) log deg(v)) for sorting plus O(|E|) for the walk.
func Faces(pts []geom.Point, adj [][]int) [][]int {
	n := len(adj)

	// Sort every neighbour list by polar angle around its vertex:
	// upper half-plane first, then cross sign, collinear ties by distance.
	for i := 0; i < n; i++ {
		origin := pts[i]
		sort.SliceStable(adj[i], func(a, b int) bool {
			pl := pts[adj[i][a]].Sub(origin)
			pr := pts[adj[i][b]].Sub(origin)

			hl, hr := halfPlane(pl), halfPlane(pr)
			if hl != hr {
				return hl < hr
			}
			cr := pl.Cross(pr)
			if cr != 0 {
				return cr > 0
			}

			// Collinear neighbours: closer point first, deterministically.
			return geom.DistSq(origin, pts[adj[i][a]]) < geom.DistSq(origin, pts[adj[i][b]])
		})
	}

	used := make([][]bool, n)
	for i := range used {
		used[i] = make([]bool, len(adj[i]))
	}

	var faces [][]int
	for i := 0; i < n; i++ {
		for eid := range adj[i] {
			if used[i][eid] {
				continue
			}

			var face []int
			v, e := i, eid
			for !used[v][e] {
				used[v][e] = true
				face = append(face, v)

				u := adj[v][e]
				pos := indexOf(adj[u], v)
				if pos < 0 {
					// Asymmetric adjacency; abandon this walk.
					break
				}
				v, e = u, (pos+1)%len(adj[u])
			}
			if len(face) == 0 {
				continue
			}

			// Reverse the walk order: interior faces then run
			// counter-clockwise (positive signed area).
			reverseInts(face)

			if signedAreaSum(pts, face) <= 0 {
				// Outer face: keep it first so the caller can drop it.
				faces = append([][]int{face}, faces...)
			} else {
				faces = append(faces, face)
			}
		}
	}

	if len(faces) > 0 {
		// Drop the outer boundary; only interior faces remain.
		faces = faces[1:]
	}

	return faces
}

// halfPlane classifies a direction vector: 0 for the upper half-plane
// (including the positive x-axis), 1 for the lower (including the negative
// x-axis). Sorting by half first makes the CCW comparator a total order.
func halfPlane(p geom.Point) int {
	if p.Y < 0 || (p.Y == 0 && p.X < 0) {
		return 1
	}

	return 0
}

// signedAreaSum accumulates the cross products (p2−p1) × (p3−p2) around the
// face; a non-positive sum marks the outer face.
func signedAreaSum(pts []geom.Point, face []int) float64 {
	var sum float64
	p1 := pts[face[0]]
	for j := range face {
		p2 := pts[face[j]]
		p3 := pts[face[(j+1)%len(face)]]
		sum += p2.Sub(p1).Cross(p3.Sub(p2))
	}

	return sum
}

func indexOf(s []int, x int) int {
	for i, v := range s {
		if v == x {
			return i
		}
	}

	return -1
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

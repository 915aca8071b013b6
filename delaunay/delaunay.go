// Package delaunay adapts an external Delaunay triangulator to the mesh
// package's Triangulation format.
//
// The heavy lifting - the actual O(n log n) sweep - is delegated to
// github.com/fogleman/delaunay, which returns triangle connectivity as a flat
// [i0,i1,i2, i0,i1,i2, ...] index stream. This package converts that stream
// into triangle records, deduplicates edges by canonical {min,max} key, and
// attaches Euclidean weights, producing exactly what mesh.NewGraphState
// consumes.
package delaunay

import (
	"errors"
	"sort"

	fdelaunay "github.com/fogleman/delaunay"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/mesh"
)

// Sentinel errors.
var (
	// ErrTooFewPoints indicates fewer than three input points.
	ErrTooFewPoints = errors.New("delaunay: need at least 3 points")

	// ErrTriangulation wraps a failure of the underlying triangulator
	// (typically an all-collinear input with no valid triangulation).
	ErrTriangulation = errors.New("delaunay: triangulation failed")
)

// Triangulate computes the Delaunay triangulation of pts and returns it as a
// mesh.Triangulation: deduplicated weighted edges plus triangle records.
//
// Errors: ErrTooFewPoints for n < 3; ErrTriangulation when the underlying
// library rejects the input (degenerate point sets).
//
// Complexity: O(n log n) average for the triangulation, O(|T|) for the
// conversion.
func Triangulate(pts []geom.Point) (mesh.Triangulation, error) {
	var out mesh.Triangulation

	if len(pts) < 3 {
		return out, ErrTooFewPoints
	}

	flat := make([]fdelaunay.Point, len(pts))
	for i, p := range pts {
		flat[i] = fdelaunay.Point{X: p.X, Y: p.Y}
	}

	tri, err := fdelaunay.Triangulate(flat)
	if err != nil {
		return out, errors.Join(ErrTriangulation, err)
	}

	conn := tri.Triangles
	out.Triangles = make([]mesh.Triangle, 0, len(conn)/3)
	unique := make(map[mesh.EdgeKey]struct{}, len(conn))

	for i := 0; i+2 < len(conn); i += 3 {
		a, b, c := conn[i], conn[i+1], conn[i+2]
		out.Triangles = append(out.Triangles, mesh.Triangle{A: a, B: b, C: c})
		unique[mesh.NewEdgeKey(a, b)] = struct{}{}
		unique[mesh.NewEdgeKey(b, c)] = struct{}{}
		unique[mesh.NewEdgeKey(c, a)] = struct{}{}
	}
	if len(out.Triangles) == 0 {
		// The library accepted the input but produced no triangles
		// (collinear set); treat as a triangulation failure.
		return mesh.Triangulation{}, ErrTriangulation
	}

	out.Edges = make([]mesh.Edge, 0, len(unique))
	for k := range unique {
		out.Edges = append(out.Edges, mesh.Edge{
			U: k.U, V: k.V,
			Weight: geom.Dist(pts[k.U], pts[k.V]),
		})
	}
	// Map iteration order is randomized; sort by key so identical inputs
	// always produce the identical edge sequence.
	sort.Slice(out.Edges, func(i, j int) bool {
		if out.Edges[i].U != out.Edges[j].U {
			return out.Edges[i].U < out.Edges[j].U
		}

		return out.Edges[i].V < out.Edges[j].V
	})

	return out, nil
}

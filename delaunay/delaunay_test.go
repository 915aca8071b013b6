package delaunay_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/delaunay"
	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/mesh"
)

// TestTriangulate_Square: four corners produce two triangles and five unique
// edges, and the result constructs a valid GraphState.
func TestTriangulate_Square(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	tri, err := delaunay.Triangulate(pts)
	require.NoError(t, err)
	assert.Len(t, tri.Triangles, 2)
	assert.Len(t, tri.Edges, 5)

	gs, err := mesh.NewGraphState(tri, pts)
	require.NoError(t, err)
	require.NoError(t, gs.CheckInvariants())
}

// TestTriangulate_CountLaw: random inputs obey the 3N − h − 3 edge and
// 2N − h − 2 triangle counts of a full triangulation.
func TestTriangulate_CountLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(23))

	for trial := 0; trial < 10; trial++ {
		n := 10 + rng.Intn(90)
		pts := make([]geom.Point, n)
		for i := range pts {
			pts[i] = geom.Point{X: rng.Float64(), Y: rng.Float64()}
		}
		h := len(geom.ConvexHullIndices(pts))

		tri, err := delaunay.Triangulate(pts)
		require.NoError(t, err)
		assert.Len(t, tri.Edges, 3*n-h-3, "trial %d", trial)
		assert.Len(t, tri.Triangles, 2*n-h-2, "trial %d", trial)
	}
}

// TestTriangulate_ErrorPaths: too few points and degenerate inputs surface
// the sentinels instead of corrupt output.
func TestTriangulate_ErrorPaths(t *testing.T) {
	_, err := delaunay.Triangulate([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, delaunay.ErrTooFewPoints)

	_, err = delaunay.Triangulate([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	assert.ErrorIs(t, err, delaunay.ErrTriangulation)
}

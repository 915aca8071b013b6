package mstpoly_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/dogt"
	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/mstpoly"
)

// TestEuclideanMST_Square: the MST of the unit square is any three sides;
// total degree is 6 and no edge of length √2 appears.
func TestEuclideanMST_Square(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	adj := mstpoly.EuclideanMST(pts)
	require.Len(t, adj, 4)

	var degSum int
	for u := range adj {
		degSum += len(adj[u])
		for _, v := range adj[u] {
			assert.InDelta(t, 1.0, geom.Dist(pts[u], pts[v]), 1e-12)
		}
	}
	assert.Equal(t, 6, degSum) // 3 undirected edges
}

// TestEuclideanMST_PathShape: near-collinear points chain up in order.
func TestEuclideanMST_PathShape(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0.1}, {X: 2, Y: 0}, {X: 3, Y: 0.1}}

	adj := mstpoly.EuclideanMST(pts)
	assert.Equal(t, []int{1}, adj[0])
	assert.ElementsMatch(t, []int{0, 2}, adj[1])
	assert.ElementsMatch(t, []int{1, 3}, adj[2])
	assert.Equal(t, []int{2}, adj[3])
}

// TestFaces_SquareCycle: a plain 4-cycle has exactly one interior face
// containing all four vertices.
func TestFaces_SquareCycle(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	adj := [][]int{{1, 3}, {0, 2}, {1, 3}, {0, 2}}

	faces := mstpoly.Faces(pts, adj)
	require.Len(t, faces, 1)
	assert.Len(t, faces[0], 4)
}

// TestFaces_SplitSquare: adding one diagonal yields two triangular faces.
func TestFaces_SplitSquare(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	adj := [][]int{{1, 2, 3}, {0, 2}, {0, 1, 3}, {0, 2}}

	faces := mstpoly.Faces(pts, adj)
	require.Len(t, faces, 2)
	for _, f := range faces {
		assert.Len(t, f, 3)
	}
}

// TestWeight_UnitSquare: skeleton (three sides + leaf fix-up closing the
// cycle) plus the DP diagonal gives 4 + √2.
func TestWeight_UnitSquare(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	w, err := mstpoly.Weight(pts)
	require.NoError(t, err)
	assert.InDelta(t, 4+math.Sqrt2, w, 1e-9)
}

// TestWeight_RegularPentagon: any triangulation of the regular pentagon
// weighs 5s + 2d.
func TestWeight_RegularPentagon(t *testing.T) {
	pts := make([]geom.Point, 5)
	for k := range pts {
		a := 2 * math.Pi * float64(k) / 5
		pts[k] = geom.Point{X: math.Cos(a), Y: math.Sin(a)}
	}
	s := 2 * math.Sin(math.Pi/5)
	d := 2 * math.Sin(2*math.Pi/5)

	w, err := mstpoly.Weight(pts)
	require.NoError(t, err)
	assert.InDelta(t, 5*s+2*d, w, 1e-9)
}

// TestWeight_WithinDOGTBand: on random inputs the MST-poly answer is
// positive and within a factor of three of the DOGT heuristic (sanity band,
// not an optimality claim).
func TestWeight_WithinDOGTBand(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 5; trial++ {
		n := 8 + rng.Intn(12)
		pts := make([]geom.Point, n)
		for i := range pts {
			pts[i] = geom.Point{X: rng.Float64() * 10, Y: rng.Float64() * 10}
		}

		w, err := mstpoly.Weight(pts)
		require.NoError(t, err)
		require.Positive(t, w)

		// Both are full triangulations of the same hull: same edge count,
		// so the two weights should be of the same order.
		g := dogt.Triangulate(pts)
		assert.Less(t, w, 3*g.Weight, "trial %d", trial)
		assert.Greater(t, w, g.Weight/3, "trial %d", trial)
	}
}

// TestWeight_ErrorPaths: too few or collinear points surface sentinels.
func TestWeight_ErrorPaths(t *testing.T) {
	_, err := mstpoly.Weight([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, mstpoly.ErrTooFewPoints)

	_, err = mstpoly.Weight([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	assert.ErrorIs(t, err, mstpoly.ErrDegenerateHull)
}

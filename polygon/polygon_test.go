package polygon_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/polygon"
)

// TestTriangulateCost_Degenerate: fewer than three vertices cost nothing.
func TestTriangulateCost_Degenerate(t *testing.T) {
	assert.Zero(t, polygon.TriangulateCost(nil))
	assert.Zero(t, polygon.TriangulateCost([]geom.Point{{X: 0, Y: 0}}))
	assert.Zero(t, polygon.TriangulateCost([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}))
}

// TestTriangulateCost_Triangle: a single triangle's cost is its perimeter.
func TestTriangulateCost_Triangle(t *testing.T) {
	tri := []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}}
	assert.InDelta(t, 12.0, polygon.TriangulateCost(tri), 1e-12)
}

// TestTriangulateCost_UnitSquare: either diagonal is optimal; the perimeter
// cost of the two triangles is 4 + 2√2, and the recovered internal diagonal
// weight is √2.
func TestTriangulateCost_UnitSquare(t *testing.T) {
	square := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	cost := polygon.TriangulateCost(square)
	assert.InDelta(t, 4+2*math.Sqrt2, cost, 1e-9)

	boundary := geom.PerimeterOf(square)
	assert.InDelta(t, math.Sqrt2, polygon.InternalDiagonalWeight(cost, boundary), 1e-9)
}

// TestTriangulateCost_RegularPentagon: on the unit circle every triangulation
// uses two diagonals of equal length, so cost = 5s + 4d with s = 2·sin(π/5),
// d = 2·sin(2π/5); the edge weight of the triangulation is 5s + 2d.
func TestTriangulateCost_RegularPentagon(t *testing.T) {
	pent := make([]geom.Point, 5)
	for k := range pent {
		a := 2 * math.Pi * float64(k) / 5
		pent[k] = geom.Point{X: math.Cos(a), Y: math.Sin(a)}
	}
	s := 2 * math.Sin(math.Pi/5)
	d := 2 * math.Sin(2*math.Pi/5)

	cost := polygon.TriangulateCost(pent)
	assert.InDelta(t, 5*s+4*d, cost, 1e-9)

	boundary := geom.PerimeterOf(pent)
	assert.InDelta(t, 2*d, polygon.InternalDiagonalWeight(cost, boundary), 1e-9)
}

// TestTriangulate_EdgeRecovery: the split table yields exactly the ring plus
// n−3 diagonals, and the summed edge length matches boundary + internal.
func TestTriangulate_EdgeRecovery(t *testing.T) {
	hex := make([]geom.Point, 6)
	for k := range hex {
		a := 2 * math.Pi * float64(k) / 6
		hex[k] = geom.Point{X: math.Cos(a), Y: math.Sin(a)}
	}

	cost, edges := polygon.Triangulate(hex)
	require.Len(t, edges, 2*len(hex)-3) // n ring edges + n−3 diagonals

	seen := make(map[[2]int]bool, len(edges))
	var weight float64
	for _, e := range edges {
		require.Less(t, e[0], e[1], "edges are emitted smaller-index first")
		require.False(t, seen[e], "duplicate edge %v", e)
		seen[e] = true
		weight += geom.Dist(hex[e[0]], hex[e[1]])
	}

	boundary := geom.PerimeterOf(hex)
	internal := polygon.InternalDiagonalWeight(cost, boundary)
	assert.InDelta(t, boundary+internal, weight, 1e-9)
}

// TestTriangulate_ConvexOptimality: on a convex fan-unfriendly polygon the DP
// must beat (or match) the naive fan from vertex 0.
func TestTriangulate_ConvexOptimality(t *testing.T) {
	// A flat convex arc: fanning from vertex 0 is clearly suboptimal.
	poly := []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0.2}, {X: 2, Y: 0.3}, {X: 3, Y: 0.2}, {X: 4, Y: 0},
		{X: 2, Y: -3},
	}

	cost := polygon.TriangulateCost(poly)

	// Cost of the fan triangulation from vertex 0.
	var fan float64
	for i := 1; i < len(poly)-1; i++ {
		fan += geom.TrianglePerimeter(poly[0], poly[i], poly[i+1])
	}
	assert.LessOrEqual(t, cost, fan+1e-12)
}

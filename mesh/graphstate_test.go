package mesh_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/mesh"
)

// squareState builds the 2×2 square triangulated with diagonal (0,2):
//
//	3───2
//	│ ╱ │      triangles (0,1,2) and (0,2,3)
//	0───1
func squareState(t *testing.T) *mesh.GraphState {
	t.Helper()

	pts := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	tri := mesh.Triangulation{
		Edges: []mesh.Edge{
			{U: 0, V: 1, Weight: 2},
			{U: 1, V: 2, Weight: 2},
			{U: 2, V: 3, Weight: 2},
			{U: 0, V: 3, Weight: 2},
			{U: 0, V: 2, Weight: 2 * math.Sqrt2},
		},
		Triangles: []mesh.Triangle{{A: 0, B: 1, C: 2}, {A: 0, B: 2, C: 3}},
	}

	gs, err := mesh.NewGraphState(tri, pts)
	require.NoError(t, err)

	return gs
}

// sortedTriangles returns the triangle multiset in a canonical form for
// comparisons that ignore slot order and per-triangle vertex order.
func sortedTriangles(gs *mesh.GraphState) [][3]int {
	tris := gs.Triangles()
	out := make([][3]int, len(tris))
	for i, tr := range tris {
		v := []int{tr.A, tr.B, tr.C}
		sort.Ints(v)
		out[i] = [3]int{v[0], v[1], v[2]}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		if out[i][1] != out[j][1] {
			return out[i][1] < out[j][1]
		}

		return out[i][2] < out[j][2]
	})

	return out
}

// TestNewGraphState_BuildsAllIndices verifies lookups and invariants on a
// freshly constructed state.
func TestNewGraphState_BuildsAllIndices(t *testing.T) {
	gs := squareState(t)

	require.NoError(t, gs.CheckInvariants())
	assert.Equal(t, 5, gs.NumEdges())
	assert.Equal(t, 2, gs.NumTriangles())

	// Lookup ignores orientation.
	assert.True(t, gs.HasEdge(0, 2))
	assert.True(t, gs.HasEdge(2, 0))
	assert.False(t, gs.HasEdge(1, 3))

	e, ok := gs.GetEdge(2, 0)
	require.True(t, ok)
	assert.Equal(t, 0, e.U)
	assert.Equal(t, 2, e.V)
	assert.InDelta(t, 2*math.Sqrt2, e.Weight, 1e-12)

	// The diagonal is interior (2 triangles), the rim is hull (1 each).
	assert.Len(t, gs.IncidentTriangles(0, 2), 2)
	assert.Len(t, gs.IncidentTriangles(0, 1), 1)

	// Adjacency is symmetric and sorted.
	assert.Equal(t, []int{1, 2, 3}, gs.AdjacentTo(0))
	assert.Equal(t, []int{0, 2}, gs.AdjacentTo(1))

	assert.InDelta(t, 8+2*math.Sqrt2, gs.Weight(), 1e-12)
}

// TestNewGraphState_RejectsMalformedInput covers the construction sentinels.
func TestNewGraphState_RejectsMalformedInput(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	_, err := mesh.NewGraphState(mesh.Triangulation{
		Edges: []mesh.Edge{{U: 1, V: 1}},
	}, pts)
	assert.ErrorIs(t, err, mesh.ErrSelfLoop)

	_, err = mesh.NewGraphState(mesh.Triangulation{
		Edges: []mesh.Edge{{U: 0, V: 7}},
	}, pts)
	assert.ErrorIs(t, err, mesh.ErrVertexRange)

	_, err = mesh.NewGraphState(mesh.Triangulation{
		Triangles: []mesh.Triangle{{A: 0, B: 1, C: 1}},
	}, pts)
	assert.ErrorIs(t, err, mesh.ErrSelfLoop)
}

// TestFlipEdge_SwapsDiagonal is the Delaunay-restoring scenario: one legal
// flip exchanges diagonal (0,2) for (1,3). Both triangulations of the square
// have the same weight (8 + 2√2) but distinct edge sets.
func TestFlipEdge_SwapsDiagonal(t *testing.T) {
	gs := squareState(t)
	before := gs.Weight()

	f := mesh.IsFlipLegal(gs, 0, 2)
	require.True(t, f.Legal)

	require.NoError(t, gs.FlipEdge(f))
	require.NoError(t, gs.CheckInvariants())

	// Postconditions of the mutation.
	assert.False(t, gs.HasEdge(0, 2))
	assert.True(t, gs.HasEdge(1, 3))
	assert.Equal(t, 5, gs.NumEdges())
	assert.Equal(t, 2, gs.NumTriangles())

	// On the square both diagonals have length 2√2 ⇒ equal weight.
	assert.InDelta(t, before, gs.Weight(), 1e-12)
	assert.Equal(t, [][3]int{{0, 1, 3}, {1, 2, 3}}, sortedTriangles(gs))
}

// TestFlipEdge_Involution: flipping the new diagonal back restores the
// original triangle and edge multisets (up to slot indexing).
func TestFlipEdge_Involution(t *testing.T) {
	gs := squareState(t)
	wantTris := sortedTriangles(gs)
	wantWeight := gs.Weight()

	f := mesh.IsFlipLegal(gs, 0, 2)
	require.True(t, f.Legal)
	require.NoError(t, gs.FlipEdge(f))

	back := mesh.IsFlipLegal(gs, f.A, f.C)
	require.True(t, back.Legal)
	require.NoError(t, gs.FlipEdge(back))

	require.NoError(t, gs.CheckInvariants())
	assert.True(t, gs.HasEdge(0, 2))
	assert.False(t, gs.HasEdge(1, 3))
	assert.Equal(t, wantTris, sortedTriangles(gs))
	assert.InDelta(t, wantWeight, gs.Weight(), 1e-12)
}

// TestFlipEdge_ErrorPaths: illegal and degenerate flips leave the state
// untouched and return their sentinels.
func TestFlipEdge_ErrorPaths(t *testing.T) {
	gs := squareState(t)

	err := gs.FlipEdge(mesh.FlipResult{})
	assert.ErrorIs(t, err, mesh.ErrIllegalFlip)

	// A fabricated "legal" flip on a hull edge: only one incident triangle.
	err = gs.FlipEdge(mesh.FlipResult{Legal: true, A: 2, B: 0, C: 3, D: 1})
	assert.ErrorIs(t, err, mesh.ErrFlipDegenerate)

	require.NoError(t, gs.CheckInvariants())
	assert.Equal(t, 5, gs.NumEdges())
}

// TestIsFlipLegal_RejectsHullAndConcave covers the rejection branches.
func TestIsFlipLegal_RejectsHullAndConcave(t *testing.T) {
	gs := squareState(t)

	// Hull edge: not shared by two triangles.
	assert.False(t, mesh.IsFlipLegal(gs, 0, 1).Legal)

	// Absent edge.
	assert.False(t, mesh.IsFlipLegal(gs, 1, 3).Legal)

	// Concave quadrilateral: one interior point fanned inside a triangle.
	// Flipping any spoke would tear the fan.
	pts := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 4}, {X: 2, Y: 1}}
	tri := mesh.Triangulation{
		Edges: []mesh.Edge{
			{U: 0, V: 1, Weight: geom.Dist(pts[0], pts[1])},
			{U: 1, V: 2, Weight: geom.Dist(pts[1], pts[2])},
			{U: 0, V: 2, Weight: geom.Dist(pts[0], pts[2])},
			{U: 0, V: 3, Weight: geom.Dist(pts[0], pts[3])},
			{U: 1, V: 3, Weight: geom.Dist(pts[1], pts[3])},
			{U: 2, V: 3, Weight: geom.Dist(pts[2], pts[3])},
		},
		Triangles: []mesh.Triangle{
			{A: 3, B: 0, C: 1}, {A: 3, B: 1, C: 2}, {A: 3, B: 2, C: 0},
		},
	}
	fan, err := mesh.NewGraphState(tri, pts)
	require.NoError(t, err)
	require.NoError(t, fan.CheckInvariants())

	for _, spoke := range [][2]int{{3, 0}, {3, 1}, {3, 2}} {
		f := mesh.IsFlipLegal(fan, spoke[0], spoke[1])
		assert.False(t, f.Legal, "spoke (%d,%d) must not be flippable", spoke[0], spoke[1])
	}
}

// Package mesh defines the value types and sentinel errors of the planar
// triangulation state. GraphState itself lives in graphstate.go.
package mesh

import "errors"

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

var (
	// ErrVertexRange indicates an edge or triangle references a vertex index
	// outside [0, |P|).
	ErrVertexRange = errors.New("mesh: vertex index out of range")

	// ErrSelfLoop indicates an edge with identical endpoints.
	ErrSelfLoop = errors.New("mesh: self-loop edge")

	// ErrIllegalFlip is returned by FlipEdge when the FlipResult carries
	// Legal == false. The state is not modified.
	ErrIllegalFlip = errors.New("mesh: attempted illegal flip")

	// ErrFlipDegenerate is returned by FlipEdge when the diagonal is not
	// shared by exactly two triangles. Recoverable: the caller skips the flip.
	ErrFlipDegenerate = errors.New("mesh: flip target not shared by two triangles")

	// ErrInvariant is returned by CheckInvariants when any structural
	// invariant of the state is violated.
	ErrInvariant = errors.New("mesh: graph state invariant violated")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Value types
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// EdgeKey is the canonical identity of an undirected edge: U < V always.
// Using it as a map key makes equality and hashing ignore orientation.
type EdgeKey struct {
	U, V int
}

// NewEdgeKey canonicalises (u, v) into an EdgeKey with U < V.
func NewEdgeKey(u, v int) EdgeKey {
	if u < v {
		return EdgeKey{U: u, V: v}
	}

	return EdgeKey{U: v, V: u}
}

// Edge is an undirected edge between point indices U and V with its
// precomputed Euclidean length. U < V by construction everywhere in this
// module; Key() re-canonicalises defensively.
type Edge struct {
	U, V   int
	Weight float64
}

// Key returns the canonical EdgeKey of e.
func (e Edge) Key() EdgeKey {
	return NewEdgeKey(e.U, e.V)
}

// Triangle is an ordered triple of distinct point indices. Orientation
// (CW/CCW) is not an invariant; flip legality never depends on it.
type Triangle struct {
	A, B, C int
}

// Opposite returns the one vertex of t that is neither u nor v.
// Precondition: t contains both u and v.
func (t Triangle) Opposite(u, v int) int {
	if t.A != u && t.A != v {
		return t.A
	}
	if t.B != u && t.B != v {
		return t.B
	}

	return t.C
}

// Triangulation is the interchange value between a triangulator and
// GraphState: a deduplicated weighted edge set plus the exact triangle
// connectivity.
type Triangulation struct {
	Edges     []Edge
	Triangles []Triangle
}

// FlipResult describes a candidate diagonal flip of the quadrilateral
// (A,B,C,D): (B,D) is the current diagonal, (A,C) the alternate one.
// Legal == false means the flip must not be applied.
type FlipResult struct {
	Legal      bool
	A, B, C, D int
}

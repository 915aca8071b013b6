// Package mesh - GraphState construction, lookups, and the flip mutation.
package mesh

import (
	"sort"

	"github.com/katalvlaran/planar/geom"
)

// GraphState owns a triangulation of a fixed point set and the indices that
// make flip-based mutation O(1) amortised. Construct with NewGraphState,
// mutate only through FlipEdge.
type GraphState struct {
	points    []geom.Point
	edges     []Edge            // dense sequence; order changes under swap-and-pop
	edgeTable map[EdgeKey]Edge  // key → record
	edgeIndex map[EdgeKey]int   // key → position in edges
	triangles []Triangle        // slots are rewritten in place by FlipEdge
	adjacency []map[int]struct{} // vertex → neighbour set
	incidence map[EdgeKey][]int // key → triangle indices referencing it
}

// NewGraphState builds all four indices from an initial triangulation in one
// pass over its edges and triangles. The point slice is referenced, not
// copied; it must stay immutable for the lifetime of the state.
//
// Errors: ErrVertexRange for an out-of-range index, ErrSelfLoop for an edge
// or triangle with repeated vertices.
//
// Complexity: O(|edges| + |triangles|).
func NewGraphState(tri Triangulation, pts []geom.Point) (*GraphState, error) {
	gs := &GraphState{
		points:    pts,
		edges:     make([]Edge, 0, len(tri.Edges)),
		edgeTable: make(map[EdgeKey]Edge, len(tri.Edges)),
		edgeIndex: make(map[EdgeKey]int, len(tri.Edges)),
		triangles: make([]Triangle, len(tri.Triangles)),
		adjacency: make([]map[int]struct{}, len(pts)),
		incidence: make(map[EdgeKey][]int, len(tri.Edges)),
	}
	for v := range gs.adjacency {
		gs.adjacency[v] = make(map[int]struct{}, 8)
	}

	n := len(pts)
	for _, e := range tri.Edges {
		if e.U == e.V {
			return nil, ErrSelfLoop
		}
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, ErrVertexRange
		}
		gs.insertEdge(e.U, e.V)
	}

	for i, t := range tri.Triangles {
		if t.A == t.B || t.B == t.C || t.A == t.C {
			return nil, ErrSelfLoop
		}
		if t.A < 0 || t.A >= n || t.B < 0 || t.B >= n || t.C < 0 || t.C >= n {
			return nil, ErrVertexRange
		}
		gs.triangles[i] = t
		gs.incidence[NewEdgeKey(t.A, t.B)] = append(gs.incidence[NewEdgeKey(t.A, t.B)], i)
		gs.incidence[NewEdgeKey(t.B, t.C)] = append(gs.incidence[NewEdgeKey(t.B, t.C)], i)
		gs.incidence[NewEdgeKey(t.C, t.A)] = append(gs.incidence[NewEdgeKey(t.C, t.A)], i)
	}

	return gs, nil
}

// Points returns the underlying point slice. Read-only by contract.
func (gs *GraphState) Points() []geom.Point { return gs.points }

// Edges returns the live dense edge sequence. Read-only by contract; the
// order is unspecified and changes across flips.
func (gs *GraphState) Edges() []Edge { return gs.edges }

// NumEdges returns the current edge count.
func (gs *GraphState) NumEdges() int { return len(gs.edges) }

// NumTriangles returns the current triangle count (constant across flips).
func (gs *GraphState) NumTriangles() int { return len(gs.triangles) }

// TriangleAt returns the triangle stored in slot i.
func (gs *GraphState) TriangleAt(i int) Triangle { return gs.triangles[i] }

// Triangles returns a copy of the triangle sequence.
func (gs *GraphState) Triangles() []Triangle {
	out := make([]Triangle, len(gs.triangles))
	copy(out, gs.triangles)

	return out
}

// HasEdge reports whether the undirected edge (u, v) is present.
//
// Complexity: O(1) average.
func (gs *GraphState) HasEdge(u, v int) bool {
	_, ok := gs.edgeTable[NewEdgeKey(u, v)]

	return ok
}

// GetEdge returns the edge record for (u, v), if present.
//
// Complexity: O(1) average.
func (gs *GraphState) GetEdge(u, v int) (Edge, bool) {
	e, ok := gs.edgeTable[NewEdgeKey(u, v)]

	return e, ok
}

// IncidentTriangles returns the triangle indices referencing edge (u, v).
// The returned slice is the live incidence list; read-only by contract.
func (gs *GraphState) IncidentTriangles(u, v int) []int {
	return gs.incidence[NewEdgeKey(u, v)]
}

// AdjacentTo returns the neighbours of v in ascending order. The sort keeps
// downstream consumers (incremental candidate maintenance) deterministic
// under a fixed seed.
//
// Complexity: O(deg(v) log deg(v)).
func (gs *GraphState) AdjacentTo(v int) []int {
	if v < 0 || v >= len(gs.adjacency) {
		return nil
	}
	out := make([]int, 0, len(gs.adjacency[v]))
	for nb := range gs.adjacency[v] {
		out = append(out, nb)
	}
	sort.Ints(out)

	return out
}

// Weight returns the sum of all current edge weights - the objective value
// the optimizers minimise.
//
// Complexity: O(|edges|).
func (gs *GraphState) Weight() float64 {
	var sum float64
	for i := range gs.edges {
		sum += gs.edges[i].Weight
	}

	return sum
}

// FlipEdge applies a legal diagonal flip:
//
//	before: triangles t0 ⊇ {B,D,A}, t1 ⊇ {B,D,C} sharing diagonal (B,D)
//	after:  triangles t0 = (A,B,C), t1 = (A,C,D) sharing diagonal (A,C)
//
// The edge sequence loses (B,D) and gains (A,C) with its Euclidean weight;
// the incidence lists of the four rim edges are rewired to their new owners;
// adjacency is updated symmetrically. Edge removal is swap-and-pop with
// index-map repair, so the sequence stays dense.
//
// Errors: ErrIllegalFlip when f.Legal is false, ErrFlipDegenerate when (B,D)
// is not shared by exactly two triangles. The state is unchanged on error.
//
// Complexity: O(1) amortised.
func (gs *GraphState) FlipEdge(f FlipResult) error {
	if !f.Legal {
		return ErrIllegalFlip
	}

	a, b, c, d := f.A, f.B, f.C, f.D
	oldKey := NewEdgeKey(b, d)

	tris := gs.incidence[oldKey]
	if len(tris) != 2 {
		return ErrFlipDegenerate
	}
	t0, t1 := tris[0], tris[1]

	// Rewrite the triangle slots in place; indices t0 and t1 stay valid.
	gs.triangles[t0] = Triangle{A: a, B: b, C: c}
	gs.triangles[t1] = Triangle{A: a, B: c, C: d}

	// Swap the diagonal in the edge structures.
	gs.removeEdge(b, d)
	gs.insertEdge(a, c)

	// Rewire incidence: drop the vanished diagonal entirely, then scrub t0/t1
	// from the rim edges and reattach them to their new owners.
	delete(gs.incidence, oldKey)
	gs.detachTriangles(NewEdgeKey(a, b), t0, t1)
	gs.detachTriangles(NewEdgeKey(b, c), t0, t1)
	gs.detachTriangles(NewEdgeKey(c, d), t0, t1)
	gs.detachTriangles(NewEdgeKey(d, a), t0, t1)

	gs.attachTriangle(NewEdgeKey(a, b), t0)
	gs.attachTriangle(NewEdgeKey(b, c), t0)
	gs.attachTriangle(NewEdgeKey(c, a), t0)

	gs.attachTriangle(NewEdgeKey(a, c), t1)
	gs.attachTriangle(NewEdgeKey(c, d), t1)
	gs.attachTriangle(NewEdgeKey(d, a), t1)

	return nil
}

// insertEdge adds the undirected edge (u, v) with its Euclidean weight to the
// dense sequence, the two hash indices, and the adjacency sets.
func (gs *GraphState) insertEdge(u, v int) {
	k := NewEdgeKey(u, v)

	gs.adjacency[u][v] = struct{}{}
	gs.adjacency[v][u] = struct{}{}

	e := Edge{U: k.U, V: k.V, Weight: geom.Dist(gs.points[u], gs.points[v])}
	gs.edgeIndex[k] = len(gs.edges)
	gs.edges = append(gs.edges, e)
	gs.edgeTable[k] = e
}

// removeEdge deletes (u, v) from every structure. The dense sequence uses
// swap-and-pop: the last edge moves into the vacated slot and its index-map
// entry is repaired.
func (gs *GraphState) removeEdge(u, v int) {
	k := NewEdgeKey(u, v)

	delete(gs.adjacency[u], v)
	delete(gs.adjacency[v], u)
	delete(gs.edgeTable, k)

	idx, ok := gs.edgeIndex[k]
	if !ok {
		return
	}
	delete(gs.edgeIndex, k)

	last := len(gs.edges) - 1
	if idx != last {
		gs.edges[idx] = gs.edges[last]
		gs.edgeIndex[gs.edges[idx].Key()] = idx
	}
	gs.edges = gs.edges[:last]
}

// detachTriangles removes any occurrence of t0 or t1 from the incidence list
// of key, compacting in place.
func (gs *GraphState) detachTriangles(key EdgeKey, t0, t1 int) {
	list, ok := gs.incidence[key]
	if !ok {
		return
	}
	kept := list[:0]
	for _, t := range list {
		if t != t0 && t != t1 {
			kept = append(kept, t)
		}
	}
	gs.incidence[key] = kept
}

// attachTriangle appends tri to the incidence list of key.
func (gs *GraphState) attachTriangle(key EdgeKey, tri int) {
	gs.incidence[key] = append(gs.incidence[key], tri)
}

// Package mesh - structural invariant checks.
//
// CheckInvariants is a diagnostic, not a hot-path guard: property tests run
// it after every accepted flip, and callers may run it when a recoverable
// inconsistency is suspected. It never mutates the state.
package mesh

import "fmt"

// CheckInvariants validates the five structural invariants documented in
// doc.go and returns ErrInvariant (wrapped with a description of the first
// violation found) or nil.
//
// Complexity: O(|edges| + |triangles| + Σ deg(v)).
func (gs *GraphState) CheckInvariants() error {
	n := len(gs.points)

	// 1. Dense sequence ↔ hash indices agree, no self-loops, indices in range.
	if len(gs.edges) != len(gs.edgeTable) || len(gs.edges) != len(gs.edgeIndex) {
		return fmt.Errorf("%w: edge containers disagree on size (%d seq, %d table, %d index)",
			ErrInvariant, len(gs.edges), len(gs.edgeTable), len(gs.edgeIndex))
	}
	for i, e := range gs.edges {
		if e.U == e.V {
			return fmt.Errorf("%w: self-loop edge at position %d", ErrInvariant, i)
		}
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return fmt.Errorf("%w: edge (%d,%d) out of vertex range", ErrInvariant, e.U, e.V)
		}
		k := e.Key()
		if _, ok := gs.edgeTable[k]; !ok {
			return fmt.Errorf("%w: edge (%d,%d) missing from edgeTable", ErrInvariant, e.U, e.V)
		}
		if at, ok := gs.edgeIndex[k]; !ok || at != i {
			return fmt.Errorf("%w: edgeIndex for (%d,%d) is %d, want %d", ErrInvariant, e.U, e.V, at, i)
		}
	}

	// 2. Every triangle edge is present and its incidence lists the triangle.
	for ti, t := range gs.triangles {
		for _, k := range [3]EdgeKey{
			NewEdgeKey(t.A, t.B), NewEdgeKey(t.B, t.C), NewEdgeKey(t.C, t.A),
		} {
			if _, ok := gs.edgeTable[k]; !ok {
				return fmt.Errorf("%w: triangle %d edge (%d,%d) not in edgeTable", ErrInvariant, ti, k.U, k.V)
			}
			found := false
			for _, ref := range gs.incidence[k] {
				if ref == ti {
					found = true

					break
				}
			}
			if !found {
				return fmt.Errorf("%w: incidence of (%d,%d) misses triangle %d", ErrInvariant, k.U, k.V, ti)
			}
		}
	}

	// 3. Incidence sizes are 1 (hull) or 2 (interior), over current edges only.
	for _, e := range gs.edges {
		refs := gs.incidence[e.Key()]
		if len(refs) < 1 || len(refs) > 2 {
			return fmt.Errorf("%w: edge (%d,%d) incident to %d triangles", ErrInvariant, e.U, e.V, len(refs))
		}
	}

	// 4. Adjacency symmetry, and adjacency ⇔ edgeTable.
	var adjCount int
	for u := range gs.adjacency {
		for v := range gs.adjacency[u] {
			adjCount++
			if _, ok := gs.adjacency[v][u]; !ok {
				return fmt.Errorf("%w: adjacency asymmetric for (%d,%d)", ErrInvariant, u, v)
			}
			if _, ok := gs.edgeTable[NewEdgeKey(u, v)]; !ok {
				return fmt.Errorf("%w: adjacency edge (%d,%d) not in edgeTable", ErrInvariant, u, v)
			}
		}
	}
	// Each undirected edge contributes two directed adjacency entries.
	if adjCount != 2*len(gs.edges) {
		return fmt.Errorf("%w: adjacency holds %d directed entries, want %d", ErrInvariant, adjCount, 2*len(gs.edges))
	}

	return nil
}

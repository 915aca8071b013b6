// Package anneal - candidate-edge pool construction and maintenance.
package anneal

import (
	"math"
	"sort"

	"github.com/katalvlaran/planar/mesh"
)

// BuildCandidateSet selects every edge of gs that qualifies under policy -
// top PerVertex incident edges at either endpoint, or global top
// GlobalFraction by length - materialises them in edge-sequence order for
// determinism, and shuffles with the annealer's RNG.
//
// Complexity: O(|E| log |E|) for the global sort plus O(Σ deg log deg) for
// the per-vertex ranks.
func (a *Annealer) BuildCandidateSet(gs *mesh.GraphState) []mesh.Edge {
	policy := a.policy.clamped()
	edges := gs.Edges()
	if len(edges) == 0 {
		return nil
	}

	keys := make(map[mesh.EdgeKey]struct{}, len(edges))

	// Per-vertex criterion: the k longest incident edges at every vertex.
	if policy.PerVertex > 0 {
		incident := make([][]int, len(gs.Points())) // edge positions per vertex
		for i := range edges {
			incident[edges[i].U] = append(incident[edges[i].U], i)
			incident[edges[i].V] = append(incident[edges[i].V], i)
		}
		for v := range incident {
			vec := incident[v]
			if len(vec) == 0 {
				continue
			}
			sort.SliceStable(vec, func(i, j int) bool {
				return edges[vec[i]].Weight > edges[vec[j]].Weight
			})
			take := policy.PerVertex
			if take > len(vec) {
				take = len(vec)
			}
			for i := 0; i < take; i++ {
				keys[edges[vec[i]].Key()] = struct{}{}
			}
		}
	}

	// Global criterion: the top fraction of all edges by length.
	if policy.GlobalFraction > 0 {
		keep := globalKeepCount(len(edges), policy.GlobalFraction)
		order := make([]int, len(edges))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			return edges[order[i]].Weight > edges[order[j]].Weight
		})
		for i := 0; i < keep; i++ {
			keys[edges[order[i]].Key()] = struct{}{}
		}
	}

	// Materialise in edge-sequence order so the pre-shuffle order is a pure
	// function of the graph state, then randomize.
	out := make([]mesh.Edge, 0, len(keys))
	for i := range edges {
		if _, ok := keys[edges[i].Key()]; ok {
			out = append(out, edges[i])
		}
	}
	a.rng.shuffleEdges(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}

// UpdateAfterFlip maintains the candidate pool after an applied flip.
// The vanished diagonal (B,D) is removed, the new diagonal (A,C) is admitted
// if it qualifies, and every edge incident to the four quadrilateral
// vertices is re-tested - those are the only edges whose per-vertex rank the
// flip can change. aggressive forces a full rebuild instead.
//
// The pool is reshuffled before returning so the next uniform draw stays
// unbiased.
//
// Complexity: O(|E| log |E|) for the cutoff sort plus O(Σ_{v∈quad} deg(v) · deg)
// for the re-tests; O(|E| log |E|) when aggressive.
func (a *Annealer) UpdateAfterFlip(
	cands []mesh.Edge,
	gs *mesh.GraphState,
	flip mesh.FlipResult,
	aggressive bool,
) []mesh.Edge {
	if !flip.Legal {
		return cands
	}
	if aggressive {
		return a.BuildCandidateSet(gs)
	}

	policy := a.policy.clamped()

	// Position index over the current pool for O(1) membership and removal.
	pos := make(map[mesh.EdgeKey]int, len(cands))
	for i := range cands {
		pos[cands[i].Key()] = i
	}

	remove := func(k mesh.EdgeKey) {
		i, ok := pos[k]
		if !ok {
			return
		}
		last := len(cands) - 1
		if i != last {
			cands[i] = cands[last]
			pos[cands[i].Key()] = i
		}
		cands = cands[:last]
		delete(pos, k)
	}
	admit := func(e mesh.Edge) {
		k := e.Key()
		if _, ok := pos[k]; ok {
			return
		}
		pos[k] = len(cands)
		cands = append(cands, e)
	}

	// The flipped-away diagonal can no longer be proposed.
	remove(mesh.NewEdgeKey(flip.B, flip.D))

	// One cutoff for this whole update; its drift across updates is the
	// accepted approximation of the global criterion.
	cutoff := globalCutoff(gs, policy)

	if e, ok := gs.GetEdge(flip.A, flip.C); ok && a.isGoodCandidate(e, gs, policy, cutoff) {
		admit(e)
	}

	// Re-test the neighbourhood of the quadrilateral.
	visited := make(map[mesh.EdgeKey]struct{}, 16)
	for _, v := range [4]int{flip.A, flip.B, flip.C, flip.D} {
		for _, nb := range gs.AdjacentTo(v) {
			e, ok := gs.GetEdge(v, nb)
			if !ok {
				continue
			}
			k := e.Key()
			if _, seen := visited[k]; seen {
				continue
			}
			visited[k] = struct{}{}

			if a.isGoodCandidate(e, gs, policy, cutoff) {
				admit(e)
			} else {
				remove(k)
			}
		}
	}

	a.rng.shuffleEdges(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })

	return cands
}

// isGoodCandidate reports whether e qualifies under policy: at or above the
// global cutoff, or within the top PerVertex incident ranks at either
// endpoint.
func (a *Annealer) isGoodCandidate(
	e mesh.Edge,
	gs *mesh.GraphState,
	policy CandidatePolicy,
	cutoff float64,
) bool {
	if policy.GlobalFraction > 0 && e.Weight >= cutoff {
		return true
	}
	if policy.PerVertex == 0 {
		return false
	}

	return a.rankWithin(gs, e, e.U, policy.PerVertex) ||
		a.rankWithin(gs, e, e.V, policy.PerVertex)
}

// rankWithin reports whether fewer than k incident edges at v are strictly
// longer than e, i.e. e is within v's top-k by length.
func (a *Annealer) rankWithin(gs *mesh.GraphState, e mesh.Edge, v, k int) bool {
	longer := 0
	for _, nb := range gs.AdjacentTo(v) {
		other, ok := gs.GetEdge(v, nb)
		if !ok || other.Key() == e.Key() {
			continue
		}
		if other.Weight > e.Weight {
			longer++
			if longer >= k {
				return false
			}
		}
	}

	return true
}

// globalCutoff returns the ⌈f·|E|⌉-th largest edge weight (at least the
// single largest when f > 0), or +Inf when the global criterion is off.
func globalCutoff(gs *mesh.GraphState, policy CandidatePolicy) float64 {
	if policy.GlobalFraction <= 0 || gs.NumEdges() == 0 {
		return math.Inf(1)
	}

	edges := gs.Edges()
	weights := make([]float64, len(edges))
	for i := range edges {
		weights[i] = edges[i].Weight
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(weights)))

	return weights[globalKeepCount(len(weights), policy.GlobalFraction)-1]
}

// globalKeepCount converts a fraction into an edge count, ⌈fraction·n⌉,
// keeping at least one edge for any positive fraction.
func globalKeepCount(n int, fraction float64) int {
	keep := int(math.Ceil(fraction * float64(n)))
	if keep < 1 {
		keep = 1
	}
	if keep > n {
		keep = n
	}

	return keep
}

// Package anneal minimises the total edge length of a triangulation by
// Metropolis flip-search: starting from a near-Delaunay mesh.GraphState, it
// repeatedly proposes diagonal flips drawn from a maintained pool of
// candidate edges, accepts improving flips always and worsening flips with
// probability exp(−Δ/T), and cools T adaptively.
//
// # Candidate-edge filter
//
// In a near-Delaunay triangulation most edges are short and rarely
// profitable to flip. The filter focuses proposals on long edges, the ones
// likeliest to shrink: an edge is a good candidate when it ranks within the
// top PerVertex incident edges (by length) at either endpoint, or within the
// top GlobalFraction of all edges. The pool is rebuilt from scratch when it
// starves below half the edge count and is otherwise maintained
// incrementally after every accepted flip - only edges incident to the four
// quadrilateral vertices can change rank. (The global cutoff itself drifts
// as flips land; recomputing it per update rather than per edge is the
// accepted approximation.)
//
// # Objective and acceptance
//
// The objective is Σ edge weights (GraphState.Weight). The per-flip score is
// the scale-invariant log-ratio
//
//	Δ = log( |new diagonal| / |old diagonal| )
//
// which keeps Δ on O(1) regardless of the input's absolute scale, so one
// temperature schedule behaves across datasets.
//
// # Cooling
//
// ConfigureDynamic samples up to 800 candidate flips to estimate the mean
// |Δ|, then sets T0 = 2.5·mean, Tmin = mean/1000, and a 300·|E| iteration
// budget with adaptive cooling: ×0.99995 after an improving step, ×0.9993
// after a worsening one. Without adaptation a fixed CoolingRate applies.
//
// GreedyImprove is the zero-temperature polish: first-improvement passes
// over the candidate pool until a full pass finds nothing.
//
// # Determinism & ownership
//
// Each Annealer owns a single seeded RNG (Seed 0 ⇒ fixed default stream; no
// time-based sources) and must own its GraphState exclusively: flips mutate
// adjacency and triangle slots in place. Recoverable inconsistencies (a flip
// that passed legality but fails at apply time) are logged through the
// configured zap logger and skipped; the loop continues.
package anneal

// Package mesh holds the mutable planar-triangulation state shared by the
// flip-based optimizers: a point array, a dense edge sequence, a triangle
// sequence, and the four indices that keep edge↔triangle↔vertex lookups O(1).
//
// # What & Why
//
// Local search over triangulations needs exactly one mutation - the edge flip:
// replace the shared diagonal (b,d) of two adjacent triangles forming a convex
// quadrilateral (a,b,c,d) with the other diagonal (a,c). Everything else in
// this package exists to make that mutation cheap and safe:
//
//   - a dense []Edge sequence (uniform random sampling, swap-and-pop removal),
//   - edgeTable  (EdgeKey → Edge)  for O(1) lookup by endpoints,
//   - edgeIndex  (EdgeKey → position) so removal keeps the sequence dense,
//   - adjacency  (vertex → neighbour set) for neighbourhood walks (AdjacentTo),
//   - incidence  (EdgeKey → triangle indices) for flip legality and rewiring.
//
// # Invariants
//
// Hold before and after every exported mutation:
//
//  1. edgeTable keys = { key(e) : e ∈ edges }; edgeIndex is its positional twin.
//  2. Every triangle's three edge keys are present in the incidence map and
//     each maps back to that triangle's index.
//  3. Interior edges are incident to exactly 2 triangles; hull edges to 1.
//  4. Adjacency is symmetric and mirrors edgeTable exactly.
//  5. No self-loop edges; all vertex indices lie in [0, |P|).
//
// CheckInvariants validates all five; the property tests run it after every
// accepted flip.
//
// # Lifecycle & concurrency
//
// A GraphState is built once from a Triangulation (initial {edges, triangles}
// pair, typically the Delaunay adapter's output), mutated only through
// FlipEdge, and discarded wholesale. It is not safe for concurrent use:
// FlipEdge rewrites adjacency and triangle slots in place. One logical owner
// per state; clones for parallel restarts must each own their state and RNG.
//
// # Errors
//
// Strict sentinels only (types.go). An illegal or degenerate flip returns
// ErrIllegalFlip / ErrFlipDegenerate and leaves the state untouched - callers
// in the annealing loop log and continue.
package mesh

// Package planar is a toolkit for minimum-weight triangulation (MWT) of
// planar point sets in Go.
//
// 🚀 What is planar?
//
//	Four interoperable triangulation strategies over one geometric substrate:
//
//	  • brute   — exact polygon DP for points in convex position
//	  • dogt    — distance-ordered greedy triangulation (fast heuristic)
//	  • mstpoly — convex hull + Euclidean MST skeleton, exact DP per face
//	  • sa      — Delaunay seed + candidate-edge simulated annealing
//
// ✨ Why choose planar?
//
//   - Deterministic    — every randomized component is seed-driven; same
//     seed, same triangulation
//   - Strict errors    — sentinel errors per package, no panics on user input
//   - Measured         — the orchestrator times the core and emits a single
//     machine-readable RESULT line
//
// Under the hood, everything is organized as one package per concern:
//
//	geom/     — orientation predicates, distances, hull (golang/geo r2 points)
//	mesh/     — the flip-mutable planar graph state and its invariants
//	polygon/  — perimeter-cost triangulation DP
//	dogt/     — the greedy hull-fan heuristic
//	mstpoly/  — MST + planar face extraction + per-face DP
//	delaunay/ — adapter over an external Delaunay triangulator
//	anneal/   — candidate-edge filter + Metropolis flip search
//	mwt/      — algorithm selection, timing, results
//	dataset/  — point-file loaders and result writers
//	cmd/mwt/  — the CLI binary
//
// Quick ASCII example:
//
//	    3───2
//	    │ ╱ │      the square's two triangulations differ only in the
//	    0───1      diagonal; one legal edge flip converts between them.
//
// MWT is NP-hard in general; none of the heuristics certify optimality on
// arbitrary inputs. See each package's doc.go for contracts and complexity.
//
//	go get github.com/katalvlaran/planar
package planar

// Package mwt is the top-level dispatcher: it selects one of the four
// triangulation algorithms, runs it over a point set, and reports the total
// edge weight together with the measured core runtime.
//
// The four strategies trade optimality against runtime:
//
//   - BruteForce    - polygon DP over the input order; optimal only for
//     points in convex position (documented precondition, not verified).
//   - DOGT          - distance-ordered greedy hull-fan heuristic; fastest.
//   - MSTPoly       - hull+MST skeleton, exact DP per planar face.
//   - DTCESSA       - Delaunay seed, candidate-edge simulated annealing,
//     greedy polish; the strongest approximation.
//
// The algorithms share only the input/output shape (points in, weight and
// runtime out), so dispatch is a plain tagged switch - no capability
// interface.
package mwt

import (
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/katalvlaran/planar/anneal"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

var (
	// ErrTooFewPoints indicates fewer points than the selected algorithm
	// can triangulate.
	ErrTooFewPoints = errors.New("mwt: need at least 3 points")

	// ErrUnknownAlgorithm is returned when Options.Algo is not one of the
	// four defined strategies.
	ErrUnknownAlgorithm = errors.New("mwt: unknown algorithm")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Algorithm selector
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Algorithm enumerates the four triangulation strategies.
type Algorithm int

const (
	// BruteForce runs the perimeter-cost polygon DP over the whole input.
	BruteForce Algorithm = iota

	// DOGT runs the Distance-Ordered Greedy Triangulation.
	DOGT

	// MSTPoly runs the MST-polygonisation pipeline.
	MSTPoly

	// DTCESSA runs Delaunay + candidate-edge simulated annealing.
	DTCESSA
)

// String returns the CLI-facing name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BruteForce:
		return "brute"
	case DOGT:
		return "dogt"
	case MSTPoly:
		return "mstpoly"
	case DTCESSA:
		return "sa"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a CLI name back to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "brute":
		return BruteForce, nil
	case "dogt":
		return DOGT, nil
	case "mstpoly":
		return MSTPoly, nil
	case "sa":
		return DTCESSA, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & results
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Options configures a Solve call. Zero value is not meaningful; start from
// DefaultOptions and override fields as needed.
type Options struct {
	// Algo selects the strategy. Default: DTCESSA.
	Algo Algorithm

	// Seed drives every randomized component (annealer RNG). Seed 0 selects
	// the fixed default stream; there is no time-based seeding.
	Seed int64

	// Policy tunes the annealer's candidate-edge filter. Ignored by the
	// other strategies.
	Policy anneal.CandidatePolicy

	// Logger receives recoverable diagnostics. Nil means silent.
	Logger *zap.Logger

	// Clock measures the core runtime; injectable for tests. Nil means the
	// real monotonic clock.
	Clock clock.Clock
}

// DefaultOptions returns production defaults: the annealing pipeline, the
// stock candidate policy, deterministic seed, real clock, no logging.
func DefaultOptions() Options {
	return Options{
		Algo:   DTCESSA,
		Seed:   0,
		Policy: anneal.DefaultPolicy(),
		Logger: nil,
		Clock:  nil,
	}
}

// Result is the outcome of one Solve call.
type Result struct {
	// Weight is the total Euclidean edge length of the produced
	// triangulation.
	Weight float64

	// Runtime is the measured wall time of the core algorithm (excluding
	// input loading and output writing).
	Runtime time.Duration

	// Edges is the triangulation's edge list as index pairs, populated only
	// by BruteForce (its CSV writer needs it); nil otherwise.
	Edges [][2]int
}

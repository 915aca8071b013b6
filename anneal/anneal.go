// Package anneal - the Metropolis flip loop, its calibration, and the
// greedy polish.
package anneal

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/mesh"
)

// WeightChange scores the flip as the scale-invariant log-ratio of the new
// diagonal's length to the old one's: negative means the flip shortens the
// triangulation. Returns 0 when the old diagonal cannot be resolved (the
// flip will be rejected downstream anyway).
//
// Complexity: O(1).
func WeightChange(gs *mesh.GraphState, flip mesh.FlipResult) float64 {
	old, ok := gs.GetEdge(flip.B, flip.D)
	if !ok {
		return 0
	}

	pts := gs.Points()
	newLen := geom.Dist(pts[flip.A], pts[flip.C])

	return math.Log(newLen / old.Weight)
}

// ConfigureDynamic calibrates the schedule against the actual flip deltas of
// this input: it samples up to 800 candidate edges, averages |Δ| over the
// legal ones with a nonzero |Δ| (gonum's stat.Mean), and derives
//
//	T0      = 2.5 · mean|Δ|
//	Tmin    = mean|Δ| / 1000
//	maxIter = 300 · |E|
//
// falling back to mean|Δ| = 0.1 when no sampled flip was both legal and
// weight-changing. Adaptive
// cooling is switched on.
//
// Complexity: O(min(800, |C|)).
func (a *Annealer) ConfigureDynamic(gs *mesh.GraphState, cands []mesh.Edge) {
	sampleCount := len(cands)
	if sampleCount > configureSampleCap {
		sampleCount = configureSampleCap
	}

	samples := make([]float64, 0, sampleCount)
	for i := 0; i < sampleCount; i++ {
		flip := mesh.IsFlipLegal(gs, cands[i].U, cands[i].V)
		if !flip.Legal {
			continue
		}
		if delta := math.Abs(WeightChange(gs, flip)); delta > 0 {
			samples = append(samples, delta)
		}
	}

	eavg := configureFallbackEavg
	if len(samples) > 0 {
		eavg = stat.Mean(samples, nil)
	}

	a.InitialTemperature = 2.5 * eavg
	a.MinTemperature = eavg / 1000
	a.MaxIterations = iterationsPerEdge * gs.NumEdges()
	a.AdaptiveCooling = true
}

// Run executes the annealing loop on gs until the iteration budget or the
// minimum temperature is reached, and returns the number of accepted flips
// (also kept in a.Accepted).
//
// Per iteration: rebuild the pool if it starved below half the edge count,
// draw a uniform candidate, test legality, score the flip, and apply it
// under the Metropolis rule. An apply-time failure (the legality check and
// the mutation disagree about the state - a recoverable inconsistency) is
// logged and skipped. Cooling follows the adaptive pair or the fixed rate.
//
// The incremental candidate update completes before the next draw, so
// samples never reference the pre-flip edge sequence.
//
// Complexity: O(MaxIterations · (legality + update)) worst case.
func (a *Annealer) Run(gs *mesh.GraphState) int {
	cands := a.BuildCandidateSet(gs)
	a.Accepted = 0
	temp := a.InitialTemperature

	for iter := 0; iter < a.MaxIterations && temp > a.MinTemperature; iter++ {
		if float64(len(cands)) < rebuildFractionRun*float64(gs.NumEdges()) {
			cands = a.BuildCandidateSet(gs)
		}
		if len(cands) == 0 {
			break
		}

		e := cands[a.rng.Intn(len(cands))]
		flip := mesh.IsFlipLegal(gs, e.U, e.V)
		if !flip.Legal {
			continue
		}

		delta := WeightChange(gs, flip)
		if delta < 0 || math.Exp(-delta/temp) > a.rng.Float64() {
			if err := gs.FlipEdge(flip); err != nil {
				a.log.Warn("flip rejected at apply time",
					zap.Int("u", e.U), zap.Int("v", e.V), zap.Error(err))

				continue
			}
			a.Accepted++
			cands = a.UpdateAfterFlip(cands, gs, flip, false)
		}

		if a.AdaptiveCooling {
			if delta < 0 {
				temp *= adaptiveCoolImproving
			} else {
				temp *= adaptiveCoolWorsening
			}
		} else {
			temp *= a.CoolingRate
		}
	}

	return a.Accepted
}

// GreedyImprove is the zero-temperature polish: scan the candidate pool for
// any legal improving flip, apply the first one found, update the pool, and
// restart the scan; stop when a full pass finds nothing. The pool is rebuilt
// whenever it starves below 0.3·|E|.
//
// Returns the number of improving flips applied.
//
// Complexity: O(passes · |C|) legality checks.
func (a *Annealer) GreedyImprove(gs *mesh.GraphState) int {
	cands := a.BuildCandidateSet(gs)
	applied := 0

	improved := true
	for improved {
		improved = false

		if float64(len(cands)) < rebuildFractionGreedy*float64(gs.NumEdges()) {
			cands = a.BuildCandidateSet(gs)
		}

		for i := range cands {
			flip := mesh.IsFlipLegal(gs, cands[i].U, cands[i].V)
			if !flip.Legal {
				continue
			}
			if WeightChange(gs, flip) >= 0 {
				continue
			}

			if err := gs.FlipEdge(flip); err != nil {
				a.log.Warn("greedy flip rejected at apply time",
					zap.Int("u", cands[i].U), zap.Int("v", cands[i].V), zap.Error(err))

				continue
			}
			applied++
			cands = a.UpdateAfterFlip(cands, gs, flip, false)
			improved = true

			// First-improvement policy: restart the pass on the new state.
			break
		}
	}

	return applied
}

// Package mwt - the dispatcher.
package mwt

import (
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/katalvlaran/planar/anneal"
	"github.com/katalvlaran/planar/delaunay"
	"github.com/katalvlaran/planar/dogt"
	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/mesh"
	"github.com/katalvlaran/planar/mstpoly"
	"github.com/katalvlaran/planar/polygon"
)

// Solve runs the selected algorithm over pts, timing the core computation
// with a monotonic clock.
//
// Degeneracy policy: n < 3 returns ErrTooFewPoints for every strategy. An
// all-collinear input yields weight 0 from BruteForce and DOGT (no
// triangulation exists, nothing to sum) and a sentinel error from MSTPoly
// and DTCESSA (their pipelines need a non-degenerate hull); the dispatcher
// itself never panics on such input.
//
// Complexity: per algorithm; see the respective packages.
func Solve(pts []geom.Point, opts Options) (Result, error) {
	var res Result

	if len(pts) < 3 {
		return res, ErrTooFewPoints
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}

	start := clk.Now()

	var err error
	switch opts.Algo {
	case BruteForce:
		res.Weight, res.Edges = solveBrute(pts)
	case DOGT:
		res.Weight = dogt.Triangulate(pts).Weight
	case MSTPoly:
		res.Weight, err = mstpoly.Weight(pts)
	case DTCESSA:
		res.Weight, err = solveAnneal(pts, opts)
	default:
		return res, ErrUnknownAlgorithm
	}
	if err != nil {
		return Result{}, err
	}

	res.Runtime = clk.Since(start)

	return res, nil
}

// solveBrute triangulates the points as the polygon given by their input
// order and returns the triangulation's total edge length plus its edge
// list. Optimal only for convex position. A degenerate hull (collinear
// input) has no triangulation at all: weight 0, no edges.
func solveBrute(pts []geom.Point) (float64, [][2]int) {
	if len(geom.ConvexHullIndices(pts)) < 3 {
		return 0, nil
	}

	_, edges := polygon.Triangulate(pts)

	var weight float64
	for _, e := range edges {
		weight += geom.Dist(pts[e[0]], pts[e[1]])
	}

	return weight, edges
}

// solveAnneal is the DT-CES-SA pipeline: Delaunay seed → graph state →
// candidate pool → dynamic schedule → Metropolis loop → greedy polish.
func solveAnneal(pts []geom.Point, opts Options) (float64, error) {
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return 0, err
	}

	gs, err := mesh.NewGraphState(tri, pts)
	if err != nil {
		return 0, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	a := anneal.New(
		anneal.WithSeed(opts.Seed),
		anneal.WithPolicy(opts.Policy),
		anneal.WithLogger(logger),
	)

	cands := a.BuildCandidateSet(gs)
	a.ConfigureDynamic(gs, cands)
	a.Run(gs)
	a.GreedyImprove(gs)

	return gs.Weight(), nil
}

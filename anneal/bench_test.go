package anneal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/planar/anneal"
	"github.com/katalvlaran/planar/delaunay"
	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/mesh"
)

// benchPoints generates n uniform points with a fixed stream.
func benchPoints(n int) []geom.Point {
	rng := rand.New(rand.NewSource(42))
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: rng.Float64() * 1000, Y: rng.Float64() * 1000}
	}

	return pts
}

// BenchmarkBuildCandidateSet measures a full pool build on a 2000-point
// Delaunay state.
func BenchmarkBuildCandidateSet(b *testing.B) {
	pts := benchPoints(2000)
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		b.Fatalf("delaunay: %v", err)
	}
	gs, err := mesh.NewGraphState(tri, pts)
	if err != nil {
		b.Fatalf("graph state: %v", err)
	}
	a := anneal.New(anneal.WithSeed(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.BuildCandidateSet(gs)
	}
}

// BenchmarkRun_Small measures a complete calibrated annealing run on a
// 200-point input. The state rebuild per iteration is deliberate: Run
// mutates its input, so each pass needs a fresh one.
func BenchmarkRun_Small(b *testing.B) {
	pts := benchPoints(200)
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		b.Fatalf("delaunay: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gs, err := mesh.NewGraphState(tri, pts)
		if err != nil {
			b.Fatalf("graph state: %v", err)
		}
		a := anneal.New(anneal.WithSeed(int64(i + 1)))
		cands := a.BuildCandidateSet(gs)
		a.ConfigureDynamic(gs, cands)
		a.Run(gs)
	}
}

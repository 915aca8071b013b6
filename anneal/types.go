// Package anneal defines the candidate policy, the Annealer configuration,
// and the functional options that tune both.
package anneal

import (
	"go.uber.org/zap"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Candidate policy
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// maxPerVertex caps the per-vertex rank. Six is the average degree in a
// maximal planar triangulation, so ranks beyond five select almost every
// incident edge and the filter stops filtering.
const maxPerVertex = 5

// CandidatePolicy controls which edges qualify for the proposal pool.
// An edge qualifies when it satisfies either criterion.
type CandidatePolicy struct {
	// PerVertex keeps the k longest edges incident to each vertex.
	// Clamped to [0, 5].
	PerVertex int

	// GlobalFraction keeps the top fraction of all edges by length.
	// Clamped to [0, 1].
	GlobalFraction float64
}

// DefaultPolicy returns the stock policy: the four longest edges per
// vertex plus the global top half.
func DefaultPolicy() CandidatePolicy {
	return CandidatePolicy{PerVertex: 4, GlobalFraction: 0.50}
}

// clamped returns p with both knobs forced into their safe ranges.
func (p CandidatePolicy) clamped() CandidatePolicy {
	if p.PerVertex < 0 {
		p.PerVertex = 0
	}
	if p.PerVertex > maxPerVertex {
		p.PerVertex = maxPerVertex
	}
	if p.GlobalFraction < 0 {
		p.GlobalFraction = 0
	}
	if p.GlobalFraction > 1 {
		p.GlobalFraction = 1
	}

	return p
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Annealer configuration
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Schedule defaults; ConfigureDynamic overrides the initial and minimum
// temperatures and the iteration budget per input.
const (
	// DefaultInitialTemperature is the starting Metropolis temperature.
	DefaultInitialTemperature = 1.0

	// DefaultMinTemperature stops the loop once cooling reaches it.
	DefaultMinTemperature = 1e-6

	// DefaultCoolingRate is the per-step multiplier when adaptive cooling
	// is off.
	DefaultCoolingRate = 0.9995

	// DefaultMaxIterations bounds the proposal loop.
	DefaultMaxIterations = 200_000

	// adaptiveCoolImproving / adaptiveCoolWorsening are the two adaptive
	// multipliers: cool slowly while improving, faster while wandering.
	adaptiveCoolImproving = 0.99995
	adaptiveCoolWorsening = 0.9993

	// configureSampleCap bounds the calibration sample in ConfigureDynamic.
	configureSampleCap = 800

	// configureFallbackEavg stands in when no sampled flip was legal with a
	// nonzero |Δ|.
	configureFallbackEavg = 0.1

	// iterationsPerEdge scales the dynamic iteration budget with |E|.
	iterationsPerEdge = 300

	// rebuildFractionRun / rebuildFractionGreedy are the starvation
	// thresholds (relative to |E|) that trigger a full candidate rebuild.
	rebuildFractionRun    = 0.5
	rebuildFractionGreedy = 0.3
)

// Annealer is one simulated-annealing instance: schedule, policy, RNG, and
// diagnostics. It is not safe for concurrent use; parallel restarts must
// each construct their own Annealer and clone their own GraphState.
type Annealer struct {
	// InitialTemperature, MinTemperature, CoolingRate and MaxIterations
	// form the schedule. ConfigureDynamic rewrites InitialTemperature,
	// MinTemperature and MaxIterations from a sample of the actual flip
	// deltas; CoolingRate is left as is.
	InitialTemperature float64
	MinTemperature     float64
	CoolingRate        float64
	MaxIterations      int

	// AdaptiveCooling switches between the fixed CoolingRate and the
	// improving/worsening pair of multipliers.
	AdaptiveCooling bool

	// Accepted counts applied flips across the last Run.
	Accepted int

	policy CandidatePolicy
	rng    *prng
	log    *zap.Logger
}

// Option configures an Annealer at construction time.
type Option func(*Annealer)

// WithSeed fixes the RNG stream. Seed 0 selects the package's fixed default
// stream, keeping zero-value construction deterministic.
func WithSeed(seed int64) Option {
	return func(a *Annealer) { a.rng = newPRNG(seed) }
}

// WithPolicy overrides the candidate policy (clamped on use).
func WithPolicy(p CandidatePolicy) Option {
	return func(a *Annealer) { a.policy = p }
}

// WithLogger attaches a zap logger for recoverable-diagnostic output.
// Nil restores the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Annealer) {
		if l == nil {
			l = zap.NewNop()
		}
		a.log = l
	}
}

// WithCooling sets a fixed cooling rate and disables adaptation.
func WithCooling(rate float64) Option {
	return func(a *Annealer) {
		a.CoolingRate = rate
		a.AdaptiveCooling = false
	}
}

// New constructs an Annealer with the stock defaults, then applies opts.
func New(opts ...Option) *Annealer {
	a := &Annealer{
		InitialTemperature: DefaultInitialTemperature,
		MinTemperature:     DefaultMinTemperature,
		CoolingRate:        DefaultCoolingRate,
		MaxIterations:      DefaultMaxIterations,
		AdaptiveCooling:    true,
		policy:             DefaultPolicy(),
		rng:                newPRNG(0),
		log:                zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

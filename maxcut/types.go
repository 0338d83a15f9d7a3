// Package maxcut: sentinel errors, Result type and functional options.
package maxcut

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/gwcut/rounding"
	"github.com/katalvlaran/gwcut/sdp"
)

// Sentinel errors returned by the pipeline.
var (
	// ErrNilGraph indicates MaxCut was called with a nil graph.
	ErrNilGraph = errors.New("maxcut: graph is nil")

	// ErrEmptyGraph indicates the graph has no vertices.
	ErrEmptyGraph = errors.New("maxcut: graph has no vertices")
)

// Result is the full outcome of one pipeline run.
type Result struct {
	// Assign maps each vertex ID to its side, exactly −1 or +1.
	Assign map[string]int8

	// Vector is the same partition in canonical vertex order (see Order).
	Vector []int8

	// Order is the canonical vertex ordering the Laplacian was built under.
	Order []string

	// CutWeight is the total weight of edges crossing the partition.
	CutWeight float64

	// TotalWeight is the sum of all edge weights in the graph.
	TotalWeight float64

	// Bound is the relaxation objective ¼·⟨L, X⟩, an upper bound on the
	// maximum cut weight.
	Bound float64

	// Ratio is CutWeight/Bound (0 when Bound ≤ 0, e.g. an edgeless graph).
	Ratio float64

	// Trials is the number of rounding trials actually spent.
	Trials int
}

// DefaultTolerance is the structural tolerance applied to solver output and
// to the rounding factorization. It is looser than matrix.DefaultEpsilon
// because interior-point backends stop at ~1e-7 residuals.
const DefaultTolerance = 1e-5

// Options configures the pipeline.
//
// Solver      – relaxation backend (interior-point cvx by default).
// Trials      – rounding trials (≥ 1).
// Parallelism – worker goroutines for rounding trials (≥ 1).
// Seed        – base seed for per-trial RNG derivation.
// Rng         – optional caller RNG; overrides Seed when set.
// Tol         – structural tolerance for Verify and factorization (> 0).
// TargetRatio – stop rounding once CutWeight ≥ TargetRatio·Bound
//               (0 disables; requires a positive bound to take effect).
type Options struct {
	Solver      sdp.Solver
	Trials      int
	Parallelism int
	Seed        int64
	Rng         *rand.Rand
	Tol         float64
	TargetRatio float64
}

// Option is a functional option for MaxCut.
type Option func(*Options)

// WithSolver installs a relaxation backend. Panics on nil (programmer error).
func WithSolver(s sdp.Solver) Option {
	if s == nil {
		panic("maxcut: WithSolver requires a non-nil solver")
	}

	return func(o *Options) { o.Solver = s }
}

// WithTrials sets the number of rounding trials.
// Panics on k < 1 (programmer error).
func WithTrials(k int) Option {
	if k < 1 {
		panic("maxcut: WithTrials requires k >= 1")
	}

	return func(o *Options) { o.Trials = k }
}

// WithParallelism sets the rounding worker count.
// Panics on w < 1 (programmer error).
func WithParallelism(w int) Option {
	if w < 1 {
		panic("maxcut: WithParallelism requires w >= 1")
	}

	return func(o *Options) { o.Parallelism = w }
}

// WithSeed sets the base seed for rounding determinism.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand installs a caller-owned RNG for rounding seed derivation.
// Overrides WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rng = rng }
}

// WithTolerance sets the structural tolerance for solution verification and
// the rounding factorization. Panics on eps <= 0 (programmer error).
func WithTolerance(eps float64) Option {
	if eps <= 0 {
		panic("maxcut: WithTolerance requires eps > 0")
	}

	return func(o *Options) { o.Tol = eps }
}

// WithTargetRatio stops rounding once the cut reaches r·Bound.
// Panics on r outside (0, 1] (programmer error).
func WithTargetRatio(r float64) Option {
	if r <= 0 || r > 1 {
		panic("maxcut: WithTargetRatio requires 0 < r <= 1")
	}

	return func(o *Options) { o.TargetRatio = r }
}

// DefaultOptions returns the deterministic defaults: the interior-point
// backend, a single sequential trial, DefaultTolerance and the rounding
// package's fixed seed.
func DefaultOptions() Options {
	return Options{
		Solver:      sdp.NewCVXSolver(),
		Trials:      rounding.DefaultTrials,
		Parallelism: rounding.DefaultParallelism,
		Seed:        rounding.DefaultSeed,
		Rng:         nil,
		Tol:         DefaultTolerance,
		TargetRatio: 0,
	}
}

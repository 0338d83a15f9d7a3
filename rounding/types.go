// Package rounding: sentinel errors, Cut result type and functional options.
package rounding

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/gwcut/matrix"
)

// Sentinel errors returned by the rounding stage.
var (
	// ErrNilMatrix indicates a nil matrix operand.
	ErrNilMatrix = errors.New("rounding: nil matrix")

	// ErrDimensionMismatch indicates incompatible L/X/T/v shapes.
	// Programming error: fail fast.
	ErrDimensionMismatch = errors.New("rounding: dimension mismatch")

	// ErrNilRand indicates Hyperplane was called without an RNG.
	ErrNilRand = errors.New("rounding: rng is required")

	// ErrNoTrials indicates an options combination that leaves zero trials.
	ErrNoTrials = errors.New("rounding: no trials to run")
)

// Cut is a rounded partition with its evaluated weight.
type Cut struct {
	// Assign holds one entry per vertex index, each exactly −1 or +1.
	Assign []int8

	// Weight is the cut weight ¼·xᵀLx of the partition.
	Weight float64

	// Trials is the number of rounding trials actually spent (may be fewer
	// than requested when a target weight was hit early).
	Trials int
}

// Defaults (single source of truth; mirrored by DefaultOptions).
const (
	// DefaultTrials is the number of rounding trials when none is requested.
	DefaultTrials = 1

	// DefaultParallelism runs trials sequentially unless widened.
	DefaultParallelism = 1

	// DefaultSeed keeps the package deterministic out of the box.
	DefaultSeed = 1
)

// Options configures Factor and Best.
//
// Trials      – number of independent hyperplane draws (≥ 1).
// Parallelism – worker goroutines for trials (≥ 1; 1 = sequential).
// Eps         – numeric tolerance for factorization and PSD checks (> 0).
// EigenMaxIter– Jacobi iteration cap for the factorization fallback.
// Seed        – base seed; trial t uses Seed + t.
// Rng         – optional caller RNG; when set it draws the per-trial seeds,
//               overriding Seed.
// Target      – stop early once a cut of at least this weight is found
//               (0 disables).
type Options struct {
	Trials       int
	Parallelism  int
	Eps          float64
	EigenMaxIter int
	Seed         int64
	Rng          *rand.Rand
	Target       float64
}

// Option is a functional option for the rounding stage.
type Option func(*Options)

// WithTrials sets the number of independent rounding trials.
// Panics on k < 1 (programmer error).
func WithTrials(k int) Option {
	if k < 1 {
		panic("rounding: WithTrials requires k >= 1")
	}

	return func(o *Options) { o.Trials = k }
}

// WithParallelism sets the worker count for trials.
// Panics on w < 1 (programmer error).
func WithParallelism(w int) Option {
	if w < 1 {
		panic("rounding: WithParallelism requires w >= 1")
	}

	return func(o *Options) { o.Parallelism = w }
}

// WithTolerance sets the numeric tolerance used by factorization and PSD
// checks. Panics on eps <= 0 (programmer error).
func WithTolerance(eps float64) Option {
	if eps <= 0 {
		panic("rounding: WithTolerance requires eps > 0")
	}

	return func(o *Options) { o.Eps = eps }
}

// WithSeed sets the base seed for per-trial RNG derivation.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand installs a caller-owned RNG that draws the per-trial seeds.
// Overrides WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rng = rng }
}

// WithTarget stops spending trials once a cut of weight ≥ w is found.
// Panics on w < 0 (programmer error).
func WithTarget(w float64) Option {
	if w < 0 {
		panic("rounding: WithTarget requires w >= 0")
	}

	return func(o *Options) { o.Target = w }
}

// DefaultOptions returns the deterministic defaults: a single sequential
// trial, DefaultEpsilon tolerances and the fixed DefaultSeed.
func DefaultOptions() Options {
	return Options{
		Trials:       DefaultTrials,
		Parallelism:  DefaultParallelism,
		Eps:          matrix.DefaultEpsilon,
		EigenMaxIter: matrix.DefaultEigenMaxIter,
		Seed:         DefaultSeed,
		Rng:          nil,
		Target:       0,
	}
}

// Package builder: public entry-points, functional options and the internal
// configuration shared by all constructors.
package builder

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/gwcut/core"
)

// Sentinel errors returned by builder constructors.
var (
	// ErrTooFewVertices indicates that a size parameter is below the
	// constructor's minimum (e.g. Cycle needs n ≥ 3).
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor was invoked
	// without a seeded RNG (supply WithSeed or WithRand).
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrNilConstructor indicates a nil Constructor was passed to BuildGraph.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors wrapped with method context, and never panic at runtime.
type Constructor func(g *core.Graph, cfg builderConfig) error

// builderConfig aggregates all knobs used by constructors. It is passed by
// value, so constructors cannot leak configuration changes to each other.
type builderConfig struct {
	// idFn maps vertex index → ID (deterministic).
	idFn func(int) string

	// rng drives stochastic constructors; nil means "no randomness allowed".
	rng *rand.Rand

	// weightFn generates edge weights; receives rng (possibly nil for the
	// constant default).
	weightFn func(*rand.Rand) float64
}

// defaultWeight is the constant edge weight used when no WithWeightFn is set.
const defaultWeight = 1.0

// decimalID is the default ID scheme: "0", "1", "2", ...
func decimalID(i int) string { return strconv.Itoa(i) }

// Option is a functional option configuring graph construction.
type Option func(*builderConfig)

// WithSeed installs a deterministic RNG seeded with the given value.
// Required (or WithRand) for stochastic constructors such as RandomSparse.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs a caller-owned RNG. Overrides WithSeed when applied later.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *builderConfig) { cfg.rng = rng }
}

// WithIDScheme overrides the vertex ID scheme (default "0","1","2",...).
// Panics on nil (programmer error).
func WithIDScheme(idFn func(int) string) Option {
	if idFn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(cfg *builderConfig) { cfg.idFn = idFn }
}

// WithWeightFn overrides the edge-weight generator (default: constant 1.0).
// The generator receives the configured RNG, which may be nil when no seed
// was supplied. Panics on nil (programmer error).
func WithWeightFn(weightFn func(*rand.Rand) float64) Option {
	if weightFn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(cfg *builderConfig) { cfg.weightFn = weightFn }
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		rng:      nil,
		weightFn: func(*rand.Rand) float64 { return defaultWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// The first constructor error is wrapped with "BuildGraph: %w" and returned;
// no partial cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Package builder provides deterministic graph constructors for gwcut tests,
// examples and experiments: canonical topologies (cycle, path, star, complete)
// and an Erdős–Rényi-style random generator.
//
// Design contract (strict):
//
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates the graph,
//     resolves the builder configuration, runs constructors in order.
//   - Functional options (Option) resolve into an immutable builderConfig;
//     no global state.
//   - Determinism: same inputs, options, seed and constructor order yield
//     identical graphs. Vertex IDs come from a deterministic idFn; stochastic
//     constructors require an explicitly seeded RNG.
//   - Safety: constructors never panic; they return sentinel errors
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrNilConstructor) wrapped with method context.
//
// Typical use:
//
//	// K4 with unit weights, vertices "0".."3":
//	g, err := builder.BuildGraph(nil, nil, builder.Complete(4))
//
//	// Reproducible sparse instance with uniform weights in [0.5, 1.5):
//	g, err := builder.BuildGraph(nil,
//	    []builder.Option{
//	        builder.WithSeed(42),
//	        builder.WithWeightFn(func(r *rand.Rand) float64 { return 0.5 + r.Float64() }),
//	    },
//	    builder.RandomSparse(32, 0.25),
//	)
//
// These fixtures are exactly the instances the Max-Cut testable properties
// are stated over: Cycle(3) has optimal cut 2, Complete(4) has optimal cut 4.
package builder

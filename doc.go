// Package gwcut approximates the maximum cut of a weighted undirected graph
// with the Goemans–Williamson semidefinite-programming relaxation and
// randomized hyperplane rounding.
//
// 🚀 What is gwcut?
//
//	A small, deterministic-by-default library that brings together:
//		• Core primitives: weighted undirected simple graphs, mutated safely under locks
//		• Builders: canonical fixtures (cycle, path, star, complete, random sparse)
//		• Matrix layer: dense kernels, Laplacian construction, Cholesky & Jacobi eigen
//		• SDP boundary: a narrow Solver contract plus an interior-point backend (cvx)
//		• Rounding: random-hyperplane sign rounding with repeated, parallel trials
//		• Evaluation: cut weight, total weight and achieved approximation ratio
//
// The pipeline, end to end:
//
//  1. Build a graph (core, builder) and derive its Laplacian L (matrix).
//  2. Solve the relaxation maximize ¼⟨L,X⟩ s.t. diag(X)=1, X ⪰ 0 (sdp).
//  3. Factor X ≈ T·Tᵀ, draw a random hyperplane v, take x = sign(T·v) (rounding).
//  4. Report w(C) = ¼·xᵀLx and w(C)/bound — the GW guarantee puts the
//     expectation above 0.878 of the optimum (maxcut).
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╲ │
//	    C───D
//
//	K4 with unit weights: the relaxation bound is 4 and rounding recovers a
//	2–2 partition of weight 4.
//
// Everything is organized under six subpackages:
//
//	core/     — fundamental Graph & Edge types, thread-safe primitives
//	builder/  — deterministic graph constructors for tests and experiments
//	matrix/   — dense storage, Laplacian adapter, factorization kernels
//	sdp/      — the relaxation solve boundary and its cvx backend
//	rounding/ — hyperplane sampling, sign projection, best-of-k trials
//	maxcut/   — the orchestrated pipeline and evaluation helpers
//
// Determinism: every random choice flows through an injectable source
// (WithSeed / WithRand); identical inputs, options and seeds reproduce
// identical partitions bit-for-bit.
//
//	go get github.com/katalvlaran/gwcut
package gwcut

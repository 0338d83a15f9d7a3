// Package builder: topology constructors.
//
// Shared contract:
//   - Vertices are added via cfg.idFn in ascending index order (0..n-1).
//   - Edges are emitted in a stable documented order, so results are
//     reproducible for a fixed seed and option set.
//   - Weights come from cfg.weightFn(cfg.rng) — constant 1.0 by default.
//   - Only sentinel errors are returned; no constructor panics at runtime.
package builder

import (
	"fmt"

	"github.com/katalvlaran/gwcut/core"
)

// File-local constants: method tags for error context and parameter minima.
const (
	methodCycle        = "Cycle"
	methodPath         = "Path"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minCycleVertices    = 3
	minPathVertices     = 2
	minStarVertices     = 2
	minCompleteVertices = 1
	minRandomVertices   = 1

	probMin = 0.0
	probMax = 1.0
)

// addVertices inserts n vertices with IDs cfg.idFn(0..n-1) and returns the ID
// slice for stable reuse by edge emission.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge draws a weight and inserts the edge, wrapping failures with method
// context.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s, w=%v): %w", method, u, v, w, err)
	}

	return nil
}

// Cycle returns a Constructor that builds the n-vertex simple cycle C_n.
// Edges are emitted i→(i+1)%n for i ascending. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if err = addEdge(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the n-vertex path P_n.
// Edges are emitted i→i+1 for i ascending. Requires n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}

		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds the n-vertex star S_n: vertex 0 is
// the hub, connected to every other vertex in ascending order. Requires n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, methodStar, n)
		if err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete simple graph K_n.
// Each unordered pair {i, j}, i < j, is emitted exactly once in lexicographic
// (i, j) order. Requires n ≥ 1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor that samples an Erdős–Rényi-style graph
// G(n, p): each unordered pair {i, j}, i < j, is included independently with
// probability p. Trial order is fixed (i asc, then j asc), so a fixed seed
// reproduces the instance exactly.
//
// Requires n ≥ 1, p ∈ [0, 1], and a seeded RNG when 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%v not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == probMax || (p > probMin && cfg.rng.Float64() < p) {
					if err = addEdge(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

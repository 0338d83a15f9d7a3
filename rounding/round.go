// Package rounding: the hyperplane rounding kernels and best-of-k driver.
package rounding

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/gwcut/matrix"
)

// Operation tags for error context.
const (
	opFactor     = "Factor"
	opHyperplane = "Hyperplane"
	opRound      = "Round"
	opBest       = "Best"
)

// Factor computes the PSD factor T with X ≈ T·Tᵀ, the geometric embedding
// rounding operates on: when diag(X) = 1, row i of T is the unit vector of
// vertex i.
//
// Cholesky is tried first; singular-but-PSD X (e.g. a rank-1 optimizer)
// falls back to the eigen square root with small negative eigenvalues
// clipped. Genuinely indefinite X surfaces matrix.ErrNotPSD.
func Factor(x *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	if x == nil {
		return nil, fmt.Errorf("%s: %w", opFactor, ErrNilMatrix)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t, err := matrix.FactorPSD(x, o.Eps, o.EigenMaxIter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFactor, err)
	}

	return t, nil
}

// Hyperplane draws the normal vector of a uniformly random hyperplane
// through the origin: n i.i.d. standard normal coordinates. The vector is
// not normalized — sign(T·v) is invariant under positive scaling.
func Hyperplane(n int, rng *rand.Rand) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", opHyperplane, n, ErrDimensionMismatch)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", opHyperplane, ErrNilRand)
	}

	v := make([]float64, n)
	for i := range v {
		v[i] = rng.NormFloat64()
	}

	return v, nil
}

// Round projects the embedding onto the hyperplane side: x = sign(T·v),
// with the fixed tie-break sign(0) = +1, so every entry is exactly ±1.
func Round(t *matrix.Dense, v []float64) ([]int8, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", opRound, ErrNilMatrix)
	}
	if len(v) != t.Cols() {
		return nil, fmt.Errorf("%s: len(v)=%d want %d: %w", opRound, len(v), t.Cols(), ErrDimensionMismatch)
	}

	proj, err := matrix.MatVec(t, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRound, err)
	}

	x := make([]int8, len(proj))
	for i, p := range proj {
		if p >= 0 { // sign(0) = +1: the documented tie-break
			x[i] = 1
		} else {
			x[i] = -1
		}
	}

	return x, nil
}

// cutWeight evaluates ¼·xᵀLx for a ±1 assignment.
func cutWeight(l *matrix.Dense, x []int8) (float64, error) {
	xf := make([]float64, len(x))
	for i, s := range x {
		xf[i] = float64(s)
	}

	q, err := matrix.QuadForm(l, xf)
	if err != nil {
		return 0, err
	}

	return q / 4, nil
}

// Best runs k independent rounding trials against the factored relaxation
// solution and returns the partition achieving the largest cut weight.
//
// Trial t derives its RNG from seed+t (or from seeds pre-drawn by WithRand),
// so results are reproducible and best-of-k is non-decreasing in k for a
// fixed seed. With WithParallelism(w) trials run on w goroutines; each trial
// writes a private result slot and a sequential max-scan picks the winner
// (ties broken by the lower trial index), so the chosen partition is
// identical to a sequential run.
func Best(l, x *matrix.Dense, opts ...Option) (*Cut, error) {
	if l == nil || x == nil {
		return nil, fmt.Errorf("%s: %w", opBest, ErrNilMatrix)
	}
	if l.Rows() != l.Cols() || x.Rows() != x.Cols() || l.Rows() != x.Rows() {
		return nil, fmt.Errorf("%s: L is %dx%d, X is %dx%d: %w",
			opBest, l.Rows(), l.Cols(), x.Rows(), x.Cols(), ErrDimensionMismatch)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Trials < 1 {
		return nil, fmt.Errorf("%s: %w", opBest, ErrNoTrials)
	}

	t, err := Factor(x, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBest, err)
	}

	n := l.Rows()

	// Pre-derive one seed per trial: deterministic under WithSeed, and under
	// WithRand a single sequential pass over the caller's RNG.
	seeds := make([]int64, o.Trials)
	for i := range seeds {
		if o.Rng != nil {
			seeds[i] = o.Rng.Int63()
		} else {
			seeds[i] = o.Seed + int64(i)
		}
	}

	type trialResult struct {
		assign []int8
		weight float64
		done   bool
	}
	results := make([]trialResult, o.Trials)

	// stop is observed before starting a trial once a target weight is set;
	// trials already running finish normally.
	var stop atomic.Bool

	runTrial := func(i int) error {
		rng := rand.New(rand.NewSource(seeds[i]))
		v, trialErr := Hyperplane(n, rng)
		if trialErr != nil {
			return trialErr
		}
		assign, trialErr := Round(t, v)
		if trialErr != nil {
			return trialErr
		}
		w, trialErr := cutWeight(l, assign)
		if trialErr != nil {
			return trialErr
		}
		results[i] = trialResult{assign: assign, weight: w, done: true}
		if o.Target > 0 && w >= o.Target {
			stop.Store(true)
		}

		return nil
	}

	workers := o.Parallelism
	if workers > o.Trials {
		workers = o.Trials
	}

	var firstErr error
	if workers == 1 {
		for i := 0; i < o.Trials; i++ {
			if stop.Load() {
				break
			}
			if err = runTrial(i); err != nil {
				firstErr = err
				break
			}
		}
	} else {
		var (
			wg    sync.WaitGroup
			errMu sync.Mutex
		)
		next := make(chan int)
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func() {
				defer wg.Done()
				for i := range next {
					if trialErr := runTrial(i); trialErr != nil {
						errMu.Lock()
						if firstErr == nil {
							firstErr = trialErr
						}
						errMu.Unlock()
						stop.Store(true)
					}
				}
			}()
		}
		// Workers flip stop on both target hits and errors, so the feeder
		// only consults the flag (firstErr is read after wg.Wait).
		for i := 0; i < o.Trials && !stop.Load(); i++ {
			next <- i
		}
		close(next)
		wg.Wait()
	}
	if firstErr != nil {
		return nil, fmt.Errorf("%s: %w", opBest, firstErr)
	}

	// Deterministic winner: max weight, lowest trial index on ties.
	best := -1
	spent := 0
	for i := range results {
		if !results[i].done {
			continue
		}
		spent++
		if best < 0 || results[i].weight > results[best].weight {
			best = i
		}
	}
	if best < 0 {
		return nil, fmt.Errorf("%s: %w", opBest, ErrNoTrials)
	}

	return &Cut{Assign: results[best].assign, Weight: results[best].weight, Trials: spent}, nil
}

// Package matrix: graph → Laplacian adapter.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/gwcut/core"
)

const opLaplacian = "NewLaplacian"

// Laplacian couples the Laplacian matrix of a graph with the vertex ordering
// it was built under, so partition vectors can be mapped back to vertex IDs.
//
// Structure: Mat[i][i] is the weighted degree of vertex ByIndex[i];
// Mat[i][j] = −w(ByIndex[i], ByIndex[j]) for adjacent pairs, 0 otherwise.
// Mat is symmetric and positive semidefinite with zero row sums, and for any
// x ∈ {−1, +1}ⁿ the cut weight of the induced partition is ¼·xᵀ·Mat·x.
type Laplacian struct {
	// Mat is the n×n Laplacian matrix under the ByIndex ordering.
	Mat *Dense

	// Index maps vertex ID → row/column index (ascending lexicographic IDs).
	Index map[string]int

	// ByIndex is the reverse lookup: row index → vertex ID.
	ByIndex []string
}

// N returns the vertex count (matrix dimension).
func (l *Laplacian) N() int { return len(l.ByIndex) }

// NewLaplacian builds the Laplacian of g under the canonical sorted vertex
// order. Isolated vertices contribute zero rows, which is valid Laplacian
// structure (they never affect any cut).
//
// Errors: ErrGraphNil for a nil graph, ErrEmptyGraph for a vertex-free one.
//
// Complexity: O(V log V + E) time, O(V²) space.
func NewLaplacian(g *core.Graph) (*Laplacian, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opLaplacian, ErrGraphNil)
	}

	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", opLaplacian, ErrEmptyGraph)
	}

	idx := make(map[string]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	mat, err := NewDense(n, n)
	if err != nil {
		return nil, kernelErrorf(opLaplacian, err)
	}
	data := mat.Data()

	// One pass over the edge snapshot: subtract the weight off-diagonal and
	// accumulate it into both endpoint degrees.
	for _, e := range g.Edges() {
		i, j := idx[e.From], idx[e.To]
		data[i*n+j] -= e.Weight
		data[j*n+i] -= e.Weight
		data[i*n+i] += e.Weight
		data[j*n+j] += e.Weight
	}

	return &Laplacian{Mat: mat, Index: idx, ByIndex: ids}, nil
}

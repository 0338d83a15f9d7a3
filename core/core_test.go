// Package core_test contains unit tests for the core graph model: model
// invariants (undirected, simple, loop-free, non-negative weights),
// deterministic snapshots and concurrency safety.
package core_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gwcut/core"
)

// ------------------------------------------------------------------------
// 1. Validation: sentinel errors for invalid inputs.
// ------------------------------------------------------------------------

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdge_EmptyEndpoint(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddEdge("", "B", 1), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddEdge("A", "", 1), core.ErrEmptyVertexID)
}

func TestAddEdge_SelfLoopRejected(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddEdge("A", "A", 1), core.ErrSelfLoop)
	assert.False(t, g.HasVertex("A"), "rejected edge must not create vertices")
}

func TestAddEdge_NegativeWeightRejected(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddEdge("A", "B", -0.5), core.ErrNegativeWeight)
}

func TestAddEdge_NonFiniteWeightRejected(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddEdge("A", "B", math.NaN()), core.ErrNonFiniteWeight)
	require.ErrorIs(t, g.AddEdge("A", "B", math.Inf(1)), core.ErrNonFiniteWeight)
}

func TestWeight_MissingVertexAndEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddVertex("C"))

	_, err := g.Weight("A", "Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.Weight("A", "C")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// ------------------------------------------------------------------------
// 2. Model invariants: undirected, simple, last-write-wins.
// ------------------------------------------------------------------------

func TestAddEdge_UndirectedMirror(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 2.5))

	wAB, err := g.Weight("A", "B")
	require.NoError(t, err)
	wBA, err := g.Weight("B", "A")
	require.NoError(t, err)

	assert.Equal(t, 2.5, wAB)
	assert.Equal(t, wAB, wBA, "undirected weight must mirror")
	assert.Equal(t, 1, g.EdgeCount(), "mirror must not double-count")
}

func TestAddEdge_LastWriteWins(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "A", 3)) // same unordered pair

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestDegreeAndTotalWeight(t *testing.T) {
	// Triangle with weights 1, 2, 3.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 3))

	degA, err := g.Degree("A")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, degA, 1e-12)

	assert.InDelta(t, 6.0, g.TotalWeight(), 1e-12)
}

// ------------------------------------------------------------------------
// 3. Deterministic snapshots.
// ------------------------------------------------------------------------

func TestVerticesAndEdges_SortedSnapshots(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("C", "A", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddVertex("D"))

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, core.Edge{From: "A", To: "C", Weight: 1}, edges[0])
	assert.Equal(t, core.Edge{From: "B", To: "C", Weight: 1}, edges[1])

	idx := g.Index()
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}, idx)
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	c := g.Clone()
	require.NoError(t, c.AddEdge("A", "C", 5))

	assert.Equal(t, 1, g.EdgeCount(), "mutating the clone must not touch the original")
	assert.Equal(t, 2, c.EdgeCount())
}

// ------------------------------------------------------------------------
// 4. Concurrency smoke test.
// ------------------------------------------------------------------------

func TestGraph_ConcurrentMutationAndRead(t *testing.T) {
	g := core.NewGraph()

	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	wg.Add(writers * 2)
	for w := 0; w < writers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				u := fmt.Sprintf("v%d", w)
				v := fmt.Sprintf("v%d-%d", w, i)
				_ = g.AddEdge(u, v, 1)
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = g.Vertices()
				_ = g.TotalWeight()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, g.EdgeCount())
}

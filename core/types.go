// Package core: central Graph and Edge types, sentinel errors and the
// NewGraph constructor. Method implementations live in methods.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates AddEdge was called with equal endpoints.
	// Self-loops never cross a cut and would break Laplacian row sums.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates AddEdge was called with a negative weight.
	// The relaxation bound assumes non-negative weights; see package doc.
	ErrNegativeWeight = errors.New("core: negative edge weight not allowed")

	// ErrNonFiniteWeight indicates AddEdge was called with NaN or ±Inf.
	ErrNonFiniteWeight = errors.New("core: edge weight must be finite")
)

// Edge is a snapshot of one undirected edge. Endpoints are normalized so
// that From < To lexicographically; Weight is the stored non-negative weight.
type Edge struct {
	// From is the lexicographically smaller endpoint ID.
	From string

	// To is the lexicographically larger endpoint ID.
	To string

	// Weight is the non-negative finite edge weight.
	Weight float64
}

// GraphOption configures a Graph at construction time.
//
// The current model is fixed (undirected, simple, weighted, loop-free), so no
// options ship today; the hook is kept so call sites stay stable if variants
// (e.g. a pass-through negative-weight policy) are ever admitted.
type GraphOption func(g *Graph)

// Graph is a weighted undirected simple graph with string vertex IDs.
//
// The zero value is not usable; construct with NewGraph. All methods are safe
// for concurrent use.
type Graph struct {
	mu sync.RWMutex

	// adj maps vertex ID → neighbor ID → weight. Both directions of every
	// edge are stored, so adj[u][v] == adj[v][u] always holds.
	adj map[string]map[string]float64
}

// NewGraph returns an empty graph ready for AddVertex / AddEdge.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adj: make(map[string]map[string]float64)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

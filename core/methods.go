// Package core: Graph method implementations (mutators, queries, snapshots).
//
// Locking discipline:
//   - Mutators take the write lock for their whole body.
//   - Queries take the read lock; snapshot methods copy under the lock and
//     sort after releasing it, so no caller ever observes map order.
package core

import (
	"fmt"
	"math"
	"sort"
)

// AddVertex inserts an isolated vertex with the given ID. Inserting an
// existing ID is a no-op. Returns ErrEmptyVertexID for "".
//
// Complexity: O(1) expected.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// AddEdge inserts (or overwrites) the undirected edge {u, v} with weight w.
// Missing endpoints are created automatically. Re-adding an existing pair
// overwrites its weight: last write wins.
//
// Validation (in order): non-empty IDs (ErrEmptyVertexID), u != v
// (ErrSelfLoop), finite w (ErrNonFiniteWeight), w ≥ 0 (ErrNegativeWeight).
//
// Complexity: O(1) expected.
func (g *Graph) AddEdge(u, v string, w float64) error {
	if u == "" || v == "" {
		return fmt.Errorf("AddEdge(%q,%q): %w", u, v, ErrEmptyVertexID)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%q,%q): %w", u, v, ErrSelfLoop)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("AddEdge(%q,%q): w=%v: %w", u, v, w, ErrNonFiniteWeight)
	}
	if w < 0 {
		return fmt.Errorf("AddEdge(%q,%q): w=%v: %w", u, v, w, ErrNegativeWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(u)
	g.ensureVertex(v)

	// Mirror the weight into both adjacency rows to keep the undirected
	// invariant adj[u][v] == adj[v][u] by construction.
	g.adj[u][v] = w
	g.adj[v][u] = w

	return nil
}

// ensureVertex creates the adjacency row for id if absent. Caller must hold
// the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]float64)
	}
}

// HasVertex reports whether the vertex exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]

	return ok
}

// HasEdge reports whether the undirected edge {u, v} exists.
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adj[u]
	if !ok {
		return false
	}
	_, ok = row[v]

	return ok
}

// Weight returns the weight of edge {u, v}. Returns ErrVertexNotFound when an
// endpoint is missing and ErrEdgeNotFound when the pair is not adjacent.
func (g *Graph) Weight(u, v string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adj[u]
	if !ok {
		return 0, fmt.Errorf("Weight(%q,%q): %w", u, v, ErrVertexNotFound)
	}
	if _, exists := g.adj[v]; !exists {
		return 0, fmt.Errorf("Weight(%q,%q): %w", u, v, ErrVertexNotFound)
	}
	w, ok := row[v]
	if !ok {
		return 0, fmt.Errorf("Weight(%q,%q): %w", u, v, ErrEdgeNotFound)
	}

	return w, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, row := range g.adj {
		total += len(row)
	}

	// Every edge is mirrored into both endpoint rows.
	return total / 2
}

// Vertices returns all vertex IDs in ascending lexicographic order.
// The returned slice is a fresh copy owned by the caller.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// Index returns the canonical vertex ID → row index mapping under ascending
// lexicographic ID order. This is the ordering every matrix built from the
// graph uses.
func (g *Graph) Index() map[string]int {
	ids := g.Vertices()

	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	return idx
}

// Edges returns a snapshot of all undirected edges, each reported once with
// From < To, sorted by (From, To).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	edges := make([]Edge, 0, len(g.adj))
	for u, row := range g.adj {
		for v, w := range row {
			if u < v { // emit each unordered pair exactly once
				edges = append(edges, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}

// Degree returns the weighted degree of the vertex: the sum of weights of all
// incident edges. Returns ErrVertexNotFound for unknown IDs.
func (g *Graph) Degree(id string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adj[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%q): %w", id, ErrVertexNotFound)
	}

	deg := 0.0
	for _, w := range row {
		deg += w
	}

	return deg, nil
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0.0
	for _, row := range g.adj {
		for _, w := range row {
			total += w
		}
	}

	// Each edge was counted from both endpoint rows.
	return total / 2
}

// Clone returns a deep copy of the graph. The copy shares no state with the
// original and may be mutated independently.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph()
	for u, row := range g.adj {
		c.adj[u] = make(map[string]float64, len(row))
		for v, w := range row {
			c.adj[u][v] = w
		}
	}

	return c
}

// Package core provides the weighted undirected simple graph that the rest of
// gwcut consumes: Laplacian construction, SDP relaxation and hyperplane
// rounding all read the graph exclusively through this package.
//
// Overview:
//
//   - A Graph is a set of string-identified vertices plus non-negative
//     real-weighted undirected edges between distinct vertices.
//   - All mutating and reading methods are safe for concurrent use; a single
//     sync.RWMutex guards vertex and adjacency state.
//   - Every snapshot method (Vertices, Edges, Index) returns data in sorted
//     vertex-ID order, so downstream matrix rows are reproducible run-to-run
//     regardless of insertion or map iteration order.
//
// Model invariants (enforced at AddEdge, never silently degraded):
//
//   - Undirected: AddEdge(u, v, w) and AddEdge(v, u, w) are the same edge.
//   - Simple: at most one edge per unordered pair; re-adding a pair
//     overwrites its weight (last-write-wins, documented on AddEdge).
//   - No self-loops: u == v is rejected with ErrSelfLoop. Loops contribute
//     nothing to any cut and would break the Laplacian's zero row sums.
//   - Non-negative finite weights: w < 0 is rejected with ErrNegativeWeight
//     (the relaxation bound and the 0.878 guarantee both assume w ≥ 0);
//     NaN and ±Inf are rejected with ErrNonFiniteWeight.
//
// Error handling (sentinel):
//
//   - ErrEmptyVertexID    — vertex ID is the empty string.
//   - ErrVertexNotFound   — a query referenced a vertex that does not exist.
//   - ErrEdgeNotFound     — Weight was asked for a non-adjacent pair.
//   - ErrSelfLoop         — AddEdge endpoints are equal.
//   - ErrNegativeWeight   — AddEdge weight is negative.
//   - ErrNonFiniteWeight  — AddEdge weight is NaN or ±Inf.
//
// All sentinels are matched with errors.Is; methods wrap them with call
// context via fmt.Errorf("...: %w", err) only at the public boundary.
//
// Complexity:
//
//   - AddVertex / AddEdge / HasVertex / HasEdge / Weight: O(1) expected.
//   - Vertices / Index: O(V log V) (sort). Edges: O(E log E).
//   - Degree: O(deg(v)). TotalWeight: O(E). Clone: O(V + E).
package core

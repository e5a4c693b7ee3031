// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface. It backs graphsrc's adaptation of graph
// data into the ε-neighbourhood builder's input shapes, and bfs's traversal.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Constant-time adjacency via adjacencyList[from][to] = struct{}{}
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//     to minimize lock contention under concurrency
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Sets the orientation of new edges.
//	    • Directed graphs store only “from→to” adjacency.
//	    • Undirected graphs mirror adjacency into adjacencyList[to][from].
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error              // O(1)
//	HasVertex(id string) bool               // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(1) amortized
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(d·log d), sorted
//	Vertices() []string                      // O(V·log V), sorted
//	Edges() []*Edge                          // O(E·log E), sorted by ID
//	Directed() bool                          // O(1)
//	Weighted() bool                          // O(1)
//
//	// Views
//	UnweightedView(g *Graph) *Graph                    // O(V+E): drop weights, keep topology
//	InducedSubgraph(g *Graph, keep map[string]bool) *Graph // O(V+E): restrict to a vertex subset
//
// Edge struct fields:
//
//	ID       string   // “e1”, “e2”, …
//	From     string   // source vertex ID
//	To       string   // destination vertex ID
//	Weight   int64    // cost/similarity (zero in unweighted graphs)
//	Directed bool     // true=one-way, false=bidirectional
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrBadWeight      – non-zero weight on unweighted graph
package core

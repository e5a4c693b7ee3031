// File: view.go
// Role: Non-mutating graph views (cloning topology with altered properties).
// Determinism:
//   - Preserves vertex/edge IDs and directedness. No reordering guarantees beyond core rules.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.
package core

// UnweightedView returns a new Graph with identical topology but with all
// edge weights set to zero and the weighted flag turned off. The input
// graph is not mutated. Edge IDs and directedness are preserved.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func UnweightedView(g *Graph) *Graph {
	out := NewGraph(WithDirected(g.Directed()))

	g.muVert.RLock()
	for id := range g.vertices {
		out.vertices[id] = &Vertex{ID: id}
		ensureAdjacency(out, id)
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: 0, Directed: e.Directed}
		out.edges[eid] = ne
		ensureAdjacency(out, ne.From)
		out.adjacencyList[ne.From][ne.To] = struct{}{}
		if !ne.Directed && ne.From != ne.To {
			ensureAdjacency(out, ne.To)
			out.adjacencyList[ne.To][ne.From] = struct{}{}
		}
	}
	g.muEdgeAdj.RUnlock()

	return out
}

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex
// IDs: the result contains only vertices v where keep[v] is true, and all
// edges whose endpoints are both in keep. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	opts := []GraphOption{WithDirected(g.Directed())}
	if g.Weighted() {
		opts = append(opts, WithWeighted())
	}
	out := NewGraph(opts...)

	g.muVert.RLock()
	for id := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: id}
			ensureAdjacency(out, id)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	for eid, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		out.edges[eid] = ne
		ensureAdjacency(out, ne.From)
		out.adjacencyList[ne.From][ne.To] = struct{}{}
		if !ne.Directed && ne.From != ne.To {
			ensureAdjacency(out, ne.To)
			out.adjacencyList[ne.To][ne.From] = struct{}{}
		}
	}
	g.muEdgeAdj.RUnlock()

	return out
}

package graphsrc

import (
	"fmt"

	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/epsilon"
	"github.com/katalvlaran/spectral/matrix"
)

// Index assigns each vertex of g a stable position in [0, N), ordered by
// core.Graph.Vertices() (lexicographic by ID). It is the shared node
// numbering between the two adapter functions below and the caller's
// eventual interpretation of the ε-matrix rows.
type Index struct {
	ids    []string
	lookup map[string]int
}

// NewIndex captures g's current vertex set as a stable [0, N) numbering.
func NewIndex(g *core.Graph) *Index {
	ids := g.Vertices()
	lookup := make(map[string]int, len(ids))
	for i, id := range ids {
		lookup[id] = i
	}
	return &Index{ids: ids, lookup: lookup}
}

// Len reports N, the number of indexed vertices.
func (idx *Index) Len() int { return len(idx.ids) }

// ID returns the vertex ID occupying position i.
func (idx *Index) ID(i int) string { return idx.ids[i] }

// Position returns the index assigned to vertex ID id.
func (idx *Index) Position(id string) (int, bool) {
	i, ok := idx.lookup[id]
	return i, ok
}

// NeighborList builds an epsilon.NeighborList from g's unweighted adjacency,
// treating every edge (directed or not) as a unit-weight hop from its
// source. The returned Index is the node numbering used by the list.
func NeighborList(g *core.Graph) (*epsilon.NeighborList, *Index, error) {
	idx := NewIndex(g)
	adj := make([][]int, idx.Len())
	for i, id := range idx.ids {
		neighborIDs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, nil, fmt.Errorf("graphsrc: neighbors of %q: %w", id, err)
		}
		row := make([]int, 0, len(neighborIDs))
		for _, nid := range neighborIDs {
			pos, ok := idx.Position(nid)
			if !ok {
				return nil, nil, fmt.Errorf("graphsrc: neighbor %q of %q not in index", nid, id)
			}
			row = append(row, pos)
		}
		adj[i] = row
	}

	list, err := epsilon.NewNeighborList(adj)
	if err != nil {
		return nil, nil, err
	}
	return list, idx, nil
}

// WeightedAdjacency builds an epsilon.WeightedAdjacency from g's edges,
// mapping each integer edge weight to a non-negative float. Directed edges
// populate only the From->To entry; undirected edges populate both
// directions. The returned Index is the node numbering used by the matrix.
func WeightedAdjacency(g *core.Graph) (*epsilon.WeightedAdjacency, *Index, error) {
	idx := NewIndex(g)
	n := idx.Len()
	dense, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}

	for _, e := range g.Edges() {
		fromPos, ok := idx.Position(e.From)
		if !ok {
			return nil, nil, fmt.Errorf("graphsrc: edge endpoint %q not in index", e.From)
		}
		toPos, ok := idx.Position(e.To)
		if !ok {
			return nil, nil, fmt.Errorf("graphsrc: edge endpoint %q not in index", e.To)
		}
		w := float64(e.Weight)
		if err := dense.Set(fromPos, toPos, w); err != nil {
			return nil, nil, err
		}
		if !e.Directed {
			if err := dense.Set(toPos, fromPos, w); err != nil {
				return nil, nil, err
			}
		}
	}

	adj, err := epsilon.NewWeightedAdjacency(dense)
	if err != nil {
		return nil, nil, err
	}
	return adj, idx, nil
}

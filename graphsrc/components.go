package graphsrc

import (
	"github.com/katalvlaran/spectral/bfs"
	"github.com/katalvlaran/spectral/core"
)

// ConnectedComponents partitions g's vertices into connected components by
// repeated unweighted BFS from every not-yet-visited vertex. It is intended
// as a pre-flight check: an ε-neighbourhood build over a graph with many
// small components is likely to yield a near-block-diagonal similarity
// matrix, which is useful to know before spending a Jacobi pass on it.
//
// bfs.BFS rejects weighted graphs, so a weighted g is traversed through
// core.UnweightedView(g) instead; the returned components still name g's
// own vertex IDs.
func ConnectedComponents(g *core.Graph) ([][]string, error) {
	walk := g
	if g.Weighted() {
		walk = core.UnweightedView(g)
	}

	visited := make(map[string]bool)
	var components [][]string

	for _, id := range walk.Vertices() {
		if visited[id] {
			continue
		}
		res, err := bfs.BFS(walk, id)
		if err != nil {
			return nil, err
		}
		component := make([]string, 0, len(res.Order))
		for _, v := range res.Order {
			if !visited[v] {
				visited[v] = true
				component = append(component, v)
			}
		}
		components = append(components, component)
	}

	return components, nil
}

// LargestComponent returns the induced subgraph of g restricted to its
// largest connected component, built via ConnectedComponents and
// core.InducedSubgraph. Clustering a graph dominated by one giant component
// plus scattered stragglers is usually more meaningful after discarding the
// stragglers; ties keep the component whose members sort first.
func LargestComponent(g *core.Graph) (*core.Graph, error) {
	components, err := ConnectedComponents(g)
	if err != nil {
		return nil, err
	}

	best := components[0]
	for _, c := range components[1:] {
		if len(c) > len(best) {
			best = c
		}
	}

	keep := make(map[string]bool, len(best))
	for _, id := range best {
		keep[id] = true
	}

	return core.InducedSubgraph(g, keep), nil
}

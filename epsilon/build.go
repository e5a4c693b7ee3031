package epsilon

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spectral/matrix"
)

// scratch is the per-worker state reused across every source node a worker
// is assigned: one queue and one visited-set, allocated once for N nodes.
// The visited-set never reallocates and uses a stamp so it never needs to be
// zeroed between sources. The queue starts with capacity N and grows when a
// source enqueues more entries than that (a node can be queued more than once
// before its first visit); the grown capacity is kept for later sources.
type scratch struct {
	queue   []hop
	visited []int // stamp array: visited[v] == stamp means v was visited this call
	edges   []hop // scratch buffer for one node's expansion
	stamp   int
}

func newScratch(n int) *scratch {
	return &scratch{
		queue:   make([]hop, 0, n),
		visited: make([]int, n),
	}
}

// visitRow runs the budget-bounded BFS from source s and writes row s of
// simOut (see Build's doc comment for the exact contract), using s's
// worker-owned scratch space.
func (sc *scratch) visitRow(g Graph, simOut *matrix.Dense, s int, epsilon float64) error {
	row, err := simOut.Row(s)
	if err != nil {
		return err
	}
	for i := range row {
		row[i] = 0
	}

	sc.stamp++
	sc.queue = append(sc.queue[:0], hop{node: s, cost: epsilon})

	numVisited := -1 // the source itself does not count toward its own degree
	for head := 0; head < len(sc.queue); head++ {
		v, remaining := sc.queue[head].node, sc.queue[head].cost
		if sc.visited[v] == sc.stamp {
			continue // first dequeued entry for v wins regardless of budget
		}
		sc.visited[v] = sc.stamp
		numVisited++
		row[v] = -1

		if remaining <= 0 {
			continue
		}
		sc.edges, err = g.edges(v, sc.edges[:0])
		if err != nil {
			return err
		}
		for _, nb := range sc.edges {
			if nb.cost <= 0 {
				continue
			}
			left := remaining - nb.cost
			if left < 0 {
				continue
			}
			if sc.visited[nb.node] != sc.stamp {
				sc.queue = append(sc.queue, hop{node: nb.node, cost: left})
			}
		}
	}
	row[s] = float64(numVisited)

	return nil
}

// Build fills the pre-allocated N×N matrix simOut with the ε-neighbourhood
// matrix of g: for each source node s, row s holds -1 in every column
// reachable from s within budget epsilon, 0 in every other off-diagonal
// column, and on the diagonal the count of distinct nodes other than s
// that were reached.
//
// epsilon is a remaining-distance budget for a *WeightedAdjacency graph, or
// an integer hop limit for a *NeighborList graph (truncated toward zero).
// Negative epsilon is a contract violation (ErrNegativeEpsilon). Returns
// ErrShapeMismatch if simOut is not g.NumNodes() x g.NumNodes().
//
// Traversal order is breadth-first but not shortest-path: each node is
// visited by whichever queue entry for it is dequeued first, even if a
// later entry would have arrived with more budget to spare. A reachable
// node can therefore be missed if the only path to it runs through a
// tighter-budget arrival that gets dequeued first. This is the documented
// behaviour of the system this package reimplements, not an oversight.
//
// Build partitions the N source nodes across a pool of workers (see
// WithWorkers); each worker owns one scratch queue and visited-set reused
// across every source it processes. Rows of simOut are disjoint across
// sources, so workers never need to coordinate on writes.
func Build(g Graph, simOut *matrix.Dense, epsilon float64, opts ...Option) error {
	n := g.NumNodes()
	if simOut.Rows() != n || simOut.Cols() != n {
		return fmt.Errorf("epsilon.Build: sim_out is %dx%d, graph has %d nodes: %w", simOut.Rows(), simOut.Cols(), n, ErrShapeMismatch)
	}
	if epsilon < 0 {
		return fmt.Errorf("epsilon.Build: %w", ErrNegativeEpsilon)
	}
	if _, isList := g.(*NeighborList); isList {
		epsilon = math.Trunc(epsilon)
	}
	if n == 0 {
		return nil
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	workers := o.workers
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, (w+1)*chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		eg.Go(func() error {
			sc := newScratch(n)
			for s := lo; s < hi; s++ {
				if err := sc.visitRow(g, simOut, s, epsilon); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return eg.Wait()
}

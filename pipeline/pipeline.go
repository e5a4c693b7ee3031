package pipeline

import (
	"fmt"

	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/epsilon"
	"github.com/katalvlaran/spectral/kmeans"
	"github.com/katalvlaran/spectral/matrix"
)

// Result collects every intermediate artifact of a Run, not just the final
// clustering: callers that want to inspect the similarity matrix or the
// raw eigendecomposition (for diagnostics, or to feed a different
// clusterer) have it available without re-running earlier stages.
type Result struct {
	Similarity   *matrix.Dense
	Eigenvectors *matrix.Dense
	Eigenvalues  []float64
	Points       [][]float64
	Clustering   *kmeans.Result
}

// Run stages the pipeline end to end: it builds the ε-neighbourhood
// similarity matrix for graph, diagonalises it with Jacobi, takes the
// first k eigenvector columns as a k-dimensional point per node, and
// clusters those points into k groups.
func Run(graph epsilon.Graph, epsilonBudget float64, k int, opts ...Option) (*Result, error) {
	p := defaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	n := graph.NumNodes()
	if k <= 0 || k > n {
		return nil, fmt.Errorf("pipeline: k=%d, nodes=%d: %w", k, n, ErrTooFewNodes)
	}

	p.logger.Info("building epsilon-neighbourhood", "nodes", n, "epsilon", epsilonBudget)
	sim, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("pipeline: allocate similarity matrix: %w", err)
	}
	if err := epsilon.Build(graph, sim, epsilonBudget, p.epsilonOpts...); err != nil {
		return nil, fmt.Errorf("pipeline: build similarity matrix: %w", err)
	}

	p.logger.Info("running Jacobi eigendecomposition", "nodes", n)
	eigenvectors, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("pipeline: allocate eigenvector matrix: %w", err)
	}
	eigenvalues := make([]float64, n)
	// Jacobi diagonalises its input in place; give it a copy so Result keeps
	// the similarity matrix itself.
	if err := eigen.Jacobi(sim.Clone(), eigenvectors, eigenvalues, p.eigenOpts...); err != nil {
		return nil, fmt.Errorf("pipeline: eigendecomposition: %w", err)
	}

	points := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, k)
		for j := 0; j < k; j++ {
			v, err := eigenvectors.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("pipeline: read eigenvector column %d of row %d: %w", j, i, err)
			}
			row[j] = v
		}
		points[i] = row
	}

	p.logger.Info("running k-means clustering", "points", n, "k", k)
	clustering, err := kmeans.Cluster(points, k, k, p.kmeansOpts...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: cluster: %w", err)
	}

	p.logger.Info("pipeline complete", "nodes", n, "k", k)
	return &Result{
		Similarity:   sim,
		Eigenvectors: eigenvectors,
		Eigenvalues:  eigenvalues,
		Points:       points,
		Clustering:   clustering,
	}, nil
}

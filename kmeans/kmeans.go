package kmeans

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Result is the outcome of Cluster: a partition of point indices into k
// groups together with the centroid of each group.
type Result struct {
	// Assignments[i] is the cluster index of points[i].
	Assignments []int
	// Clusters[c] lists the indices of points assigned to cluster c.
	Clusters [][]int
	// Centroids[c] is the final d-dimensional centroid of cluster c.
	Centroids [][]float64
}

// Cluster partitions points (N tuples of dimension d) into k clusters by
// Lloyd's algorithm. Initial centroids are drawn uniformly within the
// per-coordinate bounding box of points, using a PRNG seeded per
// WithSeed (default 0, matching the fixed-seed contract). Convergence is
// declared when a reassignment pass moves no point; an empty cluster after
// reassignment keeps its previous centroid rather than becoming NaN.
func Cluster(points [][]float64, d, k int, opts ...Option) (*Result, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrNoPoints
	}
	if k <= 0 || k > n {
		return nil, fmt.Errorf("kmeans: k=%d, n=%d: %w", k, n, ErrInvalidK)
	}
	for i, pt := range points {
		if len(pt) != d {
			return nil, fmt.Errorf("kmeans: point %d has %d coordinates, want %d: %w", i, len(pt), d, ErrRaggedPoints)
		}
	}

	p := defaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	workers := p.resolveWorkers(n)

	lo, hi := boundingBox(points, d)
	rng := rand.New(rand.NewSource(p.seed))
	centroids := randomCentroids(rng, lo, hi, k, d)

	assignments := make([]int, n)
	assignPoints(points, centroids, assignments, workers)

	for iter := 0; iter < p.maxIterations; iter++ {
		clusters := membership(assignments, k)
		recomputeCentroids(points, clusters, centroids, workers)

		newAssignments := append([]int(nil), assignments...)
		changed := assignPoints(points, centroids, newAssignments, workers)
		assignments = newAssignments
		if !changed {
			break
		}
	}

	clusters := membership(assignments, k)
	return &Result{
		Assignments: assignments,
		Clusters:    clusters,
		Centroids:   centroids,
	}, nil
}

// boundingBox returns the per-coordinate minimum and maximum across points.
func boundingBox(points [][]float64, d int) (lo, hi []float64) {
	lo = make([]float64, d)
	hi = make([]float64, d)
	column := make([]float64, len(points))
	for j := 0; j < d; j++ {
		for i, pt := range points {
			column[i] = pt[j]
		}
		lo[j] = floats.Min(column)
		hi[j] = floats.Max(column)
	}
	return lo, hi
}

// randomCentroids draws k centroids uniformly within [lo, hi] per
// coordinate, in the order the source's getRandomCentroids iterates
// (cluster-major, then coordinate).
func randomCentroids(rng *rand.Rand, lo, hi []float64, k, d int) [][]float64 {
	centroids := make([][]float64, k)
	for i := 0; i < k; i++ {
		c := make([]float64, d)
		for j := 0; j < d; j++ {
			c[j] = lo[j] + rng.Float64()*(hi[j]-lo[j])
		}
		centroids[i] = c
	}
	return centroids
}

// assignPoints assigns each point to its nearest centroid (lowest index on
// ties), writing into dst, and reports whether any assignment differs from
// the caller's prior assignments slice. On the first call dst starts zeroed
// so every point is treated as newly assigned to cluster 0, which is
// harmless: the caller only consults the changed flag after the initial
// pass.
func assignPoints(points, centroids [][]float64, dst []int, workers int) bool {
	n := len(points)
	chunk := (n + workers - 1) / workers
	changedFlags := make([]bool, workers)
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		loIdx, hiIdx := w*chunk, (w+1)*chunk
		if hiIdx > n {
			hiIdx = n
		}
		eg.Go(func() error {
			for i := loIdx; i < hiIdx; i++ {
				idx := nearestCentroid(points[i], centroids)
				if idx != dst[i] {
					changedFlags[w] = true
				}
				dst[i] = idx
			}
			return nil
		})
	}
	_ = eg.Wait() // assignPoints performs no fallible work; error is always nil.

	for _, c := range changedFlags {
		if c {
			return true
		}
	}
	return false
}

// nearestCentroid returns the index of the centroid closest to pt by
// Euclidean distance, with the lowest index winning ties.
func nearestCentroid(pt []float64, centroids [][]float64) int {
	best := -1
	bestDist := 0.0
	for i, c := range centroids {
		dist := floats.Distance(pt, c, 2)
		if best == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// membership groups point indices by their current cluster assignment.
func membership(assignments []int, k int) [][]int {
	clusters := make([][]int, k)
	for i, c := range assignments {
		clusters[c] = append(clusters[c], i)
	}
	return clusters
}

// recomputeCentroids replaces each centroid with the arithmetic mean of its
// current members, leaving an empty cluster's centroid untouched.
func recomputeCentroids(points [][]float64, clusters [][]int, centroids [][]float64, workers int) {
	k := len(clusters)
	if workers > k {
		workers = k
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (k + workers - 1) / workers
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := w*chunk, (w+1)*chunk
		if hi > k {
			hi = k
		}
		eg.Go(func() error {
			for c := lo; c < hi; c++ {
				members := clusters[c]
				if len(members) == 0 {
					continue
				}
				mean := make([]float64, len(centroids[c]))
				for _, idx := range members {
					floats.Add(mean, points[idx])
				}
				floats.Scale(1/float64(len(members)), mean)
				centroids[c] = mean
			}
			return nil
		})
	}
	_ = eg.Wait()
}

package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/epsilon"
	"github.com/katalvlaran/spectral/kmeans"
	"github.com/katalvlaran/spectral/pipeline"
)

// TestRun_TwoDisjointPaths builds a graph of two far-apart 3-node paths
// and checks the pipeline separates them into two clusters.
func TestRun_TwoDisjointPaths(t *testing.T) {
	adj := [][]int{
		{1}, {0, 2}, {1}, // component A: 0-1-2
		{4}, {3, 5}, {4}, // component B: 3-4-5
	}
	g, err := epsilon.NewNeighborList(adj)
	require.NoError(t, err)

	res, err := pipeline.Run(g, 2, 2, pipeline.WithKMeansOptions(kmeans.WithSeed(1)))
	require.NoError(t, err)
	require.Len(t, res.Points, 6)
	require.Len(t, res.Eigenvalues, 6)

	clusterOf := res.Clustering.Assignments
	for i := 0; i < 3; i++ {
		require.Equal(t, clusterOf[0], clusterOf[i], "component A members should share a cluster")
	}
	for i := 3; i < 6; i++ {
		require.Equal(t, clusterOf[3], clusterOf[i], "component B members should share a cluster")
	}
	require.NotEqual(t, clusterOf[0], clusterOf[3], "the two components should land in different clusters")
}

func TestRun_TooFewNodes(t *testing.T) {
	g, err := epsilon.NewNeighborList([][]int{{}, {}})
	require.NoError(t, err)
	_, err = pipeline.Run(g, 1, 5)
	require.ErrorIs(t, err, pipeline.ErrTooFewNodes)
}

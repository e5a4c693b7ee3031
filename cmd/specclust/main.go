// Command specclust runs the spectral-clustering pipeline end to end over
// a file-described graph, writing per-node cluster assignments to a CSV.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spectral/epsilon"
	"github.com/katalvlaran/spectral/ioformat"
	"github.com/katalvlaran/spectral/pipeline"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "specclust <is_adjacency_list:0|1> <num_nodes> <num_clusters> <input_file> <epsilon> <output_file>",
		Short: "Build an epsilon-neighbourhood graph, diagonalise it, and k-means cluster the result",
		Args:  cobra.ExactArgs(6),
		RunE:  run,
	}
	cmd.SilenceUsage = true
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	isAdjacencyList, numNodes, numClusters, inputPath, eps, outputPath, err := parseArgs(args)
	if err != nil {
		return err
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input file: %w", err)
	}
	defer in.Close()

	graph, err := readGraph(in, isAdjacencyList, numNodes)
	if err != nil {
		return err
	}

	slog.Info("starting pipeline", "nodes", numNodes, "clusters", numClusters, "epsilon", eps, "adjacencyList", isAdjacencyList)
	result, err := pipeline.Run(graph, eps, numClusters)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer out.Close()

	if err := ioformat.WriteClusters(out, result.Points, result.Clustering.Assignments); err != nil {
		return fmt.Errorf("write clusters: %w", err)
	}

	slog.Info("pipeline finished", "output", outputPath)
	return nil
}

func parseArgs(args []string) (isAdjacencyList bool, numNodes, numClusters int, inputPath string, epsilonValue float64, outputPath string, err error) {
	var flag int
	if _, err = fmt.Sscanf(args[0], "%d", &flag); err != nil {
		return false, 0, 0, "", 0, "", fmt.Errorf("parsing is_adjacency_list: %w", err)
	}
	isAdjacencyList = flag != 0

	if _, err = fmt.Sscanf(args[1], "%d", &numNodes); err != nil {
		return false, 0, 0, "", 0, "", fmt.Errorf("parsing num_nodes: %w", err)
	}
	if _, err = fmt.Sscanf(args[2], "%d", &numClusters); err != nil {
		return false, 0, 0, "", 0, "", fmt.Errorf("parsing num_clusters: %w", err)
	}
	inputPath = args[3]
	// epsilon is int-cast-to-double on the wire, matching the original
	// driver's (double) atoi(argv[5]): "2.7" truncates to 2, not 2.7.
	epsilonValue = float64(atoi(args[4]))
	outputPath = args[5]

	return isAdjacencyList, numNodes, numClusters, inputPath, epsilonValue, outputPath, nil
}

// atoi mimics C's atoi: skip leading whitespace, accept one optional sign,
// consume decimal digits up to the first non-digit, and return 0 if no
// digits were found. Unlike strconv.Atoi it never errors on trailing or
// fractional garbage, matching atoi(argv[N])'s leading-digits tolerance.
func atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	sign := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	n, _ := strconv.Atoi(s[start:i])
	return sign * n
}

func readGraph(in *os.File, isAdjacencyList bool, numNodes int) (epsilon.Graph, error) {
	if isAdjacencyList {
		adj, err := ioformat.ReadAdjacencyList(in, numNodes)
		if err != nil {
			return nil, fmt.Errorf("read adjacency list: %w", err)
		}
		graph, err := epsilon.NewNeighborList(adj)
		if err != nil {
			return nil, fmt.Errorf("build neighbour list graph: %w", err)
		}
		return graph, nil
	}

	dense, err := ioformat.ReadDenseMatrix(in, numNodes)
	if err != nil {
		return nil, fmt.Errorf("read dense matrix: %w", err)
	}
	graph, err := epsilon.NewWeightedAdjacency(dense)
	if err != nil {
		return nil, fmt.Errorf("build weighted adjacency graph: %w", err)
	}
	return graph, nil
}

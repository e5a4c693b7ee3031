// Package spectral is a data-parallel spectral clustering pipeline: build an
// ε-neighbourhood similarity graph, diagonalise it with a cyclic Jacobi
// eigensolver, and partition the leading eigenvectors with Lloyd's k-means.
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	core/      — thread-safe Graph, Vertex, Edge primitives and views
//	bfs/       — unweighted breadth-first search with hooks and depth limiting
//	matrix/    — dense row-major matrix store shared by every numeric stage
//	epsilon/   — parallel ε-neighbourhood graph builder
//	eigen/     — cyclic Jacobi eigenvalue/eigenvector solver
//	kmeans/    — Lloyd's algorithm over point clouds
//	pipeline/  — wires epsilon, eigen and kmeans into one Run call
//	graphsrc/  — adapts core.Graph into epsilon's input shapes
//	ioformat/  — text matrix/adjacency-list I/O for the CLI
//	cmd/specclust/ — command-line driver
//
// Quick ASCII example of an ε-neighbourhood over four points:
//
//	    A───B
//	    │   │
//	    C───D
//
// An edge is kept only when the two endpoints' distance falls within the
// caller's ε budget; the resulting adjacency feeds eigen and kmeans in turn.
package spectral

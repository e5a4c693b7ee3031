// Package kmeans partitions a point cloud into k clusters by Lloyd's
// algorithm: uniform-random-in-bounding-box initial centroids, Euclidean
// nearest-centroid assignment, and iteration to a fixed point.
//
// Initialisation is seeded explicitly by the caller rather than drawn from
// a process-global generator, so two calls with the same seed and inputs
// produce identical clusters. An empty cluster after reassignment keeps its
// previous centroid rather than collapsing to NaN.
package kmeans

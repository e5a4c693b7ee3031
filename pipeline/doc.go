// Package pipeline stages the three core components — ε-neighbourhood
// build, Jacobi eigendecomposition, and k-means clustering — into the
// single strictly-ordered run the system exists to perform: a graph goes
// in, k cluster assignments come out.
//
// Each stage completes before the next begins; there is no overlap between
// components, only the intra-component parallelism each package already
// provides. Progress is reported via log/slog at Info level so a caller
// driving a large graph can see which stage is running.
package pipeline

// Package graphsrc adapts a core.Graph into the two input shapes the
// spectral pipeline's ε-neighbourhood builder accepts, and offers a
// connected-component diagnostic built on package bfs for callers who want
// to sanity-check a graph before spending a full pipeline run on it.
// LargestComponent composes that diagnostic with core.InducedSubgraph to
// drop stragglers before clustering.
package graphsrc

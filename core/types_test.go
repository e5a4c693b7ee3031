// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph configuration and vertex lifecycle contracts.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/spectral/core"
)

// TestGraph_Options asserts GraphOption flags are applied correctly.
func TestGraph_Options(t *testing.T) {
	g := NewGraphFull()

	MustFalse(t, g.Directed(), "Directed() default must be false (undirected)")
	MustTrue(t, g.Weighted(), "Weighted() must be true on NewGraphFull")
	MustFalse(t, g.HasVertex(VertexEmpty), "HasVertex(empty) must be false")

	dg := core.NewGraph(core.WithDirected(true))
	MustTrue(t, dg.Directed(), "WithDirected(true) must set Directed()==true")

	sg := core.NewGraph()
	_, err := sg.AddEdge(VertexX, VertexY, Weight0)
	MustNoError(t, err, "AddEdge(X,Y,0) on default graph")
}

// TestGraph_VertexLifecycle asserts AddVertex/HasVertex invariants.
func TestGraph_VertexLifecycle(t *testing.T) {
	g := NewGraphFull()

	err := g.AddVertex(VertexEmpty)
	MustErrorIs(t, err, core.ErrEmptyVertexID, "AddVertex(empty)")

	MustNoError(t, g.AddVertex(VertexV1), "AddVertex(V1)")
	MustTrue(t, g.HasVertex(VertexV1), "HasVertex(V1) after AddVertex(V1)")

	before := len(g.Vertices())
	MustNoError(t, g.AddVertex(VertexV1), "AddVertex(V1) duplicate")
	after := len(g.Vertices())
	MustEqualInt(t, after, before, "duplicate AddVertex(V1) must not change vertex count")
}

// TestGraph_AtomicEdgeIDs asserts concurrent AddEdge yields unique IDs.
func TestGraph_AtomicEdgeIDs(t *testing.T) {
	g := NewGraphFull()

	idCh := make(chan string, NAtomicEdgeIDs)
	errCh := make(chan error, NAtomicEdgeIDs)

	var wg sync.WaitGroup
	wg.Add(NAtomicEdgeIDs)

	for i := 0; i < NAtomicEdgeIDs; i++ {
		go func(i int) {
			defer wg.Done()

			eid, err := g.AddEdge(VertexA, fmt.Sprintf("B%d", i), int64(i))
			if err != nil {
				errCh <- err
				return
			}
			if eid == "" {
				errCh <- fmt.Errorf("empty edge ID returned")
				return
			}
			idCh <- eid
		}(i)
	}

	wg.Wait()
	close(idCh)
	close(errCh)

	MustNoErrorsFromChan(t, errCh, "Atomic edge IDs")

	ids := make(map[string]struct{}, NAtomicEdgeIDs)
	for eid := range idCh {
		ids[eid] = struct{}{}
	}

	MustEqualInt(t, len(ids), NAtomicEdgeIDs, "unique edge IDs count")
}

// TestGraph_NeighborIDsBeforeAndAfterEdge asserts NeighborIDs reflects edge
// additions and stays safe to call before any edge touches a vertex.
func TestGraph_NeighborIDsBeforeAndAfterEdge(t *testing.T) {
	g := NewGraphFull()

	MustNoError(t, g.AddVertex(VertexP), "AddVertex(P)")
	before, err := g.NeighborIDs(VertexP)
	MustNoError(t, err, "NeighborIDs(P) before any edge")
	MustEqualInt(t, len(before), 0, "NeighborIDs(P) before any edge must be empty")

	_, err = g.AddEdge(VertexP, VertexQ, Weight0)
	MustNoError(t, err, "AddEdge(P,Q,0)")

	after, err := g.NeighborIDs(VertexP)
	MustNoError(t, err, "NeighborIDs(P) after AddEdge(P,Q)")
	MustSameStringSet(t, after, []string{VertexQ}, "NeighborIDs(P) after AddEdge(P,Q)")
}

// TestGraph_HasVertexConcurrency asserts concurrent HasVertex/AddVertex does not panic.
func TestGraph_HasVertexConcurrency(t *testing.T) {
	g := NewGraphFull()

	const M = 50

	var wg sync.WaitGroup
	wg.Add(2 * M)

	for i := 0; i < M; i++ {
		go func(i int) {
			defer wg.Done()
			_ = g.AddVertex(fmt.Sprintf("V%d", i))
		}(i)

		go func(i int) {
			defer wg.Done()
			_ = g.HasVertex(fmt.Sprintf("V%d", i))
		}(i)
	}

	wg.Wait()
}

package epsilon

import "errors"

// Sentinel errors for the epsilon package. A malformed graph (negative
// weight, out-of-range neighbour index) or a mismatched output shape is a
// contract violation: NewWeightedAdjacency, NewNeighborList or Build returns
// one of these instead of attempting a partial traversal.
var (
	// ErrNonSquare indicates a weighted adjacency input was not N×N.
	ErrNonSquare = errors.New("epsilon: adjacency matrix is not square")

	// ErrNegativeWeight indicates a weighted adjacency input had a negative entry.
	ErrNegativeWeight = errors.New("epsilon: negative edge weight")

	// ErrNeighborOutOfRange indicates a neighbour-list input referenced a node outside [0, N).
	ErrNeighborOutOfRange = errors.New("epsilon: neighbour index out of range")

	// ErrShapeMismatch indicates simOut is not N×N for the graph's N.
	ErrShapeMismatch = errors.New("epsilon: output matrix shape does not match graph size")

	// ErrNegativeEpsilon indicates a negative ε budget was supplied.
	ErrNegativeEpsilon = errors.New("epsilon: epsilon must be non-negative")
)

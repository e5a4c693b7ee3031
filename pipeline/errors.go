package pipeline

import "errors"

// ErrTooFewNodes indicates the input graph has fewer nodes than the
// requested cluster count, or the cluster count is not positive, making
// k-means impossible.
var ErrTooFewNodes = errors.New("pipeline: fewer graph nodes than clusters")

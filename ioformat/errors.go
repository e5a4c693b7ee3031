package ioformat

import "errors"

// ErrMalformedInput indicates the input file did not parse as the expected
// matrix or adjacency-list shape.
var ErrMalformedInput = errors.New("ioformat: malformed input")

package eigen

import "errors"

// ErrDimensionMismatch indicates A, P, and evalues did not all agree on a
// single N, or A/P were not square.
var ErrDimensionMismatch = errors.New("eigen: dimension mismatch")

package matrix

import "errors"

// Sentinel errors for the matrix package. Every exported function returns
// one of these (wrapped with fmt.Errorf and %w where extra context helps)
// rather than panicking; index and shape violations are contract violations
// from the caller, not conditions the package can recover from.
var (
	// ErrInvalidDimensions indicates a requested row or column count was <= 0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside [0, dim).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates two matrices (or a matrix and a vector)
	// have incompatible shapes for the requested operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare indicates a square matrix was required but rows != cols.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates a nil *Dense was passed where one was required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

package matrix

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Dense is a row-major N×M matrix of float64 values backed by a flat slice.
// Its dimensions are fixed at construction and every element is initialised
// to zero. Dense has no notion of ownership beyond the usual Go rules: a
// *Dense is exclusively owned by whoever holds the pointer until it is
// handed to another component, matching the producer/consumer lifecycle
// described for every structure in the pipeline.
type Dense struct {
	rows, cols int
	data       []float64 // len == rows*cols, row-major
}

// NewDense allocates a rows×cols matrix of zeros.
// Returns ErrInvalidDimensions if rows <= 0 or cols <= 0.
// Complexity: O(rows*cols) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.cols }

// index computes the flat offset for (i, j), or ErrOutOfRange.
func (m *Dense) index(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("Dense(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return i*m.cols + j, nil
}

// At returns the element at (i, j).
// Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	off, err := m.index(i, j)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set assigns v at (i, j).
// Complexity: O(1).
func (m *Dense) Set(i, j int, v float64) error {
	off, err := m.index(i, j)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// Row returns the backing slice for row i directly, with no copy. Callers
// that only need to walk a single row (the ε-builder writes exactly one row
// per source node) can use this to avoid the At/Set bounds-check overhead
// on every element; the slice aliases m's storage and must not be retained
// past m's lifetime if m is subsequently reused.
// Complexity: O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}

	return m.data[i*m.cols : (i+1)*m.cols], nil
}

// Clone returns a deep, independent copy of m.
// Complexity: O(rows*cols).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{rows: m.rows, cols: m.cols, data: cp}
}

// rowWorkers picks a worker count for a bulk row-parallel pass over an
// n-row matrix: never more workers than rows, never more than the host has
// cores for, and never zero.
func rowWorkers(n int) int {
	w := runtime.GOMAXPROCS(0)
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}

	return w
}

// Scale multiplies every element of m by alpha in place, in parallel across
// row bands. Complexity: O(rows*cols) time, O(1) extra memory.
func (m *Dense) Scale(alpha float64) {
	n := len(m.data)
	if n == 0 {
		return
	}
	workers := rowWorkers(m.rows)
	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, (w+1)*chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			for k := lo; k < hi; k++ {
				m.data[k] *= alpha
			}
			return nil
		})
	}
	_ = g.Wait() // worker closures never return an error
}

// Accumulate adds other into m element-wise in place: m[i][j] += other[i][j].
// Returns ErrDimensionMismatch if the shapes differ.
// Complexity: O(rows*cols) time, O(1) extra memory.
func (m *Dense) Accumulate(other *Dense) error {
	if other == nil {
		return fmt.Errorf("Dense.Accumulate: %w", ErrNilMatrix)
	}
	if m.rows != other.rows || m.cols != other.cols {
		return fmt.Errorf("Dense.Accumulate: %dx%d vs %dx%d: %w", m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}
	n := len(m.data)
	if n == 0 {
		return nil
	}
	workers := rowWorkers(m.rows)
	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, (w+1)*chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			for k := lo; k < hi; k++ {
				m.data[k] += other.data[k]
			}
			return nil
		})
	}

	return g.Wait()
}

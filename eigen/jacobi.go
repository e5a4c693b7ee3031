package eigen

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spectral/matrix"
)

// Jacobi diagonalises the symmetric N×N matrix A in place by repeated
// plane rotations, each zeroing the current largest-magnitude off-diagonal
// entry. On return, evalues[i] = A[i][i] for every i, off-diagonal entries
// of A are numerically zero (within the configured tolerance, or the best
// achieved within the rotation budget), and P holds the accumulated
// orthogonal transform: its columns are the eigenvectors corresponding to
// evalues in the same order.
//
// P is reset to the identity on entry regardless of its prior contents.
// A, P, and evalues must all agree on a single dimension N; otherwise
// Jacobi returns ErrDimensionMismatch.
//
// Convergence uses tol = 1e-3 and a rotation budget of 10*N unless
// overridden by WithTolerance/WithMaxRotations — these are part of the
// public contract, not defaults a caller is expected to tune away.
// Exhausting the rotation budget without reaching tolerance is not an
// error: Jacobi returns the diagonal it reached.
func Jacobi(A, P *matrix.Dense, evalues []float64, opts ...Option) error {
	n := A.Rows()
	if A.Cols() != n || P.Rows() != n || P.Cols() != n || len(evalues) != n {
		return fmt.Errorf("eigen.Jacobi: A is %dx%d, P is %dx%d, evalues has %d entries: %w",
			A.Rows(), A.Cols(), P.Rows(), P.Cols(), len(evalues), ErrDimensionMismatch)
	}

	p := defaultParams(n)
	for _, opt := range opts {
		opt(&p)
	}
	workers := p.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	if err := resetIdentity(P, n); err != nil {
		return err
	}
	if n <= 1 {
		if n == 1 {
			v, err := A.At(0, 0)
			if err != nil {
				return err
			}
			evalues[0] = v
		}
		return nil
	}

	for iter := 0; iter < p.maxRot; iter++ {
		k, l, aMax, err := maxOffDiagonal(A, n, workers)
		if err != nil {
			return err
		}
		if aMax < p.tol {
			break
		}
		if err := rotate(A, P, n, k, l, workers); err != nil {
			return err
		}
	}

	for i := 0; i < n; i++ {
		v, err := A.At(i, i)
		if err != nil {
			return err
		}
		evalues[i] = v
	}

	return nil
}

// resetIdentity overwrites m with the N×N identity.
func resetIdentity(m *matrix.Dense, n int) error {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := 0.0
			if i == j {
				v = 1.0
			}
			if err := m.Set(i, j, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// maxOffDiagonal scans the strict upper triangle of A for the greatest
// absolute magnitude, splitting row bands across workers and reducing
// their local maxima.
func maxOffDiagonal(A *matrix.Dense, n, workers int) (k, l int, aMax float64, err error) {
	type candidate struct {
		k, l int
		val  float64
	}
	results := make([]candidate, workers)
	chunk := (n + workers - 1) / workers
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := w*chunk, (w+1)*chunk
		if hi > n {
			hi = n
		}
		eg.Go(func() error {
			best := candidate{k: -1, l: -1, val: 0}
			for i := lo; i < hi; i++ {
				for j := i + 1; j < n; j++ {
					v, err := A.At(i, j)
					if err != nil {
						return err
					}
					if av := math.Abs(v); av > best.val {
						best = candidate{k: i, l: j, val: av}
					}
				}
			}
			results[w] = best
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return 0, 0, 0, err
	}

	k, l, aMax = -1, -1, 0
	for _, c := range results {
		if c.k >= 0 && c.val > aMax {
			k, l, aMax = c.k, c.l, c.val
		}
	}
	if k < 0 {
		// Every off-diagonal entry was exactly zero; (0,1) is a harmless
		// pivot whose magnitude (0) will immediately signal convergence.
		k, l = 0, 1
	}

	return k, l, aMax, nil
}

// rotate applies the Jacobi rotation that zeroes A[k][l], updating A and
// accumulating the transform into P. Row/column updates for every index
// other than k and l are independent of each other and run in parallel;
// because A is fully dense and symmetric, the single update below covers
// the three index ranges (i<k, k<i<l, i>l) that a triangular-storage
// implementation must handle separately.
func rotate(A, P *matrix.Dense, n, k, l, workers int) error {
	akk, err := A.At(k, k)
	if err != nil {
		return err
	}
	all, err := A.At(l, l)
	if err != nil {
		return err
	}
	temp, err := A.At(k, l)
	if err != nil {
		return err
	}

	aDiff := all - akk
	var t float64
	if math.Abs(temp) < math.Abs(aDiff)*1e-36 {
		t = temp / aDiff
	} else {
		phi := aDiff / (2 * temp)
		t = sign(phi) / (math.Abs(phi) + math.Sqrt(phi*phi+1))
	}
	c := 1 / math.Sqrt(t*t+1)
	s := t * c
	tau := s / (1 + c)

	if err := A.Set(k, l, 0); err != nil {
		return err
	}
	if err := A.Set(l, k, 0); err != nil {
		return err
	}
	if err := A.Set(k, k, akk-t*temp); err != nil {
		return err
	}
	if err := A.Set(l, l, all+t*temp); err != nil {
		return err
	}

	apply := func(g, h float64) (newG, newH float64) {
		return g - s*(h+tau*g), h + s*(g-tau*h)
	}

	chunk := (n + workers - 1) / workers
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := w*chunk, (w+1)*chunk
		if hi > n {
			hi = n
		}
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				if i != k && i != l {
					g, err := A.At(i, k)
					if err != nil {
						return err
					}
					h, err := A.At(i, l)
					if err != nil {
						return err
					}
					newG, newH := apply(g, h)
					if err := A.Set(i, k, newG); err != nil {
						return err
					}
					if err := A.Set(k, i, newG); err != nil {
						return err
					}
					if err := A.Set(i, l, newH); err != nil {
						return err
					}
					if err := A.Set(l, i, newH); err != nil {
						return err
					}
				}
				pg, err := P.At(i, k)
				if err != nil {
					return err
				}
				ph, err := P.At(i, l)
				if err != nil {
					return err
				}
				newPG, newPH := apply(pg, ph)
				if err := P.Set(i, k, newPG); err != nil {
					return err
				}
				if err := P.Set(i, l, newPH); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return eg.Wait()
}

// sign returns +1 for x >= 0 and -1 for x < 0, matching the contract's
// sign(0) = +1 convention (math.Signbit would report 0 as non-negative
// too, but we spell it out since the convention is load-bearing here).
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

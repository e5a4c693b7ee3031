package eigen

// defaultTolerance and defaultRotationFactor are the contract values from
// the specification: a caller that needs tighter convergence supplies
// WithTolerance/WithMaxRotations explicitly; Jacobi never changes these on
// its own.
const (
	defaultTolerance      = 1.0e-3
	defaultRotationFactor = 10
)

// Option configures Jacobi's convergence parameters. Leaving them unset
// reproduces the literal constants from the specification.
type Option func(*params)

type params struct {
	tol     float64
	maxRot  int
	workers int
}

func defaultParams(n int) params {
	return params{
		tol:    defaultTolerance,
		maxRot: defaultRotationFactor * n,
	}
}

// WithTolerance overrides the off-diagonal convergence threshold. tol <= 0
// is ignored.
func WithTolerance(tol float64) Option {
	return func(p *params) {
		if tol > 0 {
			p.tol = tol
		}
	}
}

// WithMaxRotations overrides the rotation budget. n <= 0 is ignored.
func WithMaxRotations(n int) Option {
	return func(p *params) {
		if n > 0 {
			p.maxRot = n
		}
	}
}

// WithWorkers overrides the number of goroutines used for the
// parallelisable parts of each rotation (the pivot scan and the row/column
// updates). n <= 0 is ignored.
func WithWorkers(n int) Option {
	return func(p *params) {
		if n > 0 {
			p.workers = n
		}
	}
}

package epsilon

import "runtime"

// Option configures Build's parallelism. None of these affect the result,
// only how it is computed; the ε-matrix contract in Build's doc comment is
// unconditional.
type Option func(*buildOptions)

type buildOptions struct {
	workers int
}

func defaultOptions() buildOptions {
	return buildOptions{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers overrides the number of goroutines Build partitions source
// nodes across. n <= 0 is ignored (keeps the default). Mainly useful in
// tests that want to pin down scheduling, or in environments where the
// default GOMAXPROCS-sized pool is not the right fit.
func WithWorkers(n int) Option {
	return func(o *buildOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

package pipeline

import (
	"log/slog"

	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/epsilon"
	"github.com/katalvlaran/spectral/kmeans"
)

// Option configures a Run invocation.
type Option func(*params)

type params struct {
	logger      *slog.Logger
	epsilonOpts []epsilon.Option
	eigenOpts   []eigen.Option
	kmeansOpts  []kmeans.Option
}

func defaultParams() params {
	return params{logger: slog.Default()}
}

// WithLogger overrides the logger used to report stage progress. A nil
// logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(p *params) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithEpsilonOptions forwards options to the ε-neighbourhood builder.
func WithEpsilonOptions(opts ...epsilon.Option) Option {
	return func(p *params) {
		p.epsilonOpts = append(p.epsilonOpts, opts...)
	}
}

// WithEigenOptions forwards options to the Jacobi eigendecomposition.
func WithEigenOptions(opts ...eigen.Option) Option {
	return func(p *params) {
		p.eigenOpts = append(p.eigenOpts, opts...)
	}
}

// WithKMeansOptions forwards options to the k-means clusterer.
func WithKMeansOptions(opts ...kmeans.Option) Option {
	return func(p *params) {
		p.kmeansOpts = append(p.kmeansOpts, opts...)
	}
}

package kmeans

import "errors"

// ErrNoPoints indicates an empty point set was supplied to Cluster.
var ErrNoPoints = errors.New("kmeans: no points")

// ErrInvalidK indicates k was non-positive or exceeded the number of points.
var ErrInvalidK = errors.New("kmeans: invalid cluster count")

// ErrRaggedPoints indicates not every point had the declared dimension d.
var ErrRaggedPoints = errors.New("kmeans: point dimension mismatch")

// Package matrix provides the dense matrix store underlying the spectral
// clustering pipeline: the ε-neighbourhood builder writes into one, the
// Jacobi eigensolver diagonalises one in place, and the projected point
// cloud consumed by k-means is read off a handful of its columns.
//
// Dense is a row-major N×M array of float64 values backed by a single flat
// slice. There is no transposition and no matrix-multiply primitive: the
// pipeline never needs either, and adding them would just be surface area
// nobody calls. What it does need — allocate, index, clone, and bulk
// element-wise scale/accumulate — is all this package offers.
package matrix

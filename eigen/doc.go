// Package eigen diagonalises a real symmetric matrix by cyclic,
// max-element Jacobi rotation, the classical eigensolver this pipeline
// commits to (no Lanczos, no divide-and-conquer). Each rotation zeroes the
// largest-magnitude off-diagonal entry; repeated often enough, the matrix
// converges to (numerically) diagonal, with the accumulated rotations
// forming an orthogonal change of basis whose columns are the eigenvectors.
//
// The tolerance and rotation cap default to literal constants (1e-3 and
// 10*N); WithTolerance and WithMaxRotations override them per call, and
// Jacobi never changes them on its own. Exhausting the rotation budget without reaching
// tolerance is not an error — Jacobi returns the best diagonal it found.
package eigen

// Package matrix provides a generic dense matrix container and a float64
// specialization with classical linear algebra.
//
// The matrix package provides:
//
//   - Matrix[T], a fixed-shape row-major grid of nullable cells (Cell[T]) with
//     bounds-checked access, structural Equal/Hash and four transpositions
//     (main diagonal, side diagonal, vertical and horizontal mirror).
//   - Factory, the capability generic kernels use to allocate results of the
//     caller's concrete type.
//   - Float, the float64 specialization: Add, Sub, Scale, Mul, Determinant
//     (recursive Laplace expansion), Minor, MinorDeterminant, CofactorMatrix
//     and Inverse via the adjugate.
//
// Every matrix has at least two rows and two columns. Every operation that
// returns a matrix returns a new, independently owned grid.
//
// Errors are package sentinels (ErrInvalidShape, ErrOutOfRange,
// ErrDimensionMismatch, ErrNonSquare, ErrAbsentCell, ErrNilMatrix) wrapped
// with call-site context; match them with errors.Is. A singular matrix is not
// an error: Inverse reports it through its ok result.
//
// Matrices are not safe for concurrent mutation.
package matrix

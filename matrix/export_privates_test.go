// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for states the public constructors cannot produce.
//
// Purpose:
//   - Expose a degenerate zero-row grid so the Cols() contract can be checked.
//   - Expose the raw determinant expansion over arbitrary n (including 1).

// ExportedEmptyGrid returns a Matrix[int] with zero rows and the given column count.
func ExportedEmptyGrid(cols int) *Matrix[int] {
	return &Matrix[int]{r: 0, c: cols}
}

// ExportedDet runs the Laplace expansion on a row-major n×n slice.
func ExportedDet(n int, a []float64) float64 {
	return square{n: n, a: a}.det()
}

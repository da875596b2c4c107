// SPDX-License-Identifier: MIT

// Package matrix - the four transpositions.
//
// Purpose:
//   - Reflect a grid across its main diagonal, its side (anti-) diagonal,
//     its vertical centre line or its horizontal centre line.
//   - Allocate every result through the Factory capability of the source, so a
//     *Float stays a *Float and a *Matrix[T] stays a *Matrix[T].
//
// Determinism:
//   - Fixed i→j walk over the source; each source cell is written exactly once.
//
// AI-Hints:
//   - The methods on *Matrix[T] / *Float are thin forwards to these kernels; call the
//     kernels directly when writing generic code over any Factory implementation.

package matrix

// Operation tags for the transposition kernels.
const (
	opTransposeMain    = "TransposeMain"
	opTransposeSide    = "TransposeSide"
	opMirrorVertical   = "MirrorVertical"
	opMirrorHorizontal = "MirrorHorizontal"
)

// cellMap maps source coordinates (i,j) of an r×c grid to target coordinates.
type cellMap func(i, j, r, c int) (int, int)

// TransposeMain reflects m across its main diagonal: out[j][i] = m[i][j].
// The result has shape Cols×Rows and the concrete type of m.
//
// Errors:
//   - ErrNilMatrix when m carries no grid.
//   - Any error returned by m.Blank.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func TransposeMain[T comparable, M Factory[T, M]](m M) (M, error) {
	return remap[T](m, opTransposeMain, true, func(i, j, _, _ int) (int, int) {
		return j, i
	})
}

// TransposeSide reflects m across its side diagonal:
// out[c-1-j][r-1-i] = m[i][j]. The result has shape Cols×Rows.
// Complexity: Time O(r*c), Space O(r*c).
func TransposeSide[T comparable, M Factory[T, M]](m M) (M, error) {
	return remap[T](m, opTransposeSide, true, func(i, j, r, c int) (int, int) {
		return c - 1 - j, r - 1 - i
	})
}

// MirrorVertical mirrors the columns of m left-right across the vertical
// centre line: out[i][c-1-j] = m[i][j]. Shape is preserved.
func MirrorVertical[T comparable, M Factory[T, M]](m M) (M, error) {
	return remap[T](m, opMirrorVertical, false, func(i, j, _, c int) (int, int) {
		return i, c - 1 - j
	})
}

// MirrorHorizontal mirrors the rows of m top-bottom across the horizontal
// centre line: out[r-1-i][j] = m[i][j]. Shape is preserved.
func MirrorHorizontal[T comparable, M Factory[T, M]](m M) (M, error) {
	return remap[T](m, opMirrorHorizontal, false, func(i, j, r, _ int) (int, int) {
		return r - 1 - i, j
	})
}

// remap is the shared kernel: allocate via m.Blank (shape swapped when swap
// is set), then copy every source cell to its mapped position.
func remap[T comparable, M Factory[T, M]](m M, tag string, swap bool, to cellMap) (M, error) {
	var zero M
	src := m.Grid()
	if src == nil {
		return zero, matrixErrorf(tag, ErrNilMatrix)
	}

	rows, cols := src.r, src.c
	if swap {
		rows, cols = cols, rows
	}
	out, err := m.Blank(rows, cols)
	if err != nil {
		return zero, matrixErrorf(tag, err)
	}
	dst := out.Grid()

	var i, j, ti, tj int
	for i = 0; i < src.r; i++ {
		for j = 0; j < src.c; j++ {
			ti, tj = to(i, j, src.r, src.c)
			dst.cells[ti*dst.c+tj] = src.cells[i*src.c+j]
		}
	}

	return out, nil
}

// Transposed returns the main-diagonal transpose of m. See TransposeMain.
func (m *Matrix[T]) Transposed() (*Matrix[T], error) { return TransposeMain[T](m) }

// TransposedSide returns the side-diagonal transpose of m. See TransposeSide.
func (m *Matrix[T]) TransposedSide() (*Matrix[T], error) { return TransposeSide[T](m) }

// MirroredVertical returns m mirrored left-right. See MirrorVertical.
func (m *Matrix[T]) MirroredVertical() (*Matrix[T], error) { return MirrorVertical[T](m) }

// MirroredHorizontal returns m mirrored top-bottom. See MirrorHorizontal.
func (m *Matrix[T]) MirroredHorizontal() (*Matrix[T], error) { return MirrorHorizontal[T](m) }

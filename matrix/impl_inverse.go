// SPDX-License-Identifier: MIT

// Package matrix - minors, cofactor matrix and inverse via the adjugate.
//
//	A⁻¹ = adj(A) / det(A),  adj(A) = C(A)ᵀ,  C(A)[i][j] = (-1)^(i+j) · det(minor(A, i, j)).
//
// Notes:
//   - No pivoting, no conditioning check, no refinement.
//   - A singular input (det == 0 exactly) is an outcome, not an error:
//     Inverse reports it through its ok result.

package matrix

import "fmt"

// Minor returns the submatrix of f without row excludedRow and column
// excludedCol; all other rows and columns keep their relative order and
// absent cells stay absent. f need not be square.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrOutOfRange for an invalid index.
//   - ErrInvalidShape when the minor would have fewer than MinSide rows or
//     columns (f has only two rows or two columns). Use MinorDeterminant for
//     the cofactors of a 2×2 matrix.
//
// Complexity: Time O(r*c), Space O(r*c).
func (f *Float) Minor(excludedRow, excludedCol int) (*Float, error) {
	if f == nil {
		return nil, matrixErrorf(opMinor, ErrNilMatrix)
	}
	if err := ValidateIndex(f, excludedRow, excludedCol); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	res, err := NewFloat(f.r-1, f.c-1)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	dst := 0
	for i := 0; i < f.r; i++ {
		if i == excludedRow {
			continue
		}
		for j := 0; j < f.c; j++ {
			if j == excludedCol {
				continue
			}
			res.cells[dst] = f.cells[i*f.c+j]
			dst++
		}
	}

	return res, nil
}

// MinorDeterminant returns det(Minor(row, col)). A 2×2 source yields the
// single remaining cell.
//
// Errors (in this order):
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange, ErrAbsentCell.
func (f *Float) MinorDeterminant(row, col int) (float64, error) {
	if f == nil {
		return 0, matrixErrorf(opMinorDeterminant, ErrNilMatrix)
	}
	if err := ValidateSquare(f); err != nil {
		return 0, matrixErrorf(opMinorDeterminant, err)
	}
	if err := ValidateIndex(f, row, col); err != nil {
		return 0, matrixErrorf(opMinorDeterminant, err)
	}
	s, err := f.squareView(opMinorDeterminant)
	if err != nil {
		return 0, err
	}

	return s.minor(row, col).det(), nil
}

// CofactorMatrix returns C with C[i][j] = (-1)^(i+j) · MinorDeterminant(i, j).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAbsentCell.
//
// Complexity: n² minor determinants.
func (f *Float) CofactorMatrix() (*Float, error) {
	s, err := f.squareView(opCofactorMatrix)
	if err != nil {
		return nil, err
	}
	cof, err := s.cofactors()
	if err != nil {
		return nil, matrixErrorf(opCofactorMatrix, err)
	}

	return cof, nil
}

// Inverse returns f⁻¹ computed as TransposeMain(CofactorMatrix()) scaled by 1/det.
//
// Returns:
//   - (inv, true, nil) when det(f) != 0.
//   - (nil, false, nil) when det(f) == 0: no inverse exists.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAbsentCell.
func (f *Float) Inverse() (*Float, bool, error) {
	s, err := f.squareView(opInverse)
	if err != nil {
		return nil, false, err
	}

	det := s.det()
	if det == 0 {
		return nil, false, nil
	}

	cof, err := s.cofactors()
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	adj, err := cof.Transposed()
	if err != nil {
		return nil, false, matrixErrorf(opInverse, fmt.Errorf("adjugate: %w", err))
	}

	return adj.Scale(1 / det), true, nil
}

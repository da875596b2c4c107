// SPDX-License-Identifier: MIT
// Package matrix - Float arithmetic: element-wise addition/subtraction,
// scalar scaling, and the matrix product.
//
// Purpose:
//   - Every operation allocates a fresh result; operands are never written.
//   - Validation order is fixed: nil → shape → completeness.
//
// Notes:
//   - Scale never fails: absent cells simply stay absent.
//   - Add/Sub/Mul read every operand cell and therefore require complete operands.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and allocation.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAbsentCell (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Float, sign float64, opTag string) (*Float, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opTag, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	av, err := a.values()
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	bv, err := b.values()
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := a.Blank(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range av { // deterministic 0..n-1
		res.cells[idx] = Some(av[idx] + sign*bv[idx])
	}

	return res, nil
}

// Add returns the element-wise sum f + other as a new Float.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (shape mismatch),
//     ErrAbsentCell (an operand has an absent cell).
//
// Complexity: Time O(r*c), Space O(r*c).
func (f *Float) Add(other *Float) (*Float, error) { return addSub(f, other, +1, opAdd) }

// Sub returns the element-wise difference f - other as a new Float.
// Errors as for Add.
func (f *Float) Sub(other *Float) (*Float, error) { return addSub(f, other, -1, opSub) }

// Scale returns alpha*f as a new Float. Absent cells stay absent.
// Complexity: Time O(r*c), Space O(r*c).
func (f *Float) Scale(alpha float64) *Float {
	if f == nil {
		return nil
	}
	res := &Float{Matrix: Matrix[float64]{r: f.r, c: f.c, cells: make([]Cell[float64], len(f.cells))}}
	for idx, cell := range f.cells {
		if cell.Valid {
			res.cells[idx] = Some(cell.Value * alpha)
		}
	}

	return res
}

// Mul returns the matrix product f × other with shape f.Rows() × other.Cols():
//
//	out[i][e] = Σ_j f[i][j] * other[j][e].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (f.Cols() != other.Rows()), ErrAbsentCell.
//
// Determinism:
//   - Fixed i→j→e order; no zero skipping, so IEEE NaN/Inf propagate exactly.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (f *Float) Mul(other *Float) (*Float, error) {
	if f == nil || other == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if err := ValidateMulCompatible(f, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	av, err := f.values()
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bv, err := other.values()
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := f.r, f.c, other.c
	res, err := NewFloat(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	acc := make([]float64, rows*cols)
	var i, j, e, rowA, rowB, rowR int
	var a float64
	for i = 0; i < rows; i++ {
		rowA = i * inner
		rowR = i * cols
		for j = 0; j < inner; j++ {
			a = av[rowA+j]
			rowB = j * cols
			for e = 0; e < cols; e++ {
				acc[rowR+e] += a * bv[rowB+e]
			}
		}
	}
	for idx, v := range acc {
		res.cells[idx] = Some(v)
	}

	return res, nil
}

// AllClose reports whether f and other have the same shape and every pair of
// cells is either both absent or both present with |a-b| <= tol.
// NaN is never close to anything; equal infinities are close.
// Complexity: O(r*c).
func (f *Float) AllClose(other *Float, tol float64) bool {
	if f == nil || other == nil {
		return f == other
	}
	if ValidateSameShape(f, other) != nil {
		return false
	}
	tol = math.Abs(tol)
	for idx, a := range f.cells {
		b := other.cells[idx]
		if a.Valid != b.Valid {
			return false
		}
		if !a.Valid || a.Value == b.Value {
			continue
		}
		if math.IsNaN(a.Value) || math.IsNaN(b.Value) || math.Abs(a.Value-b.Value) > tol {
			return false
		}
	}

	return true
}

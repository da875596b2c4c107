// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Export a complete Float as *mat.Dense for callers that need gonum's
//     factorizations, and import any mat.Matrix back into a Float.
//
// Notes:
//   - Both directions copy; no storage is shared with gonum.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum returns a *mat.Dense copy of f.
// Errors: ErrNilMatrix, ErrAbsentCell (gonum has no absent marker).
// Complexity: Time O(r*c), Space O(r*c).
func (f *Float) ToGonum() (*mat.Dense, error) {
	vals, err := f.values()
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	return mat.NewDense(f.r, f.c, vals), nil
}

// FromGonum copies m into a new, complete Float.
// Errors: ErrNilMatrix, ErrInvalidShape (a dimension below MinSide).
// Complexity: Time O(r*c), Space O(r*c).
func FromGonum(m mat.Matrix) (*Float, error) {
	if m == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := m.Dims()
	f, err := NewFloat(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("dims %dx%d: %w", r, c, err))
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			f.cells[i*c+j] = Some(m.At(i, j))
		}
	}

	return f, nil
}

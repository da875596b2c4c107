// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common constructions and compositions.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Use IsIdentity(f.Mul(inv), eps) to check an inverse numerically.

package matrix

// NewZeros returns an n×m Float with every cell present and equal to 0.
// Errors: ErrInvalidShape.
// Complexity: O(r*c).
func NewZeros(rows, cols int) (*Float, error) {
	f, err := NewFloat(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range f.cells {
		f.cells[i] = Some(0.0)
	}

	return f, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidShape when n < MinSide.
// Complexity: O(n^2).
func NewIdentity(n int) (*Float, error) {
	I, err := NewZeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.cells[i*n+i] = Some(1.0)
	}

	return I, nil
}

// ZerosLike returns a zero Float with the shape of f.
func ZerosLike(f *Float) (*Float, error) {
	if f == nil {
		return nil, matrixErrorf("ZerosLike", ErrNilMatrix)
	}

	return NewZeros(f.r, f.c)
}

// IdentityLike returns I with dimension Rows(f); requires square shape.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike(f *Float) (*Float, error) {
	if f == nil {
		return nil, matrixErrorf("IdentityLike", ErrNilMatrix)
	}
	if err := ValidateSquare(f); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(f.r)
}

// IsIdentity reports whether f is square and within eps of the identity.
func IsIdentity(f *Float, eps float64) bool {
	I, err := IdentityLike(f)
	if err != nil {
		return false
	}

	return f.AllClose(I, eps)
}

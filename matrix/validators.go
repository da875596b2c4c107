// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/index/completeness checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.
//  - ValidateComplete is O(r*c); everything else is O(1).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Assumes a and b are not nil (caller must ensure).
// Returns ErrDimensionMismatch otherwise. Complexity: O(1).
func ValidateSameShape(a, b Shaper) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNonSquare. Complexity: O(1).
func ValidateSquare(m Shaper) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks the inner dimensions of a×b (a.Cols == b.Rows).
// Errors: ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b Shaper) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex checks 0 ≤ row < Rows() and 0 ≤ col < Cols().
// Errors: ErrOutOfRange. Complexity: O(1).
func ValidateIndex(m Shaper, row, col int) error {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d,%d)", row, col), ErrOutOfRange)
	}

	return nil
}

// ValidateComplete ensures every cell of m holds a value.
// The error names the first absent cell in row-major order.
// Errors: ErrAbsentCell. Complexity: O(r*c).
func ValidateComplete[T comparable](m *Matrix[T]) error {
	for off, cell := range m.cells {
		if !cell.Valid {
			return validatorErrorf(fmt.Sprintf("ValidateComplete(%d,%d)", off/m.c, off%m.c), ErrAbsentCell)
		}
	}

	return nil
}

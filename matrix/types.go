// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the generic container and the
// float64 specialization. This file contains ONLY types (cells, the shape
// view used by validators, and the factory capability); storage lives in
// impl_grid.go, errors in errors.go.
package matrix

// Cell is one grid slot. Valid == false marks an absent value; Value is then
// the zero value of T and carries no meaning.
type Cell[T any] struct {
	Value T    // stored element (meaningful only when Valid)
	Valid bool // false ⇒ absent ("null") cell
}

// Some returns a present cell holding v.
func Some[T any](v T) Cell[T] { return Cell[T]{Value: v, Valid: true} }

// None returns the absent cell.
func None[T any]() Cell[T] { return Cell[T]{} }

// equalCells reports structural cell equality: absent equals absent,
// present cells compare their values with ==.
func equalCells[T comparable](a, b Cell[T]) bool {
	if a.Valid != b.Valid {
		return false
	}

	return !a.Valid || a.Value == b.Value
}

// Shaper is the read-only shape view consumed by the validators.
// Complexity: all methods O(1).
type Shaper interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
}

// Factory is the capability a concrete matrix type provides so that generic
// kernels (the transpositions) can produce results of that same concrete
// type instead of a bare *Matrix[T].
//
//   - Grid exposes the underlying generic storage of the receiver.
//   - Blank returns a new all-absent matrix of the given shape, of the same
//     concrete type as the receiver.
//   - Clone returns an independent deep copy of the receiver.
//
// *Matrix[T] implements Factory[T, *Matrix[T]]; *Float implements
// Factory[float64, *Float].
type Factory[T comparable, M any] interface {
	Grid() *Matrix[T]
	Blank(rows, cols int) (M, error)
	Clone() M
}

// SPDX-License-Identifier: MIT

// Package matrix - Float, the float64 specialization of Matrix.
//
// Purpose:
//   - Embed the generic grid so accessors (At/Set/Clear/Put/Rows/Cols/Hash/String)
//     are shared verbatim with Matrix[float64].
//   - Override the Factory capability (Grid/Blank/Clone) so generic kernels
//     return *Float, never a bare *Matrix[float64].
//   - Host the arithmetic (impl_arithmetic.go) and the determinant family
//     (impl_determinant.go, impl_inverse.go).
//
// Any IEEE-754 value is storable, including NaN and ±Inf.

package matrix

// Float is a Matrix[float64] with linear-algebra operations.
type Float struct {
	Matrix[float64]
}

// Compile-time assertions for the capability and shape view.
var (
	_ Factory[float64, *Float] = (*Float)(nil)
	_ Shaper                   = (*Float)(nil)
)

// NewFloat creates a rows×cols Float with every cell absent.
// Errors: ErrInvalidShape when a dimension is below MinSide.
func NewFloat(rows, cols int) (*Float, error) {
	m, err := New[float64](rows, cols)
	if err != nil {
		return nil, err
	}

	return &Float{Matrix: *m}, nil
}

// NewFloatFromValues creates a rows×cols Float filled row-major from values;
// cells past len(values) stay absent.
//
// Errors:
//   - ErrInvalidShape for rows/cols below MinSide.
//   - ErrDimensionMismatch when len(values) > rows*cols.
func NewFloatFromValues(rows, cols int, values ...float64) (*Float, error) {
	m, err := NewFromValues(rows, cols, values...)
	if err != nil {
		return nil, err
	}

	return &Float{Matrix: *m}, nil
}

// FloatFrom wraps a deep copy of m as a Float. A nil m yields nil.
func FloatFrom(m *Matrix[float64]) *Float {
	if m == nil {
		return nil
	}

	return &Float{Matrix: *m.Clone()}
}

// Grid returns the embedded generic storage, or nil for a nil receiver.
func (f *Float) Grid() *Matrix[float64] {
	if f == nil {
		return nil
	}

	return &f.Matrix
}

// Blank returns a new all-absent rows×cols *Float.
func (f *Float) Blank(rows, cols int) (*Float, error) { return NewFloat(rows, cols) }

// Clone returns an independent deep copy of f.
// Complexity: Time O(r*c), Space O(r*c).
func (f *Float) Clone() *Float {
	return &Float{Matrix: *f.Matrix.Clone()}
}

// Equal reports structural equality with other (exact float comparison).
func (f *Float) Equal(other *Float) bool {
	if f == nil || other == nil {
		return f == other
	}

	return f.Matrix.Equal(&other.Matrix)
}

// Transposed returns the main-diagonal transpose of f as a *Float.
func (f *Float) Transposed() (*Float, error) { return TransposeMain[float64](f) }

// TransposedSide returns the side-diagonal transpose of f as a *Float.
func (f *Float) TransposedSide() (*Float, error) { return TransposeSide[float64](f) }

// MirroredVertical returns f mirrored left-right as a *Float.
func (f *Float) MirroredVertical() (*Float, error) { return MirrorVertical[float64](f) }

// MirroredHorizontal returns f mirrored top-bottom as a *Float.
func (f *Float) MirroredHorizontal() (*Float, error) { return MirrorHorizontal[float64](f) }

// values returns a flat row-major copy of f's values.
// Errors: ErrNilMatrix, ErrAbsentCell.
func (f *Float) values() ([]float64, error) {
	if f == nil {
		return nil, ErrNilMatrix
	}
	if err := ValidateComplete(&f.Matrix); err != nil {
		return nil, err
	}
	out := make([]float64, len(f.cells))
	for i, cell := range f.cells {
		out[i] = cell.Value
	}

	return out, nil
}

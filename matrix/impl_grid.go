// SPDX-License-Identifier: MIT

// Package matrix - generic grid storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of Cell[T] with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Clear/Put return errors instead of panicking.
//   - Keep absent cells explicit (Cell.Valid == false) so "null" survives every copy.
//   - Own the grid: Clone and every derived result allocate a fresh buffer.
//
// Complexity quicksheet:
//   - New: O(r*c); At/Set/Clear/Put: O(1); Clone/Equal/Hash/String: O(r*c).

package matrix

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxClear = "Clear" // method tag used in error wrappers
	ctxPut   = "Put"   // method tag used in error wrappers
	ctxNew   = "New"   // ctor tag
)

// ---------- Formatting literals ----------
const (
	_fmtNull     = "null"
	_fmtCellSep  = " "
	_fmtRowClose = "\n"
)

// MinSide is the smallest legal number of rows or columns.
const MinSide = 2

// gridErrorf wraps an error with a uniform Matrix context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a dense rectangular grid of nullable T cells.
//   - r,c hold dimensions (rows, cols), both >= MinSide for public constructors.
//   - cells is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is not usable; build instances with New or NewFromValues.
// A Matrix is not safe for concurrent mutation.
type Matrix[T comparable] struct {
	r, c  int       // row and column counts
	cells []Cell[T] // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for capability & fmt.Stringer conformance.
var (
	_ Factory[int, *Matrix[int]] = (*Matrix[int])(nil)
	_ fmt.Stringer               = (*Matrix[int])(nil)
	_ Shaper                     = (*Matrix[int])(nil)
)

// New creates a rows×cols matrix with every cell absent.
//
// Errors:
//   - ErrInvalidShape when rows < MinSide or cols < MinSide, or when rows*cols
//     does not fit in an int.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T comparable](rows, cols int) (*Matrix[T], error) {
	if rows < MinSide || cols < MinSide || rows > math.MaxInt/cols {
		return nil, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidShape)
	}

	// make() zero-fills the buffer, and the zero Cell is the absent cell.
	return &Matrix[T]{r: rows, c: cols, cells: make([]Cell[T], rows*cols)}, nil
}

// NewFromValues creates a rows×cols matrix and assigns values row-major:
// values[i] lands on (i / cols, i % cols). Cells past len(values) stay absent.
//
// Errors:
//   - ErrInvalidShape for rows/cols below MinSide.
//   - ErrDimensionMismatch when len(values) > rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromValues[T comparable](rows, cols int, values ...T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) > len(m.cells) {
		return nil, fmt.Errorf("Matrix.%s(%d,%d): %d values: %w", ctxNew, rows, cols, len(values), ErrDimensionMismatch)
	}
	for i, v := range values {
		m.cells[i] = Some(v)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count, or 0 for a grid without rows.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	if m.r == 0 {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the cell at (row, col), absent cells included.
//
// Errors:
//   - ErrOutOfRange when row ∉ [0,Rows()) or col ∉ [0,Cols()).
func (m *Matrix[T]) At(row, col int) (Cell[T], error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return Cell[T]{}, gridErrorf(ctxAt, row, col, err)
	}

	return m.cells[off], nil
}

// Value is At unpacked: (value, present, error).
func (m *Matrix[T]) Value(row, col int) (T, bool, error) {
	cell, err := m.At(row, col)

	return cell.Value, cell.Valid, err
}

// Set stores the present value v at (row, col) and returns the cell it
// replaced (which may be absent).
//
// Errors:
//   - ErrOutOfRange for invalid indices; the grid is left untouched.
func (m *Matrix[T]) Set(row, col int, v T) (Cell[T], error) {
	return m.store(ctxSet, row, col, Some(v))
}

// Clear marks (row, col) absent and returns the previous cell.
func (m *Matrix[T]) Clear(row, col int) (Cell[T], error) {
	return m.store(ctxClear, row, col, None[T]())
}

// Put stores an arbitrary cell (present or absent) and returns the previous one.
func (m *Matrix[T]) Put(row, col int, cell Cell[T]) (Cell[T], error) {
	if !cell.Valid {
		cell = None[T]() // absent cells never carry a stale payload
	}

	return m.store(ctxPut, row, col, cell)
}

// store is the single write path behind Set/Clear/Put.
func (m *Matrix[T]) store(method string, row, col int, cell Cell[T]) (Cell[T], error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return Cell[T]{}, gridErrorf(method, row, col, err)
	}
	prev := m.cells[off]
	m.cells[off] = cell

	return prev, nil
}

// Grid returns the receiver itself; it is the storage accessor of the
// Factory capability.
func (m *Matrix[T]) Grid() *Matrix[T] { return m }

// Blank returns a new all-absent rows×cols *Matrix[T].
func (m *Matrix[T]) Blank(rows, cols int) (*Matrix[T], error) { return New[T](rows, cols) }

// Clone returns a deep copy: the new matrix owns its own buffer, so writes to
// either side are never observed by the other.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]Cell[T], len(m.cells))
	copy(cp, m.cells)

	return &Matrix[T]{r: m.r, c: m.c, cells: cp}
}

// Equal reports structural equality: same shape and pairwise equal cells,
// absent matching absent. A nil matrix equals only another nil matrix.
// Complexity: O(r*c).
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.cells {
		if !equalCells(m.cells[i], other.cells[i]) {
			return false
		}
	}

	return true
}

// Hash returns a structural 64-bit hash: Equal matrices hash equally.
// Present cells are hashed by walking their value with reflect; float and
// complex components are normalized so that -0 and +0 (which compare equal)
// share a hash, whatever named type or struct field carries them.
// Complexity: O(r*c).
func (m *Matrix[T]) Hash() uint64 {
	d := xxhash.New()
	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[:8], uint64(m.r))
	binary.LittleEndian.PutUint64(dims[8:], uint64(m.c))
	_, _ = d.Write(dims[:])

	for _, cell := range m.cells {
		if !cell.Valid {
			_, _ = d.Write([]byte{0})
			continue
		}
		_, _ = d.Write([]byte{1})
		hashValue(d, reflect.ValueOf(cell.Value))
		_, _ = d.Write([]byte{0xff}) // terminator keeps adjacent tokens apart
	}

	return d.Sum64()
}

// hashValue writes the token of one present value to d. Composite kinds that
// == compares field by field (structs, arrays, interfaces) are walked, so a
// signed zero nested inside them is normalized too.
func hashValue(d *xxhash.Digest, v reflect.Value) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		_, _ = d.WriteString(floatToken(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		_, _ = d.WriteString(floatToken(real(c)))
		_, _ = d.WriteString("i")
		_, _ = d.WriteString(floatToken(imag(c)))
	case reflect.Struct:
		_, _ = d.WriteString("{")
		for i := 0; i < v.NumField(); i++ {
			hashValue(d, v.Field(i))
			_, _ = d.WriteString(",")
		}
		_, _ = d.WriteString("}")
	case reflect.Array:
		_, _ = d.WriteString("[")
		for i := 0; i < v.Len(); i++ {
			hashValue(d, v.Index(i))
			_, _ = d.WriteString(",")
		}
		_, _ = d.WriteString("]")
	case reflect.Interface:
		if v.IsNil() {
			_, _ = d.WriteString("<nil>")
			return
		}
		hashValue(d, v.Elem())
	case reflect.Invalid:
		_, _ = d.WriteString("<nil>")
	default:
		_, _ = fmt.Fprint(d, v)
	}
}

// floatToken renders f with -0 folded into +0.
func floatToken(f float64) string {
	if f == 0 {
		return "0"
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String renders the grid row by row: every cell followed by a single space,
// "null" for absent cells, one newline per row. Diagnostic output only.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			cell := m.cells[base+j]
			if cell.Valid {
				b.WriteString(fmt.Sprint(cell.Value))
			} else {
				b.WriteString(_fmtNull)
			}
			b.WriteString(_fmtCellSep)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

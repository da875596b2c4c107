// SPDX-License-Identifier: MIT

// Package matrixio - encode/decode of the document layout.
//
// Notes:
//   - JSON has no literal for NaN or ±Inf; such values do not survive a JSON
//     round trip. MessagePack carries every float64 bit pattern.
//   - Decode never trusts the document: shape goes through matrix.New and the
//     cell count must equal rows*cols.

package matrixio

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/ugorji/go/codec"
)

// document is the wire layout shared by every format.
type document[T comparable] struct {
	Rows  int  `codec:"rows"`
	Cols  int  `codec:"cols"`
	Cells []*T `codec:"cells"`
}

// Encode writes m to w in format f.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrUnknownFormat, or the underlying write error.
func Encode[T comparable](w io.Writer, f Format, m *matrix.Matrix[T]) error {
	if m == nil {
		return fmt.Errorf("Encode: %w", matrix.ErrNilMatrix)
	}
	h, err := f.handle()
	if err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	doc := document[T]{Rows: m.Rows(), Cols: m.Cols(), Cells: make([]*T, 0, m.Rows()*m.Cols())}
	var i, j int
	for i = 0; i < doc.Rows; i++ {
		for j = 0; j < doc.Cols; j++ {
			cell, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("Encode: %w", err)
			}
			if !cell.Valid {
				doc.Cells = append(doc.Cells, nil)
				continue
			}
			v := cell.Value
			doc.Cells = append(doc.Cells, &v)
		}
	}

	if err = codec.NewEncoder(w, h).Encode(&doc); err != nil {
		return fmt.Errorf("Encode(%s): %w", f, err)
	}

	return nil
}

// Decode reads one document of format f from r.
//
// Errors:
//   - ErrUnknownFormat, the underlying read/parse error,
//     matrix.ErrInvalidShape (rows or cols below matrix.MinSide, or rows*cols
//     overflowing int),
//     matrix.ErrDimensionMismatch (len(cells) != rows*cols).
func Decode[T comparable](r io.Reader, f Format) (*matrix.Matrix[T], error) {
	h, err := f.handle()
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	var doc document[T]
	if err = codec.NewDecoder(r, h).Decode(&doc); err != nil {
		return nil, fmt.Errorf("Decode(%s): %w", f, err)
	}

	// Shape and cell count are checked before anything is allocated.
	if doc.Rows >= matrix.MinSide && doc.Cols >= matrix.MinSide {
		if doc.Rows > math.MaxInt/doc.Cols {
			return nil, fmt.Errorf("Decode(%s): %dx%d: %w", f, doc.Rows, doc.Cols, matrix.ErrInvalidShape)
		}
		if len(doc.Cells) != doc.Rows*doc.Cols {
			return nil, fmt.Errorf("Decode(%s): %d cells for %dx%d: %w",
				f, len(doc.Cells), doc.Rows, doc.Cols, matrix.ErrDimensionMismatch)
		}
	}
	m, err := matrix.New[T](doc.Rows, doc.Cols)
	if err != nil {
		return nil, fmt.Errorf("Decode(%s): %w", f, err)
	}
	for idx, v := range doc.Cells {
		if v == nil {
			continue
		}
		if _, err = m.Set(idx/doc.Cols, idx%doc.Cols, *v); err != nil {
			return nil, fmt.Errorf("Decode(%s): %w", f, err)
		}
	}

	return m, nil
}

// EncodeFloat writes a Float to w in format f.
func EncodeFloat(w io.Writer, f Format, m *matrix.Float) error {
	return Encode(w, f, m.Grid())
}

// DecodeFloat reads one document of format f from r as a Float.
func DecodeFloat(r io.Reader, f Format) (*matrix.Float, error) {
	m, err := Decode[float64](r, f)
	if err != nil {
		return nil, err
	}

	return matrix.FloatFrom(m), nil
}

// SPDX-License-Identifier: MIT

// Package matrix - determinant by recursive Laplace (cofactor) expansion.
//
// Purpose:
//   - Expand along the first remaining row at every level, over an ordered set
//     of still-included column indices (ascending iteration, remove-by-value).
//   - Bottom out on the 2×2 cross product a[r][c1]*a[r+1][c2] - a[r][c2]*a[r+1][c1].
//
// Behavior highlights:
//   - A pivot that is exactly 0 contributes nothing and its minor is not evaluated.
//     The check is exact (v == 0); no tolerance is applied.
//   - The sign of a term follows the pivot's position in the ascending remaining
//     set, skipped positions included: +, -, +, ... This is the textbook cofactor
//     sign and keeps [[0,2,3],[1,0,1],[1,1,0]] at det = 5.
//
// Complexity:
//   - O(n!) time in the worst case (no zero pivots), O(n^2) extra space per level.
//     Intended for small matrices.

package matrix

import "github.com/emirpasic/gods/sets/treeset"

// Operation tags for the determinant family.
const (
	opDeterminant      = "Determinant"
	opMinor            = "Minor"
	opMinorDeterminant = "MinorDeterminant"
	opCofactorMatrix   = "CofactorMatrix"
	opInverse          = "Inverse"
)

// square is a read-only n×n view over a flat row-major buffer of present values.
// It is the working form of every determinant-family computation; n may be 1
// for the minors of a 2×2 matrix.
type square struct {
	n int
	a []float64
}

// at returns a[i][j].
func (s square) at(i, j int) float64 { return s.a[i*s.n+j] }

// cross is the 2×2 primitive over rows (row, row+1) and columns c1 < c2.
func (s square) cross(row, c1, c2 int) float64 {
	return s.at(row, c1)*s.at(row+1, c2) - s.at(row, c2)*s.at(row+1, c1)
}

// det returns the determinant of s.
func (s square) det() float64 {
	switch s.n {
	case 1:
		return s.a[0]
	case 2:
		return s.cross(0, 0, 1)
	}

	cols := treeset.NewWithIntComparator()
	for j := 0; j < s.n; j++ {
		cols.Add(j)
	}

	return s.expand(0, cols)
}

// expand computes the determinant of the submatrix made of rows row..n-1 and
// the columns in cols. Invariant: cols.Size() == s.n - row.
func (s square) expand(row int, cols *treeset.Set) float64 {
	if cols.Size() == 2 {
		pair := cols.Values()
		return s.cross(row, pair[0].(int), pair[1].(int))
	}

	var det float64
	sign := 1.0
	remaining := cols.Values() // ascending
	for _, c := range remaining {
		col := c.(int)
		if v := s.at(row, col); v != 0 {
			rest := treeset.NewWithIntComparator(remaining...)
			rest.Remove(col)
			det += sign * v * s.expand(row+1, rest)
		}
		sign = -sign
	}

	return det
}

// minor returns s without row r and column c, as an (n-1)×(n-1) square.
func (s square) minor(r, c int) square {
	m := s.n - 1
	out := make([]float64, 0, m*m)
	for i := 0; i < s.n; i++ {
		if i == r {
			continue
		}
		for j := 0; j < s.n; j++ {
			if j != c {
				out = append(out, s.at(i, j))
			}
		}
	}

	return square{n: m, a: out}
}

// cofactors builds the n×n cofactor matrix (-1)^(i+j) * det(minor(i,j)).
func (s square) cofactors() (*Float, error) {
	res, err := NewFloat(s.n, s.n)
	if err != nil {
		return nil, err
	}
	var i, j int
	var sign float64
	for i = 0; i < s.n; i++ {
		for j = 0; j < s.n; j++ {
			sign = 1.0
			if (i+j)%2 == 1 {
				sign = -1.0
			}
			res.cells[i*s.n+j] = Some(sign * s.minor(i, j).det())
		}
	}

	return res, nil
}

// squareView validates f for the determinant family and returns its working view.
// Errors: ErrNilMatrix, ErrNonSquare, ErrAbsentCell (wrapped with tag).
func (f *Float) squareView(tag string) (square, error) {
	if f == nil {
		return square{}, matrixErrorf(tag, ErrNilMatrix)
	}
	if err := ValidateSquare(f); err != nil {
		return square{}, matrixErrorf(tag, err)
	}
	vals, err := f.values()
	if err != nil {
		return square{}, matrixErrorf(tag, err)
	}

	return square{n: f.r, a: vals}, nil
}

// Determinant returns det(f).
//
// Implementation:
//   - Stage 1: validate square and complete.
//   - Stage 2: 2×2 ⇒ cross(0, 0, 1); otherwise Laplace expansion from row 0
//     over the full column set.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAbsentCell.
//
// Complexity:
//   - O(n!) worst case.
func (f *Float) Determinant() (float64, error) {
	s, err := f.squareView(opDeterminant)
	if err != nil {
		return 0, err
	}

	return s.det(), nil
}

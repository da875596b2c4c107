// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for the grid and Float kernels.
//   • Fail fast (t.Fatalf) on fixture construction errors.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
)

// eps is the absolute tolerance used for floating-point assertions.
const eps = 1e-9

// MustFloat builds an r×c *Float from row-major values or fails the test.
func MustFloat(t *testing.T, r, c int, vals ...float64) *matrix.Float {
	t.Helper()
	f, err := matrix.NewFloatFromValues(r, c, vals...)
	if err != nil {
		t.Fatalf("NewFloatFromValues(%d,%d): %v", r, c, err)
	}

	return f
}

// MustGrid builds an r×c *Matrix[T] from row-major values or fails the test.
func MustGrid[T comparable](t *testing.T, r, c int, vals ...T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewFromValues(r, c, vals...)
	if err != nil {
		t.Fatalf("NewFromValues(%d,%d): %v", r, c, err)
	}

	return m
}

// RandomFloat fills an r×c Float with values in [-5, 5) from a seeded source.
// Roughly one cell in five is an exact zero so the zero-pivot skip is exercised.
func RandomFloat(t *testing.T, rng *rand.Rand, r, c int) *matrix.Float {
	t.Helper()
	vals := make([]float64, r*c)
	for i := range vals {
		if rng.Intn(5) == 0 {
			continue
		}
		vals[i] = rng.Float64()*10 - 5
	}

	return MustFloat(t, r, c, vals...)
}

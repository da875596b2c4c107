// Package lvmat is a small dense-matrix toolkit: a generic grid of nullable
// cells and a float64 specialization with classical linear algebra.
//
// 🚀 What is inside?
//
//   - Generic grid: Matrix[T] with bounds-checked access, absent ("null") cells,
//     structural Equal/Hash and four transpositions
//   - Float arithmetic: Add, Sub, Scale, Mul
//   - Determinant by recursive Laplace expansion, minors, cofactor matrix
//   - Inverse through the adjugate, with singular input as an explicit outcome
//   - Documents: JSON and MessagePack encoding of any matrix
//
// Under the hood, everything is organized under three packages:
//
//	matrix/    - Matrix[T], Float, transpositions, determinant family, gonum interop
//	matrixio/  - wire documents {rows, cols, cells} in JSON and MessagePack
//	cmd/lvmat/ - command line over matrix documents
//
// Quick example:
//
//	a, _ := matrix.NewFloatFromValues(2, 2, 1, 2, 3, 4)
//	inv, ok, _ := a.Inverse() // ok == true
//	//  -2    1
//	// 1.5 -0.5
//
//	go install github.com/katalvlaran/lvmat/cmd/lvmat@latest
package lvmat

// SPDX-License-Identifier: MIT
// Package matutil — affine-bias augmentation.
//
// A bias-free bilinear factorization U·V can emulate an affine term by
// carrying a constant all-ones row on V (or column on U). The augmented
// dimension is never itself updated by a least-squares step: it is appended
// before the matrix product and stripped before returning to the caller.
//
// Round-trip laws (exact, elementwise):
//
//	StripLastRow(AugmentRows(M)) == M
//	StripLastCol(AugmentCols(M)) == M

package matutil

import "gonum.org/v1/gonum/mat"

// AugmentRows returns m with one all-ones row appended at the bottom,
// shape (r+1)×c. Complexity: O(r·c).
func AugmentRows(m *mat.Dense) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r+1, c, nil)
	out.Slice(0, r, 0, c).(*mat.Dense).Copy(m)
	for j := 0; j < c; j++ {
		out.Set(r, j, 1)
	}

	return out
}

// AugmentCols returns m with one all-ones column appended at the right,
// shape r×(c+1). Complexity: O(r·c).
func AugmentCols(m *mat.Dense) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c+1, nil)
	out.Slice(0, r, 0, c).(*mat.Dense).Copy(m)
	for i := 0; i < r; i++ {
		out.Set(i, c, 1)
	}

	return out
}

// StripLastRow returns m without its last row, shape (r-1)×c.
// Returns ErrBadShape when m has a single row. Complexity: O(r·c).
func StripLastRow(m *mat.Dense) (*mat.Dense, error) {
	r, c := m.Dims()
	if r < 2 {
		return nil, opErrorf("StripLastRow", ErrBadShape)
	}

	return mat.DenseCopyOf(m.Slice(0, r-1, 0, c)), nil
}

// StripLastCol returns m without its last column, shape r×(c-1).
// Returns ErrBadShape when m has a single column. Complexity: O(r·c).
func StripLastCol(m *mat.Dense) (*mat.Dense, error) {
	r, c := m.Dims()
	if c < 2 {
		return nil, opErrorf("StripLastCol", ErrBadShape)
	}

	return mat.DenseCopyOf(m.Slice(0, r, 0, c-1)), nil
}

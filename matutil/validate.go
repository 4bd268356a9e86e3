// SPDX-License-Identifier: MIT
// Package matutil — central shape validators.
//
// Purpose:
//   - Keep every dimension check in one place so all operations fail the
//     same way on the same inputs.
//   - Validators return plain sentinels; operation facades add their op tag.

package matutil

import "gonum.org/v1/gonum/mat"

// ValidateNotNil reports ErrNilMatrix when m is nil.
func ValidateNotNil(m *mat.Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape reports ErrShapeMismatch unless a and b share dimensions.
// Nil operands surface as ErrNilMatrix first.
func ValidateSameShape(a, b *mat.Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateProduct reports ErrShapeMismatch unless a·b conforms
// (a.Cols == b.Rows). Nil operands surface as ErrNilMatrix first.
func ValidateProduct(a, b *mat.Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	_, ac := a.Dims()
	br, _ := b.Dims()
	if ac != br {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateFactorShapes checks the factorization contract shared by every
// solver entry point:
//
//	a.Rows == u.Rows
//	u.Cols + biasRows == v.Rows
//	v.Cols == a.Cols
//
// biasRows is 0 for plain solves and 1 when v carries a bias-augmented
// constant row (the augmented dimension is excluded from the rank).
//
// Errors: ErrNilMatrix (any nil input), ErrShapeMismatch (any violated
// equality). The first violated condition in the order above wins.
func ValidateFactorShapes(a, u, v *mat.Dense, biasRows int) error {
	for _, m := range []*mat.Dense{a, u, v} {
		if err := ValidateNotNil(m); err != nil {
			return err
		}
	}
	ar, ac := a.Dims()
	ur, uc := u.Dims()
	vr, vc := v.Dims()
	if ar != ur {
		return ErrShapeMismatch
	}
	if uc+biasRows != vr {
		return ErrShapeMismatch
	}
	if vc != ac {
		return ErrShapeMismatch
	}

	return nil
}

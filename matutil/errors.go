// SPDX-License-Identifier: MIT
// Package matutil: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matutil package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered conditions.

package matutil

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matutil: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with opErrorf at the operation
// boundary — callers still match via errors.Is.

var (
	// ErrNilMatrix indicates that a nil matrix was passed where a value is required.
	ErrNilMatrix = errors.New("matutil: nil matrix")

	// ErrShapeMismatch indicates incompatible dimensions between operands,
	// e.g. Loss over differently shaped matrices, or a factor solve where
	// the fixed factor and target do not conform.
	ErrShapeMismatch = errors.New("matutil: shape mismatch")

	// ErrBadShape is returned when a requested or implied shape is invalid
	// (e.g. stripping the last row of a single-row matrix).
	ErrBadShape = errors.New("matutil: invalid shape")

	// ErrNumericFailure marks the (structurally unreachable) case where both
	// the ridge-regularized Gram solve and the SVD fallback fail. It exists
	// so Pinv never panics and never returns a partial result.
	ErrNumericFailure = errors.New("matutil: numeric factorization failed")
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Keeps a stable "Op: underlying" shape for uniform reporting.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

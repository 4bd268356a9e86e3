// SPDX-License-Identifier: MIT
// Package matutil — sign-constraint projections.

package matutil

import "gonum.org/v1/gonum/mat"

// ProjectNonneg returns a copy of m with every negative entry clamped to 0.
//
// Total (no failure modes for non-nil input) and idempotent:
// ProjectNonneg(ProjectNonneg(m)) equals ProjectNonneg(m) exactly.
// Complexity: O(r·c).
func ProjectNonneg(m *mat.Dense) *mat.Dense {
	return ProjectFloor(m, 0)
}

// ProjectFloor returns a copy of m with every entry below floor raised to
// floor. Solvers clamp with a small positive floor (Options.Eps) so that a
// projected factor has strictly positive entries after an update.
// Idempotent for any fixed floor. Complexity: O(r·c).
func ProjectFloor(m *mat.Dense, floor float64) *mat.Dense {
	out := mat.DenseCopyOf(m)
	raw := out.RawMatrix()
	var i, j int
	for i = 0; i < raw.Rows; i++ {
		base := i * raw.Stride
		for j = 0; j < raw.Cols; j++ {
			if raw.Data[base+j] < floor {
				raw.Data[base+j] = floor
			}
		}
	}

	return out
}

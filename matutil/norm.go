// SPDX-License-Identifier: MIT
// Package matutil — reconstruction-error reporting.
//
// Loss is used by the solvers only for reporting and for the optional
// monotonicity check; outer-loop termination is always a fixed iteration
// count, never a loss threshold.

package matutil

import "gonum.org/v1/gonum/mat"

// LossMode selects the aggregation applied to squared elementwise residuals.
type LossMode int

const (
	// MeanSquared aggregates as mean((target-recon)²). Default everywhere.
	MeanSquared LossMode = iota

	// SumSquared aggregates as sum((target-recon)²), i.e. ‖target-recon‖F².
	SumSquared
)

const opLoss = "Loss"

// Loss computes the squared reconstruction error between target and recon
// under the given mode.
//
// Inputs:
//   - target, recon: same-shape dense matrices.
//   - mode: MeanSquared or SumSquared (unknown modes behave as MeanSquared).
//
// Returns:
//   - float64: the aggregate squared error.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (wrapped with "Loss:").
//
// Complexity: O(r·c) time, O(1) extra space. Pure; operands are not mutated.
func Loss(target, recon *mat.Dense, mode LossMode) (float64, error) {
	if err := ValidateSameShape(target, recon); err != nil {
		return 0, opErrorf(opLoss, err)
	}

	rt := target.RawMatrix()
	rr := recon.RawMatrix()
	var sum, d float64
	var i, j int
	for i = 0; i < rt.Rows; i++ { // fixed row-major order
		baseT := i * rt.Stride
		baseR := i * rr.Stride
		for j = 0; j < rt.Cols; j++ {
			d = rt.Data[baseT+j] - rr.Data[baseR+j]
			sum += d * d
		}
	}
	if mode == SumSquared {
		return sum, nil
	}

	return sum / float64(rt.Rows*rt.Cols), nil
}

// FrobeniusNorm returns ‖m‖F, the square root of the sum of squared entries.
// Thin facade over mat.Norm for API discoverability.
func FrobeniusNorm(m *mat.Dense) float64 {
	return mat.Norm(m, 2)
}

// SPDX-License-Identifier: MIT
// Package matutil — exact Euclidean projection onto the probability simplex.

package matutil

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ProjectSimplexRows projects every row of m onto the probability simplex
// {x : x ≥ 0, Σx = 1} and returns the result as a fresh matrix.
//
// Implementation (per row, the sort-and-threshold scheme):
//   - Stage 1: copy the row and sort the copy in descending order.
//   - Stage 2: cumulative sums over the sorted copy; find the largest index
//     ρ (1-based) with sorted[ρ-1] - (cum[ρ-1]-1)/ρ > 0.
//   - Stage 3: θ = (cum[ρ-1]-1)/ρ; output[j] = max(row[j]-θ, 0).
//
// Behavior highlights:
//   - True Euclidean projection: among all nonnegative vectors summing to 1,
//     the output row is the closest to the input row in ℓ2 distance. This is
//     NOT the cheap normalize-and-clamp approximation.
//   - ρ ≥ 1 always holds (the largest element always passes the threshold
//     test), so the projection is total: no failure modes for non-nil input.
//   - Idempotent: a row already on the simplex maps to itself.
//
// Returns:
//   - *mat.Dense: same shape as m; every row nonnegative, summing to 1
//     within floating tolerance.
//
// Complexity:
//   - Time O(r·c·log c) for the per-row sorts, Space O(c) scratch.
func ProjectSimplexRows(m *mat.Dense) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)

	sorted := make([]float64, c) // descending copy of the current row
	cum := make([]float64, c)    // cumulative sums of sorted
	var i, j, rho int
	var theta, v float64
	for i = 0; i < r; i++ {
		row := m.RawRowView(i)
		copy(sorted, row)
		sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
		floats.CumSum(cum, sorted)

		// Largest ρ keeping the corresponding entry positive after the
		// cumulative-mean shift. ρ=1 always qualifies.
		rho = 1
		for j = 1; j < c; j++ {
			if sorted[j]-(cum[j]-1)/float64(j+1) > 0 {
				rho = j + 1
			}
		}
		theta = (cum[rho-1] - 1) / float64(rho)

		for j = 0; j < c; j++ {
			v = row[j] - theta
			if v < 0 {
				v = 0
			}
			out.Set(i, j, v)
		}
	}

	return out
}

package seminmf

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nmfkit/matutil"
	"gonum.org/v1/gonum/mat"
)

// SemiNMF — plain semi-nonnegative matrix factorization
//
// Description:
//
//	Alternating least squares on A ≈ U·V with U constrained nonnegative
//	and V free. Each outer iteration runs two closed-form phases:
//	  1. solve V — V ← pinv(U)·A, the unconstrained least-squares optimum
//	     of ‖A − U·V‖F with U fixed.
//	  2. solve U — U ← A·pinv(V), then floor-clamp at Options.Eps so the
//	     nonnegative factor stays strictly positive.
//	Termination is always the configured iteration count; the loss is never
//	consulted for control flow.
//
// Bias mode:
//
//	With Options.UseBias, V carries one extra caller-supplied constant row
//	(conventionally all ones). That row is a fixed affine offset: its
//	contribution 1·v_last is subtracted from A before both phases, and the
//	row is reattached untouched on return — it is never recomputed,
//	projected, or reconstructed by least squares.
//
// Errors:
//   - ErrBadOption            — unusable Options field (NumIters < 1, …).
//   - matutil.ErrShapeMismatch / matutil.ErrNilMatrix — violated entry
//     contract (§ see ValidateFactorShapes); no partial results.
//   - ErrNumericDivergence    — only with Options.CheckMonotone: the
//     mean-squared loss increased over the solve. The computed factors are
//     still returned alongside the error for inspection.
var (
	// ErrBadOption indicates an Options field outside its documented domain.
	ErrBadOption = errors.New("seminmf: invalid option value")

	// ErrNumericDivergence indicates the reconstruction loss increased where
	// monotonic non-increase is expected — a numeric-stability defect, not a
	// convergence failure (solvers never fail on slow convergence).
	ErrNumericDivergence = errors.New("seminmf: reconstruction loss increased")
)

const (
	opSemiNMF       = "SemiNMF"
	opNonlinSemiNMF = "NonlinSemiNMF"
	opSoftmaxNMF    = "SoftmaxNMF"
)

// solveErrorf tags an underlying error with the solver entry point.
func solveErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// SemiNMF factorizes a ≈ u·v and returns the updated factor pair.
//
// Shapes: a (m×n), u (m×k), v (k×n) — or (k+1)×n with Options.UseBias.
// Inputs are never mutated; outputs are freshly allocated. A nil opts
// selects DefaultOptions.
//
// Contract: mean((a-U·V)²) after the solve is ≤ its value before, for at
// least one full alternation.
func SemiNMF(a, u, v *mat.Dense, opts *Options) (*mat.Dense, *mat.Dense, error) {
	o, err := opts.validate()
	if err != nil {
		return nil, nil, solveErrorf(opSemiNMF, err)
	}
	if err = matutil.ValidateFactorShapes(a, u, v, biasRows(o)); err != nil {
		return nil, nil, solveErrorf(opSemiNMF, err)
	}

	curU, vTop, biasRow := splitFactors(u, v, o.UseBias)
	aEff := subtractRowOffset(a, biasRow)

	var lossBefore float64
	if o.CheckMonotone {
		lossBefore = reconLoss(aEff, curU, vTop)
	}

	for t := 0; t < o.NumIters; t++ {
		// Phase 1: V to its unconstrained least-squares optimum.
		if vTop, err = matutil.SolveRight(curU, aEff, o.Ridge); err != nil {
			return nil, nil, solveErrorf(opSemiNMF, err)
		}
		// Phase 2: U likewise, then the nonnegativity floor.
		var newU *mat.Dense
		if newU, err = matutil.SolveLeft(vTop, aEff, o.Ridge); err != nil {
			return nil, nil, solveErrorf(opSemiNMF, err)
		}
		curU = matutil.ProjectFloor(newU, o.Eps)
	}

	outV := stackBias(vTop, biasRow)
	if o.CheckMonotone {
		if lossAfter := reconLoss(aEff, curU, vTop); diverged(lossBefore, lossAfter) {
			return curU, outV, solveErrorf(opSemiNMF, ErrNumericDivergence)
		}
	}

	return curU, outV, nil
}

// ---------- shared alternation internals ----------

// biasRows maps the bias flag onto the extra V row count used by the
// entry-contract validator.
func biasRows(o Options) int {
	if o.UseBias {
		return 1
	}

	return 0
}

// splitFactors copies the working factors out of the caller-owned inputs.
// With useBias, v's last row is detached as the fixed offset vector.
// ValidateFactorShapes has already guaranteed v has k+1 ≥ 2 rows then.
func splitFactors(u, v *mat.Dense, useBias bool) (curU, vTop *mat.Dense, biasRow []float64) {
	curU = mat.DenseCopyOf(u)
	if !useBias {
		return curU, mat.DenseCopyOf(v), nil
	}

	vr, vc := v.Dims()
	vTop = mat.DenseCopyOf(v.Slice(0, vr-1, 0, vc))
	biasRow = make([]float64, vc)
	copy(biasRow, v.RawRowView(vr-1))

	return curU, vTop, biasRow
}

// subtractRowOffset returns a with row broadcast-subtracted from every row.
// A nil row returns a itself (callers treat the result as read-only).
func subtractRowOffset(a *mat.Dense, row []float64) *mat.Dense {
	if row == nil {
		return a
	}

	r, c := a.Dims()
	out := mat.NewDense(r, c, nil)
	var i, j int
	for i = 0; i < r; i++ {
		src := a.RawRowView(i)
		dst := out.RawRowView(i)
		for j = 0; j < c; j++ {
			dst[j] = src[j] - row[j]
		}
	}

	return out
}

// addRowOffset adds row to every row of m in place. No-op for a nil row.
func addRowOffset(m *mat.Dense, row []float64) {
	if row == nil {
		return
	}

	r, c := m.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		dst := m.RawRowView(i)
		for j = 0; j < c; j++ {
			dst[j] += row[j]
		}
	}
}

// stackBias reattaches the detached offset row under vTop. The row is
// returned verbatim — reassembly never rescales or projects it.
func stackBias(vTop *mat.Dense, biasRow []float64) *mat.Dense {
	if biasRow == nil {
		return vTop
	}

	r, c := vTop.Dims()
	out := mat.NewDense(r+1, c, nil)
	out.Slice(0, r, 0, c).(*mat.Dense).Copy(vTop)
	out.SetRow(r, biasRow)

	return out
}

// reconLoss reports mean((target - u·v)²). Shapes are pre-validated, so the
// loss error path is unreachable here.
func reconLoss(target, u, v *mat.Dense) float64 {
	ur, _ := u.Dims()
	_, vc := v.Dims()
	recon := mat.NewDense(ur, vc, nil)
	recon.Mul(u, v)
	loss, _ := matutil.Loss(target, recon, matutil.MeanSquared)

	return loss
}

// diverged applies a small relative slack so floating-point noise on an
// essentially flat loss is not reported as divergence.
func diverged(before, after float64) bool {
	return after > before+before*1e-9+1e-12
}

package seminmf

import (
	"github.com/katalvlaran/nmfkit/matutil"
	"gonum.org/v1/gonum/mat"
)

// NonlinSemiNMF — nonlinear semi-nonnegative matrix factorization
//
// Description:
//
//	As SemiNMF, but the reconstruction is passed through a fixed monotone
//	activation before comparison: minimize ‖A − f(U·V)‖F with f = ReLU (or
//	Identity, which degenerates to the plain solver).
//
//	Least squares cannot be solved directly through the nonlinearity, so
//	each phase regresses against a one-sided substitute target T built from
//	the current reconstruction R = U·V (+ bias offset):
//	  - where R > 0 the rectifier is the identity, so T = A exactly;
//	  - where R was clamped to zero, T keeps min(R, 0) — a value "not worse
//	    than zero", leaving already-consistent entries unpenalized.
//	The V update solves against T with U fixed; the U update rebuilds T
//	from the fresh V, solves, and floor-clamps. This target substitution is
//	a known approximation of the activation inverse, not an exact inverse;
//	only the aggregate loss-decrease property is contractual.
//
// Iteration budgets:
//
//	NumCalcU and NumCalcV gate their factor's update to the first N outer
//	iterations independently. A budget of 0 skips that factor for the whole
//	solve — with NumCalcV == 0 the returned V is elementwise bitwise-equal
//	to the input (never a zero matrix), while U still updates.
//
// Errors: identical surface to SemiNMF (ErrBadOption, shape sentinels,
// opt-in ErrNumericDivergence measured on f(U·V)).
func NonlinSemiNMF(a, u, v *mat.Dense, opts *Options) (*mat.Dense, *mat.Dense, error) {
	o, err := opts.validate()
	if err != nil {
		return nil, nil, solveErrorf(opNonlinSemiNMF, err)
	}
	if err = matutil.ValidateFactorShapes(a, u, v, biasRows(o)); err != nil {
		return nil, nil, solveErrorf(opNonlinSemiNMF, err)
	}

	curU, vTop, biasRow := splitFactors(u, v, o.UseBias)

	var lossBefore float64
	if o.CheckMonotone {
		lossBefore = activatedLoss(a, curU, vTop, biasRow, o.Activation)
	}

	for t := 0; t < o.NumIters; t++ {
		if t < o.NumCalcV {
			target := onesidedTarget(a, curU, vTop, biasRow, o.Activation)
			if vTop, err = matutil.SolveRight(curU, target, o.Ridge); err != nil {
				return nil, nil, solveErrorf(opNonlinSemiNMF, err)
			}
		}
		if t < o.NumCalcU {
			// Rebuild the target from the fresh V before the mirrored solve.
			target := onesidedTarget(a, curU, vTop, biasRow, o.Activation)
			var newU *mat.Dense
			if newU, err = matutil.SolveLeft(vTop, target, o.Ridge); err != nil {
				return nil, nil, solveErrorf(opNonlinSemiNMF, err)
			}
			curU = matutil.ProjectFloor(newU, o.Eps)
		}
	}

	outV := stackBias(vTop, biasRow)
	if o.CheckMonotone {
		if lossAfter := activatedLoss(a, curU, vTop, biasRow, o.Activation); diverged(lossBefore, lossAfter) {
			return curU, outV, solveErrorf(opNonlinSemiNMF, ErrNumericDivergence)
		}
	}

	return curU, outV, nil
}

// onesidedTarget builds the substitute regression target for the bilinear
// part U·V_top, already adjusted for the fixed bias offset:
//
//	T[i,j] = A[i,j]            where R[i,j] > 0 (activation acts as identity)
//	T[i,j] = min(R[i,j], 0)    where the rectifier clamped the entry
//
// with R the full reconstruction U·V_top + 1·biasRow. Identity activation
// short-circuits to the offset-adjusted A.
func onesidedTarget(a, u, vTop *mat.Dense, biasRow []float64, act Activation) *mat.Dense {
	if act == Identity {
		return subtractRowOffset(a, biasRow)
	}

	ur, _ := u.Dims()
	_, vc := vTop.Dims()
	recon := mat.NewDense(ur, vc, nil)
	recon.Mul(u, vTop)
	addRowOffset(recon, biasRow)

	out := mat.NewDense(ur, vc, nil)
	var i, j int
	var rv float64
	for i = 0; i < ur; i++ {
		aRow := a.RawRowView(i)
		rRow := recon.RawRowView(i)
		oRow := out.RawRowView(i)
		for j = 0; j < vc; j++ {
			rv = rRow[j]
			if rv > 0 {
				oRow[j] = aRow[j]
			} else {
				oRow[j] = rv // min(rv, 0): rv ≤ 0 in this branch
			}
		}
	}

	return subtractRowOffset(out, biasRow)
}

// activatedLoss reports mean((a - f(U·V_top + 1·biasRow))²).
func activatedLoss(a, u, vTop *mat.Dense, biasRow []float64, act Activation) float64 {
	ur, _ := u.Dims()
	_, vc := vTop.Dims()
	recon := mat.NewDense(ur, vc, nil)
	recon.Mul(u, vTop)
	addRowOffset(recon, biasRow)
	loss, _ := matutil.Loss(a, act.apply(recon), matutil.MeanSquared)

	return loss
}

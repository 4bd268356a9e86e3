package seminmf

import (
	"github.com/katalvlaran/nmfkit/matutil"
	"gonum.org/v1/gonum/mat"
)

// SoftmaxNMF — simplex-constrained semi-nonnegative matrix factorization
//
// Description:
//
//	Identical alternation to SemiNMF, except the post-update projector for
//	U is the exact Euclidean projection onto the probability simplex
//	instead of a plain nonnegativity floor: after every U update, each row
//	of U is nonnegative and sums to 1. This models U as categorical
//	mixture weights over the k latent components rather than arbitrary
//	nonnegative activations.
//
// Invariant: every row of the returned U sums to 1 within floating
// tolerance — all rows, not merely one (the strict contract).
//
// Bias mode and the error surface match SemiNMF.
func SoftmaxNMF(a, u, v *mat.Dense, opts *Options) (*mat.Dense, *mat.Dense, error) {
	o, err := opts.validate()
	if err != nil {
		return nil, nil, solveErrorf(opSoftmaxNMF, err)
	}
	if err = matutil.ValidateFactorShapes(a, u, v, biasRows(o)); err != nil {
		return nil, nil, solveErrorf(opSoftmaxNMF, err)
	}

	curU, vTop, biasRow := splitFactors(u, v, o.UseBias)
	aEff := subtractRowOffset(a, biasRow)

	var lossBefore float64
	if o.CheckMonotone {
		lossBefore = reconLoss(aEff, curU, vTop)
	}

	for t := 0; t < o.NumIters; t++ {
		if vTop, err = matutil.SolveRight(curU, aEff, o.Ridge); err != nil {
			return nil, nil, solveErrorf(opSoftmaxNMF, err)
		}
		var newU *mat.Dense
		if newU, err = matutil.SolveLeft(vTop, aEff, o.Ridge); err != nil {
			return nil, nil, solveErrorf(opSoftmaxNMF, err)
		}
		// Mixture-weight constraint instead of the plain floor.
		curU = matutil.ProjectSimplexRows(newU)
	}

	outV := stackBias(vTop, biasRow)
	if o.CheckMonotone {
		if lossAfter := reconLoss(aEff, curU, vTop); diverged(lossBefore, lossAfter) {
			return curU, outV, solveErrorf(opSoftmaxNMF, ErrNumericDivergence)
		}
	}

	return curU, outV, nil
}

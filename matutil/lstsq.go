// SPDX-License-Identifier: MIT
// Package matutil — regularized least-squares factor updates.
//
// This is the computational heart of the alternating solvers: with one
// factor held fixed, the other jumps to its least-squares optimum in a
// single closed-form step (pseudoinverse), instead of taking a small
// gradient step. Singularity never surfaces as an error: the Gram matrix is
// always ridge-regularized, and an SVD pseudoinverse backs the solve.

package matutil

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opPinv       = "Pinv"
	opSolveRight = "SolveRight"
	opSolveLeft  = "SolveLeft"
)

// DefaultRidge is the Gram-diagonal regularizer used when callers pass a
// non-positive ridge. Small enough not to bias well-conditioned solves,
// large enough to keep rank-deficient Grams invertible.
const DefaultRidge = 1e-9

// ridgeEscalations bounds how often the ridge term is grown (×100 per step)
// before falling back to the SVD pseudoinverse.
const ridgeEscalations = 3

// Pinv computes a regularized pseudoinverse of f.
//
// Implementation:
//   - Stage 1: pick the smaller Gram. For tall f (r ≥ c) solve
//     (fᵀf + λI)·X = fᵀ, giving the left pseudoinverse; for wide f solve
//     (f·fᵀ + λI)·Y = f and return Yᵀ, the right pseudoinverse.
//   - Stage 2: on a failed solve, escalate λ by ×100 up to ridgeEscalations
//     times.
//   - Stage 3: final fallback — thin SVD pseudoinverse V·S⁺·Uᵀ with singular
//     values below tolerance zeroed.
//
// Behavior highlights:
//   - A rank-deficient f is NOT an error: the ridge term keeps the Gram
//     invertible and the SVD path guarantees a result exists.
//   - f is never mutated; the result is freshly allocated, shape c×r.
//
// Inputs:
//   - f: non-nil dense matrix (r×c).
//   - ridge: Gram-diagonal regularizer λ; values ≤ 0 select DefaultRidge.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNumericFailure (SVD fallback failed;
//     structurally unreachable for finite inputs).
//
// Complexity:
//   - Time O(min(r,c)³ + r·c·min(r,c)), Space O(min(r,c)² + r·c).
func Pinv(f *mat.Dense, ridge float64) (*mat.Dense, error) {
	if err := ValidateNotNil(f); err != nil {
		return nil, opErrorf(opPinv, err)
	}
	if ridge <= 0 {
		ridge = DefaultRidge
	}

	r, c := f.Dims()
	lambda := ridge
	for attempt := 0; attempt < ridgeEscalations; attempt++ {
		if p, err := pinvGram(f, r, c, lambda); err == nil {
			return p, nil
		}
		lambda *= 100 // grow the ridge and retry
	}

	// SVD pseudoinverse: exact minimal-norm fallback.
	p, err := pinvSVD(f)
	if err != nil {
		return nil, opErrorf(opPinv, err)
	}

	return p, nil
}

// pinvGram solves the ridge-regularized normal equations on the smaller
// Gram matrix. Returns the c×r pseudoinverse or the solve error.
func pinvGram(f *mat.Dense, r, c int, lambda float64) (*mat.Dense, error) {
	var gram *mat.Dense
	var i int
	if r >= c {
		// Tall: (fᵀf + λI) X = fᵀ  →  X = f⁺ (c×r).
		gram = mat.NewDense(c, c, nil)
		gram.Mul(f.T(), f)
		for i = 0; i < c; i++ {
			gram.Set(i, i, gram.At(i, i)+lambda)
		}
		x := mat.NewDense(c, r, nil)
		if err := x.Solve(gram, f.T()); err != nil {
			return nil, err
		}

		return x, nil
	}

	// Wide: (f·fᵀ + λI) Y = f  →  f⁺ = Yᵀ (c×r).
	gram = mat.NewDense(r, r, nil)
	gram.Mul(f, f.T())
	for i = 0; i < r; i++ {
		gram.Set(i, i, gram.At(i, i)+lambda)
	}
	y := mat.NewDense(r, c, nil)
	if err := y.Solve(gram, f); err != nil {
		return nil, err
	}

	return mat.DenseCopyOf(y.T()), nil
}

// pinvSVD builds the Moore-Penrose pseudoinverse from a thin SVD,
// zeroing singular values below max(r,c)·s₀·2⁻⁵².
func pinvSVD(f *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(f, mat.SVDThin); !ok {
		return nil, ErrNumericFailure
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	r, c := f.Dims()
	maxDim := r
	if c > maxDim {
		maxDim = c
	}
	tol := float64(maxDim) * s[0] * 2.220446049250313e-16
	inv := make([]float64, len(s))
	for i, si := range s {
		if si > tol {
			inv[i] = 1 / si
		}
	}

	var p mat.Dense
	p.Product(&v, mat.NewDiagDense(len(s), inv), u.T())

	return mat.DenseCopyOf(&p), nil
}

// SolveRight returns the X minimizing ‖target − fixed·X‖F:
// X = pinv(fixed)·target.
//
// Shapes: fixed (m×k), target (m×n) → X (k×n).
// Errors: ErrNilMatrix, ErrShapeMismatch (row counts differ), plus Pinv
// failures. fixed and target are never mutated.
// Complexity: dominated by Pinv plus one k×m·m×n product.
func SolveRight(fixed, target *mat.Dense, ridge float64) (*mat.Dense, error) {
	if err := ValidateNotNil(fixed); err != nil {
		return nil, opErrorf(opSolveRight, err)
	}
	if err := ValidateNotNil(target); err != nil {
		return nil, opErrorf(opSolveRight, err)
	}
	fr, _ := fixed.Dims()
	tr, tc := target.Dims()
	if fr != tr {
		return nil, opErrorf(opSolveRight, ErrShapeMismatch)
	}

	p, err := Pinv(fixed, ridge)
	if err != nil {
		return nil, err
	}
	_, k := fixed.Dims()
	x := mat.NewDense(k, tc, nil)
	x.Mul(p, target)

	return x, nil
}

// SolveLeft returns the X minimizing ‖target − X·fixed‖F:
// X = target·pinv(fixed).
//
// Shapes: fixed (k×n), target (m×n) → X (m×k).
// Errors: ErrNilMatrix, ErrShapeMismatch (column counts differ), plus Pinv
// failures. fixed and target are never mutated.
// Complexity: dominated by Pinv plus one m×n·n×k product.
func SolveLeft(fixed, target *mat.Dense, ridge float64) (*mat.Dense, error) {
	if err := ValidateNotNil(fixed); err != nil {
		return nil, opErrorf(opSolveLeft, err)
	}
	if err := ValidateNotNil(target); err != nil {
		return nil, opErrorf(opSolveLeft, err)
	}
	_, fc := fixed.Dims()
	tr, tc := target.Dims()
	if fc != tc {
		return nil, opErrorf(opSolveLeft, ErrShapeMismatch)
	}

	p, err := Pinv(fixed, ridge)
	if err != nil {
		return nil, err
	}
	k, _ := fixed.Dims()
	x := mat.NewDense(tr, k, nil)
	x.Mul(target, p)

	return x, nil
}

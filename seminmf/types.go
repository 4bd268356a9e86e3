// Package seminmf defines options and activation capabilities for the
// factorization solvers.
package seminmf

import (
	"github.com/katalvlaran/nmfkit/matutil"
	"gonum.org/v1/gonum/mat"
)

// Activation selects the fixed monotone nondecreasing function applied to
// the reconstruction U·V before comparison to A (NonlinSemiNMF only).
//
//   - Identity — no nonlinearity; the solver degenerates to plain semi-NMF.
//   - ReLU     — rectifier max(x, 0); clamped entries are handled by the
//     one-sided regression target (see NonlinSemiNMF).
type Activation int

const (
	// Identity applies no nonlinearity to the reconstruction.
	Identity Activation = iota

	// ReLU rectifies the reconstruction elementwise: max(x, 0).
	ReLU
)

// apply returns the activation of m as a fresh matrix.
func (act Activation) apply(m *mat.Dense) *mat.Dense {
	if act == ReLU {
		return matutil.ProjectNonneg(m)
	}

	return mat.DenseCopyOf(m)
}

// Options configures a factorization solve.
//
// Fields:
//   - UseBias    — V carries one extra caller-supplied constant row (ones);
//     it acts as a fixed affine offset and is never recomputed.
//   - NumIters   — outer alternations to run (fixed count, no convergence
//     test). Must be ≥ 1.
//   - NumCalcU   — NonlinSemiNMF only: the U update runs during the first
//     NumCalcU outer iterations; 0 skips U for the whole solve.
//   - NumCalcV   — NonlinSemiNMF only: same gate for the V update. With 0,
//     V is returned bitwise-equal to the input.
//   - Activation — NonlinSemiNMF only: Identity or ReLU.
//   - Ridge      — Gram-diagonal regularizer for the least-squares solves;
//     ≤ 0 selects matutil.DefaultRidge.
//   - Eps        — nonnegativity floor for projected U entries; must be ≥ 0.
//     The default keeps projected entries strictly positive.
//   - CheckMonotone — measure the loss before and after the solve and
//     report ErrNumericDivergence if it increased (factors are still
//     returned for inspection).
type Options struct {
	UseBias       bool
	NumIters      int
	NumCalcU      int
	NumCalcV      int
	Activation    Activation
	Ridge         float64
	Eps           float64
	CheckMonotone bool
}

// DefaultEps is the default nonnegativity floor applied after U updates.
const DefaultEps = 1e-9

// DefaultOptions returns the canonical single-alternation configuration:
// one outer iteration, both factor budgets enabled, ReLU activation,
// default ridge and floor, monotonicity check off.
func DefaultOptions() Options {
	return Options{
		NumIters:   1,
		NumCalcU:   1,
		NumCalcV:   1,
		Activation: ReLU,
		Ridge:      matutil.DefaultRidge,
		Eps:        DefaultEps,
	}
}

// validate normalizes opts (nil → defaults) and rejects unusable fields.
func (o *Options) validate() (Options, error) {
	if o == nil {
		return DefaultOptions(), nil
	}
	opts := *o
	if opts.NumIters < 1 {
		return opts, ErrBadOption
	}
	if opts.NumCalcU < 0 || opts.NumCalcV < 0 {
		return opts, ErrBadOption
	}
	if opts.Eps < 0 {
		return opts, ErrBadOption
	}
	if opts.Activation != Identity && opts.Activation != ReLU {
		return opts, ErrBadOption
	}
	if opts.Ridge <= 0 {
		opts.Ridge = matutil.DefaultRidge
	}

	return opts, nil
}

// Package seminmf implements semi-nonnegative matrix factorization by
// alternating exact least-squares solves, with nonlinear (ReLU) and
// simplex-constrained (softmax) variants.
//
// 🚀 What is semi-NMF?
//
//	Fit A ≈ U·V where U is nonnegative but V may take any sign. Each outer
//	iteration alternates two closed-form updates:
//	  • solve V — unconstrained least squares with U fixed
//	  • solve U — least squares with V fixed, then a constraint projection
//	Used to fit linear/nonlinear layers without gradients: every update
//	jumps straight to the least-squares optimum of its factor.
//
// ✨ Variants:
//   - SemiNMF       — plain: U floored at a small ε (strictly positive)
//   - NonlinSemiNMF — compares ReLU(U·V) to A via one-sided regression
//     targets; independent per-factor iteration budgets
//   - SoftmaxNMF    — rows of U projected onto the probability simplex
//     (categorical mixture weights)
//
// ⚙️ Usage:
//
//	opts := seminmf.DefaultOptions()
//	opts.NumIters = 3
//	u2, v2, err := seminmf.SemiNMF(a, u, v, &opts)
//
// Bias mode (opts.UseBias): pass V with one extra, caller-supplied constant
// row (conventionally all ones). The solvers treat that row as a fixed
// affine offset — it is subtracted from A before every least-squares step
// and returned byte-identical, never recomputed or projected.
//
// Contracts:
//   - Solvers are pure: inputs are never mutated, outputs freshly allocated.
//   - Termination is a fixed iteration count; loss never drives the loop.
//   - Mean-squared reconstruction loss is non-increasing over a full
//     alternation; enable Options.CheckMonotone to have a violation
//     reported as ErrNumericDivergence instead of silently ignored.
//
// Performance: each iteration costs one regularized Gram solve per factor
// (on the smaller Gram dimension) plus the dense products — see
// matutil.Pinv for details.
package seminmf

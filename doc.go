// Package nmfkit is a family of semi-nonnegative matrix-factorization
// solvers: fit A ≈ U·V under structural constraints, without gradients.
//
// 🚀 What is nmfkit?
//
//	A small, deterministic library that decomposes a target matrix A into
//	factors U and V by alternating exact least-squares solves:
//		• Semi-NMF:  U ≥ 0, V unconstrained
//		• Nonlinear: compare ReLU(U·V) to A (one-sided regression targets)
//		• Softmax:   rows of U constrained to the probability simplex
//		• Bias mode: a fixed all-ones row of V emulates an affine term
//
// ✨ Why choose nmfkit?
//
//   - Closed-form updates – each factor jumps to its least-squares optimum;
//     no learning rates, no step-size tuning
//   - Always solvable – ridge regularization plus an SVD fallback mean a
//     rank-deficient factor never aborts a solve
//   - Pure functions – callers own every matrix; solvers never mutate inputs
//   - Built on gonum – dense kernels, solves and SVD from gonum.org/v1/gonum
//
// Everything is organized under three subpackages:
//
//	matutil/ — norms & losses, projections (nonnegative, simplex), bias
//	           augmentation, regularized least-squares factor solves
//	seminmf/ — the three alternating solvers + Options
//	matio/   — named matrix archives for test fixtures (a, u, v triples)
//
// Dive into seminmf/example_test.go for runnable end-to-end examples.
//
//	go get github.com/katalvlaran/nmfkit
package nmfkit

// Package matutil provides the shared numeric utilities under the nmfkit
// solvers: norms & losses, constraint projections, bias augmentation and
// regularized least-squares factor solves over gonum dense matrices.
//
// 🚀 What is matutil?
//
//	The leaf toolbox every solver alternation is built from:
//	  • Loss / FrobeniusNorm — reconstruction-error reporting
//	  • ProjectNonneg / ProjectFloor — sign-constraint clamps
//	  • AugmentRows/Cols, StripLastRow/Col — affine-bias emulation
//	  • ProjectSimplexRows — exact Euclidean simplex projection
//	  • Pinv, SolveRight, SolveLeft — one-shot least-squares factor updates
//
// ✨ Key properties:
//   - No panics on user input – every operation validates shapes and returns
//     package sentinel errors matched via errors.Is
//   - Pure – inputs are never mutated; results are freshly allocated
//   - Always solvable – Pinv escalates a ridge term and finally falls back
//     to an SVD pseudoinverse, so a rank-deficient factor never errors
//   - Deterministic – fixed loop orders, no map iteration
//
// Performance:
//
//   - Loss, projections, augmentation: O(r·c)
//   - ProjectSimplexRows: O(r·c·log c)
//   - Pinv/Solve*: one Gram solve on the smaller dimension, O(min(r,c)³)
//     plus the O(r·c·min(r,c)) products
//
// See lstsq.go for the factor-update contracts used by package seminmf.
package matutil

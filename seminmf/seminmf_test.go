package seminmf_test

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/nmfkit/matio"
	"github.com/katalvlaran/nmfkit/matutil"
	"github.com/katalvlaran/nmfkit/seminmf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// randDense fills an r×c matrix with uniform draws from [lo, hi).
func randDense(rng *rand.Rand, r, c int, lo, hi float64) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = lo + rng.Float64()*(hi-lo)
	}

	return mat.NewDense(r, c, data)
}

// reconLoss is the mean-squared reconstruction loss used by the contracts.
func reconLoss(t *testing.T, a, u, v *mat.Dense) float64 {
	t.Helper()
	ur, _ := u.Dims()
	_, vc := v.Dims()
	recon := mat.NewDense(ur, vc, nil)
	recon.Mul(u, v)
	loss, err := matutil.Loss(a, recon, matutil.MeanSquared)
	require.NoError(t, err)

	return loss
}

// TestSemiNMF_LossDecreasesAndPositive runs a single alternation on random
// factors and checks the two defining guarantees: strictly positive U and
// non-increased loss.
func TestSemiNMF_LossDecreasesAndPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	a := randDense(rng, 120, 40, -1, 1)
	u := randDense(rng, 120, 60, 0, 1)
	v := randDense(rng, 60, 40, -1, 1)
	oldLoss := reconLoss(t, a, u, v)

	opts := seminmf.DefaultOptions()
	u2, v2, err := seminmf.SemiNMF(a, u, v, &opts)
	require.NoError(t, err)

	assert.Greater(t, mat.Min(u2), 0.0, "updated U must be strictly positive")
	assert.Less(t, reconLoss(t, a, u2, v2), oldLoss, "loss must not increase over a full alternation")
}

// TestSemiNMF_LargeShapes exercises a wide over-complete factorization:
// a (1000×100) in [-1,1], u (1000×2000) in [0,1], v (2000×100) in [-1,1].
func TestSemiNMF_LargeShapes(t *testing.T) {
	if testing.Short() {
		t.Skip("large dense solve; skipped with -short")
	}

	rng := rand.New(rand.NewSource(1))
	a := randDense(rng, 1000, 100, -1, 1)
	u := randDense(rng, 1000, 2000, 0, 1)
	v := randDense(rng, 2000, 100, -1, 1)
	oldLoss := reconLoss(t, a, u, v)

	u2, v2, err := seminmf.SemiNMF(a, u, v, nil)
	require.NoError(t, err)

	assert.Greater(t, mat.Min(u2), 0.0, "min(U') must be > 0")
	assert.Less(t, reconLoss(t, a, u2, v2), oldLoss, "new loss must be below old loss")
}

// TestSemiNMF_Biased_ConstantRowUntouched verifies the bias contract: the
// caller-supplied all-ones row of the augmented V is returned byte-identical
// and the augmented reconstruction loss still drops.
func TestSemiNMF_Biased_ConstantRowUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	a := randDense(rng, 100, 50, -1, 1)
	u := randDense(rng, 100, 30, 0, 1)
	v := randDense(rng, 30, 50, -1, 1)
	biasV := matutil.AugmentRows(v)

	biasU0 := matutil.AugmentCols(u)
	oldLoss := reconLoss(t, a, biasU0, biasV)

	opts := seminmf.DefaultOptions()
	opts.UseBias = true
	opts.NumIters = 2
	u2, v2, err := seminmf.SemiNMF(a, u, biasV, &opts)
	require.NoError(t, err)

	vr, vc := v2.Dims()
	assert.Equal(t, 31, vr, "augmented row count preserved")
	for j := 0; j < vc; j++ {
		assert.Equal(t, 1.0, v2.At(vr-1, j), "constant row must be un-recomputed, exactly ones")
	}

	biasU2 := matutil.AugmentCols(u2)
	assert.Greater(t, mat.Min(u2), 0.0)
	assert.Less(t, reconLoss(t, a, biasU2, v2), oldLoss, "biased loss must drop")
}

// TestSemiNMF_ShapeMismatch checks the entry contract fails fast with the
// sentinel and without partial results.
func TestSemiNMF_ShapeMismatch(t *testing.T) {
	a := mat.NewDense(10, 5, nil)
	u := mat.NewDense(10, 3, nil)
	v := mat.NewDense(4, 5, nil) // k mismatch: 3 vs 4

	u2, v2, err := seminmf.SemiNMF(a, u, v, nil)
	assert.ErrorIs(t, err, matutil.ErrShapeMismatch)
	assert.Nil(t, u2, "no partial results on failure")
	assert.Nil(t, v2, "no partial results on failure")
}

// TestSemiNMF_BadOption rejects a zero iteration count on explicit options.
func TestSemiNMF_BadOption(t *testing.T) {
	opts := seminmf.DefaultOptions()
	opts.NumIters = 0

	_, _, err := seminmf.SemiNMF(mat.NewDense(2, 2, nil), mat.NewDense(2, 2, nil), mat.NewDense(2, 2, nil), &opts)
	assert.ErrorIs(t, err, seminmf.ErrBadOption)
}

// TestSemiNMF_InputsNotMutated pins the pure-function contract.
func TestSemiNMF_InputsNotMutated(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	a := randDense(rng, 40, 20, -1, 1)
	u := randDense(rng, 40, 10, 0, 1)
	v := randDense(rng, 10, 20, -1, 1)
	aCopy := mat.DenseCopyOf(a)
	uCopy := mat.DenseCopyOf(u)
	vCopy := mat.DenseCopyOf(v)

	_, _, err := seminmf.SemiNMF(a, u, v, nil)
	require.NoError(t, err)

	assert.True(t, mat.Equal(aCopy, a), "a must not be mutated")
	assert.True(t, mat.Equal(uCopy, u), "u must not be mutated")
	assert.True(t, mat.Equal(vCopy, v), "v must not be mutated")
}

// TestSemiNMF_CheckMonotone enables the divergence guard on a well-posed
// solve and expects it to stay silent.
func TestSemiNMF_CheckMonotone(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	a := randDense(rng, 80, 30, -1, 1)
	u := randDense(rng, 80, 40, 0, 1)
	v := randDense(rng, 40, 30, -1, 1)

	opts := seminmf.DefaultOptions()
	opts.CheckMonotone = true
	opts.NumIters = 3
	_, _, err := seminmf.SemiNMF(a, u, v, &opts)
	assert.NoError(t, err, "monotone alternation must not report divergence")
}

// TestSemiNMF_FromArchiveFixture loads an (a, u, v) triple from a named
// matrix archive and solves it, covering the fixture path end to end.
func TestSemiNMF_FromArchiveFixture(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	path := filepath.Join(t.TempDir(), "fixture.gob")
	require.NoError(t, matio.Save(path, map[string]*mat.Dense{
		"a": randDense(rng, 60, 25, -1, 1),
		"u": randDense(rng, 60, 30, 0, 1),
		"v": randDense(rng, 30, 25, -1, 1),
	}))

	a, u, v, err := matio.LoadTriple(path)
	require.NoError(t, err)
	oldLoss := reconLoss(t, a, u, v)

	u2, v2, err := seminmf.SemiNMF(a, u, v, nil)
	require.NoError(t, err)
	assert.Less(t, reconLoss(t, a, u2, v2), oldLoss)
}

package matio_test

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/nmfkit/matio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestArchive_RoundTrip verifies a saved triple loads bitwise-equal.
func TestArchive_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	mk := func(r, c int) *mat.Dense {
		data := make([]float64, r*c)
		for i := range data {
			data[i] = rng.NormFloat64()
		}

		return mat.NewDense(r, c, data)
	}
	a, u, v := mk(6, 4), mk(6, 3), mk(3, 4)

	path := filepath.Join(t.TempDir(), "triple.gob")
	require.NoError(t, matio.Save(path, map[string]*mat.Dense{"a": a, "u": u, "v": v}))

	la, lu, lv, err := matio.LoadTriple(path)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, la), "a must round-trip exactly")
	assert.True(t, mat.Equal(u, lu), "u must round-trip exactly")
	assert.True(t, mat.Equal(v, lv), "v must round-trip exactly")
}

// TestLoadTriple_FieldMissing ensures an archive without the conventional
// names is rejected with ErrFieldMissing.
func TestLoadTriple_FieldMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.gob")
	only := map[string]*mat.Dense{"a": mat.NewDense(2, 2, nil)}
	require.NoError(t, matio.Save(path, only))

	_, _, _, err := matio.LoadTriple(path)
	assert.ErrorIs(t, err, matio.ErrFieldMissing)
}

// TestLoad_MissingFile surfaces the underlying I/O error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := matio.Load(filepath.Join(t.TempDir(), "nope.gob"))
	assert.Error(t, err)
}

package perm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/quantalab/qisom/perm"
)

// TestSampleThetas_Deterministic verifies that identical inputs and
// identically seeded sources reproduce the exact same draws.
func TestSampleThetas_Deterministic(t *testing.T) {
	v := []float64{0.2, 1.5, 2.9, math.Pi, 0}

	a, err := perm.SampleThetas(v, 8, rand.NewSource(42))
	require.NoError(t, err)
	b, err := perm.SampleThetas(v, 8, rand.NewSource(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := perm.SampleThetas(v, 8, rand.NewSource(43))
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "a different seed must give different draws")
}

// TestSampleThetas_BinaryValues verifies that every sampled element is
// exactly 0 or π.
func TestSampleThetas_BinaryValues(t *testing.T) {
	v := []float64{0.4, 1.1, 2.2, 3.0, 0.77}
	samples, err := perm.SampleThetas(v, 16, rand.NewSource(7))
	require.NoError(t, err)
	require.Len(t, samples, 16)

	for s, row := range samples {
		require.Len(t, row, len(v), "sample %d", s)
		for k, x := range row {
			assert.True(t, x == 0 || x == math.Pi, "sample %d element %d = %v", s, k, x)
		}
	}
}

// TestSampleThetas_ExtremeProbabilities verifies the sure cases: an exact
// even multiple of π always snaps to 0, an exact odd multiple always to π.
func TestSampleThetas_ExtremeProbabilities(t *testing.T) {
	v := []float64{0, 2 * math.Pi, math.Pi, -math.Pi}
	samples, err := perm.SampleThetas(v, 32, rand.NewSource(1))
	require.NoError(t, err)

	for _, row := range samples {
		assert.Zero(t, row[0])
		assert.Zero(t, row[1])
		assert.Equal(t, math.Pi, row[2])
		assert.Equal(t, math.Pi, row[3])
	}
}

// TestSampleThetas_CountValidation verifies the n ≥ 1 contract.
func TestSampleThetas_CountValidation(t *testing.T) {
	_, err := perm.SampleThetas([]float64{1}, 0, rand.NewSource(1))
	assert.ErrorIs(t, err, perm.ErrSampleCount)

	_, err = perm.SampleThetas([]float64{1}, -3, rand.NewSource(1))
	assert.ErrorIs(t, err, perm.ErrSampleCount)
}

// TestSampleThetas_NilSource verifies that a nil source still works (a
// fresh time-derived seed is used instead).
func TestSampleThetas_NilSource(t *testing.T) {
	samples, err := perm.SampleThetas([]float64{math.Pi / 2}, 4, nil)
	require.NoError(t, err)
	require.Len(t, samples, 4)
	for _, row := range samples {
		assert.True(t, row[0] == 0 || row[0] == math.Pi)
	}
}

// TestSampleThetasMap_KeysAndDeterminism verifies the map twin: keys are
// preserved, draws are reproducible, and they match the slice entry point
// over the sorted key order.
func TestSampleThetasMap_KeysAndDeterminism(t *testing.T) {
	v := map[string]float64{
		"t[0]": 0.2,
		"t[1]": 1.5,
		"t[2]": 2.9,
	}

	a, err := perm.SampleThetasMap(v, 6, rand.NewSource(99))
	require.NoError(t, err)
	require.Len(t, a, 6)
	for _, m := range a {
		require.Len(t, m, 3)
		for k, x := range m {
			assert.Contains(t, v, k)
			assert.True(t, x == 0 || x == math.Pi, "key %s", k)
		}
	}

	b, err := perm.SampleThetasMap(v, 6, rand.NewSource(99))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	rows, err := perm.SampleThetas([]float64{0.2, 1.5, 2.9}, 6, rand.NewSource(99))
	require.NoError(t, err)
	for s := range rows {
		assert.Equal(t, rows[s][0], a[s]["t[0]"], "sorted key order matches the slice layout")
		assert.Equal(t, rows[s][1], a[s]["t[1]"])
		assert.Equal(t, rows[s][2], a[s]["t[2]"])
	}
}

// TestSampleThetasMap_CountValidation verifies error propagation from the
// shared core.
func TestSampleThetasMap_CountValidation(t *testing.T) {
	_, err := perm.SampleThetasMap(map[string]float64{"x": 1}, 0, rand.NewSource(1))
	assert.ErrorIs(t, err, perm.ErrSampleCount)
}

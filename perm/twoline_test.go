package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/quantalab/qisom/perm"
)

// cyclic3 is the permutation matrix with ones at (0,1), (1,2), (2,0).
func cyclic3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0, 1, 0,
		0, 0, 1,
		1, 0, 0,
	})
}

// TestToTwoLine_Basic verifies the column-to-row reading and the sorted
// top row.
func TestToTwoLine_Basic(t *testing.T) {
	s, err := perm.ToTwoLine(cyclic3(), false)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, s.Top, "domain row is sorted ascending")
	assert.Equal(t, []int{2, 0, 1}, s.Bottom)
	assert.Equal(t, 3, s.Len())
}

// TestToTwoLine_Inverse verifies that the inverse symbol equals the
// regular one with its rows swapped and re-sorted by the new top row.
func TestToTwoLine_Inverse(t *testing.T) {
	s, err := perm.ToTwoLine(cyclic3(), false)
	require.NoError(t, err)
	inv, err := perm.ToTwoLine(cyclic3(), true)
	require.NoError(t, err)

	// Swap the rows of s, then sort columns by the (new) top row.
	swapped := perm.TwoLine{Top: s.Bottom, Bottom: s.Top}
	remat, err := perm.FromTwoLine(swapped)
	require.NoError(t, err)
	resorted, err := perm.ToTwoLine(remat, false)
	require.NoError(t, err)

	assert.Equal(t, resorted.Top, inv.Top)
	assert.Equal(t, resorted.Bottom, inv.Bottom)
}

// TestToTwoLine_RoundTrip verifies that FromTwoLine reconstructs the exact
// matrix for several permutations, including the identity.
func TestToTwoLine_RoundTrip(t *testing.T) {
	mats := []*mat.Dense{
		cyclic3(),
		mat.NewDense(2, 2, []float64{1, 0, 0, 1}),
		mat.NewDense(2, 2, []float64{0, 1, 1, 0}),
		mat.NewDense(4, 4, []float64{
			0, 0, 1, 0,
			1, 0, 0, 0,
			0, 0, 0, 1,
			0, 1, 0, 0,
		}),
	}
	for idx, p := range mats {
		s, err := perm.ToTwoLine(p, false)
		require.NoError(t, err, "matrix %d", idx)
		back, err := perm.FromTwoLine(s)
		require.NoError(t, err, "matrix %d", idx)
		assert.True(t, mat.Equal(p, back), "matrix %d round-trips", idx)
	}
}

// TestToTwoLine_Validation covers the permutation-matrix contract.
func TestToTwoLine_Validation(t *testing.T) {
	_, err := perm.ToTwoLine(nil, false)
	assert.ErrorIs(t, err, perm.ErrNilMatrix)

	_, err = perm.ToTwoLine(mat.NewDense(2, 3, nil), false)
	assert.ErrorIs(t, err, perm.ErrNotPermutation, "non-square")

	_, err = perm.ToTwoLine(mat.NewDense(2, 2, []float64{1, 1, 0, 1}), false)
	assert.ErrorIs(t, err, perm.ErrNotPermutation, "row with two ones")

	_, err = perm.ToTwoLine(mat.NewDense(2, 2, []float64{1, 0, 0, 0}), false)
	assert.ErrorIs(t, err, perm.ErrNotPermutation, "missing one")

	_, err = perm.ToTwoLine(mat.NewDense(2, 2, []float64{2, 0, 0, 1}), false)
	assert.ErrorIs(t, err, perm.ErrNotPermutation, "entry other than 0/1")
}

// TestFromTwoLine_Validation covers the symbol contract.
func TestFromTwoLine_Validation(t *testing.T) {
	_, err := perm.FromTwoLine(perm.TwoLine{Top: []int{0, 1}, Bottom: []int{0}})
	assert.ErrorIs(t, err, perm.ErrBadSymbol, "rows of unequal length")

	_, err = perm.FromTwoLine(perm.TwoLine{})
	assert.ErrorIs(t, err, perm.ErrBadSymbol, "empty symbol")

	_, err = perm.FromTwoLine(perm.TwoLine{Top: []int{0, 0}, Bottom: []int{0, 1}})
	assert.ErrorIs(t, err, perm.ErrBadSymbol, "repeated domain index")

	_, err = perm.FromTwoLine(perm.TwoLine{Top: []int{0, 2}, Bottom: []int{0, 1}})
	assert.ErrorIs(t, err, perm.ErrBadSymbol, "index out of range")
}

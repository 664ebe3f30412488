// File: permtest/threshold_test.go
package permtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elizljohnson-projects/method-lme-cluster-stat/ndarray"
)

// TestQuantile_LinearInterpolation pins the estimator: fractional rank
// p*(n-1) interpolated between bracketing order statistics.
func TestQuantile_LinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}

	assert.Equal(t, 1.0, quantile(sorted, 0))
	assert.Equal(t, 5.0, quantile(sorted, 1))
	assert.Equal(t, 3.0, quantile(sorted, 0.5))
	assert.InDelta(t, 1.4, quantile(sorted, 0.1), 1e-12)
	assert.InDelta(t, 4.6, quantile(sorted, 0.9), 1e-12)
	assert.Equal(t, 7.0, quantile([]float64{7}, 0.3), "single value is every quantile")
}

// TestThresholds_PerCell verifies the per-cell quantiles along the
// permutation axis for a 2-cell, 5-permutation null array.
func TestThresholds_PerCell(t *testing.T) {
	datrnd, err := ndarray.NewFrom([]float64{
		1, 2, 3, 4, 5, // cell 0
		10, 20, 30, 40, 50, // cell 1
	}, 2, 5)
	require.NoError(t, err)

	neg, pos, err := Thresholds(datrnd, 0.1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, neg.Shape)
	assert.Equal(t, []int{2}, pos.Shape)
	assert.InDelta(t, 1.4, neg.Data[0], 1e-12)
	assert.InDelta(t, 4.6, pos.Data[0], 1e-12)
	assert.InDelta(t, 14.0, neg.Data[1], 1e-12)
	assert.InDelta(t, 46.0, pos.Data[1], 1e-12)
}

// TestThresholds_UnsortedPermutations confirms the permutation order along
// the last axis is irrelevant.
func TestThresholds_UnsortedPermutations(t *testing.T) {
	datrnd, err := ndarray.NewFrom([]float64{5, 1, 4, 2, 3}, 1, 5)
	require.NoError(t, err)

	neg, pos, err := Thresholds(datrnd, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 3.0, neg.Data[0])
	assert.Equal(t, 3.0, pos.Data[0])
}

// TestThresholds_Validation covers the failure modes.
func TestThresholds_Validation(t *testing.T) {
	_, _, err := Thresholds(nil, 0.05)
	assert.ErrorIs(t, err, ErrNilInput)

	flat, _ := ndarray.NewFrom([]float64{1, 2, 3}, 3)
	_, _, err = Thresholds(flat, 0.05)
	assert.ErrorIs(t, err, ErrShapeMismatch, "rank-1 arrays have no permutation axis")

	ok, _ := ndarray.NewFrom([]float64{1, 2, 3, 4}, 2, 2)
	_, _, err = Thresholds(ok, -0.1)
	assert.ErrorIs(t, err, ErrBadAlpha)
	_, _, err = Thresholds(ok, 1.1)
	assert.ErrorIs(t, err, ErrBadAlpha)
}

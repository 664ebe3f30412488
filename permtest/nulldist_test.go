// File: permtest/nulldist_test.go
package permtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elizljohnson-projects/method-lme-cluster-stat/cluster"
	"github.com/elizljohnson-projects/method-lme-cluster-stat/ndarray"
)

// permArray builds a shape S+(P,) null array from per-permutation slices,
// interleaving them into the row-major cell-major layout.
func permArray(t *testing.T, slices [][]float64, shape ...int) *ndarray.Array {
	t.Helper()
	perms := len(slices)
	cells := len(slices[0])
	data := make([]float64, cells*perms)
	for k, s := range slices {
		require.Len(t, s, cells)
		for i, v := range s {
			data[i*perms+k] = v
		}
	}
	a, err := ndarray.NewFrom(data, append(shape, perms)...)
	require.NoError(t, err)
	return a
}

// constArray returns a shape-S array with every cell equal to v.
func constArray(t *testing.T, v float64, shape ...int) *ndarray.Array {
	t.Helper()
	a, err := ndarray.New(shape...)
	require.NoError(t, err)
	a.Fill(v)
	return a
}

// TestNullDistribution_PositiveExtremes runs four permutation slices against
// a flat positive threshold of 3:
//
//	k=0: 0 0 5 7 0 0 0 0  → cluster {2,3} sum 12
//	k=1: 0 4 5 0 0 0 0 0  → cluster {1,2} sum 9
//	k=2: 0 0 0 0 0 5 0 0  → singleton, no entry
//	k=3: 0 0 0 7 0 0 0 0  → singleton, no entry
//
// Expected positive null: [12 9], sorted descending; negative null empty.
func TestNullDistribution_PositiveExtremes(t *testing.T) {
	datrnd := permArray(t, [][]float64{
		{0, 0, 5, 7, 0, 0, 0, 0},
		{0, 4, 5, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 5, 0, 0},
		{0, 0, 0, 7, 0, 0, 0, 0},
	}, 8)
	negThr := constArray(t, -3, 8)
	posThr := constArray(t, 3, 8)

	o := DefaultOptions()
	o.Tail = TailPositive
	nullPos, nullNeg, err := nullDistribution(datrnd, negThr, posThr, &o)
	require.NoError(t, err)
	assert.Equal(t, []float64{12, 9}, nullPos)
	assert.Empty(t, nullNeg)
}

// TestNullDistribution_NegativeExtremes mirrors the fixture below a flat
// threshold of -3 and checks ascending order of the minima.
func TestNullDistribution_NegativeExtremes(t *testing.T) {
	datrnd := permArray(t, [][]float64{
		{0, -4, -5, 0, 0, 0},
		{0, 0, 0, -6, -6, 0},
		{0, -5, 0, 0, 0, 0},
	}, 6)
	negThr := constArray(t, -3, 6)
	posThr := constArray(t, 3, 6)

	o := DefaultOptions()
	o.Tail = TailNegative
	nullPos, nullNeg, err := nullDistribution(datrnd, negThr, posThr, &o)
	require.NoError(t, err)
	assert.Empty(t, nullPos, "negative tail must not populate the positive distribution")
	assert.Equal(t, []float64{-12, -9}, nullNeg)
}

// TestNullDistribution_BothTails verifies one permutation can contribute to
// both distributions and extremes are the per-permutation max/min.
func TestNullDistribution_BothTails(t *testing.T) {
	datrnd := permArray(t, [][]float64{
		{5, 4, 0, -4, -7, 0, 8, 9},
	}, 8)
	negThr := constArray(t, -3, 8)
	posThr := constArray(t, 3, 8)

	o := DefaultOptions()
	o.Tail = TailBoth
	nullPos, nullNeg, err := nullDistribution(datrnd, negThr, posThr, &o)
	require.NoError(t, err)
	assert.Equal(t, []float64{17}, nullPos, "max of cluster sums 9 and 17")
	assert.Equal(t, []float64{-11}, nullNeg)
}

// TestNullDistribution_SizeMode checks the size statistic flows through the
// per-permutation extremes.
func TestNullDistribution_SizeMode(t *testing.T) {
	datrnd := permArray(t, [][]float64{
		{4, 4, 4, 0, 5, 5, 0, 0},
		{0, 4, 4, 0, 0, 0, 0, 0},
	}, 8)
	negThr := constArray(t, -3, 8)
	posThr := constArray(t, 3, 8)

	o := DefaultOptions()
	o.Tail = TailPositive
	o.ClusterStat = cluster.StatSize
	nullPos, _, err := nullDistribution(datrnd, negThr, posThr, &o)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2}, nullPos)
}

// TestNullDistribution_ProgressCadence verifies the observer fires every
// max(1, P/10) permutations, including for P below the reporting interval.
func TestNullDistribution_ProgressCadence(t *testing.T) {
	slices := make([][]float64, 40)
	for k := range slices {
		slices[k] = []float64{0, 0, 0, 0}
	}
	datrnd := permArray(t, slices, 4)
	negThr := constArray(t, -3, 4)
	posThr := constArray(t, 3, 4)

	var calls [][2]int
	o := DefaultOptions()
	o.Tail = TailPositive
	o.OnProgress = func(done, total int) { calls = append(calls, [2]int{done, total}) }
	_, _, err := nullDistribution(datrnd, negThr, posThr, &o)
	require.NoError(t, err)
	require.Len(t, calls, 10, "P=40 reports every 4 permutations")
	assert.Equal(t, [2]int{1, 40}, calls[0])
	assert.Equal(t, [2]int{37, 40}, calls[9])

	// P=4 is below the reporting interval; the cadence clamps to 1.
	small := permArray(t, slices[:4], 4)
	calls = nil
	_, _, err = nullDistribution(small, negThr, posThr, &o)
	require.NoError(t, err)
	assert.Len(t, calls, 4)
}

// TestNullDistribution_ContextAbort confirms a cancelled context aborts the
// loop with the context's error.
func TestNullDistribution_ContextAbort(t *testing.T) {
	datrnd := permArray(t, [][]float64{{0, 0}, {0, 0}}, 2)
	negThr := constArray(t, -3, 2)
	posThr := constArray(t, 3, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o := DefaultOptions()
	o.Ctx = ctx
	_, _, err := nullDistribution(datrnd, negThr, posThr, &o)
	assert.ErrorIs(t, err, context.Canceled)
}

package permtest

import (
	"math"
	"sort"

	"github.com/elizljohnson-projects/method-lme-cluster-stat/ndarray"
)

// Thresholds derives per-cell extremity thresholds from the null array.
// datrnd must carry permutations on its last axis (shape S+(P,)). For every
// cell it computes the alpha quantile (negative threshold) and the 1-alpha
// quantile (positive threshold) of the P values along that axis, with
// linear-interpolation quantile semantics, yielding two shape-S arrays.
//
// Callers running two-tailed tests halve alpha before calling, so each side
// receives half the mass.
//
// Returns ErrNilInput for a nil array, ErrShapeMismatch when datrnd has no
// leading data axes, ErrBadAlpha for alpha outside [0, 1].
//
// Complexity: O(cells × P log P) time, O(P) scratch.
func Thresholds(datrnd *ndarray.Array, alpha float64) (neg, pos *ndarray.Array, err error) {
	if datrnd == nil {
		return nil, nil, ErrNilInput
	}
	if datrnd.Rank() < 2 {
		return nil, nil, ErrShapeMismatch
	}
	if alpha < 0 || alpha > 1 {
		return nil, nil, ErrBadAlpha
	}
	perms := datrnd.Shape[datrnd.Rank()-1]
	if perms < 1 {
		return nil, nil, ErrNoPermutations
	}

	neg, err = ndarray.New(datrnd.Shape[:datrnd.Rank()-1]...)
	if err != nil {
		return nil, nil, err
	}
	pos, err = ndarray.New(datrnd.Shape[:datrnd.Rank()-1]...)
	if err != nil {
		return nil, nil, err
	}

	// Row-major layout keeps each cell's P permutation values contiguous.
	buf := make([]float64, perms)
	for i := 0; i < neg.Len(); i++ {
		copy(buf, datrnd.Data[i*perms:(i+1)*perms])
		sort.Float64s(buf)
		neg.Data[i] = quantile(buf, alpha)
		pos.Data[i] = quantile(buf, 1-alpha)
	}
	return neg, pos, nil
}

// quantile returns the linear-interpolation (Hyndman–Fan type 7) quantile of
// an ascending-sorted, non-empty slice: the value at fractional rank
// p*(n-1), interpolated between the bracketing order statistics.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

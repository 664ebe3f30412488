package permtest

import (
	"github.com/elizljohnson-projects/method-lme-cluster-stat/cluster"
	"github.com/elizljohnson-projects/method-lme-cluster-stat/ndarray"
)

// Test performs a cluster-based permutation test of the observed statistic
// map datobs against the caller-supplied permutation map datrnd (shape
// S+(P,), permutations on the last axis), applying any number of functional
// Options.
//
// The computation is a pure function of its inputs: per-cell quantile
// thresholds from the null array, connected-component clusters of extreme
// observed cells, per-permutation extreme cluster statistics as the Monte
// Carlo null, and rank-based corrected p-values with fixed denominator P+1.
// No clusters anywhere is a normal outcome (all-ones p-values, empty mask).
//
// Returns ErrNilInput or ErrShapeMismatch for malformed inputs,
// ErrNoPermutations for an empty permutation axis, ErrOptionViolation (or
// the specific sentinel) for bad options, ErrOverlappingTails if the two
// extremity masks intersect, or the context error on cancellation.
func Test(datobs, datrnd *ndarray.Array, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if datobs == nil || datrnd == nil {
		return nil, ErrNilInput
	}
	if datrnd.Rank() != datobs.Rank()+1 ||
		!ndarray.SameShape(datobs.Shape, datrnd.Shape[:datrnd.Rank()-1]) {
		return nil, ErrShapeMismatch
	}
	perms := datrnd.Shape[datrnd.Rank()-1]
	if perms < 1 {
		return nil, ErrNoPermutations
	}

	// Two-tailed: each side receives half the cluster-forming mass.
	ca := o.ClusterAlpha
	if o.Tail == TailBoth {
		ca /= 2
	}
	negThr, posThr, err := Thresholds(datrnd, ca)
	if err != nil {
		return nil, err
	}

	// Cluster candidates for the observed map, one mask per active tail.
	var posClusters, negClusters []cluster.Cluster
	var posMask, negMask *ndarray.Mask
	if o.Tail >= TailBoth {
		if posMask, err = ndarray.NewMask(datobs.Shape...); err != nil {
			return nil, err
		}
		fillExtremes(posMask, datobs.Data, posThr.Data, true)
		if posClusters, err = signClusters(datobs.Data, posMask, o.ClusterStat); err != nil {
			return nil, err
		}
	}
	if o.Tail <= TailBoth {
		if negMask, err = ndarray.NewMask(datobs.Shape...); err != nil {
			return nil, err
		}
		fillExtremes(negMask, datobs.Data, negThr.Data, false)
		if negClusters, err = signClusters(datobs.Data, negMask, o.ClusterStat); err != nil {
			return nil, err
		}
	}
	// The representative-cell comparison in assignPValues assumes the tails
	// never claim the same cell; verify instead of trusting the thresholds.
	if posMask != nil && negMask != nil && posMask.Overlaps(negMask) {
		return nil, ErrOverlappingTails
	}

	nullPos, nullNeg, err := nullDistribution(datrnd, negThr, posThr, &o)
	if err != nil {
		return nil, err
	}

	p, err := ndarray.New(datobs.Shape...)
	if err != nil {
		return nil, err
	}
	p.Fill(1)
	assignPValues(p, posClusters, negClusters, nullPos, nullNeg, perms, o.Tail)

	sig, err := ndarray.NewMask(datobs.Shape...)
	if err != nil {
		return nil, err
	}
	for i, v := range p.Data {
		sig.Data[i] = v < o.Alpha
	}

	return &Result{Significant: sig, P: p, Clusters: &ClusterInfo{}}, nil
}

package permtest

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/elizljohnson-projects/method-lme-cluster-stat/cluster"
	"github.com/elizljohnson-projects/method-lme-cluster-stat/ndarray"
)

// fillExtremes overwrites every cell of dst with the extremity of data
// against thr: data >= thr when positive, data <= thr otherwise.
func fillExtremes(dst *ndarray.Mask, data, thr []float64, positive bool) {
	if positive {
		for i := range dst.Data {
			dst.Data[i] = data[i] >= thr[i]
		}
		return
	}
	for i := range dst.Data {
		dst.Data[i] = data[i] <= thr[i]
	}
}

// signClusters labels mask and aggregates the surviving clusters of data.
func signClusters(data []float64, mask *ndarray.Mask, mode cluster.Stat) ([]cluster.Cluster, error) {
	labels, n, err := cluster.Label(mask)
	if err != nil {
		return nil, err
	}
	return cluster.Aggregate(data, labels, n, mode)
}

// nullDistribution runs labeling and aggregation on every permutation slice
// of datrnd and collects, per permutation, the maximum positive and minimum
// negative surviving cluster statistic. Permutations with no qualifying
// cluster of a sign contribute no entry for that sign (the entry is absent,
// not zero), so both outputs may be shorter than P.
//
// The positive extremes come back sorted descending, the negative ascending.
// o.OnProgress fires every max(1, P/10) permutations; o.Ctx aborts the loop
// between permutations.
func nullDistribution(datrnd, negThr, posThr *ndarray.Array, o *Options) (nullPos, nullNeg []float64, err error) {
	perms := datrnd.Shape[datrnd.Rank()-1]
	cells := datrnd.Len() / perms

	mask, err := ndarray.NewMask(datrnd.Shape[:datrnd.Rank()-1]...)
	if err != nil {
		return nil, nil, err
	}

	every := perms / 10
	if every < 1 {
		every = 1
	}

	slice := make([]float64, cells)
	var stats []float64
	for k := 0; k < perms; k++ {
		select {
		case <-o.Ctx.Done():
			return nil, nil, o.Ctx.Err()
		default:
		}
		if k%every == 0 {
			o.OnProgress(k+1, perms)
		}

		// Gather permutation k: cell i's slot for permutation k is i*P+k.
		for i := 0; i < cells; i++ {
			slice[i] = datrnd.Data[i*perms+k]
		}

		if o.Tail >= TailBoth {
			fillExtremes(mask, slice, posThr.Data, true)
			clusters, cerr := signClusters(slice, mask, o.ClusterStat)
			if cerr != nil {
				return nil, nil, cerr
			}
			if len(clusters) > 0 {
				stats = stats[:0]
				for _, c := range clusters {
					stats = append(stats, c.Stat)
				}
				nullPos = append(nullPos, floats.Max(stats))
			}
		}
		if o.Tail <= TailBoth {
			fillExtremes(mask, slice, negThr.Data, false)
			clusters, cerr := signClusters(slice, mask, o.ClusterStat)
			if cerr != nil {
				return nil, nil, cerr
			}
			if len(clusters) > 0 {
				stats = stats[:0]
				for _, c := range clusters {
					stats = append(stats, c.Stat)
				}
				nullNeg = append(nullNeg, floats.Min(stats))
			}
		}
	}

	sort.Float64s(nullNeg)
	sort.Float64s(nullPos)
	floats.Reverse(nullPos)
	return nullPos, nullNeg, nil
}

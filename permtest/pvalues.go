package permtest

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/elizljohnson-projects/method-lme-cluster-stat/cluster"
	"github.com/elizljohnson-projects/method-lme-cluster-stat/ndarray"
)

// assignPValues ranks each observed cluster against its null distribution
// and broadcasts the resulting p-value onto the cluster's member cells of p
// (which starts all-ones). The denominator is fixed at perms+1 however many
// permutations actually contributed a null entry.
//
// Positive clusters are assigned first and unconditionally. A negative
// cluster overwrites only if its p-value beats the value currently stored at
// the cluster's first member cell; the check is sound because the two
// extremity masks are disjoint. Two-tailed runs double every cell afterward,
// clipped at 1.
func assignPValues(p *ndarray.Array, posClusters, negClusters []cluster.Cluster, nullPos, nullNeg []float64, perms int, tail Tail) {
	denom := float64(perms + 1)

	if tail >= TailBoth {
		for _, c := range posClusters {
			// nullPos is descending; the insertion point of Stat counts the
			// entries strictly greater.
			greater := sort.Search(len(nullPos), func(i int) bool { return nullPos[i] <= c.Stat })
			pv := float64(greater+1) / denom
			for _, off := range c.Cells {
				p.Data[off] = pv
			}
		}
	}
	if tail <= TailBoth {
		for _, c := range negClusters {
			// nullNeg is ascending; the insertion point counts the entries
			// strictly less.
			less := sort.SearchFloat64s(nullNeg, c.Stat)
			pv := float64(less+1) / denom
			if pv < p.Data[c.Cells[0]] {
				for _, off := range c.Cells {
					p.Data[off] = pv
				}
			}
		}
	}

	if tail == TailBoth {
		floats.Scale(2, p.Data)
		for i, v := range p.Data {
			if v > 1 {
				p.Data[i] = 1
			}
		}
	}
}

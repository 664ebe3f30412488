package cluster

import (
	"gonum.org/v1/gonum/floats"
)

// Aggregate reduces each labeled component of data to a Cluster holding its
// aggregate statistic and member offsets. data is the underlying real-valued
// buffer (observed map or one permutation slice) aligned with labels; count
// is the number of labels produced by Label.
//
// Components with a single member are dropped under both modes: the
// size-mode branch sits inside the member-count > 1 guard, so singletons
// never contribute a statistic or member offsets.
//
// Returns ErrBadLabels if labels and data lengths differ, ErrBadStat for an
// unknown mode. The returned slice is ordered by label and may be empty.
func Aggregate(data []float64, labels []int, count int, mode Stat) ([]Cluster, error) {
	if len(labels) != len(data) {
		return nil, ErrBadLabels
	}
	if !mode.Valid() {
		return nil, ErrBadStat
	}

	// Bucket member offsets by label in one pass.
	members := make([][]int, count+1)
	for off, l := range labels {
		if l > 0 {
			members[l] = append(members[l], off)
		}
	}

	clusters := make([]Cluster, 0, count)
	for l := 1; l <= count; l++ {
		cells := members[l]
		if len(cells) <= 1 {
			continue
		}
		var stat float64
		switch mode {
		case StatSum:
			vals := make([]float64, len(cells))
			for i, off := range cells {
				vals[i] = data[off]
			}
			stat = floats.Sum(vals)
		case StatSize:
			stat = float64(len(cells))
		}
		clusters = append(clusters, Cluster{Stat: stat, Cells: cells})
	}
	return clusters, nil
}

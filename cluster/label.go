package cluster

import (
	"github.com/elizljohnson-projects/method-lme-cluster-stat/ndarray"
)

// Label assigns a unique positive integer label to each maximal connected
// component of true cells in mask, under face adjacency: neighbors differ by
// ±1 along exactly one axis. Background (false) cells keep label 0.
//
// Returns the per-cell label slice (aligned with mask.Data) and the number
// of components found. Label order follows the row-major scan and is only
// meaningful as a grouping key.
//
// Works for any rank: a ±1 move along axis a is a ±Stride(a) jump on the
// flat buffer, valid only while the coordinate along a stays in bounds.
//
// Complexity: O(cells × rank) time, O(cells) memory.
func Label(mask *ndarray.Mask) ([]int, int, error) {
	if mask == nil {
		return nil, 0, ErrNilMask
	}
	labels := make([]int, mask.Len())
	rank := mask.Rank()
	next := 0

	var queue []int
	for start, on := range mask.Data {
		if !on || labels[start] != 0 {
			continue
		}
		next++
		// BFS to flood the component; labels double as visited flags.
		queue = append(queue[:0], start)
		labels[start] = next
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for a := 0; a < rank; a++ {
				stride := mask.Stride(a)
				c := (u / stride) % mask.Shape[a]
				if c > 0 {
					if v := u - stride; mask.Data[v] && labels[v] == 0 {
						labels[v] = next
						queue = append(queue, v)
					}
				}
				if c < mask.Shape[a]-1 {
					if v := u + stride; mask.Data[v] && labels[v] == 0 {
						labels[v] = next
						queue = append(queue, v)
					}
				}
			}
		}
	}
	return labels, next, nil
}

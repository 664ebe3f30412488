// Package cluster detects and summarizes contiguous regions of extreme cells
// in an N-rank boolean mask.
//
// What:
//
//   - Label partitions a mask into maximal connected components under face
//     adjacency (two cells differ by ±1 along exactly one axis — the N-rank
//     generalization of 4-connectivity).
//   - Aggregate reduces each labeled component to a single cluster-mass
//     statistic (sum of the underlying values, or member count) and the
//     member cell offsets.
//
// Why:
//
//   - Cluster-level statistics trade single-cell sensitivity for sensitivity
//     to spatially/temporally extended effects, the basis of cluster-based
//     permutation correction.
//
// Degeneracy rule:
//
//   - Components with exactly one member are dropped under both aggregation
//     modes; they contribute neither a statistic nor member offsets.
//
// Complexity:
//
//   - Label: O(cells × rank) time, O(cells) memory (BFS with labels doubling
//     as visited flags).
//   - Aggregate: O(cells + members) time, O(cells) memory.
//
// Errors:
//
//   - ErrNilMask: Label received a nil mask.
//   - ErrBadLabels: label slice length differs from the data length.
//   - ErrBadStat: unknown aggregation mode.
package cluster

// Package clusterstat provides nonparametric cluster-based correction for
// multiple comparisons over multi-dimensional statistical maps — the standard
// way to control family-wise error in neuroscience signal analysis without
// assuming independence between neighboring samples.
//
// What it brings together:
//
//	• N-rank arrays: dense float64 tensors and boolean masks with row-major
//	  shape/stride arithmetic
//	• Cluster labeling: connected-component detection over arbitrary-rank
//	  grids under face adjacency
//	• Cluster statistics: sum/size aggregation with degeneracy exclusion
//	• Permutation testing: Monte Carlo null distributions of extreme cluster
//	  statistics and rank-based corrected p-values
//	• Recording utilities: iEEG recording containers and wide-format frames
//	  for exploratory use
//
// Why choose clusterstat?
//
//   - Deterministic – pure functions of explicit inputs, no hidden randomness
//   - Extensible – injectable hooks (OnProgress) and context cancellation
//   - Pure Go – no cgo, gonum for the numerics
//
// Everything is organized under four subpackages:
//
//	ndarray/  — N-rank dense arrays, boolean masks, index arithmetic
//	cluster/  — connected-component labeling & cluster-mass aggregation
//	permtest/ — thresholds, null distributions, p-value assignment, Test()
//	ieeg/     — recording container, loader contract, tabular frame views
//
// Quick sketch of the core flow:
//
//	    datobs (S)          datrnd (S+P)
//	        │                    │
//	        │              thresholds (quantiles per cell)
//	        └──► masks ──► label ──► aggregate ──► rank vs null ──► p, mask
//
// Dive into permtest for the entry point:
//
//	res, err := permtest.Test(datobs, datrnd, permtest.WithTail(permtest.TailPositive))
package clusterstat

// Package permtest performs cluster-based permutation testing over
// multi-dimensional statistical maps, controlling family-wise error without
// assuming independence between neighboring cells.
//
// What:
//
//   - Thresholds derives per-cell extremity thresholds from the null array
//     (quantiles along the permutation axis, linear-interpolation semantics).
//   - Test thresholds the observed map, labels contiguous extreme clusters,
//     builds Monte Carlo null distributions of extreme cluster statistics
//     from the caller-supplied permutations, and assigns each cluster a
//     corrected p-value with fixed denominator P+1.
//
// Why:
//
//   - Per-cell tests over time×channel maps inflate family-wise error;
//     ranking cluster masses against a permutation null corrects for the
//     full search space while staying sensitive to extended effects.
//
// Conventions:
//
//   - The null array carries permutations on its last axis (shape S+(P,)).
//   - Permutations that produce no qualifying cluster contribute no entry to
//     the null distribution, but the p-value denominator stays P+1 (a p-value
//     is never 0).
//   - Size-1 clusters never qualify, under both aggregation modes.
//   - Two-tailed runs halve the cluster-forming alpha per side and double the
//     final p-values, clipped at 1.
//
// Options:
//
//   - WithTail: TailNegative, TailBoth (default), or TailPositive.
//   - WithAlpha / WithClusterAlpha: significance levels, default 0.05 each.
//   - WithClusterStat: cluster.StatSum (default) or cluster.StatSize.
//   - WithOnProgress: observer invoked at a fixed cadence over the
//     permutation loop.
//   - WithContext: best-effort abort of the permutation loop.
//
// Complexity:
//
//   - Test: O(P × cells × rank) time, O(cells × P) resident memory for the
//     caller-held null array plus O(cells) scratch.
//
// Errors:
//
//   - ErrNilInput, ErrShapeMismatch, ErrInvalidTail, ErrInvalidClusterStat,
//     ErrBadAlpha, ErrNoPermutations, ErrOverlappingTails, ErrOptionViolation.
//   - Finding no clusters anywhere is a normal outcome: an all-ones p-value
//     array and an empty significance mask, not an error.
package permtest

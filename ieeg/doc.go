// Package ieeg holds the upstream data-producer contract for intracranial
// EEG statistic maps and a tabular view for exploratory use.
//
// What:
//
//   - Recording bundles per-channel metadata (subject, channel label,
//     hit/miss condition, optional brain region) with a channels×timepoints
//     data matrix.
//   - Loader is the contract a container-format reader must satisfy; the
//     binary format itself lives outside this module.
//   - Frame presents a Recording as a wide table: one row per channel,
//     metadata columns followed by t0..t(N−1) timepoint columns, with
//     per-channel descriptive summaries.
//
// Why:
//
//   - The permutation core consumes plain arrays; this package pins down the
//     shape and labeling contract of what upstream hands it, and gives
//     analysts a row/column view of the same data without reshaping by hand.
//
// Errors:
//
//   - ErrEmptyRecording: no channels or no timepoints.
//   - ErrLengthMismatch: metadata slices disagree with the channel count.
//   - ErrUnknownColumn: column name not present in the frame.
//   - ErrRowRange: row index outside the frame.
package ieeg

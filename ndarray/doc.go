// Package ndarray provides dense N-rank numeric arrays and boolean masks
// with row-major storage, the carrier type for observed and permuted
// statistic maps.
//
// What:
//
//   - Array wraps a flat []float64 with a validated shape and precomputed
//     row-major strides.
//   - Mask is the boolean counterpart, used for extremity masks.
//   - Offset/Coordinate convert between multi-axis coordinates and flat
//     offsets; Stride exposes per-axis strides for neighbor arithmetic.
//
// Why:
//
//   - Statistical maps are time×channel (or higher-rank) tensors; one flat
//     buffer plus strides keeps traversal allocation-free.
//   - Cluster labeling needs ±1 moves along a single axis, which is a ±stride
//     jump on the flat buffer.
//
// Complexity:
//
//   - Offset/Coordinate: O(rank), Stride/Len: O(1).
//   - New/NewFrom/Clone: O(len) time and memory.
//
// Errors:
//
//   - ErrEmptyShape: shape has no axes or a non-positive axis length.
//   - ErrBadLength: supplied data length does not match the shape.
//   - ErrIndexOutOfRange: coordinate or flat offset outside the array.
package ndarray

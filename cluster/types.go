// Package cluster defines cluster types, aggregation modes, and sentinel
// errors for component labeling and cluster-mass statistics.
package cluster

import "errors"

// Sentinel errors for labeling and aggregation.
var (
	// ErrNilMask indicates Label received a nil mask.
	ErrNilMask = errors.New("cluster: mask is nil")
	// ErrBadLabels indicates a label slice whose length differs from the data.
	ErrBadLabels = errors.New("cluster: label slice length does not match data")
	// ErrBadStat indicates an unknown aggregation mode.
	ErrBadStat = errors.New("cluster: unknown aggregation mode")
)

// Stat selects how a labeled component is reduced to a scalar statistic.
type Stat int

const (
	// StatSum sums the underlying values over the component's members.
	StatSum Stat = iota
	// StatSize uses the component's member count.
	StatSize
)

// Valid reports whether s is a known aggregation mode.
func (s Stat) Valid() bool { return s == StatSum || s == StatSize }

// String returns the wire name of the mode ("sum" or "size").
func (s Stat) String() string {
	switch s {
	case StatSum:
		return "sum"
	case StatSize:
		return "size"
	default:
		return "unknown"
	}
}

// Cluster is one surviving connected component: its aggregate statistic and
// the flat row-major offsets of its member cells. Offsets are in ascending
// order (labeling scans the buffer front to back).
type Cluster struct {
	Stat  float64
	Cells []int
}

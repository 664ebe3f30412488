// Package ieeg defines the recording container, loader contract, and
// sentinel errors for upstream iEEG data producers.
package ieeg

import (
	"errors"

	"github.com/elizljohnson-projects/method-lme-cluster-stat/ndarray"
)

// Sentinel errors for recording and frame construction.
var (
	// ErrEmptyRecording indicates a recording with no channels or no timepoints.
	ErrEmptyRecording = errors.New("ieeg: recording must have at least one channel and one timepoint")
	// ErrLengthMismatch indicates metadata slices that disagree with the channel count.
	ErrLengthMismatch = errors.New("ieeg: metadata lengths must match the channel count")
	// ErrUnknownColumn indicates a column name absent from the frame.
	ErrUnknownColumn = errors.New("ieeg: unknown column")
	// ErrRowRange indicates a row index outside the frame.
	ErrRowRange = errors.New("ieeg: row index out of range")
)

// Recording is one loaded dataset: per-channel metadata aligned with a
// channels×timepoints matrix of statistic values. Regions is optional and
// nil when the source container carries no region labels.
type Recording struct {
	Subjects []string // subject ID per channel row
	Channels []string // channel label per row
	HitMiss  []int    // condition per row: 1 hit, 0 miss
	Regions  []string // optional brain-region label per row, or nil
	Data     *ndarray.Array
}

// Loader reads a Recording out of a domain-specific binary container.
// Container parsing is an upstream concern; the core only relies on this
// contract and the shape rules enforced by NewRecording.
type Loader interface {
	Load(path string) (*Recording, error)
}

// NewRecording validates and assembles a Recording. data must be a rank-2
// channels×timepoints array whose leading dimension matches every metadata
// slice; regions may be nil.
func NewRecording(subjects, channels []string, hitMiss []int, regions []string, data *ndarray.Array) (*Recording, error) {
	if data == nil || data.Rank() != 2 {
		return nil, ErrEmptyRecording
	}
	ch := data.Shape[0]
	if len(subjects) != ch || len(channels) != ch || len(hitMiss) != ch {
		return nil, ErrLengthMismatch
	}
	if regions != nil && len(regions) != ch {
		return nil, ErrLengthMismatch
	}
	return &Recording{
		Subjects: subjects,
		Channels: channels,
		HitMiss:  hitMiss,
		Regions:  regions,
		Data:     data,
	}, nil
}

// NumChannels returns the number of channel rows.
func (r *Recording) NumChannels() int { return r.Data.Shape[0] }

// NumTimepoints returns the number of timepoint columns.
func (r *Recording) NumTimepoints() int { return r.Data.Shape[1] }

// Series returns a copy of channel row i's timepoint values.
func (r *Recording) Series(i int) ([]float64, error) {
	if i < 0 || i >= r.NumChannels() {
		return nil, ErrRowRange
	}
	nt := r.NumTimepoints()
	out := make([]float64, nt)
	copy(out, r.Data.Data[i*nt:(i+1)*nt])
	return out, nil
}

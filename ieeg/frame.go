package ieeg

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Frame is a wide-format view of a Recording: one row per channel, metadata
// columns (sid, channel, hit_miss, region when present) followed by one
// column per timepoint named t0..t(N−1). The frame borrows the recording's
// storage; it is a view, not a copy.
type Frame struct {
	rec     *Recording
	columns []string
	timeCol map[string]int // tK name → timepoint index
}

// NewFrame builds the wide table over rec.
func NewFrame(rec *Recording) (*Frame, error) {
	if rec == nil || rec.Data == nil {
		return nil, ErrEmptyRecording
	}
	nt := rec.NumTimepoints()
	columns := []string{"sid", "channel", "hit_miss"}
	if rec.Regions != nil {
		columns = append(columns, "region")
	}
	timeCol := make(map[string]int, nt)
	for j := 0; j < nt; j++ {
		name := fmt.Sprintf("t%d", j)
		columns = append(columns, name)
		timeCol[name] = j
	}
	return &Frame{rec: rec, columns: columns, timeCol: timeCol}, nil
}

// Columns returns the column names in table order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.columns))
	copy(out, f.columns)
	return out
}

// Len returns the number of rows (channels).
func (f *Frame) Len() int { return f.rec.NumChannels() }

// TimeColumn returns a copy of the named timepoint column ("t0", "t1", …)
// across all channel rows. Returns ErrUnknownColumn for metadata columns or
// names outside the frame.
func (f *Frame) TimeColumn(name string) ([]float64, error) {
	j, ok := f.timeCol[name]
	if !ok {
		return nil, ErrUnknownColumn
	}
	nt := f.rec.NumTimepoints()
	out := make([]float64, f.Len())
	for i := range out {
		out[i] = f.rec.Data.Data[i*nt+j]
	}
	return out, nil
}

// Series returns a copy of row i's timepoint values.
func (f *Frame) Series(i int) ([]float64, error) { return f.rec.Series(i) }

// ChannelSummary describes one channel row's timecourse for exploratory use.
type ChannelSummary struct {
	Subject string
	Channel string
	HitMiss int
	Mean    float64
	StdDev  float64
	Median  float64
	Min     float64
	Max     float64
}

// Summary computes descriptive statistics over row i's timecourse.
func (f *Frame) Summary(i int) (ChannelSummary, error) {
	series, err := f.rec.Series(i)
	if err != nil {
		return ChannelSummary{}, err
	}
	sorted := make([]float64, len(series))
	copy(sorted, series)
	sort.Float64s(sorted)

	return ChannelSummary{
		Subject: f.rec.Subjects[i],
		Channel: f.rec.Channels[i],
		HitMiss: f.rec.HitMiss[i],
		Mean:    stat.Mean(series, nil),
		StdDev:  stat.StdDev(series, nil),
		Median:  stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:     floats.Min(sorted),
		Max:     floats.Max(sorted),
	}, nil
}

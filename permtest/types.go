// Package permtest defines tunable options, result types, and tail modes
// for cluster-based permutation testing.
package permtest

import (
	"context"
	"fmt"

	"github.com/elizljohnson-projects/method-lme-cluster-stat/cluster"
	"github.com/elizljohnson-projects/method-lme-cluster-stat/ndarray"
)

// Tail selects the test direction.
type Tail int

const (
	// TailNegative tests observed < null (one-sided).
	TailNegative Tail = -1
	// TailBoth tests both directions (two-sided).
	TailBoth Tail = 0
	// TailPositive tests observed > null (one-sided).
	TailPositive Tail = 1
)

// Valid reports whether t is a known tail mode.
func (t Tail) Valid() bool { return t >= TailNegative && t <= TailPositive }

// String returns a readable tail name.
func (t Tail) String() string {
	switch t {
	case TailNegative:
		return "negative"
	case TailBoth:
		return "both"
	case TailPositive:
		return "positive"
	default:
		return "unknown"
	}
}

// ProgressFunc observes the permutation loop. It receives the 1-based index
// of the permutation being processed and the total permutation count.
type ProgressFunc func(done, total int)

// Option configures Test via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Test runs.
type Option func(*Options)

// Options holds the parameters and hooks of a cluster permutation test.
type Options struct {
	// Ctx allows best-effort cancellation of the permutation loop.
	Ctx context.Context

	// Tail is the test direction; TailBoth halves ClusterAlpha per side and
	// doubles the final p-values.
	Tail Tail

	// Alpha is the critical level for the significance mask.
	Alpha float64

	// ClusterAlpha is the nonparametric threshold level for cluster candidates.
	ClusterAlpha float64

	// ClusterStat selects how member cells combine into a cluster statistic.
	ClusterStat cluster.Stat

	// OnProgress is invoked at a fixed cadence over the permutation loop
	// (every max(1, P/10) permutations).
	OnProgress ProgressFunc

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with reference defaults:
//   - context.Background()
//   - TailBoth, Alpha 0.05, ClusterAlpha 0.05, cluster.StatSum
//   - no-op progress hook.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Tail:         TailBoth,
		Alpha:        0.05,
		ClusterAlpha: 0.05,
		ClusterStat:  cluster.StatSum,
		OnProgress:   func(int, int) {},
		err:          nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTail sets the test direction; anything outside {-1, 0, 1} is an
// ErrInvalidTail surfaced on invocation.
func WithTail(t Tail) Option {
	return func(o *Options) {
		if !t.Valid() {
			o.err = fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrInvalidTail, t)
			return
		}
		o.Tail = t
	}
}

// WithAlpha sets the critical level; must lie in (0, 1).
func WithAlpha(a float64) Option {
	return func(o *Options) {
		if a <= 0 || a >= 1 {
			o.err = fmt.Errorf("%w: %w (alpha=%v)", ErrOptionViolation, ErrBadAlpha, a)
			return
		}
		o.Alpha = a
	}
}

// WithClusterAlpha sets the cluster-forming threshold level; must lie in (0, 1).
func WithClusterAlpha(a float64) Option {
	return func(o *Options) {
		if a <= 0 || a >= 1 {
			o.err = fmt.Errorf("%w: %w (clusteralpha=%v)", ErrOptionViolation, ErrBadAlpha, a)
			return
		}
		o.ClusterAlpha = a
	}
}

// WithClusterStat sets the aggregation mode; unknown modes are an
// ErrInvalidClusterStat surfaced on invocation.
func WithClusterStat(s cluster.Stat) Option {
	return func(o *Options) {
		if !s.Valid() {
			o.err = fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrInvalidClusterStat, s)
			return
		}
		o.ClusterStat = s
	}
}

// WithOnProgress registers a progress observer for the permutation loop.
func WithOnProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}

// ClusterInfo is a reserved extension point for per-cluster metadata
// (statistic, extent, peak cell) in future reporting. It carries no fields
// yet; Result.Clusters is always non-nil so callers can rely on its presence.
type ClusterInfo struct{}

// Result holds the outcome of a cluster permutation test:
//   - Significant: cells whose corrected p-value is below Alpha.
//   - P: corrected p-value per cell, 1 outside any surviving cluster.
//   - Clusters: reserved cluster metadata (see ClusterInfo).
type Result struct {
	Significant *ndarray.Mask
	P           *ndarray.Array
	Clusters    *ClusterInfo
}

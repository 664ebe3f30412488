package permtest

import "errors"

// Sentinel errors for test configuration and input validation.
var (
	// ErrNilInput is returned when the observed or null array is nil.
	ErrNilInput = errors.New("permtest: observed and null arrays must be non-nil")
	// ErrShapeMismatch is returned when the null array's leading dimensions
	// do not equal the observed array's shape.
	ErrShapeMismatch = errors.New("permtest: null array leading dimensions must equal observed shape")
	// ErrInvalidTail is returned for a tail outside {-1, 0, 1}.
	ErrInvalidTail = errors.New("permtest: tail must be TailNegative, TailBoth, or TailPositive")
	// ErrInvalidClusterStat is returned for an unknown aggregation mode.
	ErrInvalidClusterStat = errors.New("permtest: cluster statistic must be sum or size")
	// ErrBadAlpha is returned for a significance level outside (0, 1).
	ErrBadAlpha = errors.New("permtest: significance levels must lie in (0, 1)")
	// ErrNoPermutations is returned when the null array carries no permutations.
	ErrNoPermutations = errors.New("permtest: null array must contain at least one permutation")
	// ErrOverlappingTails is returned when the positive and negative extremity
	// masks of the observed map share a cell; thresholds must keep them disjoint.
	ErrOverlappingTails = errors.New("permtest: positive and negative extremity masks overlap")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("permtest: invalid option supplied")
)

package colocation

import "github.com/pkg/errors"

// Sentinel errors for the three error kinds described by the mining
// contract: configuration (bad distance/threshold, empty input), data
// (duplicate ids, non-finite coordinates), and invariant (internal defects
// surfaced during mining). Callers should compare with errors.Is.
var (
	ErrEmptyInput         = errors.New("colocation: input object set is empty")
	ErrInvalidDistance    = errors.New("colocation: neighbor distance must be > 0")
	ErrInvalidThreshold   = errors.New("colocation: minPrev must be in [0, 1]")
	ErrInternalInvariant  = errors.New("colocation: internal invariant violated")
	ErrDuplicateID        = errors.New("colocation: duplicate object id")
	ErrInvalidCoordinate  = errors.New("colocation: non-finite coordinate")
)

// invariantf wraps ErrInternalInvariant with a diagnostic naming the
// offending colocation and mining level, per the "abort with a diagnostic"
// contract. No retries are attempted; callers should treat this as fatal.
func invariantf(level int, colocation []string, format string, args ...interface{}) error {
	base := errors.Wrapf(ErrInternalInvariant, format, args...)
	return errors.Wrapf(base, "level k=%d colocation=%v", level, colocation)
}

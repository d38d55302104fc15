package sim

import "errors"

// Errors surfaced by the engine. None of them is retryable: each one points
// at a configuration mistake or a defect in process code.
var (
	// ErrInvalidConfiguration reports a non-positive capacity or count
	// supplied before the run starts.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidDelay reports a negative (or NaN) delay passed to ScheduleAfter.
	ErrInvalidDelay = errors.New("invalid delay")

	// ErrDoubleRelease reports a Release on a grant that is not currently held.
	ErrDoubleRelease = errors.New("double release")

	// ErrForeignGrant reports a Release on a pool that did not issue the grant.
	ErrForeignGrant = errors.New("grant released to foreign pool")
)

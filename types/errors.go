package types

import "errors"

// Sentinel errors for the vecstream library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components use these sentinels for known error conditions and
// wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Input errors - invalid caller-supplied data.
var (
	// ErrNoEndpoints is returned when the endpoint roster is empty.
	ErrNoEndpoints = errors.New("no endpoints available for assignment")

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrAffinitySourceRequired is returned when an affinity source is nil.
	ErrAffinitySourceRequired = errors.New("affinity source is required")
)

// Runtime errors - conditions observed during an assignment run.
var (
	// ErrCanceled is returned when cooperative cancellation is observed.
	// Partial results are discarded; the returned error wraps the context error.
	ErrCanceled = errors.New("assignment canceled by context")

	// ErrRemoteFractionExceeded is returned when placement verification finds
	// more remote partitions than Config.MaxRemoteFraction allows.
	ErrRemoteFractionExceeded = errors.New("remote partition fraction exceeds configured limit")

	// ErrInternal indicates a broken internal invariant. It should be
	// unreachable for any input; seeing it is a programming error, not a data
	// error.
	ErrInternal = errors.New("internal invariant violation")
)

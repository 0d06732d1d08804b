package vecstream

import "github.com/justinegdelta/vecstream/types"

// Sentinel errors returned by the Assigner, re-exported from the types
// subpackage so callers can errors.Is() against a single import.
var (
	// ErrNoEndpoints is returned when the endpoint roster is empty.
	ErrNoEndpoints = types.ErrNoEndpoints

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrAffinitySourceRequired is returned when AssignFrom is given a nil source.
	ErrAffinitySourceRequired = types.ErrAffinitySourceRequired

	// ErrCanceled is returned when cooperative cancellation is observed.
	ErrCanceled = types.ErrCanceled

	// ErrRemoteFractionExceeded is returned when placement verification finds
	// more remote partitions than Config.MaxRemoteFraction allows.
	ErrRemoteFractionExceeded = types.ErrRemoteFractionExceeded

	// ErrInternal indicates a broken internal invariant.
	ErrInternal = types.ErrInternal
)

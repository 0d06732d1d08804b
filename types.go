package vecstream

import "github.com/justinegdelta/vecstream/types"

// Re-export types from the types subpackage.
//
// Internal packages depend on the types subpackage directly; aliasing the
// public subset here keeps callers on a single import while avoiding import
// cycles.
type (
	Endpoint   = types.Endpoint
	Assignment = types.Assignment
)

// Re-export interfaces from the types subpackage for convenience.
type (
	AffinitySource   = types.AffinitySource
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

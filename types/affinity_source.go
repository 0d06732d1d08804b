package types

import "context"

// AffinitySource provides the preferred-host lists for the input partitions.
//
// The connection layer of the connector typically implements this by asking
// the distributed filesystem for the block locations of each partition's
// source data. The returned slice is indexed by partition: element i holds
// the preferred hosts of partition i and may be empty.
//
// Implementations should:
//   - Return lists in stable partition order (determinism requirement)
//   - Be safe for concurrent use
type AffinitySource interface {
	// ListAffinities returns one preferred-host list per input partition.
	//
	// Parameters:
	//   - ctx: Context for cancellation and deadline
	//
	// Returns:
	//   - [][]string: Preferred hosts per partition, in partition order
	//   - error: Discovery error; no partial result is returned
	ListAffinities(ctx context.Context) ([][]string, error)
}

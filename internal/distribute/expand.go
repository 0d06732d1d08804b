// Package distribute turns the matcher's per-host partition sets into the
// final per-endpoint lists: an even expansion over each host's endpoints,
// followed by a residual fill of the partitions that carry no affinity.
package distribute

import (
	"context"
	"fmt"

	"github.com/justinegdelta/vecstream/types"
)

// Expand distributes each host's matched partitions over the endpoints
// bound to that host.
//
// Within a host with k endpoints and n partitions, endpoint j receives
// n/k partitions plus one extra when j < n%k, so endpoint sizes within a
// host differ by at most one. Partitions are sliced in matcher order and
// translated back to original partition indices via orig.
//
// The union of the lists produced for a host equals the matcher's output
// for that host; the expansion never moves a partition across hosts.
//
// The context is consulted between hosts; a canceled expansion returns
// types.ErrCanceled and discards its partial output.
//
// Parameters:
//   - ctx: Context for cooperative cancellation
//   - hostParts: Local partition indices per host, from the matcher
//   - endpointsByHost: Roster positions of each host's endpoints
//   - orig: Local affinity index to original partition index translation
//   - numEndpoints: Total roster size
//
// Returns:
//   - [][]int: Original partition indices per endpoint, append-friendly
//   - error: types.ErrCanceled on cancellation
func Expand(ctx context.Context, hostParts [][]int, endpointsByHost [][]int, orig []int, numEndpoints int) ([][]int, error) {
	out := make([][]int, numEndpoints)

	for b, parts := range hostParts {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrCanceled, err)
		}

		eps := endpointsByHost[b]
		n, k := len(parts), len(eps)
		if n == 0 {
			continue
		}

		offset := 0
		for j, e := range eps {
			size := n / k
			if j < n%k {
				size++
			}
			for _, local := range parts[offset : offset+size] {
				out[e] = append(out[e], orig[local])
			}
			offset += size
		}
	}

	return out, nil
}

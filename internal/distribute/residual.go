package distribute

// Residual folds the affinity-less partitions into the per-endpoint lists.
//
// Two passes over bare, which must be in ascending original order:
//
//  1. Levelling: endpoints below the current maximum list size are topped up
//     in roster order until they reach it or the bare partitions run out.
//  2. Round-robin: anything still remaining is appended cyclically starting
//     at endpoint 0.
//
// Previously placed partitions are never moved. When the levelling pass
// absorbs every bare partition the maximum endpoint size is unchanged;
// otherwise every endpoint has been levelled to that maximum and the
// round-robin pass raises it by ceil(r/n) for the r partitions left over n
// endpoints, so final sizes differ by at most one. The slices in
// perEndpoint are appended to in place and the same slice header array is
// returned.
//
// Parameters:
//   - perEndpoint: Per-endpoint partition lists from the expansion
//   - bare: Original indices of partitions with no usable affinity
//
// Returns:
//   - [][]int: perEndpoint with the bare partitions folded in
func Residual(perEndpoint [][]int, bare []int) [][]int {
	maxSize := 0
	for _, parts := range perEndpoint {
		if len(parts) > maxSize {
			maxSize = len(parts)
		}
	}

	// Levelling pass.
	for e := range perEndpoint {
		if len(bare) == 0 {
			break
		}
		take := maxSize - len(perEndpoint[e])
		if take > len(bare) {
			take = len(bare)
		}
		if take > 0 {
			perEndpoint[e] = append(perEndpoint[e], bare[:take]...)
			bare = bare[take:]
		}
	}

	// Round-robin pass.
	for i, p := range bare {
		e := i % len(perEndpoint)
		perEndpoint[e] = append(perEndpoint[e], p)
	}

	return perEndpoint
}

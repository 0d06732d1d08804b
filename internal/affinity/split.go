package affinity

// SplitResult separates the input partitions for the two assignment paths.
//
// Affinity-bearing partitions are addressed by a local index in [0, nA);
// Orig translates a local index back to the original partition index. A
// partition whose preferred list is non-empty but fully outside the roster
// is still affinity-bearing: its Edges row is empty, the matcher leaves it
// unmatched, and the assigner demotes it to the bare path.
type SplitResult struct {
	// Edges holds, per affinity-bearing partition, its preferred hosts as
	// dense host indices. Hosts outside the roster are stripped; duplicates
	// are dropped, keeping first occurrence.
	Edges [][]int

	// Orig maps each local affinity index to the original partition index.
	Orig []int

	// Bare lists the original indices of partitions with an empty preferred
	// list, in ascending order.
	Bare []int
}

// Split classifies partitions by affinity and resolves preferred hosts
// against the roster.
//
// Parameters:
//   - affinities: Preferred-host lists, one per partition, in partition order
//   - ix: Host index built from the endpoint roster
//
// Returns:
//   - SplitResult: Affinity subgraph edges plus the bare partition list
func Split(affinities [][]string, ix *HostIndex) SplitResult {
	res := SplitResult{}

	for p, hosts := range affinities {
		if len(hosts) == 0 {
			res.Bare = append(res.Bare, p)
			continue
		}

		var edges []int
		for _, host := range hosts {
			b, ok := ix.Lookup(host)
			if !ok {
				// Roster narrower than filesystem replication; normal.
				continue
			}
			if !contains(edges, b) {
				edges = append(edges, b)
			}
		}

		res.Edges = append(res.Edges, edges)
		res.Orig = append(res.Orig, p)
	}

	return res
}

// contains reports whether b is already in edges. Preferred lists are tiny
// (replication factor sized), so a linear scan beats a map here.
func contains(edges []int, b int) bool {
	for _, e := range edges {
		if e == b {
			return true
		}
	}

	return false
}

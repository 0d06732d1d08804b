// Package vecstream assigns the partitions of a distributed batch job to
// the ingestion endpoints of a clustered analytical database, honoring each
// partition's host affinity while keeping per-endpoint load balanced.
//
// # Quick Start
//
//	endpoints := []vecstream.Endpoint{
//	    {Host: "node-1", Port: 27832},
//	    {Host: "node-2", Port: 27832},
//	}
//
//	cfg := vecstream.DefaultConfig()
//	assigner, err := vecstream.New(&cfg, endpoints)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plan, err := assigner.Assign(ctx, affinities)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, parts := range plan.Partitions {
//	    send(endpoints[i], parts)
//	}
//
// # Algorithm
//
// Assignment runs in three phases:
//
//  1. Bipartite matching: partitions carrying affinity are matched to their
//     preferred hosts with a greedy least-loaded seed followed by
//     augmenting-path rebalancing, minimizing the maximum host load.
//  2. Endpoint expansion: each host's partitions are spread evenly over the
//     endpoints bound to that host.
//  3. Residual distribution: partitions without usable affinity level the
//     endpoint lists up, then wrap round-robin.
//
// # Determinism
//
// Given identical affinities and an identically ordered endpoint roster, the
// plan is bitwise identical across runs. Assignment.Fingerprint gives a
// cheap handle on that guarantee, and the optional plan cache reuses plans
// for re-submitted jobs.
//
// # Key Features
//
//   - Locality first: partitions land on a preferred host whenever a
//     balanced matching allows it
//   - Balance bound: no host exceeds ceil(nA/nB) affinity partitions unless
//     no augmenting path exists
//   - Per-endpoint balance: endpoint sizes within a host differ by at most 1
//   - Cooperative cancellation via context between matcher passes and hosts
//   - Placement verification with an optional remote-fraction limit
package vecstream

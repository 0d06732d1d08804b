// Package affinity builds the compact host index for an endpoint roster and
// splits input partitions by whether they carry host affinity.
package affinity

import (
	"github.com/justinegdelta/vecstream/types"
)

// HostIndex maps the distinct hostnames of an endpoint roster to dense
// indices in [0, H) and back to the endpoints bound to each host.
//
// Indices are assigned on first occurrence while iterating the roster in its
// given order. That order stability matters: downstream tie-breaks in the
// matcher and the slicing of the endpoint expander are defined in terms of
// these indices, so a reordered roster produces a different (but equally
// valid) plan.
type HostIndex struct {
	// byName maps hostname to dense host index
	byName map[string]int

	// names holds the hostname for each dense index
	names []string

	// endpointsByHost maps each host index to the roster positions of its
	// endpoints, in roster order
	endpointsByHost [][]int

	// endpoints is the roster the index was built from
	endpoints []types.Endpoint
}

// NewHostIndex builds a host index from an endpoint roster.
//
// Parameters:
//   - endpoints: Endpoint roster in caller-defined stable order
//
// Returns:
//   - *HostIndex: Initialized index
//   - error: types.ErrNoEndpoints when the roster is empty
func NewHostIndex(endpoints []types.Endpoint) (*HostIndex, error) {
	if len(endpoints) == 0 {
		return nil, types.ErrNoEndpoints
	}

	ix := &HostIndex{
		byName:    make(map[string]int, len(endpoints)),
		endpoints: append([]types.Endpoint(nil), endpoints...),
	}

	for i, ep := range ix.endpoints {
		b, ok := ix.byName[ep.Host]
		if !ok {
			b = len(ix.names)
			ix.byName[ep.Host] = b
			ix.names = append(ix.names, ep.Host)
			ix.endpointsByHost = append(ix.endpointsByHost, nil)
		}
		ix.endpointsByHost[b] = append(ix.endpointsByHost[b], i)
	}

	return ix, nil
}

// Lookup returns the dense index of a hostname.
//
// Parameters:
//   - host: Hostname to resolve
//
// Returns:
//   - int: Dense host index in [0, NumHosts())
//   - bool: false when the host is not in the roster
func (ix *HostIndex) Lookup(host string) (int, bool) {
	b, ok := ix.byName[host]

	return b, ok
}

// NumHosts returns the number of distinct hosts in the roster.
func (ix *HostIndex) NumHosts() int {
	return len(ix.names)
}

// NumEndpoints returns the number of endpoints in the roster.
func (ix *HostIndex) NumEndpoints() int {
	return len(ix.endpoints)
}

// Name returns the hostname for a dense host index.
func (ix *HostIndex) Name(b int) string {
	return ix.names[b]
}

// Endpoints returns the roster positions of the endpoints bound to host b,
// in roster order. The returned slice is owned by the index and must not be
// mutated.
func (ix *HostIndex) Endpoints(b int) []int {
	return ix.endpointsByHost[b]
}

// EndpointsByHost returns the per-host endpoint groups, indexed by dense
// host index. The returned slices are owned by the index and must not be
// mutated.
func (ix *HostIndex) EndpointsByHost() [][]int {
	return ix.endpointsByHost
}

// Roster returns the endpoint roster the index was built from. The returned
// slice is owned by the index and must not be mutated.
func (ix *HostIndex) Roster() []types.Endpoint {
	return ix.endpoints
}

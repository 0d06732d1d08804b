package source

import (
	"context"
	"sync"

	"github.com/justinegdelta/vecstream/types"
)

// Static implements an affinity source with a fixed set of preferred-host
// lists.
type Static struct {
	mu         sync.RWMutex
	affinities [][]string
}

var _ types.AffinitySource = (*Static)(nil)

// NewStatic creates a new static affinity source.
//
// The source returns a fixed list of per-partition preferred hosts. Useful
// for testing and for jobs whose block locations were gathered before
// submission.
//
// Parameters:
//   - affinities: Preferred hosts per partition, in partition order
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([][]string{
//	    {"node-1", "node-2"},
//	    {"node-2"},
//	    {},
//	})
//	plan, err := assigner.AssignFrom(ctx, src)
func NewStatic(affinities [][]string) *Static {
	s := &Static{}
	s.Update(affinities)

	return s
}

// ListAffinities returns the static preferred-host lists.
//
// Returns:
//   - [][]string: Deep copy of the fixed affinity lists
//   - error: Always nil (never fails)
func (s *Static) ListAffinities(_ context.Context) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([][]string, len(s.affinities))
	for i, hosts := range s.affinities {
		result[i] = make([]string, len(hosts))
		copy(result[i], hosts)
	}

	return result, nil
}

// Update replaces the affinity lists.
//
// This allows the static source to simulate refreshed block locations,
// which is useful for testing re-submission scenarios.
//
// Parameters:
//   - affinities: New preferred hosts per partition
func (s *Static) Update(affinities [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.affinities = make([][]string, len(affinities))
	for i, hosts := range affinities {
		s.affinities[i] = make([]string, len(hosts))
		copy(s.affinities[i], hosts)
	}
}

// Package bipartite implements the balanced bipartite matching at the heart
// of partition-to-endpoint assignment.
//
// The matching assigns each affinity-bearing partition to one of its
// preferred hosts while minimizing the maximum load over hosts. It runs in
// two phases: a greedy least-loaded seed, then augmenting-path rebalancing
// that moves partitions off overloaded hosts along alternating paths until
// no improving path remains.
package bipartite

import (
	"context"
	"fmt"

	"go.uber.org/atomic"

	"github.com/justinegdelta/vecstream/types"
)

// Matcher computes a balanced matching from affinity partitions to hosts.
//
// Partitions and hosts are addressed by dense indices: partition a in
// [0, nA) and host b in [0, nB). The per-partition forward edges and the
// per-host reverse edges are two parallel arrays of arrays; there is no
// object graph and no pointers, so the whole state fits a handful of flat
// slices.
//
// A Matcher is one-shot: construct it, call Run exactly once, then read the
// result. All state is allocated eagerly on construction and owned
// exclusively by that one run; nothing is shared or exposed.
type Matcher struct {
	nA     int
	nB     int
	target int

	// edges holds the preferred hosts of each partition as host indices.
	edges [][]int

	// rev holds, per host, the partitions listing it, in ascending order.
	// Augmenting-path traversal walks these via cursor.
	rev [][]int

	// matchFor is the host each partition is matched to, or -1.
	matchFor []int

	// load counts the partitions currently matched to each host.
	load []int

	// cursor is the per-host position within rev, reset each outer pass.
	cursor []int

	// visited flags partitions seen by the DFS during the current pass.
	visited []bool

	passes int
	ran    atomic.Bool
}

// frame is one explicit DFS stack entry: partition a, and the index of the
// forward edge whose host the frame last descended into (-1 before the first
// visit).
type frame struct {
	a     int
	afidx int
}

// NewMatcher creates a matcher over the affinity subgraph.
//
// The target load is ceil(nA / numHosts): the ideal upper bound on
// partitions per host for a perfectly balanced matching.
//
// Parameters:
//   - edges: Preferred hosts per partition, as dense host indices
//   - numHosts: Number of distinct hosts, must be >= 1
//
// Returns:
//   - *Matcher: Matcher ready for a single Run
func NewMatcher(edges [][]int, numHosts int) *Matcher {
	nA := len(edges)

	target := 0
	if numHosts > 0 {
		target = nA / numHosts
		if nA%numHosts != 0 {
			target++
		}
	}

	m := &Matcher{
		nA:       nA,
		nB:       numHosts,
		target:   target,
		edges:    edges,
		rev:      make([][]int, numHosts),
		matchFor: make([]int, nA),
		load:     make([]int, numHosts),
		cursor:   make([]int, numHosts),
		visited:  make([]bool, nA),
	}

	for a := range edges {
		m.matchFor[a] = -1
	}

	return m
}

// Run executes the matching and returns the per-host partition sets.
//
// Element b of the result lists the local partition indices matched to host
// b, in ascending order. Partitions with an empty edge set stay unmatched
// and are reported by Unmatched instead; callers demote them to the bare
// path.
//
// The context is consulted between rebalance passes; a canceled run returns
// types.ErrCanceled and its partial state is discarded.
//
// Complexity is O(|E| * sqrt(nA + nB)); with bounded-degree affinity (the
// usual filesystem replication factor) that reduces to O(nA * sqrt(nA)).
//
// Parameters:
//   - ctx: Context for cooperative cancellation
//
// Returns:
//   - [][]int: Local partition indices per host
//   - error: types.ErrCanceled on cancellation, types.ErrInternal on misuse
func (m *Matcher) Run(ctx context.Context) ([][]int, error) {
	if !m.ran.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("%w: matcher already ran", types.ErrInternal)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	m.buildReverseEdges()
	m.seed()

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrCanceled, err)
		}
		if !m.rebalancePass() {
			break
		}
	}

	out := make([][]int, m.nB)
	for a, b := range m.matchFor {
		if b >= 0 {
			out[b] = append(out[b], a)
		}
	}

	return out, nil
}

// Unmatched returns the local indices of partitions left without a host, in
// ascending order. Only meaningful after Run.
func (m *Matcher) Unmatched() []int {
	var unmatched []int
	for a, b := range m.matchFor {
		if b < 0 {
			unmatched = append(unmatched, a)
		}
	}

	return unmatched
}

// Passes returns the number of rebalance passes Run performed.
func (m *Matcher) Passes() int {
	return m.passes
}

// Target returns the derived per-host load bound ceil(nA / nB).
func (m *Matcher) Target() int {
	return m.target
}

// validate checks edge indices against the host range. A violation is a
// programming error upstream, never a data error.
func (m *Matcher) validate() error {
	for a, hosts := range m.edges {
		for _, b := range hosts {
			if b < 0 || b >= m.nB {
				return fmt.Errorf("%w: partition %d references host %d outside [0, %d)",
					types.ErrInternal, a, b, m.nB)
			}
		}
	}

	return nil
}

func (m *Matcher) buildReverseEdges() {
	for a, hosts := range m.edges {
		for _, b := range hosts {
			m.rev[b] = append(m.rev[b], a)
		}
	}
}

// seed assigns each partition to its least-loaded preferred host, breaking
// ties by lowest host index. Partitions with no edges stay unmatched.
func (m *Matcher) seed() {
	for a, hosts := range m.edges {
		best := -1
		for _, b := range hosts {
			if best == -1 || m.load[b] < m.load[best] || (m.load[b] == m.load[best] && b < best) {
				best = b
			}
		}
		if best >= 0 {
			m.matchFor[a] = best
			m.load[best]++
		}
	}
}

// rebalancePass walks every overloaded host in ascending order and tries to
// push partitions off it along augmenting paths. It reports whether any
// augmentation succeeded; the caller repeats passes until one comes back
// clean.
func (m *Matcher) rebalancePass() bool {
	m.passes++

	for a := range m.visited {
		m.visited[a] = false
	}
	for b := range m.cursor {
		m.cursor[b] = 0
	}

	dirty := false
	for b := 0; b < m.nB; b++ {
		for m.load[b] > m.target && m.cursor[b] < len(m.rev[b]) {
			a := m.rev[b][m.cursor[b]]
			m.cursor[b]++
			if m.matchFor[a] != b || m.visited[a] {
				continue
			}
			if m.augment(a) {
				dirty = true
			}
		}
	}

	return dirty
}

// augment searches for an alternating path from partition a to any host with
// spare capacity, and applies it by rewriting matches along the way.
//
// The DFS uses an explicit stack of (partition, edge index) frames instead
// of recursion: affinity graphs can be wide and paths long enough to blow
// the call stack. Each pop either terminates the path directly (some
// preferred host is below target), descends into the next forward edge by
// stealing a partition currently matched there, or backtracks by letting the
// frame die. Once a terminal move is found, the remaining frames on the
// stack are exactly the path's ancestors, and each rewrites its match to the
// host it descended into.
func (m *Matcher) augment(start int) bool {
	stack := []frame{{a: start, afidx: -1}}
	found := false

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if found {
			// Unwind: take over the host this frame descended into; its
			// previous owner has already moved on.
			m.reassign(f.a, m.edges[f.a][f.afidx])
			continue
		}

		if f.afidx == -1 {
			m.visited[f.a] = true
			if b, ok := m.spareHost(f.a); ok {
				m.reassign(f.a, b)
				found = true
				continue
			}
		}

		for idx := f.afidx + 1; idx < len(m.edges[f.a]); idx++ {
			b := m.edges[f.a][idx]
			next := m.nextCandidate(b)
			if next >= 0 {
				stack = append(stack, frame{a: f.a, afidx: idx}, frame{a: next, afidx: -1})
				break
			}
		}
	}

	return found
}

// spareHost returns the first preferred host of a, other than its current
// match, whose load is below target.
func (m *Matcher) spareHost(a int) (int, bool) {
	for _, b := range m.edges[a] {
		if b != m.matchFor[a] && m.load[b] < m.target {
			return b, true
		}
	}

	return 0, false
}

// reassign moves partition a onto host b, keeping the load counters in step
// with the match map.
func (m *Matcher) reassign(a, b int) {
	if cur := m.matchFor[a]; cur >= 0 {
		m.load[cur]--
	}
	m.matchFor[a] = b
	m.load[b]++
}

// nextCandidate advances cursor[b] past partitions already visited or no
// longer matched to b, returning the next partition the DFS may steal from
// host b, or -1 when the cursor is exhausted.
//
// The cursor is shared across all augment calls within one pass. That makes
// a pass linear in |E|: every reverse edge is inspected at most once no
// matter how many paths are searched.
func (m *Matcher) nextCandidate(b int) int {
	for m.cursor[b] < len(m.rev[b]) {
		a := m.rev[b][m.cursor[b]]
		if !m.visited[a] && m.matchFor[a] == b {
			return a
		}
		m.cursor[b]++
	}

	return -1
}

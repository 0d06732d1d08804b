package vecstream

import (
	"context"
	"encoding/binary"
	"fmt"
	"slices"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/zeebo/xxh3"

	"github.com/justinegdelta/vecstream/internal/affinity"
	"github.com/justinegdelta/vecstream/internal/bipartite"
	"github.com/justinegdelta/vecstream/internal/distribute"
	"github.com/justinegdelta/vecstream/internal/logger"
	"github.com/justinegdelta/vecstream/internal/metrics"
	"github.com/justinegdelta/vecstream/types"
)

// Assigner computes locality-aware partition-to-endpoint assignments for one
// endpoint roster.
//
// Assigner is the main entry point of the library. Each Assign call runs the
// full three-phase pipeline:
//   - Bipartite matching of affinity partitions to hosts
//   - Expansion of per-host sets over each host's endpoints
//   - Residual distribution of affinity-less partitions
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Every Assign call builds fresh matcher state; nothing mutable is
//     shared between runs
//
// Determinism:
//   - Identical affinities against the same Assigner produce bitwise
//     identical plans
type Assigner struct {
	cfg   Config
	index *affinity.HostIndex

	logger  Logger
	metrics MetricsCollector

	// cache holds computed plans keyed by input fingerprint; nil unless
	// Config.EnablePlanCache is set.
	cache *xsync.Map[uint64, *types.Assignment]
}

// New creates an Assigner for the given endpoint roster.
//
// The roster order is significant: it defines the dense host indexing and
// therefore every deterministic tie-break downstream. Callers wanting
// reproducible plans across processes must pass the roster in a stable
// order.
//
// Returns a concrete *Assigner following the "accept interfaces, return
// structs" principle; consumers can define their own interfaces for
// testing.
//
// Parameters:
//   - cfg: Configuration (use DefaultConfig() for defaults)
//   - endpoints: Endpoint roster, length >= 1
//   - opts: Optional configuration (logger, metrics)
//
// Returns:
//   - *Assigner: Initialized assigner
//   - error: ErrInvalidConfig or ErrNoEndpoints
//
// Example:
//
//	cfg := vecstream.DefaultConfig()
//	assigner, err := vecstream.New(&cfg, endpoints, vecstream.WithLogger(logger))
func New(cfg *Config, endpoints []types.Endpoint, opts ...Option) (*Assigner, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	index, err := affinity.NewHostIndex(endpoints)
	if err != nil {
		return nil, err
	}

	options := &assignerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	a := &Assigner{
		cfg:     *cfg,
		index:   index,
		logger:  options.logger,
		metrics: options.metrics,
	}
	if a.logger == nil {
		a.logger = logger.NewNop()
	}
	if a.metrics == nil {
		a.metrics = metrics.NewNop()
	}
	if cfg.EnablePlanCache {
		a.cache = xsync.NewMap[uint64, *types.Assignment]()
	}

	return a, nil
}

// Assign is a convenience wrapper that builds a one-shot Assigner with
// default configuration and runs a single assignment.
//
// Parameters:
//   - ctx: Context for cooperative cancellation
//   - affinities: Preferred hosts per partition, in partition order
//   - endpoints: Endpoint roster, length >= 1
//   - opts: Optional configuration (logger, metrics)
//
// Returns:
//   - *types.Assignment: Per-endpoint partition lists
//   - error: See (*Assigner).Assign
func Assign(ctx context.Context, affinities [][]string, endpoints []types.Endpoint, opts ...Option) (*types.Assignment, error) {
	cfg := DefaultConfig()
	a, err := New(&cfg, endpoints, opts...)
	if err != nil {
		return nil, err
	}

	return a.Assign(ctx, affinities)
}

// Assign computes the per-endpoint partition lists for one batch job.
//
// Element i of the result lists the original partition indices assigned to
// endpoint i of the roster. Every input partition appears exactly once
// across the lists. Partitions whose preferred hosts intersect the roster
// land on one of those hosts whenever a balanced matching allows it; the
// rest fill capacity slack and wrap round-robin.
//
// Cancellation is cooperative: the context is consulted between matcher
// rebalance passes and between hosts during expansion. A canceled run
// returns ErrCanceled and discards partial results.
//
// Parameters:
//   - ctx: Context for cooperative cancellation
//   - affinities: Preferred hosts per partition, in partition order; entries
//     may be empty, and hosts outside the roster are silently stripped
//
// Returns:
//   - *types.Assignment: Immutable plan; do not mutate, Clone if needed
//   - error: ErrCanceled, ErrRemoteFractionExceeded, or ErrInternal
func (a *Assigner) Assign(ctx context.Context, affinities [][]string) (*types.Assignment, error) {
	start := time.Now()

	var key uint64
	if a.cache != nil {
		key = a.inputFingerprint(affinities)
		if plan, ok := a.cache.Load(key); ok {
			a.metrics.RecordPlanCacheLookup(true)
			a.logger.Debug("assignment plan reused from cache",
				"partitions", len(affinities),
				"fingerprint", plan.Fingerprint(),
			)

			return plan.Clone(), nil
		}
		a.metrics.RecordPlanCacheLookup(false)
	}

	split := affinity.Split(affinities, a.index)
	bare := split.Bare

	hostParts := make([][]int, a.index.NumHosts())
	passes := 0
	demoted := 0
	if len(split.Edges) > 0 {
		m := bipartite.NewMatcher(split.Edges, a.index.NumHosts())

		var err error
		hostParts, err = m.Run(ctx)
		if err != nil {
			return nil, err
		}
		passes = m.Passes()

		// Partitions whose whole preferred list was outside the roster have
		// no edges and stay unmatched; they take the bare path instead.
		if unmatched := m.Unmatched(); len(unmatched) > 0 {
			demoted = len(unmatched)
			for _, local := range unmatched {
				bare = append(bare, split.Orig[local])
			}
			slices.Sort(bare)
		}
	}

	perEndpoint, err := distribute.Expand(ctx, hostParts, a.index.EndpointsByHost(), split.Orig, a.index.NumEndpoints())
	if err != nil {
		return nil, err
	}
	perEndpoint = distribute.Residual(perEndpoint, bare)

	matched := len(split.Edges) - demoted
	remote := a.countRemote(affinities, perEndpoint)
	if a.cfg.MaxRemoteFraction > 0 && len(split.Edges) > 0 {
		frac := float64(remote) / float64(len(split.Edges))
		if frac > a.cfg.MaxRemoteFraction {
			return nil, fmt.Errorf("%w: %d of %d affinity partitions are remote (%.3f > %.3f)",
				ErrRemoteFractionExceeded, remote, len(split.Edges), frac, a.cfg.MaxRemoteFraction)
		}
	}

	plan := &types.Assignment{
		Endpoints:  append([]types.Endpoint(nil), a.index.Roster()...),
		Partitions: perEndpoint,
	}

	a.metrics.RecordAssignmentDuration(time.Since(start).Seconds())
	a.metrics.RecordPartitionCounts(matched, len(bare))
	a.metrics.RecordMatcherPasses(passes)
	a.metrics.RecordRemotePartitions(remote)

	a.logger.Debug("assignment computed",
		"partitions", len(affinities),
		"affinity", matched,
		"bare", len(bare),
		"endpoints", a.index.NumEndpoints(),
		"hosts", a.index.NumHosts(),
		"matcherPasses", passes,
		"remote", remote,
		"fingerprint", plan.Fingerprint(),
	)

	if a.cache != nil {
		a.cache.Store(key, plan)
	}

	return plan, nil
}

// AssignFrom runs Assign on the affinities provided by a source.
//
// Parameters:
//   - ctx: Context for cancellation and deadline
//   - src: Affinity source, typically the connection layer asking the
//     distributed filesystem for block locations
//
// Returns:
//   - *types.Assignment: Per-endpoint partition lists
//   - error: ErrAffinitySourceRequired, a wrapped source error, or any
//     Assign error
func (a *Assigner) AssignFrom(ctx context.Context, src types.AffinitySource) (*types.Assignment, error) {
	if src == nil {
		return nil, ErrAffinitySourceRequired
	}

	affinities, err := src.ListAffinities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list affinities: %w", err)
	}

	return a.Assign(ctx, affinities)
}

// Endpoints returns the roster the assigner was built for, in input order.
func (a *Assigner) Endpoints() []types.Endpoint {
	return append([]types.Endpoint(nil), a.index.Roster()...)
}

// countRemote counts partitions placed on an endpoint whose host is outside
// the partition's preferred set. A matched partition is local by
// construction, so the count surfaces the partitions whose preference could
// not be honored: demoted ones, and nothing else unless an invariant broke.
// Partitions with an empty preferred list are never remote; they had no
// locality to lose.
func (a *Assigner) countRemote(affinities [][]string, perEndpoint [][]int) int {
	remote := 0
	roster := a.index.Roster()

	for e, parts := range perEndpoint {
		host := roster[e].Host
		for _, p := range parts {
			prefs := affinities[p]
			if len(prefs) > 0 && !slices.Contains(prefs, host) {
				remote++
			}
		}
	}

	return remote
}

// inputFingerprint hashes the affinity lists into the plan cache key. The
// roster is fixed per Assigner, so it does not participate. Each component
// is folded into the running xxh3 value with the previous hash as seed, so
// no intermediate encoding buffer is built.
func (a *Assigner) inputFingerprint(affinities [][]string) uint64 {
	var ib [8]byte
	binary.LittleEndian.PutUint64(ib[:], uint64(len(affinities)))
	h := xxh3.Hash(ib[:])

	for _, hosts := range affinities {
		binary.LittleEndian.PutUint64(ib[:], uint64(len(hosts)))
		h = xxh3.HashSeed(ib[:], h)
		for _, name := range hosts {
			h = xxh3.HashStringSeed(name, h)
		}
	}

	return h
}

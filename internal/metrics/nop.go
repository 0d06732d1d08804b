// Package metrics provides MetricsCollector implementations for the
// assignment engine.
package metrics

import "github.com/justinegdelta/vecstream/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordAssignmentDuration discards the duration metric.
func (n *NopMetrics) RecordAssignmentDuration(_ /* duration */ float64) {}

// RecordPartitionCounts discards the partition count metrics.
func (n *NopMetrics) RecordPartitionCounts(_ /* affinity */, _ /* bare */ int) {}

// RecordMatcherPasses discards the pass count metric.
func (n *NopMetrics) RecordMatcherPasses(_ /* passes */ int) {}

// RecordRemotePartitions discards the remote partition metric.
func (n *NopMetrics) RecordRemotePartitions(_ /* count */ int) {}

// RecordPlanCacheLookup discards the cache lookup metric.
func (n *NopMetrics) RecordPlanCacheLookup(_ /* hit */ bool) {}

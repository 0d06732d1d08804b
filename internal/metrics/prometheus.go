package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/justinegdelta/vecstream/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	assignDuration  prometheus.Histogram
	partitionsGauge *prometheus.GaugeVec
	matcherPasses   prometheus.Histogram
	remoteGauge     prometheus.Gauge
	cacheLookups    *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "vecstream" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "vecstream"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.assignDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of full assignment runs in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100us .. ~26s
		})

		p.partitionsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "partitions",
			Help:      "Input partition counts of the last run by kind (affinity/bare).",
		}, []string{"kind"})

		p.matcherPasses = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "matcher",
			Name:      "rebalance_passes",
			Help:      "Rebalance passes needed per run before the matching stabilized.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
		})

		p.remoteGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "remote_partitions",
			Help:      "Partitions placed outside their affinity set in the last run.",
		})

		p.cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "plan_cache",
			Name:      "lookups_total",
			Help:      "Total plan cache lookups by result (hit/miss).",
		}, []string{"result"})

		for _, c := range []prometheus.Collector{
			p.assignDuration, p.partitionsGauge, p.matcherPasses, p.remoteGauge, p.cacheLookups,
		} {
			// Tolerate duplicate registration across collector instances.
			_ = p.reg.Register(c)
		}
	})
}

// RecordAssignmentDuration records the wall-clock time of one run.
func (p *PrometheusCollector) RecordAssignmentDuration(duration float64) {
	p.ensureRegistered()
	p.assignDuration.Observe(duration)
}

// RecordPartitionCounts records the affinity/bare split of the input.
func (p *PrometheusCollector) RecordPartitionCounts(affinity, bare int) {
	p.ensureRegistered()
	p.partitionsGauge.WithLabelValues("affinity").Set(float64(affinity))
	p.partitionsGauge.WithLabelValues("bare").Set(float64(bare))
}

// RecordMatcherPasses records the matcher's rebalance pass count.
func (p *PrometheusCollector) RecordMatcherPasses(passes int) {
	p.ensureRegistered()
	p.matcherPasses.Observe(float64(passes))
}

// RecordRemotePartitions records the post-verification remote count.
func (p *PrometheusCollector) RecordRemotePartitions(count int) {
	p.ensureRegistered()
	p.remoteGauge.Set(float64(count))
}

// RecordPlanCacheLookup records a plan cache lookup outcome.
func (p *PrometheusCollector) RecordPlanCacheLookup(hit bool) {
	p.ensureRegistered()
	result := "miss"
	if hit {
		result = "hit"
	}
	p.cacheLookups.WithLabelValues(result).Inc()
}

package vecstream

// Option configures an Assigner with optional dependencies.
type Option func(*assignerOptions)

// assignerOptions holds optional Assigner configuration.
type assignerOptions struct {
	logger  Logger
	metrics MetricsCollector
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger via
//     the logging adapter)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	assigner, err := vecstream.New(&cfg, endpoints, vecstream.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *assignerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "vecstream")
//	assigner, err := vecstream.New(&cfg, endpoints, vecstream.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *assignerOptions) {
		o.metrics = metrics
	}
}

// Package telemetry instruments the Lumen core with Prometheus metrics
// and OpenTelemetry traces. It attaches to the hook points the core
// exposes (scheduler flush hooks, patcher observers, reconciler
// mutation observers) so the core itself carries no collection
// dependencies.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lumen-ui/lumen/pkg/attrs"
	"github.com/lumen-ui/lumen/pkg/patch"
	"github.com/lumen-ui/lumen/pkg/reactive"
)

// Config configures metric registration.
type Config struct {
	// Namespace is the metrics namespace (default: "lumen").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for flush duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures the metrics setup.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the flush-duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "lumen",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus instruments for the Lumen core.
//
// Metrics collected:
//   - lumen_flushes_total: counter of scheduler flushes
//   - lumen_flush_duration_seconds: histogram of flush durations
//   - lumen_signals_flushed_total: counter of signal notifications delivered
//   - lumen_watcher_calls_total: counter of watcher invocations
//   - lumen_flush_errors_total: counter of corrupted-signal flush errors
//   - lumen_patch_ops_total: counter of node patch operations by op
//   - lumen_attr_mutations_total: counter of attribute mutations by
//     category and kind
type Metrics struct {
	flushesTotal  prometheus.Counter
	flushDuration prometheus.Histogram
	signalsTotal  prometheus.Counter
	watcherCalls  prometheus.Counter
	flushErrors   prometheus.Counter
	patchOps      *prometheus.CounterVec
	attrMutations *prometheus.CounterVec
}

// New registers the Lumen core metrics and returns accessors for the
// core's hook points.
func New(opts ...Option) *Metrics {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		flushesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flushes_total",
			Help:        "Total number of scheduler flushes",
			ConstLabels: config.ConstLabels,
		}),
		flushDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flush_duration_seconds",
			Help:        "Scheduler flush duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
		signalsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "signals_flushed_total",
			Help:        "Total number of signal notifications delivered",
			ConstLabels: config.ConstLabels,
		}),
		watcherCalls: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "watcher_calls_total",
			Help:        "Total number of watcher invocations",
			ConstLabels: config.ConstLabels,
		}),
		flushErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flush_errors_total",
			Help:        "Total number of flushes that raised corrupted-signal errors",
			ConstLabels: config.ConstLabels,
		}),
		patchOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patch_ops_total",
			Help:        "Total number of node patch operations applied",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),
		attrMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "attr_mutations_total",
			Help:        "Total number of attribute mutations by category and kind",
			ConstLabels: config.ConstLabels,
		}, []string{"category", "kind"}),
	}
}

// FlushHook returns a scheduler flush hook feeding the flush metrics.
//
//	sched := reactive.NewScheduler(reactive.WithFlushHook(m.FlushHook()))
func (m *Metrics) FlushHook() func(reactive.FlushStats) {
	return func(fs reactive.FlushStats) {
		m.flushesTotal.Inc()
		m.flushDuration.Observe(fs.Duration.Seconds())
		m.signalsTotal.Add(float64(fs.Signals))
		m.watcherCalls.Add(float64(fs.Watchers))
		if fs.Err != nil {
			m.flushErrors.Inc()
		}
	}
}

// PatchObserver returns a patcher observer feeding the patch-op counter.
//
//	p := patch.New(patch.WithObserver(m.PatchObserver()))
func (m *Metrics) PatchObserver() patch.Observer {
	return func(op patch.Op, tag string) {
		m.patchOps.WithLabelValues(op.String()).Inc()
	}
}

// MutationObserver returns a reconciler observer feeding the
// attribute-mutation counter.
//
//	r := attrs.New(attrs.WithMutationObserver(m.MutationObserver()))
func (m *Metrics) MutationObserver() attrs.MutationObserver {
	return func(mu attrs.Mutation) {
		m.attrMutations.WithLabelValues(mu.Category.String(), mu.Kind.String()).Inc()
	}
}

// Package metricscollector exposes prometheus counters/histograms for
// property runs, opt-in and off by default (spec.md's metrics Non-goal
// excludes a reporting pipeline being mandatory, but the ambient stack
// still gets an optional hook the way this ecosystem instruments batch
// jobs).
package metricscollector

import "github.com/prometheus/client_golang/prometheus"

// Collector holds the metrics one property suite's runs are recorded
// against. A nil *Collector is valid and records nothing, so callers that
// never opt in pay no overhead.
type Collector struct {
	runs        *prometheus.CounterVec
	discards    *prometheus.CounterVec
	failures    *prometheus.CounterVec
	shrinkSteps prometheus.Histogram
}

// New constructs a Collector and registers its metrics against reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "proptest_runs_total",
			Help: "Number of property examples executed, by property name.",
		}, []string{"property"}),
		discards: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "proptest_discards_total",
			Help: "Number of inputs discarded before reaching a verdict, by property name.",
		}, []string{"property"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "proptest_failures_total",
			Help: "Number of properties that ended in a falsifiable counterexample.",
		}, []string{"property"}),
		shrinkSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "proptest_shrink_steps",
			Help:    "Number of shrink steps taken to reach a reported counterexample.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
	reg.MustRegister(c.runs, c.discards, c.failures, c.shrinkSteps)
	return c
}

// Run records one completed example for property name.
func (c *Collector) Run(name string) {
	if c == nil {
		return
	}
	c.runs.WithLabelValues(name).Inc()
}

// Discard records one discarded input for property name.
func (c *Collector) Discard(name string) {
	if c == nil {
		return
	}
	c.discards.WithLabelValues(name).Inc()
}

// Failure records a falsifiable property and the shrink depth it took to
// report the counterexample.
func (c *Collector) Failure(name string, shrinkSteps int) {
	if c == nil {
		return
	}
	c.failures.WithLabelValues(name).Inc()
	c.shrinkSteps.Observe(float64(shrinkSteps))
}

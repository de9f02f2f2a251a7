// Package metrics provides performance tracking for Spawnpool using
// Prometheus metrics. It offers collectors for pool activity: acquisition
// outcomes, release volume, instance populations, and acquire latency.
//
// # Basic Usage
//
//	collector := metrics.NewCollector("game-entities")
//
//	start := time.Now()
//	inst, err := p.Acquire("enemy")
//	collector.RecordAcquire("enemy", metrics.OutcomeRecycled, time.Since(start))
//
//	collector.SetActive(p.ActiveCount())
//	collector.SetIdle("enemy", p.InactiveCount("enemy"))
//
// The pool core does not import this package; wiring happens in the
// caller (typically through pool hooks), keeping the library surface
// dependency-light.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Acquisition outcome labels.
const (
	OutcomeRecycled    = "recycled"
	OutcomeConstructed = "constructed"
	OutcomeFailed      = "failed"
)

var (
	// AcquiresTotal counts acquisitions by template and outcome.
	AcquiresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spawnpool_acquires_total",
			Help: "Total acquisitions by template and outcome (recycled, constructed, failed)",
		},
		[]string{"pool", "template", "outcome"},
	)

	// ReleasesTotal counts effective releases by template.
	ReleasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spawnpool_releases_total",
			Help: "Total effective releases by template",
		},
		[]string{"pool", "template"},
	)

	// PrewarmedTotal counts instances created by prewarming.
	PrewarmedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spawnpool_prewarmed_total",
			Help: "Total instances constructed by prewarm",
		},
		[]string{"pool", "template"},
	)

	// ActiveInstances tracks the checked-out instance count per pool.
	ActiveInstances = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "spawnpool_active_instances",
			Help: "Instances currently checked out",
		},
		[]string{"pool"},
	)

	// IdleInstances tracks the idle instance count per template.
	IdleInstances = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "spawnpool_idle_instances",
			Help: "Instances currently idle per template",
		},
		[]string{"pool", "template"},
	)

	// AcquireLatency tracks acquisition latency distribution.
	AcquireLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spawnpool_acquire_duration_seconds",
			Help:    "Acquisition latency, dominated by factory construction on misses",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
		[]string{"pool", "template"},
	)
)

// Collector provides a centralized metrics recording interface for one
// pool. Each pool deployment should create its own collector.
type Collector struct {
	pool      string
	startTime time.Time
}

// NewCollector creates a metrics collector labeled with the pool name.
func NewCollector(pool string) *Collector {
	return &Collector{
		pool:      pool,
		startTime: time.Now(),
	}
}

// StartTime returns when the collector was created
func (c *Collector) StartTime() time.Time {
	return c.startTime
}

// Uptime returns how long the collector has been alive
func (c *Collector) Uptime() time.Duration {
	return time.Since(c.startTime)
}

// RecordAcquire records one acquisition with its outcome and latency.
func (c *Collector) RecordAcquire(template, outcome string, d time.Duration) {
	AcquiresTotal.WithLabelValues(c.pool, template, outcome).Inc()
	AcquireLatency.WithLabelValues(c.pool, template).Observe(d.Seconds())
}

// RecordRelease records one effective release.
func (c *Collector) RecordRelease(template string) {
	ReleasesTotal.WithLabelValues(c.pool, template).Inc()
}

// RecordPrewarm records n instances constructed by prewarming.
func (c *Collector) RecordPrewarm(template string, n int) {
	PrewarmedTotal.WithLabelValues(c.pool, template).Add(float64(n))
}

// SetActive updates the active instance gauge.
func (c *Collector) SetActive(n int) {
	ActiveInstances.WithLabelValues(c.pool).Set(float64(n))
}

// SetIdle updates the idle instance gauge for a template.
func (c *Collector) SetIdle(template string, n int) {
	IdleInstances.WithLabelValues(c.pool, template).Set(float64(n))
}

// Handler returns the HTTP handler serving the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

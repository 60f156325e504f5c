// Package metrics exposes the loader's Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "remote_image_loader"

const (
	OutcomeDelivered  = "delivered"
	OutcomeSuperseded = "superseded"
	OutcomeFailed     = "failed"

	LookupHit  = "hit"
	LookupMiss = "miss"
	LookupErr  = "error"
)

// Collector groups every metric the loader records. A nil *Collector is valid
// and records nothing.
type Collector struct {
	CacheLookups   *prometheus.CounterVec
	CacheEvictions *prometheus.CounterVec
	Sessions       *prometheus.CounterVec
	ActiveSessions prometheus.Gauge
	FetchDuration  *prometheus.HistogramVec
	DecodeDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Response cache lookups by tier and result.",
		}, []string{"tier", "result"}),
		CacheEvictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Entries evicted to stay within a tier budget.",
		}, []string{"tier"}),
		Sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "completed_total",
			Help:      "Load sessions by terminal outcome.",
		}, []string{"outcome"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "active",
			Help:      "Consumers with a session in flight.",
		}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "duration_seconds",
			Help:      "Network fetch duration.",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"result"}),
		DecodeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "decode",
			Name:      "duration_seconds",
			Help:      "Bitmap decode duration.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"mode"}),
	}

	reg.MustRegister(
		c.CacheLookups,
		c.CacheEvictions,
		c.Sessions,
		c.ActiveSessions,
		c.FetchDuration,
		c.DecodeDuration,
	)
	return c
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func (c *Collector) CacheLookup(tier, result string) {
	if c == nil {
		return
	}
	c.CacheLookups.WithLabelValues(tier, result).Inc()
}

func (c *Collector) CacheEvicted(tier string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.CacheEvictions.WithLabelValues(tier).Add(float64(n))
}

func (c *Collector) SessionCompleted(outcome string) {
	if c == nil {
		return
	}
	c.Sessions.WithLabelValues(outcome).Inc()
}

func (c *Collector) SetActiveSessions(n int) {
	if c == nil {
		return
	}
	c.ActiveSessions.Set(float64(n))
}

func (c *Collector) ObserveFetch(result string, since time.Time) {
	if c == nil {
		return
	}
	c.FetchDuration.WithLabelValues(result).Observe(time.Since(since).Seconds())
}

func (c *Collector) ObserveDecode(mode string, since time.Time) {
	if c == nil {
		return
	}
	c.DecodeDuration.WithLabelValues(mode).Observe(time.Since(since).Seconds())
}

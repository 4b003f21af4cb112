package ntt2x2

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PipelineMetrics holds the prometheus collectors the engine updates on
// every fwdntt/invntt/mul call. Nil is a valid, zero-cost value: the
// package only records metrics once SetMetrics installs one, the same
// opt-in posture as Debug.
type PipelineMetrics struct {
	invocations *prometheus.CounterVec
	ticks       *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewPipelineMetrics builds and registers a fresh set of collectors
// against the default prometheus registry, following the constructor
// pattern cloudflared's origin.TunnelMetrics uses for its own counters.
func NewPipelineMetrics() *PipelineMetrics {
	m := &PipelineMetrics{
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ntt2x2_invocations_total",
			Help: "Number of times each pipeline operation has run.",
		}, []string{"op"}),
		ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ntt2x2_ticks_total",
			Help: "Pipeline ticks processed, including drain cycles.",
		}, []string{"op"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ntt2x2_duration_seconds",
			Help:    "Wall-clock time spent inside each pipeline operation.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
	}
	prometheus.MustRegister(m.invocations, m.ticks, m.duration)
	return m
}

func (m *PipelineMetrics) observe(op string, ticks int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.invocations.WithLabelValues(op).Inc()
	m.ticks.WithLabelValues(op).Add(float64(ticks))
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// Metrics is the package-level collector set the engine reports to.
// It is nil until SetMetrics is called, matching the core's total,
// no-I/O-by-default posture.
var Metrics *PipelineMetrics

// SetMetrics installs m as the package's metrics sink. Pass nil to
// disable reporting again.
func SetMetrics(m *PipelineMetrics) {
	Metrics = m
}

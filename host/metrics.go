package host

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments the runtime host. A nil *Metrics is safe everywhere:
// observability never gates or fails a host operation.
type Metrics struct {
	registeredQueries prometheus.Gauge
	queriesStarted    prometheus.Counter
	queriesStopped    prometheus.Counter
	uncaughtFailures  *prometheus.CounterVec
	errorQueueDepth   prometheus.Gauge
}

// NewMetrics builds host metrics registered against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		registeredQueries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "manifold",
			Subsystem: "host",
			Name:      "registered_queries",
			Help:      "Number of queries currently registered on the shared runtime.",
		}),
		queriesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "manifold",
			Subsystem: "host",
			Name:      "queries_started_total",
			Help:      "Total number of successful query starts.",
		}),
		queriesStopped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "manifold",
			Subsystem: "host",
			Name:      "queries_stopped_total",
			Help:      "Total number of accepted query removal requests.",
		}),
		uncaughtFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "manifold",
			Subsystem: "host",
			Name:      "uncaught_failures_total",
			Help:      "Total uncaught engine worker failures, by classified kind.",
		}, []string{"kind"}),
		errorQueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "manifold",
			Subsystem: "host",
			Name:      "error_queue_depth",
			Help:      "Records currently retained in the bounded error queue.",
		}),
	}

	reg.MustRegister(
		m.registeredQueries,
		m.queriesStarted,
		m.queriesStopped,
		m.uncaughtFailures,
		m.errorQueueDepth,
	)
	return m
}

func (m *Metrics) observeRegistered(count int) {
	if m == nil {
		return
	}
	m.registeredQueries.Set(float64(count))
}

func (m *Metrics) observeStart() {
	if m == nil {
		return
	}
	m.queriesStarted.Inc()
}

func (m *Metrics) observeStop() {
	if m == nil {
		return
	}
	m.queriesStopped.Inc()
}

func (m *Metrics) observeFailure(kind Kind, queueDepth int) {
	if m == nil {
		return
	}
	m.uncaughtFailures.WithLabelValues(string(kind)).Inc()
	m.errorQueueDepth.Set(float64(queueDepth))
}

package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	logsPicked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gutters",
			Subsystem: "relay",
			Name:      "logs_picked_up_total",
			Help:      "Logs picked up from connected gutters.",
		},
		[]string{"listener"},
	)
	logsThrown = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gutters",
			Subsystem: "relay",
			Name:      "logs_thrown_total",
			Help:      "Logs echoed back down connected gutters.",
		},
		[]string{"listener"},
	)
	hailsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gutters",
			Subsystem: "relay",
			Name:      "hails_total",
			Help:      "Handshake bytes written after a pick-up.",
		},
		[]string{"listener"},
	)
	bytesMoved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gutters",
			Subsystem: "relay",
			Name:      "bytes_total",
			Help:      "Raw bytes moved through the relay, by direction.",
		},
		[]string{"listener", "direction"},
	)
	sessionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gutters",
			Subsystem: "relay",
			Name:      "session_duration_seconds",
			Help:      "Lifetime of one gutter connection in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"listener"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(logsPicked, logsThrown, hailsSent, bytesMoved, sessionDuration)
	})
}

func RecordPickUp(listener string, bytes int) {
	RegisterMetrics()
	logsPicked.WithLabelValues(listener).Inc()
	bytesMoved.WithLabelValues(listener, "in").Add(float64(bytes))
}

func RecordThrow(listener string, bytes int) {
	RegisterMetrics()
	logsThrown.WithLabelValues(listener).Inc()
	bytesMoved.WithLabelValues(listener, "out").Add(float64(bytes))
}

func RecordHail(listener string) {
	RegisterMetrics()
	hailsSent.WithLabelValues(listener).Inc()
	bytesMoved.WithLabelValues(listener, "out").Add(1)
}

func RecordSession(listener string, duration time.Duration) {
	RegisterMetrics()
	sessionDuration.WithLabelValues(listener).Observe(duration.Seconds())
}

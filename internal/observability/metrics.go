package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK    = "ok"
	OutcomeFault = "fault"
	OutcomeError = "error"
)

var (
	registerOnce sync.Once

	remoteCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gsxws",
			Subsystem: "remote",
			Name:      "calls_total",
			Help:      "Total remote GSX operation calls.",
		},
		[]string{"operation", "outcome"},
	)
	remoteDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gsxws",
			Subsystem: "remote",
			Name:      "call_duration_seconds",
			Help:      "Remote GSX operation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)
	remoteFaults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gsxws",
			Subsystem: "remote",
			Name:      "faults_total",
			Help:      "Remote faults by operation and fault code.",
		},
		[]string{"operation", "code"},
	)
	coercionFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gsxws",
			Subsystem: "normalize",
			Name:      "coercion_failures_total",
			Help:      "Response leaves that kept raw text after a failed coercion.",
		},
		[]string{"operation"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(remoteCalls, remoteDuration, remoteFaults, coercionFailures)
	})
}

func RecordRemoteCall(operation, outcome string, duration time.Duration) {
	RegisterMetrics()
	remoteCalls.WithLabelValues(operation, outcome).Inc()
	remoteDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}

func RecordFault(operation, code string) {
	RegisterMetrics()
	remoteFaults.WithLabelValues(operation, code).Inc()
}

func RecordCoercionFailures(operation string, n int) {
	if n <= 0 {
		return
	}
	RegisterMetrics()
	coercionFailures.WithLabelValues(operation).Add(float64(n))
}

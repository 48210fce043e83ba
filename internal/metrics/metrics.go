package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for adapter calls.
const (
	OutcomeOK       = "ok"
	OutcomeBusiness = "business_error"
	OutcomeNetwork  = "network_error"
	OutcomeParse    = "parse_error"
	OutcomeCache    = "cache_hit"
)

var (
	once sync.Once

	clientRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "profix",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Backend calls by route and outcome.",
		},
		[]string{"route", "outcome"},
	)

	clientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "profix",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Latency of backend calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	trackingPolls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "profix",
			Subsystem: "tracking",
			Name:      "polls_total",
			Help:      "Location polls by result.",
		},
		[]string{"result"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(clientRequests, clientLatency, trackingPolls)
	})
}

// ObserveCall records one backend call.
func ObserveCall(route, outcome string, elapsed time.Duration) {
	clientRequests.WithLabelValues(route, outcome).Inc()
	if outcome != OutcomeCache {
		clientLatency.WithLabelValues(route).Observe(elapsed.Seconds())
	}
}

// IncPoll counts one tracking poll.
func IncPoll(result string) {
	trackingPolls.WithLabelValues(result).Inc()
}

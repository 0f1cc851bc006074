package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	upstreamCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relay",
		Name:      "upstream_calls_total",
		Help:      "Calls to the Gemini generateContent API by operation and outcome.",
	}, []string{"operation", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "relay",
		Name:      "upstream_call_duration_seconds",
		Help:      "Latency of Gemini generateContent calls.",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 15, 20, 25, 29, 30},
	}, []string{"operation"})

	httpResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relay",
		Name:      "http_responses_total",
		Help:      "Responses served by route pattern and status code.",
	}, []string{"route", "code"})
)

// ObserveUpstream records one outbound call.
func ObserveUpstream(operation, outcome string, took time.Duration) {
	upstreamCalls.WithLabelValues(operation, outcome).Inc()
	upstreamDuration.WithLabelValues(operation).Observe(took.Seconds())
}

func ObserveResponse(route, code string) {
	httpResponses.WithLabelValues(route, code).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}

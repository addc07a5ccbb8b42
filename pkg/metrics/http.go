package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the grading HTTP handlers
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "grade_http_request_duration_seconds",
		Help:    "Latency of grading handlers by endpoint",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	// Total number of grading requests served
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "grade_http_requests_total",
		Help: "Total number of grading requests by endpoint and status code",
	}, []string{"endpoint", "code"})
)

func Init() {
	prometheus.MustRegister(
		RequestDuration,
		RequestsTotal,
	)
}

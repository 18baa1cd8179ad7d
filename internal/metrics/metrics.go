package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlightGauge   prometheus.Gauge
	RateLimited     *prometheus.CounterVec

	// BookingsTotal counts Book and Reschedule outcomes: ok, doctor, room,
	// patient, not_found or error.
	BookingsTotal *prometheus.CounterVec
}

// NewCollector registers on a private registry so several collectors can
// coexist in one process.
func NewCollector(serviceName string) *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Collector{
		reg: reg,

		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "grpc",
			Name:      "requests_total",
			Help:      "Total number of RPCs by method and status code.",
		}, []string{"method", "code"}),

		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Subsystem: "grpc",
			Name:      "request_duration_seconds",
			Help:      "RPC latency distribution.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}, []string{"method"}),

		InFlightGauge: f.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Subsystem: "grpc",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight RPCs.",
		}),

		RateLimited: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "grpc",
			Name:      "rate_limited_total",
			Help:      "RPCs rejected by the rate limiter.",
		}, []string{"method"}),

		BookingsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "scheduling",
			Name:      "bookings_total",
			Help:      "Booking and rescheduling attempts by operation and outcome.",
		}, []string{"operation", "outcome"}),
	}
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}

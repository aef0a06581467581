package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Rollcall
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Business Metrics
	CheckInsTotal             prometheus.CounterVec
	VolunteersRegisteredTotal prometheus.Counter
	EventsCreatedTotal        prometheus.Counter
	ShiftRoleAssignmentsTotal prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rollcall_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rollcall_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rollcall_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		CheckInsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rollcall_checkins_total",
				Help: "Total volunteer check-ins by flow (list or qr)",
			},
			[]string{"flow"},
		),
		VolunteersRegisteredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rollcall_volunteers_registered_total",
				Help: "Total volunteers registered across all events",
			},
		),
		EventsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rollcall_events_created_total",
				Help: "Total events created",
			},
		),
		ShiftRoleAssignmentsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rollcall_shift_role_assignments_total",
				Help: "Total shift-role associations created",
			},
		),
	}
}

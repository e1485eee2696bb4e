package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP and websocket instrumentation. Collectors are registered on the
// default registry so the /metrics endpoint picks them up without wiring.
var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	WSConnectedUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ws_connected_users",
			Help: "Number of users with at least one open websocket connection",
		},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ws_notifications_sent_total",
			Help: "Total number of websocket events pushed to clients",
		},
		[]string{"event"},
	)
)

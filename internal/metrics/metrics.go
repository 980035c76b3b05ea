// Package metrics defines the Prometheus self-observability collectors for
// vegliad. All collectors are registered on the default registry and exposed
// by the /metrics endpoint in cmd/vegliad.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Tick metrics
	TicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "veglia_ticks_total",
			Help: "Total monitoring ticks by outcome",
		},
		[]string{"outcome"}, // outcome: ok, error, skipped
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "veglia_tick_duration_seconds",
			Help:    "Time spent collecting one health snapshot",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	// Alert metrics
	AlertsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "veglia_alerts_created_total",
			Help: "Total alerts created by severity",
		},
		[]string{"severity"},
	)

	ActiveAlerts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "veglia_active_alerts",
			Help: "Alerts currently open (neither acknowledged nor resolved)",
		},
	)

	// Notification metrics
	NotificationsDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "veglia_notifications_dropped_total",
			Help: "Notifications evicted from the async delivery buffer",
		},
	)

	WebhookDeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "veglia_webhook_deliveries_total",
			Help: "Webhook delivery attempts by target type and status",
		},
		[]string{"type", "status"}, // status: ok, error
	)

	// WebSocket metrics
	WSClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "veglia_ws_clients",
			Help: "Currently connected WebSocket clients",
		},
	)
)

// Package metrics defines and registers all custom Prometheus metrics for the
// rentwise API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry through promauto
// when the package is first imported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rentwise"

// ── Payment metrics ───────────────────────────────────────────────────────────

// PaymentsProcessedTotal counts rent payments that settled successfully.
// Label:
//   - method: "credit_card" or "bank_transfer"
var PaymentsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_processed_total",
		Help:      "Total number of rent payments processed successfully, by method.",
	},
	[]string{"method"},
)

// PaymentsErrorsTotal counts payment submissions that failed.
// Label:
//   - reason: "invalid", "declined", "timeout", "cancelled" or "internal"
var PaymentsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_errors_total",
		Help:      "Total number of rent payment submissions that failed.",
	},
	[]string{"reason"},
)

// PaymentsReplayTotal counts idempotency decisions on payment submissions.
// Label:
//   - result: "hit" (stored receipt replayed) or "miss" (new charge)
var PaymentsReplayTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_replay_total",
		Help:      "Total number of keyed payment submissions, labelled by replay result (hit/miss).",
	},
	[]string{"result"},
)

// PaymentProcessingDuration measures a submission from request to receipt.
// Label:
//   - result: "ok" or the error reason
var PaymentProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "payment_processing_duration_seconds",
		Help:      "Duration of rent payment submissions including processor settlement.",
		Buckets:   []float64{.1, .25, .5, 1, 2, 3, 5, 10, 15},
	},
	[]string{"result"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts successful logins.
// Label:
//   - user_type: "admin" or "tenant"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by user type.",
	},
	[]string{"user_type"},
)

// SessionsActive tracks the number of live sessions.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Current number of live sessions.",
	},
)

// ── Listing metrics ───────────────────────────────────────────────────────────

// ListingChangesTotal counts property and tenant mutations.
// Labels:
//   - entity: "property" or "tenant"
//   - action: "create", "update" or "delete"
var ListingChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_changes_total",
		Help:      "Total number of property and tenant mutations.",
	},
	[]string{"entity", "action"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsQueueDepth tracks notifications waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// NotificationsTotal counts notification deliveries.
// Label:
//   - result: "delivered", "failed" or "dropped"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notifications handled by the dispatcher, by result.",
	},
	[]string{"result"},
)

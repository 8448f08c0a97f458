// Package metrics defines and registers all custom Prometheus metrics of the
// reservation API. It is the single source of truth for metric names, labels
// and help strings.
//
// Metrics are registered with the default Prometheus registry on import
// (promauto) and exposed on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reservas"

// ── Identity metrics ──────────────────────────────────────────────────────────

// UsersRegisteredTotal counts accepted registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registered users.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Reservation metrics ───────────────────────────────────────────────────────

// ReservationsCreatedTotal counts newly created reservations.
// Label:
//   - event_type: "Comum" or "Pacote"
var ReservationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_created_total",
		Help:      "Total number of reservations created, by event type.",
	},
	[]string{"event_type"},
)

// ReservationsUpdatedTotal counts edits of confirmed reservations.
var ReservationsUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_updated_total",
		Help:      "Total number of reservation updates.",
	},
)

// ReservationsCancelledTotal counts cancelled reservations.
var ReservationsCancelledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_cancelled_total",
		Help:      "Total number of cancelled reservations.",
	},
)

// StorageFailuresTotal counts failed collection writes.
// Label:
//   - collection: "users" or "reservations"
var StorageFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_failures_total",
		Help:      "Total number of collection writes that failed.",
	},
	[]string{"collection"},
)

// EventsPublishedTotal counts lifecycle events sent to the broker.
// Label:
//   - result: "ok" or "error"
var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Total number of reservation events published, by result.",
	},
	[]string{"result"},
)

// ── Suggestion metrics ────────────────────────────────────────────────────────

// SuggestionsTotal counts finished suggestion requests.
// Label:
//   - result: "ready", "failed" or "stale" (superseded before completion)
var SuggestionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "suggestions_total",
		Help:      "Total number of suggestion requests processed, by result.",
	},
	[]string{"result"},
)

// SuggestionDuration measures gateway latency.
var SuggestionDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "suggestion_duration_seconds",
		Help:      "Duration of suggestion gateway calls.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60},
	},
)

// SuggestionQueueDepth tracks pending jobs in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index
var SuggestionQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "suggestion_queue_depth",
		Help:      "Current number of suggestion jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

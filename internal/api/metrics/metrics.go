// Package metrics defines all custom Prometheus metrics for the notes API.
// It is the single source of truth for metric names, labels, and help
// strings; HTTP-level request metrics come from the echoprometheus
// middleware wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "notes"

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// SigninsTotal counts signin attempts by outcome.
// Label:
//   - result: "ok", "not_found", "bad_password", or "external_account"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of signin attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts requests rejected by the auth middleware.
// Label:
//   - reason: "missing_token", "malformed_header", or "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected at the auth boundary.",
	},
	[]string{"reason"},
)

// NoteOperationsTotal counts completed note operations.
// Label:
//   - op: "create", "update", "delete", or "toggle_pin"
var NoteOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "note_operations_total",
		Help:      "Total number of successful note mutations, by operation.",
	},
	[]string{"op"},
)

// SearchesTotal counts note search requests.
var SearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of note search requests.",
	},
)

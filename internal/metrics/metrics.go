// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Transitions counts applied state changes per entity (debt, installment, split).
	Transitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "splitledger_transitions_total",
		Help: "Applied ledger state transitions.",
	}, []string{"entity", "transition"})

	// ChangeRequests counts change requests by mutation kind and outcome
	// (created, approved, rejected, cancelled).
	ChangeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "splitledger_change_requests_total",
		Help: "Change requests by mutation kind and outcome.",
	}, []string{"kind", "outcome"})

	// Conflicts counts operations that lost an optimistic concurrency check.
	Conflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "splitledger_conflicts_total",
		Help: "Operations rejected because the entity changed concurrently.",
	}, []string{"operation"})

	// NotificationsDropped counts notifications discarded because the
	// dispatch queue was full or stopped.
	NotificationsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "splitledger_notifications_dropped_total",
		Help: "Notifications dropped before delivery.",
	})

	// RPCDuration observes handler latency per procedure and Connect code.
	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "splitledger_rpc_duration_seconds",
		Help:    "RPC handling latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"procedure", "code"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

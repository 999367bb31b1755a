// Package metrics holds the Prometheus collectors for the order
// pipeline. Scrape them from GET /metrics.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// OrdersPlaced counts orders actually created (idempotent replays
	// excluded).
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "foodexpress",
		Subsystem: "orders",
		Name:      "placed_total",
		Help:      "Total number of orders created.",
	})

	// OrderReplays counts placeOrder calls answered from an existing
	// idempotency key.
	OrderReplays = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "foodexpress",
		Subsystem: "orders",
		Name:      "idempotent_replays_total",
		Help:      "Total number of placeOrder calls that returned an existing order.",
	})

	// StatusTransitions counts automatic lifecycle advances by edge.
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "foodexpress",
		Subsystem: "orders",
		Name:      "status_transitions_total",
		Help:      "Automatic order status transitions performed by the updater.",
	}, []string{"from", "to"})

	// NotificationFailures counts preference-sink calls that were
	// dropped. The drop is by contract (placement must never fail on
	// it), so this counter is the only trace of the lost signal.
	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "foodexpress",
		Subsystem: "notifications",
		Name:      "failures_total",
		Help:      "Preference update notifications that could not be delivered.",
	})
)

// Handler exposes the default registry as a gin handler.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	planRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courier_plan_requests_total",
		Help: "Planning requests handled by the service",
	})
	routesFoundTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courier_routes_found_total",
		Help: "Destinations reached across all plans",
	})
	routesUnreachableTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courier_routes_unreachable_total",
		Help: "Destinations reported unreachable across all plans",
	})
	deliveriesDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courier_deliveries_dropped_total",
		Help: "Delivery requests dropped for an unrecognized priority",
	})
	cellsExpandedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courier_search_cells_expanded_total",
		Help: "Cells taken off the search frontier across all plans",
	})
)

// observePlan records a finished plan in the service metrics.
func observePlan(plan *DeliveryPlan) {
	planRequestsTotal.Inc()
	routesFoundTotal.Add(float64(plan.ReachedCount()))
	routesUnreachableTotal.Add(float64(plan.UnreachableCount()))
	deliveriesDroppedTotal.Add(float64(len(plan.Dropped)))
	cellsExpandedTotal.Add(float64(plan.ExpandedTotal()))
}

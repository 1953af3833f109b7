package main

import (
	"log"
)

// Tier ranks a delivery's urgency. Lower values are served first. Exactly
// three tiers exist; anything else on a request is a data error and the
// planner drops it.
type Tier int

const (
	TierExpress  Tier = 1
	TierStandard Tier = 2
	TierEconomy  Tier = 3
)

// tierOrder lists the recognized tiers in visiting order.
var tierOrder = [3]Tier{TierExpress, TierStandard, TierEconomy}

// Valid reports whether the tier is one of the three recognized buckets.
func (t Tier) Valid() bool {
	return t >= TierExpress && t <= TierEconomy
}

// bucket maps a valid tier to its index in tierOrder.
func (t Tier) bucket() int {
	return int(t) - 1
}

// DeliveryRequest is one destination to visit, tagged with its urgency tier.
type DeliveryRequest struct {
	Target Cell
	Tier   Tier
}

// Route is the planned result for a single delivery.
type Route struct {
	Target   Cell
	Tier     Tier
	Path     []Cell
	Expanded int
	Found    bool
}

// Steps returns the number of moves along the route.
func (r Route) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// DeliveryPlan is the outcome of planning a full delivery run.
type DeliveryPlan struct {
	// Origin is the courier's starting position.
	Origin Cell
	// Ordered lists the planned requests in visiting order: ascending
	// tier, input order within a tier. Routes follows the same order.
	Ordered []DeliveryRequest
	Routes  []Route
	// Dropped holds requests discarded for carrying an unrecognized tier.
	Dropped []DeliveryRequest
	// FinalPosition is where the courier ends up: the last destination
	// that was actually reached, or Origin when none were.
	FinalPosition Cell
}

// ReachedCount returns the number of destinations a path was found for.
func (p *DeliveryPlan) ReachedCount() int {
	n := 0
	for _, route := range p.Routes {
		if route.Found {
			n++
		}
	}
	return n
}

// UnreachableCount returns the number of destinations no path was found for.
func (p *DeliveryPlan) UnreachableCount() int {
	return len(p.Routes) - p.ReachedCount()
}

// ExpandedTotal returns the number of cells expanded across every search in
// the plan.
func (p *DeliveryPlan) ExpandedTotal() int {
	n := 0
	for _, route := range p.Routes {
		n += route.Expanded
	}
	return n
}

// PlanDeliveries visits the requested destinations tier by tier: every
// express delivery before every standard one, every standard before every
// economy, input order preserved inside a tier. Each search starts from the
// previous successfully reached destination, so the plan reads as one
// continuous courier run. An unreachable destination is recorded and
// skipped; the courier's position does not advance past it. Requests with an
// unrecognized tier are dropped with a warning before any routing happens.
//
// Searches run strictly sequentially because every starting point depends on
// the previous outcome.
func PlanDeliveries(g *Grid, origin Cell, requests []DeliveryRequest) *DeliveryPlan {
	plan := &DeliveryPlan{Origin: origin, FinalPosition: origin}

	var buckets [len(tierOrder)][]DeliveryRequest
	for _, req := range requests {
		if !req.Tier.Valid() {
			log.Printf("⚠️  Dropping delivery %v: unrecognized priority %d\n", req.Target, req.Tier)
			plan.Dropped = append(plan.Dropped, req)
			continue
		}
		buckets[req.Tier.bucket()] = append(buckets[req.Tier.bucket()], req)
	}

	for _, tier := range tierOrder {
		plan.Ordered = append(plan.Ordered, buckets[tier.bucket()]...)
	}

	current := origin
	for _, req := range plan.Ordered {
		result := FindPath(g, current, req.Target)
		plan.Routes = append(plan.Routes, Route{
			Target:   req.Target,
			Tier:     req.Tier,
			Path:     result.Path,
			Expanded: result.Expanded,
			Found:    result.Found,
		})
		if result.Found {
			current = req.Target
		}
	}
	plan.FinalPosition = current

	return plan
}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// planPosition maps a grid cell to a planar GeoJSON position. GeoJSON
// positions are easting-first, so the column index becomes the first
// coordinate and the row index the second.
func planPosition(c Cell) orb.Point {
	return orb.Point{float64(c.Y), float64(c.X)}
}

// PlanFeatureCollection converts a delivery plan into GeoJSON for map
// viewers: a Point for the origin, a Point per destination carrying its
// priority and reachability, and a LineString per found route.
func PlanFeatureCollection(plan *DeliveryPlan) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	origin := geojson.NewFeature(planPosition(plan.Origin))
	origin.Properties["role"] = "origin"
	fc.Append(origin)

	for _, route := range plan.Routes {
		dest := geojson.NewFeature(planPosition(route.Target))
		dest.Properties["role"] = "destination"
		dest.Properties["priority"] = int(route.Tier)
		dest.Properties["found"] = route.Found
		fc.Append(dest)

		// A LineString needs at least two positions; a route that starts
		// on its own destination has nothing to draw.
		if !route.Found || len(route.Path) < 2 {
			continue
		}
		line := make(orb.LineString, 0, len(route.Path))
		for _, c := range route.Path {
			line = append(line, planPosition(c))
		}
		f := geojson.NewFeature(line)
		f.Properties["role"] = "route"
		f.Properties["priority"] = int(route.Tier)
		f.Properties["steps"] = route.Steps()
		fc.Append(f)
	}

	return fc
}

// WriteGeoJSONFile saves the plan's feature collection to a file.
func WriteGeoJSONFile(plan *DeliveryPlan, filename string) error {
	data, err := PlanFeatureCollection(plan).MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Printf("💾 GeoJSON plan saved to %s (%d bytes)\n", filename, len(data))
	return nil
}

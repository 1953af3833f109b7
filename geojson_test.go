package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
)

func TestPlanFeatureCollection(t *testing.T) {
	g, origin := buildGrid(t,
		"200",
		"011",
		"010",
	)
	plan := PlanDeliveries(g, origin, []DeliveryRequest{
		{Target: Cell{X: 2, Y: 2}, Tier: TierExpress},
		{Target: Cell{X: 0, Y: 2}, Tier: TierStandard},
	})

	fc := PlanFeatureCollection(plan)

	// Origin, two destinations, and one route line for the reachable one.
	if len(fc.Features) != 4 {
		t.Fatalf("features = %d, want 4", len(fc.Features))
	}

	originFeature := fc.Features[0]
	if originFeature.Properties["role"] != "origin" {
		t.Errorf("first feature role = %v, want origin", originFeature.Properties["role"])
	}
	if pt, ok := originFeature.Geometry.(orb.Point); !ok || pt != (orb.Point{0, 0}) {
		t.Errorf("origin geometry = %v, want point (0, 0)", originFeature.Geometry)
	}

	unreachable := fc.Features[1]
	if unreachable.Properties["role"] != "destination" || unreachable.Properties["found"] != false {
		t.Errorf("unreachable destination properties = %v", unreachable.Properties)
	}

	reachable := fc.Features[2]
	if reachable.Properties["found"] != true || reachable.Properties["priority"] != 2 {
		t.Errorf("reachable destination properties = %v", reachable.Properties)
	}

	routeFeature := fc.Features[3]
	if routeFeature.Properties["role"] != "route" {
		t.Fatalf("fourth feature role = %v, want route", routeFeature.Properties["role"])
	}
	line, ok := routeFeature.Geometry.(orb.LineString)
	if !ok {
		t.Fatalf("route geometry is %T, want LineString", routeFeature.Geometry)
	}
	// Positions are column-first.
	wantLine := orb.LineString{{0, 0}, {1, 0}, {2, 0}}
	if len(line) != len(wantLine) {
		t.Fatalf("route line has %d positions, want %d", len(line), len(wantLine))
	}
	for i := range wantLine {
		if line[i] != wantLine[i] {
			t.Errorf("line[%d] = %v, want %v", i, line[i], wantLine[i])
		}
	}
	if routeFeature.Properties["steps"] != 2 {
		t.Errorf("route steps = %v, want 2", routeFeature.Properties["steps"])
	}
}

func TestPlanFeatureCollectionSkipsDegenerateLines(t *testing.T) {
	g, origin := buildGrid(t,
		"20",
		"00",
	)
	// Delivering to the cell the courier already stands on draws no line.
	plan := PlanDeliveries(g, origin, []DeliveryRequest{
		{Target: origin, Tier: TierExpress},
	})

	fc := PlanFeatureCollection(plan)
	if len(fc.Features) != 2 {
		t.Fatalf("features = %d, want origin and destination only", len(fc.Features))
	}
	for _, f := range fc.Features {
		if _, ok := f.Geometry.(orb.LineString); ok {
			t.Error("unexpected LineString for a zero-step route")
		}
	}
}

func TestWriteGeoJSONFile(t *testing.T) {
	g, origin := buildGrid(t,
		"200",
		"000",
		"000",
	)
	plan := PlanDeliveries(g, origin, []DeliveryRequest{
		{Target: Cell{X: 2, Y: 2}, Tier: TierStandard},
	})

	path := filepath.Join(t.TempDir(), "plan.geojson")
	if err := WriteGeoJSONFile(plan, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("written file is not valid JSON: %v", err)
	}
	if decoded.Type != "FeatureCollection" {
		t.Errorf("type = %q, want FeatureCollection", decoded.Type)
	}
	if len(decoded.Features) != 3 {
		t.Errorf("features = %d, want 3", len(decoded.Features))
	}
}

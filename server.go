package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// World is the installed planning state: the validated grid, its origin,
// the preloaded deliveries and the obstacle structures derived from the
// grid. A World is immutable once installed; replacing it swaps the whole
// value under worldMutex.
type World struct {
	Grid       *Grid
	Origin     Cell
	Deliveries []DeliveryRequest
	Index      *ObstacleIndex
}

// NewWorld builds the derived obstacle structures for a validated grid.
func NewWorld(g *Grid, origin Cell, deliveries []DeliveryRequest) *World {
	return &World{
		Grid:       g,
		Origin:     origin,
		Deliveries: deliveries,
		Index:      NewObstacleIndex(ObstacleRects(g)),
	}
}

var (
	globalWorld *World
	worldMutex  sync.RWMutex
)

func installWorld(world *World) {
	worldMutex.Lock()
	globalWorld = world
	worldMutex.Unlock()
}

func currentWorld() *World {
	worldMutex.RLock()
	defer worldMutex.RUnlock()
	return globalWorld
}

type deliveryDTO struct {
	X        int `json:"x"`
	Y        int `json:"y"`
	Priority int `json:"priority"`
}

func (d deliveryDTO) toRequest() DeliveryRequest {
	return DeliveryRequest{Target: Cell{X: d.X, Y: d.Y}, Tier: Tier(d.Priority)}
}

func toRequests(dtos []deliveryDTO) []DeliveryRequest {
	requests := make([]DeliveryRequest, 0, len(dtos))
	for _, d := range dtos {
		requests = append(requests, d.toRequest())
	}
	return requests
}

type worldRequest struct {
	Cells      [][]CellState `json:"cells"`
	Deliveries []deliveryDTO `json:"deliveries,omitempty"`
	Force      bool          `json:"force,omitempty"` // Set to true to replace an installed world
}

type planRequest struct {
	Deliveries []deliveryDTO `json:"deliveries,omitempty"` // Defaults to the world's preloaded deliveries
	Origin     *Cell         `json:"origin,omitempty"`     // Defaults to the world's origin marker
}

type routeDTO struct {
	Destination Cell   `json:"destination"`
	Priority    int    `json:"priority"`
	Found       bool   `json:"found"`
	Steps       int    `json:"steps"`
	Path        []Cell `json:"path,omitempty"`
}

type planResponse struct {
	PlanID        string     `json:"planId"`
	Origin        Cell       `json:"origin"`
	Routes        []routeDTO `json:"routes"`
	Reached       int        `json:"reached"`
	Unreachable   int        `json:"unreachable"`
	Dropped       int        `json:"dropped"`
	FinalPosition Cell       `json:"finalPosition"`
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// POST /world - Install a grid world, optionally with preloaded deliveries
func worldHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("🗺️  Install world request received")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req worldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	alreadyInstalled := currentWorld() != nil
	if alreadyInstalled && !req.Force {
		log.Println("⚠️  World already installed")
		log.Println("   To replace it, set force:true in request or restart the server")
		log.Println("========================================")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "world already installed",
			"message": "A world is already installed. Set 'force: true' to replace it, or restart the server.",
		})
		return
	}

	if alreadyInstalled && req.Force {
		log.Println("🔄 Force replace requested - installing new world...")
	}

	g, origin, err := NewGrid(req.Cells)
	if err != nil {
		log.Printf("❌ Invalid world: %v\n", err)
		http.Error(w, fmt.Sprintf("Invalid world: %v", err), http.StatusBadRequest)
		return
	}

	world := NewWorld(g, origin, toRequests(req.Deliveries))
	installWorld(world)

	log.Printf("✅ World installed: %dx%d cells, %d obstacle region(s), origin %v\n",
		g.Rows, g.Cols, world.Index.Size(), origin)
	log.Println("========================================")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":         true,
		"rows":            g.Rows,
		"cols":            g.Cols,
		"origin":          origin,
		"obstacleRegions": world.Index.Size(),
		"deliveries":      len(world.Deliveries),
	})
}

// POST /plan - Plan delivery routes on the installed world
func planHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📍 Plan request received")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// An empty body means "plan the preloaded deliveries"
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	world := currentWorld()
	if world == nil {
		log.Println("❌ No world installed")
		http.Error(w, "No world installed. Call /world first", http.StatusBadRequest)
		log.Println("========================================")
		return
	}

	origin := world.Origin
	if req.Origin != nil {
		origin = *req.Origin
	}
	deliveries := world.Deliveries
	if len(req.Deliveries) > 0 {
		deliveries = toRequests(req.Deliveries)
	}

	if len(deliveries) == 0 {
		log.Println("❌ No deliveries to plan")
		http.Error(w, "No deliveries to plan. Provide them in the request or preload them with the world", http.StatusBadRequest)
		log.Println("========================================")
		return
	}

	planID := uuid.NewString()
	log.Printf("   Plan %s: %d deliveries from %v\n", planID, len(deliveries), origin)

	plan := PlanDeliveries(world.Grid, origin, deliveries)
	observePlan(plan)

	response := planResponse{
		PlanID:        planID,
		Origin:        plan.Origin,
		Routes:        make([]routeDTO, 0, len(plan.Routes)),
		Reached:       plan.ReachedCount(),
		Unreachable:   plan.UnreachableCount(),
		Dropped:       len(plan.Dropped),
		FinalPosition: plan.FinalPosition,
	}
	for _, route := range plan.Routes {
		response.Routes = append(response.Routes, routeDTO{
			Destination: route.Target,
			Priority:    int(route.Tier),
			Found:       route.Found,
			Steps:       route.Steps(),
			Path:        route.Path,
		})
	}

	log.Printf("✅ Plan %s: %d reached, %d unreachable, %d dropped\n",
		planID, response.Reached, response.Unreachable, response.Dropped)
	log.Printf("   Final position: %v\n", plan.FinalPosition)
	log.Println("========================================")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// queryInt reads an integer query parameter, falling back when absent.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}

// GET /obstacles - Query obstacle regions for visualization
func obstaclesHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📊 Obstacle regions request received")

	if r.Method != http.MethodGet {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	world := currentWorld()
	if world == nil {
		log.Println("❌ No world installed")
		http.Error(w, "No world installed. Call /world first", http.StatusBadRequest)
		log.Println("========================================")
		return
	}

	// The viewport defaults to the whole grid
	minX, errMinX := queryInt(r, "minX", 0)
	minY, errMinY := queryInt(r, "minY", 0)
	maxX, errMaxX := queryInt(r, "maxX", world.Grid.Rows-1)
	maxY, errMaxY := queryInt(r, "maxY", world.Grid.Cols-1)
	for _, err := range []error{errMinX, errMinY, errMaxX, errMaxY} {
		if err != nil {
			log.Printf("❌ Bad query: %v\n", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			log.Println("========================================")
			return
		}
	}

	regions := world.Index.QueryRegion(minX, minY, maxX, maxY)

	log.Printf("   Returning %d of %d region(s)\n", len(regions), world.Index.Size())
	log.Println("========================================")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"regions": regions,
		"count":   len(regions),
		"total":   world.Index.Size(),
	})
}

// GET /health - Health check endpoint
func healthHandler(w http.ResponseWriter, r *http.Request) {
	world := currentWorld()

	status := "ready"
	if world == nil {
		status = "waiting for world"
	}

	payload := map[string]interface{}{
		"status":   status,
		"hasWorld": world != nil,
	}
	if world != nil {
		payload["rows"] = world.Grid.Rows
		payload["cols"] = world.Grid.Cols
		payload["obstacleRegions"] = world.Index.Size()
		payload["deliveries"] = len(world.Deliveries)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// newServeMux wires the service routes. Split out so tests can drive the
// handlers without a listening socket.
func newServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/world", corsMiddleware(worldHandler))
	mux.HandleFunc("/plan", corsMiddleware(planHandler))
	mux.HandleFunc("/obstacles", corsMiddleware(obstaclesHandler))
	mux.HandleFunc("/health", corsMiddleware(healthHandler))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// runServe optionally preloads a world from files, then serves the planning
// API until the listener fails.
func runServe(port int, mapPath, deliveriesPath string) error {
	log.Println("========================================")
	log.Println("🚚 Courier Route Planner Server")
	log.Println("========================================")

	if mapPath != "" {
		g, origin, err := LoadGridFile(mapPath)
		if err != nil {
			return err
		}
		var deliveries []DeliveryRequest
		if deliveriesPath != "" {
			deliveries, err = LoadDeliveriesFile(deliveriesPath)
			if err != nil {
				return err
			}
		}
		installWorld(NewWorld(g, origin, deliveries))
		log.Printf("✅ World preloaded: %dx%d cells, %d deliveries\n", g.Rows, g.Cols, len(deliveries))
	} else {
		log.Println("ℹ️  No world preloaded (this is normal)")
		log.Println("   Call /world to install one")
	}
	log.Println("")

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Server starting on %s\n", addr)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /world       - Install a grid world (cells + optional deliveries)")
	log.Println("  POST /plan        - Plan delivery routes on the installed world")
	log.Println("  GET  /obstacles   - Query obstacle regions for visualization")
	log.Println("  GET  /health      - Check server status")
	log.Println("  GET  /metrics     - Prometheus metrics")
	log.Println("")
	log.Println("CORS enabled for all origins")
	log.Println("========================================")
	log.Println("")

	return http.ListenAndServe(addr, newServeMux())
}

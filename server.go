package main

import (
	"encoding/json"
	"net/http"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type RouteRequest struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

type Waypoint struct {
	ID NodeID  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type RouteResponse struct {
	Path           []Waypoint                 `json:"path"`
	Success        bool                       `json:"success"`
	Message        string                     `json:"message,omitempty"`
	Cost           float64                    `json:"cost"`
	DistanceMeters float64                    `json:"distanceMeters"`
	Expanded       int                        `json:"expanded"`
	GeoJSON        *geojson.FeatureCollection `json:"geojson,omitempty"`
}

// Server exposes a Planner over HTTP
type Server struct {
	planner *Planner
	graph   *RoadGraph
	logger  *zap.Logger
}

func NewServer(planner *Planner, logger *zap.Logger) *Server {
	return &Server{planner: planner, graph: planner.graph, logger: logger}
}

// Handler returns the routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/route", corsMiddleware(s.routeHandler))
	mux.HandleFunc("/health", corsMiddleware(s.healthHandler))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// POST /route - Compute a route between two coordinates
func (s *Server) routeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Info("invalid route request", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	logger := s.logger.With(
		zap.Float64("startX", req.Start.X), zap.Float64("startY", req.Start.Y),
		zap.Float64("endX", req.End.X), zap.Float64("endY", req.End.Y),
	)

	path, stats, err := s.planner.Plan(r.Context(), req.Start, req.End)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrUnresolvableCoordinate):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, ErrNoPathFound):
			status = http.StatusOK
		case errors.Is(err, ErrSearchAborted):
			status = http.StatusServiceUnavailable
		}
		logger.Info("no route", zap.Error(err), zap.Int("expanded", stats.Expanded))
		writeJSON(w, status, RouteResponse{
			Path:     []Waypoint{},
			Success:  false,
			Message:  err.Error(),
			Expanded: stats.Expanded,
		})
		return
	}

	waypoints := make([]Waypoint, len(path.Nodes))
	for i, node := range path.Nodes {
		waypoints[i] = Waypoint{ID: node.ID, X: node.Point.X(), Y: node.Point.Y()}
	}
	logger.Info("route found",
		zap.Int("waypoints", len(waypoints)),
		zap.Float64("meters", path.Length),
		zap.Int("expanded", stats.Expanded),
	)

	writeJSON(w, http.StatusOK, RouteResponse{
		Path:           waypoints,
		Success:        true,
		Cost:           path.Cost,
		DistanceMeters: path.Length,
		Expanded:       stats.Expanded,
		GeoJSON:        s.graph.PathGeoJSON(path),
	})
}

// GET /health - Health check endpoint
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ready",
		"numNodes": s.graph.NodeCount(),
		"numEdges": s.graph.EdgeCount(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

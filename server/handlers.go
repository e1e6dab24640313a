// Request/response shapes and HTTP handlers.
//
// Error translation follows the engine's error taxonomy: malformed or
// out-of-range input is 400, an unknown city is 404, and the
// unreachable outcome is a successful 200 with reachable=false. It is
// a first-class result, not a failure.

package server

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthroute/priorityroute/core"
	"github.com/healthroute/priorityroute/route"
)

// Tour strategy names accepted by the tour endpoint.
const (
	StrategyNearestCost    = "nearest-cost"
	StrategyGreedyPriority = "greedy-priority"
)

// RouteRequest asks for a point-to-point route. A zero Urgency means
// the default multiplier of 1.0.
type RouteRequest struct {
	Source      string  `json:"source" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	Urgency     float64 `json:"urgency"`
}

// TourRequest asks for a whole-network tour from a starting city.
type TourRequest struct {
	Source   string  `json:"source" binding:"required"`
	Urgency  float64 `json:"urgency"`
	Strategy string  `json:"strategy" binding:"required,oneof=nearest-cost greedy-priority"`
}

// RouteResponse carries any solver outcome to the presentation layer.
// Distance and cost are omitted when the destination is unreachable.
type RouteResponse struct {
	Path          []core.NodeID `json:"path"`
	TotalDistance float64       `json:"total_distance,omitempty"`
	TotalCost     float64       `json:"total_cost,omitempty"`
	Reachable     bool          `json:"reachable"`
	CitiesVisited int           `json:"cities_visited"`
}

// CityResponse is one entry of the cities listing.
type CityResponse struct {
	ID         core.NodeID `json:"id"`
	State      string      `json:"state,omitempty"`
	Priority   float64     `json:"priority"`
	Lat        float64     `json:"lat"`
	Lon        float64     `json:"lon"`
	Population int64       `json:"population,omitempty"`
}

// errorResponse is the uniform error payload.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"cities": s.graph.NodeCount(),
		"roads":  s.graph.EdgeCount(),
	})
}

func (s *Server) handleCities(c *gin.Context) {
	// Optional ?state= filter narrows the listing via dataset lookups.
	if state := c.Query("state"); state != "" {
		c.JSON(http.StatusOK, gin.H{
			"state":  state,
			"cities": s.data.CitiesInState(state),
		})
		return
	}

	ids := s.graph.NodeIDs()
	cities := make([]CityResponse, 0, len(ids))
	for _, id := range ids {
		n, err := s.graph.Node(id)
		if err != nil {
			continue // cannot happen on an immutable graph
		}
		cities = append(cities, CityResponse{
			ID:         n.ID,
			State:      n.State,
			Priority:   n.Priority,
			Lat:        n.Lat,
			Lon:        n.Lon,
			Population: n.Population,
		})
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func (s *Server) handleRoute(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if req.Urgency == 0 {
		req.Urgency = 1.0
	}

	res, err := route.ShortestPath(s.graph,
		core.NodeID(req.Source), core.NodeID(req.Destination), req.Urgency)
	if err != nil {
		s.writeSolverError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRouteResponse(res))
}

func (s *Server) handleTour(c *gin.Context) {
	var req TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if req.Urgency == 0 {
		req.Urgency = 1.0
	}

	var (
		res route.Result
		err error
	)
	switch req.Strategy {
	case StrategyGreedyPriority:
		res, err = route.GreedyPriorityTour(s.graph, core.NodeID(req.Source), req.Urgency)
	default:
		res, err = route.NearestCostTour(s.graph, core.NodeID(req.Source), req.Urgency)
	}
	if err != nil {
		s.writeSolverError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRouteResponse(res))
}

// writeSolverError maps engine errors to HTTP statuses.
func (s *Server) writeSolverError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, core.ErrNodeNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, errorResponse{Error: err.Error()})
}

// toRouteResponse converts a solver Result, folding the unreachable
// outcome into a successful response with reachable=false (infinite
// totals are not representable in JSON and are dropped).
func toRouteResponse(res route.Result) RouteResponse {
	if res.Unreachable() {
		return RouteResponse{Reachable: false}
	}

	cost := res.TotalCost
	if math.IsInf(cost, 1) {
		cost = 0 // +Inf is not representable in JSON; omitted via omitempty
	}

	return RouteResponse{
		Path:          res.Path,
		TotalDistance: res.TotalDistance,
		TotalCost:     cost,
		Reachable:     true,
		CitiesVisited: len(res.Path),
	}
}

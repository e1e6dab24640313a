// Package server exposes the routing engine over a small JSON HTTP API
// for external presentation layers. It owns no routing logic: handlers
// validate the request, call the route solvers on an immutable graph,
// and translate outcomes to HTTP statuses. Map rendering and UI state
// belong entirely to the consumer of this API.
package server

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/healthroute/priorityroute/core"
	"github.com/healthroute/priorityroute/dataset"
)

// requestIDHeader carries the per-request correlation ID.
const requestIDHeader = "X-Request-ID"

// Config holds the server's runtime settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// AllowOrigins is the CORS allow-list; ["*"] allows any origin.
	AllowOrigins []string
}

// LoadConfig reads configuration from the environment, consulting a
// .env file first when present (missing .env is not an error).
//
//	HEALTHROUTE_ADDR           listen address (default ":8080")
//	HEALTHROUTE_ALLOW_ORIGINS  comma-separated CORS origins (default "*")
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{Addr: ":8080", AllowOrigins: []string{"*"}}
	if addr := os.Getenv("HEALTHROUTE_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if origins := os.Getenv("HEALTHROUTE_ALLOW_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	}

	return cfg
}

// Server wires an immutable graph and its source dataset to the HTTP
// handlers. The graph is read-only after construction, so handlers may
// serve concurrent requests without coordination.
type Server struct {
	graph *core.Graph
	data  *dataset.Dataset
	log   *slog.Logger
}

// New builds a Server over the given dataset and its prebuilt graph.
// A nil logger falls back to slog's default.
func New(ds *dataset.Dataset, g *core.Graph, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	return &Server{graph: g, data: ds, log: log}
}

// Router assembles the gin engine: CORS, request IDs, request logging,
// and the API routes.
func (s *Server) Router(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestID())
	r.Use(s.logRequests())

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	r.Use(cors.New(corsCfg))

	r.GET("/health", s.handleHealth)
	api := r.Group("/api")
	{
		api.GET("/cities", s.handleCities)
		api.POST("/route", s.handleRoute)
		api.POST("/tour", s.handleTour)
	}

	return r
}

// Run starts the HTTP server on cfg.Addr and blocks.
func (s *Server) Run(cfg Config) error {
	s.log.Info("starting server", "addr", cfg.Addr)

	return s.Router(cfg).Run(cfg.Addr)
}

// requestID assigns a UUID to every request, honoring an inbound
// X-Request-ID when the caller already set one.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// logRequests emits one structured log line per request.
func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// Package api provides the HTTP API server and handlers for the Neuron Spark backend.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/neuronspark/spark-server/internal/config"
	"github.com/neuronspark/spark-server/internal/ratelimit"
	"github.com/neuronspark/spark-server/internal/service"
	"github.com/neuronspark/spark-server/internal/store"
	"github.com/neuronspark/spark-server/internal/validation"
)

// Services aggregates the business services the handlers depend on.
type Services struct {
	Profile *service.ProfileService
	Program *service.ProgramService
	Room    *service.RoomService
	Message *service.MessageService
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store     *store.Store
	services  *Services
	router    *chi.Mux
	api       huma.API
	validator *validation.Validator
	limiter   *ratelimit.KeyedRateLimiter
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(cfg *config.Config, st *store.Store, services *Services, logger *slog.Logger) *Server {
	s := &Server{
		store:     st,
		services:  services,
		router:    chi.NewRouter(),
		validator: validation.New(),
		logger:    logger,
	}

	if cfg.Server.RateLimitRPS > 0 {
		s.limiter = ratelimit.New(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	}

	s.setupMiddleware(cfg)

	humaConfig := huma.DefaultConfig("Neuron Spark API", "1.0.0")
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerProfileRoutes()
	s.registerProgramRoutes()
	s.registerRoomRoutes()
	s.registerMessageRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware(cfg *config.Config) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	corsOptions := cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if cfg.Server.AllowAllOrigins() {
		corsOptions.AllowedOrigins = []string{"*"}
	} else {
		corsOptions.AllowedOrigins = cfg.Server.CORSOrigins
	}
	s.router.Use(cors.Handler(corsOptions))

	if s.limiter != nil {
		s.router.Use(s.rateLimit)
	}
}

// === Health and banner ===

// MessageResponse contains a simple status message.
type MessageResponse struct {
	Message string `json:"message" doc:"Status message"`
}

// MessageOutput wraps a message response for Huma.
type MessageOutput struct {
	Body MessageResponse
}

// HealthResponse reports server health.
type HealthResponse struct {
	Status string `json:"status" doc:"Health status"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health status",
		Tags:        []string{"System"},
	}, s.handleHealthCheck)

	huma.Register(s.api, huma.Operation{
		OperationID: "apiBanner",
		Method:      http.MethodGet,
		Path:        "/api",
		Summary:     "API banner",
		Description: "Returns the API identification banner",
		Tags:        []string{"System"},
	}, s.handleBanner)
}

func (s *Server) handleHealthCheck(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: HealthResponse{Status: "healthy"}}, nil
}

func (s *Server) handleBanner(_ context.Context, _ *struct{}) (*MessageOutput, error) {
	return &MessageOutput{Body: MessageResponse{Message: "Neuron Spark API"}}, nil
}

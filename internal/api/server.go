// Package api exposes the kanban engine over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/npaulus/kanban-server/internal/kanban"
	"github.com/npaulus/kanban-server/internal/ratelimit"
	"github.com/npaulus/kanban-server/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	container *kanban.Container
	store     *store.Store
	router    *chi.Mux
	api       huma.API
	logger    *slog.Logger
	limiter   *ratelimit.KeyedRateLimiter
}

// NewServer creates an HTTP server with all routes configured.
func NewServer(container *kanban.Container, st *store.Store, logger *slog.Logger) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	limiter := ratelimit.New(50, 100)
	router.Use(rateLimitMiddleware(limiter, logger))

	humaConfig := huma.DefaultConfig("Kanban API", "1.0.0")
	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		container: container,
		store:     st,
		router:    router,
		api:       api,
		logger:    logger,
		limiter:   limiter,
	}

	s.registerHealthRoutes()
	s.registerStateRoutes()
	s.registerBoardRoutes()
	s.registerColumnRoutes()
	s.registerCardRoutes()
	s.registerCommentRoutes()
	s.registerSettingsRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases server-owned resources.
func (s *Server) Close() {
	s.limiter.Stop()
}

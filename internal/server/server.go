// Package server provides the HTTP server and routing for tickerpulse.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aristath/tickerpulse/internal/di"
	"github.com/aristath/tickerpulse/internal/metrics"
	searchcountshandlers "github.com/aristath/tickerpulse/internal/modules/searchcounts/handlers"
	tickershandlers "github.com/aristath/tickerpulse/internal/modules/tickers/handlers"
	trendinghandlers "github.com/aristath/tickerpulse/internal/modules/trending/handlers"
)

// Config holds server configuration
type Config struct {
	Log            zerolog.Logger
	Container      *di.Container // DI container with all services
	Port           int
	DevMode        bool
	RequestTimeout time.Duration
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	container      *di.Container
	systemHandlers *SystemHandlers
	port           int
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}

	s := &Server{
		router:         chi.NewRouter(),
		log:            cfg.Log.With().Str("component", "server").Logger(),
		container:      cfg.Container,
		systemHandlers: NewSystemHandlers(cfg.Log, cfg.Container.DocumentsDB, cfg.Container.TickerCache, cfg.Container.SearchCounter),
		port:           cfg.Port,
	}

	s.setupMiddleware(cfg.DevMode, cfg.RequestTimeout)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool, requestTimeout time.Duration) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Prometheus request metrics
	s.router.Use(s.container.Metrics.HTTP.Middleware)

	// Timeout
	s.router.Use(middleware.Timeout(requestTimeout))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.systemHandlers.HandleHealth)
	s.router.Method(http.MethodGet, "/metrics", metrics.Handler(s.container.Registry))

	tickershandlers.NewHandler(s.container.TickerService, s.log).RegisterRoutes(s.router)
	trendinghandlers.NewHandler(s.container.TrendingService, s.log).RegisterRoutes(s.router)
	searchcountshandlers.NewHandler(s.container.SearchCounter, s.log).RegisterRoutes(s.router)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}

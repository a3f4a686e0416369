// Package server provides the local fixture API: the advisors, accounts and
// holdings endpoints served from embedded JSON, with optional fault injection.
package server

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aristath/compound/pkg/embedded"
)

// Config holds server configuration
type Config struct {
	Log         zerolog.Logger
	Port        int
	FailFirst   int      // Initial requests per data route answered with HTTP 500
	CORSOrigins []string // Defaults to any origin
	Fixtures    fs.FS    // Defaults to the embedded fixtures
}

// Server represents the HTTP server
type Server struct {
	router    *chi.Mux
	server    *http.Server
	log       zerolog.Logger
	port      int
	fixtures  fs.FS
	failFirst int

	mu     sync.Mutex
	served map[string]int // Requests seen per data route
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	fixtures := cfg.Fixtures
	if fixtures == nil {
		fixtures = embedded.Fixtures()
	}
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	s := &Server{
		router:    chi.NewRouter(),
		log:       cfg.Log.With().Str("component", "server").Logger(),
		port:      cfg.Port,
		fixtures:  fixtures,
		failFirst: cfg.FailFirst,
		served:    make(map[string]int),
	}

	s.setupMiddleware(origins)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(origins []string) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(30 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Get("/advisors", s.handleFixture("advisors"))
	s.router.Get("/accounts", s.handleFixture("accounts"))
	s.router.Get("/holdings", s.handleFixture("holdings"))
}

// Handler exposes the router, e.g. for httptest servers
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().
		Int("port", s.port).
		Int("fail_first", s.failFirst).
		Msg("Starting fixture API server")
	return s.server.ListenAndServe()
}

// Serve serves on an already bound listener
func (s *Server) Serve(l net.Listener) error {
	s.log.Info().
		Str("addr", l.Addr().String()).
		Int("fail_first", s.failFirst).
		Msg("Starting fixture API server")
	return s.server.Serve(l)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down fixture API server")
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

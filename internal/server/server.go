package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ObiBat/craefto-automation/internal/config"
	"github.com/ObiBat/craefto-automation/internal/quality"
	"github.com/ObiBat/craefto-automation/internal/research"
	"github.com/ObiBat/craefto-automation/internal/usecase"
)

// Server exposes the research pipeline over HTTP.
type Server struct {
	server *http.Server
	router *chi.Mux
}

// NewServer builds the router and wires handlers.
func NewServer(
	cfg config.ServerConfig,
	researchUC *usecase.Research,
	competitor *research.CompetitorAnalyzer,
	checker *quality.Checker,
	logger *slog.Logger,
) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(120 * time.Second))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CorsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	h := newHandler(researchUC, competitor, checker, logger)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/research", func(r chi.Router) {
			r.Post("/run", h.RunResearch)
			r.Get("/latest", h.LatestResearch)
			r.Post("/competitor", h.AnalyzeCompetitor)
		})

		r.Post("/quality/check", h.QualityCheck)
	})

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 150 * time.Second,
	}

	return &Server{server: httpServer, router: router}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

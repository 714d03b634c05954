package server

import (
	"context"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dailydewey/internal/daily"
	"dailydewey/internal/handlers"
	"dailydewey/internal/models"
)

// Store is the read-only lookup collaborator the routes are served
// from. *db.DB satisfies it in production; tests inject a fixture.
type Store interface {
	daily.Repository
	Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error)
	SectionsByDivision(ctx context.Context, divisionCode string) ([]models.HierarchyEntry, error)
	DivisionsByMainClass(ctx context.Context, mainClassCode string) ([]models.HierarchyEntry, error)
	Ping(ctx context.Context) error
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(store Store) {
	// Initialize handlers
	dailyHandler := handlers.NewDailyHandler(store)
	searchHandler := handlers.NewSearchHandler(store)
	browseHandler := handlers.NewBrowseHandler(store)
	healthHandler := handlers.NewHealthHandler(store)
	probeHandler := handlers.NewProbeHandler(store)

	// Daily pick, also served at the root
	s.App.Get("/", dailyHandler.Daily)
	s.App.Get("/daily", dailyHandler.Daily)

	// Companion endpoints
	s.App.Get("/search", searchHandler.Search)
	s.App.Get("/divisions/:code/sections", browseHandler.Sections)
	s.App.Get("/classes/:code/divisions", browseHandler.Divisions)

	// Operational endpoints
	s.App.Get("/health", healthHandler.Health)
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

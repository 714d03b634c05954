package handlers

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"dailydewey/internal/metrics"
	"dailydewey/internal/models"
)

// Search limits.
const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// Searcher is the store surface needed by the search endpoint.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error)
}

// SearchHandler serves free-text search across all hierarchy levels.
type SearchHandler struct {
	store Searcher
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(store Searcher) *SearchHandler {
	return &SearchHandler{store: store}
}

// Search handles GET /search?q=...&limit=...
func (h *SearchHandler) Search(c fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return jsonValidationError(c, "q", "q is required")
	}

	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return jsonValidationError(c, "limit", "limit must be a positive integer")
		}
		limit = min(n, maxSearchLimit)
	}

	results, err := h.store.Search(c.Context(), query, limit)
	if err != nil {
		metrics.RecordSearch("error")
		slog.Error("search failed", "query", query, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "search failed")
	}

	metrics.RecordSearch("ok")
	return jsonSuccess(c, fiber.Map{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

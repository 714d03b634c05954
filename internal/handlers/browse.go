package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"dailydewey/internal/models"
	"dailydewey/internal/validation"
)

// Browser is the store surface needed by the browse endpoints.
type Browser interface {
	SectionsByDivision(ctx context.Context, divisionCode string) ([]models.HierarchyEntry, error)
	DivisionsByMainClass(ctx context.Context, mainClassCode string) ([]models.HierarchyEntry, error)
}

// BrowseHandler serves hierarchy drill-down listings.
type BrowseHandler struct {
	store Browser
}

// NewBrowseHandler creates a new browse handler.
func NewBrowseHandler(store Browser) *BrowseHandler {
	return &BrowseHandler{store: store}
}

// Sections handles GET /divisions/:code/sections.
func (h *BrowseHandler) Sections(c fiber.Ctx) error {
	code := c.Params("code")
	if !validation.ValidateCode(code) {
		return jsonValidationError(c, "code", "code must be exactly 3 digits")
	}

	sections, err := h.store.SectionsByDivision(c.Context(), code)
	if err != nil {
		slog.Error("failed to list sections", "division", code, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to list sections")
	}

	return jsonSuccess(c, fiber.Map{
		"division": code,
		"count":    len(sections),
		"sections": sections,
	})
}

// Divisions handles GET /classes/:code/divisions.
func (h *BrowseHandler) Divisions(c fiber.Ctx) error {
	code := c.Params("code")
	if !validation.ValidateCode(code) {
		return jsonValidationError(c, "code", "code must be exactly 3 digits")
	}

	divisions, err := h.store.DivisionsByMainClass(c.Context(), code)
	if err != nil {
		slog.Error("failed to list divisions", "main_class", code, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to list divisions")
	}

	return jsonSuccess(c, fiber.Map{
		"main_class": code,
		"count":      len(divisions),
		"divisions":  divisions,
	})
}

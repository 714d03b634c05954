package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// Pinger is the store surface needed by the health endpoints.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the operator-facing health endpoint.
type HealthHandler struct {
	store Pinger

	// instanceID identifies this process in health responses, useful
	// when several replicas sit behind one load balancer.
	instanceID string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{
		store:      store,
		instanceID: uuid.NewString(),
	}
}

// Health handles GET /health. Liveness-style: always 200, with the
// database state reported as a field rather than a status code.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	database := "ok"
	if err := h.store.Ping(c.Context()); err != nil {
		database = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"database":    database,
		"instance_id": h.instanceID,
	})
}

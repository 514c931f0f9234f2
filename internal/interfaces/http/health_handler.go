package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger lo implementa *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler chequeos de vida y de base de datos.
type HealthHandler struct {
	db      Pinger
	started time.Time
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, started: time.Now()}
}

// Simple godoc
// @Summary      Health check sin base de datos
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Simple(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "OK"})
}

// Check godoc
// @Summary      Health check con ping a la base
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		return errorBody(c, fiber.StatusServiceUnavailable, "Database unavailable", "Database connection failed", nil)
	}
	return ok(c, fiber.StatusOK, "Server is running", fiber.Map{
		"status":    "OK",
		"database":  "connected",
		"uptime":    time.Since(h.started).Round(time.Second).String(),
		"timestamp": time.Now().UTC(),
	})
}

package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
)

type ResponseCachePurger interface {
	Remove(ctx context.Context, url string) error
}

type CachePurgeHandler struct {
	purger ResponseCachePurger
	logger *slog.Logger
}

func NewCachePurgeHandler(purger ResponseCachePurger, logger *slog.Logger) *CachePurgeHandler {
	return &CachePurgeHandler{purger: purger, logger: logger}
}

func (h *CachePurgeHandler) Register(router fiber.Router) {
	router.Delete("/cache", h.Handle)
}

func (h *CachePurgeHandler) Handle(c fiber.Ctx) error {
	url := strings.TrimSpace(c.Query("url"))
	if url == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url is required"})
	}

	if err := h.purger.Remove(c.Context(), url); err != nil {
		h.logger.Error("failed to purge cache entry", "url", url, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

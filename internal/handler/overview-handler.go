package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/burakmert236/gamehub-admin/internal/logger"
	"github.com/burakmert236/gamehub-admin/internal/service"
)

type OverviewHandler struct {
	overviewService service.OverviewService
	logger          *logger.Logger
}

func NewOverviewHandler(overviewService service.OverviewService, logger *logger.Logger) *OverviewHandler {
	return &OverviewHandler{
		overviewService: overviewService,
		logger:          logger,
	}
}

func (h *OverviewHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.overviewService.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(stats)
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/burakmert236/gamehub-admin/internal/apperrors"
	"github.com/burakmert236/gamehub-admin/internal/logger"
	"github.com/burakmert236/gamehub-admin/internal/middleware"
	"github.com/burakmert236/gamehub-admin/internal/service"
)

type AnnouncementHandler struct {
	announcementService service.AnnouncementService
	logger              *logger.Logger
}

func NewAnnouncementHandler(announcementService service.AnnouncementService, logger *logger.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
		logger:              logger,
	}
}

// List returns the full set by default; the admin screens show inactive and
// expired announcements alongside live ones. Pass activeOnly=true to narrow.
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	activeOnly := c.QueryBool("activeOnly", false)

	announcements, err := h.announcementService.List(c.Context(), activeOnly)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(announcements)
}

func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	var input service.AnnouncementInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, apperrors.Wrap(err, apperrors.CodeInvalidInput, "invalid announcement payload"))
	}

	announcement, appErr := h.announcementService.Create(
		c.Context(),
		input,
		middleware.AdminId(c),
		middleware.AdminName(c),
	)
	if appErr != nil {
		return respondError(c, appErr)
	}

	return c.Status(fiber.StatusCreated).JSON(announcement)
}

func (h *AnnouncementHandler) Update(c *fiber.Ctx) error {
	announcementId := c.Params("id")
	if announcementId == "" {
		return respondError(c, apperrors.New(apperrors.CodeInvalidInput, "announcement id is required"))
	}

	var update service.AnnouncementUpdate
	if err := c.BodyParser(&update); err != nil {
		return respondError(c, apperrors.Wrap(err, apperrors.CodeInvalidInput, "invalid announcement payload"))
	}

	announcement, appErr := h.announcementService.Update(c.Context(), announcementId, update, middleware.AdminId(c))
	if appErr != nil {
		return respondError(c, appErr)
	}

	return c.JSON(announcement)
}

func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	announcementId := c.Params("id")
	if announcementId == "" {
		return respondError(c, apperrors.New(apperrors.CodeInvalidInput, "announcement id is required"))
	}

	if appErr := h.announcementService.Delete(c.Context(), announcementId, middleware.AdminId(c)); appErr != nil {
		return respondError(c, appErr)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

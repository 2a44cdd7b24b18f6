package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/burakmert236/gamehub-admin/internal/apperrors"
	"github.com/burakmert236/gamehub-admin/internal/logger"
	"github.com/burakmert236/gamehub-admin/internal/middleware"
	"github.com/burakmert236/gamehub-admin/internal/service"
)

type TournamentHandler struct {
	tournamentService service.TournamentService
	logger            *logger.Logger
}

func NewTournamentHandler(tournamentService service.TournamentService, logger *logger.Logger) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: tournamentService,
		logger:            logger,
	}
}

func (h *TournamentHandler) List(c *fiber.Ctx) error {
	tournaments, err := h.tournamentService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(tournaments)
}

func (h *TournamentHandler) Create(c *fiber.Ctx) error {
	var input service.TournamentInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, apperrors.Wrap(err, apperrors.CodeInvalidInput, "invalid tournament payload"))
	}

	tournament, appErr := h.tournamentService.Create(c.Context(), input, middleware.AdminId(c))
	if appErr != nil {
		return respondError(c, appErr)
	}

	return c.Status(fiber.StatusCreated).JSON(tournament)
}

func (h *TournamentHandler) Update(c *fiber.Ctx) error {
	tournamentId := c.Params("id")
	if tournamentId == "" {
		return respondError(c, apperrors.New(apperrors.CodeInvalidInput, "tournament id is required"))
	}

	var update service.TournamentUpdate
	if err := c.BodyParser(&update); err != nil {
		return respondError(c, apperrors.Wrap(err, apperrors.CodeInvalidInput, "invalid tournament payload"))
	}

	tournament, appErr := h.tournamentService.Update(c.Context(), tournamentId, update, middleware.AdminId(c))
	if appErr != nil {
		return respondError(c, appErr)
	}

	return c.JSON(tournament)
}

func (h *TournamentHandler) Delete(c *fiber.Ctx) error {
	tournamentId := c.Params("id")
	if tournamentId == "" {
		return respondError(c, apperrors.New(apperrors.CodeInvalidInput, "tournament id is required"))
	}

	if appErr := h.tournamentService.Delete(c.Context(), tournamentId, middleware.AdminId(c)); appErr != nil {
		return respondError(c, appErr)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

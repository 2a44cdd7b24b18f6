package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/burakmert236/gamehub-admin/internal/apperrors"
	"github.com/burakmert236/gamehub-admin/internal/logger"
	"github.com/burakmert236/gamehub-admin/internal/middleware"
	"github.com/burakmert236/gamehub-admin/internal/service"
)

type UserHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

func NewUserHandler(userService service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

type awardPointsRequest struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	searchTerm := c.Query("search")
	roleFilter := c.Query("role", "all")

	users, err := h.userService.List(c.Context(), searchTerm, roleFilter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(users)
}

func (h *UserHandler) Promote(c *fiber.Ctx) error {
	userId := c.Params("id")
	if userId == "" {
		return respondError(c, apperrors.New(apperrors.CodeInvalidInput, "user id is required"))
	}

	if appErr := h.userService.PromoteToAdmin(c.Context(), userId, middleware.AdminId(c)); appErr != nil {
		return respondError(c, appErr)
	}

	return c.JSON(fiber.Map{"uid": userId, "role": "admin"})
}

func (h *UserHandler) Demote(c *fiber.Ctx) error {
	userId := c.Params("id")
	if userId == "" {
		return respondError(c, apperrors.New(apperrors.CodeInvalidInput, "user id is required"))
	}

	if appErr := h.userService.DemoteToMember(c.Context(), userId, middleware.AdminId(c)); appErr != nil {
		return respondError(c, appErr)
	}

	return c.JSON(fiber.Map{"uid": userId, "role": "member"})
}

func (h *UserHandler) AwardPoints(c *fiber.Ctx) error {
	userId := c.Params("id")
	if userId == "" {
		return respondError(c, apperrors.New(apperrors.CodeInvalidInput, "user id is required"))
	}

	var req awardPointsRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.Wrap(err, apperrors.CodeInvalidInput, "invalid points payload"))
	}

	balance, appErr := h.userService.AwardPoints(c.Context(), userId, req.Amount, req.Reason, middleware.AdminId(c))
	if appErr != nil {
		return respondError(c, appErr)
	}

	return c.JSON(fiber.Map{"uid": userId, "points": balance})
}

func (h *UserHandler) SetActive(c *fiber.Ctx) error {
	userId := c.Params("id")
	if userId == "" {
		return respondError(c, apperrors.New(apperrors.CodeInvalidInput, "user id is required"))
	}

	var req setActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.Wrap(err, apperrors.CodeInvalidInput, "invalid status payload"))
	}

	if appErr := h.userService.SetActive(c.Context(), userId, req.Active, middleware.AdminId(c)); appErr != nil {
		return respondError(c, appErr)
	}

	return c.JSON(fiber.Map{"uid": userId, "isActive": req.Active})
}

func (h *UserHandler) ListGrants(c *fiber.Ctx) error {
	userId := c.Params("id")
	if userId == "" {
		return respondError(c, apperrors.New(apperrors.CodeInvalidInput, "user id is required"))
	}

	grants, appErr := h.userService.ListGrants(c.Context(), userId)
	if appErr != nil {
		return respondError(c, appErr)
	}

	return c.JSON(grants)
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/burakmert236/gamehub-admin/internal/apperrors"
)

func respondError(c *fiber.Ctx, err *apperrors.AppError) error {
	return c.Status(apperrors.ToHTTPStatus(err)).JSON(fiber.Map{
		"code":  err.Code,
		"error": err.Message,
	})
}

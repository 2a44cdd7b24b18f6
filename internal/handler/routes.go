package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/burakmert236/gamehub-admin/internal/middleware"
)

// SetupRoutes registers the admin API behind the gateway identity check.
func SetupRoutes(
	app *fiber.App,
	overviewHandler *OverviewHandler,
	tournamentHandler *TournamentHandler,
	announcementHandler *AnnouncementHandler,
	userHandler *UserHandler,
) {
	admin := app.Group("/admin", middleware.Identity())

	admin.Get("/overview", overviewHandler.Stats)

	admin.Get("/tournaments", tournamentHandler.List)
	admin.Post("/tournaments", tournamentHandler.Create)
	admin.Put("/tournaments/:id", tournamentHandler.Update)
	admin.Delete("/tournaments/:id", tournamentHandler.Delete)

	admin.Get("/announcements", announcementHandler.List)
	admin.Post("/announcements", announcementHandler.Create)
	admin.Put("/announcements/:id", announcementHandler.Update)
	admin.Delete("/announcements/:id", announcementHandler.Delete)

	admin.Get("/users", userHandler.List)
	admin.Post("/users/:id/promote", userHandler.Promote)
	admin.Post("/users/:id/demote", userHandler.Demote)
	admin.Post("/users/:id/points", userHandler.AwardPoints)
	admin.Patch("/users/:id/active", userHandler.SetActive)
	admin.Get("/users/:id/grants", userHandler.ListGrants)
}

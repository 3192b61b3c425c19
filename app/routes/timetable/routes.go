package timetable

import (
	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/routes/auth"
)

func SetupTimetableRoutes(app *fiber.App) {
	api := app.Group("/api/timetable")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetTimetableAPI)
	api.Post("/periods", CreatePeriodAPI)
	api.Put("/periods/:periodId", UpdatePeriodAPI)
	api.Delete("/periods/:periodId", DeletePeriodAPI)
	api.Put("/periods/:periodId/assignments", ReplaceAssignmentsAPI)
	api.Post("/magic-fill", MagicFillAPI)
}

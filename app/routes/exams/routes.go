package exams

import (
	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/routes/auth"
)

func SetupExamsRoutes(app *fiber.App) {
	api := app.Group("/api/exams")
	api.Use(auth.AuthMiddleware)

	api.Post("/results", CreateExamResultAPI)
	api.Get("/results/:enrollmentId", GetExamResultsAPI)
}

package settings

import (
	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/routes/auth"
)

func SetupSettingsRoutes(app *fiber.App) {
	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)

	api.Get("/school", GetSchoolDetailsAPI)
	api.Put("/school", UpsertSchoolDetailsAPI)

	api.Get("/classes", GetClassesAPI)
	api.Post("/classes", CreateClassAPI)
	api.Put("/classes/:classId", UpdateClassAPI)
	api.Delete("/classes/:classId", DeleteClassAPI)

	api.Get("/subjects", GetClassSubjectsAPI)
	api.Put("/subjects/:classId", SetClassSubjectsAPI)

	api.Get("/parents/search", SearchParentsAPI)
}

package fees

import (
	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/routes/auth"
)

func SetupFeesRoutes(app *fiber.App) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)

	api.Get("/enrollment/:enrollmentId", GetFeeStatusAPI)
	api.Post("/enrollment/:enrollmentId/collect", CollectFeeAPI)

	api.Get("/plans/:classId", GetFeePlanAPI)
	api.Put("/plans/:classId", UpsertFeePlanAPI)
}

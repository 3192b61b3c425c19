package notices

import (
	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/routes/auth"
)

func SetupNoticesRoutes(app *fiber.App) {
	api := app.Group("/api/notices")
	api.Use(auth.AuthMiddleware)

	api.Post("/", CreateNoticeAPI)
	api.Get("/", GetNoticesAPI)
	api.Delete("/:noticeId", DeleteNoticeAPI)
}

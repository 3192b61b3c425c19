package teachers

import (
	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/routes/auth"
)

func SetupTeachersRoutes(app *fiber.App) {
	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)

	api.Post("/", CreateTeacherAPI)
	api.Get("/", GetTeachersAPI)
	api.Get("/:teacherId", GetTeacherAPI)
	api.Put("/:teacherId", UpdateTeacherAPI)
	api.Delete("/:teacherId", DeleteTeacherAPI)
	api.Post("/:teacherId/carry", CarryTeacherAPI)

	api.Get("/:teacherId/salary/preview", SalaryPreviewAPI)
	api.Post("/:teacherId/salary/pay", PaySalaryAPI)
	api.Get("/:teacherId/salary/history", SalaryHistoryAPI)
}

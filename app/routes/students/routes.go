package students

import (
	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Post("/", AdmitStudentAPI)
	api.Post("/import", ImportStudentsAPI)
	api.Get("/search", SearchStudentsAPI)
	api.Get("/class/:classId", GetStudentsByClassAPI)
	api.Get("/:enrollmentId", GetStudentAPI)
	api.Put("/:enrollmentId", UpdateStudentAPI)
	api.Delete("/:enrollmentId", DeleteStudentAPI)
	api.Post("/:enrollmentId/readmit", ReadmitStudentAPI)
}

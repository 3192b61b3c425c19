package attendance

import (
	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Post("/students", MarkStudentAttendanceAPI)
	api.Post("/students/bulk", MarkClassAttendanceAPI)
	api.Get("/students/class/:classId", GetClassAttendanceAPI)
	api.Get("/students/:enrollmentId/month", GetStudentMonthAPI)

	api.Post("/teachers", MarkTeacherAttendanceAPI)
	api.Get("/teachers", GetTeacherAttendanceAPI)
	api.Get("/teachers/:teacherId/month", GetTeacherMonthAPI)

	api.Post("/holidays", SetHolidayAPI)
	api.Get("/holidays", GetHolidaysAPI)
}

package main

import (
	"encoding/json"
	"log"
	"time"

	"vidyalaya/app/config"
	"vidyalaya/app/database"
	"vidyalaya/app/routes/attendance"
	"vidyalaya/app/routes/auth"
	"vidyalaya/app/routes/dashboard"
	"vidyalaya/app/routes/documents"
	"vidyalaya/app/routes/exams"
	"vidyalaya/app/routes/fees"
	"vidyalaya/app/routes/notices"
	"vidyalaya/app/routes/settings"
	"vidyalaya/app/routes/students"
	"vidyalaya/app/routes/teachers"
	"vidyalaya/app/routes/timetable"
	"vidyalaya/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler returns JSON for API requests and the error page
// for everything else.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"ErrorCode":    code,
		"ErrorMessage": err.Error(),
	})
}

func main() {
	// The school day, session boundaries and attendance locks all follow
	// Indian Standard Time.
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Kolkata location, falling back to UTC+5:30: %v", err)
		time.Local = time.FixedZone("IST", 5*3600+1800)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	config.LoadEnv()
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	services.StartScheduler(config.GetDB())

	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(auth.SchoolGateMiddleware)

	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/api/dashboard/stats")
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	teachers.SetupTeachersRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	fees.SetupFeesRoutes(app)
	exams.SetupExamsRoutes(app)
	timetable.SetupTimetableRoutes(app)
	notices.SetupNoticesRoutes(app)
	documents.SetupDocumentsRoutes(app)
	settings.SetupSettingsRoutes(app)

	addr := config.AppConfig.ListenAddr
	log.Printf("Server starting on %s", addr)
	log.Fatal(app.Listen(addr))
}

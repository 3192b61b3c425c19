package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/config"
	"vidyalaya/app/database"
	"vidyalaya/app/models"
	"vidyalaya/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/stats", GetStatsAPI)
}

func GetStatsAPI(c *fiber.Ctx) error {
	session := models.Session(c.Query("session"))
	if session == "" {
		session = models.SessionFor(time.Now())
	}

	stats, err := database.GetDashboardStats(config.GetDB(), session, time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}

	stats["session"] = session
	return c.JSON(stats)
}

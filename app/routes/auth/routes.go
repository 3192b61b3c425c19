package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/config"
	"vidyalaya/app/database"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")

	// Public routes
	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)

	// Protected routes
	api.Use(AuthMiddleware)
	api.Get("/me", CurrentUserAPI)
	api.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware resolves the JWT from the cookie or the Authorization
// header and stores the user in locals.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired session")
	}

	user, err := database.GetUserByID(config.GetDB(), claims.UserID)
	if err != nil || user == nil || !user.IsActive {
		return fiber.NewError(fiber.StatusUnauthorized, "Account not found or disabled")
	}

	c.Locals("user", user)
	return c.Next()
}

// SchoolGateMiddleware blocks every request when the school's
// registration has been switched off in the master registry. Schools
// without a configured SCHOOL_ID skip the check.
func SchoolGateMiddleware(c *fiber.Ctx) error {
	schoolID := config.AppConfig.SchoolID
	if schoolID == "" {
		return c.Next()
	}

	reg, err := database.GetSchoolRegistration(config.GetDB(), schoolID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify school registration")
	}
	if reg == nil || !reg.IsActive() {
		return fiber.NewError(fiber.StatusForbidden, "School registration is inactive. Contact the administrator.")
	}
	return c.Next()
}

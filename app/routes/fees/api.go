package fees

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/config"
	"vidyalaya/app/database"
	"vidyalaya/app/models"
)

var validate = validator.New()

// GetFeeStatusAPI returns the twelve monthly rows with running totals.
func GetFeeStatusAPI(c *fiber.Ctx) error {
	fees, err := database.GetFeesByEnrollment(config.GetDB(), c.Params("enrollmentId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fees"})
	}

	var totalDue, totalPaid int64
	for _, f := range fees {
		totalDue += f.TotalDue()
		totalPaid += f.Paid
	}

	return c.JSON(fiber.Map{
		"fees":        fees,
		"total_due":   totalDue,
		"total_paid":  totalPaid,
		"outstanding": totalDue - totalPaid,
	})
}

func CollectFeeAPI(c *fiber.Ctx) error {
	type CollectRequest struct {
		Amount    int64  `json:"amount" validate:"required,gt=0"`
		Reference string `json:"reference"`
	}

	var req CollectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Amount must be greater than zero"})
	}

	user := c.Locals("user").(*models.User)
	payment, err := database.CollectFeePayment(config.GetDB(), c.Params("enrollmentId"), req.Amount, req.Reference, user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Payment recorded",
		"payment": payment,
	})
}

func GetFeePlanAPI(c *fiber.Ctx) error {
	plan, err := database.GetFeePlanByClass(config.GetDB(), c.Params("classId"))
	if err == database.ErrNoFeePlan {
		return c.Status(404).JSON(fiber.Map{"error": "No fee plan configured for this class"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee plan"})
	}

	return c.JSON(fiber.Map{
		"plan":          plan,
		"monthly_total": plan.MonthlyTotal(),
	})
}

func UpsertFeePlanAPI(c *fiber.Ctx) error {
	type PlanRequest struct {
		Heads map[string]int64 `json:"heads" validate:"required,min=1"`
	}

	var req PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "At least one fee head is required"})
	}
	for head, amount := range req.Heads {
		if head == "" || amount < 0 {
			return c.Status(400).JSON(fiber.Map{"error": "Fee heads need a name and a non-negative amount"})
		}
	}

	plan, err := database.UpsertFeePlan(config.GetDB(), c.Params("classId"), req.Heads)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save fee plan"})
	}

	return c.JSON(fiber.Map{
		"message": "Fee plan saved",
		"plan":    plan,
	})
}

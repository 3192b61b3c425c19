package exams

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/config"
	"vidyalaya/app/database"
	"vidyalaya/app/models"
)

var validate = validator.New()

type ExamResultRequest struct {
	EnrollmentID string         `json:"enrollment_id" validate:"required,uuid"`
	Session      models.Session `json:"session" validate:"required"`
	ExamType     string         `json:"exam_type" validate:"required"`
	Rows         []struct {
		Subject string `json:"subject" validate:"required"`
		Total   int    `json:"total" validate:"gt=0"`
		Marks   int    `json:"marks" validate:"gte=0"`
	} `json:"rows" validate:"required,min=1,dive"`
}

func CreateExamResultAPI(c *fiber.Ctx) error {
	var req ExamResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}
	if _, err := models.ParseSession(req.Session); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	for _, row := range req.Rows {
		if row.Marks > row.Total {
			return c.Status(400).JSON(fiber.Map{"error": "Marks cannot exceed the subject total"})
		}
	}

	result := &models.ExamResult{
		EnrollmentID: req.EnrollmentID,
		Session:      req.Session,
		ExamType:     req.ExamType,
	}
	for _, row := range req.Rows {
		result.Rows = append(result.Rows, models.SubjectMark{
			Subject: row.Subject,
			Total:   row.Total,
			Marks:   row.Marks,
		})
	}

	err := database.CreateExamResult(config.GetDB(), result)
	if err == database.ErrDuplicateResult {
		return c.Status(422).JSON(fiber.Map{"error": "Result already entered for this exam"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save result"})
	}

	obtained, total := result.Obtained()
	return c.Status(201).JSON(fiber.Map{
		"message":  "Result saved",
		"result":   result,
		"obtained": obtained,
		"total":    total,
	})
}

func GetExamResultsAPI(c *fiber.Ctx) error {
	results, err := database.GetExamResultsByEnrollment(config.GetDB(), c.Params("enrollmentId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch results"})
	}

	return c.JSON(fiber.Map{
		"results": results,
		"count":   len(results),
	})
}

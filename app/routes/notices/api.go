package notices

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/config"
	"vidyalaya/app/database"
	"vidyalaya/app/models"
)

var validate = validator.New()

func currentSession(c *fiber.Ctx) models.Session {
	if s := c.Query("session"); s != "" {
		return models.Session(s)
	}
	return models.SessionFor(time.Now())
}

type NoticeRequest struct {
	Session models.Session    `json:"session" validate:"required"`
	Title   string            `json:"title" validate:"required"`
	Body    string            `json:"body"`
	Kind    models.NoticeKind `json:"kind" validate:"omitempty,oneof=general holiday fee_due"`
}

func CreateNoticeAPI(c *fiber.Ctx) error {
	var req NoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}
	if req.Kind == "" {
		req.Kind = models.NoticeGeneral
	}

	notice := &models.Notice{
		Session: req.Session,
		Title:   req.Title,
		Body:    req.Body,
		Kind:    req.Kind,
	}
	if err := database.CreateNotice(config.GetDB(), notice); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to publish notice"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Notice published",
		"notice":  notice,
	})
}

func GetNoticesAPI(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	notices, err := database.GetNoticesBySession(config.GetDB(), currentSession(c), limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch notices"})
	}

	return c.JSON(fiber.Map{
		"notices": notices,
		"count":   len(notices),
	})
}

func DeleteNoticeAPI(c *fiber.Ctx) error {
	if err := database.SoftDeleteNotice(config.GetDB(), c.Params("noticeId")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete notice"})
	}
	return c.JSON(fiber.Map{"message": "Notice deleted"})
}

package teachers

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

type TeacherRequest struct {
	Name           string            `json:"name" validate:"required"`
	Role           models.StaffRole  `json:"role" validate:"required,oneof=teacher other_staff"`
	Subject        string            `json:"subject"`
	MonthlySalary  int64             `json:"monthly_salary" validate:"gte=0"`
	Session        models.Session    `json:"session" validate:"required"`
	ClassTeacherOf *string           `json:"class_teacher_of,omitempty" validate:"omitempty,uuid"`
	Phone          string            `json:"phone" validate:"omitempty,len=10,numeric"`
	Email          string            `json:"email" validate:"omitempty,email"`
	JoinedOn       models.CustomDate `json:"joined_on"`
}

func CreateTeacherAPI(c *fiber.Ctx) error {
	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}
	if _, err := models.ParseSession(req.Session); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	teacher := &models.Teacher{
		Name:           req.Name,
		Role:           req.Role,
		Subject:        req.Subject,
		MonthlySalary:  req.MonthlySalary,
		Session:        req.Session,
		ClassTeacherOf: req.ClassTeacherOf,
		Phone:          req.Phone,
		Email:          req.Email,
		JoinedOn:       req.JoinedOn,
	}
	if err := database.CreateTeacher(config.GetDB(), teacher); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create staff member"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Staff member created successfully",
		"teacher": teacher,
	})
}

func GetTeachersAPI(c *fiber.Ctx) error {
	role := models.StaffRole(c.Query("role"))
	teachers, err := database.GetTeachersBySession(config.GetDB(), currentSession(c), role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch staff"})
	}

	return c.JSON(fiber.Map{
		"teachers": teachers,
		"count":    len(teachers),
	})
}

func GetTeacherAPI(c *fiber.Ctx) error {
	teacher, err := database.GetTeacherByID(config.GetDB(), c.Params("teacherId"))
	if err == database.ErrTeacherNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch staff member"})
	}

	return c.JSON(fiber.Map{"teacher": teacher})
}

func UpdateTeacherAPI(c *fiber.Ctx) error {
	teacher, err := database.GetTeacherByID(config.GetDB(), c.Params("teacherId"))
	if err == database.ErrTeacherNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch staff member"})
	}

	if err := c.BodyParser(teacher); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	teacher.ID = c.Params("teacherId")

	if err := database.UpdateTeacher(config.GetDB(), teacher); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update staff member"})
	}

	return c.JSON(fiber.Map{
		"message": "Staff member updated successfully",
		"teacher": teacher,
	})
}

func DeleteTeacherAPI(c *fiber.Ctx) error {
	if err := database.SoftDeleteTeacher(config.GetDB(), c.Params("teacherId")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete staff member"})
	}
	return c.JSON(fiber.Map{"message": "Staff member deleted successfully"})
}

func CarryTeacherAPI(c *fiber.Ctx) error {
	teacher, err := database.CarryTeacherToNextSession(config.GetDB(), c.Params("teacherId"))
	switch err {
	case nil:
	case database.ErrTeacherNotFound:
		return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
	case database.ErrTeacherAlreadyPromoted:
		return c.Status(422).JSON(fiber.Map{"error": "Staff member is already carried to the next session"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to carry staff member forward"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Staff member carried to the next session",
		"teacher": teacher,
	})
}

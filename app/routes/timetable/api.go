package timetable

import (
	"math/rand"
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

func GetTimetableAPI(c *fiber.Ctx) error {
	periods, err := database.GetPeriodsBySession(config.GetDB(), currentSession(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable"})
	}

	return c.JSON(fiber.Map{
		"periods": periods,
		"count":   len(periods),
	})
}

type PeriodRequest struct {
	Session   models.Session    `json:"session" validate:"required"`
	Label     string            `json:"label" validate:"required"`
	StartTime string            `json:"start_time" validate:"required"`
	EndTime   string            `json:"end_time" validate:"required"`
	Type      models.PeriodType `json:"type" validate:"omitempty,oneof=class break off"`
	Position  int               `json:"position" validate:"gte=0"`
}

func CreatePeriodAPI(c *fiber.Ctx) error {
	var req PeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}
	if req.Type == "" {
		req.Type = models.PeriodClass
	}

	period := &models.Period{
		Session:   req.Session,
		Label:     req.Label,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Type:      req.Type,
		Position:  req.Position,
	}
	if err := database.CreatePeriod(config.GetDB(), period); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create period"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Period created",
		"period":  period,
	})
}

func UpdatePeriodAPI(c *fiber.Ctx) error {
	var req PeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	period := &models.Period{
		ID:        c.Params("periodId"),
		Session:   req.Session,
		Label:     req.Label,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Type:      req.Type,
		Position:  req.Position,
	}
	if err := database.UpdatePeriod(config.GetDB(), period); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update period"})
	}

	return c.JSON(fiber.Map{
		"message": "Period updated",
		"period":  period,
	})
}

func DeletePeriodAPI(c *fiber.Ctx) error {
	if err := database.DeletePeriod(config.GetDB(), c.Params("periodId")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete period"})
	}
	return c.JSON(fiber.Map{"message": "Period deleted"})
}

type AssignmentsRequest struct {
	Assignments []struct {
		TeacherID string `json:"teacher_id" validate:"required,uuid"`
		ClassID   string `json:"class_id" validate:"required,uuid"`
	} `json:"assignments" validate:"dive"`
}

func ReplaceAssignmentsAPI(c *fiber.Ctx) error {
	var req AssignmentsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	seen := make(map[string]bool, len(req.Assignments))
	assignments := make([]models.PeriodAssignment, 0, len(req.Assignments))
	for _, a := range req.Assignments {
		if seen[a.TeacherID] {
			return c.Status(422).JSON(fiber.Map{"error": "A teacher can only take one class per period"})
		}
		seen[a.TeacherID] = true
		assignments = append(assignments, models.PeriodAssignment{
			TeacherID: a.TeacherID,
			ClassID:   a.ClassID,
		})
	}

	if err := database.ReplacePeriodAssignments(config.GetDB(), c.Params("periodId"), assignments); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save assignments"})
	}

	return c.JSON(fiber.Map{"message": "Assignments saved"})
}

// MagicFillAPI regenerates the whole timetable for a session: every
// class period gets one teacher per class, rotated so the pairing
// changes slot to slot.
func MagicFillAPI(c *fiber.Ctx) error {
	session := currentSession(c)
	db := config.GetDB()

	periods, err := database.GetPeriodsBySession(db, session)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable"})
	}
	var periodIDs []string
	for _, p := range periods {
		if p.Type == models.PeriodClass {
			periodIDs = append(periodIDs, p.ID)
		}
	}
	if len(periodIDs) == 0 {
		return c.Status(422).JSON(fiber.Map{"error": "No class periods to fill"})
	}

	teachers, err := database.GetTeachersBySession(db, session, models.RoleTeacher)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}
	classes, err := database.GetAllClasses(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}

	var teacherIDs, classIDs []string
	for _, t := range teachers {
		teacherIDs = append(teacherIDs, t.ID)
	}
	for _, cl := range classes {
		classIDs = append(classIDs, cl.ID)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	fill := MagicFill(periodIDs, teacherIDs, classIDs, rng)
	if fill == nil {
		return c.Status(422).JSON(fiber.Map{"error": "Not enough teachers to cover every class"})
	}

	if err := database.ReplaceAllAssignments(db, fill); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to apply timetable"})
	}

	periods, err = database.GetPeriodsBySession(db, session)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable"})
	}
	return c.JSON(fiber.Map{
		"message": "Timetable filled",
		"periods": periods,
	})
}

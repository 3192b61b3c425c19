package students

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/config"
	"vidyalaya/app/database"
	"vidyalaya/app/models"
)

var validate = validator.New()

// currentSession resolves the session from the query, defaulting to the
// one the current date falls in.
func currentSession(c *fiber.Ctx) models.Session {
	if s := c.Query("session"); s != "" {
		return models.Session(s)
	}
	return models.SessionFor(time.Now())
}

type AdmissionRequest struct {
	Name        string            `json:"name" validate:"required"`
	FatherName  string            `json:"father_name"`
	MotherName  string            `json:"mother_name"`
	DateOfBirth models.CustomDate `json:"date_of_birth"`
	Gender      models.Gender     `json:"gender" validate:"omitempty,oneof=male female other"`
	Category    string            `json:"category"`
	Phone       string            `json:"phone" validate:"omitempty,len=10,numeric"`
	Address     string            `json:"address"`
	Documents   []string          `json:"documents"`

	ParentID    *string `json:"parent_id,omitempty" validate:"omitempty,uuid"`
	ParentName  string  `json:"parent_name"`
	ParentPhone string  `json:"parent_phone"`

	Session      models.Session `json:"session" validate:"required"`
	ClassID      string         `json:"class_id" validate:"required,uuid"`
	Subjects     []string       `json:"subjects"`
	TransportFee int64          `json:"transport_fee" validate:"gte=0"`
	LumpSum      int64          `json:"lump_sum" validate:"gte=0"`
}

func AdmitStudentAPI(c *fiber.Ctx) error {
	var req AdmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}
	if _, err := models.ParseSession(req.Session); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student, enrollment, err := database.AdmitStudent(config.GetDB(), &database.AdmissionInput{
		Name:         req.Name,
		FatherName:   req.FatherName,
		MotherName:   req.MotherName,
		DateOfBirth:  req.DateOfBirth.Time,
		Gender:       req.Gender,
		Category:     req.Category,
		Phone:        req.Phone,
		Address:      req.Address,
		Documents:    req.Documents,
		ParentID:     req.ParentID,
		ParentName:   req.ParentName,
		ParentPhone:  req.ParentPhone,
		Session:      req.Session,
		ClassID:      req.ClassID,
		Subjects:     req.Subjects,
		TransportFee: req.TransportFee,
		LumpSum:      req.LumpSum,
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to admit student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Student admitted successfully",
		"student":    student,
		"enrollment": enrollment,
	})
}

func GetStudentsByClassAPI(c *fiber.Ctx) error {
	classID := c.Params("classId")
	if classID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class ID is required"})
	}

	enrollments, err := database.GetEnrollmentsByClassSession(config.GetDB(), classID, currentSession(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": enrollments,
		"count":    len(enrollments),
	})
}

func SearchStudentsAPI(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Search term is required"})
	}
	limit := c.QueryInt("limit", 25)

	enrollments, err := database.SearchEnrollments(config.GetDB(), currentSession(c), term, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to search students"})
	}

	return c.JSON(fiber.Map{
		"students": enrollments,
		"count":    len(enrollments),
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	enrollment, err := database.GetEnrollmentByID(config.GetDB(), c.Params("enrollmentId"))
	if err == database.ErrEnrollmentNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	return c.JSON(fiber.Map{"student": enrollment})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	enrollment, err := database.GetEnrollmentByID(config.GetDB(), c.Params("enrollmentId"))
	if err == database.ErrEnrollmentNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	student := enrollment.Student
	if err := c.BodyParser(student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	student.ID = enrollment.StudentID

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{
		"message": "Student updated successfully",
		"student": student,
	})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	enrollment, err := database.GetEnrollmentByID(config.GetDB(), c.Params("enrollmentId"))
	if err == database.ErrEnrollmentNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	if err := database.SoftDeleteStudent(config.GetDB(), enrollment.StudentID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

func ReadmitStudentAPI(c *fiber.Ctx) error {
	type ReadmitRequest struct {
		ToClassID    string `json:"to_class_id" validate:"required,uuid"`
		TransportFee int64  `json:"transport_fee" validate:"gte=0"`
		LumpSum      int64  `json:"lump_sum" validate:"gte=0"`
	}

	var req ReadmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	enrollment, err := database.ReadmitStudent(config.GetDB(), c.Params("enrollmentId"), req.ToClassID, req.TransportFee, req.LumpSum)
	switch err {
	case nil:
	case database.ErrEnrollmentNotFound:
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	case database.ErrAlreadyPromoted:
		return c.Status(422).JSON(fiber.Map{"error": "Student is already promoted to the next session"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to readmit student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Student readmitted successfully",
		"enrollment": enrollment,
	})
}

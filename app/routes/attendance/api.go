package attendance

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

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// markError maps the attendance rule errors onto HTTP responses. A
// no-change mark is not an error to the caller; the cell already holds
// what they asked for.
func markError(c *fiber.Ctx, err error) error {
	switch err {
	case database.ErrNoChange:
		return c.JSON(fiber.Map{"message": "Attendance already marked with this status"})
	case database.ErrSundayLocked:
		return c.Status(422).JSON(fiber.Map{"error": "Attendance cannot be marked on a Sunday"})
	case database.ErrHolidayDay:
		return c.Status(422).JSON(fiber.Map{"error": "Attendance cannot be marked on a holiday"})
	case database.ErrPastLocked:
		return c.Status(422).JSON(fiber.Map{"error": "Past attendance cannot be created, only corrected"})
	case database.ErrOutsideSession:
		return c.Status(422).JSON(fiber.Map{"error": "Date falls outside the current session"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to mark attendance"})
	}
}

type MarkStudentRequest struct {
	EnrollmentID string                  `json:"enrollment_id" validate:"required,uuid"`
	Date         string                  `json:"date" validate:"required"`
	Status       models.AttendanceStatus `json:"status" validate:"required,oneof=present absent"`
}

func MarkStudentAttendanceAPI(c *fiber.Ctx) error {
	var req MarkStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, want YYYY-MM-DD"})
	}

	user := c.Locals("user").(*models.User)
	record, err := database.MarkStudentAttendance(config.GetDB(), req.EnrollmentID, date, req.Status, user.ID, time.Now())
	if err != nil {
		return markError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    "Attendance marked",
		"attendance": record,
	})
}

// MarkClassAttendanceAPI marks a whole class in one call, the way the
// register page submits. Rows that hit a rule are reported and skipped.
func MarkClassAttendanceAPI(c *fiber.Ctx) error {
	type BulkRequest struct {
		Date  string                             `json:"date" validate:"required"`
		Marks map[string]models.AttendanceStatus `json:"marks" validate:"required,min=1"`
	}

	var req BulkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, want YYYY-MM-DD"})
	}

	user := c.Locals("user").(*models.User)
	now := time.Now()

	marked := 0
	skipped := make(map[string]string)
	for enrollmentID, status := range req.Marks {
		if status != models.Present && status != models.Absent {
			skipped[enrollmentID] = "invalid status"
			continue
		}
		_, err := database.MarkStudentAttendance(config.GetDB(), enrollmentID, date, status, user.ID, now)
		switch err {
		case nil, database.ErrNoChange:
			marked++
		default:
			skipped[enrollmentID] = err.Error()
		}
	}

	return c.JSON(fiber.Map{
		"message": "Attendance saved",
		"marked":  marked,
		"skipped": skipped,
	})
}

func GetClassAttendanceAPI(c *fiber.Ctx) error {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Valid date query param is required"})
	}

	marks, err := database.GetClassAttendanceByDate(config.GetDB(), c.Params("classId"), currentSession(c), date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{"marks": marks})
}

func GetStudentMonthAPI(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year < 2000 || month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "Valid year and month query params are required"})
	}

	statuses, summary, err := database.GetStudentMonthAttendance(config.GetDB(), c.Params("enrollmentId"), year, time.Month(month))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{
		"days":    statuses,
		"summary": summary,
	})
}

type MarkTeacherRequest struct {
	TeacherID string                  `json:"teacher_id" validate:"required,uuid"`
	Date      string                  `json:"date" validate:"required"`
	Status    models.AttendanceStatus `json:"status" validate:"required,oneof=present absent leave"`
	Remarks   string                  `json:"remarks"`
}

func MarkTeacherAttendanceAPI(c *fiber.Ctx) error {
	var req MarkTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, want YYYY-MM-DD"})
	}

	record, err := database.MarkTeacherAttendance(config.GetDB(), req.TeacherID, date, req.Status, req.Remarks, time.Now())
	if err != nil {
		return markError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    "Attendance marked",
		"attendance": record,
	})
}

func GetTeacherAttendanceAPI(c *fiber.Ctx) error {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Valid date query param is required"})
	}

	records, err := database.GetTeacherAttendanceByDate(config.GetDB(), date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{
		"attendance": records,
		"count":      len(records),
	})
}

func GetTeacherMonthAPI(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year < 2000 || month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "Valid year and month query params are required"})
	}

	statuses, err := database.GetTeacherMonthAttendance(config.GetDB(), c.Params("teacherId"), year, time.Month(month))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{"days": statuses})
}

func SetHolidayAPI(c *fiber.Ctx) error {
	type HolidayRequest struct {
		Date   string `json:"date" validate:"required"`
		Reason string `json:"reason" validate:"required"`
	}

	var req HolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Date and reason are required"})
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, want YYYY-MM-DD"})
	}

	holiday, err := database.SetHoliday(config.GetDB(), models.SessionFor(date), date, req.Reason)
	if err == database.ErrHolidayLocked {
		return c.Status(422).JSON(fiber.Map{"error": "This date is already a holiday"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to declare holiday"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Holiday declared",
		"holiday": holiday,
	})
}

func GetHolidaysAPI(c *fiber.Ctx) error {
	holidays, err := database.GetHolidays(config.GetDB(), currentSession(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch holidays"})
	}

	return c.JSON(fiber.Map{
		"holidays": holidays,
		"count":    len(holidays),
	})
}

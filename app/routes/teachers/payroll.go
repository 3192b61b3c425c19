package teachers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/config"
	"vidyalaya/app/database"
	"vidyalaya/app/models"
)

func yearMonth(c *fiber.Ctx) (int, time.Month, bool) {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year < 2000 || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// SalaryPreviewAPI shows the month's tally and the payable amount under
// both rules side by side, without writing anything. If the month is
// already paid, the locked record is returned instead.
func SalaryPreviewAPI(c *fiber.Ctx) error {
	teacher, err := database.GetTeacherByID(config.GetDB(), c.Params("teacherId"))
	if err == database.ErrTeacherNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch staff member"})
	}

	year, month, ok := yearMonth(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Valid year and month query params are required"})
	}

	record, err := database.GetSalaryRecord(config.GetDB(), teacher.ID, year, month)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch salary record"})
	}
	if record != nil {
		return c.JSON(fiber.Map{
			"locked": true,
			"record": record,
		})
	}

	tally, err := database.TallyTeacherMonth(config.GetDB(), teacher.ID, year, month)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to tally attendance"})
	}

	applyLeaveCut := c.QueryBool("apply_leave_cut", false)
	adjustments := int64(c.QueryInt("adjustments", 0))

	attendancePayable := database.AttendancePayable(teacher.MonthlySalary, tally)
	deductionPayable, cut := database.DeductionPayable(teacher.MonthlySalary, tally, applyLeaveCut, adjustments)

	return c.JSON(fiber.Map{
		"locked":       false,
		"tally":        tally,
		"per_day_rate": database.PerDayRate(teacher.MonthlySalary, tally.DaysInMonth),
		"attendance": fiber.Map{
			"mode":      models.PayrollAttendance,
			"paid_days": tally.PaidDays(),
			"payable":   attendancePayable,
		},
		"deduction": fiber.Map{
			"mode":        models.PayrollDeduction,
			"cut":         cut,
			"adjustments": adjustments,
			"payable":     deductionPayable,
		},
	})
}

type PaySalaryRequest struct {
	Year          int                `json:"year" validate:"required,gte=2000"`
	Month         int                `json:"month" validate:"required,gte=1,lte=12"`
	Mode          models.PayrollMode `json:"mode" validate:"required,oneof=attendance deduction"`
	AmountPaid    int64              `json:"amount_paid" validate:"gte=0"`
	ApplyLeaveCut bool               `json:"apply_leave_cut"`
	Adjustments   int64              `json:"adjustments"`
	Notes         string             `json:"notes"`
}

func PaySalaryAPI(c *fiber.Ctx) error {
	teacher, err := database.GetTeacherByID(config.GetDB(), c.Params("teacherId"))
	if err == database.ErrTeacherNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch staff member"})
	}

	var req PaySalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	record, err := database.PaySalary(config.GetDB(), teacher, req.Year, time.Month(req.Month),
		req.Mode, req.AmountPaid, req.ApplyLeaveCut, req.Adjustments, req.Notes)
	switch err {
	case nil:
	case database.ErrSalaryLocked:
		return c.Status(422).JSON(fiber.Map{"error": "Salary for this month is already paid"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to pay salary"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Salary paid successfully",
		"record":  record,
	})
}

func SalaryHistoryAPI(c *fiber.Ctx) error {
	records, err := database.GetSalaryHistory(config.GetDB(), c.Params("teacherId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch salary history"})
	}

	return c.JSON(fiber.Map{
		"records": records,
		"count":   len(records),
	})
}

package documents

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/config"
	"vidyalaya/app/database"
	"vidyalaya/app/models"
)

// loadEnrollment fetches the enrollment plus the school header every
// document carries. Data fetch stays here; the templates only format.
func loadEnrollment(c *fiber.Ctx) (*models.Enrollment, *models.SchoolDetails, error) {
	enrollment, err := database.GetEnrollmentByID(config.GetDB(), c.Params("enrollmentId"))
	if err == database.ErrEnrollmentNotFound {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}

	school, err := database.GetSchoolDetails(config.GetDB())
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load school details")
	}
	if school == nil {
		school = &models.SchoolDetails{Name: "School"}
	}
	return enrollment, school, nil
}

func AdmissionSlipPage(c *fiber.Ctx) error {
	enrollment, school, err := loadEnrollment(c)
	if err != nil {
		return err
	}

	fees, err := database.GetFeesByEnrollment(config.GetDB(), enrollment.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load fees")
	}
	var monthlyTotal, paidAtAdmission int64
	if len(fees) > 0 {
		monthlyTotal = fees[0].TotalDue()
	}
	for _, f := range fees {
		paidAtAdmission += f.Paid
	}

	return c.Render("documents/admission_slip", fiber.Map{
		"School":       school,
		"Enrollment":   enrollment,
		"Student":      enrollment.Student,
		"Class":        enrollment.Class,
		"MonthlyTotal": monthlyTotal,
		"PaidAmount":   paidAtAdmission,
		"IssuedOn":     time.Now().Format("02 Jan 2006"),
	}, "")
}

func IDCardPage(c *fiber.Ctx) error {
	enrollment, school, err := loadEnrollment(c)
	if err != nil {
		return err
	}

	return c.Render("documents/id_card", fiber.Map{
		"School":     school,
		"Enrollment": enrollment,
		"Student":    enrollment.Student,
		"Class":      enrollment.Class,
	}, "")
}

func MarksheetPage(c *fiber.Ctx) error {
	enrollment, school, err := loadEnrollment(c)
	if err != nil {
		return err
	}

	examType := c.Query("exam_type")
	if examType == "" {
		return fiber.NewError(fiber.StatusBadRequest, "exam_type query param is required")
	}

	result, err := database.GetExamResult(config.GetDB(), enrollment.ID, enrollment.Session, examType)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load result")
	}
	if result == nil {
		return fiber.NewError(fiber.StatusNotFound, "No result entered for this exam")
	}

	obtained, total := result.Obtained()
	percent := 0.0
	if total > 0 {
		percent = float64(obtained) * 100 / float64(total)
	}

	return c.Render("documents/marksheet", fiber.Map{
		"School":     school,
		"Enrollment": enrollment,
		"Student":    enrollment.Student,
		"Class":      enrollment.Class,
		"Result":     result,
		"Obtained":   obtained,
		"Total":      total,
		"Percent":    percent,
	}, "")
}

func TransferCertificatePage(c *fiber.Ctx) error {
	enrollment, school, err := loadEnrollment(c)
	if err != nil {
		return err
	}

	return c.Render("documents/transfer_certificate", fiber.Map{
		"School":     school,
		"Enrollment": enrollment,
		"Student":    enrollment.Student,
		"Class":      enrollment.Class,
		"IssuedOn":   time.Now().Format("02 Jan 2006"),
	}, "")
}

func AdmitCardPage(c *fiber.Ctx) error {
	enrollment, school, err := loadEnrollment(c)
	if err != nil {
		return err
	}

	examType := c.Query("exam_type")
	if examType == "" {
		return fiber.NewError(fiber.StatusBadRequest, "exam_type query param is required")
	}

	return c.Render("documents/admit_card", fiber.Map{
		"School":     school,
		"Enrollment": enrollment,
		"Student":    enrollment.Student,
		"Class":      enrollment.Class,
		"ExamType":   examType,
		"Subjects":   enrollment.Subjects,
	}, "")
}

func SalarySlipPage(c *fiber.Ctx) error {
	teacher, err := database.GetTeacherByID(config.GetDB(), c.Params("teacherId"))
	if err == database.ErrTeacherNotFound {
		return fiber.NewError(fiber.StatusNotFound, "Staff member not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load staff member")
	}

	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year < 2000 || month < 1 || month > 12 {
		return fiber.NewError(fiber.StatusBadRequest, "Valid year and month query params are required")
	}

	record, err := database.GetSalaryRecord(config.GetDB(), teacher.ID, year, time.Month(month))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load salary record")
	}
	if record == nil {
		return fiber.NewError(fiber.StatusNotFound, "Salary for this month has not been paid yet")
	}

	school, err := database.GetSchoolDetails(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load school details")
	}
	if school == nil {
		school = &models.SchoolDetails{Name: "School"}
	}

	return c.Render("documents/salary_slip", fiber.Map{
		"School":    school,
		"Teacher":   teacher,
		"Record":    record,
		"MonthName": time.Month(month).String(),
	}, "")
}

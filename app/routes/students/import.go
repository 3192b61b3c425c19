package students

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/config"
	"vidyalaya/app/database"
	"vidyalaya/app/models"
)

// csvColumns is the expected header of a bulk admission file. Order
// matters; extra columns are ignored.
var csvColumns = []string{
	"name", "father_name", "mother_name", "date_of_birth", "gender",
	"category", "phone", "address", "parent_name", "parent_phone",
	"transport_fee", "lump_sum",
}

type importRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportStudentsAPI admits students in bulk from an uploaded CSV file.
// Each row goes through the same admission path as the single form, so
// registration and roll numbers stay sequential. Bad rows are reported
// and skipped; good rows are still admitted.
func ImportStudentsAPI(c *fiber.Ctx) error {
	session := models.Session(c.FormValue("session"))
	classID := c.FormValue("class_id")
	if _, err := models.ParseSession(session); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if classID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class ID is required"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "CSV file is required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Failed to open uploaded file"})
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "CSV file is empty"})
	}
	cols, err := mapColumns(header)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	admit := func(in *database.AdmissionInput) error {
		_, _, err := database.AdmitStudent(config.GetDB(), in)
		return err
	}
	admitted, failures := importRows(reader, cols, session, classID, admit)

	return c.JSON(fiber.Map{
		"message":  fmt.Sprintf("Imported %d students", admitted),
		"admitted": admitted,
		"failed":   len(failures),
		"errors":   failures,
	})
}

// importRows drains the reader, admitting one student per row. Malformed
// rows (wrong field count, bad values) and failed admissions are reported
// with their row number; reading only stops at end of file.
func importRows(reader *csv.Reader, cols map[string]int, session models.Session, classID string, admit func(*database.AdmissionInput) error) (int, []importRowError) {
	var admitted int
	var failures []importRowError
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			failures = append(failures, importRowError{Row: rowNum, Error: "malformed row: " + err.Error()})
			continue
		}

		in, err := rowToAdmission(record, cols, session, classID)
		if err != nil {
			failures = append(failures, importRowError{Row: rowNum, Error: err.Error()})
			continue
		}
		if err := admit(in); err != nil {
			failures = append(failures, importRowError{Row: rowNum, Error: "failed to admit"})
			continue
		}
		admitted++
	}
	return admitted, failures
}

func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("CSV must have a 'name' column (expected: %s)", strings.Join(csvColumns, ", "))
	}
	return cols, nil
}

func rowToAdmission(record []string, cols map[string]int, session models.Session, classID string) (*database.AdmissionInput, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field("name")
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	var dob time.Time
	if v := field("date_of_birth"); v != "" {
		var err error
		dob, err = time.Parse("2006-01-02", v)
		if err != nil {
			return nil, fmt.Errorf("invalid date_of_birth %q, want YYYY-MM-DD", v)
		}
	}

	amount := func(name string) (int64, error) {
		v := field(name)
		if v == "" {
			return 0, nil
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid %s %q", name, v)
		}
		return n, nil
	}
	transportFee, err := amount("transport_fee")
	if err != nil {
		return nil, err
	}
	lumpSum, err := amount("lump_sum")
	if err != nil {
		return nil, err
	}

	return &database.AdmissionInput{
		Name:         name,
		FatherName:   field("father_name"),
		MotherName:   field("mother_name"),
		DateOfBirth:  dob,
		Gender:       models.Gender(strings.ToLower(field("gender"))),
		Category:     field("category"),
		Phone:        field("phone"),
		Address:      field("address"),
		ParentName:   field("parent_name"),
		ParentPhone:  field("parent_phone"),
		Session:      session,
		ClassID:      classID,
		TransportFee: transportFee,
		LumpSum:      lumpSum,
	}, nil
}

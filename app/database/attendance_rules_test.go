package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vidyalaya/app/models"
)

var (
	monday    = time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	sunday    = time.Date(2025, time.September, 7, 0, 0, 0, 0, time.UTC)
	wednesday = time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC)
)

func TestValidateMarkSundayLocked(t *testing.T) {
	err := ValidateMark("", models.Present, sunday, wednesday, false)
	assert.Equal(t, ErrSundayLocked, err)

	// Even a correction of an existing cell is refused on a Sunday.
	err = ValidateMark(models.Present, models.Absent, sunday, wednesday, false)
	assert.Equal(t, ErrSundayLocked, err)
}

func TestValidateMarkHoliday(t *testing.T) {
	err := ValidateMark("", models.Present, monday, wednesday, true)
	assert.Equal(t, ErrHolidayDay, err)
}

func TestValidateMarkNoChange(t *testing.T) {
	err := ValidateMark(models.Present, models.Present, wednesday, wednesday, false)
	assert.Equal(t, ErrNoChange, err)
}

func TestValidateMarkUnsetCellAnyDate(t *testing.T) {
	// A day that was never marked can be filled in later.
	assert.NoError(t, ValidateMark("", models.Absent, monday, wednesday, false))
	assert.NoError(t, ValidateMark("", models.Present, wednesday, wednesday, false))
}

func TestValidateMarkPastLocked(t *testing.T) {
	// A set cell in the past cannot be changed.
	err := ValidateMark(models.Present, models.Absent, monday, wednesday, false)
	assert.Equal(t, ErrPastLocked, err)

	// The same change on today's date is allowed.
	assert.NoError(t, ValidateMark(models.Present, models.Absent, wednesday, wednesday, false))
}

func TestValidateMarkOutsideSession(t *testing.T) {
	nextSessionDay := time.Date(2026, time.April, 6, 0, 0, 0, 0, time.UTC)
	err := ValidateMark(models.Present, models.Absent, nextSessionDay, wednesday, false)
	assert.Equal(t, ErrOutsideSession, err)
}

func TestValidateHolidayDeclaredOnce(t *testing.T) {
	// First declaration of a date goes through.
	assert.NoError(t, ValidateHoliday(false))

	// Declaring the same date again is refused, so the closure notice
	// is never published twice. There is no undo.
	assert.Equal(t, ErrHolidayLocked, ValidateHoliday(true))
}

func TestAdjustCounts(t *testing.T) {
	// Fresh mark.
	p, a := AdjustCounts(10, 3, "", models.Present)
	assert.Equal(t, 11, p)
	assert.Equal(t, 3, a)

	// Flip present to absent.
	p, a = AdjustCounts(11, 3, models.Present, models.Absent)
	assert.Equal(t, 10, p)
	assert.Equal(t, 4, a)

	// Leave is not counted for students.
	p, a = AdjustCounts(10, 4, models.Absent, models.Leave)
	assert.Equal(t, 10, p)
	assert.Equal(t, 3, a)
}

func TestCountersNeverDrift(t *testing.T) {
	// Apply a churn of marks and corrections through AdjustCounts and
	// check the running counters always equal a full recount.
	type mark struct {
		day    int
		status models.AttendanceStatus
	}
	marks := []mark{
		{1, models.Present}, {2, models.Present}, {3, models.Absent},
		{1, models.Absent}, {4, models.Present}, {3, models.Present},
		{2, models.Absent}, {1, models.Present}, {5, models.Absent},
	}

	cells := make(map[int]models.AttendanceStatus)
	present, absent := 0, 0
	for _, m := range marks {
		old := cells[m.day]
		if old == m.status {
			continue
		}
		present, absent = AdjustCounts(present, absent, old, m.status)
		cells[m.day] = m.status

		wantP, wantA := RecountMonth(cells)
		assert.Equal(t, wantP, present)
		assert.Equal(t, wantA, absent)
	}
}

package database

import (
	"errors"
	"time"

	"vidyalaya/app/models"
)

// Business-rule rejections for attendance mutations. These are checked
// before any write and surfaced to the client as 422s.
var (
	ErrSundayLocked   = errors.New("attendance cannot be marked on a Sunday")
	ErrHolidayDay     = errors.New("attendance cannot be marked on a holiday")
	ErrHolidayLocked  = errors.New("holiday is already locked")
	ErrPastLocked     = errors.New("past attendance locked")
	ErrOutsideSession = errors.New("date is outside the current session")
	ErrNoChange       = errors.New("status unchanged")
)

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ValidateMark decides whether a day cell may move from current to next.
// current is empty for an unset cell.
//
// Rules: Sundays and holidays are immutable; re-marking the same status
// is a no-op; an unset cell may be filled for any date; a set cell may
// only change on the current or a future date within the current session.
func ValidateMark(current, next models.AttendanceStatus, date, today time.Time, isHoliday bool) error {
	if date.Weekday() == time.Sunday {
		return ErrSundayLocked
	}
	if isHoliday {
		return ErrHolidayDay
	}
	if current == next {
		return ErrNoChange
	}
	if current != "" {
		if dateOnly(date).Before(dateOnly(today)) {
			return ErrPastLocked
		}
		if !models.SessionFor(today).Contains(date) {
			return ErrOutsideSession
		}
	}
	return nil
}

// ValidateHoliday decides whether a date may be declared a holiday. A
// date can only be declared once; there is no way to undo a holiday.
func ValidateHoliday(alreadyHoliday bool) error {
	if alreadyHoliday {
		return ErrHolidayLocked
	}
	return nil
}

// AdjustCounts moves the monthly present/absent counters for a transition
// from old to new. Leave days are not counted for students and are simply
// ignored here.
func AdjustCounts(present, absent int, old, new models.AttendanceStatus) (int, int) {
	switch old {
	case models.Present:
		present--
	case models.Absent:
		absent--
	}
	switch new {
	case models.Present:
		present++
	case models.Absent:
		absent++
	}
	return present, absent
}

// RecountMonth tallies present/absent from raw day statuses. Used to
// verify the incremental counters never drift.
func RecountMonth(statuses map[int]models.AttendanceStatus) (present, absent int) {
	for _, s := range statuses {
		switch s {
		case models.Present:
			present++
		case models.Absent:
			absent++
		}
	}
	return present, absent
}

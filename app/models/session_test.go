package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSession(t *testing.T) {
	start, err := ParseSession("2025-26")
	assert.NoError(t, err)
	assert.Equal(t, 2025, start)

	start, err = ParseSession("2099-00")
	assert.NoError(t, err)
	assert.Equal(t, 2099, start)

	for _, bad := range []Session{"", "2025", "2025-27", "25-26", "2025-2026", "abcd-ef"} {
		_, err := ParseSession(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestSessionForBoundaries(t *testing.T) {
	// March 31 belongs to the session that started the previous April.
	assert.Equal(t, Session("2024-25"), SessionFor(time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)))
	// April 1 starts the new session.
	assert.Equal(t, Session("2025-26"), SessionFor(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Session("2025-26"), SessionFor(time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Session("2025-26"), SessionFor(time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)))
}

func TestSessionMonthsOrder(t *testing.T) {
	assert.Equal(t, time.April, SessionMonths[0])
	assert.Equal(t, time.March, SessionMonths[11])
	assert.Equal(t, 1, MonthIndex(time.April))
	assert.Equal(t, 10, MonthIndex(time.January))
	assert.Equal(t, 12, MonthIndex(time.March))
}

func TestYearFor(t *testing.T) {
	s := Session("2025-26")

	year, err := s.YearFor(time.July)
	assert.NoError(t, err)
	assert.Equal(t, 2025, year)

	year, err = s.YearFor(time.February)
	assert.NoError(t, err)
	assert.Equal(t, 2026, year)
}

func TestSessionNext(t *testing.T) {
	next, err := Session("2025-26").Next()
	assert.NoError(t, err)
	assert.Equal(t, Session("2026-27"), next)

	next, err = Session("2098-99").Next()
	assert.NoError(t, err)
	assert.Equal(t, Session("2099-00"), next)
}

func TestSessionContains(t *testing.T) {
	s := Session("2025-26")
	assert.True(t, s.Contains(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, s.Contains(time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, s.Contains(time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, s.Contains(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 30, DaysInMonth(2025, time.April))
	assert.Equal(t, 31, DaysInMonth(2025, time.May))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
}

func TestCustomDateJSON(t *testing.T) {
	var d CustomDate
	assert.NoError(t, d.UnmarshalJSON([]byte(`"2025-04-01"`)))
	assert.Equal(t, 2025, d.Year())

	out, err := d.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"2025-04-01"`, string(out))

	assert.NoError(t, d.UnmarshalJSON([]byte("null")))
	assert.True(t, d.IsZero())

	assert.Error(t, d.UnmarshalJSON([]byte(`"01/04/2025"`)))
}

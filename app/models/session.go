package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CustomDate allows parsing dates in YYYY-MM-DD format
type CustomDate struct {
	time.Time
}

// UnmarshalJSON parses dates in YYYY-MM-DD format
func (cd *CustomDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == "" || s == `""` {
		cd.Time = time.Time{}
		return nil
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}

	cd.Time = t
	return nil
}

// MarshalJSON formats dates in YYYY-MM-DD format
func (cd CustomDate) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, cd.Time.Format("2006-01-02"))), nil
}

// Scan implements the Scanner interface for database reading
func (cd *CustomDate) Scan(value interface{}) error {
	if value == nil {
		cd.Time = time.Time{}
		return nil
	}

	if t, ok := value.(time.Time); ok {
		cd.Time = t
		return nil
	}

	return fmt.Errorf("cannot scan %T into CustomDate", value)
}

// Value implements the Valuer interface for database writing
func (cd CustomDate) Value() (driver.Value, error) {
	return cd.Time, nil
}

// Session is an academic year written "YYYY-YY" (e.g. "2025-26"),
// running April through March.
type Session string

// SessionMonths lists the calendar months of a session in session order,
// April first, March last.
var SessionMonths = [12]time.Month{
	time.April, time.May, time.June, time.July,
	time.August, time.September, time.October, time.November,
	time.December, time.January, time.February, time.March,
}

// ParseSession validates a session string and returns its starting year.
func ParseSession(s Session) (int, error) {
	parts := strings.Split(string(s), "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid session %q, expected YYYY-YY", s)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid session %q: %v", s, err)
	}
	next, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid session %q: %v", s, err)
	}
	if (start+1)%100 != next {
		return 0, fmt.Errorf("invalid session %q: years are not consecutive", s)
	}
	return start, nil
}

// SessionFor returns the session a date falls in. January through March
// belong to the session that started the previous April.
func SessionFor(t time.Time) Session {
	year := t.Year()
	if t.Month() < time.April {
		year--
	}
	return Session(fmt.Sprintf("%d-%02d", year, (year+1)%100))
}

// MonthIndex returns the 1-based position of a calendar month within the
// session (April = 1 ... March = 12).
func MonthIndex(m time.Month) int {
	for i, sm := range SessionMonths {
		if sm == m {
			return i + 1
		}
	}
	return 0
}

// YearFor resolves the calendar year of a session month. Months January
// through March fall in the session's second year.
func (s Session) YearFor(m time.Month) (int, error) {
	start, err := ParseSession(s)
	if err != nil {
		return 0, err
	}
	if m < time.April {
		return start + 1, nil
	}
	return start, nil
}

// Start returns the first day of the session (April 1st).
func (s Session) Start() (time.Time, error) {
	start, err := ParseSession(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(start, time.April, 1, 0, 0, 0, 0, time.Local), nil
}

// End returns the last day of the session (March 31st).
func (s Session) End() (time.Time, error) {
	start, err := ParseSession(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(start+1, time.March, 31, 0, 0, 0, 0, time.Local), nil
}

// Next returns the following session ("2025-26" -> "2026-27").
func (s Session) Next() (Session, error) {
	start, err := ParseSession(s)
	if err != nil {
		return "", err
	}
	return Session(fmt.Sprintf("%d-%02d", start+1, (start+2)%100)), nil
}

// Contains reports whether a date falls within the session.
func (s Session) Contains(t time.Time) bool {
	return SessionFor(t) == s
}

// DaysInMonth returns the number of calendar days in a month.
func DaysInMonth(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

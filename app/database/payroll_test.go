package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vidyalaya/app/models"
)

func TestPerDayRate(t *testing.T) {
	assert.InDelta(t, 1000.0, PerDayRate(30000, 30), 0.001)
	assert.InDelta(t, 967.74, PerDayRate(30000, 31), 0.01)
	assert.Equal(t, 0.0, PerDayRate(30000, 0))
}

func TestAttendancePayable(t *testing.T) {
	tally := MonthTally{DaysInMonth: 30, Present: 22, Leave: 2, Holidays: 4}
	// 28 paid days at 1000 per day.
	assert.Equal(t, int64(28000), AttendancePayable(30000, tally))
}

func TestAttendancePayableCanExceedSalary(t *testing.T) {
	// Present + leave + holidays can overlap and overshoot the calendar;
	// the rule pays what it counts, with no clamp.
	tally := MonthTally{DaysInMonth: 30, Present: 25, Leave: 2, Holidays: 4}
	assert.Equal(t, 31, tally.PaidDays())
	assert.Equal(t, int64(31000), AttendancePayable(30000, tally))
}

func TestDeductionPayableNoCut(t *testing.T) {
	tally := MonthTally{DaysInMonth: 30, Present: 20, Absent: 6, Leave: 4}
	payable, cut := DeductionPayable(30000, tally, false, 0)
	assert.Equal(t, int64(30000), payable)
	assert.Equal(t, int64(0), cut)
}

func TestDeductionPayableWithCut(t *testing.T) {
	tally := MonthTally{DaysInMonth: 30, Present: 20, Absent: 6, Leave: 4}
	// Cut covers absent + leave days at the per-day rate.
	payable, cut := DeductionPayable(30000, tally, true, 0)
	assert.Equal(t, int64(10000), cut)
	assert.Equal(t, int64(20000), payable)
}

func TestDeductionPayableAdjustments(t *testing.T) {
	tally := MonthTally{DaysInMonth: 30, Absent: 3}
	payable, cut := DeductionPayable(30000, tally, true, 1500)
	assert.Equal(t, int64(3000), cut)
	assert.Equal(t, int64(28500), payable)

	// Negative adjustments reduce the payout further.
	payable, _ = DeductionPayable(30000, tally, true, -500)
	assert.Equal(t, int64(26500), payable)
}

func TestComputePayableDispatch(t *testing.T) {
	tally := MonthTally{DaysInMonth: 30, Present: 25, Absent: 5}

	payable, cut := ComputePayable(models.PayrollAttendance, 30000, tally, true, 999)
	assert.Equal(t, int64(25000), payable)
	// The attendance rule ignores cuts and adjustments entirely.
	assert.Equal(t, int64(0), cut)

	payable, cut = ComputePayable(models.PayrollDeduction, 30000, tally, true, 0)
	assert.Equal(t, int64(5000), cut)
	assert.Equal(t, int64(25000), payable)
}

func TestPayableRounding(t *testing.T) {
	// 31-day month: per-day rate is fractional, results round to the
	// nearest rupee.
	tally := MonthTally{DaysInMonth: 31, Present: 20}
	assert.Equal(t, int64(19355), AttendancePayable(30000, tally))
}

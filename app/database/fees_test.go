package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vidyalaya/app/models"
)

func TestAllocateLumpSumGreedy(t *testing.T) {
	dues := []int64{1000, 1000, 1000, 1000}
	got := AllocateLumpSum(dues, 2500)
	assert.Equal(t, []int64{1000, 1000, 500, 0}, got)
}

func TestAllocateLumpSumExact(t *testing.T) {
	dues := []int64{1000, 1000}
	assert.Equal(t, []int64{1000, 1000}, AllocateLumpSum(dues, 2000))
}

func TestAllocateLumpSumNeverExceedsLump(t *testing.T) {
	dues := []int64{500, 700, 900}
	for _, lump := range []int64{0, 1, 499, 500, 1200, 2100, 5000} {
		var sum int64
		for _, a := range AllocateLumpSum(dues, lump) {
			sum += a
		}
		assert.LessOrEqual(t, sum, lump)
		if lump >= 2100 {
			// Fully covered once the lump reaches the total due.
			assert.Equal(t, int64(2100), sum)
		}
	}
}

func TestAllocateLumpSumCapsEachMonth(t *testing.T) {
	dues := []int64{300, 300}
	got := AllocateLumpSum(dues, 10000)
	assert.Equal(t, []int64{300, 300}, got)
}

func TestBuildSessionFees(t *testing.T) {
	fees, err := BuildSessionFees("2025-26", "enr-1", 800, 200, 2500)
	assert.NoError(t, err)
	assert.Len(t, fees, 12)

	// Session order: April 2025 first, March 2026 last.
	assert.Equal(t, time.April, fees[0].Month)
	assert.Equal(t, 2025, fees[0].Year)
	assert.Equal(t, 1, fees[0].MonthIndex)
	assert.Equal(t, time.December, fees[8].Month)
	assert.Equal(t, 2025, fees[8].Year)
	assert.Equal(t, time.January, fees[9].Month)
	assert.Equal(t, 2026, fees[9].Year)
	assert.Equal(t, time.March, fees[11].Month)
	assert.Equal(t, 2026, fees[11].Year)
	assert.Equal(t, 12, fees[11].MonthIndex)

	// The admission lump sum lands on the earliest months.
	assert.Equal(t, int64(1000), fees[0].Paid)
	assert.Equal(t, int64(1000), fees[1].Paid)
	assert.Equal(t, int64(500), fees[2].Paid)
	for _, f := range fees[3:] {
		assert.Equal(t, int64(0), f.Paid)
		assert.Equal(t, int64(1000), f.TotalDue())
		assert.Equal(t, int64(1000), f.Outstanding())
	}
	assert.Equal(t, int64(500), fees[2].Outstanding())
}

func TestBuildSessionFeesBadSession(t *testing.T) {
	_, err := BuildSessionFees("2025-27", "enr-1", 800, 200, 0)
	assert.Error(t, err)
}

func TestStudentFeeTotals(t *testing.T) {
	f := models.StudentFee{SchoolFee: 800, TransportFee: 200, Paid: 300}
	assert.Equal(t, int64(1000), f.TotalDue())
	assert.Equal(t, int64(700), f.Outstanding())
}

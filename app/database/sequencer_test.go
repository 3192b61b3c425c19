package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextIdentifierEmptyScope(t *testing.T) {
	assert.Equal(t, "1001", NextIdentifier(nil, RegistrationSeed))
	assert.Equal(t, "1", NextIdentifier([]string{}, RollNumberSeed))
}

func TestNextIdentifierMaxPlusOne(t *testing.T) {
	assert.Equal(t, "1004", NextIdentifier([]string{"1001", "1002", "1003"}, RegistrationSeed))
	// Order does not matter.
	assert.Equal(t, "1004", NextIdentifier([]string{"1003", "1001", "1002"}, RegistrationSeed))
	// Gaps are fine; only the max counts.
	assert.Equal(t, "1051", NextIdentifier([]string{"1001", "1050"}, RegistrationSeed))
}

func TestNextIdentifierSkipsMalformed(t *testing.T) {
	assert.Equal(t, "1003", NextIdentifier([]string{"1001", "TC-9", "1002", ""}, RegistrationSeed))
	// All malformed falls back to the seed.
	assert.Equal(t, "1001", NextIdentifier([]string{"abc", "x/1", ""}, RegistrationSeed))
	// Whitespace is tolerated.
	assert.Equal(t, "8", NextIdentifier([]string{" 7 "}, RollNumberSeed))
}

func TestNextIdentifierSequenceIsDense(t *testing.T) {
	existing := []string{}
	for i := 0; i < 5; i++ {
		next := NextIdentifier(existing, RegistrationSeed)
		existing = append(existing, next)
	}
	assert.Equal(t, []string{"1001", "1002", "1003", "1004", "1005"}, existing)
}

func TestReserveValueParsing(t *testing.T) {
	n, ok := reserveValue("1001")
	assert.True(t, ok)
	assert.Equal(t, int64(1001), n)

	n, ok = reserveValue(" 1050 ")
	assert.True(t, ok)
	assert.Equal(t, int64(1050), n)

	// Non-numeric carries reserve nothing against the counter.
	_, ok = reserveValue("TC-9")
	assert.False(t, ok)
	_, ok = reserveValue("")
	assert.False(t, ok)
}

func TestCarriedNumberSharesScopeWithFreshIssues(t *testing.T) {
	// A readmission carries its number into the same counter scope that
	// fresh admissions draw from, so the two can never collide.
	assert.Equal(t, registrationScope("2026-27"), registrationScope("2026-27"))
	assert.NotEqual(t, registrationScope("2025-26"), registrationScope("2026-27"))

	// With the carried number visible in the scope, the next fresh
	// admission steps past it.
	assert.Equal(t, "1002", NextIdentifier([]string{"1001"}, RegistrationSeed))
	assert.Equal(t, "1051", NextIdentifier([]string{"1001", "1050"}, RegistrationSeed))
}

func TestFirstAdmissionNumbers(t *testing.T) {
	// A brand new session starts at 1001; a brand new class register at 1.
	regNo := NextIdentifier(nil, RegistrationSeed)
	rollNo := NextIdentifier(nil, RollNumberSeed)
	assert.Equal(t, "1001", regNo)
	assert.Equal(t, "1", rollNo)

	assert.Equal(t, "1002", NextIdentifier([]string{regNo}, RegistrationSeed))
	assert.Equal(t, "2", NextIdentifier([]string{rollNo}, RollNumberSeed))
}

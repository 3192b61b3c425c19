package timetable

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagicFillCoversEveryClass(t *testing.T) {
	periods := []string{"p1", "p2", "p3"}
	teachers := []string{"t1", "t2", "t3", "t4"}
	classes := []string{"c1", "c2", "c3"}

	fill := MagicFill(periods, teachers, classes, rand.New(rand.NewSource(1)))
	assert.NotNil(t, fill)
	assert.Len(t, fill, 3)

	for _, periodID := range periods {
		assignments := fill[periodID]
		assert.Len(t, assignments, len(classes))

		seenTeachers := make(map[string]bool)
		seenClasses := make(map[string]bool)
		for _, a := range assignments {
			assert.Equal(t, periodID, a.PeriodID)
			assert.False(t, seenTeachers[a.TeacherID], "teacher %s assigned twice in period %s", a.TeacherID, periodID)
			seenTeachers[a.TeacherID] = true
			seenClasses[a.ClassID] = true
		}
		assert.Len(t, seenClasses, len(classes))
	}
}

func TestMagicFillRotatesPairings(t *testing.T) {
	periods := []string{"p1", "p2"}
	teachers := []string{"t1", "t2", "t3"}
	classes := []string{"c1", "c2", "c3"}

	fill := MagicFill(periods, teachers, classes, rand.New(rand.NewSource(7)))

	teacherFor := func(periodID, classID string) string {
		for _, a := range fill[periodID] {
			if a.ClassID == classID {
				return a.TeacherID
			}
		}
		return ""
	}
	// With as many teachers as classes, the rotation guarantees each
	// class sees a different teacher in consecutive periods.
	for _, classID := range classes {
		assert.NotEqual(t, teacherFor("p1", classID), teacherFor("p2", classID))
	}
}

func TestMagicFillNotEnoughTeachers(t *testing.T) {
	fill := MagicFill([]string{"p1"}, []string{"t1"}, []string{"c1", "c2"}, rand.New(rand.NewSource(1)))
	assert.Nil(t, fill)

	fill = MagicFill([]string{"p1"}, []string{"t1"}, nil, rand.New(rand.NewSource(1)))
	assert.Nil(t, fill)
}

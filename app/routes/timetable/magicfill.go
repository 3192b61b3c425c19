package timetable

import (
	"math/rand"

	"vidyalaya/app/models"
)

// MagicFill builds a complete timetable in one shot: for every class
// period each class gets a teacher, no teacher teaches two classes in
// the same period, and the rotation is shuffled so the same teacher does
// not sit in front of the same class all day. Returns nil when there are
// fewer teachers than classes, since a full fill is impossible then.
func MagicFill(periodIDs, teacherIDs, classIDs []string, rng *rand.Rand) map[string][]models.PeriodAssignment {
	if len(teacherIDs) < len(classIDs) || len(classIDs) == 0 {
		return nil
	}

	order := make([]string, len(teacherIDs))
	copy(order, teacherIDs)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	fill := make(map[string][]models.PeriodAssignment, len(periodIDs))
	for pi, periodID := range periodIDs {
		assignments := make([]models.PeriodAssignment, 0, len(classIDs))
		for ci, classID := range classIDs {
			// Rotate through the shuffled order period by period so
			// each class sees a different teacher each slot.
			teacher := order[(pi+ci)%len(order)]
			assignments = append(assignments, models.PeriodAssignment{
				PeriodID:  periodID,
				TeacherID: teacher,
				ClassID:   classID,
			})
		}
		fill[periodID] = assignments
	}
	return fill
}

package progress

import "github.com/obinna/studymate/internal/store"

// CourseNames is the fixed course catalog, in display order.
var CourseNames = []string{
	"Programming Fundamentals",
	"Database Management",
	"Web Development",
	"Computer Networks",
	"Cybersecurity",
	"Software Engineering",
}

// weekDays is the fixed Mon..Sun bucket order of the weekly histogram.
var weekDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DefaultState returns the zero-progress state a fresh learner starts with.
func DefaultState() *store.State {
	courses := make([]store.CourseProgress, len(CourseNames))
	for i, name := range CourseNames {
		courses[i] = store.CourseProgress{
			Name:   name,
			Status: store.StatusNotStarted,
		}
	}

	days := make([]store.DayActivity, len(weekDays))
	for i, d := range weekDays {
		days[i] = store.DayActivity{Day: d}
	}

	return &store.State{
		UserProgress: store.UserProgress{
			Level:        1,
			XPToNext:     XPPerLevel,
			TotalXP:      XPPerLevel,
			TotalCourses: len(CourseNames),
		},
		CourseProgress: courses,
		WeeklyActivity: days,
	}
}

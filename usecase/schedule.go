package usecase

import (
	"main/model"
	"time"
)

// DayFloor truncates a time to midnight of its calendar day, keeping the
// location. All schedule math goes through this so sub-day components and
// DST offsets cannot shift a comparison across a day boundary.
func DayFloor(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from one date to another
// (negative when to precedes from). Both dates are rebuilt at UTC midnight
// before dividing, so the result is a whole-day count regardless of DST
// transitions between them.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsScheduled decides whether a habit's recurrence rule makes it due on the
// given calendar date. Dates before the habit's creation day are never
// scheduled, for every variant. The habit is assumed validated; an unknown
// schedule type is simply never due.
func IsScheduled(h *model.Habit, date time.Time) bool {
	daysDiff := DaysBetween(h.CreatedAt, date)
	if daysDiff < 0 {
		return false
	}

	switch h.Schedule.Type {
	case model.ScheduleEveryDay:
		return true
	case model.ScheduleSpecificDays:
		weekday := int(date.Weekday())
		for _, d := range h.Schedule.Days {
			if d == weekday {
				return true
			}
		}
		return false
	case model.ScheduleEveryXDays:
		return daysDiff%h.Schedule.Interval == 0
	default:
		return false
	}
}

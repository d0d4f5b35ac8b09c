package model

import "time"

type ScheduleType string
type CompletionStatus string
type DayStatus string

const (
	ScheduleEveryDay     ScheduleType = "every_day"
	ScheduleSpecificDays ScheduleType = "specific_days"
	ScheduleEveryXDays   ScheduleType = "every_x_days"

	StatusCompleted CompletionStatus = "completed"

	// Derived per-day states. Only "completed" is ever persisted in the
	// history map; the rest are computed on read.
	DayCompleted    DayStatus = "COMPLETED"
	DayMissed       DayStatus = "MISSED"
	DayNotScheduled DayStatus = "NOT_SCHEDULED"
	DayFuture       DayStatus = "FUTURE"
)

// SprintLength is the fixed reporting window in calendar days, anchored at
// each habit's creation date. The window is [CreatedAt, CreatedAt+90).
const SprintLength = 90

// Schedule is the recurrence rule for a habit. Type selects the variant:
// Days is only meaningful for specific_days (weekday indices, 0=Sunday),
// Interval only for every_x_days (>= 2; an interval of 1 is normalized to
// every_day at creation time).
type Schedule struct {
	Type     ScheduleType `bson:"type" json:"type" binding:"required"`
	Days     []int        `bson:"days,omitempty" json:"days,omitempty"`
	Interval int          `bson:"interval,omitempty" json:"interval,omitempty"`
}

type Habit struct {
	HabitID          string                      `bson:"_id" json:"id"`
	UserID           string                      `bson:"user_id" json:"user_id"`
	Name             string                      `bson:"name" json:"name" binding:"required"`
	Color            string                      `bson:"color,omitempty" json:"color,omitempty"`
	Schedule         Schedule                    `bson:"schedule" json:"schedule"`
	History          map[string]CompletionStatus `bson:"history" json:"history"`
	TotalCompletions int                         `bson:"total_completions" json:"total_completions"`
	CreatedAt        time.Time                   `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time                   `bson:"updated_at" json:"updated_at"`
}

// CompletedOn reports whether the habit was marked completed on the given
// calendar day key (YYYY-MM-DD).
func (h *Habit) CompletedOn(dateKey string) bool {
	return h.History[dateKey] == StatusCompleted
}

// DateKey formats a time as the history map key for its calendar day.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

package model

import "time"

// Progress is the result of aggregating a habit's history over a date range.
// BestStreak is the longest run of consecutive scheduled-and-completed days
// found anywhere in the range; StreakToDate is the run ending at the
// reference day. The two deliberately carry distinct names because earlier
// views of this data disagreed about which one "streak" meant.
type Progress struct {
	Completed      int `json:"completed"`
	ScheduledTotal int `json:"scheduled_total"`
	Percentage     int `json:"percentage"`
	BestStreak     int `json:"best_streak"`
	StreakToDate   int `json:"streak_to_date"`
	DaysLeft       int `json:"days_left"`
}

// DayCell is one date bucket in a week or month rollup, with counts summed
// across all of a user's habits.
type DayCell struct {
	Date      string `json:"date"`
	Weekday   int    `json:"weekday"`
	InMonth   bool   `json:"in_month"`
	IsToday   bool   `json:"is_today"`
	Scheduled int    `json:"scheduled"`
	Completed int    `json:"completed"`
}

// HabitDay is a single habit's derived state for one date.
type HabitDay struct {
	HabitID   string    `json:"habit_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	Status    DayStatus `json:"status"`
	Scheduled bool      `json:"scheduled"`
}

type DayOverview struct {
	Date      string     `json:"date"`
	Scheduled int        `json:"scheduled"`
	Completed int        `json:"completed"`
	Habits    []HabitDay `json:"habits"`
}

type WeekOverview struct {
	WeekStart string    `json:"week_start"`
	WeekEnd   string    `json:"week_end"`
	Days      []DayCell `json:"days"`
}

type MonthOverview struct {
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	Scheduled  int       `json:"scheduled"`
	Completed  int       `json:"completed"`
	Percentage int       `json:"percentage"`
	Grid       []DayCell `json:"grid"`
}

type HabitSprint struct {
	HabitID  string   `json:"habit_id"`
	Name     string   `json:"name"`
	Color    string   `json:"color,omitempty"`
	Progress Progress `json:"progress"`
}

// SprintOverview aggregates each habit's own 90-day window. Windows are
// per-habit because they anchor at each habit's creation date.
type SprintOverview struct {
	Habits            []HabitSprint `json:"habits"`
	TotalCompleted    int           `json:"total_completed"`
	TotalScheduled    int           `json:"total_scheduled"`
	BestStreak        int           `json:"best_streak"`
	MinDaysLeft       int           `json:"min_days_left"`
	AveragePercentage int           `json:"average_percentage"`
}

type MonthBucket struct {
	Month      int `json:"month"`
	Scheduled  int `json:"scheduled"`
	Completed  int `json:"completed"`
	Percentage int `json:"percentage"`
}

type YearOverview struct {
	Year       int           `json:"year"`
	Scheduled  int           `json:"scheduled"`
	Completed  int           `json:"completed"`
	Percentage int           `json:"percentage"`
	Months     []MonthBucket `json:"months"`
}

type UserStats struct {
	HabitStats struct {
		Total             int `json:"total"`
		TotalCompletions  int `json:"total_completions"`
		BestStreak        int `json:"best_streak"`
		AveragePercentage int `json:"average_percentage"`
	} `json:"habit_stats"`
	ActivityStats struct {
		LastActive     time.Time `json:"last_active"`
		AccountCreated time.Time `json:"account_created"`
		TotalSessions  int       `json:"total_sessions"`
	} `json:"activity_stats"`
}

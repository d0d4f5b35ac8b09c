package usecase

import (
	"main/model"
	"math"
	"time"
)

// The rollup builders reshape evaluator and aggregator output into the
// bucketed structures each period view needs. They contain no scheduling
// logic of their own; every scheduled/completed decision goes through
// IsScheduled and ComputeProgress so the views cannot drift apart.

// dayCell builds one date bucket with counts summed across habits. A
// completion only counts on a day the habit was actually scheduled.
func dayCell(habits []*model.Habit, date, today time.Time, inMonth bool) model.DayCell {
	cell := model.DayCell{
		Date:    model.DateKey(date),
		Weekday: int(date.Weekday()),
		InMonth: inMonth,
		IsToday: SameDay(date, today),
	}
	for _, h := range habits {
		if !IsScheduled(h, date) {
			continue
		}
		cell.Scheduled++
		if h.CompletedOn(model.DateKey(date)) {
			cell.Completed++
		}
	}
	return cell
}

// BuildDayOverview derives every habit's state for a single date.
func BuildDayOverview(habits []*model.Habit, date, today time.Time) model.DayOverview {
	overview := model.DayOverview{
		Date:   model.DateKey(date),
		Habits: make([]model.HabitDay, 0, len(habits)),
	}
	for _, h := range habits {
		status := StatusOn(h, date, today)
		scheduled := IsScheduled(h, date)
		if scheduled {
			overview.Scheduled++
			if status == model.DayCompleted {
				overview.Completed++
			}
		}
		overview.Habits = append(overview.Habits, model.HabitDay{
			HabitID:   h.HabitID,
			Name:      h.Name,
			Color:     h.Color,
			Status:    status,
			Scheduled: scheduled,
		})
	}
	return overview
}

// BuildWeekOverview returns the seven days of the Sunday-anchored week
// containing the reference date.
func BuildWeekOverview(habits []*model.Habit, ref, today time.Time) model.WeekOverview {
	start := DayFloor(ref).AddDate(0, 0, -int(ref.Weekday()))
	overview := model.WeekOverview{
		WeekStart: model.DateKey(start),
		WeekEnd:   model.DateKey(start.AddDate(0, 0, 6)),
		Days:      make([]model.DayCell, 0, 7),
	}
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		overview.Days = append(overview.Days, dayCell(habits, day, today, true))
	}
	return overview
}

// BuildMonthOverview returns the full calendar grid for the reference
// date's month, padded with leading and trailing days so every row is a
// complete Sunday-to-Saturday week. Month totals count in-month days only.
func BuildMonthOverview(habits []*model.Habit, ref, today time.Time) model.MonthOverview {
	year, month, _ := ref.Date()
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	gridStart := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	gridEnd := lastOfMonth.AddDate(0, 0, 6-int(lastOfMonth.Weekday()))

	overview := model.MonthOverview{
		Year:  year,
		Month: int(month),
	}
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		inMonth := d.Month() == month
		cell := dayCell(habits, d, today, inMonth)
		if inMonth {
			overview.Scheduled += cell.Scheduled
			overview.Completed += cell.Completed
		}
		overview.Grid = append(overview.Grid, cell)
	}
	overview.Percentage = roundPercentage(overview.Completed, overview.Scheduled)
	return overview
}

// BuildSprintOverview computes each habit's sprint progress and the
// cross-habit aggregates. Sprint windows are per-habit, anchored at each
// habit's own creation date.
func BuildSprintOverview(habits []*model.Habit, today time.Time) model.SprintOverview {
	overview := model.SprintOverview{
		Habits:      make([]model.HabitSprint, 0, len(habits)),
		MinDaysLeft: model.SprintLength,
	}
	if len(habits) == 0 {
		overview.MinDaysLeft = 0
		return overview
	}

	percentSum := 0
	for _, h := range habits {
		p := SprintProgress(h, today)
		overview.Habits = append(overview.Habits, model.HabitSprint{
			HabitID:  h.HabitID,
			Name:     h.Name,
			Color:    h.Color,
			Progress: p,
		})
		overview.TotalCompleted += p.Completed
		overview.TotalScheduled += p.ScheduledTotal
		percentSum += p.Percentage
		if p.BestStreak > overview.BestStreak {
			overview.BestStreak = p.BestStreak
		}
		if p.DaysLeft < overview.MinDaysLeft {
			overview.MinDaysLeft = p.DaysLeft
		}
	}
	overview.AveragePercentage = int(math.Round(float64(percentSum) / float64(len(habits))))
	return overview
}

// BuildYearOverview walks every day of every month of the reference year.
// O(365 x habits), fine at this data scale.
func BuildYearOverview(habits []*model.Habit, ref, today time.Time) model.YearOverview {
	year := ref.Year()
	overview := model.YearOverview{
		Year:   year,
		Months: make([]model.MonthBucket, 0, 12),
	}
	for m := time.January; m <= time.December; m++ {
		bucket := model.MonthBucket{Month: int(m)}
		first := time.Date(year, m, 1, 0, 0, 0, 0, ref.Location())
		last := first.AddDate(0, 1, -1)
		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			cell := dayCell(habits, d, today, true)
			bucket.Scheduled += cell.Scheduled
			bucket.Completed += cell.Completed
		}
		bucket.Percentage = roundPercentage(bucket.Completed, bucket.Scheduled)
		overview.Scheduled += bucket.Scheduled
		overview.Completed += bucket.Completed
		overview.Months = append(overview.Months, bucket)
	}
	overview.Percentage = roundPercentage(overview.Completed, overview.Scheduled)
	return overview
}

func roundPercentage(completed, scheduled int) int {
	if scheduled == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(scheduled)))
}

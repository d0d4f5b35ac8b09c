package usecase

import (
	"testing"
	"time"

	"main/model"
)

func TestBuildDayOverview(t *testing.T) {
	today := date(2024, time.January, 8)
	daily := newDailyHabit(date(2024, time.January, 1), date(2024, time.January, 8))
	weekend := &model.Habit{
		HabitID:   "h2",
		Name:      "Hike",
		CreatedAt: date(2024, time.January, 1),
		Schedule: model.Schedule{
			Type: model.ScheduleSpecificDays,
			Days: []int{0, 6},
		},
		History: map[string]model.CompletionStatus{},
	}

	// Jan 8 2024 is a Monday: daily is scheduled and completed, weekend is
	// not scheduled.
	overview := BuildDayOverview([]*model.Habit{daily, weekend}, today, today)

	if overview.Scheduled != 1 {
		t.Errorf("Scheduled = %d, want 1", overview.Scheduled)
	}
	if overview.Completed != 1 {
		t.Errorf("Completed = %d, want 1", overview.Completed)
	}
	if len(overview.Habits) != 2 {
		t.Fatalf("Habits len = %d, want 2", len(overview.Habits))
	}
	if overview.Habits[0].Status != model.DayCompleted {
		t.Errorf("daily status = %v, want %v", overview.Habits[0].Status, model.DayCompleted)
	}
	if overview.Habits[1].Status != model.DayNotScheduled {
		t.Errorf("weekend status = %v, want %v", overview.Habits[1].Status, model.DayNotScheduled)
	}
}

func TestBuildWeekOverview(t *testing.T) {
	today := date(2024, time.January, 10) // a Wednesday
	h := newDailyHabit(date(2024, time.January, 1),
		date(2024, time.January, 8),
		date(2024, time.January, 9),
	)

	overview := BuildWeekOverview([]*model.Habit{h}, today, today)

	if len(overview.Days) != 7 {
		t.Fatalf("Days len = %d, want 7", len(overview.Days))
	}
	if overview.WeekStart != "2024-01-07" {
		t.Errorf("WeekStart = %s, want 2024-01-07", overview.WeekStart)
	}
	if overview.WeekEnd != "2024-01-13" {
		t.Errorf("WeekEnd = %s, want 2024-01-13", overview.WeekEnd)
	}
	if overview.Days[0].Weekday != 0 {
		t.Errorf("first cell weekday = %d, want Sunday", overview.Days[0].Weekday)
	}

	var todayCells int
	for _, cell := range overview.Days {
		if cell.IsToday {
			todayCells++
			if cell.Date != "2024-01-10" {
				t.Errorf("today cell date = %s, want 2024-01-10", cell.Date)
			}
		}
	}
	if todayCells != 1 {
		t.Errorf("today cells = %d, want exactly 1", todayCells)
	}

	// Mon Jan 8 completed
	if overview.Days[1].Completed != 1 || overview.Days[1].Scheduled != 1 {
		t.Errorf("Jan 8 cell = %+v, want scheduled 1 completed 1", overview.Days[1])
	}
}

func TestBuildMonthOverview(t *testing.T) {
	today := date(2024, time.June, 1)
	h := newDailyHabit(date(2024, time.January, 1),
		date(2024, time.January, 1),
		date(2024, time.January, 2),
	)

	overview := BuildMonthOverview([]*model.Habit{h}, date(2024, time.January, 15), today)

	if overview.Year != 2024 || overview.Month != 1 {
		t.Errorf("Year/Month = %d/%d, want 2024/1", overview.Year, overview.Month)
	}
	if len(overview.Grid)%7 != 0 {
		t.Errorf("grid len = %d, want a multiple of 7", len(overview.Grid))
	}
	// January 2024 starts on a Monday and ends on a Wednesday, so the grid
	// pads to five full weeks.
	if len(overview.Grid) != 35 {
		t.Errorf("grid len = %d, want 35", len(overview.Grid))
	}

	// Only in-month days contribute to the totals.
	if overview.Scheduled != 31 {
		t.Errorf("Scheduled = %d, want 31", overview.Scheduled)
	}
	if overview.Completed != 2 {
		t.Errorf("Completed = %d, want 2", overview.Completed)
	}
	if overview.Percentage != 6 { // round(100*2/31)
		t.Errorf("Percentage = %d, want 6", overview.Percentage)
	}

	for i, cell := range overview.Grid {
		inMonth := cell.Date >= "2024-01-01" && cell.Date <= "2024-01-31"
		if cell.InMonth != inMonth {
			t.Errorf("cell %d (%s) InMonth = %v, want %v", i, cell.Date, cell.InMonth, inMonth)
		}
	}
}

func TestBuildSprintOverview(t *testing.T) {
	today := date(2024, time.January, 10)

	older := newDailyHabit(date(2024, time.January, 1),
		date(2024, time.January, 1),
		date(2024, time.January, 2),
		date(2024, time.January, 3),
	)
	newer := newDailyHabit(date(2024, time.January, 6),
		date(2024, time.January, 6),
		date(2024, time.January, 7),
		date(2024, time.January, 8),
		date(2024, time.January, 9),
		date(2024, time.January, 10),
	)
	newer.HabitID = "h2"

	overview := BuildSprintOverview([]*model.Habit{older, newer}, today)

	if len(overview.Habits) != 2 {
		t.Fatalf("Habits len = %d, want 2", len(overview.Habits))
	}
	if overview.TotalCompleted != 8 {
		t.Errorf("TotalCompleted = %d, want 8", overview.TotalCompleted)
	}
	// 10 elapsed scheduled days for the older habit, 5 for the newer.
	if overview.TotalScheduled != 15 {
		t.Errorf("TotalScheduled = %d, want 15", overview.TotalScheduled)
	}
	if overview.BestStreak != 5 {
		t.Errorf("BestStreak = %d, want 5", overview.BestStreak)
	}
	// Older habit has fewer sprint days remaining.
	if overview.MinDaysLeft != 81 {
		t.Errorf("MinDaysLeft = %d, want 81", overview.MinDaysLeft)
	}
	// round((30 + 100) / 2)
	if overview.AveragePercentage != 65 {
		t.Errorf("AveragePercentage = %d, want 65", overview.AveragePercentage)
	}
}

func TestBuildSprintOverviewEmpty(t *testing.T) {
	overview := BuildSprintOverview(nil, date(2024, time.January, 1))
	if overview.MinDaysLeft != 0 {
		t.Errorf("MinDaysLeft = %d, want 0 with no habits", overview.MinDaysLeft)
	}
	if len(overview.Habits) != 0 {
		t.Errorf("Habits len = %d, want 0", len(overview.Habits))
	}
}

func TestBuildYearOverview(t *testing.T) {
	today := date(2025, time.June, 1)
	h := newDailyHabit(date(2024, time.January, 1),
		date(2024, time.January, 1),
		date(2024, time.February, 1),
	)

	overview := BuildYearOverview([]*model.Habit{h}, date(2024, time.July, 4), today)

	if overview.Year != 2024 {
		t.Errorf("Year = %d, want 2024", overview.Year)
	}
	if len(overview.Months) != 12 {
		t.Fatalf("Months len = %d, want 12", len(overview.Months))
	}
	if overview.Scheduled != 366 { // 2024 is a leap year
		t.Errorf("Scheduled = %d, want 366", overview.Scheduled)
	}
	if overview.Completed != 2 {
		t.Errorf("Completed = %d, want 2", overview.Completed)
	}
	if overview.Months[0].Scheduled != 31 || overview.Months[0].Completed != 1 {
		t.Errorf("January bucket = %+v, want scheduled 31 completed 1", overview.Months[0])
	}
	if overview.Months[1].Scheduled != 29 {
		t.Errorf("February scheduled = %d, want 29", overview.Months[1].Scheduled)
	}

	total := 0
	for _, m := range overview.Months {
		total += m.Scheduled
	}
	if total != overview.Scheduled {
		t.Errorf("month buckets sum to %d, want %d", total, overview.Scheduled)
	}
}

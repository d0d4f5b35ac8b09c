package usecase

import (
	"testing"
	"time"

	"main/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayFloor(t *testing.T) {
	in := time.Date(2024, time.March, 15, 23, 59, 58, 123, time.UTC)
	got := DayFloor(in)
	want := date(2024, time.March, 15)
	if !got.Equal(want) {
		t.Errorf("DayFloor() = %v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day", date(2024, time.January, 1), date(2024, time.January, 1), 0},
		{"next day", date(2024, time.January, 1), date(2024, time.January, 2), 1},
		{"across leap day", date(2024, time.February, 28), date(2024, time.March, 1), 2},
		{"across year boundary", date(2023, time.December, 30), date(2024, time.January, 2), 3},
		{"negative when reversed", date(2024, time.January, 10), date(2024, time.January, 1), -9},
		{
			// Different zones, same calendar distance: only the date
			// components matter.
			"ignores time of day",
			time.Date(2024, time.January, 1, 23, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 2, 1, 0, 0, 0, time.UTC),
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// 2024-03-10 is the spring-forward date in this zone; the wall-clock
	// gap is 23 hours but the calendar distance is still one day.
	from := time.Date(2024, time.March, 9, 12, 0, 0, 0, loc)
	to := time.Date(2024, time.March, 10, 12, 0, 0, 0, loc)
	if got := DaysBetween(from, to); got != 1 {
		t.Errorf("DaysBetween() across DST = %d, want 1", got)
	}
}

func TestIsScheduledEveryDay(t *testing.T) {
	habit := &model.Habit{
		CreatedAt: date(2024, time.January, 10),
		Schedule:  model.Schedule{Type: model.ScheduleEveryDay},
	}

	if IsScheduled(habit, date(2024, time.January, 9)) {
		t.Error("should not be scheduled before creation date")
	}
	if !IsScheduled(habit, date(2024, time.January, 10)) {
		t.Error("should be scheduled on creation date")
	}
	if !IsScheduled(habit, date(2024, time.June, 1)) {
		t.Error("should be scheduled on any later date")
	}
}

func TestIsScheduledSpecificDays(t *testing.T) {
	// Monday, Wednesday, Friday
	habit := &model.Habit{
		CreatedAt: date(2024, time.January, 1), // a Monday
		Schedule: model.Schedule{
			Type: model.ScheduleSpecificDays,
			Days: []int{1, 3, 5},
		},
	}

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"Monday", date(2024, time.January, 1), true},
		{"Tuesday", date(2024, time.January, 2), false},
		{"Wednesday", date(2024, time.January, 3), true},
		{"Friday", date(2024, time.January, 5), true},
		{"Sunday", date(2024, time.January, 7), false},
		{"Monday before creation", date(2023, time.December, 25), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsScheduled(habit, tt.day); got != tt.want {
				t.Errorf("IsScheduled(%s) = %v, want %v", tt.day.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestIsScheduledEveryXDays(t *testing.T) {
	habit := &model.Habit{
		CreatedAt: date(2024, time.January, 1),
		Schedule: model.Schedule{
			Type:     model.ScheduleEveryXDays,
			Interval: 3,
		},
	}

	tests := []struct {
		day  time.Time
		want bool
	}{
		{date(2024, time.January, 1), true},  // day 0
		{date(2024, time.January, 2), false}, // day 1
		{date(2024, time.January, 3), false}, // day 2
		{date(2024, time.January, 4), true},  // day 3
		{date(2024, time.January, 7), true},  // day 6
		{date(2023, time.December, 29), false},
	}

	for _, tt := range tests {
		if got := IsScheduled(habit, tt.day); got != tt.want {
			t.Errorf("IsScheduled(%s) = %v, want %v", tt.day.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestIsScheduledWeeklyIntervalInJanuary(t *testing.T) {
	habit := &model.Habit{
		CreatedAt: date(2024, time.January, 1),
		Schedule: model.Schedule{
			Type:     model.ScheduleEveryXDays,
			Interval: 7,
		},
	}

	count := 0
	for d := date(2024, time.January, 1); d.Month() == time.January; d = d.AddDate(0, 0, 1) {
		if IsScheduled(habit, d) {
			count++
		}
	}
	// Jan 1, 8, 15, 22, 29
	if count != 5 {
		t.Errorf("scheduled days in January = %d, want 5", count)
	}
}

func TestIsScheduledUnknownType(t *testing.T) {
	habit := &model.Habit{
		CreatedAt: date(2024, time.January, 1),
		Schedule:  model.Schedule{Type: "weekly"},
	}
	if IsScheduled(habit, date(2024, time.January, 1)) {
		t.Error("unknown schedule type should never be scheduled")
	}
}

package usecase

import (
	"main/model"
	"math"
	"time"
)

// ComputeProgress aggregates a habit's history over [rangeStart, rangeEnd]
// (both inclusive, calendar days). Future dates never count toward
// completions or totals: the scan stops at today. A scheduled day with no
// completed entry breaks a streak run; unscheduled days neither extend nor
// break one.
func ComputeProgress(h *model.Habit, rangeStart, rangeEnd, today time.Time) model.Progress {
	start := DayFloor(rangeStart)
	end := DayFloor(rangeEnd)
	now := DayFloor(today)

	effectiveEnd := end
	if now.Before(end) {
		effectiveEnd = now
	}

	var p model.Progress
	p.DaysLeft = SprintDaysLeft(h, today)

	run := 0
	for d := start; !d.After(effectiveEnd); d = d.AddDate(0, 0, 1) {
		if !IsScheduled(h, d) {
			continue
		}
		p.ScheduledTotal++
		if h.CompletedOn(model.DateKey(d)) {
			p.Completed++
			run++
			if run > p.BestStreak {
				p.BestStreak = run
			}
		} else {
			run = 0
		}
	}

	if p.ScheduledTotal > 0 {
		p.Percentage = int(math.Round(100 * float64(p.Completed) / float64(p.ScheduledTotal)))
	}

	p.StreakToDate = StreakEndingAt(h, today)
	return p
}

// StreakEndingAt counts the consecutive scheduled days completed up to and
// including the given day, scanning backward until the first scheduled day
// without a completion. This is the "streak ending today" framing; the
// in-range maximum lives in Progress.BestStreak.
func StreakEndingAt(h *model.Habit, day time.Time) int {
	d := DayFloor(day)
	created := DayFloor(h.CreatedAt)

	streak := 0
	for !d.Before(created) {
		if IsScheduled(h, d) {
			if !h.CompletedOn(model.DateKey(d)) {
				break
			}
			streak++
		}
		d = d.AddDate(0, 0, -1)
	}
	return streak
}

// SprintBounds returns the habit's 90-day reporting window as an inclusive
// [first, last] day pair anchored at the creation date.
func SprintBounds(h *model.Habit) (time.Time, time.Time) {
	first := DayFloor(h.CreatedAt)
	last := first.AddDate(0, 0, model.SprintLength-1)
	return first, last
}

// SprintProgress aggregates over the habit's own 90-day window.
func SprintProgress(h *model.Habit, today time.Time) model.Progress {
	first, last := SprintBounds(h)
	return ComputeProgress(h, first, last, today)
}

// SprintDaysLeft reports how many of the habit's 90 sprint days remain.
// Before the creation day the full window remains; past day 90 it is zero.
func SprintDaysLeft(h *model.Habit, today time.Time) int {
	elapsed := DaysBetween(h.CreatedAt, today)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > model.SprintLength {
		elapsed = model.SprintLength
	}
	return model.SprintLength - elapsed
}

// StatusOn derives a habit's display state for one date. Nothing here is
// ever persisted; the stored history only knows "completed".
func StatusOn(h *model.Habit, date, today time.Time) model.DayStatus {
	d := DayFloor(date)
	if d.After(DayFloor(today)) {
		return model.DayFuture
	}
	if !IsScheduled(h, d) {
		return model.DayNotScheduled
	}
	if h.CompletedOn(model.DateKey(d)) {
		return model.DayCompleted
	}
	return model.DayMissed
}

package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"main/model"

	"github.com/google/uuid"
)

var (
	ErrHabitNotFound   = errors.New("habit not found")
	ErrFutureDate      = errors.New("cannot toggle a future date")
	ErrNotScheduled    = errors.New("habit is not scheduled on this date")
	ErrInvalidSchedule = errors.New("invalid schedule")
)

// HabitStore is the persistence surface the service needs. Implemented by
// repository.HabitsRepo.
type HabitStore interface {
	CreateHabit(ctx context.Context, habit *model.Habit) error
	GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error)
	GetHabitByID(ctx context.Context, habitID, userID string) (*model.Habit, error)
	UpdateHistory(ctx context.Context, habitID, userID string, history map[string]model.CompletionStatus, totalCompletions int) error
	DeleteHabit(ctx context.Context, habitID, userID string) error
	DeleteUserHabits(ctx context.Context, userID string) (int64, error)
	CountUserHabits(ctx context.Context, userID string) (int, error)
}

type HabitsService struct {
	repo HabitStore

	// One mutex per habit so two rapid toggles read-modify-write the
	// history map in sequence instead of racing each other.
	toggleLocks sync.Map
}

func NewHabitsService(repo HabitStore) *HabitsService {
	return &HabitsService{repo: repo}
}

// ValidateSchedule enforces the schedule variant rules and normalizes an
// every_x_days interval of 1 down to every_day. Habits are validated here,
// at creation time; the evaluator assumes it never sees a malformed rule.
func ValidateSchedule(s *model.Schedule) error {
	switch s.Type {
	case model.ScheduleEveryDay:
		s.Days = nil
		s.Interval = 0
		return nil
	case model.ScheduleSpecificDays:
		if len(s.Days) == 0 {
			return errors.New("specific_days schedule requires at least one day")
		}
		seen := make(map[int]bool, len(s.Days))
		for _, d := range s.Days {
			if d < 0 || d > 6 {
				return errors.New("schedule days must be weekday indices 0-6")
			}
			seen[d] = true
		}
		days := make([]int, 0, len(seen))
		for d := range seen {
			days = append(days, d)
		}
		sort.Ints(days)
		s.Days = days
		s.Interval = 0
		return nil
	case model.ScheduleEveryXDays:
		if s.Interval < 1 {
			return errors.New("interval must be at least 1")
		}
		if s.Interval == 1 {
			s.Type = model.ScheduleEveryDay
			s.Interval = 0
		}
		s.Days = nil
		return nil
	default:
		return ErrInvalidSchedule
	}
}

func (svc *HabitsService) CreateHabit(ctx context.Context, habit *model.Habit) error {
	if habit.UserID == "" {
		return errors.New("user ID is required")
	}
	if habit.Name == "" {
		return errors.New("habit name is required")
	}
	if err := ValidateSchedule(&habit.Schedule); err != nil {
		return err
	}

	now := time.Now()
	if habit.HabitID == "" {
		habit.HabitID = uuid.New().String()
	}
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = now
	}
	habit.UpdatedAt = now
	habit.History = make(map[string]model.CompletionStatus)
	habit.TotalCompletions = 0

	return svc.repo.CreateHabit(ctx, habit)
}

// GetUserHabits returns the user's habits ordered by creation date, oldest
// first.
func (svc *HabitsService) GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	habits, err := svc.repo.GetUserHabits(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(habits, func(i, j int) bool {
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})
	return habits, nil
}

func (svc *HabitsService) GetHabitByID(ctx context.Context, habitID, userID string) (*model.Habit, error) {
	habit, err := svc.repo.GetHabitByID(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}
	return habit, nil
}

// applyToggle flips one date's completion entry in a history map, returning
// the updated map and the new completion total. Absence of a key is the only
// "not completed" state, so toggling twice restores the original map.
func applyToggle(history map[string]model.CompletionStatus, dateKey string) (map[string]model.CompletionStatus, int) {
	updated := make(map[string]model.CompletionStatus, len(history)+1)
	for k, v := range history {
		updated[k] = v
	}
	if updated[dateKey] == model.StatusCompleted {
		delete(updated, dateKey)
	} else {
		updated[dateKey] = model.StatusCompleted
	}

	total := 0
	for _, status := range updated {
		if status == model.StatusCompleted {
			total++
		}
	}
	return updated, total
}

// ToggleCompletion marks or unmarks a habit as completed on one calendar
// day and persists the full history map plus the recomputed completion
// total in a single update. Future dates and unscheduled dates are
// rejected; the toggle controls for those are disabled client-side too.
func (svc *HabitsService) ToggleCompletion(ctx context.Context, habitID, userID string, date, today time.Time) (*model.Habit, error) {
	lock, _ := svc.toggleLocks.LoadOrStore(habitID, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	habit, err := svc.GetHabitByID(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}

	day := DayFloor(date)
	if day.After(DayFloor(today)) {
		return nil, ErrFutureDate
	}
	if !IsScheduled(habit, day) {
		return nil, ErrNotScheduled
	}

	history, total := applyToggle(habit.History, model.DateKey(day))
	if err := svc.repo.UpdateHistory(ctx, habitID, userID, history, total); err != nil {
		return nil, err
	}

	habit.History = history
	habit.TotalCompletions = total
	habit.UpdatedAt = time.Now()
	return habit, nil
}

// DeleteHabit removes the habit and its entire history. The history lives
// inside the habit document, so the delete is atomic.
func (svc *HabitsService) DeleteHabit(ctx context.Context, habitID, userID string) error {
	habit, err := svc.repo.GetHabitByID(ctx, habitID, userID)
	if err != nil {
		return err
	}
	if habit == nil {
		return ErrHabitNotFound
	}
	svc.toggleLocks.Delete(habitID)
	return svc.repo.DeleteHabit(ctx, habitID, userID)
}

// Progress computes a habit's aggregate over an arbitrary inclusive range.
func (svc *HabitsService) Progress(ctx context.Context, habitID, userID string, rangeStart, rangeEnd, today time.Time) (*model.Progress, error) {
	habit, err := svc.GetHabitByID(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	p := ComputeProgress(habit, rangeStart, rangeEnd, today)
	return &p, nil
}

// DeleteAllUserHabits removes every habit for the user; used by account
// deletion.
func (svc *HabitsService) DeleteAllUserHabits(ctx context.Context, userID string) (int64, error) {
	return svc.repo.DeleteUserHabits(ctx, userID)
}

func (svc *HabitsService) CountUserHabits(ctx context.Context, userID string) (int, error) {
	return svc.repo.CountUserHabits(ctx, userID)
}

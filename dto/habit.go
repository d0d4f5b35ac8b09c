package dto

import (
	"time"

	"main/model"
)

type HabitResponse struct {
	ID               string                            `json:"id"`
	Name             string                            `json:"name"`
	Color            string                            `json:"color,omitempty"`
	Schedule         model.Schedule                    `json:"schedule"`
	History          map[string]model.CompletionStatus `json:"history"`
	TotalCompletions int                               `json:"total_completions"`
	CreatedAt        time.Time                         `json:"created_at"`
	UpdatedAt        time.Time                         `json:"updated_at"`
}

// Convert model.Habit to HabitResponse
func ToHabitResponse(habit *model.Habit) HabitResponse {
	history := habit.History
	if history == nil {
		history = map[string]model.CompletionStatus{}
	}

	return HabitResponse{
		ID:               habit.HabitID,
		Name:             habit.Name,
		Color:            habit.Color,
		Schedule:         habit.Schedule,
		History:          history,
		TotalCompletions: habit.TotalCompletions,
		CreatedAt:        habit.CreatedAt,
		UpdatedAt:        habit.UpdatedAt,
	}
}

// Convert slice of model.Habit to slice of HabitResponse
func ToHabitResponses(habits []*model.Habit) []HabitResponse {
	responses := make([]HabitResponse, len(habits))
	for i, habit := range habits {
		responses[i] = ToHabitResponse(habit)
	}
	return responses
}

// HabitProgressResponse pairs a habit with its aggregated progress over a
// requested range.
type HabitProgressResponse struct {
	Habit    HabitResponse  `json:"habit"`
	Range    ProgressRange  `json:"range"`
	Progress model.Progress `json:"progress"`
}

type ProgressRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

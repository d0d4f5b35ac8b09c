package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"main/model"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

type memoryHabitStore struct {
	habits map[string]*model.Habit
}

func newMemoryHabitStore() *memoryHabitStore {
	return &memoryHabitStore{habits: make(map[string]*model.Habit)}
}

func (m *memoryHabitStore) CreateHabit(_ context.Context, habit *model.Habit) error {
	clone := *habit
	m.habits[habit.HabitID] = &clone
	return nil
}

func (m *memoryHabitStore) GetUserHabits(_ context.Context, userID string) ([]*model.Habit, error) {
	var result []*model.Habit
	for _, h := range m.habits {
		if h.UserID == userID {
			clone := *h
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (m *memoryHabitStore) GetHabitByID(_ context.Context, habitID, userID string) (*model.Habit, error) {
	h, ok := m.habits[habitID]
	if !ok || h.UserID != userID {
		return nil, nil
	}
	clone := *h
	return &clone, nil
}

func (m *memoryHabitStore) UpdateHistory(_ context.Context, habitID, userID string, history map[string]model.CompletionStatus, totalCompletions int) error {
	h, ok := m.habits[habitID]
	if !ok || h.UserID != userID {
		return errors.New("habit not found")
	}
	h.History = history
	h.TotalCompletions = totalCompletions
	return nil
}

func (m *memoryHabitStore) DeleteHabit(_ context.Context, habitID, userID string) error {
	h, ok := m.habits[habitID]
	if !ok || h.UserID != userID {
		return errors.New("habit not found")
	}
	delete(m.habits, habitID)
	return nil
}

func (m *memoryHabitStore) DeleteUserHabits(_ context.Context, userID string) (int64, error) {
	var deleted int64
	for id, h := range m.habits {
		if h.UserID == userID {
			delete(m.habits, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *memoryHabitStore) CountUserHabits(_ context.Context, userID string) (int, error) {
	count := 0
	for _, h := range m.habits {
		if h.UserID == userID {
			count++
		}
	}
	return count, nil
}

// testRouter wires the habit routes with a fake authenticated user.
func testRouter(svc *usecase.HabitsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "test-user")
		c.Next()
	})

	router.POST("/api/habits", func(c *gin.Context) {
		CreateHabitHandler(c, svc)
	})
	router.GET("/api/habits", func(c *gin.Context) {
		GetUserHabitsHandler(c, svc)
	})
	router.DELETE("/api/habits/:id", func(c *gin.Context) {
		DeleteHabitHandler(c, svc)
	})
	router.POST("/api/habits/:id/toggle", func(c *gin.Context) {
		ToggleCompletionHandler(c, svc)
	})
	router.GET("/api/overview/day", func(c *gin.Context) {
		DayOverviewHandler(c, svc)
	})
	return router
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateHabitHandler(t *testing.T) {
	svc := usecase.NewHabitsService(newMemoryHabitStore())
	router := testRouter(svc)

	w := performJSON(router, http.MethodPost, "/api/habits", gin.H{
		"name": "Read",
		"schedule": gin.H{
			"type": "every_day",
		},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			ID       string         `json:"id"`
			Name     string         `json:"name"`
			Schedule model.Schedule `json:"schedule"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Data.ID == "" {
		t.Error("response missing habit id")
	}
	if resp.Data.Name != "Read" {
		t.Errorf("name = %q, want Read", resp.Data.Name)
	}
}

func TestCreateHabitHandlerRejectsBadSchedule(t *testing.T) {
	svc := usecase.NewHabitsService(newMemoryHabitStore())
	router := testRouter(svc)

	tests := []struct {
		name     string
		schedule gin.H
	}{
		{"unknown type", gin.H{"type": "monthly"}},
		{"empty specific days", gin.H{"type": "specific_days"}},
		{"day out of range", gin.H{"type": "specific_days", "days": []int{9}}},
		{"zero interval", gin.H{"type": "every_x_days", "interval": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(router, http.MethodPost, "/api/habits", gin.H{
				"name":     "Bad",
				"schedule": tt.schedule,
			})
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestToggleCompletionHandler(t *testing.T) {
	store := newMemoryHabitStore()
	svc := usecase.NewHabitsService(store)
	router := testRouter(svc)

	habit := &model.Habit{
		UserID:    "test-user",
		Name:      "Run",
		Schedule:  model.Schedule{Type: model.ScheduleEveryDay},
		CreatedAt: time.Now().AddDate(0, 0, -7),
	}
	if err := svc.CreateHabit(context.Background(), habit); err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}

	today := model.DateKey(time.Now())
	w := performJSON(router, http.MethodPost, "/api/habits/"+habit.HabitID+"/toggle", gin.H{
		"date": today,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	stored := store.habits[habit.HabitID]
	if !stored.CompletedOn(today) {
		t.Error("toggle not persisted")
	}
}

func TestToggleCompletionHandlerRejectsFutureDate(t *testing.T) {
	svc := usecase.NewHabitsService(newMemoryHabitStore())
	router := testRouter(svc)

	habit := &model.Habit{
		UserID:    "test-user",
		Name:      "Run",
		Schedule:  model.Schedule{Type: model.ScheduleEveryDay},
		CreatedAt: time.Now().AddDate(0, 0, -7),
	}
	if err := svc.CreateHabit(context.Background(), habit); err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}

	tomorrow := model.DateKey(time.Now().AddDate(0, 0, 1))
	w := performJSON(router, http.MethodPost, "/api/habits/"+habit.HabitID+"/toggle", gin.H{
		"date": tomorrow,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestToggleCompletionHandlerUnknownHabit(t *testing.T) {
	svc := usecase.NewHabitsService(newMemoryHabitStore())
	router := testRouter(svc)

	w := performJSON(router, http.MethodPost, "/api/habits/nope/toggle", gin.H{
		"date": model.DateKey(time.Now()),
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
}

func TestDayOverviewHandler(t *testing.T) {
	svc := usecase.NewHabitsService(newMemoryHabitStore())
	router := testRouter(svc)

	habit := &model.Habit{
		UserID:    "test-user",
		Name:      "Read",
		Schedule:  model.Schedule{Type: model.ScheduleEveryDay},
		CreatedAt: time.Now().AddDate(0, 0, -7),
	}
	if err := svc.CreateHabit(context.Background(), habit); err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}

	w := performJSON(router, http.MethodGet, "/api/overview/day", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data model.DayOverview `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Data.Scheduled != 1 {
		t.Errorf("Scheduled = %d, want 1", resp.Data.Scheduled)
	}
	if len(resp.Data.Habits) != 1 {
		t.Errorf("Habits len = %d, want 1", len(resp.Data.Habits))
	}
	if resp.Data.Habits[0].Status != model.DayMissed {
		t.Errorf("status = %v, want %v", resp.Data.Habits[0].Status, model.DayMissed)
	}
}

func TestDayOverviewHandlerRejectsBadDate(t *testing.T) {
	svc := usecase.NewHabitsService(newMemoryHabitStore())
	router := testRouter(svc)

	w := performJSON(router, http.MethodGet, "/api/overview/day?date=13-01-2024", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

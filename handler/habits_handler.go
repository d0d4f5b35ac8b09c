package handler

import (
	"time"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type createHabitRequest struct {
	Name     string         `json:"name" binding:"required,max=100"`
	Color    string         `json:"color" binding:"omitempty,max=32"`
	Schedule model.Schedule `json:"schedule" binding:"required"`
}

type toggleRequest struct {
	Date string `json:"date" binding:"required"`
}

// parseDateParam reads a YYYY-MM-DD query parameter, defaulting to today
// when absent.
func parseDateParam(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Now(), true
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func CreateHabitHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	habit := &model.Habit{
		UserID:   userID,
		Name:     req.Name,
		Color:    req.Color,
		Schedule: req.Schedule,
	}

	if err := habitsService.CreateHabit(c.Request.Context(), habit); err != nil {
		if err == usecase.ErrInvalidSchedule {
			utils.BadRequest(c, "Invalid schedule type")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, dto.ToHabitResponse(habit))
}

func GetUserHabitsHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	habits, err := habitsService.GetUserHabits(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch habits")
		return
	}

	utils.Success(c, gin.H{"habits": dto.ToHabitResponses(habits)})
}

func GetHabitHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	habit, err := habitsService.GetHabitByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if err == usecase.ErrHabitNotFound {
			utils.NotFound(c, "Habit not found")
			return
		}
		utils.InternalError(c, "Failed to fetch habit")
		return
	}

	utils.Success(c, dto.ToHabitResponse(habit))
}

func DeleteHabitHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := habitsService.DeleteHabit(c.Request.Context(), c.Param("id"), userID); err != nil {
		if err == usecase.ErrHabitNotFound {
			utils.NotFound(c, "Habit not found")
			return
		}
		utils.InternalError(c, "Failed to delete habit")
		return
	}

	utils.Success(c, gin.H{"message": "Habit deleted successfully"})
}

// ToggleCompletionHandler flips one day's completion mark for a habit. The
// request body carries the target date; the server decides whether it is
// toggleable.
func ToggleCompletionHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request: date is required")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		utils.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	habit, err := habitsService.ToggleCompletion(c.Request.Context(), c.Param("id"), userID, date, time.Now())
	if err != nil {
		switch err {
		case usecase.ErrHabitNotFound:
			utils.NotFound(c, "Habit not found")
		case usecase.ErrFutureDate:
			utils.BadRequest(c, "Cannot toggle a future date")
		case usecase.ErrNotScheduled:
			utils.BadRequest(c, "Habit is not scheduled on this date")
		default:
			utils.InternalError(c, "Failed to update habit")
		}
		return
	}

	utils.Success(c, dto.ToHabitResponse(habit))
}

// HabitProgressHandler aggregates one habit over an arbitrary date range,
// given as from/to query parameters. Defaults to the habit's sprint window.
func HabitProgressHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	habit, err := habitsService.GetHabitByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if err == usecase.ErrHabitNotFound {
			utils.NotFound(c, "Habit not found")
			return
		}
		utils.InternalError(c, "Failed to fetch habit")
		return
	}

	from, to := usecase.SprintBounds(habit)
	if raw := c.Query("from"); raw != "" {
		from, err = time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			utils.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
			return
		}
	}
	if raw := c.Query("to"); raw != "" {
		to, err = time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			utils.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
			return
		}
	}
	if to.Before(from) {
		utils.BadRequest(c, "Range end precedes range start")
		return
	}

	progress := usecase.ComputeProgress(habit, from, to, time.Now())

	utils.Success(c, dto.HabitProgressResponse{
		Habit: dto.ToHabitResponse(habit),
		Range: dto.ProgressRange{
			From: model.DateKey(usecase.DayFloor(from)),
			To:   model.DateKey(usecase.DayFloor(to)),
		},
		Progress: progress,
	})
}

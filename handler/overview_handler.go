package handler

import (
	"time"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// The overview handlers share one shape: load every habit the user has,
// then hand the slice to the matching rollup builder. All period math
// happens in the usecase layer.

func DayOverviewHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	date, ok := parseDateParam(c, "date")
	if !ok {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	habits, err := habitsService.GetUserHabits(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch habits")
		return
	}

	utils.Success(c, usecase.BuildDayOverview(habits, date, time.Now()))
}

func WeekOverviewHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	date, ok := parseDateParam(c, "date")
	if !ok {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	habits, err := habitsService.GetUserHabits(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch habits")
		return
	}

	utils.Success(c, usecase.BuildWeekOverview(habits, date, time.Now()))
}

func MonthOverviewHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	date, ok := parseDateParam(c, "date")
	if !ok {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	habits, err := habitsService.GetUserHabits(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch habits")
		return
	}

	utils.Success(c, usecase.BuildMonthOverview(habits, date, time.Now()))
}

func SprintOverviewHandler(c *gin.Context, habitsService *usecase.HabitsService) {
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

	utils.Success(c, usecase.BuildSprintOverview(habits, time.Now()))
}

func YearOverviewHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	date, ok := parseDateParam(c, "date")
	if !ok {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	habits, err := habitsService.GetUserHabits(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch habits")
		return
	}

	utils.Success(c, usecase.BuildYearOverview(habits, date, time.Now()))
}

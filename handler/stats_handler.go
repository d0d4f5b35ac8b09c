package handler

import (
	"math"
	"time"

	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// UserStatsHandler summarizes the account: habit aggregates plus session
// activity.
func UserStatsHandler(c *gin.Context, userService *usecase.UserService, habitsService *usecase.HabitsService, sessionRepo *repository.SessionRepo) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := userService.FindUser(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}
	if user == nil {
		utils.NotFound(c, "User not found")
		return
	}

	habits, err := habitsService.GetUserHabits(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch habits")
		return
	}

	var stats model.UserStats
	stats.HabitStats.Total = len(habits)
	now := time.Now()
	percentSum := 0
	for _, h := range habits {
		stats.HabitStats.TotalCompletions += h.TotalCompletions
		p := usecase.SprintProgress(h, now)
		percentSum += p.Percentage
		if p.BestStreak > stats.HabitStats.BestStreak {
			stats.HabitStats.BestStreak = p.BestStreak
		}
	}
	if len(habits) > 0 {
		stats.HabitStats.AveragePercentage = int(math.Round(float64(percentSum) / float64(len(habits))))
	}

	stats.ActivityStats.AccountCreated = user.CreatedAt
	stats.ActivityStats.LastActive = now

	sessions, err := sessionRepo.GetUserActiveSessions(userID)
	if err == nil {
		stats.ActivityStats.TotalSessions = len(sessions)
		if len(sessions) > 0 {
			stats.ActivityStats.LastActive = sessions[0].LastActivityAt
		}
	}

	utils.Success(c, stats)
}

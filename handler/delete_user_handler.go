package handler

import (
	"log"

	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type deleteUserRequest struct {
	Password string `json:"password" binding:"required"`
}

// DeleteUserHandler removes the account after re-verifying the password.
// Habits and sessions are deleted alongside the user document.
func DeleteUserHandler(c *gin.Context, userService *usecase.UserService, habitsService *usecase.HabitsService, sessionRepo *repository.SessionRepo) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req deleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request: password is required")
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

	match, err := services.VerifyPassword(user.Password, req.Password)
	if err != nil || !match {
		utils.Unauthorized(c, "Incorrect password")
		return
	}

	deleted, err := habitsService.DeleteAllUserHabits(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to delete user data")
		return
	}
	log.Printf("Deleted %d habits for user %s", deleted, userID)

	if _, err := sessionRepo.EndAllUserSessions(userID); err != nil {
		log.Printf("Failed to end sessions for deleted user: %v", err)
	}

	if _, err := userService.UsersRepo.DeleteUserByID(c.Request.Context(), userID); err != nil {
		utils.InternalError(c, "Failed to delete user")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)
	utils.Success(c, gin.H{"message": "Account deleted successfully"})
}

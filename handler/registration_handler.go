package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var req model.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
	}

	if err := userService.CreateUser(c.Request.Context(), user, req.Password); err != nil {
		if err.Error() == "username already exists" {
			utils.TrackAuthAttempt("failure", "registration")
			utils.Conflict(c, "Username already exists")
			return
		}
		utils.TrackAuthAttempt("failure", "registration")
		utils.InternalError(c, "Failed to create user")
		return
	}

	accessToken, refreshToken, err := generateTokenPair(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	utils.TrackAuthAttempt("success", "registration")
	utils.Created(c, gin.H{
		"username":      user.Username,
		"token":         accessToken,
		"refresh_token": refreshToken,
	})
}

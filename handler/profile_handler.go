package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,password"`
}

func GetProfileHandler(c *gin.Context, userService *usecase.UserService) {
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

	links := map[string]dto.UserLink{
		"self":            {Href: "/api/profile", Method: "GET"},
		"habits":          {Href: "/api/habits", Method: "GET"},
		"change_password": {Href: "/api/profile/password", Method: "POST"},
		"sessions":        {Href: "/api/sessions", Method: "GET"},
	}

	utils.Success(c, dto.ToUserProfileResponse(user, links))
}

func ChangePasswordHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	if req.CurrentPassword == req.NewPassword {
		utils.BadRequest(c, "New password must differ from the current one")
		return
	}

	if err := userService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		if err.Error() == "incorrect password" {
			utils.Unauthorized(c, "Incorrect password")
			return
		}
		utils.InternalError(c, "Failed to change password")
		return
	}

	utils.Success(c, gin.H{"message": "Password changed successfully"})
}

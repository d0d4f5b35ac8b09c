package handler

import (
	"log"

	"main/middleware"
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

// MaxActiveSessions caps concurrent device sessions per user; the stalest
// one is ended when a login would exceed it.
const MaxActiveSessions = 5

func generateTokenPair(userID string) (string, string, error) {
	accessToken, err := services.GenerateToken(userID)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := services.GenerateRefreshToken(userID)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// verifyTwoFactor checks a TOTP code, falling back to the stored recovery
// codes. A matched recovery code is consumed.
func verifyTwoFactor(c *gin.Context, userService *usecase.UserService, user *model.User, code string) bool {
	if totp.Validate(code, user.TwoFactorSecret) {
		return true
	}

	hashed := utils.HashString(code)
	for i, stored := range user.RecoveryCodes {
		if stored != hashed {
			continue
		}
		remaining := append([]string{}, user.RecoveryCodes[:i]...)
		remaining = append(remaining, user.RecoveryCodes[i+1:]...)
		if err := userService.UsersRepo.UpdateRecoveryCodes(c.Request.Context(), user.UserID, remaining); err != nil {
			log.Printf("Failed to consume recovery code: %v", err)
		}
		return true
	}
	return false
}

func LoginHandler(c *gin.Context, userService *usecase.UserService, sessionRepo middleware.SessionRepository) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := userService.FindUserByUsername(c.Request.Context(), req.Username)
	if err != nil || user == nil {
		utils.TrackAuthAttempt("failure", "login")
		utils.Unauthorized(c, "Invalid username or password")
		return
	}

	match, err := services.VerifyPassword(user.Password, req.Password)
	if err != nil || !match {
		utils.TrackAuthAttempt("failure", "login")
		utils.Unauthorized(c, "Invalid username or password")
		return
	}

	if user.TwoFactorEnabled {
		if req.TwoFactorCode == "" {
			utils.Success(c, gin.H{"two_factor_required": true})
			return
		}
		if !verifyTwoFactor(c, userService, user, req.TwoFactorCode) {
			utils.TrackAuthAttempt("failure", "2fa")
			utils.Unauthorized(c, "Invalid two-factor code")
			return
		}
	}

	count, err := sessionRepo.CountActiveSessions(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to check active sessions")
		return
	}
	if count >= MaxActiveSessions {
		if err := sessionRepo.EndLeastActiveSession(user.UserID); err != nil {
			utils.InternalError(c, "Failed to manage sessions")
			return
		}
	}

	session, err := middleware.CreateSession(c, user.UserID, sessionRepo)
	if err != nil {
		utils.InternalError(c, "Failed to create session")
		return
	}

	accessToken, refreshToken, err := generateTokenPair(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	utils.TrackAuthAttempt("success", "login")
	utils.Success(c, gin.H{
		"token":         accessToken,
		"refresh_token": refreshToken,
		"session_id":    session.SessionID,
		"username":      user.Username,
	})
}

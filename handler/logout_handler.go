package handler

import (
	"log"
	"strings"

	"main/middleware"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// LogoutHandler blacklists the presented access token and ends the device
// session, clearing its cookie.
func LogoutHandler(c *gin.Context, sessionRepo middleware.SessionRepository) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	if tokenString != "" && services.TokenBlacklist != nil {
		if err := services.TokenBlacklist.BlacklistToken(tokenString); err != nil {
			log.Printf("Failed to blacklist token: %v", err)
		}
	}

	if sessionID, err := c.Cookie("session_id"); err == nil && sessionID != "" {
		if session, err := sessionRepo.GetSession(sessionID); err == nil && session != nil {
			session.IsActive = false
			if err := sessionRepo.UpdateSession(session); err != nil {
				log.Printf("Failed to end session: %v", err)
			}
		}
		c.SetCookie("session_id", "", -1, "/", "", true, true)
	}

	utils.Success(c, gin.H{"message": "Logged out successfully"})
}

package handler

import (
	"main/dto"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// GetActiveSessionsHandler lists the user's active device sessions, most
// recently active first.
func GetActiveSessionsHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	sessions, err := sessionRepo.GetUserActiveSessions(userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}

	currentSessionID, _ := c.Cookie("session_id")

	utils.Success(c, gin.H{
		"sessions": dto.ToSessionResponses(sessions, currentSessionID),
		"count":    len(sessions),
	})
}

// LogoutAllSessionsHandler ends every active session for the user,
// including the current one.
func LogoutAllSessionsHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	ended, err := sessionRepo.EndAllUserSessions(userID)
	if err != nil {
		utils.InternalError(c, "Failed to end sessions")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)
	utils.Success(c, gin.H{
		"message":        "All sessions ended",
		"sessions_ended": ended,
	})
}

// EndSessionHandler ends one session by ID, provided it belongs to the
// requesting user.
func EndSessionHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	sessionID := c.Param("id")
	session, err := sessionRepo.GetSession(sessionID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch session")
		return
	}
	if session == nil || session.UserID != userID {
		utils.NotFound(c, "Session not found")
		return
	}

	session.IsActive = false
	if err := sessionRepo.UpdateSession(session); err != nil {
		utils.InternalError(c, "Failed to end session")
		return
	}

	if current, cookieErr := c.Cookie("session_id"); cookieErr == nil && current == sessionID {
		c.SetCookie("session_id", "", -1, "/", "", true, true)
	}

	utils.Success(c, gin.H{"message": "Session ended"})
}

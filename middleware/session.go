package middleware

import (
	"fmt"
	"time"

	"main/model"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionRepository is the session persistence surface the middleware
// needs; implemented by repository.SessionRepo.
type SessionRepository interface {
	CreateSession(*model.Session) error
	GetSession(string) (*model.Session, error)
	UpdateSession(*model.Session) error
	DeleteSession(string) error
	CountActiveSessions(string) (int, error)
	EndLeastActiveSession(string) error
}

// Sessions idle longer than this are deactivated on next contact.
const sessionInactivityTimeout = 48 * time.Hour

func SessionMiddleware(sessionRepo SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie("session_id")
		if err != nil {
			c.Next()
			return
		}

		session, err := sessionRepo.GetSession(sessionID)
		if err != nil || session == nil || !session.IsActive {
			c.SetCookie("session_id", "", -1, "/", "", true, true)
			c.Next()
			return
		}

		if time.Since(session.LastActivityAt) > sessionInactivityTimeout {
			session.IsActive = false
			sessionRepo.UpdateSession(session)
			c.SetCookie("session_id", "", -1, "/", "", true, true)
			c.Next()
			return
		}

		session.LastActivityAt = time.Now()
		sessionRepo.UpdateSession(session)

		c.Set("session", session)
		c.Next()
	}
}

// CreateSession records a new device session and sets its cookie.
func CreateSession(c *gin.Context, userID string, sessionRepo SessionRepository) (*model.Session, error) {
	userAgent := c.Request.UserAgent()
	browser, os, device := utils.ParseUserAgent(userAgent)

	duration := utils.GetEnvAsDuration("SESSION_DURATION", 24*time.Hour)

	session := &model.Session{
		SessionID:      uuid.New().String(),
		UserID:         userID,
		DisplayName:    utils.GenerateSessionName(userAgent),
		DeviceInfo:     fmt.Sprintf("%s on %s (%s)", browser, os, device),
		CreatedAt:      time.Now(),
		ExpiresAt:      time.Now().Add(duration),
		LastActivityAt: time.Now(),
		IPAddress:      c.ClientIP(),
		IsActive:       true,
	}

	if err := sessionRepo.CreateSession(session); err != nil {
		return nil, err
	}

	c.SetCookie(
		"session_id",
		session.SessionID,
		int(duration.Seconds()),
		"/",
		"",
		true,
		true,
	)

	return session, nil
}

package dto

import (
	"time"

	"main/model"
)

type UserLink struct {
	Href   string `json:"href"`
	Method string `json:"method,omitempty"` // Optional: GET, POST, PUT, DELETE, PATCH
}

type UserProfileResponse struct {
	Username         string              `json:"username"`
	Email            string              `json:"email"`
	CreatedAt        time.Time           `json:"created_at"`
	TwoFactorEnabled bool                `json:"two_factor_enabled"`
	Links            map[string]UserLink `json:"_links,omitempty"` // HAL UserLinks
}

func ToUserProfileResponse(user *model.User, links map[string]UserLink) UserProfileResponse {
	return UserProfileResponse{
		Username:         user.Username,
		Email:            user.Email,
		CreatedAt:        user.CreatedAt,
		TwoFactorEnabled: user.TwoFactorEnabled,
		Links:            links,
	}
}

type SessionResponse struct {
	SessionID      string    `json:"session_id"`
	DisplayName    string    `json:"display_name"`
	DeviceInfo     string    `json:"device_info"`
	IPAddress      string    `json:"ip_address"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	IsCurrent      bool      `json:"is_current"`
}

func ToSessionResponse(session *model.Session, currentSessionID string) SessionResponse {
	return SessionResponse{
		SessionID:      session.SessionID,
		DisplayName:    session.DisplayName,
		DeviceInfo:     session.DeviceInfo,
		IPAddress:      session.IPAddress,
		CreatedAt:      session.CreatedAt,
		LastActivityAt: session.LastActivityAt,
		IsCurrent:      session.SessionID == currentSessionID,
	}
}

func ToSessionResponses(sessions []*model.Session, currentSessionID string) []SessionResponse {
	responses := make([]SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = ToSessionResponse(session, currentSessionID)
	}
	return responses
}

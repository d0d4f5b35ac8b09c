package handler

import (
	"fmt"
	"log"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenHandler exchanges a valid refresh token for a fresh token
// pair. The old refresh token is blacklisted so it cannot be replayed.
func RefreshTokenHandler(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request: refresh_token is required")
		return
	}

	if services.IsTokenBlacklisted(req.RefreshToken) {
		utils.Unauthorized(c, "Token has been invalidated")
		return
	}

	token, err := jwt.Parse(req.RefreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		utils.Unauthorized(c, "Invalid token claims")
		return
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		utils.Unauthorized(c, "Not a refresh token")
		return
	}
	if issuer, _ := claims["iss"].(string); issuer != services.TokenIssuer {
		utils.Unauthorized(c, "Invalid token issuer")
		return
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		utils.Unauthorized(c, "Invalid token claims")
		return
	}

	accessToken, refreshToken, err := generateTokenPair(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	if services.TokenBlacklist != nil {
		if err := services.TokenBlacklist.BlacklistToken(req.RefreshToken); err != nil {
			log.Printf("Failed to blacklist rotated refresh token: %v", err)
		}
	}

	utils.Success(c, gin.H{
		"token":         accessToken,
		"refresh_token": refreshToken,
	})
}

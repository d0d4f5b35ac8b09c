package handler

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

type twoFactorCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// Setup2FAHandler generates a TOTP secret for the user. The secret is only
// persisted once Enable2FAHandler verifies a code against it, so the
// provisioning URL must be confirmed from an authenticator app first.
func Setup2FAHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := userService.FindUser(c.Request.Context(), userID)
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}
	if user.TwoFactorEnabled {
		utils.Conflict(c, "Two-factor authentication is already enabled")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "strive",
		AccountName: user.Username,
	})
	if err != nil {
		utils.InternalError(c, "Failed to generate secret")
		return
	}

	utils.Success(c, gin.H{
		"secret":  key.Secret(),
		"qr_url":  key.URL(),
		"message": "Verify a code to enable two-factor authentication",
	})
}

type enable2FARequest struct {
	Secret string `json:"secret" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

// Enable2FAHandler verifies the first TOTP code, persists the secret and
// returns one-time recovery codes. The plain codes appear only in this
// response; only their hashes are stored.
func Enable2FAHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req enable2FARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request: secret and code are required")
		return
	}

	if !totp.Validate(req.Code, req.Secret) {
		utils.TrackAuthAttempt("failure", "2fa_enable")
		utils.BadRequest(c, "Invalid verification code")
		return
	}

	recoveryCodes, err := utils.GenerateRecoveryCodes()
	if err != nil {
		utils.InternalError(c, "Failed to generate recovery codes")
		return
	}

	if err := userService.UsersRepo.Enable2FAWithRecoveryCodes(c.Request.Context(), userID, req.Secret, utils.HashRecoveryCodes(recoveryCodes)); err != nil {
		utils.InternalError(c, "Failed to enable two-factor authentication")
		return
	}

	utils.TrackAuthAttempt("success", "2fa_enable")
	utils.Success(c, gin.H{
		"message":        "Two-factor authentication enabled",
		"recovery_codes": recoveryCodes,
	})
}

// Disable2FAHandler turns off 2FA after verifying a current code.
func Disable2FAHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req twoFactorCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request: code is required")
		return
	}

	user, err := userService.FindUser(c.Request.Context(), userID)
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}
	if !user.TwoFactorEnabled {
		utils.BadRequest(c, "Two-factor authentication is not enabled")
		return
	}

	if !totp.Validate(req.Code, user.TwoFactorSecret) {
		utils.TrackAuthAttempt("failure", "2fa_disable")
		utils.Unauthorized(c, "Invalid verification code")
		return
	}

	if err := userService.UsersRepo.Disable2FA(c.Request.Context(), userID); err != nil {
		utils.InternalError(c, "Failed to disable two-factor authentication")
		return
	}

	utils.TrackAuthAttempt("success", "2fa_disable")
	utils.Success(c, gin.H{"message": "Two-factor authentication disabled"})
}

// RegenerateRecoveryCodesHandler replaces the recovery code set after
// verifying a current TOTP code.
func RegenerateRecoveryCodesHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req twoFactorCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request: code is required")
		return
	}

	user, err := userService.FindUser(c.Request.Context(), userID)
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}
	if !user.TwoFactorEnabled {
		utils.BadRequest(c, "Two-factor authentication is not enabled")
		return
	}

	if !totp.Validate(req.Code, user.TwoFactorSecret) {
		utils.Unauthorized(c, "Invalid verification code")
		return
	}

	recoveryCodes, err := utils.GenerateRecoveryCodes()
	if err != nil {
		utils.InternalError(c, "Failed to generate recovery codes")
		return
	}

	if err := userService.UsersRepo.UpdateRecoveryCodes(c.Request.Context(), userID, utils.HashRecoveryCodes(recoveryCodes)); err != nil {
		utils.InternalError(c, "Failed to store recovery codes")
		return
	}

	utils.Success(c, gin.H{"recovery_codes": recoveryCodes})
}

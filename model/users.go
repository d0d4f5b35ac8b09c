package model

import "time"

type User struct {
	UserID             string    `bson:"user_id" json:"user_id"`
	Username           string    `bson:"username" json:"username"`
	Email              string    `bson:"email" json:"email"`
	Password           string    `bson:"password" json:"-"` // argon2id hash, never serialized
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
	LastPasswordChange time.Time `bson:"last_password_change,omitempty" json:"-"`
	TwoFactorEnabled   bool      `bson:"two_factor_enabled" json:"two_factor_enabled"`
	TwoFactorSecret    string    `bson:"two_factor_secret,omitempty" json:"-"`
	RecoveryCodes      []string  `bson:"recovery_codes,omitempty" json:"-"`
}

type RegistrationRequest struct {
	Username string `json:"username" binding:"required,min=4,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
}

type LoginRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required"`
	TwoFactorCode string `json:"two_factor_code,omitempty"`
}

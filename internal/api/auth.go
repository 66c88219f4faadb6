// File: internal/api/auth.go
package api

import "time"

// LoginRequest 的 Username 可填帳號或 email
// swagger:model api.LoginRequest
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required" example:"admin"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type" example:"bearer"`
	ExpiresAt   time.Time `json:"expires_at"`
	Message     string    `json:"message" example:"Login successful"`
}

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Username        string `json:"username" form:"username" validate:"required,min=3,max=50" example:"admin"`
	Email           string `json:"email" form:"email" validate:"required,email" example:"admin@gym.test"`
	Password        string `json:"password" form:"password" validate:"required,min=6,max=72" example:"Secret123!"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required" example:"Secret123!"`
}

// swagger:model api.ResetPasswordRequest
type ResetPasswordRequest struct {
	Email              string `json:"email" form:"email" validate:"required,email" example:"admin@gym.test"`
	OldPassword        string `json:"old_password" form:"old_password" validate:"required" example:"OldSecret123!"`
	NewPassword        string `json:"new_password" form:"new_password" validate:"required,min=6,max=72" example:"NewSecret456!"`
	ConfirmNewPassword string `json:"confirm_new_password" form:"confirm_new_password" validate:"required" example:"NewSecret456!"`
}

// File: internal/handler/auth/gate.go
package auth

import (
	"context"

	"gym-admin/internal/model"
	"gym-admin/internal/service"
)

// Gate 由 *service.Gate 實作
type Gate interface {
	Login(ctx context.Context, identifier, password string) (*service.LoginResult, error)
	Register(ctx context.Context, in service.RegisterInput) (*model.Admin, error)
	ResetPassword(ctx context.Context, email, oldPassword, newPassword, confirmPassword string) error
}

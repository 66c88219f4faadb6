// File: internal/service/gate.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gym-admin/internal/database"
	"gym-admin/internal/model"
	"gym-admin/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// ErrAuth 是所有認證失敗的共同類別
var ErrAuth = errors.New("authentication failed")

var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuth)
	ErrAccountNotFound    = fmt.Errorf("%w: account not found", ErrAuth)
	ErrIncorrectPassword  = fmt.Errorf("%w: incorrect current password", ErrAuth)
	ErrPasswordMismatch   = fmt.Errorf("%w: passwords do not match", ErrAuth)
	ErrAccountExists      = fmt.Errorf("%w: username or email already registered", ErrAuth)
)

// ErrPasswordTooLong 是輸入錯誤，不屬於 ErrAuth；bcrypt 只接受 72 bytes 以內
var ErrPasswordTooLong = fmt.Errorf("password exceeds %d bytes", MaxPasswordBytes)

// 以下變數供測試替換
var (
	getAdminByLogin     = store.GetAdminByLogin
	getAdminByEmail     = store.GetAdminByEmail
	createAdmin         = store.CreateAdmin
	updateAdminPassword = store.UpdateAdminPassword
)

// Gate 負責登入、註冊、重設密碼與 token 驗證
type Gate struct {
	db     database.DB
	tokens *Tokens
	cost   int
	logger *slog.Logger
}

func NewGate(db database.DB, tokens *Tokens, cost int, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{db: db, tokens: tokens, cost: cost, logger: logger}
}

// LoginResult 登入成功後回傳的 token
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     *model.Admin
}

// Login 以帳號或 email 登入；帳號不存在與密碼錯誤一律回傳 ErrInvalidCredentials
func (g *Gate) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	admin, err := getAdminByLogin(ctx, g.db, identifier)
	if errors.Is(err, store.ErrNotFound) {
		g.logger.InfoContext(ctx, "login rejected", "reason", "unknown account")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !VerifyPassword(password, admin.PasswordHash) {
		g.logger.InfoContext(ctx, "login rejected", "reason", "bad password", "admin_id", admin.ID)
		return nil, ErrInvalidCredentials
	}

	token, exp, err := g.tokens.Issue(admin.Username, admin.ID)
	if err != nil {
		return nil, err
	}
	g.logger.InfoContext(ctx, "login succeeded", "admin_id", admin.ID)
	return &LoginResult{Token: token, ExpiresAt: exp, Admin: admin}, nil
}

// RegisterInput 新增管理員所需欄位
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

func (g *Gate) Register(ctx context.Context, in RegisterInput) (*model.Admin, error) {
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	hash, err := g.hash(in.Password)
	if err != nil {
		return nil, err
	}
	admin, err := createAdmin(ctx, g.db, &model.Admin{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrConflict) {
		return nil, ErrAccountExists
	}
	if err != nil {
		return nil, err
	}
	g.logger.InfoContext(ctx, "admin registered", "admin_id", admin.ID)
	return admin, nil
}

// ResetPassword 依序檢查帳號、舊密碼、新密碼確認，全部通過才覆寫哈希
func (g *Gate) ResetPassword(ctx context.Context, email, oldPassword, newPassword, confirmPassword string) error {
	admin, err := getAdminByEmail(ctx, g.db, email)
	if errors.Is(err, store.ErrNotFound) {
		return ErrAccountNotFound
	}
	if err != nil {
		return err
	}
	if !VerifyPassword(oldPassword, admin.PasswordHash) {
		g.logger.InfoContext(ctx, "password reset rejected", "reason", "bad password", "admin_id", admin.ID)
		return ErrIncorrectPassword
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	hash, err := g.hash(newPassword)
	if err != nil {
		return err
	}
	if err := updateAdminPassword(ctx, g.db, admin.ID, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	g.logger.InfoContext(ctx, "password reset", "admin_id", admin.ID)
	return nil
}

// hash 以位元組計算長度，多位元組字元可能在字數未滿 72 時就超過上限
func (g *Gate) hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	h, err := HashPassword(password, g.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return h, nil
}

// Authenticate 驗證 bearer token
func (g *Gate) Authenticate(token string) (*Claims, bool) {
	return g.tokens.Verify(token)
}

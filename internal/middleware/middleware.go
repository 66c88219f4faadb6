package middleware

import (
	"net/http"
	"strings"

	"gym-admin/internal/api"
	"gym-admin/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// Authenticator 由 *service.Gate 實作
type Authenticator interface {
	Authenticate(token string) (*service.Claims, bool)
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}

func unauthorized(c echo.Context, msg string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Bearer`)
	return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: msg})
}

// RequireAuth 驗證 Authorization: Bearer <token>，成功後把 claims 放進 context。
// 過期、偽造、格式錯誤一律回傳相同的 401。
func RequireAuth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, ok := bearerToken(c)
			if !ok {
				return unauthorized(c, "missing bearer token")
			}
			claims, ok := auth.Authenticate(tok)
			if !ok {
				return unauthorized(c, "invalid or expired token")
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom 取出 RequireAuth 放入的 claims
func ClaimsFrom(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.Claims)
	return claims, ok && claims != nil
}

// File: internal/handler/request.go
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"gym-admin/internal/api"
	"gym-admin/internal/middleware"

	"github.com/labstack/echo/v4"
)

// BindRequest 先 Bind 再交給 echo.Validator，錯誤訊息可直接回給呼叫端
func BindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return fmt.Errorf("無效的請求資料: %v", he.Message)
		}
		return fmt.Errorf("無效的請求資料: %v", err)
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}

// ParamID 解析路徑上的正整數 id
func ParamID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// ParseDate 解析 YYYY-MM-DD，結果為 UTC 午夜
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(api.DateLayout, s, time.UTC)
}

// ParseOptionalDate nil 或空字串回傳 nil
func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// BadRequest 回傳 400
func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msg})
}

// NotFound 回傳 404
func NotFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: msg})
}

// InternalError 記錄錯誤細節，只回傳通用訊息
func InternalError(c echo.Context, err error) error {
	slog.ErrorContext(c.Request().Context(), "request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
}

// Audit 記錄一筆資料異動，帶上 token 中的管理員帳號
func Audit(c echo.Context, msg string, args ...any) {
	if claims, ok := middleware.ClaimsFrom(c); ok {
		args = append(args, "admin", claims.Subject, "admin_id", claims.AdminID)
	}
	slog.InfoContext(c.Request().Context(), msg, args...)
}

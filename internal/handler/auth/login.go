// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"gym-admin/internal/api"
	"gym-admin/internal/handler"
	"gym-admin/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用帳號(或 email)/密碼驗證並回傳 JWT
// @Summary     管理員登入
// @Description 帳號不存在或密碼錯誤一律回傳 401 invalid credentials
// @Tags        auth
// @Accept      json,x-www-form-urlencoded
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(gate Gate) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := handler.BindRequest(c, &req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		res, err := gate.Login(c.Request().Context(), req.Username, req.Password)
		if errors.Is(err, service.ErrAuth) {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}
		if err != nil {
			return handler.InternalError(c, err)
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: res.Token,
			TokenType:   "bearer",
			ExpiresAt:   res.ExpiresAt,
			Message:     "Login successful",
		})
	}
}

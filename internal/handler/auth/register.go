// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"

	"gym-admin/internal/api"
	"gym-admin/internal/handler"
	"gym-admin/internal/service"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立管理員帳號
// @Summary     註冊管理員
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(gate Gate) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := handler.BindRequest(c, &req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		_, err := gate.Register(c.Request().Context(), service.RegisterInput{
			Username:        req.Username,
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		})
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			return handler.BadRequest(c, "passwords do not match")
		case errors.Is(err, service.ErrPasswordTooLong):
			return handler.BadRequest(c, "password must be at most 72 bytes")
		case errors.Is(err, service.ErrAccountExists):
			return handler.BadRequest(c, "username or email already registered")
		case err != nil:
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "Registration successful"})
	}
}

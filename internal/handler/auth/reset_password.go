// File: internal/handler/auth/reset_password.go
package auth

import (
	"errors"
	"net/http"

	"gym-admin/internal/api"
	"gym-admin/internal/handler"
	"gym-admin/internal/service"

	"github.com/labstack/echo/v4"
)

// ResetPasswordHandler 以 email + 舊密碼重設密碼，失敗時回傳具體原因
// @Summary     重設密碼
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.ResetPasswordRequest true "重設資料"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /reset-password [post]
func ResetPasswordHandler(gate Gate) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ResetPasswordRequest
		if err := handler.BindRequest(c, &req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		err := gate.ResetPassword(c.Request().Context(), req.Email, req.OldPassword, req.NewPassword, req.ConfirmNewPassword)
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			return handler.NotFound(c, "account not found")
		case errors.Is(err, service.ErrIncorrectPassword):
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "incorrect current password"})
		case errors.Is(err, service.ErrPasswordTooLong):
			return handler.BadRequest(c, "password must be at most 72 bytes")
		case errors.Is(err, service.ErrPasswordMismatch):
			return handler.BadRequest(c, "passwords do not match")
		case err != nil:
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Password reset successful"})
	}
}

// File: internal/handler/members/status.go
package members

import (
	"errors"
	"net/http"

	"gym-admin/internal/api"
	"gym-admin/internal/database"
	"gym-admin/internal/handler"
	"gym-admin/internal/model"
	"gym-admin/internal/status"
	"gym-admin/internal/store"

	"github.com/labstack/echo/v4"
)

// MemberStatusHandler 回傳單一會員的會籍狀態與最新費用狀態
// @Summary  會員狀態
// @Tags     members
// @Produce  json
// @Param    id  path     int true "會員 ID"
// @Success  200 {object} api.MemberStatusResponse
// @Failure  404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /members/{id}/status [get]
func MemberStatusHandler(db database.DB, horizonDays int) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.BadRequest(c, err.Error())
		}
		ctx := c.Request().Context()
		m, err := getMember(ctx, db, id)
		if errors.Is(err, store.ErrNotFound) {
			return handler.NotFound(c, msgMemberNotFound)
		}
		if err != nil {
			return handler.InternalError(c, err)
		}
		// 沒有任何費用紀錄時視為 pending
		var fees []model.Fee
		latest, err := getLatestFee(ctx, db, id)
		switch {
		case err == nil:
			fees = []model.Fee{*latest}
		case !errors.Is(err, store.ErrNotFound):
			return handler.InternalError(c, err)
		}

		today := status.Day(timeNow().UTC())
		entry, feeStatus := status.Entry(*m, fees, today)
		return c.JSON(http.StatusOK, api.MemberStatusResponse{
			MemberID:   m.ID,
			Name:       m.Name,
			EndDate:    m.EndDate.Format(api.DateLayout),
			Membership: string(status.ClassifyMembership(*m, today, horizonDays)),
			FeeStatus:  string(feeStatus),
			Amount:     entry.Amount,
			DueDate:    entry.DueDate,
		})
	}
}

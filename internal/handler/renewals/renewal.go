// File: internal/handler/renewals/renewal.go
package renewals

import (
	"net/http"
	"strconv"
	"time"

	"gym-admin/internal/api"
	"gym-admin/internal/database"
	"gym-admin/internal/handler"
	"gym-admin/internal/model"
	"gym-admin/internal/status"
	"gym-admin/internal/store"

	"github.com/labstack/echo/v4"
)

// 以下變數供測試替換
var (
	listMembers = store.ListMembers
	timeNow     = time.Now
)

// ?days 的允許範圍
const (
	MinDays = 1
	MaxDays = 30
)

func members(c echo.Context, db database.DB, pick func([]model.Member, time.Time) []model.Member) error {
	ms, err := listMembers(c.Request().Context(), db)
	if err != nil {
		return handler.InternalError(c, err)
	}
	today := status.Day(timeNow().UTC())
	return c.JSON(http.StatusOK, api.NewMemberResponses(pick(ms, today)))
}

// UpcomingHandler 列出 days 天內到期 (含今天) 的會員
// @Summary  即將到期會員
// @Tags     renewals
// @Produce  json
// @Param    days query    int false "天數 1-30"
// @Success  200  {array}  api.MemberResponse
// @Failure  400  {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /renewals/upcoming [get]
func UpcomingHandler(db database.DB, defaultDays int) echo.HandlerFunc {
	return func(c echo.Context) error {
		days := defaultDays
		if raw := c.QueryParam("days"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < MinDays || n > MaxDays {
				return handler.BadRequest(c, "days must be between 1 and 30")
			}
			days = n
		}
		return members(c, db, func(ms []model.Member, today time.Time) []model.Member {
			return status.InWindow(ms, today, days, status.ExpiringSoon)
		})
	}
}

// ExpiredHandler 列出已過期會員
// @Summary  已過期會員
// @Tags     renewals
// @Produce  json
// @Success  200 {array} api.MemberResponse
// @Security BearerAuth
// @Router   /renewals/expired [get]
func ExpiredHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		return members(c, db, func(ms []model.Member, today time.Time) []model.Member {
			return status.InWindow(ms, today, 0, status.Expired)
		})
	}
}

// TodayHandler 列出今天到期的會員
// @Summary  今日到期會員
// @Tags     renewals
// @Produce  json
// @Success  200 {array} api.MemberResponse
// @Security BearerAuth
// @Router   /renewals/today [get]
func TodayHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		return members(c, db, status.EndingOn)
	}
}

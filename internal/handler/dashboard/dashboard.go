// File: internal/handler/dashboard/dashboard.go
package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"gym-admin/internal/cache"
	"gym-admin/internal/database"
	"gym-admin/internal/handler"
	"gym-admin/internal/status"
	"gym-admin/internal/store"

	"github.com/labstack/echo/v4"
)

// 以下變數供測試替換
var (
	listMembers  = store.ListMembers
	listPayments = store.ListPayments
	timeNow      = time.Now
)

// cacheKey 以日期區分，跨日自然失效
func cacheKey(today time.Time) string {
	return "dashboard:" + today.Format(status.DateLayout)
}

// DashboardHandler 回傳儀表板統計。ttl > 0 時先查 Redis，
// cache 讀寫失敗只記 log，仍直接計算。
// @Summary  儀表板
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} status.DashboardStats
// @Failure  401 {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /dashboard [get]
func DashboardHandler(db database.DB, cch cache.Cache, ttl time.Duration, logger *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		now := timeNow().UTC()
		today := status.Day(now)
		key := cacheKey(today)

		if ttl > 0 {
			raw, err := cch.Get(ctx, key).Bytes()
			switch {
			case err == nil:
				var stats status.DashboardStats
				if err := json.Unmarshal(raw, &stats); err == nil {
					return c.JSON(http.StatusOK, stats)
				}
				logger.WarnContext(ctx, "dashboard cache corrupt", "key", key)
			case !cache.IsMiss(err):
				logger.WarnContext(ctx, "dashboard cache get failed", "key", key, "error", err)
			}
		}

		ms, err := listMembers(ctx, db)
		if err != nil {
			return handler.InternalError(c, err)
		}
		monthStart := status.MonthStart(now)
		ps, err := listPayments(ctx, db, store.PaymentFilter{From: &monthStart})
		if err != nil {
			return handler.InternalError(c, err)
		}
		stats := status.AggregateDashboard(ms, ps, today, monthStart)

		if ttl > 0 {
			if raw, err := json.Marshal(stats); err == nil {
				if err := cch.Set(ctx, key, raw, ttl).Err(); err != nil {
					logger.WarnContext(ctx, "dashboard cache set failed", "key", key, "error", err)
				}
			}
		}
		return c.JSON(http.StatusOK, stats)
	}
}

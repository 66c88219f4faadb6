// File: internal/router/router.go
package router

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"gym-admin/internal/api"
	"gym-admin/internal/cache"
	"gym-admin/internal/config"
	"gym-admin/internal/database"
	"gym-admin/internal/handler"
	"gym-admin/internal/handler/auth"
	"gym-admin/internal/handler/dashboard"
	"gym-admin/internal/handler/fees"
	"gym-admin/internal/handler/gyminfo"
	"gym-admin/internal/handler/members"
	"gym-admin/internal/handler/payments"
	"gym-admin/internal/handler/plans"
	"gym-admin/internal/handler/renewals"
	"gym-admin/internal/middleware"
)

// Gate 同時提供登入流程與 token 驗證，由 *service.Gate 實作
type Gate interface {
	auth.Gate
	middleware.Authenticator
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, gate Gate, cfg *config.Config, logger *slog.Logger) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Gym admin API is running"})
	})

	apiGroup := e.Group("/api")

	// 不需登入
	apiGroup.POST("/login", auth.LoginHandler(gate))
	apiGroup.POST("/register", auth.RegisterHandler(gate))
	apiGroup.POST("/reset-password", auth.ResetPasswordHandler(gate))

	// 其餘一律需要 bearer token
	requireAuth := middleware.RequireAuth(gate)
	apiGroup.GET("/ping", handler.PingHandler(db, cch), requireAuth)
	apiGroup.GET("/dashboard", dashboard.DashboardHandler(db, cch, cfg.DashboardCacheTTL(), logger), requireAuth)

	apiMembers := apiGroup.Group("/members", requireAuth)
	apiMembers.GET("", members.ListMembersHandler(db))
	apiMembers.POST("", members.CreateMemberHandler(db))
	apiMembers.GET("/:id", members.GetMemberHandler(db))
	apiMembers.PUT("/:id", members.UpdateMemberHandler(db))
	apiMembers.DELETE("/:id", members.DeleteMemberHandler(db))
	apiMembers.GET("/:id/status", members.MemberStatusHandler(db, cfg.RenewalHorizonDays))

	apiFees := apiGroup.Group("/fees", requireAuth)
	apiFees.GET("", fees.ListFeesHandler(db))
	apiFees.POST("", fees.CreateFeeHandler(db))
	apiFees.GET("/status", fees.FeeStatusHandler(db))

	apiPayments := apiGroup.Group("/payments", requireAuth)
	apiPayments.GET("", payments.ListPaymentsHandler(db))
	apiPayments.POST("", payments.CreatePaymentHandler(db))

	apiPlans := apiGroup.Group("/plans", requireAuth)
	apiPlans.GET("", plans.ListPlansHandler(db))
	apiPlans.POST("", plans.CreatePlanHandler(db))
	apiPlans.PUT("/:id", plans.UpdatePlanHandler(db))
	apiPlans.DELETE("/:id", plans.DeletePlanHandler(db))

	apiRenewals := apiGroup.Group("/renewals", requireAuth)
	apiRenewals.GET("/upcoming", renewals.UpcomingHandler(db, cfg.RenewalHorizonDays))
	apiRenewals.GET("/expired", renewals.ExpiredHandler(db))
	apiRenewals.GET("/today", renewals.TodayHandler(db))

	apiGym := apiGroup.Group("/gym-info", requireAuth)
	apiGym.GET("", gyminfo.GetHandler(db))
	apiGym.POST("", gyminfo.CreateHandler(db))
	apiGym.PUT("", gyminfo.UpdateHandler(db))
}

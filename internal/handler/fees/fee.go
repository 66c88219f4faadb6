// File: internal/handler/fees/fee.go
package fees

import (
	"errors"
	"net/http"
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
	listFees         = store.ListFees
	listFeesByMember = store.ListFeesByMember
	createFee        = store.CreateFee
	listMembers      = store.ListMembers
	timeNow          = time.Now
)

// ListFeesHandler 列出費用紀錄 (寫入時的 status)，可用 member_id 篩選
// @Summary  列出費用
// @Tags     fees
// @Produce  json
// @Param    member_id query    int false "會員 ID"
// @Success  200       {array}  api.FeeResponse
// @Failure  400       {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /fees [get]
func ListFeesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q api.ListFeesQuery
		if err := handler.BindRequest(c, &q); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		var fs []model.Fee
		var err error
		if q.MemberID > 0 {
			fs, err = listFeesByMember(ctx, db, q.MemberID)
		} else {
			fs, err = listFees(ctx, db)
		}
		if err != nil {
			return handler.InternalError(c, err)
		}
		out := make([]api.FeeResponse, 0, len(fs))
		for _, f := range fs {
			out = append(out, api.NewFeeResponse(f))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// CreateFeeHandler 新增費用紀錄，status 預設 pending
// @Summary  新增費用
// @Tags     fees
// @Accept   json
// @Produce  json
// @Param    body body     api.CreateFeeRequest true "費用資料"
// @Success  201  {object} api.FeeResponse
// @Failure  400  {object} api.ErrorResponse
// @Failure  404  {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /fees [post]
func CreateFeeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateFeeRequest
		if err := handler.BindRequest(c, &req); err != nil {
			return handler.BadRequest(c, err.Error())
		}
		paidOn, err := handler.ParseOptionalDate(req.PaidOn)
		if err != nil {
			return handler.BadRequest(c, "invalid paid_on")
		}
		nextDue, err := handler.ParseOptionalDate(req.NextDue)
		if err != nil {
			return handler.BadRequest(c, "invalid next_due")
		}
		st := req.Status
		if st == "" {
			st = model.FeeStatusPending
		}

		f, err := createFee(c.Request().Context(), db, &model.Fee{
			MemberID: req.MemberID,
			Amount:   req.Amount,
			PaidOn:   paidOn,
			NextDue:  nextDue,
			Status:   st,
		})
		if errors.Is(err, store.ErrNotFound) {
			return handler.NotFound(c, "member not found")
		}
		if err != nil {
			return handler.InternalError(c, err)
		}
		handler.Audit(c, "fee created", "fee_id", f.ID, "member_id", f.MemberID)
		return c.JSON(http.StatusCreated, api.NewFeeResponse(*f))
	}
}

// FeeStatusHandler 依每位會員最新一筆費用重新判斷 paid / pending / due
// @Summary  費用狀態摘要
// @Tags     fees
// @Produce  json
// @Success  200 {object} status.FeeSummary
// @Security BearerAuth
// @Router   /fees/status [get]
func FeeStatusHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		ms, err := listMembers(ctx, db)
		if err != nil {
			return handler.InternalError(c, err)
		}
		fs, err := listFees(ctx, db)
		if err != nil {
			return handler.InternalError(c, err)
		}
		today := status.Day(timeNow().UTC())
		return c.JSON(http.StatusOK, status.SummarizeFees(ms, status.GroupByMember(fs), today))
	}
}

// File: internal/handler/payments/payment.go
package payments

import (
	"errors"
	"net/http"

	"gym-admin/internal/api"
	"gym-admin/internal/database"
	"gym-admin/internal/handler"
	"gym-admin/internal/model"
	"gym-admin/internal/store"

	"github.com/labstack/echo/v4"
)

// 以下變數供測試替換
var (
	listPayments  = store.ListPayments
	createPayment = store.CreatePayment
)

// ListPaymentsHandler 依會員與日期區間 (含兩端) 篩選，新到舊排序
// @Summary  列出付款
// @Tags     payments
// @Produce  json
// @Param    member_id  query    int    false "會員 ID"
// @Param    start_date query    string false "起始日 YYYY-MM-DD"
// @Param    end_date   query    string false "結束日 YYYY-MM-DD"
// @Success  200        {array}  api.PaymentResponse
// @Failure  400        {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /payments [get]
func ListPaymentsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q api.ListPaymentsQuery
		if err := handler.BindRequest(c, &q); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		filter := store.PaymentFilter{MemberID: q.MemberID}
		if q.StartDate != "" {
			from, err := handler.ParseDate(q.StartDate)
			if err != nil {
				return handler.BadRequest(c, "invalid start_date")
			}
			filter.From = &from
		}
		if q.EndDate != "" {
			end, err := handler.ParseDate(q.EndDate)
			if err != nil {
				return handler.BadRequest(c, "invalid end_date")
			}
			to := end.AddDate(0, 0, 1)
			filter.To = &to
		}
		if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
			return handler.BadRequest(c, "end_date must not be before start_date")
		}

		ps, err := listPayments(c.Request().Context(), db, filter)
		if err != nil {
			return handler.InternalError(c, err)
		}
		out := make([]api.PaymentResponse, 0, len(ps))
		for _, p := range ps {
			out = append(out, api.NewPaymentResponse(p))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// CreatePaymentHandler 新增付款紀錄，付款時間為寫入當下
// @Summary  新增付款
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    body body     api.CreatePaymentRequest true "付款資料"
// @Success  201  {object} api.PaymentResponse
// @Failure  400  {object} api.ErrorResponse
// @Failure  404  {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /payments [post]
func CreatePaymentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreatePaymentRequest
		if err := handler.BindRequest(c, &req); err != nil {
			return handler.BadRequest(c, err.Error())
		}
		p, err := createPayment(c.Request().Context(), db, &model.Payment{
			MemberID: req.MemberID,
			PlanType: req.PlanType,
			Amount:   req.Amount,
			Method:   req.Method,
			Notes:    req.Notes,
		})
		if errors.Is(err, store.ErrNotFound) {
			return handler.NotFound(c, "member not found")
		}
		if err != nil {
			return handler.InternalError(c, err)
		}
		handler.Audit(c, "payment recorded", "payment_id", p.ID, "member_id", p.MemberID)
		return c.JSON(http.StatusCreated, api.NewPaymentResponse(*p))
	}
}

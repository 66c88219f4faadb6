// File: internal/api/payment.go
package api

import "time"

// swagger:model api.CreatePaymentRequest
type CreatePaymentRequest struct {
	MemberID int     `json:"member_id" validate:"required,gt=0" example:"1"`
	PlanType string  `json:"plan_type" validate:"required" example:"monthly"`
	Amount   float64 `json:"amount" validate:"gt=0" example:"1200"`
	Method   string  `json:"method" validate:"required" example:"cash"`
	Notes    *string `json:"notes"`
}

// ListPaymentsQuery 對應 GET /payments 的查詢參數
type ListPaymentsQuery struct {
	MemberID  int    `query:"member_id" validate:"omitempty,gt=0"`
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// swagger:model api.PaymentResponse
type PaymentResponse struct {
	ID       int       `json:"id"`
	MemberID int       `json:"member_id"`
	PlanType string    `json:"plan_type"`
	Amount   float64   `json:"amount"`
	Method   string    `json:"method"`
	PaidAt   time.Time `json:"paid_at"`
	Notes    *string   `json:"notes"`
}

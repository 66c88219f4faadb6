// File: internal/api/fee.go
package api

// swagger:model api.CreateFeeRequest
type CreateFeeRequest struct {
	MemberID int     `json:"member_id" validate:"required,gt=0" example:"1"`
	Amount   float64 `json:"amount" validate:"gte=0" example:"1200"`
	PaidOn   *string `json:"paid_on" validate:"omitempty,datetime=2006-01-02" example:"2025-01-01"`
	NextDue  *string `json:"next_due" validate:"omitempty,datetime=2006-01-02" example:"2025-02-01"`
	Status   string  `json:"status" validate:"omitempty,oneof=paid pending due" example:"paid"`
}

// ListFeesQuery 對應 GET /fees 的查詢參數
type ListFeesQuery struct {
	MemberID int `query:"member_id" validate:"omitempty,gt=0"`
}

// swagger:model api.FeeResponse
type FeeResponse struct {
	ID       int     `json:"id"`
	MemberID int     `json:"member_id"`
	Amount   float64 `json:"amount"`
	PaidOn   *string `json:"paid_on"`
	NextDue  *string `json:"next_due"`
	Status   string  `json:"status"`
}

// File: internal/api/member.go
package api

// 日期一律為 YYYY-MM-DD 字串
const DateLayout = "2006-01-02"

// swagger:model api.CreateMemberRequest
type CreateMemberRequest struct {
	Name      string  `json:"name" validate:"required,max=100" example:"Jane Doe"`
	Phone     string  `json:"phone" validate:"required,max=20" example:"0912345678"`
	Email     *string `json:"email" validate:"omitempty,email" example:"jane@example.com"`
	PlanType  string  `json:"plan_type" validate:"required" example:"monthly"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02" example:"2025-01-01"`
	EndDate   string  `json:"end_date" validate:"required,datetime=2006-01-02" example:"2025-02-01"`
	Notes     *string `json:"notes" example:"prefers mornings"`
}

// UpdateMemberRequest 只更新有帶的欄位
// swagger:model api.UpdateMemberRequest
type UpdateMemberRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Email     *string `json:"email" validate:"omitempty,email"`
	PlanType  *string `json:"plan_type"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Notes     *string `json:"notes"`
}

// swagger:model api.MemberResponse
type MemberResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email"`
	PlanType  string  `json:"plan_type"`
	StartDate string  `json:"start_date" example:"2025-01-01"`
	EndDate   string  `json:"end_date" example:"2025-02-01"`
	Notes     *string `json:"notes"`
}

// swagger:model api.MemberStatusResponse
type MemberStatusResponse struct {
	MemberID   int      `json:"member_id"`
	Name       string   `json:"name"`
	EndDate    string   `json:"end_date"`
	Membership string   `json:"membership" example:"expiring_soon"`
	FeeStatus  string   `json:"fee_status" example:"due"`
	Amount     *float64 `json:"amount"`
	DueDate    *string  `json:"due_date"`
}

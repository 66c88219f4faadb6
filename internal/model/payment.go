// File: internal/model/payment.go
package model

import "time"

// Payment 只新增不修改
type Payment struct {
	ID       int       `db:"id" json:"id"`
	MemberID int       `db:"member_id" json:"member_id"`
	PlanType string    `db:"plan_type" json:"plan_type"`
	Amount   float64   `db:"amount" json:"amount"`
	Method   string    `db:"method" json:"method"`
	PaidAt   time.Time `db:"paid_at" json:"paid_at"`
	Notes    *string   `db:"notes" json:"notes,omitempty"`
}

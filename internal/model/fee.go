// File: internal/model/fee.go
package model

import "time"

// 寫入時的 Status，讀取時會再依 NextDue 重新判斷
const (
	FeeStatusPaid    = "paid"
	FeeStatusPending = "pending"
	FeeStatusDue     = "due"
)

type Fee struct {
	ID       int        `db:"id" json:"id"`
	MemberID int        `db:"member_id" json:"member_id"`
	Amount   float64    `db:"amount" json:"amount"`
	PaidOn   *time.Time `db:"paid_on" json:"paid_on"`
	NextDue  *time.Time `db:"next_due" json:"next_due"`
	Status   string     `db:"status" json:"status"`
}

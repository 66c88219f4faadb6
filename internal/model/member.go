// File: internal/model/member.go
package model

import "time"

// Member 的 StartDate / EndDate 為 UTC 午夜的日期，EndDate >= StartDate
type Member struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Email     *string   `db:"email" json:"email,omitempty"`
	PlanType  string    `db:"plan_type" json:"plan_type"`
	StartDate time.Time `db:"start_date" json:"start_date"`
	EndDate   time.Time `db:"end_date" json:"end_date"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
}

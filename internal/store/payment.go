package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gym-admin/internal/database"
	"gym-admin/internal/model"
)

const paymentColumns = `id, member_id, plan_type, amount, method, paid_at, notes`

// PaymentFilter 零值欄位不套用；From 含當下，To 不含
type PaymentFilter struct {
	MemberID int
	From     *time.Time
	To       *time.Time
}

func scanPayment(s scanner) (model.Payment, error) {
	var p model.Payment
	err := s.Scan(&p.ID, &p.MemberID, &p.PlanType, &p.Amount, &p.Method, &p.PaidAt, &p.Notes)
	return p, err
}

// ListPayments 依 paid_at 由新到舊
func ListPayments(ctx context.Context, db database.DB, f PaymentFilter) ([]model.Payment, error) {
	var (
		where []string
		args  []any
	)
	if f.MemberID > 0 {
		args = append(args, f.MemberID)
		where = append(where, fmt.Sprintf("member_id = $%d", len(args)))
	}
	if f.From != nil {
		args = append(args, *f.From)
		where = append(where, fmt.Sprintf("paid_at >= $%d", len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		where = append(where, fmt.Sprintf("paid_at < $%d", len(args)))
	}

	sql := `SELECT ` + paymentColumns + ` FROM payments`
	if len(where) > 0 {
		sql += ` WHERE ` + strings.Join(where, " AND ")
	}
	sql += ` ORDER BY paid_at DESC, id DESC`

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrap("ListPayments", err)
	}
	return collect("ListPayments", rows, scanPayment)
}

// CreatePayment 的 paid_at 由資料庫填入
func CreatePayment(ctx context.Context, db database.DB, p *model.Payment) (*model.Payment, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO payments (member_id, plan_type, amount, method, notes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, paid_at`,
		p.MemberID, p.PlanType, p.Amount, p.Method, p.Notes,
	)
	if err := row.Scan(&p.ID, &p.PaidAt); err != nil {
		return nil, wrap("CreatePayment", err)
	}
	return p, nil
}

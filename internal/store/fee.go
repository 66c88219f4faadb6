package store

import (
	"context"

	"gym-admin/internal/database"
	"gym-admin/internal/model"
)

const feeColumns = `id, member_id, amount, paid_on, next_due, status`

func scanFee(s scanner) (model.Fee, error) {
	var f model.Fee
	err := s.Scan(&f.ID, &f.MemberID, &f.Amount, &f.PaidOn, &f.NextDue, &f.Status)
	return f, err
}

func ListFees(ctx context.Context, db database.DB) ([]model.Fee, error) {
	rows, err := db.Query(ctx, `SELECT `+feeColumns+` FROM fees ORDER BY id`)
	if err != nil {
		return nil, wrap("ListFees", err)
	}
	return collect("ListFees", rows, scanFee)
}

func ListFeesByMember(ctx context.Context, db database.DB, memberID int) ([]model.Fee, error) {
	rows, err := db.Query(ctx,
		`SELECT `+feeColumns+` FROM fees WHERE member_id = $1 ORDER BY id`,
		memberID,
	)
	if err != nil {
		return nil, wrap("ListFeesByMember", err)
	}
	return collect("ListFeesByMember", rows, scanFee)
}

// GetLatestFee 取 next_due 最大者，NULL 視為最小，同值取 id 最大
func GetLatestFee(ctx context.Context, db database.DB, memberID int) (*model.Fee, error) {
	f, err := scanFee(db.QueryRow(ctx,
		`SELECT `+feeColumns+`
		 FROM fees
		 WHERE member_id = $1
		 ORDER BY next_due DESC NULLS LAST, id DESC
		 LIMIT 1`,
		memberID,
	))
	if err != nil {
		return nil, wrap("GetLatestFee", err)
	}
	return &f, nil
}

func CreateFee(ctx context.Context, db database.DB, f *model.Fee) (*model.Fee, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO fees (member_id, amount, paid_on, next_due, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		f.MemberID, f.Amount, f.PaidOn, f.NextDue, f.Status,
	)
	if err := row.Scan(&f.ID); err != nil {
		return nil, wrap("CreateFee", err)
	}
	return f, nil
}

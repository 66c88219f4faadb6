package store

import (
	"context"

	"gym-admin/internal/database"
	"gym-admin/internal/model"
)

const planColumns = `id, name, price, duration, description`

func scanPlan(s scanner) (model.Plan, error) {
	var p model.Plan
	err := s.Scan(&p.ID, &p.Name, &p.Price, &p.Duration, &p.Description)
	return p, err
}

func ListPlans(ctx context.Context, db database.DB) ([]model.Plan, error) {
	rows, err := db.Query(ctx, `SELECT `+planColumns+` FROM plans ORDER BY name`)
	if err != nil {
		return nil, wrap("ListPlans", err)
	}
	return collect("ListPlans", rows, scanPlan)
}

func GetPlan(ctx context.Context, db database.DB, id int) (*model.Plan, error) {
	p, err := scanPlan(db.QueryRow(ctx, `SELECT `+planColumns+` FROM plans WHERE id = $1`, id))
	if err != nil {
		return nil, wrap("GetPlan", err)
	}
	return &p, nil
}

// CreatePlan 名稱重複時回傳 ErrConflict
func CreatePlan(ctx context.Context, db database.DB, p *model.Plan) (*model.Plan, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO plans (name, price, duration, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		p.Name, p.Price, p.Duration, p.Description,
	)
	if err := row.Scan(&p.ID); err != nil {
		return nil, wrap("CreatePlan", err)
	}
	return p, nil
}

func UpdatePlan(ctx context.Context, db database.DB, p *model.Plan) error {
	tag, err := db.Exec(ctx,
		`UPDATE plans SET name = $1, price = $2, duration = $3, description = $4
		 WHERE id = $5`,
		p.Name, p.Price, p.Duration, p.Description, p.ID,
	)
	return expectOne("UpdatePlan", tag, err)
}

func DeletePlan(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM plans WHERE id = $1`, id)
	return expectOne("DeletePlan", tag, err)
}

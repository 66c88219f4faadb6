package store

import (
	"context"

	"gym-admin/internal/database"
	"gym-admin/internal/model"
)

const memberColumns = `id, name, phone, email, plan_type, start_date, end_date, notes`

func scanMember(s scanner) (model.Member, error) {
	var m model.Member
	err := s.Scan(&m.ID, &m.Name, &m.Phone, &m.Email, &m.PlanType, &m.StartDate, &m.EndDate, &m.Notes)
	return m, err
}

func ListMembers(ctx context.Context, db database.DB) ([]model.Member, error) {
	rows, err := db.Query(ctx, `SELECT `+memberColumns+` FROM members ORDER BY id`)
	if err != nil {
		return nil, wrap("ListMembers", err)
	}
	return collect("ListMembers", rows, scanMember)
}

func GetMember(ctx context.Context, db database.DB, id int) (*model.Member, error) {
	m, err := scanMember(db.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id))
	if err != nil {
		return nil, wrap("GetMember", err)
	}
	return &m, nil
}

func CreateMember(ctx context.Context, db database.DB, m *model.Member) (*model.Member, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO members (name, phone, email, plan_type, start_date, end_date, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		m.Name, m.Phone, m.Email, m.PlanType, m.StartDate, m.EndDate, m.Notes,
	)
	if err := row.Scan(&m.ID); err != nil {
		return nil, wrap("CreateMember", err)
	}
	return m, nil
}

// UpdateMember 以 m 的內容整筆覆寫；呼叫端負責先合併部分欄位
func UpdateMember(ctx context.Context, db database.DB, m *model.Member) error {
	tag, err := db.Exec(ctx,
		`UPDATE members
		 SET name = $1, phone = $2, email = $3, plan_type = $4,
		     start_date = $5, end_date = $6, notes = $7
		 WHERE id = $8`,
		m.Name, m.Phone, m.Email, m.PlanType, m.StartDate, m.EndDate, m.Notes, m.ID,
	)
	return expectOne("UpdateMember", tag, err)
}

// DeleteMember 會連帶刪除 fees 與 payments (ON DELETE CASCADE)
func DeleteMember(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	return expectOne("DeleteMember", tag, err)
}

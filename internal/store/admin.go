package store

import (
	"context"

	"gym-admin/internal/database"
	"gym-admin/internal/model"
)

const adminColumns = `id, username, email, password_hash, created_at`

func scanAdmin(s scanner) (*model.Admin, error) {
	a := &model.Admin{}
	if err := s.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

// GetAdminByLogin 以帳號或 email 查詢，帳號完全相符者優先
func GetAdminByLogin(ctx context.Context, db database.DB, identifier string) (*model.Admin, error) {
	row := db.QueryRow(ctx,
		`SELECT `+adminColumns+`
		 FROM admins
		 WHERE username = $1 OR email = $1
		 ORDER BY (username = $1) DESC, id
		 LIMIT 1`,
		identifier,
	)
	a, err := scanAdmin(row)
	if err != nil {
		return nil, wrap("GetAdminByLogin", err)
	}
	return a, nil
}

func GetAdminByEmail(ctx context.Context, db database.DB, email string) (*model.Admin, error) {
	row := db.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE email = $1`,
		email,
	)
	a, err := scanAdmin(row)
	if err != nil {
		return nil, wrap("GetAdminByEmail", err)
	}
	return a, nil
}

// CreateAdmin 寫入後回填 ID 與 CreatedAt；帳號或 email 重複時回傳 ErrConflict
func CreateAdmin(ctx context.Context, db database.DB, a *model.Admin) (*model.Admin, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO admins (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		a.Username,
		a.Email,
		a.PasswordHash,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return nil, wrap("CreateAdmin", err)
	}
	return a, nil
}

func UpdateAdminPassword(ctx context.Context, db database.DB, adminID int, passwordHash string) error {
	tag, err := db.Exec(ctx,
		`UPDATE admins SET password_hash = $1 WHERE id = $2`,
		passwordHash,
		adminID,
	)
	return expectOne("UpdateAdminPassword", tag, err)
}

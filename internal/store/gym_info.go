package store

import (
	"context"

	"gym-admin/internal/database"
	"gym-admin/internal/model"
)

// GetGymInfo 回傳唯一一筆健身房資料，尚未建立時為 ErrNotFound
func GetGymInfo(ctx context.Context, db database.DB) (*model.GymInfo, error) {
	g := &model.GymInfo{}
	err := db.QueryRow(ctx,
		`SELECT id, name, logo_url FROM gym_info ORDER BY id LIMIT 1`,
	).Scan(&g.ID, &g.Name, &g.LogoURL)
	if err != nil {
		return nil, wrap("GetGymInfo", err)
	}
	return g, nil
}

func CreateGymInfo(ctx context.Context, db database.DB, g *model.GymInfo) (*model.GymInfo, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO gym_info (name, logo_url) VALUES ($1, $2) RETURNING id`,
		g.Name, g.LogoURL,
	)
	if err := row.Scan(&g.ID); err != nil {
		return nil, wrap("CreateGymInfo", err)
	}
	return g, nil
}

func UpdateGymInfo(ctx context.Context, db database.DB, g *model.GymInfo) error {
	tag, err := db.Exec(ctx,
		`UPDATE gym_info SET name = $1, logo_url = $2 WHERE id = $3`,
		g.Name, g.LogoURL, g.ID,
	)
	return expectOne("UpdateGymInfo", tag, err)
}

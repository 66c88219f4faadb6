// File: internal/model/gym_info.go
package model

type GymInfo struct {
	ID      int     `db:"id" json:"id"`
	Name    string  `db:"name" json:"name"`
	LogoURL *string `db:"logo_url" json:"logo_url,omitempty"`
}

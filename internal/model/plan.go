// File: internal/model/plan.go
package model

type Plan struct {
	ID          int     `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Price       float64 `db:"price" json:"price"`
	Duration    int     `db:"duration" json:"duration"`
	Description *string `db:"description" json:"description,omitempty"`
}

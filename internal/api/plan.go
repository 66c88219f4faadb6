// File: internal/api/plan.go
package api

// swagger:model api.PlanRequest
type PlanRequest struct {
	Name        string  `json:"name" validate:"required,max=50" example:"monthly"`
	Price       float64 `json:"price" validate:"gte=0" example:"1200"`
	Duration    int     `json:"duration" validate:"required,gt=0" example:"30"`
	Description *string `json:"description" example:"30 days unlimited access"`
}

// swagger:model api.UpdatePlanRequest
type UpdatePlanRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=50"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Duration    *int     `json:"duration" validate:"omitempty,gt=0"`
	Description *string  `json:"description"`
}

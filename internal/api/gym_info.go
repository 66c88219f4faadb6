// File: internal/api/gym_info.go
package api

// swagger:model api.GymInfoRequest
type GymInfoRequest struct {
	Name    string  `json:"name" validate:"required,max=100" example:"Iron Temple"`
	LogoURL *string `json:"logo_url" validate:"omitempty,url" example:"https://gym.test/logo.png"`
}

// swagger:model api.UpdateGymInfoRequest
type UpdateGymInfoRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=100"`
	LogoURL *string `json:"logo_url" validate:"omitempty,url"`
}

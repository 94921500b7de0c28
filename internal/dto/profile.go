package dto

import "github.com/GlebRadaev/otpshop/internal/domain"

type WhitelistRequestDTO struct {
	IP string `json:"ip" validate:"required,ip" example:"203.0.113.7"`
}

type APIKeyResponseDTO struct {
	APIKey string `json:"api_key" example:"eyJhbGciOiJIUzI1NiJ9..."`
}

type ProfileResponseDTO struct {
	User      *domain.User            `json:"user"`
	Whitelist []domain.WhitelistEntry `json:"whitelist"`
	APIKey    string                  `json:"api_key"`
}

package dto

type ThemeRequestDTO struct {
	Mode   string `json:"mode" validate:"omitempty,oneof=light dark system" example:"dark"`
	Accent string `json:"accent" validate:"omitempty,oneof=blue green purple orange red teal" example:"teal"`
}

type NumberFormatRequestDTO struct {
	Format string `json:"format" validate:"required,oneof=plus noplus local" example:"local"`
}

type NumberFormatResponseDTO struct {
	Format string `json:"format" example:"local"`
}

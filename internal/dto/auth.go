package dto

type RegisterRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"budi"`
	Email    string `json:"email" validate:"required,email" example:"budi@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"rahasia123"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required" example:"budi"`
	Password string `json:"password" validate:"required" example:"rahasia123"`
}

type MessageResponseDTO struct {
	Message string `json:"message" example:"Pesanan disembunyikan"`
}

// AuthResponseDTO tells the shell where to go after the session changed.
type AuthResponseDTO struct {
	Message  string `json:"message" example:"Berhasil masuk"`
	Redirect string `json:"redirect" example:"/app/dashboard"`
}

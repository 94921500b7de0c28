package dto

import (
	"fmt"

	"github.com/GlebRadaev/otpshop/internal/domain"
)

type CreateDepositRequestDTO struct {
	Amount int64 `json:"amount" validate:"required,gt=0" example:"5000"`
}

type DepositResponseDTO struct {
	domain.Deposit
	QRURL string `json:"qr_url" example:"/app/deposits/DEP123/qr.png"`
}

func NewDepositResponse(d domain.Deposit) DepositResponseDTO {
	return DepositResponseDTO{
		Deposit: d,
		QRURL:   fmt.Sprintf("/app/deposits/%s/qr.png", d.DepositID),
	}
}

func NewDepositResponses(deposits []domain.Deposit) []DepositResponseDTO {
	out := make([]DepositResponseDTO, 0, len(deposits))
	for _, d := range deposits {
		out = append(out, NewDepositResponse(d))
	}
	return out
}

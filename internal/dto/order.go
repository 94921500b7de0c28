package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/otpshop/internal/domain"
	orderservice "github.com/GlebRadaev/otpshop/internal/service/orderservice"
	"github.com/GlebRadaev/otpshop/pkg/numfmt"
)

type BuyRequestDTO struct {
	ServiceID  domain.ID       `json:"service_id" validate:"required" swaggertype:"string" example:"12"`
	CountryID  domain.ID       `json:"country_id" validate:"required" swaggertype:"string" example:"6"`
	ProviderID domain.ID       `json:"provider_id" validate:"required" swaggertype:"string" example:"3"`
	ServerID   domain.ID       `json:"server_id" swaggertype:"string" example:"1"`
	OperatorID domain.ID       `json:"operator_id" validate:"required" swaggertype:"string" example:"any"`
	Price      decimal.Decimal `json:"price" swaggertype:"string" example:"3500"`
}

func (d BuyRequestDTO) ToDomain() domain.BuyRequest {
	return domain.BuyRequest{
		ServiceID:  d.ServiceID,
		CountryID:  d.CountryID,
		ProviderID: d.ProviderID,
		ServerID:   d.ServerID,
		OperatorID: d.OperatorID,
		Price:      d.Price,
	}
}

// CancelRequestDTO optionally carries the creation time the screen already knows.
type CancelRequestDTO struct {
	CreatedAt *time.Time `json:"created_at,omitempty" example:"2024-05-01T10:00:00+07:00"`
}

type OrderResponseDTO struct {
	orderservice.OrderView
	DisplayNumber string `json:"display_number" example:"081234567890"`
}

func NewOrderResponse(view orderservice.OrderView, format numfmt.Format) OrderResponseDTO {
	return OrderResponseDTO{
		OrderView:     view,
		DisplayNumber: numfmt.Apply(view.PhoneNumber, format),
	}
}

func NewOrderResponses(views []orderservice.OrderView, format numfmt.Format) []OrderResponseDTO {
	out := make([]OrderResponseDTO, 0, len(views))
	for _, v := range views {
		out = append(out, NewOrderResponse(v, format))
	}
	return out
}

type HistoryItemDTO struct {
	domain.Order
	DisplayNumber string `json:"display_number" example:"081234567890"`
}

func NewHistory(orders []domain.Order, format numfmt.Format) []HistoryItemDTO {
	out := make([]HistoryItemDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, HistoryItemDTO{Order: o, DisplayNumber: numfmt.Apply(o.PhoneNumber, format)})
	}
	return out
}

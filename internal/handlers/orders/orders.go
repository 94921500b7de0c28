package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/internal/dto"
	"github.com/GlebRadaev/otpshop/internal/handlers/httperr"
	"github.com/GlebRadaev/otpshop/internal/service/orderservice"
	"github.com/GlebRadaev/otpshop/internal/service/prefsservice"
	"github.com/GlebRadaev/otpshop/pkg/auth"
	"github.com/GlebRadaev/otpshop/pkg/numfmt"
	"github.com/GlebRadaev/otpshop/pkg/utils"
	"github.com/GlebRadaev/otpshop/pkg/validate"
)

const (
	tickInterval    = time.Second
	refreshInterval = 5 * time.Second
)

type Service interface {
	Buy(ctx context.Context, session domain.Session, req domain.BuyRequest) (*orderservice.OrderView, error)
	Current(ctx context.Context, session domain.Session) (*orderservice.OrderView, error)
	Refresh(ctx context.Context, session domain.Session) (*orderservice.OrderView, error)
	Status(ctx context.Context, session domain.Session, orderID domain.ID) (*orderservice.OrderView, error)
	Cancel(ctx context.Context, session domain.Session, orderID domain.ID, createdAt time.Time) error
	ActiveOrders(ctx context.Context, session domain.Session) ([]orderservice.OrderView, error)
	Hide(ctx context.Context, session domain.Session, orderID domain.ID) error
	Close(ctx context.Context, session domain.Session, orderID domain.ID) error
	Timers(views []orderservice.OrderView) []orderservice.OrderView
}

type PrefsService interface {
	Get(ctx context.Context, profileID, hint string) (*prefsservice.Prefs, error)
}

type OrderHandler struct {
	orderService    Service
	prefsService    PrefsService
	tickInterval    time.Duration
	refreshInterval time.Duration
}

func New(orderService Service, prefsService PrefsService) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		prefsService:    prefsService,
		tickInterval:    tickInterval,
		refreshInterval: refreshInterval,
	}
}

// Buy godoc
//
//	@Summary		Buy a number
//	@Description	Buys a virtual number for the chosen service, country, provider and operator.
//	@Description	Refused without contacting the upstream when the last known balance is below the price.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BuyRequestDTO	true	"Selection of the buy form"
//	@Success		201		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Incomplete selection"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		422		{object}	utils.Response	"Rejected by the upstream API"
//	@Failure		502		{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/orders [post]
func (h *OrderHandler) Buy(w http.ResponseWriter, r *http.Request) {
	var req dto.BuyRequestDTO
	if err := validate.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, validate.Message(err))
		return
	}
	view, err := h.orderService.Buy(r.Context(), auth.SessionFrom(r.Context()), req.ToDomain())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewOrderResponse(*view, h.numberFormat(r)))
}

// GetCurrent godoc
//
//	@Summary		Current order
//	@Description	The last purchased order with its countdowns. A finished order is returned once, then forgotten.
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Success		204	"No active order"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/app/orders/current [get]
func (h *OrderHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	view, err := h.orderService.Current(r.Context(), auth.SessionFrom(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if view == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(*view, h.numberFormat(r)))
}

// RefreshCurrent godoc
//
//	@Summary		Refresh current order
//	@Description	Checks the status of the current order upstream
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		404	{object}	utils.Response	"No active order"
//	@Failure		502	{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/orders/current/refresh [post]
func (h *OrderHandler) RefreshCurrent(w http.ResponseWriter, r *http.Request) {
	view, err := h.orderService.Refresh(r.Context(), auth.SessionFrom(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(*view, h.numberFormat(r)))
}

// GetActive godoc
//
//	@Summary		Active orders
//	@Description	Orders still waiting for an OTP or showing one, newest first. Hidden and closed orders never appear.
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		502	{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/orders/active [get]
func (h *OrderHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	views, err := h.orderService.ActiveOrders(r.Context(), auth.SessionFrom(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponses(views, h.numberFormat(r)))
}

// GetStatus godoc
//
//	@Summary		Order status
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string	true	"Order id"
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		502	{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/orders/{id}/status [get]
func (h *OrderHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	view, err := h.orderService.Status(r.Context(), auth.SessionFrom(r.Context()), orderID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(*view, h.numberFormat(r)))
}

// Cancel godoc
//
//	@Summary		Cancel an order
//	@Description	Allowed once four minutes have passed since the order was created
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Order id"
//	@Param			request	body		dto.CancelRequestDTO	false	"Creation time known to the screen"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		404		{object}	utils.Response	"Order creation time unknown"
//	@Failure		409		{object}	utils.Response	"Cancel cooldown still running"
//	@Failure		502		{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req dto.CancelRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, validate.Message(validate.ErrBadBody))
		return
	}
	var createdAt time.Time
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}
	if err := h.orderService.Cancel(r.Context(), auth.SessionFrom(r.Context()), orderID(r), createdAt); err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: orderservice.MessageCanceled})
}

// Hide godoc
//
//	@Summary		Hide an order
//	@Description	Removes the order from this browser's lists for good
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string	true	"Order id"
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/app/orders/{id}/hide [post]
func (h *OrderHandler) Hide(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.Hide(r.Context(), auth.SessionFrom(r.Context()), orderID(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Pesanan disembunyikan"})
}

// Close godoc
//
//	@Summary		Close an order
//	@Description	Marks the order finished upstream and hides it
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string	true	"Order id"
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		502	{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/orders/{id}/close [post]
func (h *OrderHandler) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.Close(r.Context(), auth.SessionFrom(r.Context()), orderID(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Pesanan selesai"})
}

func (h *OrderHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var cooldown *orderservice.CooldownError
	switch {
	case errors.As(err, &cooldown):
		utils.RespondWithError(w, http.StatusConflict, CooldownMessage(cooldown.Remaining))
	case errors.Is(err, orderservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, "Saldo tidak cukup")
	case errors.Is(err, orderservice.ErrNoActiveOrder):
		utils.RespondWithError(w, http.StatusNotFound, "Tidak ada pesanan aktif")
	case errors.Is(err, orderservice.ErrUnknownOrder):
		utils.RespondWithError(w, http.StatusNotFound, "Pesanan tidak ditemukan")
	default:
		httperr.Write(w, r, err)
	}
}

// CooldownMessage tells how many whole seconds are left before cancel opens.
func CooldownMessage(left time.Duration) string {
	return fmt.Sprintf("Pembatalan tersedia dalam %d detik", int(math.Ceil(left.Seconds())))
}

func (h *OrderHandler) numberFormat(r *http.Request) numfmt.Format {
	profileID := auth.SessionFrom(r.Context()).ProfileID
	prefs, err := h.prefsService.Get(r.Context(), profileID, r.Header.Get(prefsservice.ColorSchemeHint))
	if err != nil {
		zap.L().Warn("number format unavailable, using default", zap.String("profile", profileID), zap.Error(err))
		return numfmt.Default
	}
	return prefs.NumberFormat
}

func orderID(r *http.Request) domain.ID {
	return domain.ID(chi.URLParam(r, "id"))
}

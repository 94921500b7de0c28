package deposit

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/internal/dto"
	"github.com/GlebRadaev/otpshop/internal/handlers/httperr"
	"github.com/GlebRadaev/otpshop/internal/service/depositservice"
	"github.com/GlebRadaev/otpshop/pkg/auth"
	"github.com/GlebRadaev/otpshop/pkg/utils"
	"github.com/GlebRadaev/otpshop/pkg/validate"
)

type Service interface {
	MinAmount() int64
	Create(ctx context.Context, session domain.Session, amount int64) (*domain.Deposit, error)
	History(ctx context.Context, session domain.Session) ([]domain.Deposit, error)
	Status(ctx context.Context, session domain.Session, depositID domain.ID) (*domain.Deposit, error)
	Cancel(ctx context.Context, session domain.Session, depositID domain.ID) error
	QRCode(ctx context.Context, session domain.Session, depositID domain.ID) ([]byte, error)
}

type DepositHandler struct {
	depositService Service
}

func New(depositService Service) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
	}
}

// MinimumMessage is the toast for an amount under the minimum, e.g. "Minimal deposit Rp 1.000".
func MinimumMessage(min int64) string {
	return message.NewPrinter(language.Indonesian).Sprintf("Minimal deposit Rp %d", min)
}

// Create godoc
//
//	@Summary		Create a QRIS deposit
//	@Description	Amounts below the configured minimum are refused without contacting the upstream.
//	@Description	QR image and totals are returned as the upstream supplied them.
//	@Tags			Deposit
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateDepositRequestDTO	true	"Deposit amount in rupiah"
//	@Success		201		{object}	dto.DepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Amount below minimum"
//	@Failure		502		{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/deposits [post]
func (h *DepositHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepositRequestDTO
	if err := validate.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, validate.Message(err))
		return
	}
	deposit, err := h.depositService.Create(r.Context(), auth.SessionFrom(r.Context()), req.Amount)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewDepositResponse(*deposit))
}

// List godoc
//
//	@Summary		Deposit history
//	@Tags			Deposit
//	@Produce		json
//	@Success		200	{array}		dto.DepositResponseDTO
//	@Failure		502	{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/deposits [get]
func (h *DepositHandler) List(w http.ResponseWriter, r *http.Request) {
	deposits, err := h.depositService.History(r.Context(), auth.SessionFrom(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDepositResponses(deposits))
}

// GetStatus godoc
//
//	@Summary		Deposit status
//	@Tags			Deposit
//	@Produce		json
//	@Param			id	path		string	true	"Deposit id"
//	@Success		200	{object}	dto.DepositResponseDTO
//	@Failure		502	{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/deposits/{id} [get]
func (h *DepositHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	deposit, err := h.depositService.Status(r.Context(), auth.SessionFrom(r.Context()), depositID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDepositResponse(*deposit))
}

// Cancel godoc
//
//	@Summary		Cancel a pending deposit
//	@Tags			Deposit
//	@Produce		json
//	@Param			id	path		string	true	"Deposit id"
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		502	{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/deposits/{id}/cancel [post]
func (h *DepositHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.depositService.Cancel(r.Context(), auth.SessionFrom(r.Context()), depositID(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Deposit dibatalkan"})
}

// QRCode godoc
//
//	@Summary		Deposit QR code
//	@Description	PNG of the QRIS payment code
//	@Tags			Deposit
//	@Produce		png
//	@Param			id	path		string	true	"Deposit id"
//	@Success		200	{file}		binary
//	@Failure		404	{object}	utils.Response	"Deposit has no QR code"
//	@Router			/app/deposits/{id}/qr.png [get]
func (h *DepositHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.depositService.QRCode(r.Context(), auth.SessionFrom(r.Context()), depositID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		zap.L().Debug("can't write qr", zap.Error(err))
	}
}

func (h *DepositHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, depositservice.ErrBelowMinimum):
		utils.RespondWithError(w, http.StatusBadRequest, MinimumMessage(h.depositService.MinAmount()))
	case errors.Is(err, depositservice.ErrNoQR):
		utils.RespondWithError(w, http.StatusNotFound, "QR tidak tersedia")
	default:
		httperr.Write(w, r, err)
	}
}

func depositID(r *http.Request) domain.ID {
	return domain.ID(chi.URLParam(r, "id"))
}

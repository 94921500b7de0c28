package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/internal/dto"
	"github.com/GlebRadaev/otpshop/internal/handlers/httperr"
	"github.com/GlebRadaev/otpshop/internal/service/accountservice"
	"github.com/GlebRadaev/otpshop/pkg/auth"
	"github.com/GlebRadaev/otpshop/pkg/utils"
	"github.com/GlebRadaev/otpshop/pkg/validate"
)

type AccountService interface {
	AddWhitelist(ctx context.Context, session domain.Session, ip string) error
	RemoveWhitelist(ctx context.Context, session domain.Session, ip string) error
}

type SessionService interface {
	RotateAPIKey(ctx context.Context, session domain.Session) (string, error)
}

type ProfileHandler struct {
	accountService AccountService
	sessionService SessionService
}

func New(accountService AccountService, sessionService SessionService) *ProfileHandler {
	return &ProfileHandler{
		accountService: accountService,
		sessionService: sessionService,
	}
}

// AddWhitelist godoc
//
//	@Summary		Whitelist an IP
//	@Description	An account holds at most one whitelisted IP
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WhitelistRequestDTO	true	"IP address"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid IP address"
//	@Failure		409		{object}	utils.Response	"An IP is already whitelisted"
//	@Failure		502		{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/profile/whitelist [post]
func (h *ProfileHandler) AddWhitelist(w http.ResponseWriter, r *http.Request) {
	var req dto.WhitelistRequestDTO
	if err := validate.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, validate.Message(err))
		return
	}
	if err := h.accountService.AddWhitelist(r.Context(), auth.SessionFrom(r.Context()), req.IP); err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "IP ditambahkan"})
}

// RemoveWhitelist godoc
//
//	@Summary		Remove the whitelisted IP
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WhitelistRequestDTO	true	"IP address"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid IP address"
//	@Failure		502		{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/profile/whitelist [delete]
func (h *ProfileHandler) RemoveWhitelist(w http.ResponseWriter, r *http.Request) {
	var req dto.WhitelistRequestDTO
	if err := validate.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, validate.Message(err))
		return
	}
	if err := h.accountService.RemoveWhitelist(r.Context(), auth.SessionFrom(r.Context()), req.IP); err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "IP dihapus"})
}

// RotateAPIKey godoc
//
//	@Summary		Rotate the API key
//	@Description	The new key replaces the current session token immediately
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{object}	dto.APIKeyResponseDTO
//	@Failure		502	{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/profile/api-key [post]
func (h *ProfileHandler) RotateAPIKey(w http.ResponseWriter, r *http.Request) {
	key, err := h.sessionService.RotateAPIKey(r.Context(), auth.SessionFrom(r.Context()))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.APIKeyResponseDTO{APIKey: key})
}

func (h *ProfileHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, accountservice.ErrWhitelistFull):
		utils.RespondWithError(w, http.StatusConflict, "Hanya satu IP yang dapat didaftarkan")
	case errors.Is(err, accountservice.ErrInvalidIP):
		utils.RespondWithError(w, http.StatusBadRequest, "Format IP tidak valid")
	default:
		httperr.Write(w, r, err)
	}
}

package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/otpshop/internal/dto"
	"github.com/GlebRadaev/otpshop/internal/handlers/httperr"
	"github.com/GlebRadaev/otpshop/internal/service/sessionservice"
	"github.com/GlebRadaev/otpshop/pkg/auth"
	"github.com/GlebRadaev/otpshop/pkg/utils"
	"github.com/GlebRadaev/otpshop/pkg/validate"
)

const (
	DashboardPath = "/app/dashboard"
	LoginPath     = "/app/login"
)

type Service interface {
	Login(ctx context.Context, profileID, username, password string) error
	Register(ctx context.Context, profileID, username, email, password string) error
	Logout(ctx context.Context, profileID string) error
}

type AuthHandler struct {
	sessionService Service
}

func New(sessionService Service) *AuthHandler {
	return &AuthHandler{
		sessionService: sessionService,
	}
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Create an upstream account and store its session token on the browser profile
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"Rejected by the upstream API"
//	@Failure		502		{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := validate.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, validate.Message(err))
		return
	}
	profileID := auth.ProfileID(r.Context())
	if err := h.sessionService.Register(r.Context(), profileID, req.Username, req.Email, req.Password); err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message:  "Pendaftaran berhasil",
		Redirect: DashboardPath,
	})
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Exchange credentials for an upstream session token kept on the browser profile
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		502		{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := validate.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, validate.Message(err))
		return
	}
	profileID := auth.ProfileID(r.Context())
	if err := h.sessionService.Login(r.Context(), profileID, req.Username, req.Password); err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message:  "Berhasil masuk",
		Redirect: DashboardPath,
	})
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Forget the session token of the browser profile
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.AuthResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/app/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.Logout(r.Context(), auth.ProfileID(r.Context())); err != nil {
		httperr.Write(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message:  "Berhasil keluar",
		Redirect: LoginPath,
	})
}

func (h *AuthHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, sessionservice.ErrEmptyCredentials) {
		utils.RespondWithError(w, http.StatusBadRequest, "Username dan password wajib diisi")
		return
	}
	httperr.Write(w, r, err)
}

package settings

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/internal/dto"
	"github.com/GlebRadaev/otpshop/internal/handlers/httperr"
	"github.com/GlebRadaev/otpshop/internal/service/prefsservice"
	"github.com/GlebRadaev/otpshop/pkg/auth"
	"github.com/GlebRadaev/otpshop/pkg/numfmt"
	"github.com/GlebRadaev/otpshop/pkg/utils"
	"github.com/GlebRadaev/otpshop/pkg/validate"
)

type Service interface {
	Get(ctx context.Context, profileID, hint string) (*prefsservice.Prefs, error)
	SetTheme(ctx context.Context, profileID, mode, accent, hint string) (*domain.Theme, error)
	SetNumberFormat(ctx context.Context, profileID, format string) (numfmt.Format, error)
}

type SettingsHandler struct {
	prefsService Service
}

func New(prefsService Service) *SettingsHandler {
	return &SettingsHandler{
		prefsService: prefsService,
	}
}

// ClientHints asks the browser to send its color scheme on every request, so a theme
// in system mode follows an OS switch on the next request.
func ClientHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Accept-CH", prefsservice.ColorSchemeHint)
		h.Set("Critical-CH", prefsservice.ColorSchemeHint)
		h.Add("Vary", prefsservice.ColorSchemeHint)
		next.ServeHTTP(w, r)
	})
}

// GetTheme godoc
//
//	@Summary		Current preferences
//	@Description	Theme mode, accent, the scheme resolved for this request and the number format
//	@Tags			Settings
//	@Produce		json
//	@Param			Sec-CH-Prefers-Color-Scheme	header		string	false	"OS color scheme hint"
//	@Success		200							{object}	prefsservice.Prefs
//	@Failure		500							{object}	utils.Response	"Internal server error"
//	@Router			/app/settings/theme [get]
func (h *SettingsHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.prefsService.Get(r.Context(), auth.ProfileID(r.Context()), hint(r))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, prefs)
}

// SetTheme godoc
//
//	@Summary		Change the theme
//	@Description	An omitted field keeps its current value
//	@Tags			Settings
//	@Accept			json
//	@Produce		json
//	@Param			request						body		dto.ThemeRequestDTO	true	"Theme mode and accent"
//	@Param			Sec-CH-Prefers-Color-Scheme	header		string				false	"OS color scheme hint"
//	@Success		200							{object}	domain.Theme
//	@Failure		400							{object}	utils.Response	"Unknown mode or accent"
//	@Router			/app/settings/theme [put]
func (h *SettingsHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req dto.ThemeRequestDTO
	if err := validate.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, validate.Message(err))
		return
	}
	theme, err := h.prefsService.SetTheme(r.Context(), auth.ProfileID(r.Context()), req.Mode, req.Accent, hint(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, theme)
}

// SetNumberFormat godoc
//
//	@Summary		Change the phone number format
//	@Description	plus: +6281234567890, noplus: 6281234567890, local: 081234567890
//	@Tags			Settings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.NumberFormatRequestDTO	true	"Number format"
//	@Success		200		{object}	dto.NumberFormatResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown format"
//	@Router			/app/settings/number-format [put]
func (h *SettingsHandler) SetNumberFormat(w http.ResponseWriter, r *http.Request) {
	var req dto.NumberFormatRequestDTO
	if err := validate.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, validate.Message(err))
		return
	}
	format, err := h.prefsService.SetNumberFormat(r.Context(), auth.ProfileID(r.Context()), req.Format)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NumberFormatResponseDTO{Format: string(format)})
}

func (h *SettingsHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, prefsservice.ErrInvalidMode),
		errors.Is(err, prefsservice.ErrInvalidAccent),
		errors.Is(err, prefsservice.ErrInvalidFormat):
		utils.RespondWithError(w, http.StatusBadRequest, "Pilihan tidak dikenal")
	default:
		httperr.Write(w, r, err)
	}
}

func hint(r *http.Request) string {
	return r.Header.Get(prefsservice.ColorSchemeHint)
}

// Package httperr turns errors that escaped the handler's own mapping into toasts.
package httperr

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/otpshop/internal/upstream"
	"github.com/GlebRadaev/otpshop/pkg/utils"
)

// Write responds with the upstream message when there is one and the fallback text otherwise.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) && r.Context().Err() != nil {
		zap.L().Debug("client went away", zap.String("path", r.URL.Path))
		return
	}
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		utils.RespondWithError(w, Status(apiErr), apiErr.Message)
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "")
}

// Status picks the status code a failed upstream call is reported with.
func Status(e *upstream.APIError) int {
	switch {
	case e.Status == http.StatusUnauthorized, e.Status == http.StatusForbidden:
		return e.Status
	case e.Status == http.StatusTooManyRequests:
		return http.StatusTooManyRequests
	case e.Status >= 400 && e.Status < 500:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

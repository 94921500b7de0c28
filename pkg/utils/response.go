package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// FallbackMessage is shown whenever neither the upstream nor the handler has a better message.
const FallbackMessage = "Terjadi kesalahan, silakan coba lagi."

// Response is the toast body every failed request gets.
type Response struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Saldo tidak cukup"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("can't marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		zap.L().Debug("can't write response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	if message == "" {
		message = FallbackMessage
	}
	RespondWithJSON(w, code, Response{Status: "error", Message: message})
}

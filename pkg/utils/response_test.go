package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name            string
		message         string
		expectedMessage string
	}{
		{name: "Explicit message", message: "Saldo tidak cukup", expectedMessage: "Saldo tidak cukup"},
		{name: "Empty message falls back", message: "", expectedMessage: FallbackMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			RespondWithError(rr, http.StatusBadGateway, tt.message)

			assert.Equal(t, http.StatusBadGateway, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp Response
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

func TestRespondWithJSONUnmarshalable(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondWithJSON(rr, http.StatusOK, make(chan int))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

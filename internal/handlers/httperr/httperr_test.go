package httperr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/otpshop/internal/upstream"
	"github.com/GlebRadaev/otpshop/pkg/utils"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "upstream validation message",
			err:          &upstream.APIError{Status: http.StatusBadRequest, Message: "Stok habis"},
			expectedCode: http.StatusUnprocessableEntity,
			expectedMsg:  "Stok habis",
		},
		{
			name:         "wrapped upstream auth failure",
			err:          fmt.Errorf("buy: %w", &upstream.APIError{Status: http.StatusUnauthorized, Message: "Token tidak valid"}),
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Token tidak valid",
		},
		{
			name:         "network failure",
			err:          &upstream.APIError{Message: utils.FallbackMessage, Err: errors.New("dial tcp: refused")},
			expectedCode: http.StatusBadGateway,
			expectedMsg:  utils.FallbackMessage,
		},
		{
			name:         "local failure",
			err:          errors.New("db down"),
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  utils.FallbackMessage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			Write(rec, req, tt.err)

			assert.Equal(t, tt.expectedCode, rec.Code)
			var resp utils.Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tt.expectedMsg, resp.Message)
		})
	}
}

func TestWriteClientGone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	Write(rec, req, context.Canceled)

	assert.Equal(t, 0, rec.Body.Len())
}

package profile

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/internal/dto"
	"github.com/GlebRadaev/otpshop/internal/service/accountservice"
	"github.com/GlebRadaev/otpshop/internal/upstream"
	"github.com/GlebRadaev/otpshop/pkg/auth"
	"github.com/GlebRadaev/otpshop/pkg/utils"
)

var session = domain.Session{ProfileID: "p1", Token: "tok"}

func NewMock(t *testing.T) (*ProfileHandler, *MockAccountService, *MockSessionService) {
	ctrl := gomock.NewController(t)
	account := NewMockAccountService(ctrl)
	sessions := NewMockSessionService(ctrl)
	handler := New(account, sessions)
	defer ctrl.Finish()
	return handler, account, sessions
}

func newRequest(method, url, body string) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	return req.WithContext(auth.WithSession(req.Context(), session))
}

func TestAddWhitelistHandler(t *testing.T) {
	handler, account, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "IP added",
			body: `{"ip":"203.0.113.7"}`,
			prepareMock: func() {
				account.EXPECT().AddWhitelist(gomock.Any(), session, "203.0.113.7").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Second IP refused",
			body: `{"ip":"203.0.113.8"}`,
			prepareMock: func() {
				account.EXPECT().AddWhitelist(gomock.Any(), session, "203.0.113.8").Return(accountservice.ErrWhitelistFull)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Hanya satu IP yang dapat didaftarkan",
		},
		{
			name:          "Malformed IP",
			body:          `{"ip":"203.0.113"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Format IP tidak valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rec := httptest.NewRecorder()

			handler.AddWhitelist(rec, newRequest(http.MethodPost, "/app/profile/whitelist", tt.body))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestRemoveWhitelistHandler(t *testing.T) {
	handler, account, _ := NewMock(t)

	account.EXPECT().RemoveWhitelist(gomock.Any(), session, "203.0.113.7").Return(nil)
	rec := httptest.NewRecorder()
	handler.RemoveWhitelist(rec, newRequest(http.MethodDelete, "/app/profile/whitelist", `{"ip":"203.0.113.7"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRotateAPIKeyHandler(t *testing.T) {
	handler, _, sessions := NewMock(t)

	sessions.EXPECT().RotateAPIKey(gomock.Any(), session).Return("new-token", nil)
	rec := httptest.NewRecorder()
	handler.RotateAPIKey(rec, newRequest(http.MethodPost, "/app/profile/api-key", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.APIKeyResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "new-token", resp.APIKey)

	sessions.EXPECT().RotateAPIKey(gomock.Any(), session).
		Return("", &upstream.APIError{Status: http.StatusUnauthorized, Message: "Token tidak valid"})
	rec = httptest.NewRecorder()
	handler.RotateAPIKey(rec, newRequest(http.MethodPost, "/app/profile/api-key", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

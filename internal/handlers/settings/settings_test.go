package settings

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
	"github.com/GlebRadaev/otpshop/internal/service/prefsservice"
	"github.com/GlebRadaev/otpshop/pkg/auth"
	"github.com/GlebRadaev/otpshop/pkg/numfmt"
	"github.com/GlebRadaev/otpshop/pkg/utils"
)

func NewMock(t *testing.T) (*SettingsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, url, body, scheme string) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	if scheme != "" {
		req.Header.Set(prefsservice.ColorSchemeHint, scheme)
	}
	return req.WithContext(auth.WithProfileID(req.Context(), "p1"))
}

func TestClientHints(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	rec := httptest.NewRecorder()

	ClientHints(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app/welcome", nil))

	assert.Equal(t, prefsservice.ColorSchemeHint, rec.Header().Get("Accept-CH"))
	assert.Equal(t, prefsservice.ColorSchemeHint, rec.Header().Get("Critical-CH"))
	assert.Contains(t, rec.Header().Values("Vary"), prefsservice.ColorSchemeHint)
}

func TestGetThemeFollowsHint(t *testing.T) {
	handler, service := NewMock(t)

	for _, scheme := range []string{"light", "dark"} {
		service.EXPECT().Get(gomock.Any(), "p1", scheme).Return(&prefsservice.Prefs{
			Theme:        domain.Theme{Mode: prefsservice.ModeSystem, Accent: "blue", Resolved: scheme},
			NumberFormat: numfmt.Plus,
		}, nil)
		rec := httptest.NewRecorder()

		handler.GetTheme(rec, newRequest(http.MethodGet, "/app/settings/theme", "", scheme))

		require.Equal(t, http.StatusOK, rec.Code)
		var prefs prefsservice.Prefs
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&prefs))
		assert.Equal(t, scheme, prefs.Theme.Resolved)
	}
}

func TestSetThemeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Dark teal",
			body: `{"mode":"dark","accent":"teal"}`,
			prepareMock: func() {
				service.EXPECT().SetTheme(gomock.Any(), "p1", "dark", "teal", "").
					Return(&domain.Theme{Mode: "dark", Accent: "teal", Resolved: "dark"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Accent only",
			body: `{"accent":"green"}`,
			prepareMock: func() {
				service.EXPECT().SetTheme(gomock.Any(), "p1", "", "green", "").
					Return(&domain.Theme{Mode: "light", Accent: "green", Resolved: "light"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Unknown accent",
			body:          `{"accent":"pink"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "accent harus salah satu dari: blue green purple orange red teal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rec := httptest.NewRecorder()

			handler.SetTheme(rec, newRequest(http.MethodPut, "/app/settings/theme", tt.body, ""))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestSetNumberFormatHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().SetNumberFormat(gomock.Any(), "p1", "local").Return(numfmt.Local, nil)
	rec := httptest.NewRecorder()
	handler.SetNumberFormat(rec, newRequest(http.MethodPut, "/app/settings/number-format", `{"format":"local"}`, ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.NumberFormatResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "local", resp.Format)

	rec = httptest.NewRecorder()
	handler.SetNumberFormat(rec, newRequest(http.MethodPut, "/app/settings/number-format", `{"format":"dots"}`, ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

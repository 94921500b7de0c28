package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/pkg/clients"
	"github.com/GlebRadaev/otpshop/pkg/utils"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(clients.NewHTTPClient(srv.URL, time.Second, 0))
}

func TestClient_Me(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedUser    *domain.User
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:   "Success",
			status: http.StatusOK,
			body:   `{"success":true,"data":{"id":7,"username":"budi","email":"budi@mail.id","balance":"25000","created_at":"2024-05-01 10:00:00"}}`,
			expectedUser: &domain.User{
				ID:       "7",
				Username: "budi",
				Email:    "budi@mail.id",
				Balance:  decimal.NewFromInt(25000),
			},
		},
		{
			name:            "Upstream message is surfaced",
			status:          http.StatusUnauthorized,
			body:            `{"success":false,"message":"Token tidak valid"}`,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Token tidak valid",
		},
		{
			name:            "Non json failure falls back",
			status:          http.StatusBadGateway,
			body:            `<html>bad gateway</html>`,
			expectedStatus:  http.StatusBadGateway,
			expectedMessage: utils.FallbackMessage,
		},
		{
			name:            "Success false on 200",
			status:          http.StatusOK,
			body:            `{"success":false,"error":"Akun diblokir"}`,
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: "Akun diblokir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/auth/me", r.URL.Path)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			user, err := c.Me(context.Background(), "tok")
			if tt.expectedUser != nil {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedUser.ID, user.ID)
				assert.Equal(t, tt.expectedUser.Username, user.Username)
				assert.True(t, tt.expectedUser.Balance.Equal(user.Balance))
				return
			}
			apiErr, ok := IsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tt.expectedStatus, apiErr.Status)
			assert.Equal(t, tt.expectedMessage, apiErr.Message)
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	c := New(clients.NewHTTPClient("http://127.0.0.1:1", 200*time.Millisecond, 0))

	_, err := c.Services(context.Background(), "tok")
	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, utils.FallbackMessage, apiErr.Message)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestClient_Buy(t *testing.T) {
	var query url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/buy", r.URL.Path)
		query = r.URL.Query()
		_, _ = w.Write([]byte(`{"success":true,"data":{"order_id":"991","phone_number":"6281234567890","status":"ACTIVE","created_at":"2024-05-01T10:00:00Z","price":3000}}`))
	})

	order, err := c.Buy(context.Background(), "tok", domain.BuyRequest{
		ServiceID:  "wa",
		CountryID:  "6",
		ProviderID: "2",
		ServerID:   "1",
		OperatorID: "any",
		Price:      decimal.NewFromInt(3000),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ID("991"), order.OrderID)
	assert.Equal(t, domain.OrderActive, order.Status)
	assert.Equal(t, "3000", query.Get("expected_price"))
	assert.Equal(t, "any", query.Get("operator_id"))
	assert.Equal(t, "wa", query.Get("service_id"))
	assert.Equal(t, "1", query.Get("server_id"))
}

func TestClient_Finalized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[12,"13",{"order_id":14},{"other":1}]}`))
	})

	ids, err := c.Finalized(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, []domain.ID{"12", "13", "14"}, ids)
}

func TestClient_ChangeID(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expected    string
		expectError bool
	}{
		{name: "New token", body: `{"success":true,"data":{"token":"fresh"}}`, expected: "fresh"},
		{name: "Missing token", body: `{"success":true,"data":{}}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/change_id", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			})

			token, err := c.ChangeID(context.Background(), "stale")
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, token)
		})
	}
}

func TestClient_AddWhitelist(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	})

	assert.NoError(t, c.AddWhitelist(context.Background(), "tok", "10.0.0.1"))
}

package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/internal/dto"
	"github.com/GlebRadaev/otpshop/internal/service/orderservice"
	"github.com/GlebRadaev/otpshop/internal/service/prefsservice"
	"github.com/GlebRadaev/otpshop/internal/upstream"
	"github.com/GlebRadaev/otpshop/pkg/auth"
	"github.com/GlebRadaev/otpshop/pkg/countdown"
	"github.com/GlebRadaev/otpshop/pkg/numfmt"
	"github.com/GlebRadaev/otpshop/pkg/utils"
)

var session = domain.Session{ProfileID: "p1", Token: "tok"}

func NewMock(t *testing.T) (*OrderHandler, *MockService, *MockPrefsService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	prefs := NewMockPrefsService(ctrl)
	handler := New(service, prefs)
	defer ctrl.Finish()
	prefs.EXPECT().Get(gomock.Any(), "p1", gomock.Any()).
		Return(&prefsservice.Prefs{NumberFormat: numfmt.Local}, nil).AnyTimes()
	return handler, service, prefs
}

func newRequest(method, url, body, id string) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	ctx := auth.WithSession(req.Context(), session)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func activeView() orderservice.OrderView {
	created := time.Now().Add(-time.Minute)
	return orderservice.OrderView{
		Order: domain.Order{
			OrderID:     "A1",
			PhoneNumber: "6281234567890",
			Status:      domain.OrderActive,
			CreatedAt:   domain.NewTimestamp(created),
			Price:       decimal.NewFromInt(3500),
		},
		Timers: countdown.At(created, time.Now()),
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Message
}

func TestBuyHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	body := `{"service_id":12,"country_id":"6","provider_id":"3","operator_id":"any","price":"3500"}`
	want := domain.BuyRequest{
		ServiceID:  "12",
		CountryID:  "6",
		ProviderID: "3",
		OperatorID: "any",
		Price:      decimal.NewFromInt(3500),
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful purchase",
			body: body,
			prepareMock: func() {
				view := activeView()
				service.EXPECT().Buy(gomock.Any(), session, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.Session, req domain.BuyRequest) (*orderservice.OrderView, error) {
						assert.Equal(t, want.ServiceID, req.ServiceID)
						assert.True(t, want.Price.Equal(req.Price))
						return &view, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Insufficient balance",
			body: body,
			prepareMock: func() {
				service.EXPECT().Buy(gomock.Any(), session, gomock.Any()).Return(nil, orderservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "Saldo tidak cukup",
		},
		{
			name: "Price changed upstream",
			body: body,
			prepareMock: func() {
				service.EXPECT().Buy(gomock.Any(), session, gomock.Any()).
					Return(nil, &upstream.APIError{Status: http.StatusBadRequest, Message: "Harga berubah"})
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Harga berubah",
		},
		{
			name:          "Operator not chosen",
			body:          `{"service_id":"12","country_id":"6","provider_id":"3"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "operator_id wajib diisi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rec := httptest.NewRecorder()

			handler.Buy(rec, newRequest(http.MethodPost, "/app/orders", tt.body, ""))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rec))
				return
			}
			var resp dto.OrderResponseDTO
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, domain.ID("A1"), resp.OrderID)
			assert.Equal(t, "081234567890", resp.DisplayNumber)
		})
	}
}

func TestGetCurrentHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().Current(gomock.Any(), session).Return(nil, nil)
	rec := httptest.NewRecorder()
	handler.GetCurrent(rec, newRequest(http.MethodGet, "/app/orders/current", "", ""))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	view := activeView()
	view.Status = domain.OrderCompleted
	view.OTPCode = "123456"
	view.Message = orderservice.MessageOTPReceived
	service.EXPECT().Current(gomock.Any(), session).Return(&view, nil)
	rec = httptest.NewRecorder()
	handler.GetCurrent(rec, newRequest(http.MethodGet, "/app/orders/current", "", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.OrderResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "123456", resp.OTPCode)
	assert.Equal(t, orderservice.MessageOTPReceived, resp.Message)
}

func TestRefreshCurrentHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().Refresh(gomock.Any(), session).Return(nil, orderservice.ErrNoActiveOrder)
	rec := httptest.NewRecorder()
	handler.RefreshCurrent(rec, newRequest(http.MethodPost, "/app/orders/current/refresh", "", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Tidak ada pesanan aktif", decodeError(t, rec))
}

func TestCancelHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Cancel after cooldown",
			body: `{"created_at":"2024-05-01T10:00:00Z"}`,
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), session, domain.ID("A1"), createdAt).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Cancel without body",
			body: "",
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), session, domain.ID("A1"), time.Time{}).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Cooldown still running",
			body: `{"created_at":"2024-05-01T10:00:00Z"}`,
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), session, domain.ID("A1"), createdAt).
					Return(&orderservice.CooldownError{Remaining: 180 * time.Second})
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Pembatalan tersedia dalam 180 detik",
		},
		{
			name: "Unknown order",
			body: "",
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), session, domain.ID("A1"), time.Time{}).
					Return(orderservice.ErrUnknownOrder)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Pesanan tidak ditemukan",
		},
		{
			name:          "Malformed body",
			body:          `{"created_at":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Format permintaan tidak valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rec := httptest.NewRecorder()

			handler.Cancel(rec, newRequest(http.MethodPost, "/app/orders/A1/cancel", tt.body, "A1"))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rec))
			}
		})
	}
}

func TestCooldownMessage(t *testing.T) {
	assert.Equal(t, "Pembatalan tersedia dalam 180 detik", CooldownMessage(179500*time.Millisecond))
	assert.Equal(t, "Pembatalan tersedia dalam 1 detik", CooldownMessage(time.Millisecond))
}

func TestHideAndCloseHandlers(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().Hide(gomock.Any(), session, domain.ID("A1")).Return(nil)
	rec := httptest.NewRecorder()
	handler.Hide(rec, newRequest(http.MethodPost, "/app/orders/A1/hide", "", "A1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	service.EXPECT().Close(gomock.Any(), session, domain.ID("A1")).
		Return(&upstream.APIError{Status: http.StatusNotFound, Message: "Pesanan tidak ditemukan"})
	rec = httptest.NewRecorder()
	handler.Close(rec, newRequest(http.MethodPost, "/app/orders/A1/close", "", "A1"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Pesanan tidak ditemukan", decodeError(t, rec))
}

func TestGetActiveAndStatusHandlers(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().ActiveOrders(gomock.Any(), session).Return([]orderservice.OrderView{activeView()}, nil)
	rec := httptest.NewRecorder()
	handler.GetActive(rec, newRequest(http.MethodGet, "/app/orders/active", "", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var list []dto.OrderResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "081234567890", list[0].DisplayNumber)

	view := activeView()
	service.EXPECT().Status(gomock.Any(), session, domain.ID("A1")).Return(&view, nil)
	rec = httptest.NewRecorder()
	handler.GetStatus(rec, newRequest(http.MethodGet, "/app/orders/A1/status", "", "A1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	service.EXPECT().Status(gomock.Any(), session, domain.ID("A1")).Return(nil, errors.New("db down"))
	rec = httptest.NewRecorder()
	handler.GetStatus(rec, newRequest(http.MethodGet, "/app/orders/A1/status", "", "A1"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWatchHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	handler.tickInterval = 10 * time.Millisecond
	handler.refreshInterval = 25 * time.Millisecond

	views := []orderservice.OrderView{activeView()}
	service.EXPECT().ActiveOrders(gomock.Any(), session).Return(views, nil).MinTimes(2)
	service.EXPECT().Timers(gomock.Any()).
		DoAndReturn(func(v []orderservice.OrderView) []orderservice.OrderView { return v }).MinTimes(1)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()
	req := newRequest(http.MethodGet, "/app/orders/watch", "", "").WithContext(ctx)
	req = req.WithContext(auth.WithSession(req.Context(), session))
	rec := httptest.NewRecorder()

	handler.Watch(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "event:orders\n"))
	assert.Contains(t, body, "event:tick\n")
	assert.Contains(t, body, `"display_number":"081234567890"`)
}

func TestWatchHandlerInitialFailure(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().ActiveOrders(gomock.Any(), session).
		Return(nil, &upstream.APIError{Status: http.StatusUnauthorized, Message: "Token tidak valid"})
	rec := httptest.NewRecorder()
	handler.Watch(rec, newRequest(http.MethodGet, "/app/orders/watch", "", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token tidak valid", decodeError(t, rec))
}

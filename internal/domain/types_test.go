package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/otpshop/pkg/countdown"
)

func TestOrderDecoding(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Order
	}{
		{
			name: "Numeric id and sql datetime",
			body: `{"order_id":123,"phone_number":"6281234567890","status":"RECEIVED","otp_code":"4321","created_at":"2024-05-01 10:00:00","price":"1500"}`,
			expected: Order{
				OrderID:     "123",
				PhoneNumber: "6281234567890",
				Status:      "RECEIVED",
				OTPCode:     "4321",
				CreatedAt:   NewTimestamp(time.Date(2024, 5, 1, 10, 0, 0, 0, UpstreamLocation)),
				Price:       decimal.NewFromInt(1500),
			},
		},
		{
			name: "String id and unix seconds",
			body: `{"order_id":"A-9","phone_number":"+12025550100","status":"ACTIVE","created_at":1714557600,"price":2500.5}`,
			expected: Order{
				OrderID:     "A-9",
				PhoneNumber: "+12025550100",
				Status:      "ACTIVE",
				CreatedAt:   NewTimestamp(time.Unix(1714557600, 0)),
				Price:       decimal.RequireFromString("2500.5"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Order
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.expected.OrderID, got.OrderID)
			assert.Equal(t, tt.expected.PhoneNumber, got.PhoneNumber)
			assert.Equal(t, tt.expected.Status, got.Status)
			assert.Equal(t, tt.expected.OTPCode, got.OTPCode)
			assert.True(t, tt.expected.CreatedAt.Equal(got.CreatedAt.Time))
			assert.True(t, tt.expected.Price.Equal(got.Price))
		})
	}
}

func TestNaiveTimestampIgnoresHostZone(t *testing.T) {
	local := time.Local
	time.Local = time.UTC
	defer func() { time.Local = local }()

	var order Order
	require.NoError(t, json.Unmarshal([]byte(`{"created_at":"2024-05-01 10:00:00"}`), &order))

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, UpstreamLocation)
	assert.True(t, created.Equal(order.CreatedAt.Time))
	assert.Equal(t, 3*time.Minute, countdown.Cooldown(order.CreatedAt.Time, created.Add(time.Minute)))
	assert.Equal(t, time.Duration(0), countdown.Cooldown(order.CreatedAt.Time, created.Add(5*time.Minute)))
	assert.Equal(t, 19*time.Minute, countdown.Expiry(order.CreatedAt.Time, created.Add(time.Minute)))
}

func TestLoadUpstreamLocation(t *testing.T) {
	original := UpstreamLocation
	defer func() { UpstreamLocation = original }()

	require.NoError(t, LoadUpstreamLocation("UTC"))
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-01 10:00:00"`), &ts))
	assert.True(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).Equal(ts.Time))

	assert.Error(t, LoadUpstreamLocation("Nowhere/Atlantis"))
	assert.Equal(t, time.UTC, UpstreamLocation)
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestOrderStatusNormalize(t *testing.T) {
	tests := []struct {
		in        OrderStatus
		expected  OrderStatus
		completed bool
		canceled  bool
		final     bool
	}{
		{in: "ACTIVE", expected: OrderActive},
		{in: "COMPLETED", expected: OrderCompleted, completed: true, final: true},
		{in: "received", expected: OrderCompleted, completed: true, final: true},
		{in: "CANCELLED", expected: OrderCanceled, canceled: true, final: true},
		{in: "canceled", expected: OrderCanceled, canceled: true, final: true},
		{in: "EXPIRED", expected: OrderExpired, final: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in.Normalize())
			assert.Equal(t, tt.completed, tt.in.IsCompleted())
			assert.Equal(t, tt.canceled, tt.in.IsCanceled())
			assert.Equal(t, tt.final, tt.in.IsFinal())
		})
	}
}

func TestDepositStatusNormalize(t *testing.T) {
	assert.Equal(t, DepositSuccess, DepositStatus("SUCCESS").Normalize())
	assert.Equal(t, DepositCanceled, DepositStatus("cancelled").Normalize())
	assert.Equal(t, DepositExpired, DepositStatus("expired").Normalize())
	assert.Equal(t, DepositPending, DepositStatus("").Normalize())
}

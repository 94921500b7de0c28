package catalogservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/otpshop/internal/domain"
)

func NewMock(t *testing.T, now time.Time) (*Service, *MockAPI, *MockCache) {
	ctrl := gomock.NewController(t)
	api := NewMockAPI(ctrl)
	cache := NewMockCache(ctrl)
	service := New(api, cache, time.Hour)
	service.now = func() time.Time { return now }
	return service, api, cache
}

func TestServices(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	session := domain.Session{ProfileID: "p1", Token: "tok"}
	fresh := []domain.Service{{ServiceID: "1", Name: "WhatsApp"}}
	cachedPayload := []byte(`[{"service_id":"9","name":"Telegram"}]`)

	tests := []struct {
		name        string
		prepareMock func(api *MockAPI, cache *MockCache)
		expected    []domain.Service
		expectErr   bool
	}{
		{
			name: "Fresh cache is served without a request",
			prepareMock: func(api *MockAPI, cache *MockCache) {
				cache.EXPECT().Get(gomock.Any(), servicesKey).Return(cachedPayload, now.Add(-59*time.Minute), nil)
			},
			expected: []domain.Service{{ServiceID: "9", Name: "Telegram"}},
		},
		{
			name: "Cache older than an hour is refetched",
			prepareMock: func(api *MockAPI, cache *MockCache) {
				cache.EXPECT().Get(gomock.Any(), servicesKey).Return(cachedPayload, now.Add(-time.Hour), nil)
				api.EXPECT().Services(gomock.Any(), "tok").Return(fresh, nil)
				cache.EXPECT().Put(gomock.Any(), servicesKey, gomock.Any(), now).Return(nil)
			},
			expected: fresh,
		},
		{
			name: "Empty cache is filled",
			prepareMock: func(api *MockAPI, cache *MockCache) {
				cache.EXPECT().Get(gomock.Any(), servicesKey).Return(nil, time.Time{}, nil)
				api.EXPECT().Services(gomock.Any(), "tok").Return(fresh, nil)
				cache.EXPECT().Put(gomock.Any(), servicesKey, gomock.Any(), now).Return(errors.New("db error"))
			},
			expected: fresh,
		},
		{
			name: "Unreadable cache is refetched",
			prepareMock: func(api *MockAPI, cache *MockCache) {
				cache.EXPECT().Get(gomock.Any(), servicesKey).Return([]byte("{"), now, nil)
				api.EXPECT().Services(gomock.Any(), "tok").Return(fresh, nil)
				cache.EXPECT().Put(gomock.Any(), servicesKey, gomock.Any(), now).Return(nil)
			},
			expected: fresh,
		},
		{
			name: "Upstream failure",
			prepareMock: func(api *MockAPI, cache *MockCache) {
				cache.EXPECT().Get(gomock.Any(), servicesKey).Return(nil, time.Time{}, errors.New("db error"))
				api.EXPECT().Services(gomock.Any(), "tok").Return(nil, errors.New("upstream down"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, api, cache := NewMock(t, now)
			tt.prepareMock(api, cache)

			services, err := service.Services(context.Background(), session)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, services)
		})
	}
}

func TestCountries(t *testing.T) {
	service, api, _ := NewMock(t, time.Now())
	session := domain.Session{Token: "tok"}

	_, err := service.Countries(context.Background(), session, "")
	assert.ErrorIs(t, err, ErrServiceRequired)

	countries := []domain.Country{{ID: "6", Name: "Indonesia", ProviderID: "2"}}
	api.EXPECT().Countries(gomock.Any(), "tok", domain.ID("1")).Return(countries, nil)
	got, err := service.Countries(context.Background(), session, "1")
	assert.NoError(t, err)
	assert.Equal(t, countries, got)

	api.EXPECT().Countries(gomock.Any(), "tok", domain.ID("1")).Return(nil, errors.New("upstream down"))
	_, err = service.Countries(context.Background(), session, "1")
	assert.Error(t, err)
}

func TestOperators(t *testing.T) {
	service, api, _ := NewMock(t, time.Now())
	session := domain.Session{Token: "tok"}

	_, err := service.Operators(context.Background(), session, "6", "")
	assert.ErrorIs(t, err, ErrCountryRequired)

	operators := []domain.Operator{{ID: "1", Name: "any"}}
	api.EXPECT().Operators(gomock.Any(), "tok", domain.ID("6"), domain.ID("2")).Return(operators, nil)
	got, err := service.Operators(context.Background(), session, "6", "2")
	assert.NoError(t, err)
	assert.Equal(t, operators, got)
}

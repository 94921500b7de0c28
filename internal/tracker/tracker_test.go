package tracker

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/otpshop/internal/config"
	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/internal/upstream"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockAPI, *MockWorkerPoolI) {
	cfg := &config.Config{TrackerInterval: 10 * time.Millisecond}
	ctrl := gomock.NewController(t)

	repo := NewMockRepo(ctrl)
	api := NewMockAPI(ctrl)
	pool := NewMockWorkerPoolI(ctrl)
	service := New(cfg, repo, api)
	service.workerPool = pool
	service.now = func() time.Time { return now }
	return service, repo, api, pool
}

func runInline(pool *MockWorkerPoolI) {
	pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, task Task) error {
		return task()
	}).AnyTimes()
}

func tracked(id domain.ID, age time.Duration) domain.TrackedOrder {
	return domain.TrackedOrder{
		ProfileID: "p-" + id.String(),
		Token:     "tok",
		Order: domain.Order{
			OrderID:   id,
			Status:    domain.OrderActive,
			CreatedAt: domain.NewTimestamp(now.Add(-age)),
		},
	}
}

func TestService_Start(t *testing.T) {
	service, repo, _, pool := NewMock(t)
	repo.EXPECT().FindForTracking(gomock.Any(), uint32(500)).Return(nil, nil).AnyTimes()
	pool.EXPECT().Close()

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-service.Done():
	case <-time.After(time.Second):
		t.Fatal("tracker did not stop")
	}
}

func TestService_StartPollsRightAway(t *testing.T) {
	service, repo, _, pool := NewMock(t)
	service.updateInterval = time.Hour
	polled := make(chan struct{})
	repo.EXPECT().FindForTracking(gomock.Any(), uint32(500)).DoAndReturn(func(context.Context, uint32) ([]domain.TrackedOrder, error) {
		close(polled)
		return nil, nil
	})
	pool.EXPECT().Close()

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)

	select {
	case <-polled:
	case <-time.After(time.Second):
		t.Fatal("tracker did not poll at start")
	}
	cancel()
	<-service.Done()
}

func TestService_trackOrders(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(repo *MockRepo, api *MockAPI, pool *MockWorkerPoolI)
		expectErr   bool
	}{
		{
			name: "OTP arrival is recorded",
			prepareMock: func(repo *MockRepo, api *MockAPI, pool *MockWorkerPoolI) {
				runInline(pool)
				repo.EXPECT().FindForTracking(gomock.Any(), uint32(500)).Return([]domain.TrackedOrder{tracked("1", time.Minute)}, nil)
				api.EXPECT().CheckStatus(gomock.Any(), "tok", domain.ID("1")).
					Return(&domain.Order{Status: "RECEIVED", OTPCode: "554433"}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), "p-1", domain.ID("1"), domain.OrderCompleted, "554433").Return(nil)
			},
		},
		{
			name: "Unchanged order is not written",
			prepareMock: func(repo *MockRepo, api *MockAPI, pool *MockWorkerPoolI) {
				runInline(pool)
				repo.EXPECT().FindForTracking(gomock.Any(), uint32(500)).Return([]domain.TrackedOrder{tracked("2", time.Minute)}, nil)
				api.EXPECT().CheckStatus(gomock.Any(), "tok", domain.ID("2")).Return(&domain.Order{Status: "WAITING"}, nil)
			},
		},
		{
			name: "Expired order is closed locally without a request",
			prepareMock: func(repo *MockRepo, api *MockAPI, pool *MockWorkerPoolI) {
				runInline(pool)
				repo.EXPECT().FindForTracking(gomock.Any(), uint32(500)).Return([]domain.TrackedOrder{tracked("3", 21*time.Minute)}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), "p-3", domain.ID("3"), domain.OrderExpired, "").Return(nil)
			},
		},
		{
			name: "Rate limit leaves the order for the next round",
			prepareMock: func(repo *MockRepo, api *MockAPI, pool *MockWorkerPoolI) {
				runInline(pool)
				repo.EXPECT().FindForTracking(gomock.Any(), uint32(500)).Return([]domain.TrackedOrder{tracked("4", time.Minute)}, nil)
				api.EXPECT().CheckStatus(gomock.Any(), "tok", domain.ID("4")).
					Return(nil, &upstream.APIError{Status: http.StatusTooManyRequests, Message: "slow down"})
			},
		},
		{
			name: "Fails when finding orders",
			prepareMock: func(repo *MockRepo, api *MockAPI, pool *MockWorkerPoolI) {
				repo.EXPECT().FindForTracking(gomock.Any(), uint32(500)).Return(nil, errors.New("db error"))
			},
			expectErr: true,
		},
		{
			name: "Error in workerPool AddTask",
			prepareMock: func(repo *MockRepo, api *MockAPI, pool *MockWorkerPoolI) {
				repo.EXPECT().FindForTracking(gomock.Any(), uint32(500)).Return([]domain.TrackedOrder{tracked("5", time.Minute)}, nil)
				pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(context.Canceled)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, api, pool := NewMock(t)
			tt.prepareMock(repo, api, pool)

			err := service.trackOrders(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			service.inFlight.Range(func(key, _ any) bool {
				t.Errorf("key %v left in flight", key)
				return true
			})
		})
	}
}

func TestService_trackOrders_SkipsInFlight(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	order := tracked("6", time.Minute)
	service.inFlight.Store("p-6/6", struct{}{})

	repo.EXPECT().FindForTracking(gomock.Any(), uint32(500)).Return([]domain.TrackedOrder{order}, nil)
	assert.NoError(t, service.trackOrders(context.Background()))
}

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/otpshop/pkg/countdown"
)

func NewMock(t *testing.T) (*Janitor, *MockOrderPruner, *MockCatalogExpirer) {
	ctrl := gomock.NewController(t)
	orders := NewMockOrderPruner(ctrl)
	catalog := NewMockCatalogExpirer(ctrl)
	j := NewJanitor(orders, catalog, time.Hour)
	return j, orders, catalog
}

func TestPruneOrders(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	tests := []struct {
		name string
		err  error
	}{
		{name: "removes stale snapshots"},
		{name: "repository error is swallowed", err: errors.New("db down")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, orders, _ := NewMock(t)
			j.now = func() time.Time { return now }

			cutoff := now.Add(-(countdown.OrderLifetime + time.Hour))
			orders.EXPECT().PruneStale(ctx, cutoff).Return(int64(3), tt.err)

			assert.NotPanics(t, func() { j.pruneOrders(ctx) })
		})
	}
}

func TestExpireCatalog(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	j, _, catalog := NewMock(t)
	j.now = func() time.Time { return now }
	catalog.EXPECT().DeleteOlderThan(ctx, now.Add(-time.Hour)).Return(int64(0), nil)

	j.expireCatalog(ctx)
}

func TestJanitorStart(t *testing.T) {
	j, _, _ := NewMock(t)
	ctx, cancel := context.WithCancel(context.Background())

	done, err := j.Start(ctx)
	assert.NoError(t, err)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

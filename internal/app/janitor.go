package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/GlebRadaev/otpshop/pkg/countdown"
)

const (
	pruneSchedule  = "@every 10m"
	expireSchedule = "@hourly"
)

type OrderPruner interface {
	PruneStale(ctx context.Context, olderThan time.Time) (int64, error)
}

type CatalogExpirer interface {
	DeleteOlderThan(ctx context.Context, t time.Time) (int64, error)
}

// Janitor drops order snapshots well past their lifetime and stale catalog cache rows.
type Janitor struct {
	orders     OrderPruner
	catalog    CatalogExpirer
	catalogTTL time.Duration
	now        func() time.Time
}

func NewJanitor(orders OrderPruner, catalog CatalogExpirer, catalogTTL time.Duration) *Janitor {
	return &Janitor{
		orders:     orders,
		catalog:    catalog,
		catalogTTL: catalogTTL,
		now:        time.Now,
	}
}

// Start schedules the cleanup jobs and stops them once ctx is done.
// The returned channel closes after running jobs have finished.
func (j *Janitor) Start(ctx context.Context) (<-chan struct{}, error) {
	c := cron.New()
	if _, err := c.AddFunc(pruneSchedule, func() { j.pruneOrders(ctx) }); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(expireSchedule, func() { j.expireCatalog(ctx) }); err != nil {
		return nil, err
	}
	c.Start()

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		<-c.Stop().Done()
	}()
	return done, nil
}

func (j *Janitor) pruneOrders(ctx context.Context) {
	cutoff := j.now().Add(-(countdown.OrderLifetime + time.Hour))
	n, err := j.orders.PruneStale(ctx, cutoff)
	if err != nil {
		zap.L().Error("can't prune order snapshots", zap.Error(err))
		return
	}
	if n > 0 {
		zap.L().Info("pruned order snapshots", zap.Int64("count", n))
	}
}

func (j *Janitor) expireCatalog(ctx context.Context) {
	n, err := j.catalog.DeleteOlderThan(ctx, j.now().Add(-j.catalogTTL))
	if err != nil {
		zap.L().Error("can't expire catalog cache", zap.Error(err))
		return
	}
	if n > 0 {
		zap.L().Debug("expired catalog cache", zap.Int64("count", n))
	}
}

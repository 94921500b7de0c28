// Package tracker keeps active-order snapshots fresh between page loads.
package tracker

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/otpshop/internal/config"
	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/internal/upstream"
	"github.com/GlebRadaev/otpshop/pkg/countdown"
	"github.com/GlebRadaev/otpshop/pkg/poller"
)

type Repo interface {
	FindForTracking(ctx context.Context, limit uint32) ([]domain.TrackedOrder, error)
	UpdateStatus(ctx context.Context, profileID string, orderID domain.ID, status domain.OrderStatus, otp string) error
}

type API interface {
	CheckStatus(ctx context.Context, token string, orderID domain.ID) (*domain.Order, error)
}

type Service struct {
	repo           Repo
	api            API
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
	now            func() time.Time

	inFlight sync.Map
	done     chan struct{}
}

func New(cfg *config.Config, repo Repo, api API) *Service {
	return &Service{
		repo:           repo,
		api:            api,
		limit:          500,
		workerPool:     NewWorkerPool(10),
		updateInterval: cfg.TrackerInterval,
		now:            time.Now,
		done:           make(chan struct{}),
	}
}

// Start polls right away and then every interval until ctx is done.
// Done is closed once polling has stopped.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("order tracker started", zap.Duration("interval", s.updateInterval))
	go func() {
		defer close(s.done)
		defer s.workerPool.Close()
		poller.Task{
			Name:      "order-tracker",
			Interval:  s.updateInterval,
			Fn:        s.trackOrders,
			Immediate: true,
		}.Run(ctx)
	}()
}

func (s *Service) Done() <-chan struct{} {
	return s.done
}

func (s *Service) trackOrders(ctx context.Context) error {
	orders, err := s.repo.FindForTracking(ctx, s.limit)
	if err != nil {
		return fmt.Errorf("fetch orders for tracking: %w", err)
	}

	var g errgroup.Group
	for _, tracked := range orders {
		tracked := tracked
		key := tracked.ProfileID + "/" + tracked.Order.OrderID.String()

		if _, loaded := s.inFlight.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(key)
				return s.handleOrder(ctx, tracked)
			})
			if err != nil {
				s.inFlight.Delete(key)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *Service) handleOrder(ctx context.Context, tracked domain.TrackedOrder) error {
	order := tracked.Order
	if countdown.Expiry(order.CreatedAt.Time, s.now()) == 0 && order.OTPCode == "" {
		zap.L().Info("order expired without otp", zap.String("order", order.OrderID.String()))
		return s.repo.UpdateStatus(ctx, tracked.ProfileID, order.OrderID, domain.OrderExpired, "")
	}

	fresh, err := s.api.CheckStatus(ctx, tracked.Token, order.OrderID)
	if err != nil {
		if apiErr, ok := upstream.IsAPIError(err); ok && apiErr.Status == http.StatusTooManyRequests {
			zap.L().Warn("rate limited, order left for next round", zap.String("order", order.OrderID.String()))
			return nil
		}
		return fmt.Errorf("check status of order %s: %w", order.OrderID, err)
	}

	status := fresh.Status.Normalize()
	otp := order.OTPCode
	if fresh.OTPCode != "" {
		otp = fresh.OTPCode
	}
	if status == order.Status.Normalize() && otp == order.OTPCode {
		return nil
	}

	zap.L().Info("order status changed",
		zap.String("order", order.OrderID.String()),
		zap.String("from", string(order.Status)),
		zap.String("to", string(status)))
	if err := s.repo.UpdateStatus(ctx, tracked.ProfileID, order.OrderID, status, otp); err != nil {
		return fmt.Errorf("update order %s: %w", order.OrderID, err)
	}
	return nil
}

package orderservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/pkg/countdown"
)

type API interface {
	Me(ctx context.Context, token string) (*domain.User, error)
	Buy(ctx context.Context, token string, req domain.BuyRequest) (*domain.Order, error)
	CheckStatus(ctx context.Context, token string, orderID domain.ID) (*domain.Order, error)
	CancelOrder(ctx context.Context, token string, orderID domain.ID) error
	History(ctx context.Context, token string) ([]domain.Order, error)
	Finalized(ctx context.Context, token string) ([]domain.ID, error)
	CloseOrder(ctx context.Context, token string, orderID domain.ID) error
}

type ActiveRepo interface {
	Save(ctx context.Context, profileID string, order *domain.Order) error
	Get(ctx context.Context, profileID string) (*domain.Order, error)
	Delete(ctx context.Context, profileID string, orderID domain.ID) error
}

type HiddenRepo interface {
	Hide(ctx context.Context, profileID string, orderID domain.ID) error
	HiddenIDs(ctx context.Context, profileID string) ([]domain.ID, error)
}

type ProfileRepo interface {
	Get(ctx context.Context, profileID string) (*domain.Profile, error)
	SetBalance(ctx context.Context, profileID string, balance decimal.Decimal) error
}

const (
	MessageOTPReceived = "Kode OTP diterima"
	MessageCanceled    = "Pesanan dibatalkan"
	MessageExpired     = "Waktu pesanan habis, OTP tidak diterima"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrCooldownActive      = errors.New("cancel cooldown active")
	ErrNoActiveOrder       = errors.New("no active order")
	ErrUnknownOrder        = errors.New("order not found")
)

// CooldownError refuses a cancel that comes before the cooldown has elapsed.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cancel available in %s", e.Remaining.Round(time.Second))
}

func (e *CooldownError) Is(target error) bool {
	return target == ErrCooldownActive
}

// OrderView is an order as a screen shows it at one tick.
type OrderView struct {
	domain.Order
	Timers  countdown.Timers `json:"timers"`
	Message string           `json:"message,omitempty"`
}

type Service struct {
	api      API
	active   ActiveRepo
	hidden   HiddenRepo
	profiles ProfileRepo
	now      func() time.Time
}

func New(api API, active ActiveRepo, hidden HiddenRepo, profiles ProfileRepo) *Service {
	return &Service{
		api:      api,
		active:   active,
		hidden:   hidden,
		profiles: profiles,
		now:      time.Now,
	}
}

// Buy rents a number. A known balance below the price is refused before anything is sent upstream.
func (s *Service) Buy(ctx context.Context, session domain.Session, req domain.BuyRequest) (*OrderView, error) {
	balance, err := s.balance(ctx, session)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(req.Price) {
		zap.L().Info("purchase refused, balance too low",
			zap.String("profile", session.ProfileID),
			zap.String("balance", balance.String()),
			zap.String("price", req.Price.String()))
		return nil, ErrInsufficientBalance
	}

	order, err := s.api.Buy(ctx, session.Token, req)
	if err != nil {
		zap.L().Error("failed to buy number", zap.String("profile", session.ProfileID), zap.Error(err))
		return nil, err
	}
	order.Status = order.Status.Normalize()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = domain.NewTimestamp(s.now())
	}
	if order.Price.IsZero() {
		order.Price = req.Price
	}

	if err := s.active.Save(ctx, session.ProfileID, order); err != nil {
		zap.L().Error("can't save active order", zap.String("order", order.OrderID.String()), zap.Error(err))
	}
	s.adjustBalance(ctx, session.ProfileID, order.Price.Neg())

	view := s.view(*order)
	return &view, nil
}

// Current returns the active-order snapshot. A final snapshot is shown once, then cleared.
func (s *Service) Current(ctx context.Context, session domain.Session) (*OrderView, error) {
	order, err := s.active.Get(ctx, session.ProfileID)
	if err != nil || order == nil {
		return nil, err
	}
	return s.present(ctx, session, order)
}

// Refresh re-checks the snapshot's status upstream.
func (s *Service) Refresh(ctx context.Context, session domain.Session) (*OrderView, error) {
	snap, err := s.active.Get(ctx, session.ProfileID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrNoActiveOrder
	}
	fresh, err := s.api.CheckStatus(ctx, session.Token, snap.OrderID)
	if err != nil {
		zap.L().Error("failed to check order status", zap.String("order", snap.OrderID.String()), zap.Error(err))
		return nil, err
	}
	return s.sync(ctx, session, snap, fresh)
}

func (s *Service) Status(ctx context.Context, session domain.Session, orderID domain.ID) (*OrderView, error) {
	fresh, err := s.api.CheckStatus(ctx, session.Token, orderID)
	if err != nil {
		zap.L().Error("failed to check order status", zap.String("order", orderID.String()), zap.Error(err))
		return nil, err
	}
	snap, err := s.active.Get(ctx, session.ProfileID)
	if err != nil {
		return nil, err
	}
	if snap != nil && snap.OrderID == orderID {
		return s.sync(ctx, session, snap, fresh)
	}

	order := *fresh
	if order.OrderID == "" {
		order.OrderID = orderID
	}
	view := s.view(order)
	return &view, nil
}

// Cancel refuses with a *CooldownError until CancelCooldown has passed since createdAt.
// A zero createdAt is looked up from the snapshot or the order history; an order found in
// neither is refused with ErrUnknownOrder.
func (s *Service) Cancel(ctx context.Context, session domain.Session, orderID domain.ID, createdAt time.Time) error {
	snap, err := s.active.Get(ctx, session.ProfileID)
	if err != nil {
		return err
	}
	if snap != nil && snap.OrderID != orderID {
		snap = nil
	}
	if createdAt.IsZero() {
		if createdAt, err = s.createdAt(ctx, session, snap, orderID); err != nil {
			return err
		}
	}
	if left := countdown.Cooldown(createdAt, s.now()); left > 0 {
		return &CooldownError{Remaining: left}
	}

	if err := s.api.CancelOrder(ctx, session.Token, orderID); err != nil {
		zap.L().Error("failed to cancel order", zap.String("order", orderID.String()), zap.Error(err))
		return err
	}
	if err := s.active.Delete(ctx, session.ProfileID, orderID); err != nil {
		return err
	}
	if snap != nil {
		s.adjustBalance(ctx, session.ProfileID, snap.Price)
	}
	return nil
}

// ActiveOrders lists the orders still worth showing: the order history plus the snapshot,
// minus hidden and finalized ids, minus canceled or expired orders.
func (s *Service) ActiveOrders(ctx context.Context, session domain.Session) ([]OrderView, error) {
	var (
		history   []domain.Order
		finalized []domain.ID
		hidden    []domain.ID
		snap      *domain.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		history, err = s.api.History(gctx, session.Token)
		return err
	})
	g.Go(func() (err error) {
		finalized, err = s.api.Finalized(gctx, session.Token)
		return err
	})
	g.Go(func() (err error) {
		hidden, err = s.hidden.HiddenIDs(gctx, session.ProfileID)
		return err
	})
	g.Go(func() (err error) {
		snap, err = s.active.Get(gctx, session.ProfileID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load active orders", zap.String("profile", session.ProfileID), zap.Error(err))
		return nil, err
	}

	excluded := make(map[domain.ID]struct{}, len(finalized)+len(hidden))
	for _, id := range finalized {
		excluded[id] = struct{}{}
	}
	for _, id := range hidden {
		excluded[id] = struct{}{}
	}

	orders := history
	if snap != nil && !containsOrder(history, snap.OrderID) {
		orders = append([]domain.Order{*snap}, history...)
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		if _, ok := excluded[order.OrderID]; ok {
			continue
		}
		view := s.view(order)
		switch {
		case view.Status == domain.OrderCanceled, view.Status == domain.OrderExpired:
			continue
		case view.Status == domain.OrderActive && view.Timers.Expired && view.OTPCode == "":
			continue
		}
		views = append(views, view)
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt.Time)
	})
	return views, nil
}

// Hide removes the order from this profile's lists for good.
func (s *Service) Hide(ctx context.Context, session domain.Session, orderID domain.ID) error {
	if err := s.hidden.Hide(ctx, session.ProfileID, orderID); err != nil {
		return err
	}
	return s.active.Delete(ctx, session.ProfileID, orderID)
}

// Close marks the order finished upstream and hides it locally.
func (s *Service) Close(ctx context.Context, session domain.Session, orderID domain.ID) error {
	if err := s.api.CloseOrder(ctx, session.Token, orderID); err != nil {
		zap.L().Error("failed to close order", zap.String("order", orderID.String()), zap.Error(err))
		return err
	}
	return s.Hide(ctx, session, orderID)
}

// Timers recomputes countdowns for views already sent, without any request.
func (s *Service) Timers(views []OrderView) []OrderView {
	now := s.now()
	out := make([]OrderView, len(views))
	for i, v := range views {
		v.Timers = countdown.At(v.CreatedAt.Time, now)
		out[i] = v
	}
	return out
}

func (s *Service) sync(ctx context.Context, session domain.Session, snap, fresh *domain.Order) (*OrderView, error) {
	merged := *snap
	if fresh.Status != "" {
		merged.Status = fresh.Status.Normalize()
	}
	if fresh.OTPCode != "" {
		merged.OTPCode = fresh.OTPCode
	}
	if merged.Status == snap.Status.Normalize() && merged.OTPCode == snap.OTPCode {
		return s.present(ctx, session, &merged)
	}
	if !merged.Status.IsFinal() {
		if err := s.active.Save(ctx, session.ProfileID, &merged); err != nil {
			return nil, err
		}
	}
	return s.present(ctx, session, &merged)
}

func (s *Service) present(ctx context.Context, session domain.Session, order *domain.Order) (*OrderView, error) {
	view := s.view(*order)
	if order.Status.IsFinal() {
		if err := s.active.Delete(ctx, session.ProfileID, order.OrderID); err != nil {
			return nil, err
		}
	}
	return &view, nil
}

func (s *Service) view(order domain.Order) OrderView {
	order.Status = order.Status.Normalize()
	v := OrderView{
		Order:  order,
		Timers: countdown.At(order.CreatedAt.Time, s.now()),
	}
	switch {
	case order.Status == domain.OrderCompleted:
		v.Message = MessageOTPReceived
	case order.Status == domain.OrderCanceled:
		v.Message = MessageCanceled
	case order.Status == domain.OrderExpired, v.Timers.Expired && order.OTPCode == "":
		v.Message = MessageExpired
	}
	return v
}

func (s *Service) balance(ctx context.Context, session domain.Session) (decimal.Decimal, error) {
	profile, err := s.profiles.Get(ctx, session.ProfileID)
	if err != nil {
		return decimal.Zero, err
	}
	if profile != nil && profile.LastBalance != nil {
		return *profile.LastBalance, nil
	}
	user, err := s.api.Me(ctx, session.Token)
	if err != nil {
		zap.L().Error("failed to fetch balance", zap.String("profile", session.ProfileID), zap.Error(err))
		return decimal.Zero, err
	}
	if err := s.profiles.SetBalance(ctx, session.ProfileID, user.Balance); err != nil {
		zap.L().Warn("can't remember balance", zap.Error(err))
	}
	return user.Balance, nil
}

func (s *Service) adjustBalance(ctx context.Context, profileID string, delta decimal.Decimal) {
	profile, err := s.profiles.Get(ctx, profileID)
	if err != nil || profile == nil || profile.LastBalance == nil {
		return
	}
	if err := s.profiles.SetBalance(ctx, profileID, profile.LastBalance.Add(delta)); err != nil {
		zap.L().Warn("can't remember balance", zap.Error(err))
	}
}

func (s *Service) createdAt(ctx context.Context, session domain.Session, snap *domain.Order, orderID domain.ID) (time.Time, error) {
	if snap != nil && !snap.CreatedAt.IsZero() {
		return snap.CreatedAt.Time, nil
	}
	history, err := s.api.History(ctx, session.Token)
	if err != nil {
		zap.L().Error("can't look up order creation time", zap.String("order", orderID.String()), zap.Error(err))
		return time.Time{}, err
	}
	for _, o := range history {
		if o.OrderID == orderID && !o.CreatedAt.IsZero() {
			return o.CreatedAt.Time, nil
		}
	}
	zap.L().Warn("cancel refused, creation time unknown", zap.String("order", orderID.String()))
	return time.Time{}, ErrUnknownOrder
}

func containsOrder(orders []domain.Order, id domain.ID) bool {
	for _, o := range orders {
		if o.OrderID == id {
			return true
		}
	}
	return false
}

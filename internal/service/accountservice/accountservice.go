package accountservice

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/pkg/validate"
)

type API interface {
	Me(ctx context.Context, token string) (*domain.User, error)
	Whitelist(ctx context.Context, token string) ([]domain.WhitelistEntry, error)
	AddWhitelist(ctx context.Context, token, ip string) error
	RemoveWhitelist(ctx context.Context, token, ip string) error
	History(ctx context.Context, token string) ([]domain.Order, error)
}

type BalanceRepo interface {
	SetBalance(ctx context.Context, profileID string, balance decimal.Decimal) error
}

var (
	ErrWhitelistFull = errors.New("whitelist already holds an ip")
	ErrInvalidIP     = errors.New("invalid ip address")
)

type Service struct {
	api      API
	balances BalanceRepo
}

func New(api API, balances BalanceRepo) *Service {
	return &Service{
		api:      api,
		balances: balances,
	}
}

// Me fetches the account and remembers its balance for the purchase guard.
func (s *Service) Me(ctx context.Context, session domain.Session) (*domain.User, error) {
	user, err := s.api.Me(ctx, session.Token)
	if err != nil {
		zap.L().Error("failed to get account", zap.String("profile", session.ProfileID), zap.Error(err))
		return nil, err
	}
	if err := s.balances.SetBalance(ctx, session.ProfileID, user.Balance); err != nil {
		zap.L().Warn("can't remember balance", zap.Error(err))
	}
	return user, nil
}

func (s *Service) Whitelist(ctx context.Context, session domain.Session) ([]domain.WhitelistEntry, error) {
	entries, err := s.api.Whitelist(ctx, session.Token)
	if err != nil {
		zap.L().Error("failed to get whitelist", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// AddWhitelist registers ip. An account holds at most one whitelisted ip.
func (s *Service) AddWhitelist(ctx context.Context, session domain.Session, ip string) error {
	ip, err := s.checkIP(ip)
	if err != nil {
		return err
	}
	entries, err := s.Whitelist(ctx, session)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return ErrWhitelistFull
	}
	if err := s.api.AddWhitelist(ctx, session.Token, ip); err != nil {
		zap.L().Error("failed to add whitelist ip", zap.String("ip", ip), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) RemoveWhitelist(ctx context.Context, session domain.Session, ip string) error {
	ip, err := s.checkIP(ip)
	if err != nil {
		return err
	}
	if err := s.api.RemoveWhitelist(ctx, session.Token, ip); err != nil {
		zap.L().Error("failed to remove whitelist ip", zap.String("ip", ip), zap.Error(err))
		return err
	}
	return nil
}

// History lists past orders newest first.
func (s *Service) History(ctx context.Context, session domain.Session) ([]domain.Order, error) {
	orders, err := s.api.History(ctx, session.Token)
	if err != nil {
		zap.L().Error("failed to get order history", zap.Error(err))
		return nil, err
	}
	for i := range orders {
		orders[i].Status = orders[i].Status.Normalize()
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt.Time)
	})
	return orders, nil
}

func (s *Service) checkIP(ip string) (string, error) {
	ip = strings.TrimSpace(ip)
	if !validate.IsIP(ip) {
		return "", ErrInvalidIP
	}
	return ip, nil
}

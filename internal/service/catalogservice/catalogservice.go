package catalogservice

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/otpshop/internal/domain"
)

type API interface {
	Services(ctx context.Context, token string) ([]domain.Service, error)
	Countries(ctx context.Context, token string, serviceID domain.ID) ([]domain.Country, error)
	Operators(ctx context.Context, token string, country, providerID domain.ID) ([]domain.Operator, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, time.Time, error)
	Put(ctx context.Context, key string, payload []byte, fetchedAt time.Time) error
}

const servicesKey = "services"

var (
	ErrServiceRequired = errors.New("service id is required")
	ErrCountryRequired = errors.New("country and provider are required")
)

type Service struct {
	api   API
	cache Cache
	ttl   time.Duration
	now   func() time.Time
}

func New(api API, cache Cache, ttl time.Duration) *Service {
	return &Service{
		api:   api,
		cache: cache,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Services returns the service catalog, served from cache while it is younger than the TTL.
// Cache failures only cost a refetch.
func (s *Service) Services(ctx context.Context, session domain.Session) ([]domain.Service, error) {
	if cached, ok := s.cached(ctx); ok {
		return cached, nil
	}

	services, err := s.api.Services(ctx, session.Token)
	if err != nil {
		zap.L().Error("failed to fetch services", zap.Error(err))
		return nil, err
	}

	payload, err := json.Marshal(services)
	if err == nil {
		err = s.cache.Put(ctx, servicesKey, payload, s.now())
	}
	if err != nil {
		zap.L().Warn("can't cache services", zap.Error(err))
	}
	return services, nil
}

func (s *Service) cached(ctx context.Context) ([]domain.Service, bool) {
	payload, fetchedAt, err := s.cache.Get(ctx, servicesKey)
	if err != nil || fetchedAt.IsZero() || s.now().Sub(fetchedAt) >= s.ttl {
		return nil, false
	}
	var services []domain.Service
	if err := json.Unmarshal(payload, &services); err != nil {
		zap.L().Warn("discarding unreadable services cache", zap.Error(err))
		return nil, false
	}
	return services, true
}

func (s *Service) Countries(ctx context.Context, session domain.Session, serviceID domain.ID) ([]domain.Country, error) {
	if serviceID == "" {
		return nil, ErrServiceRequired
	}
	countries, err := s.api.Countries(ctx, session.Token, serviceID)
	if err != nil {
		zap.L().Error("failed to fetch countries", zap.String("service", serviceID.String()), zap.Error(err))
		return nil, err
	}
	return countries, nil
}

func (s *Service) Operators(ctx context.Context, session domain.Session, country, providerID domain.ID) ([]domain.Operator, error) {
	if country == "" || providerID == "" {
		return nil, ErrCountryRequired
	}
	operators, err := s.api.Operators(ctx, session.Token, country, providerID)
	if err != nil {
		zap.L().Error("failed to fetch operators", zap.String("country", country.String()), zap.Error(err))
		return nil, err
	}
	return operators, nil
}

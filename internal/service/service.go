package service

import (
	"fmt"

	"github.com/GlebRadaev/otpshop/internal/config"
	"github.com/GlebRadaev/otpshop/internal/docs"
	"github.com/GlebRadaev/otpshop/internal/repo"
	"github.com/GlebRadaev/otpshop/internal/service/accountservice"
	"github.com/GlebRadaev/otpshop/internal/service/catalogservice"
	"github.com/GlebRadaev/otpshop/internal/service/depositservice"
	"github.com/GlebRadaev/otpshop/internal/service/orderservice"
	"github.com/GlebRadaev/otpshop/internal/service/prefsservice"
	"github.com/GlebRadaev/otpshop/internal/service/sessionservice"
	"github.com/GlebRadaev/otpshop/internal/upstream"
	"github.com/GlebRadaev/otpshop/pkg/auth"
)

type Services struct {
	SessionService *sessionservice.Service
	CatalogService *catalogservice.Service
	OrderService   *orderservice.Service
	DepositService *depositservice.Service
	AccountService *accountservice.Service
	PrefsService   *prefsservice.Service

	JWTService     auth.JWTServiceInterface
	ProfileStore   auth.ProfileStore
	Reference      *docs.Reference
	SupportContact string
}

func New(repo *repo.Repositories, api *upstream.Client, cfg *config.Config) (*Services, error) {
	reference, err := docs.Load(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("can't load api reference: %w", err)
	}

	return &Services{
		SessionService: sessionservice.New(api, repo.ProfileRepo),
		CatalogService: catalogservice.New(api, repo.CatalogRepo, cfg.CatalogTTL),
		OrderService:   orderservice.New(api, repo.ActiveOrderRepo, repo.HiddenOrderRepo, repo.ProfileRepo),
		DepositService: depositservice.New(api, cfg.DepositMinAmount),
		AccountService: accountservice.New(api, repo.ProfileRepo),
		PrefsService:   prefsservice.New(repo.ProfileRepo),
		JWTService:     auth.NewJWTService(cfg.ProfileSecret),
		ProfileStore:   repo.ProfileRepo,
		Reference:      reference,
		SupportContact: cfg.SupportContact,
	}, nil
}

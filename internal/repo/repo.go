package repo

import (
	"context"
	"time"

	"github.com/GlebRadaev/otpshop/internal/pg"
	activeorderrepo "github.com/GlebRadaev/otpshop/internal/repo/activeorder-repo"
	catalogrepo "github.com/GlebRadaev/otpshop/internal/repo/catalog-repo"
	hiddenorderrepo "github.com/GlebRadaev/otpshop/internal/repo/hiddenorder-repo"
	profilerepo "github.com/GlebRadaev/otpshop/internal/repo/profile-repo"
	"github.com/GlebRadaev/otpshop/internal/service/catalogservice"
	"github.com/GlebRadaev/otpshop/internal/service/orderservice"
	"github.com/GlebRadaev/otpshop/internal/service/prefsservice"
	"github.com/GlebRadaev/otpshop/internal/service/sessionservice"
	"github.com/GlebRadaev/otpshop/internal/tracker"
	"github.com/GlebRadaev/otpshop/pkg/auth"
)

// ProfileRepo is the profile table as all of its consumers see it.
type ProfileRepo interface {
	auth.ProfileStore
	sessionservice.Repo
	orderservice.ProfileRepo
	prefsservice.Repo
}

type ActiveOrderRepo interface {
	orderservice.ActiveRepo
	tracker.Repo
	PruneStale(ctx context.Context, olderThan time.Time) (int64, error)
}

type CatalogRepo interface {
	catalogservice.Cache
	DeleteOlderThan(ctx context.Context, t time.Time) (int64, error)
}

type Repositories struct {
	ProfileRepo     ProfileRepo
	HiddenOrderRepo orderservice.HiddenRepo
	ActiveOrderRepo ActiveOrderRepo
	CatalogRepo     CatalogRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		ProfileRepo:     profilerepo.New(conn),
		HiddenOrderRepo: hiddenorderrepo.New(conn),
		ActiveOrderRepo: activeorderrepo.New(conn, txManager),
		CatalogRepo:     catalogrepo.New(conn),
	}
}

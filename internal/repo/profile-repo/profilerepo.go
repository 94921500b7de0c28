package profilerepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Ensure returns profileID when such a profile exists, otherwise creates a new one.
func (r *Repository) Ensure(ctx context.Context, profileID string) (string, error) {
	if _, err := uuid.Parse(profileID); err == nil {
		tag, err := r.db.Exec(ctx, "UPDATE profiles SET updated_at = NOW() WHERE id = $1", profileID)
		if err != nil {
			zap.L().Error("can't touch profile", zap.Error(err))
			return "", err
		}
		if tag.RowsAffected() == 1 {
			return profileID, nil
		}
	}

	id := uuid.NewString()
	query := `
		INSERT INTO profiles (id)
		VALUES ($1)
	`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't create profile", zap.Error(err))
		return "", err
	}
	zap.L().Debug("profile created", zap.String("profile", id))
	return id, nil
}

func (r *Repository) Get(ctx context.Context, profileID string) (*domain.Profile, error) {
	query := `
		SELECT id, token, theme_mode, theme_accent, number_format, last_balance, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`
	var (
		p       domain.Profile
		balance *string
	)
	err := r.db.QueryRow(ctx, query, profileID).Scan(
		&p.ID, &p.Token, &p.ThemeMode, &p.ThemeAccent, &p.NumberFormat, &balance, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get profile", zap.Error(err))
		return nil, err
	}
	if balance != nil {
		b, err := decimal.NewFromString(*balance)
		if err != nil {
			return nil, fmt.Errorf("profile %s balance: %w", profileID, err)
		}
		p.LastBalance = &b
	}
	return &p, nil
}

func (r *Repository) SessionToken(ctx context.Context, profileID string) (string, error) {
	var token string
	err := r.db.QueryRow(ctx, "SELECT token FROM profiles WHERE id = $1", profileID).Scan(&token)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		zap.L().Error("can't get session token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// SetToken replaces the session token. The remembered balance belongs to the old session and is dropped.
func (r *Repository) SetToken(ctx context.Context, profileID, token string) error {
	query := `
		UPDATE profiles
		SET token = $1, last_balance = NULL, updated_at = NOW()
		WHERE id = $2
	`
	return r.update(ctx, "token", query, token, profileID)
}

func (r *Repository) SetTheme(ctx context.Context, profileID, mode, accent string) error {
	query := `
		UPDATE profiles
		SET theme_mode = $1, theme_accent = $2, updated_at = NOW()
		WHERE id = $3
	`
	return r.update(ctx, "theme", query, mode, accent, profileID)
}

func (r *Repository) SetNumberFormat(ctx context.Context, profileID, format string) error {
	query := `
		UPDATE profiles
		SET number_format = $1, updated_at = NOW()
		WHERE id = $2
	`
	return r.update(ctx, "number format", query, format, profileID)
}

func (r *Repository) SetBalance(ctx context.Context, profileID string, balance decimal.Decimal) error {
	query := `
		UPDATE profiles
		SET last_balance = $1
		WHERE id = $2
	`
	return r.update(ctx, "balance", query, balance.String(), profileID)
}

func (r *Repository) update(ctx context.Context, what, query string, args ...any) error {
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		zap.L().Error("can't update profile "+what, zap.Error(err))
		return err
	}
	return nil
}

package catalogrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

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

// Get returns the cached payload for key. A zero fetchedAt means nothing is cached.
func (r *Repository) Get(ctx context.Context, key string) ([]byte, time.Time, error) {
	var (
		payload   []byte
		fetchedAt time.Time
	)
	err := r.db.QueryRow(ctx, "SELECT payload, fetched_at FROM catalog_cache WHERE key = $1", key).Scan(&payload, &fetchedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, time.Time{}, nil
	}
	if err != nil {
		zap.L().Error("can't read catalog cache", zap.String("key", key), zap.Error(err))
		return nil, time.Time{}, err
	}
	return payload, fetchedAt, nil
}

func (r *Repository) Put(ctx context.Context, key string, payload []byte, fetchedAt time.Time) error {
	query := `
		INSERT INTO catalog_cache (key, payload, fetched_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload, fetched_at = EXCLUDED.fetched_at
	`
	if _, err := r.db.Exec(ctx, query, key, payload, fetchedAt); err != nil {
		zap.L().Error("can't write catalog cache", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteOlderThan(ctx context.Context, t time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM catalog_cache WHERE fetched_at < $1", t)
	if err != nil {
		zap.L().Error("can't prune catalog cache", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

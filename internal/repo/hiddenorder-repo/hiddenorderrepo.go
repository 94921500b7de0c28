package hiddenorderrepo

import (
	"context"

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

// Hide appends orderID to the profile's hidden list. Hiding twice is a no-op.
func (r *Repository) Hide(ctx context.Context, profileID string, orderID domain.ID) error {
	query := `
		INSERT INTO hidden_orders (profile_id, order_id)
		VALUES ($1, $2)
		ON CONFLICT (profile_id, order_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, profileID, orderID.String()); err != nil {
		zap.L().Error("can't hide order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) HiddenIDs(ctx context.Context, profileID string) ([]domain.ID, error) {
	query := `
		SELECT order_id
		FROM hidden_orders
		WHERE profile_id = $1
		ORDER BY hidden_at
	`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		zap.L().Error("can't get hidden orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []domain.ID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan hidden order row", zap.Error(err))
			return nil, err
		}
		ids = append(ids, domain.ID(id))
	}
	return ids, rows.Err()
}

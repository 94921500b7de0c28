package activeorderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Save replaces the profile's snapshot with order.
func (r *Repository) Save(ctx context.Context, profileID string, order *domain.Order) error {
	query := `
		INSERT INTO active_orders (profile_id, order_id, phone_number, status, otp_code, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (profile_id) DO UPDATE
		SET order_id = EXCLUDED.order_id,
			phone_number = EXCLUDED.phone_number,
			status = EXCLUDED.status,
			otp_code = EXCLUDED.otp_code,
			price = EXCLUDED.price,
			created_at = EXCLUDED.created_at,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query,
		profileID,
		order.OrderID.String(),
		order.PhoneNumber,
		string(order.Status.Normalize()),
		order.OTPCode,
		order.Price.String(),
		order.CreatedAt.Time,
	)
	if err != nil {
		zap.L().Error("can't save active order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, profileID string) (*domain.Order, error) {
	query := `
		SELECT order_id, phone_number, status, otp_code, price, created_at
		FROM active_orders
		WHERE profile_id = $1
	`
	order, err := scanOrder(r.db.QueryRow(ctx, query, profileID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get active order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// Delete clears the snapshot. A non-empty orderID only clears it when it still holds that order.
func (r *Repository) Delete(ctx context.Context, profileID string, orderID domain.ID) error {
	query := "DELETE FROM active_orders WHERE profile_id = $1"
	args := []any{profileID}
	if orderID != "" {
		query += " AND order_id = $2"
		args = append(args, orderID.String())
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		zap.L().Error("can't delete active order", zap.Error(err))
		return err
	}
	return nil
}

// UpdateStatus records a tracked status on the snapshot if it still holds orderID.
// A snapshot already in a final status is left alone, and an empty otp keeps the stored one.
func (r *Repository) UpdateStatus(ctx context.Context, profileID string, orderID domain.ID, status domain.OrderStatus, otp string) error {
	selectQuery := `
		SELECT status, otp_code
		FROM active_orders
		WHERE profile_id = $1 AND order_id = $2
		FOR UPDATE
	`
	updateQuery := `
		UPDATE active_orders
		SET status = $1, otp_code = $2, updated_at = NOW()
		WHERE profile_id = $3 AND order_id = $4
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		var stored, storedOTP string
		err := r.db.QueryRow(ctx, selectQuery, profileID, orderID.String()).Scan(&stored, &storedOTP)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			zap.L().Error("failed to lock active order", zap.Error(err))
			return err
		}
		if domain.OrderStatus(stored).IsFinal() {
			return nil
		}

		status = status.Normalize()
		if otp == "" {
			otp = storedOTP
		}
		if string(status) == stored && otp == storedOTP {
			return nil
		}
		if _, err := r.db.Exec(ctx, updateQuery, string(status), otp, profileID, orderID.String()); err != nil {
			zap.L().Error("failed to update active order", zap.Error(err))
			return err
		}
		return nil
	})
}

// FindForTracking returns still-active snapshots whose profile holds a session.
func (r *Repository) FindForTracking(ctx context.Context, limit uint32) ([]domain.TrackedOrder, error) {
	query := `
		SELECT a.profile_id, p.token, a.order_id, a.phone_number, a.status, a.otp_code, a.price, a.created_at
		FROM active_orders a
		JOIN profiles p ON p.id = a.profile_id
		WHERE a.status = 'ACTIVE' AND p.token <> ''
		ORDER BY a.created_at ASC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get orders for tracking", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tracked []domain.TrackedOrder
	for rows.Next() {
		var (
			t          domain.TrackedOrder
			id, status string
			price      string
			createdAt  time.Time
		)
		err := rows.Scan(&t.ProfileID, &t.Token, &id, &t.Order.PhoneNumber, &status, &t.Order.OTPCode, &price, &createdAt)
		if err != nil {
			zap.L().Error("can't scan order row for tracking", zap.Error(err))
			return nil, err
		}
		if err := fillOrder(&t.Order, id, status, price, createdAt); err != nil {
			return nil, err
		}
		tracked = append(tracked, t)
	}
	return tracked, rows.Err()
}

// PruneStale drops snapshots created before olderThan, whatever their status.
func (r *Repository) PruneStale(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM active_orders WHERE created_at < $1", olderThan)
	if err != nil {
		zap.L().Error("can't prune active orders", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order      domain.Order
		id, status string
		price      string
		createdAt  time.Time
	)
	if err := row.Scan(&id, &order.PhoneNumber, &status, &order.OTPCode, &price, &createdAt); err != nil {
		return nil, err
	}
	if err := fillOrder(&order, id, status, price, createdAt); err != nil {
		return nil, err
	}
	return &order, nil
}

func fillOrder(order *domain.Order, id, status, price string, createdAt time.Time) error {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("order %s price: %w", id, err)
	}
	order.OrderID = domain.ID(id)
	order.Status = domain.OrderStatus(status)
	order.Price = p
	order.CreatedAt = domain.NewTimestamp(createdAt)
	return nil
}

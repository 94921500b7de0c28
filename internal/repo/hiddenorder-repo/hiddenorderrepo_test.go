package hiddenorderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/otpshop/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Hide(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("INSERT INTO hidden_orders (profile_id, order_id) VALUES ($1, $2) ON CONFLICT (profile_id, order_id) DO NOTHING")

	mock.ExpectExec(query).WithArgs("p1", "42").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Hide(context.Background(), "p1", "42"))

	mock.ExpectExec(query).WithArgs("p1", "42").WillReturnResult(pgxmock.NewResult("INSERT", 0))
	assert.NoError(t, repo.Hide(context.Background(), "p1", "42"))

	mock.ExpectExec(query).WithArgs("p1", "43").WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Hide(context.Background(), "p1", "43"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_HiddenIDs(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT order_id FROM hidden_orders WHERE profile_id = $1 ORDER BY hidden_at")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.ID
	}{
		{
			name: "Hidden ids found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"order_id"}).AddRow("1").AddRow("7")
				mock.ExpectQuery(query).WithArgs("p1").WillReturnRows(rows)
			},
			result: []domain.ID{"1", "7"},
		},
		{
			name: "Nothing hidden",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("p1").WillReturnRows(pgxmock.NewRows([]string{"order_id"}))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("p1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.HiddenIDs(context.Background(), "p1")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

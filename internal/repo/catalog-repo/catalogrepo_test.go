package catalogrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	fetched := time.Now()
	query := regexp.QuoteMeta("SELECT payload, fetched_at FROM catalog_cache WHERE key = $1")

	mock.ExpectQuery(query).WithArgs("services").
		WillReturnRows(pgxmock.NewRows([]string{"payload", "fetched_at"}).AddRow([]byte(`[{"name":"WA"}]`), fetched))
	payload, at, err := repo.Get(context.Background(), "services")
	assert.NoError(t, err)
	assert.JSONEq(t, `[{"name":"WA"}]`, string(payload))
	assert.Equal(t, fetched, at)

	mock.ExpectQuery(query).WithArgs("services").WillReturnError(pgx.ErrNoRows)
	payload, at, err = repo.Get(context.Background(), "services")
	assert.NoError(t, err)
	assert.Nil(t, payload)
	assert.True(t, at.IsZero())

	mock.ExpectQuery(query).WithArgs("services").WillReturnError(errors.New("database error"))
	_, _, err = repo.Get(context.Background(), "services")
	assert.Error(t, err)
}

func TestRepository_Put(t *testing.T) {
	repo, mock := NewMock(t)
	fetched := time.Now()
	query := regexp.QuoteMeta("INSERT INTO catalog_cache (key, payload, fetched_at) VALUES ($1, $2, $3) ON CONFLICT (key) DO UPDATE")

	mock.ExpectExec(query).WithArgs("services", []byte("[]"), fetched).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Put(context.Background(), "services", []byte("[]"), fetched))

	mock.ExpectExec(query).WithArgs("services", []byte("[]"), fetched).WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Put(context.Background(), "services", []byte("[]"), fetched))
}

func TestRepository_DeleteOlderThan(t *testing.T) {
	repo, mock := NewMock(t)
	cutoff := time.Now().Add(-time.Hour)
	query := regexp.QuoteMeta("DELETE FROM catalog_cache WHERE fetched_at < $1")

	mock.ExpectExec(query).WithArgs(cutoff).WillReturnResult(pgxmock.NewResult("DELETE", 2))
	n, err := repo.DeleteOlderThan(context.Background(), cutoff)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	mock.ExpectExec(query).WithArgs(cutoff).WillReturnError(errors.New("database error"))
	_, err = repo.DeleteOlderThan(context.Background(), cutoff)
	assert.Error(t, err)
}

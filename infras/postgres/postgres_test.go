package postgres_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"hms/infras/postgres"
	"hms/shared/failure"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "postgres")

	return &postgres.Connection{Read: db, Write: db}, mock
}

func TestConnection_WithTransaction(t *testing.T) {
	tests := []struct {
		name      string
		fn        func(tx *sqlx.Tx) error
		setupMock func(m sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "commits on success",
			fn: func(tx *sqlx.Tx) error {
				_, err := tx.Exec("UPDATE rooms SET isavailable = FALSE WHERE roomnumber = 101")

				return err
			},
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE rooms").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
		},
		{
			name: "rolls back on error",
			fn: func(_ *sqlx.Tx) error {
				return failure.NoRoomAvailable("Single")
			},
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name: "begin failure",
			fn:   func(_ *sqlx.Tx) error { return nil },
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin().WillReturnError(errors.New("begin failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := setupMockDB(t)
			tt.setupMock(mock)

			err := conn.WithTransaction(context.Background(), tt.fn)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConnection_WithTransaction_KeepsDomainError(t *testing.T) {
	conn, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := conn.WithTransaction(context.Background(), func(_ *sqlx.Tx) error {
		return failure.NoRoomAvailable("Double")
	})

	assert.True(t, failure.IsKind(err, failure.KindNoRoomAvailable))
}

func TestConnection_NilPools(t *testing.T) {
	conn := &postgres.Connection{}

	err := conn.WithTransaction(context.Background(), func(_ *sqlx.Tx) error { return nil })
	assert.True(t, failure.IsKind(err, failure.KindPersistenceUnavailable))

	err = conn.Ping(context.Background())
	assert.True(t, failure.IsKind(err, failure.KindPersistenceUnavailable))
}

func TestIsUnavailable(t *testing.T) {
	assert.False(t, postgres.IsUnavailable(nil))
	assert.True(t, postgres.IsUnavailable(fmt.Errorf("query: %w", driver.ErrBadConn)))
	assert.True(t, postgres.IsUnavailable(postgres.ErrNoConnection))
	assert.True(t, postgres.IsUnavailable(&pq.Error{Code: "08006"}))
	assert.False(t, postgres.IsUnavailable(&pq.Error{Code: "23505"}))
	assert.False(t, postgres.IsUnavailable(errors.New("syntax error")))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, postgres.IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, postgres.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, postgres.IsUniqueViolation(nil))
}

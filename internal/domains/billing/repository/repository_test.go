package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms/infras/otel/mocks"
	"hms/infras/postgres"
	"hms/internal/domains/billing/repository"
	"hms/shared/failure"
)

func setupRepo(t *testing.T) (repository.Billing, *sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "postgres")

	return repository.New(&postgres.Connection{Read: db, Write: db}, mocks.NewOtel()), db, mock
}

func TestBillingRepository_LatestPosted(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m sqlmock.Sqlmock)
		want      string
		wantID    int64
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "latest entry wins",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("ORDER BY transactiondate DESC, transactionid DESC LIMIT 1")).
					WithArgs("john").
					WillReturnRows(sqlmock.NewRows([]string{"balance", "transactionid"}).AddRow("-400.00", 7))
			},
			want:   "-400",
			wantID: 7,
		},
		{
			name: "no entries",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("SELECT balance, transactionid FROM financialtransactions")).
					WithArgs("john").
					WillReturnRows(sqlmock.NewRows([]string{"balance", "transactionid"}))
			},
			want: "0",
		},
		{
			name: "database down",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("SELECT balance")).
					WillReturnError(&pq.Error{Code: "57P01"})
			},
			wantErr:  true,
			wantKind: failure.KindPersistenceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := setupRepo(t)
			tt.setupMock(mock)

			posted, err := repo.LatestPosted(context.Background(), "john")

			if tt.wantErr {
				assert.True(t, failure.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, posted.Balance.String())
				assert.Equal(t, tt.wantID, posted.TransactionID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBillingRepository_LockAndReadInTx(t *testing.T) {
	repo, db, mock := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
		WithArgs("john").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT balance, transactionid FROM financialtransactions")).
		WithArgs("john").
		WillReturnRows(sqlmock.NewRows([]string{"balance", "transactionid"}).AddRow("150.00", 3))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	require.NoError(t, repo.LockPatientTx(context.Background(), tx, "john"))

	balance, err := repo.LatestBalanceTx(context.Background(), tx, "john")
	require.NoError(t, err)
	assert.Equal(t, "150", balance.String())

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillingRepository_PendingPayments(t *testing.T) {
	repo, _, mock := setupRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("HAVING SUM(amount) < 0")).
		WithArgs("Appointment Payment", "Medication Payment%").
		WillReturnRows(sqlmock.NewRows([]string{"patient", "outstanding"}).
			AddRow("john", "-200.00").
			AddRow("mary", "-37.50"))

	res, err := repo.PendingPayments(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "john", res[0].Patient)
	assert.Equal(t, "-37.5", res[1].Outstanding.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillingRepository_Totals(t *testing.T) {
	repo, _, mock := setupRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(amount), 0) FROM revenue")).
		WillReturnRows(sqlmock.NewRows([]string{"revenue", "costs"}).AddRow("1000.00", "250.00"))

	totals, err := repo.Totals(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1000", totals.Revenue.String())
	assert.Equal(t, "250", totals.Costs.String())
}

func TestBillingRepository_WithoutConnection(t *testing.T) {
	repo := repository.New(nil, mocks.NewOtel())

	_, err := repo.LatestPosted(context.Background(), "john")
	assert.True(t, failure.IsKind(err, failure.KindPersistenceUnavailable))

	_, err = repo.PendingPayments(context.Background())
	assert.True(t, failure.IsKind(err, failure.KindPersistenceUnavailable))
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/billing/model"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/logger"
	gRepo "hms/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var (
	latestBalanceQuery = fmt.Sprintf(`SELECT %[1]s, %[5]s FROM %[2]s WHERE %[3]s = $1 ORDER BY %[4]s DESC, %[5]s DESC LIMIT 1`,
		model.FieldBalance, model.LedgerTableName, model.FieldPatient, model.FieldTransactionDate, model.FieldTransactionID)

	// serialises ledger writers of one patient until the transaction ends
	lockPatientQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`

	pendingPaymentsQuery = fmt.Sprintf(`SELECT %[1]s, SUM(%[2]s) AS outstanding FROM %[3]s
WHERE %[4]s = $1 OR %[4]s LIKE $2
GROUP BY %[1]s
HAVING SUM(%[2]s) < 0
ORDER BY %[1]s`, model.FieldPatient, model.FieldAmount, model.LedgerTableName, model.FieldTransactionType)

	totalsQuery = fmt.Sprintf(`SELECT
	(SELECT COALESCE(SUM(%[1]s), 0) FROM %[2]s) AS revenue,
	(SELECT COALESCE(SUM(%[1]s), 0) FROM %[3]s) AS costs`, model.FieldAmount, model.RevenueTableName, model.CostTableName)
)

type Billing interface {
	InsertReturning(ctx context.Context, model model.LedgerEntry, returning string, dest any) error
	InsertReturningTx(ctx context.Context, tx *sqlx.Tx, model model.LedgerEntry, returning string, dest any) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.LedgerEntry, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	LatestPosted(ctx context.Context, patient string) (model.PostedBalance, error)
	LatestBalanceTx(ctx context.Context, tx *sqlx.Tx, patient string) (decimal.Decimal, error)
	LockPatientTx(ctx context.Context, tx *sqlx.Tx, patient string) error
	PendingPayments(ctx context.Context) ([]model.PendingPayment, error)
	InsertRevenue(ctx context.Context, revenue model.Revenue) error
	InsertCost(ctx context.Context, cost model.Cost) error
	Totals(ctx context.Context) (model.Totals, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.LedgerEntry]
	revenue gRepo.Repository[model.Revenue]
	costs   gRepo.Repository[model.Cost]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Billing {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.LedgerEntry](model.LedgerEntityName, model.LedgerTableName, model.FieldTransactionID, db, otel),
		revenue:    gRepo.NewRepository[model.Revenue](model.RevenueEntityName, model.RevenueTableName, model.FieldRevenueID, db, otel),
		costs:      gRepo.NewRepository[model.Cost](model.CostEntityName, model.CostTableName, model.FieldCostID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) reader() (*sqlx.DB, error) {
	if r.db == nil || r.db.Read == nil {
		return nil, failure.PersistenceUnavailable(postgres.ErrNoConnection)
	}

	return r.db.Read, nil
}

func classify(action string, err error) error {
	if postgres.IsUnavailable(err) {
		return failure.PersistenceUnavailable(err)
	}

	return fmt.Errorf("failed to %s: %w", action, err)
}

// LatestPosted returns a zero balance and transaction id when the patient has no entries.
func (r *repositoryImpl) LatestPosted(ctx context.Context, patient string) (model.PostedBalance, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".billing.LatestPosted")
	defer scope.End()

	db, err := r.reader()
	if err != nil {
		return model.PostedBalance{}, err
	}

	return r.latestPosted(ctx, db, patient)
}

func (r *repositoryImpl) LatestBalanceTx(ctx context.Context, tx *sqlx.Tx, patient string) (decimal.Decimal, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".billing.LatestBalanceTx")
	defer scope.End()

	posted, err := r.latestPosted(ctx, tx, patient)

	return posted.Balance, err
}

func (r *repositoryImpl) latestPosted(ctx context.Context, exec sqlx.QueryerContext, patient string) (model.PostedBalance, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".billing.latestPosted")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, latestBalanceQuery)

	var posted model.PostedBalance

	err := exec.QueryRowxContext(ctx, latestBalanceQuery, patient).StructScan(&posted)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PostedBalance{Balance: decimal.Zero}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.PostedBalance{}, classify("get latest balance", err)
	}

	return posted, nil
}

func (r *repositoryImpl) LockPatientTx(ctx context.Context, tx *sqlx.Tx, patient string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".billing.LockPatientTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, lockPatientQuery)

	if _, err := tx.ExecContext(ctx, lockPatientQuery, patient); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return classify("lock patient ledger", err)
	}

	return nil
}

func (r *repositoryImpl) PendingPayments(ctx context.Context) ([]model.PendingPayment, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".billing.PendingPayments")
	defer scope.End()

	db, err := r.reader()
	if err != nil {
		return nil, err
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, pendingPaymentsQuery)

	res := []model.PendingPayment{}

	err = db.SelectContext(ctx, &res, pendingPaymentsQuery, model.TypeAppointmentPayment, model.TypeMedicationPayment+"%")
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, classify("get pending payments", err)
	}

	return res, nil
}

func (r *repositoryImpl) InsertRevenue(ctx context.Context, revenue model.Revenue) error {
	return r.revenue.Insert(ctx, revenue) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertCost(ctx context.Context, cost model.Cost) error {
	return r.costs.Insert(ctx, cost) //nolint:wrapcheck
}

func (r *repositoryImpl) Totals(ctx context.Context) (model.Totals, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".billing.Totals")
	defer scope.End()

	var totals model.Totals

	db, err := r.reader()
	if err != nil {
		return totals, err
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, totalsQuery)

	if err = db.GetContext(ctx, &totals, totalsQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return totals, classify("get totals", err)
	}

	return totals, nil
}

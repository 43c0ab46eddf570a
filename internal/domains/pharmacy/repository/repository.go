package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/pharmacy/model"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/logger"
	gRepo "hms/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Unknown medications are registered with a zero price.
var restockQuery = fmt.Sprintf(`INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s) VALUES ($1, $2, 0)
ON CONFLICT (%[2]s) DO UPDATE SET %[3]s = %[1]s.%[3]s + EXCLUDED.%[3]s
RETURNING %[5]s, %[2]s, %[3]s, %[4]s, %[6]s`,
	model.TableName, model.FieldName, model.FieldStock, model.FieldPrice, model.FieldID, model.FieldExpiry)

type Pharmacy interface {
	Insert(ctx context.Context, model model.Medication) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Medication, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Medication, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Restock(ctx context.Context, name string, quantity int) (model.Medication, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Medication]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Pharmacy {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Medication](model.EntityName, model.TableName, model.FieldName, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Restock adds quantity to the named medication, creating it when absent.
func (r *repositoryImpl) Restock(ctx context.Context, name string, quantity int) (model.Medication, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pharmacy.Restock")
	defer scope.End()

	var medication model.Medication

	if r.db == nil || r.db.Write == nil {
		return medication, failure.PersistenceUnavailable(postgres.ErrNoConnection)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, restockQuery)

	if err := r.db.Write.QueryRowxContext(ctx, restockQuery, name, quantity).StructScan(&medication); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		if postgres.IsUnavailable(err) {
			return medication, failure.PersistenceUnavailable(err)
		}

		return medication, fmt.Errorf("failed to restock medication: %w", err)
	}

	return medication, nil
}

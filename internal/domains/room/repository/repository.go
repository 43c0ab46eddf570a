package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/room/model"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/logger"
	gRepo "hms/shared/repository"

	"github.com/jmoiron/sqlx"
)

// The inner select locks the lowest free room and skips rows other allocators hold.
var allocateQuery = fmt.Sprintf(`UPDATE %[1]s SET %[3]s = FALSE
WHERE %[2]s = (
	SELECT %[2]s FROM %[1]s
	WHERE %[4]s = $1 AND %[3]s = TRUE
	ORDER BY %[2]s
	LIMIT 1
	FOR UPDATE SKIP LOCKED
)
RETURNING %[2]s`, model.TableName, model.FieldNumber, model.FieldAvailable, model.FieldType)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Allocate(ctx context.Context, roomType string) (int, bool, error)
	AllocateTx(ctx context.Context, tx *sqlx.Tx, roomType string) (int, bool, error)
	Release(ctx context.Context, number int) (bool, error)
	ReleaseTx(ctx context.Context, tx *sqlx.Tx, number int) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldNumber, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Allocate(ctx context.Context, roomType string) (int, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Allocate")
	defer scope.End()

	if r.db == nil || r.db.Write == nil {
		return 0, false, failure.PersistenceUnavailable(postgres.ErrNoConnection)
	}

	return r.allocate(ctx, r.db.Write, roomType)
}

func (r *repositoryImpl) AllocateTx(ctx context.Context, tx *sqlx.Tx, roomType string) (int, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.AllocateTx")
	defer scope.End()

	return r.allocate(ctx, tx, roomType)
}

// allocate reports false when no available room of roomType exists.
func (r *repositoryImpl) allocate(ctx context.Context, exec sqlx.QueryerContext, roomType string) (int, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.allocate")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, allocateQuery)

	var number int

	err := exec.QueryRowxContext(ctx, allocateQuery, roomType).Scan(&number)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		if postgres.IsUnavailable(err) {
			return 0, false, failure.PersistenceUnavailable(err)
		}

		return 0, false, fmt.Errorf("failed to allocate room: %w", err)
	}

	return number, true, nil
}

func (r *repositoryImpl) Release(ctx context.Context, number int) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Release")
	defer scope.End()

	affected, err := r.Update(ctx, releaseFields(), shared.FilterByID(number, model.FieldNumber, model.TableName))
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return affected > 0, nil
}

func (r *repositoryImpl) ReleaseTx(ctx context.Context, tx *sqlx.Tx, number int) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ReleaseTx")
	defer scope.End()

	affected, err := r.UpdateTx(ctx, tx, releaseFields(), shared.FilterByID(number, model.FieldNumber, model.TableName))
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return affected > 0, nil
}

func releaseFields() map[string]any {
	return map[string]any{model.FieldAvailable: true}
}

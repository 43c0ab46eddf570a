package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/user/model"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/logger"
	gRepo "hms/shared/repository"
)

var workforceQuery = fmt.Sprintf(`SELECT %[1]s, COALESCE(%[2]s, '') AS %[2]s, COUNT(*) AS total FROM %[3]s
GROUP BY %[1]s, %[2]s
ORDER BY %[1]s, %[2]s`, model.FieldRole, model.FieldDepartment, model.TableName)

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	Workforce(ctx context.Context) ([]model.WorkforceRow, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldUsername, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Workforce counts users per role and department; users without a department group under "".
func (r *repositoryImpl) Workforce(ctx context.Context) ([]model.WorkforceRow, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.Workforce")
	defer scope.End()

	if r.db == nil || r.db.Read == nil {
		return nil, failure.PersistenceUnavailable(postgres.ErrNoConnection)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, workforceQuery)

	res := []model.WorkforceRow{}

	if err := r.db.Read.SelectContext(ctx, &res, workforceQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		if postgres.IsUnavailable(err) {
			return nil, failure.PersistenceUnavailable(err)
		}

		return nil, fmt.Errorf("failed to get workforce: %w", err)
	}

	return res, nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/department/model"
	gDto "hms/shared/dto"
	gRepo "hms/shared/repository"
)

type Department interface {
	Insert(ctx context.Context, model model.Department) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Department, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Department]
}

func New(db *postgres.Connection, otel otel.Otel) Department {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Department](model.EntityName, model.TableName, model.FieldName, db, otel),
	}
}

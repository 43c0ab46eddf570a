package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Department=MockDepartmentService

import (
	"context"
	"fmt"

	"hms/config"
	"hms/infras/otel"
	"hms/internal/domains/department/model"
	"hms/internal/domains/department/model/dto"
	"hms/internal/domains/department/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetAllDepartment = "department:gets"

type Department interface {
	Add(ctx context.Context, req dto.AddDepartmentRequest) error
	Remove(ctx context.Context, name string) error
	List(ctx context.Context) (dto.GetDepartmentsResponse, error)
}

type serviceImpl struct {
	repo  repository.Department
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Department, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Department {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, req dto.AddDepartmentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	department := req.ToModel()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(department.Name, model.FieldName, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to check department existence: %w", err)
	}

	if exist {
		return failure.DuplicateKey(fmt.Sprintf("department %s already exists", department.Name)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, department); err != nil {
		return fmt.Errorf("failed to add department: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Remove(ctx context.Context, name string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, shared.FilterByID(name, model.FieldName, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to remove department: %w", err)
	}

	if affected == 0 {
		return failure.NotFound("department not found") // nolint:wrapcheck
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) List(ctx context.Context) (res dto.GetDepartmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetAllDepartment, &res)
	if err == nil {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		return res, fmt.Errorf("failed to get departments: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		_ = s.cache.Save(c, cacheGetAllDepartment, res, s.cfg.Cache.TTL)
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		if err := s.cache.Delete(context.WithoutCancel(ctx), cacheGetAllDepartment); err != nil {
			log.Error().Err(err).Msg("failed to invalidate department cache")
		}
	}()
}

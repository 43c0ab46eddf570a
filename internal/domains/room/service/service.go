package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"

	"hms/config"
	"hms/infras/metrics"
	"hms/infras/otel"
	"hms/internal/domains/room/model"
	"hms/internal/domains/room/model/dto"
	"hms/internal/domains/room/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

type Room interface {
	AddRoom(ctx context.Context, req dto.AddRoomRequest) error
	Allocate(ctx context.Context, roomType string) (int, error)
	AllocateTx(ctx context.Context, tx *sqlx.Tx, roomType string) (int, error)
	Release(ctx context.Context, number int) error
	ReleaseTx(ctx context.Context, tx *sqlx.Tx, number int) error
	ListRooms(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, number int) (dto.RoomResponse, error)
	Exists(ctx context.Context, number int) (bool, error)
	InvalidateCache(ctx context.Context, numbers ...int)
}

type serviceImpl struct {
	repo    repository.Room
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	metrics *metrics.Collector
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, metrics *metrics.Collector) Room {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		metrics: metrics,
	}
}

func (s *serviceImpl) AddRoom(ctx context.Context, req dto.AddRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(req.Number, model.FieldNumber, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return fmt.Errorf("failed to check room existence: %w", err)
	}

	if exist {
		return failure.DuplicateKey(fmt.Sprintf("room %d already exists", req.Number)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Int("room", req.Number).Msg("failed to add room")

		if failure.IsKind(err, failure.KindDuplicateKey) {
			return failure.DuplicateKey(fmt.Sprintf("room %d already exists", req.Number)) // nolint:wrapcheck
		}

		return fmt.Errorf("failed to add room: %w", err)
	}

	s.invalidateAsync(ctx)

	return nil
}

func (s *serviceImpl) Allocate(ctx context.Context, roomType string) (number int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Allocate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	number, found, err := s.repo.Allocate(ctx, roomType)

	number, err = s.allocated(roomType, number, found, err)
	if err != nil {
		return 0, err
	}

	s.invalidateAsync(ctx, number)

	return number, nil
}

// AllocateTx leaves cache invalidation to the caller, after commit.
func (s *serviceImpl) AllocateTx(ctx context.Context, tx *sqlx.Tx, roomType string) (number int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AllocateTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	number, found, err := s.repo.AllocateTx(ctx, tx, roomType)

	return s.allocated(roomType, number, found, err)
}

func (s *serviceImpl) allocated(roomType string, number int, found bool, err error) (int, error) {
	if err != nil {
		log.Error().Err(err).Str("roomType", roomType).Msg("failed to allocate room")

		return 0, fmt.Errorf("failed to allocate room: %w", err)
	}

	if !found {
		s.metrics.RoomAllocation(roomType, metrics.ResultNoneAvailable)
		log.Warn().Str("roomType", roomType).Msg("no available room")

		return 0, failure.NoRoomAvailable(roomType) // nolint:wrapcheck
	}

	s.metrics.RoomAllocation(roomType, metrics.ResultAllocated)
	log.Info().Str("roomType", roomType).Int("room", number).Msg("room allocated")

	return number, nil
}

func (s *serviceImpl) Release(ctx context.Context, number int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	found, err := s.repo.Release(ctx, number)
	if err = s.released(number, found, err); err != nil {
		return err
	}

	s.invalidateAsync(ctx, number)

	return nil
}

// ReleaseTx leaves cache invalidation to the caller, after commit.
func (s *serviceImpl) ReleaseTx(ctx context.Context, tx *sqlx.Tx, number int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReleaseTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	found, err := s.repo.ReleaseTx(ctx, tx, number)

	return s.released(number, found, err)
}

func (s *serviceImpl) released(number int, found bool, err error) error {
	if err != nil {
		log.Error().Err(err).Int("room", number).Msg("failed to release room")

		return fmt.Errorf("failed to release room: %w", err)
	}

	if !found {
		return failure.NotFound(fmt.Sprintf("room %d not found", number)) // nolint:wrapcheck
	}

	s.metrics.RoomReleased()

	return nil
}

func (s *serviceImpl) ListRooms(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, number int) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, number)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(number, model.FieldNumber, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.Number == 0 {
		return res, failure.NotFound(fmt.Sprintf("room %d not found", number)) // nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Exists(ctx context.Context, number int) (exist bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Exists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err = s.repo.Exist(ctx, shared.FilterByID(number, model.FieldNumber, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return false, fmt.Errorf("failed to check room existence: %w", err)
	}

	return exist, nil
}

// InvalidateCache drops the listing caches and the cached copies of the given rooms.
func (s *serviceImpl) InvalidateCache(ctx context.Context, numbers ...int) {
	for _, number := range numbers {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetRoom, number)); err != nil {
			log.Error().Err(err).Int("room", number).Msg("failed to delete room cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllRoom)
	shared.InvalidateCaches(ctx, s.cache, cacheCountRoom)
}

func (s *serviceImpl) invalidateAsync(ctx context.Context, numbers ...int) {
	go s.InvalidateCache(context.WithoutCancel(ctx), numbers...)
}

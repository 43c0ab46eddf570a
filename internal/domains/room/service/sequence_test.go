package service_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/otel/mocks"
	"hms/internal/domains/room/model"
	"hms/internal/domains/room/model/dto"
	"hms/internal/domains/room/service"
	"hms/shared/cache"
	cacheMocks "hms/shared/cache/mocks"
	gDto "hms/shared/dto"
	"hms/shared/failure"
)

// memoryRooms is a room table keyed by number.
type memoryRooms struct {
	mu    sync.Mutex
	rooms map[int]model.Room
}

func roomNumber(filter gDto.FilterGroup) (int, bool) {
	for _, item := range filter.Filters {
		if f, ok := item.(gDto.Filter); ok && f.Field == model.FieldNumber && f.Operator == gDto.FilterOperatorEq {
			if number, ok := f.Value.(int); ok {
				return number, true
			}
		}
	}

	return 0, false
}

func (r *memoryRooms) Insert(_ context.Context, room model.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[room.Number]; ok {
		return failure.DuplicateKey("room already exists")
	}

	r.rooms[room.Number] = room

	return nil
}

func (r *memoryRooms) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	number, ok := roomNumber(filter)
	if !ok {
		return model.Room{}, nil
	}

	return r.rooms[number], nil
}

func (r *memoryRooms) GetAll(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rooms := make([]model.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room)
	}

	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Number < rooms[j].Number })

	return rooms, nil
}

func (r *memoryRooms) Exist(_ context.Context, filter gDto.FilterGroup) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	number, _ := roomNumber(filter)
	_, ok := r.rooms[number]

	return ok, nil
}

func (r *memoryRooms) Count(_ context.Context, _ gDto.FilterGroup) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.rooms), nil
}

func (r *memoryRooms) Allocate(_ context.Context, roomType string) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	best := 0

	for number, room := range r.rooms {
		if room.Type == roomType && room.Available && (best == 0 || number < best) {
			best = number
		}
	}

	if best == 0 {
		return 0, false, nil
	}

	room := r.rooms[best]
	room.Available = false
	r.rooms[best] = room

	return best, true, nil
}

func (r *memoryRooms) AllocateTx(ctx context.Context, _ *sqlx.Tx, roomType string) (int, bool, error) {
	return r.Allocate(ctx, roomType)
}

func (r *memoryRooms) Release(_ context.Context, number int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[number]
	if !ok {
		return false, nil
	}

	room.Available = true
	r.rooms[number] = room

	return true, nil
}

func (r *memoryRooms) ReleaseTx(ctx context.Context, _ *sqlx.Tx, number int) (bool, error) {
	return r.Release(ctx, number)
}

func newRoomRegistry(t *testing.T) service.Room {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(&memoryRooms{rooms: map[int]model.Room{}}, &config.Config{}, mockCache, mocks.NewOtel(), nil)

	ctx := context.Background()

	require.NoError(t, svc.AddRoom(ctx, dto.AddRoomRequest{Number: 101, Type: "Single"}))
	require.NoError(t, svc.AddRoom(ctx, dto.AddRoomRequest{Number: 102, Type: "Double"}))

	return svc
}

func TestRoomRegistry_AllocateReleaseSequence(t *testing.T) {
	svc := newRoomRegistry(t)
	ctx := context.Background()

	number, err := svc.Allocate(ctx, "Single")
	require.NoError(t, err)
	assert.Equal(t, 101, number)

	_, err = svc.Allocate(ctx, "Single")
	assert.True(t, failure.IsKind(err, failure.KindNoRoomAvailable))

	require.NoError(t, svc.Release(ctx, 101))

	number, err = svc.Allocate(ctx, "Single")
	require.NoError(t, err)
	assert.Equal(t, 101, number)

	number, err = svc.Allocate(ctx, "Double")
	require.NoError(t, err)
	assert.Equal(t, 102, number)
}

func TestRoomRegistry_ReleaseIsIdempotent(t *testing.T) {
	svc := newRoomRegistry(t)
	ctx := context.Background()

	_, err := svc.Allocate(ctx, "Double")
	require.NoError(t, err)

	require.NoError(t, svc.Release(ctx, 102))
	require.NoError(t, svc.Release(ctx, 102))

	room, err := svc.Get(ctx, 102)
	require.NoError(t, err)
	assert.True(t, room.Available)

	assert.True(t, failure.IsKind(svc.Release(ctx, 999), failure.KindNotFound))
}

func TestRoomRegistry_DuplicateRoom(t *testing.T) {
	svc := newRoomRegistry(t)

	err := svc.AddRoom(context.Background(), dto.AddRoomRequest{Number: 101, Type: "Double"})
	assert.True(t, failure.IsKind(err, failure.KindDuplicateKey))

	number, err := svc.Allocate(context.Background(), "Single")
	require.NoError(t, err)
	assert.Equal(t, 101, number)
}

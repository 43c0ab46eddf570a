package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms/infras/otel/mocks"
	"hms/shared/cache"
)

func newCache(t *testing.T) (*miniredis.Miniredis, cache.RedisCache) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return server, cache.NewRedisCache(client, mocks.NewOtel())
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	_, redisCache := newCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "room:get:101", map[string]any{"number": 101}, 60))

	var got map[string]any

	require.NoError(t, redisCache.Get(ctx, "room:get:101", &got))
	assert.EqualValues(t, 101, got["number"])

	err := redisCache.Get(ctx, "room:get:102", &got)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_SaveVersion(t *testing.T) {
	tests := []struct {
		name      string
		writes    []int64
		wantSaved []bool
		want      int64
	}{
		{
			name:      "newer versions replace older ones",
			writes:    []int64{1, 2, 5},
			wantSaved: []bool{true, true, true},
			want:      5,
		},
		{
			name:      "older and equal versions are ignored",
			writes:    []int64{4, 2, 4},
			wantSaved: []bool{true, false, false},
			want:      4,
		},
		{
			name:      "version zero on an empty key",
			writes:    []int64{0, 1},
			wantSaved: []bool{true, true},
			want:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, redisCache := newCache(t)
			ctx := context.Background()

			for i, version := range tt.writes {
				saved, err := redisCache.SaveVersion(ctx, "billing:balance:pat1", version, version*100, 60)
				require.NoError(t, err)
				assert.Equal(t, tt.wantSaved[i], saved, "write %d", version)
			}

			var value int64

			version, err := redisCache.GetVersion(ctx, "billing:balance:pat1", &value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, version)
			assert.Equal(t, tt.want*100, value)
		})
	}
}

func TestRedisCache_VersionedKeyExpires(t *testing.T) {
	server, redisCache := newCache(t)
	ctx := context.Background()

	_, err := redisCache.SaveVersion(ctx, "billing:balance:pat1", 3, "-400", 300)
	require.NoError(t, err)

	server.FastForward(301 * time.Second)

	var value string

	_, err = redisCache.GetVersion(ctx, "billing:balance:pat1", &value)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_DeleteAndClear(t *testing.T) {
	_, redisCache := newCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "room:gets:a", "1", 60))
	require.NoError(t, redisCache.Save(ctx, "room:gets:b", "2", 60))
	require.NoError(t, redisCache.Save(ctx, "room:get:101", "3", 60))

	require.NoError(t, redisCache.Clear(ctx, "room:gets*"))
	require.NoError(t, redisCache.Delete(ctx, "room:get:101"))

	var value string

	assert.Error(t, redisCache.Get(ctx, "room:gets:a", &value))
	assert.Error(t, redisCache.Get(ctx, "room:get:101", &value))
}

package cache

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis keeps values in a map, expirations are recorded but never applied
type fakeRedis struct {
	values   map[string]string
	expires  map[string]time.Duration
	failWith error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, expires: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	if f.failWith != nil {
		cmd.SetErr(f.failWith)
	} else if value, ok := f.values[key]; ok {
		cmd.SetVal(value)
	} else {
		cmd.SetErr(redis.Nil)
	}
	return cmd
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "set", key)
	if f.failWith != nil {
		cmd.SetErr(f.failWith)
		return cmd
	}
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	f.expires[key] = expiration
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "incr", key)
	if f.failWith != nil {
		cmd.SetErr(f.failWith)
		return cmd
	}
	current, _ := strconv.ParseInt(f.values[key], 10, 64)
	current++
	f.values[key] = strconv.FormatInt(current, 10)
	cmd.SetVal(current)
	return cmd
}

func newTestCache(client redisCommands) *RedisFlightCache {
	return NewRedisFlightCache(log.NewNullLogger(), client, &c.RedisConfig{KeyPrefix: "test", CacheExpire: 30 * time.Second})
}

func samplePage() *PageResponse[FlightListItem] {
	return &PageResponse[FlightListItem]{
		Items:    []*FlightListItem{{Id: 7, TicketsAvailable: 12}},
		Page:     1,
		PageSize: 20,
		Total:    1,
	}
}

func TestRedisFlightCacheRoundTrip(t *testing.T) {
	client := newFakeRedis()
	cache := newTestCache(client)

	_, generation, ok := cache.GetFlightPage("page=1")
	assert.False(t, ok)
	assert.Equal(t, int64(0), generation)

	cache.SetFlightPage("page=1", generation, samplePage())
	page, _, ok := cache.GetFlightPage("page=1")
	require.True(t, ok)
	require.Len(t, page.Items, 1)
	assert.Equal(t, uint(7), page.Items[0].Id)
	assert.Equal(t, 12, page.Items[0].TicketsAvailable)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 30*time.Second, client.expires["test:flights:v0:page=1"])
}

func TestRedisFlightCacheInvalidateHidesOldPages(t *testing.T) {
	client := newFakeRedis()
	cache := newTestCache(client)
	cache.SetFlightPage("page=1", 0, samplePage())

	cache.Invalidate()

	_, generation, ok := cache.GetFlightPage("page=1")
	assert.False(t, ok)
	assert.Equal(t, int64(1), generation)
	assert.Equal(t, "1", client.values["test:flights:version"])

	cache.SetFlightPage("page=1", generation, samplePage())
	_, _, ok = cache.GetFlightPage("page=1")
	assert.True(t, ok)
	assert.Contains(t, client.values, "test:flights:v1:page=1")
}

func TestRedisFlightCacheDropsPageBuiltAcrossInvalidate(t *testing.T) {
	client := newFakeRedis()
	cache := newTestCache(client)

	_, generation, ok := cache.GetFlightPage("page=1")
	require.False(t, ok)
	// a write commits while the page is being built
	cache.Invalidate()
	cache.SetFlightPage("page=1", generation, samplePage())

	_, current, ok := cache.GetFlightPage("page=1")
	assert.False(t, ok)
	assert.Equal(t, int64(1), current)
	assert.NotContains(t, client.values, "test:flights:v1:page=1")
}

func TestRedisFlightCacheFailuresAreMisses(t *testing.T) {
	client := newFakeRedis()
	cache := newTestCache(client)
	cache.SetFlightPage("page=1", 0, samplePage())

	client.failWith = errors.New("connection refused")
	_, generation, ok := cache.GetFlightPage("page=1")
	assert.False(t, ok)
	assert.Equal(t, UnknownGeneration, generation)
	assert.NotPanics(t, func() {
		cache.SetFlightPage("page=2", 0, samplePage())
		cache.Invalidate()
	})
}

func TestRedisFlightCacheSkipsUnknownGeneration(t *testing.T) {
	client := newFakeRedis()
	cache := newTestCache(client)

	cache.SetFlightPage("page=1", UnknownGeneration, samplePage())

	assert.Empty(t, client.values)
}

func TestRedisFlightCacheDiscardsMalformedPage(t *testing.T) {
	client := newFakeRedis()
	client.values["test:flights:v0:page=1"] = "{not json"
	cache := newTestCache(client)

	_, _, ok := cache.GetFlightPage("page=1")
	assert.False(t, ok)
}

func TestNopFlightCache(t *testing.T) {
	cache := NewNopFlightCache()
	cache.SetFlightPage("page=1", 0, samplePage())
	_, generation, ok := cache.GetFlightPage("page=1")
	assert.False(t, ok)
	assert.Equal(t, UnknownGeneration, generation)
	cache.Invalidate()
}

func TestNewFlightCacheDisabled(t *testing.T) {
	cache, closer, err := NewFlightCache(log.NewNullLogger(), &c.RedisConfig{Enabled: false})
	require.NoError(t, err)
	assert.IsType(t, &NopFlightCache{}, cache)
	assert.NoError(t, closer.Invoke(context.Background()))
}

// Package cache
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/global"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/redis/go-redis/v9"
)

const commandTimeout = 500 * time.Millisecond

// redisCommands is the part of *redis.Client the cache uses
type redisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// RedisFlightCache stores flight list pages under a generation number. Invalidate bumps the
// generation, so every page written before it becomes unreachable and expires on its own.
type RedisFlightCache struct {
	logger    log.LoggerInterface
	client    redisCommands
	keyPrefix string
	expire    time.Duration
}

func NewRedisFlightCache(logger log.LoggerInterface, client redisCommands, config *c.RedisConfig) *RedisFlightCache {
	return &RedisFlightCache{
		logger:    logger,
		client:    client,
		keyPrefix: config.KeyPrefix,
		expire:    config.CacheExpire,
	}
}

func (cache *RedisFlightCache) versionKey() string {
	return cache.keyPrefix + ":flights:version"
}

func (cache *RedisFlightCache) pageKey(version int64, key string) string {
	return fmt.Sprintf("%s:flights:v%d:%s", cache.keyPrefix, version, key)
}

func (cache *RedisFlightCache) version(ctx context.Context) (int64, error) {
	value, err := cache.client.Get(ctx, cache.versionKey()).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return strconv.ParseInt(value, 10, 64)
}

// GetFlightPage treats every redis failure as a miss. The generation is returned on a miss too,
// the caller writes the page it builds back under it.
func (cache *RedisFlightCache) GetFlightPage(key string) (*PageResponse[FlightListItem], int64, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	version, err := cache.version(ctx)
	if err != nil {
		cache.logger.WarnF("Fail to read flight cache version, %v", err)
		return nil, UnknownGeneration, false
	}
	data, err := cache.client.Get(ctx, cache.pageKey(version, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, version, false
	} else if err != nil {
		cache.logger.WarnF("Fail to read flight page %s, %v", key, err)
		return nil, version, false
	}
	page := &PageResponse[FlightListItem]{}
	if err := json.Unmarshal(data, page); err != nil {
		cache.logger.WarnF("Discarding malformed flight page %s, %v", key, err)
		return nil, version, false
	}
	return page, version, true
}

// SetFlightPage writes under the generation read before the page was built, a page built across
// an Invalidate lands in a generation nobody reads anymore
func (cache *RedisFlightCache) SetFlightPage(key string, generation int64, page *PageResponse[FlightListItem]) {
	if generation < 0 {
		return
	}
	data, err := json.Marshal(page)
	if err != nil {
		cache.logger.WarnF("Fail to encode flight page %s, %v", key, err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	if err := cache.client.Set(ctx, cache.pageKey(generation, key), data, cache.expire).Err(); err != nil {
		cache.logger.WarnF("Fail to write flight page %s, %v", key, err)
	}
}

func (cache *RedisFlightCache) Invalidate() {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	if err := cache.client.Incr(ctx, cache.versionKey()).Err(); err != nil {
		cache.logger.ErrorF("Fail to invalidate flight cache, %v", err)
	}
}

// NopFlightCache is used while redis is disabled, every read misses
type NopFlightCache struct{}

func NewNopFlightCache() *NopFlightCache { return &NopFlightCache{} }

func (*NopFlightCache) GetFlightPage(string) (*PageResponse[FlightListItem], int64, bool) {
	return nil, UnknownGeneration, false
}

func (*NopFlightCache) SetFlightPage(string, int64, *PageResponse[FlightListItem]) {}

func (*NopFlightCache) Invalidate() {}

type RedisCloseCallback struct {
	logger log.LoggerInterface
	client *redis.Client
}

func (rc *RedisCloseCallback) Invoke(_ context.Context) error {
	rc.logger.Info("Closing redis connection")
	return rc.client.Close()
}

// NewFlightCache connects to redis when enabled, the returned callback closes the connection
func NewFlightCache(logger log.LoggerInterface, config *c.RedisConfig) (FlightCacheInterface, global.Callable, error) {
	if !config.Enabled {
		logger.Info("Redis disabled, flight list cache is off")
		return NewNopFlightCache(), global.CallableFunc(func(context.Context) error { return nil }), nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.Address,
		Password: config.Password,
		DB:       config.DB,
		PoolSize: 10,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("fail to connect to redis at %s: %w", config.Address, err)
	}
	logger.InfoF("Flight list cache connected to redis at %s", config.Address)
	return NewRedisFlightCache(logger, client, config), &RedisCloseCallback{logger: logger, client: client}, nil
}

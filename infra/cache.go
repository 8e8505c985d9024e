package infra

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rflkt/rflkt-storage-service/config"
)

type RedisClient struct {
	Client *redis.Client
}

func InitRedisClient(cfg *config.EnvConfig) *RedisClient {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}

	log.Println("Connected to Redis:", cfg.Redis.Port+" on "+cfg.Redis.Host)

	return &RedisClient{Client: client}
}

func (r *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, key, data, expiration).Err()
}

func (r *RedisClient) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return errors.New("key not found in cache")
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

func (r *RedisClient) Delete(ctx context.Context, keys ...string) error {
	return r.Client.Del(ctx, keys...).Err()
}

const bucketLocationTTL = time.Hour

// BucketLocationCache memoizes bucket-location lookups in Redis so public
// URL construction does not round-trip to the store per request. Cache
// faults are treated as misses.
type BucketLocationCache struct {
	redis *RedisClient
}

func (r *RedisClient) LocationCache() *BucketLocationCache {
	return &BucketLocationCache{redis: r}
}

func (c *BucketLocationCache) GetLocation(ctx context.Context, bucket string) (string, bool) {
	var region string
	if err := c.redis.Get(ctx, "bucket-location:"+bucket, &region); err != nil {
		return "", false
	}
	return region, region != ""
}

func (c *BucketLocationCache) SetLocation(ctx context.Context, bucket, region string) {
	_ = c.redis.Set(ctx, "bucket-location:"+bucket, region, bucketLocationTTL)
}

package store

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Store 写入布局数据所需的最小存储接口（单元测试中用内存实现替换 Redis）
type Store interface {
	Clear(ctx context.Context) error
	AddToSet(ctx context.Context, key, member string) error
	WriteHash(ctx context.Context, key string, fields map[string]string) error
	AppendToList(ctx context.Context, key, member string) error
}

// RedisStore 基于 go-redis 的 Store 实现
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Clear 清空当前 DB（FLUSHDB）
func (r *RedisStore) Clear(ctx context.Context) error {
	return r.client.FlushDB(ctx).Err()
}

func (r *RedisStore) AddToSet(ctx context.Context, key, member string) error {
	return r.client.SAdd(ctx, key, member).Err()
}

func (r *RedisStore) WriteHash(ctx context.Context, key string, fields map[string]string) error {
	if len(fields) == 0 {
		// HSET 不接受空字段列表
		return fmt.Errorf("hash %s: no fields", key)
	}
	values := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		values[k] = v
	}
	return r.client.HSet(ctx, key, values).Err()
}

func (r *RedisStore) AppendToList(ctx context.Context, key, member string) error {
	return r.client.RPush(ctx, key, member).Err()
}

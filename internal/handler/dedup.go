package handler

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DedupStore 保存每个排班记录最近一次应用的起止日期，
// 用于跳过拖拽产生的重复更新
type DedupStore interface {
	// LastUpdate 返回已记录的更新标记，没有记录时返回空串而不是错误
	LastUpdate(ctx context.Context, key string) (string, error)
	MarkUpdated(ctx context.Context, key, value string, ttl time.Duration) error
}

type redisDedupStore struct {
	client *redis.Client
}

func NewRedisDedupStore(client *redis.Client) DedupStore {
	return &redisDedupStore{client: client}
}

func (s *redisDedupStore) LastUpdate(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (s *redisDedupStore) MarkUpdated(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

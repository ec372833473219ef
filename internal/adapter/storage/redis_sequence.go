package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const sequenceKey = "invoice:number:seq"

// RedisSequence issues invoice sequence values with INCR. INCR is atomic and
// the counter is persisted with the Redis instance, so concurrent creations
// never collide and values strictly increase.
type RedisSequence struct {
	client *redis.Client
}

func NewRedisSequence(client *redis.Client) *RedisSequence {
	return &RedisSequence{client: client}
}

func (r *RedisSequence) Next(ctx context.Context) (int64, error) {
	n, err := r.client.Incr(ctx, sequenceKey).Result()
	if err != nil {
		return 0, fmt.Errorf("incr invoice sequence: %w", err)
	}
	return n, nil
}

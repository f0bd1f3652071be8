package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisClient 介面定義
type RedisClient interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// 第一次 INCR 時設定過期時間, 兩步在同一個 script 內完成
const fixedWindowScript = `
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return current
`

// RedisFixedWindow 多個 instance 共用計數
type RedisFixedWindow struct {
	LimiterConfig
	client RedisClient
}

func NewRedisFixedWindow(client RedisClient, config *LimiterConfig) *RedisFixedWindow {
	rw := &RedisFixedWindow{
		client: client,
	}
	if config != nil {
		rw.LimiterConfig = *config
	} else {
		rw.LimiterConfig = GetDefaultLimiterConfig()
	}
	return rw
}

func (r *RedisFixedWindow) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("%s:%s", r.Prefix, key)
	count, err := r.client.Eval(ctx, fixedWindowScript, []string{redisKey}, r.Window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("redis rate limit: %w", err)
	}
	return count <= int64(r.Capacity), nil
}

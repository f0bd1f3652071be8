package ratelimit

import (
	"context"
	"time"
)

// ILimiter 以 key (通常是 client ip) 為單位限流
type ILimiter interface {
	// Allow 回傳是否允許此次請求, error 表示後端異常, 由呼叫端決定放行與否
	Allow(ctx context.Context, key string) (bool, error)
}

type LimiterConfig struct {
	Prefix   string
	Capacity int
	Window   time.Duration
}

func GetDefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		Prefix:   "ratelimit",
		Capacity: 10,
		Window:   time.Minute,
	}
}

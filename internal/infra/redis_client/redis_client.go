package redis_client

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

var (
	_instances = sync.Map{}
)

// GetRedisClient 同一個 address 共用一個 client
func GetRedisClient(address string, options ...Option) *redis.Client {
	if client, ok := _instances.Load(address); ok {
		return client.(*redis.Client)
	}

	opts := &redis.Options{
		Addr: address,
	}
	for _, option := range options {
		option(opts)
	}

	client, _ := _instances.LoadOrStore(address, redis.NewClient(opts))
	return client.(*redis.Client)
}

// Ping 啟動時確認 redis 可連線
func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}

type Option func(*redis.Options)

func WithPassword(password string) Option {
	return func(o *redis.Options) {
		o.Password = password
	}
}

func WithDB(db int) Option {
	return func(o *redis.Options) {
		o.DB = db
	}
}

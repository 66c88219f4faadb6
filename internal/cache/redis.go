package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisNewClient 用來建立 redis client，測試可覆寫此變數。
var redisNewClient = func(opt *redis.Options) Cache {
	return redis.NewClient(opt)
}

// Options 對應 REDIS_* 設定
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient 建立 client 並先 Ping 一次，失敗時關閉連線並回傳錯誤
func NewRedisClient(ctx context.Context, opts Options) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("NewRedisClient: %w", err)
	}
	return client, nil
}

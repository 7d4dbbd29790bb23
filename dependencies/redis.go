// dependencies/redis.go
package dependencies

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/letter_service/config"
)

// InitRedis 初始化 Redis 连接并验证连通性。
// 启动期网络抖动很常见，这里做有限次数的重试，全部失败才返回错误。
func InitRedis(cfg *appConfig.RedisConfig, logger *core.ZapLogger) (*redis.Client, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis 地址 (redis.address) 未配置")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	maxRetries := 5
	retryInterval := 2 * time.Second

	logger.Info("开始连接 Redis...", zap.String("address", cfg.Address), zap.Int("db", cfg.DB))
	var err error
	for i := 0; i < maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err = client.Ping(ctx).Err()
		cancel()
		if err == nil {
			logger.Info("Redis 连接成功")
			return client, nil
		}
		logger.Warn("无法连接到 Redis，尝试重试", zap.Int("retry", i+1), zap.Int("maxRetries", maxRetries), zap.Error(err))
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}

	_ = client.Close()
	return nil, fmt.Errorf("经过 %d 次重试后仍无法连接 Redis: %w", maxRetries, err)
}

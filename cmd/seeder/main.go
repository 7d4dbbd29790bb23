package main

import (
	"context"
	"flag"
	"log"

	sharedCore "github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/letter_service/config"
	"github.com/Xushengqwer/letter_service/dependencies"
	redisrepo "github.com/Xushengqwer/letter_service/repo/redis"
	"github.com/Xushengqwer/letter_service/service"
)

// 展示墙造数工具。向配置指定的 Redis 后端填充家书和点赞，
// 方便本地联调时展示墙不是空的。
func main() {
	var configFile string
	var numLetters int
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.IntVar(&numLetters, "n", 30, "Number of letters to seed")
	flag.Parse()

	var cfg appConfig.LetterConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	logger, err := sharedCore.NewZapLogger(cfg.ZapConfig)
	if err != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", err)
	}
	defer func() { _ = logger.Logger().Sync() }()

	// 造数只对持久化后端有意义，进程内存储随进程退出即丢。
	if !cfg.RedisConfig.Enabled() {
		logger.Fatal("未配置 Redis，造数工具无处可写 (redis.address 为空)")
	}

	rdb, err := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if err != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()

	letterStore := redisrepo.NewLetterStore(rdb, logger)
	wallSvc := service.NewLetterWallService(letterStore, nil, logger)

	Seed(context.Background(), wallSvc, logger, numLetters)
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Xushengqwer/letter_service/docs" // 确保导入了 docs 包

	// 导入项目包
	appConfig "github.com/Xushengqwer/letter_service/config"
	"github.com/Xushengqwer/letter_service/constant"
	"github.com/Xushengqwer/letter_service/controller"
	"github.com/Xushengqwer/letter_service/dependencies"
	"github.com/Xushengqwer/letter_service/llm"
	"github.com/Xushengqwer/letter_service/moderation"
	"github.com/Xushengqwer/letter_service/mq/producer"
	"github.com/Xushengqwer/letter_service/ratelimit"
	"github.com/Xushengqwer/letter_service/repo"
	"github.com/Xushengqwer/letter_service/repo/memstore"
	redisrepo "github.com/Xushengqwer/letter_service/repo/redis"
	"github.com/Xushengqwer/letter_service/router"
	"github.com/Xushengqwer/letter_service/service"
	"github.com/Xushengqwer/letter_service/tasks"

	// 导入公共模块
	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"

	// 导入 OTel HTTP Client Instrumentation
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// @title           Letter Service API
// @version         1.0
// @description     家书服务，把家长的只言片语生成温暖的家书，并提供展示墙的分享、点赞与举报功能。
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

// @schemes http https
func main() {
	// --- 配置和基础设置 ---
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.LetterConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 打印最终生效的配置以供调试。API Key 不打印。
	printable := cfg
	if printable.LLMConfig.APIKey != "" {
		printable.LLMConfig.APIKey = "******"
	}
	configBytes, err := json.MarshalIndent(printable, "", "  ")
	if err != nil {
		log.Fatalf("无法序列化配置以进行打印: %v", err)
	}
	log.Printf("✅ 配置加载成功！最终生效的配置如下:\n%s\n", string(configBytes))

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		logger.Info("正在同步日志...")
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider
	// llmTransport 用于出站的大模型 HTTP 调用，追踪开启时换成 OTel Transport。
	var llmTransport http.RoundTripper = http.DefaultTransport
	if cfg.TracerConfig.Enabled {
		tracerShutdown, tracerErr := sharedTracing.InitTracerProvider(
			constant.ServiceName,
			constant.ServiceVersion,
			cfg.TracerConfig,
		)
		if tracerErr != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(tracerErr))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("正在关闭 TracerProvider...")
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			} else {
				logger.Info("TracerProvider 已成功关闭")
			}
		}()
		llmTransport = otelhttp.NewTransport(http.DefaultTransport)
		logger.Info("分布式追踪已初始化，出站 LLM 调用将携带追踪信息")
	} else {
		logger.Info("分布式追踪已禁用")
	}

	// --- 4. 初始化核心依赖 ---
	// 4.1 存储后端: 配置了 Redis 则用 Redis，否则退化为进程内存储
	var letterStore repo.LetterStore
	if cfg.RedisConfig.Enabled() {
		rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
		if redisErr != nil {
			logger.Fatal("初始化 Redis 失败", zap.Error(redisErr))
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				logger.Error("关闭 Redis 连接失败", zap.Error(err))
			}
		}()
		letterStore = redisrepo.NewLetterStore(rdb, logger)
		logger.Info("展示墙存储使用 Redis 后端")
	} else {
		letterStore = memstore.NewStore(logger)
		logger.Warn("未配置 Redis，展示墙存储退化为进程内存储，重启后数据丢失")
	}

	// 4.2 Kafka 生产者
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化")
	} else {
		logger.Warn("未配置 Kafka brokers，分享/举报事件将不会发布")
	}

	// 4.3 大模型客户端
	llmClient := llm.NewClient(cfg.LLMConfig, llmTransport, logger)

	// --- 5. 初始化边界组件 ---
	contentGate := moderation.NewContentGate(moderation.SubstringDenylist(cfg.ModerationConfig.DenyWords))
	shareLimiter := ratelimit.NewSlidingWindowLimiter()
	logger.Debug("内容校验与限流组件初始化完成")

	// --- 6. 初始化服务层 (Services) ---
	genService := service.NewLetterGenService(llmClient, logger)
	wallService := service.NewLetterWallService(letterStore, kafkaProducer, logger)
	logger.Debug("Services 初始化完成")

	// --- 7. 初始化控制器层 (Controllers) ---
	genController := controller.NewLetterGenController(genService)
	wallController := controller.NewWallController(wallService, contentGate, shareLimiter, cfg.RateLimitConfig)
	logger.Debug("Controllers 初始化完成")

	// --- 8. 初始化定时任务 ---
	sweepTask := tasks.NewRateLimitSweepTask(shareLimiter, cfg.RateLimitConfig, logger)
	logger.Info("后台定时任务已初始化并启动")

	// --- 9. 设置 Gin 路由器 ---
	ginRouter := router.SetupRouter(logger, &cfg, genController, wallController)
	logger.Info("Gin 路由器已设置")

	// --- 10. 启动 HTTP 服务器 ---
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
		logger.Info("HTTP 服务器已停止监听")
	}()

	// --- 11. 实现优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancelFunc := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancelFunc()

	// a. 停止 HTTP 服务器 (允许处理完当前请求)
	logger.Info("正在关闭 HTTP 服务器...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	// b. 停止定时任务调度器 (等待正在执行的任务结束)
	logger.Info("正在停止定时任务...")
	sweepStopCtx := sweepTask.Stop()
	select {
	case <-sweepStopCtx.Done():
		logger.Info("限流清理任务已停止")
	case <-shutdownCtx.Done():
		logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
	}

	// c. 关闭 Kafka 生产者
	if kafkaProducer != nil {
		logger.Info("正在关闭 Kafka 生产者...")
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		} else {
			logger.Info("Kafka 生产者已成功关闭")
		}
	}

	logger.Info("服务已优雅退出")
}

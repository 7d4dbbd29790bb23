// File: tasks/ratelimit_sweep.go
package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/letter_service/config"
	"github.com/Xushengqwer/letter_service/constant"
	"github.com/Xushengqwer/letter_service/ratelimit"
)

// RateLimitSweepTask 负责定时清理限流器里已经滑出窗口的记录。
// 限流器本身只在写路径上惰性修剪，长期不再分享的 IP 会把
// 过期时间戳留在内存里，由这个任务兜底回收。
type RateLimitSweepTask struct {
	limiter *ratelimit.SlidingWindowLimiter
	window  time.Duration
	cron    *cron.Cron
	logger  *core.ZapLogger
}

// NewRateLimitSweepTask 初始化并启动限流清理的定时任务。
// - limiter: 分享接口使用的滑动窗口限流器。
// - cfg: 限流配置，决定窗口长度。
// - logger: ZapLogger 实例。
func NewRateLimitSweepTask(limiter *ratelimit.SlidingWindowLimiter, cfg appConfig.RateLimitConfig, logger *core.ZapLogger) *RateLimitSweepTask {
	cronV3 := cron.New()

	task := &RateLimitSweepTask{
		limiter: limiter,
		window:  time.Duration(cfg.WindowSecondsOrDefault()) * time.Second,
		cron:    cronV3,
		logger:  logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *RateLimitSweepTask) startCronJob() {
	schedule := constant.RateLimitSweepCronSpec
	t.logger.Info("准备启动限流记录清理定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		startTime := time.Now()
		removed := t.limiter.Sweep(t.window)
		t.logger.Info("限流记录清理任务执行完毕",
			zap.Int("removedKeys", removed),
			zap.Int("remainingKeys", t.limiter.KeyCount()),
			zap.Duration("duration", time.Since(startTime)))
	})

	if err != nil {
		t.logger.Fatal("添加限流记录清理 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("限流记录清理定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// Stop 优雅地停止 cron 调度器。
// 返回的 context 会在所有正在运行的作业结束后被取消。
func (t *RateLimitSweepTask) Stop() context.Context {
	t.logger.Info("正在停止限流记录清理定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("限流记录清理定时任务调度器已停止")
	return stopCtx
}

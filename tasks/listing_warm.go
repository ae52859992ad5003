// File: tasks/listing_warm.go
package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/house_service/constant"
)

// listingWarmTimeout 单次预热的超时，防止数据库卡顿时任务堆积
const listingWarmTimeout = 2 * time.Minute

// ListingWarmer 重建公共目录缓存
type ListingWarmer interface {
	WarmPublicListing(ctx context.Context) error
}

// ListingWarmTask 定时重建公共目录缓存。
// 写操作会删除缓存键，消费者会在收到事件后回填；本任务作为兜底，
// 覆盖 Kafka 未配置或事件丢失的情况。
type ListingWarmTask struct {
	warmer ListingWarmer
	cron   *cron.Cron
	logger *zap.Logger
}

// NewListingWarmTask 注册并启动预热任务。schedule 为空时使用 constant.ListingWarmCronSpec。
// 上一次执行未结束时跳过本次触发。
func NewListingWarmTask(warmer ListingWarmer, schedule string, logger *zap.Logger) (*ListingWarmTask, error) {
	if schedule == "" {
		schedule = constant.ListingWarmCronSpec
	}
	task := &ListingWarmTask{
		warmer: warmer,
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger,
	}

	entryID, err := task.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), listingWarmTimeout)
		defer cancel()
		task.runOnce(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("添加公共目录预热 cron 作业失败 (schedule=%s): %w", schedule, err)
	}

	task.cron.Start()
	logger.Info("公共目录缓存预热定时任务已启动", zap.String("schedule", schedule), zap.Int("cronEntryID", int(entryID)))
	return task, nil
}

func (t *ListingWarmTask) runOnce(ctx context.Context) {
	startTime := time.Now()
	if err := t.warmer.WarmPublicListing(ctx); err != nil {
		t.logger.Error("公共目录缓存预热失败", zap.Error(err))
		return
	}
	t.logger.Info("公共目录缓存预热完成", zap.Duration("duration", time.Since(startTime)))
}

// Stop 停止调度，返回的 context 在正在执行的任务结束后 Done
func (t *ListingWarmTask) Stop() context.Context {
	t.logger.Info("正在停止公共目录缓存预热定时任务...")
	return t.cron.Stop()
}

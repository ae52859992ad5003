package consumer

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/house_service/config"
)

const (
	fetchRetryBackoff = time.Second
	handleTimeout     = 30 * time.Second
)

// MessageHandler 处理单条房源事件。
// 返回 error 只记录日志，消息照常提交；无法解析的消息应返回 nil。
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// Consumer 单主题消费者：先处理，再提交 offset。
type Consumer struct {
	reader  *kafka.Reader
	handler MessageHandler
	logger  *zap.Logger
}

// NewConsumer 创建消费者，topic 与 brokers 均不能为空
func NewConsumer(cfg *appConfig.KafkaConfig, groupID string, topic string, handler MessageHandler, logger *zap.Logger) (*Consumer, error) {
	switch {
	case topic == "":
		return nil, errors.New("消费主题为空")
	case len(cfg.Brokers) == 0:
		return nil, errors.New("未配置 Kafka brokers")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 1 << 20,
		MaxWait:  2 * time.Second,
	})

	return &Consumer{
		reader:  reader,
		handler: handler,
		logger:  logger.With(zap.String("topic", topic), zap.String("groupID", groupID)),
	}, nil
}

// Start 阻塞消费，直到 ctx 取消或 reader 被关闭
func (c *Consumer) Start(ctx context.Context) {
	c.logger.Info("房源事件消费者启动")
	defer c.logger.Info("房源事件消费者退出")

	for ctx.Err() == nil {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if isReaderClosed(err) {
				return
			}
			c.logger.Error("拉取房源事件失败", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(fetchRetryBackoff):
			}
			continue
		}

		c.dispatch(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil && !isReaderClosed(err) {
			c.logger.Error("提交 offset 失败", zap.Int64("offset", msg.Offset), zap.Error(err))
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, msg kafka.Message) {
	handleCtx, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()

	if err := c.handler.Handle(handleCtx, msg); err != nil {
		c.logger.Error("处理房源事件失败",
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
			zap.Error(err))
	}
}

func isReaderClosed(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed)
}

// Close 关闭 reader，并记录累计消费统计
func (c *Consumer) Close() error {
	stats := c.reader.Stats()
	if err := c.reader.Close(); err != nil {
		c.logger.Error("关闭消费者失败", zap.Error(err))
		return err
	}
	c.logger.Info("消费者已关闭",
		zap.Int64("messages", stats.Messages),
		zap.Int64("errors", stats.Errors))
	return nil
}

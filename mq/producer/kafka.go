package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/house_service/config"
)

// HouseAction 房源变更类型
type HouseAction string

const (
	HouseCreated HouseAction = "created"
	HouseUpdated HouseAction = "updated"
	HouseDeleted HouseAction = "deleted"
)

// HouseChangedEvent 房源写操作成功提交后发布的事件
type HouseChangedEvent struct {
	EventID   string      `json:"eventId"`
	Timestamp time.Time   `json:"timestamp"`
	Action    HouseAction `json:"action"`
	HouseID   uint64      `json:"houseId"`
	HumanCode string      `json:"humanCode,omitempty"`
}

// HouseEventPublisher 服务层依赖的事件发布接口
type HouseEventPublisher interface {
	SendHouseChangedEvent(ctx context.Context, action HouseAction, houseID uint64, humanCode string) error
}

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
	topics config.Topics
}

func NewKafkaProducer(cfg config.KafkaConfig, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{}, // 以 houseID 为 key，同一房源的事件进入同一分区保持顺序
		AllowAutoTopicCreation: true,
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: cfg.Topics,
	}
}

// SendEvent 将事件 JSON 序列化后写入指定主题
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, key []byte, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("序列化 Kafka 事件失败", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("发送 Kafka 消息", zap.String("topic", topic), zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: eventBytes,
	})
	if err != nil {
		p.logger.Error("写入 Kafka 消息失败", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Kafka 消息发送成功", zap.String("topic", topic))
	}
	return err
}

// SendHouseChangedEvent 发布房源变更事件到 HouseChanged 主题
func (p *KafkaProducer) SendHouseChangedEvent(ctx context.Context, action HouseAction, houseID uint64, humanCode string) error {
	event := HouseChangedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Action:    action,
		HouseID:   houseID,
		HumanCode: humanCode,
	}
	key, _ := json.Marshal(houseID)
	return p.SendEvent(ctx, p.topics.HouseChanged, key, event)
}

// Close 关闭底层 writer，刷出缓冲中的消息
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/house_service/mq/producer"
)

// ListingWarmer 重建公共目录缓存，由 service.CatalogService 实现
type ListingWarmer interface {
	WarmPublicListing(ctx context.Context) error
}

// ListingRefreshHandler 消费房源变更事件并重建公共目录缓存。
// 写操作只同步删除缓存键，这里在后台把缓存重新填满，避免首个访客回源。
type ListingRefreshHandler struct {
	warmer ListingWarmer
	logger *zap.Logger
}

func NewListingRefreshHandler(warmer ListingWarmer, logger *zap.Logger) *ListingRefreshHandler {
	return &ListingRefreshHandler{warmer: warmer, logger: logger}
}

func (h *ListingRefreshHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event producer.HouseChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("ListingRefreshHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	h.logger.Debug("ListingRefreshHandler: 收到房源变更事件",
		zap.String("event_id", event.EventID),
		zap.String("action", string(event.Action)),
		zap.Uint64("house_id", event.HouseID))

	if err := h.warmer.WarmPublicListing(ctx); err != nil {
		return fmt.Errorf("ListingRefreshHandler: 重建公共目录缓存失败: %w", err)
	}
	return nil
}

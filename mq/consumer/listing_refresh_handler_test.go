package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/house_service/mq/producer"
)

type fakeWarmer struct {
	calls int
	err   error
}

func (f *fakeWarmer) WarmPublicListing(ctx context.Context) error {
	f.calls++
	return f.err
}

func eventMessage(t *testing.T, event producer.HouseChangedEvent) kafka.Message {
	t.Helper()
	value, err := json.Marshal(event)
	require.NoError(t, err)
	return kafka.Message{Value: value}
}

func TestListingRefreshHandler(t *testing.T) {
	ctx := context.Background()
	event := producer.HouseChangedEvent{EventID: "e1", Timestamp: time.Now(), Action: producer.HouseCreated, HouseID: 7, HumanCode: "7"}

	t.Run("重建缓存", func(t *testing.T) {
		warmer := &fakeWarmer{}
		h := NewListingRefreshHandler(warmer, zap.NewNop())
		require.NoError(t, h.Handle(ctx, eventMessage(t, event)))
		require.Equal(t, 1, warmer.calls)
	})

	t.Run("无法解析的消息被跳过", func(t *testing.T) {
		warmer := &fakeWarmer{}
		h := NewListingRefreshHandler(warmer, zap.NewNop())
		require.NoError(t, h.Handle(ctx, kafka.Message{Value: []byte("{")}))
		require.Zero(t, warmer.calls)
	})

	t.Run("重建失败返回错误", func(t *testing.T) {
		warmer := &fakeWarmer{err: errors.New("db down")}
		h := NewListingRefreshHandler(warmer, zap.NewNop())
		require.Error(t, h.Handle(ctx, eventMessage(t, event)))
	})
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/house_service/models/entities"
	"github.com/Xushengqwer/house_service/mq/producer"
	"github.com/Xushengqwer/house_service/repo/mysql"
	"github.com/Xushengqwer/house_service/testhelpers"
)

type publishedEvent struct {
	action    producer.HouseAction
	houseID   uint64
	humanCode string
}

type chanPublisher chan publishedEvent

func (p chanPublisher) SendHouseChangedEvent(ctx context.Context, action producer.HouseAction, houseID uint64, humanCode string) error {
	p <- publishedEvent{action: action, houseID: houseID, humanCode: humanCode}
	return nil
}

func waitEvent(t *testing.T, events chanPublisher) publishedEvent {
	t.Helper()
	select {
	case e := <-events:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("未收到房源变更事件")
		return publishedEvent{}
	}
}

func TestHouseWritesPublishEvents(t *testing.T) {
	f := newHouseFixture(t, nil)
	logger := testhelpers.NopLogger()
	events := make(chanPublisher, 4)
	svc := NewHouseService(f.db, mysql.NewHouseRepository(f.db, logger), mysql.NewHouseLinkRepository(f.db, logger),
		mysql.NewCounterRepository(), mysql.NewPhoneRepository(f.db, logger), mysql.NewMessengerRepository(f.db, logger),
		nil, events, logger)

	require.NoError(t, svc.CreateHouse(bg, f.validHouseRequest()))
	created := waitEvent(t, events)
	require.Equal(t, producer.HouseCreated, created.action)
	require.Equal(t, "1", created.humanCode)

	var house entities.House
	require.NoError(t, f.db.First(&house).Error)
	require.Equal(t, house.ID, created.houseID)

	req := f.validHouseRequest()
	req.ID = ptr(house.ID)
	require.NoError(t, svc.UpdateHouse(bg, req))
	require.Equal(t, producer.HouseUpdated, waitEvent(t, events).action)

	require.NoError(t, svc.DeleteHouse(bg, house.ID))
	require.Equal(t, producer.HouseDeleted, waitEvent(t, events).action)

	// 校验失败不发布
	bad := f.validHouseRequest()
	bad.Name = ""
	require.Error(t, svc.CreateHouse(bg, bad))
	select {
	case e := <-events:
		t.Fatalf("意外的事件: %+v", e)
	case <-time.After(100 * time.Millisecond):
	}
}

// gatedPublisher 在 release 关闭前阻塞发送
type gatedPublisher struct {
	release chan struct{}
	sent    chan uint64
}

func (p *gatedPublisher) SendHouseChangedEvent(ctx context.Context, action producer.HouseAction, houseID uint64, humanCode string) error {
	<-p.release
	p.sent <- houseID
	return nil
}

func TestDrainWaitsForPendingPublishes(t *testing.T) {
	f := newHouseFixture(t, nil)
	logger := testhelpers.NopLogger()
	pub := &gatedPublisher{release: make(chan struct{}), sent: make(chan uint64, 1)}
	svc := NewHouseService(f.db, mysql.NewHouseRepository(f.db, logger), mysql.NewHouseLinkRepository(f.db, logger),
		mysql.NewCounterRepository(), mysql.NewPhoneRepository(f.db, logger), mysql.NewMessengerRepository(f.db, logger),
		nil, pub, logger)

	require.NoError(t, svc.CreateHouse(bg, f.validHouseRequest()))

	short, cancel := context.WithTimeout(bg, 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, svc.Drain(short), context.DeadlineExceeded)

	close(pub.release)
	require.NoError(t, svc.Drain(bg))
	select {
	case <-pub.sent:
	default:
		t.Fatal("Drain 返回时事件尚未发送")
	}
}

func TestDrainWithoutPublisher(t *testing.T) {
	f := newHouseFixture(t, nil)
	require.NoError(t, f.svc.CreateHouse(bg, f.validHouseRequest()))
	require.NoError(t, f.svc.Drain(bg))
}

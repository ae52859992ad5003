package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/house_service/constant"
	"github.com/Xushengqwer/house_service/models/dto"
	"github.com/Xushengqwer/house_service/models/entities"
	"github.com/Xushengqwer/house_service/models/vo"
	"github.com/Xushengqwer/house_service/mq/producer"
	"github.com/Xushengqwer/house_service/myErrors"
	"github.com/Xushengqwer/house_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/house_service/repo/redis"
)

// HouseService 后台房源管理。
//
// 写方法的返回约定：
//   - nil: 成功
//   - *myErrors.FieldError: 校验失败，携带第一个不合格的字段
//   - myErrors.ErrMissingID: 更新/删除缺少 ID
//   - 其他 error: 持久化失败，原样返回数据库驱动的错误
//
// 读方法失败时记录日志并返回 nil，调用方按“无数据”处理。
type HouseService interface {
	CreateHouse(ctx context.Context, req *dto.HouseRequest) error
	UpdateHouse(ctx context.Context, req *dto.HouseRequest) error
	DeleteHouse(ctx context.Context, id uint64) error

	GetHouses(ctx context.Context, withLinks bool) []*vo.HouseVO
	GetHouse(ctx context.Context, id uint64) *vo.HouseVO
	GetDefaultSelection(ctx context.Context) *vo.DefaultSelectionVO

	CreateHousePhone(ctx context.Context, req *dto.CreateHousePhoneRequest) error
	GetHousePhones(ctx context.Context) []*vo.HousePhoneVO

	// Drain 等待已提交写操作的事件发布结束，关闭生产者之前调用。
	// ctx 先结束时返回 ctx.Err()，未完成的发送继续在后台运行。
	Drain(ctx context.Context) error
}

type houseService struct {
	db            *gorm.DB
	houseRepo     mysql.HouseRepository
	linkRepo      mysql.HouseLinkRepository
	counterRepo   mysql.CounterRepository
	phoneRepo     mysql.DictionaryRepository[entities.Phone]
	messengerRepo mysql.DictionaryRepository[entities.Messenger]
	cache         listingCache
	publisher     producer.HouseEventPublisher // 可为 nil，未配置 Kafka 时不发布事件
	publishing    sync.WaitGroup
	logger        *zap.Logger
}

// NewHouseService 构造后台房源服务。cache 与 publisher 均可为 nil。
func NewHouseService(
	db *gorm.DB,
	houseRepo mysql.HouseRepository,
	linkRepo mysql.HouseLinkRepository,
	counterRepo mysql.CounterRepository,
	phoneRepo mysql.DictionaryRepository[entities.Phone],
	messengerRepo mysql.DictionaryRepository[entities.Messenger],
	cache redisrepo.ListingCache,
	publisher producer.HouseEventPublisher,
	logger *zap.Logger,
) HouseService {
	return &houseService{
		db:            db,
		houseRepo:     houseRepo,
		linkRepo:      linkRepo,
		counterRepo:   counterRepo,
		phoneRepo:     phoneRepo,
		messengerRepo: messengerRepo,
		cache:         newListingCache(cache, logger),
		publisher:     publisher,
		logger:        logger,
	}
}

// CreateHouse 创建房源：
// 1. 剥离 id / phones / messengers 并校验，失败时不触碰数据库；
// 2. 单个事务内：计数器自增 → 以自增后的值作为 humanCode 插入房源 → 插入关联行；
// 3. 提交后失效列表缓存并异步发布 created 事件。
func (s *houseService) CreateHouse(ctx context.Context, req *dto.HouseRequest) error {
	house, err := buildHouseEntity(req)
	if err != nil {
		return err
	}
	phoneIDs, messengerIDs := uniqueIDs(req.Phones), uniqueIDs(req.Messengers)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		next, err := s.counterRepo.Next(ctx, tx, constant.HouseCounterName)
		if err != nil {
			return err
		}
		house.HumanCode = strconv.FormatInt(next, 10)

		if err := s.houseRepo.CreateHouse(ctx, tx, house); err != nil {
			return err
		}
		return s.linkRepo.InsertLinks(ctx, tx, house.ID, phoneIDs, messengerIDs)
	})
	if err != nil {
		s.logger.Error("创建房源事务失败", zap.Error(err), zap.String("name", house.Name))
		return err
	}

	s.logger.Info("房源创建成功", zap.Uint64("houseID", house.ID), zap.String("humanCode", house.HumanCode))
	s.afterWrite(ctx, producer.HouseCreated, house.ID, house.HumanCode)
	return nil
}

// UpdateHouse 更新房源：先检查 ID，再校验；事务内更新标量列并整体替换关联。
// humanCode 永不修改。
func (s *houseService) UpdateHouse(ctx context.Context, req *dto.HouseRequest) error {
	if req.ID == nil || *req.ID == 0 {
		return myErrors.ErrMissingID
	}
	house, err := buildHouseEntity(req)
	if err != nil {
		return err
	}
	house.ID = *req.ID
	phoneIDs, messengerIDs := uniqueIDs(req.Phones), uniqueIDs(req.Messengers)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.houseRepo.UpdateHouseScalars(ctx, tx, house); err != nil {
			return err
		}
		return s.linkRepo.ReplaceAssociations(ctx, tx, house.ID, phoneIDs, messengerIDs)
	})
	if err != nil {
		s.logger.Error("更新房源事务失败", zap.Error(err), zap.Uint64("houseID", house.ID))
		return err
	}

	s.logger.Info("房源更新成功", zap.Uint64("houseID", house.ID))
	s.afterWrite(ctx, producer.HouseUpdated, house.ID, "")
	return nil
}

// DeleteHouse 物理删除房源。isArchive 不参与删除流程。
func (s *houseService) DeleteHouse(ctx context.Context, id uint64) error {
	if id == 0 {
		return myErrors.ErrMissingID
	}
	if err := s.houseRepo.DeleteHouse(ctx, id); err != nil {
		s.logger.Error("删除房源失败", zap.Error(err), zap.Uint64("houseID", id))
		return err
	}

	s.logger.Info("房源删除成功", zap.Uint64("houseID", id))
	s.afterWrite(ctx, producer.HouseDeleted, id, "")
	return nil
}

func (s *houseService) GetHouses(ctx context.Context, withLinks bool) []*vo.HouseVO {
	path := constant.AdminHousesPath
	if withLinks {
		path = constant.AdminHouseLinksPath
	}

	var cached []*vo.HouseVO
	if s.cache.load(ctx, path, &cached) {
		return cached
	}

	houses, err := s.houseRepo.ListHouses(ctx, mysql.HouseListOptions{WithLinks: withLinks})
	if err != nil {
		s.logger.Error("查询房源列表失败", zap.Error(err), zap.Bool("withLinks", withLinks))
		return nil
	}
	result := vo.NewHouseVOs(houses)
	s.cache.store(ctx, path, result)
	return result
}

func (s *houseService) GetHouse(ctx context.Context, id uint64) *vo.HouseVO {
	if id == 0 {
		return nil
	}
	house, err := s.houseRepo.GetHouseByID(ctx, id, false)
	if err != nil {
		s.logger.Warn("查询房源失败", zap.Error(err), zap.Uint64("houseID", id))
		return nil
	}
	return vo.NewHouseVO(house)
}

// GetDefaultSelection 返回 isDefault 的电话和即时通讯 ID，用于预填新建表单
func (s *houseService) GetDefaultSelection(ctx context.Context) *vo.DefaultSelectionVO {
	phones, err := s.phoneRepo.List(ctx)
	if err != nil {
		s.logger.Error("查询默认电话失败", zap.Error(err))
		return nil
	}
	messengers, err := s.messengerRepo.List(ctx)
	if err != nil {
		s.logger.Error("查询默认即时通讯失败", zap.Error(err))
		return nil
	}

	out := &vo.DefaultSelectionVO{Phones: []uint64{}, Messengers: []uint64{}}
	for _, p := range phones {
		if p.IsDefault {
			out.Phones = append(out.Phones, p.ID)
		}
	}
	for _, m := range messengers {
		if m.IsDefault {
			out.Messengers = append(out.Messengers, m.ID)
		}
	}
	return out
}

func (s *houseService) CreateHousePhone(ctx context.Context, req *dto.CreateHousePhoneRequest) error {
	if req.HouseID == 0 {
		return myErrors.NewFieldError("houseId", "Указатель объекта обязателен")
	}
	if req.PhoneID == 0 {
		return myErrors.NewFieldError("phoneId", "Указатель телефона обязателен")
	}

	link := &entities.HousePhone{HouseID: req.HouseID, PhoneID: req.PhoneID}
	if err := s.linkRepo.CreateHousePhone(ctx, link); err != nil {
		s.logger.Error("创建房源电话关联失败", zap.Error(err),
			zap.Uint64("houseID", req.HouseID), zap.Uint64("phoneID", req.PhoneID))
		return err
	}
	s.cache.invalidate(ctx, constant.AdminHouseLinksPath)
	return nil
}

func (s *houseService) GetHousePhones(ctx context.Context) []*vo.HousePhoneVO {
	links, err := s.linkRepo.ListHousePhones(ctx)
	if err != nil {
		s.logger.Error("查询房源电话关联失败", zap.Error(err))
		return nil
	}
	out := make([]*vo.HousePhoneVO, 0, len(links))
	for _, l := range links {
		out = append(out, vo.NewHousePhoneVO(l))
	}
	return out
}

// afterWrite 事务提交后的副作用：同步失效缓存，异步发布事件。两者失败都不影响写结果。
func (s *houseService) afterWrite(ctx context.Context, action producer.HouseAction, houseID uint64, humanCode string) {
	s.cache.invalidate(ctx, constant.HouseListingPaths...)

	if s.publisher == nil {
		return
	}
	s.publishing.Add(1)
	go func() {
		defer s.publishing.Done()
		sendCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.publisher.SendHouseChangedEvent(sendCtx, action, houseID, humanCode); err != nil {
			s.logger.Error(fmt.Sprintf("发布房源 %s 事件失败", action), zap.Error(err), zap.Uint64("houseID", houseID))
		}
	}()
}

func (s *houseService) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.publishing.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Xushengqwer/house_service/constant"
	"github.com/Xushengqwer/house_service/models/entities"
	"github.com/Xushengqwer/house_service/models/vo"
	"github.com/Xushengqwer/house_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/house_service/repo/redis"
)

// CatalogService 公共目录：只暴露上架 (isActive) 的房源
type CatalogService interface {
	// GetPublicListing 上架房源 + 全部区域，优先读缓存；失败返回 nil
	GetPublicListing(ctx context.Context) *vo.PublicListingVO
	// GetPublicHouse 单个上架房源详情（含联系方式）；不存在或已下架返回 nil
	GetPublicHouse(ctx context.Context, id uint64) *vo.HouseVO
	// WarmPublicListing 直接回源数据库并重建公共目录缓存，供定时任务和消费者调用
	WarmPublicListing(ctx context.Context) error
}

type catalogService struct {
	houseRepo    mysql.HouseRepository
	districtRepo mysql.DictionaryRepository[entities.District]
	cache        listingCache
	logger       *zap.Logger
}

func NewCatalogService(
	houseRepo mysql.HouseRepository,
	districtRepo mysql.DictionaryRepository[entities.District],
	cache redisrepo.ListingCache,
	logger *zap.Logger,
) CatalogService {
	return &catalogService{
		houseRepo:    houseRepo,
		districtRepo: districtRepo,
		cache:        newListingCache(cache, logger),
		logger:       logger,
	}
}

func (s *catalogService) GetPublicListing(ctx context.Context) *vo.PublicListingVO {
	var cached vo.PublicListingVO
	if s.cache.load(ctx, constant.PublicHousesPath, &cached) {
		return &cached
	}

	listing, err := s.loadPublicListing(ctx)
	if err != nil {
		s.logger.Error("查询公共目录失败", zap.Error(err))
		return nil
	}
	s.cache.store(ctx, constant.PublicHousesPath, listing)
	return listing
}

func (s *catalogService) GetPublicHouse(ctx context.Context, id uint64) *vo.HouseVO {
	if id == 0 {
		return nil
	}
	house, err := s.houseRepo.GetHouseByID(ctx, id, true)
	if err != nil {
		s.logger.Debug("公共目录查询房源未命中", zap.Uint64("houseID", id), zap.Error(err))
		return nil
	}
	return vo.NewHouseVO(house)
}

func (s *catalogService) WarmPublicListing(ctx context.Context) error {
	listing, err := s.loadPublicListing(ctx)
	if err != nil {
		return err
	}
	if s.cache.cache == nil {
		return nil
	}
	if err := s.cache.cache.SetListing(ctx, constant.PublicHousesPath, listing); err != nil {
		return fmt.Errorf("写入公共目录缓存失败: %w", err)
	}
	s.logger.Info("公共目录缓存已预热", zap.Int("houses", len(listing.Houses)), zap.Int("districts", len(listing.Districts)))
	return nil
}

func (s *catalogService) loadPublicListing(ctx context.Context) (*vo.PublicListingVO, error) {
	houses, err := s.houseRepo.ListHouses(ctx, mysql.HouseListOptions{OnlyActive: true})
	if err != nil {
		return nil, err
	}
	districts, err := s.districtRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &vo.PublicListingVO{
		Houses:    vo.NewHouseVOs(houses),
		Districts: make([]*vo.DistrictVO, 0, len(districts)),
	}
	for _, d := range districts {
		out.Districts = append(out.Districts, vo.NewDistrictVO(d))
	}
	return out, nil
}

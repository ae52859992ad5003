package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Xushengqwer/house_service/constant"
	"github.com/Xushengqwer/house_service/models/dto"
	"github.com/Xushengqwer/house_service/models/entities"
	"github.com/Xushengqwer/house_service/models/vo"
	"github.com/Xushengqwer/house_service/myErrors"
	"github.com/Xushengqwer/house_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/house_service/repo/redis"
)

// DistrictService 区域字典。区域同时出现在公共目录的筛选项中，写操作会一并失效公共目录缓存。
type DistrictService interface {
	ListDistricts(ctx context.Context) []*vo.DistrictVO
	CreateDistrict(ctx context.Context, req *dto.DistrictRequest) error
	UpdateDistrict(ctx context.Context, req *dto.DistrictRequest) error
	DeleteDistrict(ctx context.Context, id uint64) error
}

type districtService struct {
	core dictionaryCore[entities.District, vo.DistrictVO]
}

func NewDistrictService(repo mysql.DictionaryRepository[entities.District], cache redisrepo.ListingCache, logger *zap.Logger) DistrictService {
	return &districtService{
		core: newDictionaryCore(repo, cache, logger, vo.NewDistrictVO, constant.AdminDistrictsPath, constant.PublicHousesPath),
	}
}

func (s *districtService) ListDistricts(ctx context.Context) []*vo.DistrictVO {
	return s.core.list(ctx)
}

func (s *districtService) CreateDistrict(ctx context.Context, req *dto.DistrictRequest) error {
	if err := requireText(req.Title, "title", titleRequiredMessage); err != nil {
		return err
	}
	row := &entities.District{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		SortOrder:   constant.DistrictSortOrderLast,
	}
	if req.SortOrder != nil {
		row.SortOrder = *req.SortOrder
	}
	return s.core.create(ctx, row)
}

func (s *districtService) UpdateDistrict(ctx context.Context, req *dto.DistrictRequest) error {
	if req.ID == 0 {
		return myErrors.ErrMissingID
	}
	if err := requireText(req.Title, "title", titleRequiredMessage); err != nil {
		return err
	}
	fields := map[string]interface{}{
		"title":       strings.TrimSpace(req.Title),
		"description": req.Description,
	}
	// 未传排序值时保持原有位置
	if req.SortOrder != nil {
		fields["sort_order"] = *req.SortOrder
	}
	return s.core.update(ctx, req.ID, fields)
}

func (s *districtService) DeleteDistrict(ctx context.Context, id uint64) error {
	return s.core.delete(ctx, id)
}

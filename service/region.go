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

type RegionService interface {
	ListRegions(ctx context.Context) []*vo.RegionVO
	CreateRegion(ctx context.Context, req *dto.RegionRequest) error
	UpdateRegion(ctx context.Context, req *dto.RegionRequest) error
	DeleteRegion(ctx context.Context, id uint64) error
}

type regionService struct {
	core dictionaryCore[entities.Region, vo.RegionVO]
}

func NewRegionService(repo mysql.DictionaryRepository[entities.Region], cache redisrepo.ListingCache, logger *zap.Logger) RegionService {
	return &regionService{
		core: newDictionaryCore(repo, cache, logger, vo.NewRegionVO, constant.AdminRegionsPath),
	}
}

func (s *regionService) ListRegions(ctx context.Context) []*vo.RegionVO {
	return s.core.list(ctx)
}

func (s *regionService) CreateRegion(ctx context.Context, req *dto.RegionRequest) error {
	if err := requireText(req.Title, "title", titleRequiredMessage); err != nil {
		return err
	}
	return s.core.create(ctx, &entities.Region{Title: strings.TrimSpace(req.Title), Description: req.Description})
}

func (s *regionService) UpdateRegion(ctx context.Context, req *dto.RegionRequest) error {
	if req.ID == 0 {
		return myErrors.ErrMissingID
	}
	if err := requireText(req.Title, "title", titleRequiredMessage); err != nil {
		return err
	}
	return s.core.update(ctx, req.ID, map[string]interface{}{
		"title":       strings.TrimSpace(req.Title),
		"description": req.Description,
	})
}

func (s *regionService) DeleteRegion(ctx context.Context, id uint64) error {
	return s.core.delete(ctx, id)
}

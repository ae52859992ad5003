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

type DeveloperService interface {
	ListDevelopers(ctx context.Context) []*vo.DeveloperVO
	CreateDeveloper(ctx context.Context, req *dto.DeveloperRequest) error
	UpdateDeveloper(ctx context.Context, req *dto.DeveloperRequest) error
	DeleteDeveloper(ctx context.Context, id uint64) error
}

type developerService struct {
	core dictionaryCore[entities.Developer, vo.DeveloperVO]
}

func NewDeveloperService(repo mysql.DictionaryRepository[entities.Developer], cache redisrepo.ListingCache, logger *zap.Logger) DeveloperService {
	return &developerService{
		core: newDictionaryCore(repo, cache, logger, vo.NewDeveloperVO, constant.AdminDevelopersPath),
	}
}

func (s *developerService) ListDevelopers(ctx context.Context) []*vo.DeveloperVO {
	return s.core.list(ctx)
}

func (s *developerService) CreateDeveloper(ctx context.Context, req *dto.DeveloperRequest) error {
	if err := requireText(req.Title, "title", titleRequiredMessage); err != nil {
		return err
	}
	return s.core.create(ctx, &entities.Developer{Title: strings.TrimSpace(req.Title), Link: req.Link})
}

func (s *developerService) UpdateDeveloper(ctx context.Context, req *dto.DeveloperRequest) error {
	if req.ID == 0 {
		return myErrors.ErrMissingID
	}
	if err := requireText(req.Title, "title", titleRequiredMessage); err != nil {
		return err
	}
	return s.core.update(ctx, req.ID, map[string]interface{}{
		"title": strings.TrimSpace(req.Title),
		"link":  req.Link,
	})
}

func (s *developerService) DeleteDeveloper(ctx context.Context, id uint64) error {
	return s.core.delete(ctx, id)
}

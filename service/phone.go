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

const (
	phoneRequiredMessage = "Номер обязателен"
	labelRequiredMessage = "Описание обязательно"
)

// PhoneService 电话字典。房源列表（含关联详情）会展开电话信息，写操作一并失效。
type PhoneService interface {
	ListPhones(ctx context.Context) []*vo.PhoneVO
	CreatePhone(ctx context.Context, req *dto.PhoneRequest) error
	UpdatePhone(ctx context.Context, req *dto.PhoneRequest) error
	DeletePhone(ctx context.Context, id uint64) error
}

type phoneService struct {
	core dictionaryCore[entities.Phone, vo.PhoneVO]
}

func NewPhoneService(repo mysql.DictionaryRepository[entities.Phone], cache redisrepo.ListingCache, logger *zap.Logger) PhoneService {
	return &phoneService{
		core: newDictionaryCore(repo, cache, logger, vo.NewPhoneVO, constant.AdminPhonesPath, constant.AdminHouseLinksPath),
	}
}

func validatePhone(req *dto.PhoneRequest) error {
	if err := requireText(req.Phone, "phone", phoneRequiredMessage); err != nil {
		return err
	}
	return requireText(req.Label, "label", labelRequiredMessage)
}

func (s *phoneService) ListPhones(ctx context.Context) []*vo.PhoneVO {
	return s.core.list(ctx)
}

func (s *phoneService) CreatePhone(ctx context.Context, req *dto.PhoneRequest) error {
	if err := validatePhone(req); err != nil {
		return err
	}
	return s.core.create(ctx, &entities.Phone{
		Phone:     strings.TrimSpace(req.Phone),
		Label:     strings.TrimSpace(req.Label),
		IsDefault: req.IsDefault,
	})
}

func (s *phoneService) UpdatePhone(ctx context.Context, req *dto.PhoneRequest) error {
	if req.ID == 0 {
		return myErrors.ErrMissingID
	}
	if err := validatePhone(req); err != nil {
		return err
	}
	return s.core.update(ctx, req.ID, map[string]interface{}{
		"phone":      strings.TrimSpace(req.Phone),
		"label":      strings.TrimSpace(req.Label),
		"is_default": req.IsDefault,
	})
}

func (s *phoneService) DeletePhone(ctx context.Context, id uint64) error {
	return s.core.delete(ctx, id)
}

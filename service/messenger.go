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

const linkRequiredMessage = "Ссылка обязательна"

type MessengerService interface {
	ListMessengers(ctx context.Context) []*vo.MessengerVO
	CreateMessenger(ctx context.Context, req *dto.MessengerRequest) error
	UpdateMessenger(ctx context.Context, req *dto.MessengerRequest) error
	DeleteMessenger(ctx context.Context, id uint64) error
}

type messengerService struct {
	core dictionaryCore[entities.Messenger, vo.MessengerVO]
}

func NewMessengerService(repo mysql.DictionaryRepository[entities.Messenger], cache redisrepo.ListingCache, logger *zap.Logger) MessengerService {
	return &messengerService{
		core: newDictionaryCore(repo, cache, logger, vo.NewMessengerVO, constant.AdminMessengersPath, constant.AdminHouseLinksPath),
	}
}

func validateMessenger(req *dto.MessengerRequest) error {
	if err := requireText(req.Link, "link", linkRequiredMessage); err != nil {
		return err
	}
	return requireText(req.Label, "label", labelRequiredMessage)
}

func (s *messengerService) ListMessengers(ctx context.Context) []*vo.MessengerVO {
	return s.core.list(ctx)
}

func (s *messengerService) CreateMessenger(ctx context.Context, req *dto.MessengerRequest) error {
	if err := validateMessenger(req); err != nil {
		return err
	}
	return s.core.create(ctx, &entities.Messenger{
		Link:      strings.TrimSpace(req.Link),
		Label:     strings.TrimSpace(req.Label),
		IsDefault: req.IsDefault,
	})
}

func (s *messengerService) UpdateMessenger(ctx context.Context, req *dto.MessengerRequest) error {
	if req.ID == 0 {
		return myErrors.ErrMissingID
	}
	if err := validateMessenger(req); err != nil {
		return err
	}
	return s.core.update(ctx, req.ID, map[string]interface{}{
		"link":       strings.TrimSpace(req.Link),
		"label":      strings.TrimSpace(req.Label),
		"is_default": req.IsDefault,
	})
}

func (s *messengerService) DeleteMessenger(ctx context.Context, id uint64) error {
	return s.core.delete(ctx, id)
}

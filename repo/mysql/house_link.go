package mysql

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/house_service/models/entities"
)

// HouseLinkRepository 管理房源与电话 / 即时通讯的关联行 (house_phones / house_messengers)。
type HouseLinkRepository interface {
	// InsertLinks 为房源批量插入关联行。
	// - 重复的 (house_id, phone_id) 组合被静默忽略，不报错。
	// - 任一列表为空时跳过对应的表。
	InsertLinks(ctx context.Context, db *gorm.DB, houseID uint64, phoneIDs, messengerIDs []uint64) error

	// ReplaceAssociations 用新选择整体替换房源的关联：
	// 先无条件删除该房源的全部关联行（电话和即时通讯），再插入新选择。
	// 不做差异比较，必须在事务内调用。
	ReplaceAssociations(ctx context.Context, db *gorm.DB, houseID uint64, phoneIDs, messengerIDs []uint64) error

	// CreateHousePhone 单独插入一条房源-电话关联，重复时返回数据库错误
	CreateHousePhone(ctx context.Context, link *entities.HousePhone) error

	// ListHousePhones 按创建时间升序返回全部房源-电话关联
	ListHousePhones(ctx context.Context) ([]*entities.HousePhone, error)
}

type houseLinkRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewHouseLinkRepository(db *gorm.DB, logger *zap.Logger) HouseLinkRepository {
	return &houseLinkRepository{db: db, logger: logger}
}

func (r *houseLinkRepository) InsertLinks(ctx context.Context, db *gorm.DB, houseID uint64, phoneIDs, messengerIDs []uint64) error {
	if len(phoneIDs) > 0 {
		rows := make([]*entities.HousePhone, 0, len(phoneIDs))
		for _, id := range phoneIDs {
			rows = append(rows, &entities.HousePhone{HouseID: houseID, PhoneID: id})
		}
		if err := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
			r.logger.Error("插入房源电话关联失败", zap.Uint64("houseID", houseID), zap.Uint64s("phoneIDs", phoneIDs), zap.Error(err))
			return err
		}
	}

	if len(messengerIDs) > 0 {
		rows := make([]*entities.HouseMessenger, 0, len(messengerIDs))
		for _, id := range messengerIDs {
			rows = append(rows, &entities.HouseMessenger{HouseID: houseID, MessengerID: id})
		}
		if err := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
			r.logger.Error("插入房源即时通讯关联失败", zap.Uint64("houseID", houseID), zap.Uint64s("messengerIDs", messengerIDs), zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *houseLinkRepository) ReplaceAssociations(ctx context.Context, db *gorm.DB, houseID uint64, phoneIDs, messengerIDs []uint64) error {
	// 1. 删除全部旧关联
	if err := db.WithContext(ctx).Where("house_id = ?", houseID).Delete(&entities.HousePhone{}).Error; err != nil {
		r.logger.Error("删除房源电话关联失败", zap.Uint64("houseID", houseID), zap.Error(err))
		return err
	}
	if err := db.WithContext(ctx).Where("house_id = ?", houseID).Delete(&entities.HouseMessenger{}).Error; err != nil {
		r.logger.Error("删除房源即时通讯关联失败", zap.Uint64("houseID", houseID), zap.Error(err))
		return err
	}

	// 2. 插入新选择
	if err := r.InsertLinks(ctx, db, houseID, phoneIDs, messengerIDs); err != nil {
		return err
	}

	r.logger.Debug("房源关联已替换",
		zap.Uint64("houseID", houseID),
		zap.Int("phones", len(phoneIDs)),
		zap.Int("messengers", len(messengerIDs)))
	return nil
}

func (r *houseLinkRepository) CreateHousePhone(ctx context.Context, link *entities.HousePhone) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(link).Error
}

func (r *houseLinkRepository) ListHousePhones(ctx context.Context) ([]*entities.HousePhone, error) {
	var links []*entities.HousePhone
	if err := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("查询房源电话关联失败: %w", err)
	}
	return links, nil
}

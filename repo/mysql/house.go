package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/house_service/models/entities"
)

// HouseListOptions 房源列表查询选项
type HouseListOptions struct {
	WithLinks  bool // 预加载电话和即时通讯详情
	OnlyActive bool // 只返回上架 (is_active) 的房源，公共目录使用
}

// HouseRepository 定义了房源在 MySQL 中的持久化操作。
// 写方法接收 db 参数，以便在服务层开启的事务中执行。
type HouseRepository interface {
	// CreateHouse 插入房源行，不处理关联（关联行由 HouseLinkRepository 写入）。
	// - 调用方需要预先填好 HumanCode。
	CreateHouse(ctx context.Context, db *gorm.DB, house *entities.House) error

	// UpdateHouseScalars 按 ID 覆盖房源的全部标量列。
	// - id / human_code / created_at 永不更新。
	// - 零值（例如 false、空字符串）同样写入。
	// - 未命中任何行时返回 commonerrors.ErrRepoNotFound。
	UpdateHouseScalars(ctx context.Context, db *gorm.DB, house *entities.House) error

	// DeleteHouse 物理删除房源，关联行由外键级联删除。
	// - 未命中任何行时返回 commonerrors.ErrRepoNotFound。
	DeleteHouse(ctx context.Context, id uint64) error

	// GetHouseByID 查询单个房源，始终预加载关联详情。
	// - onlyActive 为 true 时下架房源视为不存在。
	// - 未找到返回 commonerrors.ErrRepoNotFound。
	GetHouseByID(ctx context.Context, id uint64, onlyActive bool) (*entities.House, error)

	// ListHouses 按创建时间升序返回房源列表
	ListHouses(ctx context.Context, opts HouseListOptions) ([]*entities.House, error)
}

type houseRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewHouseRepository(db *gorm.DB, logger *zap.Logger) HouseRepository {
	return &houseRepository{db: db, logger: logger}
}

func (r *houseRepository) CreateHouse(ctx context.Context, db *gorm.DB, house *entities.House) error {
	// 关联行在同一事务内单独写入，这里忽略 Phones / Messengers 等关联字段
	return db.WithContext(ctx).Omit(clause.Associations).Create(house).Error
}

func (r *houseRepository) UpdateHouseScalars(ctx context.Context, db *gorm.DB, house *entities.House) error {
	result := db.WithContext(ctx).
		Model(&entities.House{}).
		Where("id = ?", house.ID).
		Select("*").
		Omit("id", "human_code", "created_at", clause.Associations).
		Updates(house)
	if result.Error != nil {
		r.logger.Error("更新房源标量字段失败", zap.Error(result.Error), zap.Uint64("houseID", house.ID))
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新房源但未找到记录", zap.Uint64("houseID", house.ID))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *houseRepository) DeleteHouse(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&entities.House{}, id)
	if result.Error != nil {
		r.logger.Error("删除房源失败", zap.Error(result.Error), zap.Uint64("houseID", id))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *houseRepository) GetHouseByID(ctx context.Context, id uint64, onlyActive bool) (*entities.House, error) {
	var house entities.House
	query := r.withLinks(r.db.WithContext(ctx)).Where("id = ?", id)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.First(&house).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, fmt.Errorf("查询房源 %d 失败: %w", id, err)
	}
	return &house, nil
}

func (r *houseRepository) ListHouses(ctx context.Context, opts HouseListOptions) ([]*entities.House, error) {
	query := r.db.WithContext(ctx).Model(&entities.House{})
	if opts.WithLinks {
		query = r.withLinks(query)
	}
	if opts.OnlyActive {
		query = query.Where("is_active = ?", true)
	}

	var houses []*entities.House
	if err := query.Order("created_at ASC").Order("id ASC").Find(&houses).Error; err != nil {
		return nil, fmt.Errorf("查询房源列表失败: %w", err)
	}
	return houses, nil
}

// withLinks 预加载关联行及其指向的电话/即时通讯记录
func (r *houseRepository) withLinks(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Phones", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC").Order("id ASC") }).
		Preload("Phones.Phone").
		Preload("Messengers", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC").Order("id ASC") }).
		Preload("Messengers.Messenger")
}

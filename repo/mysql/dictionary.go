package mysql

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/house_service/models/entities"
)

// DictionaryEntity 字典实体的类型约束
type DictionaryEntity interface {
	entities.District | entities.Developer | entities.Phone | entities.Messenger | entities.Region
}

// DictionaryRepository 字典表的通用增删改查。
// 各字典表结构扁平、互不关联，写操作都是单行，无需事务。
type DictionaryRepository[T DictionaryEntity] interface {
	// List 按仓库配置的排序返回全部记录
	List(ctx context.Context) ([]*T, error)

	// Create 插入一条记录，成功后 row 中会回填 ID 和时间戳
	Create(ctx context.Context, row *T) error

	// Update 按 ID 更新给定的列，零值同样写入。
	// - 未命中任何行时返回 commonerrors.ErrRepoNotFound。
	Update(ctx context.Context, id uint64, fields map[string]interface{}) error

	// Delete 按 ID 物理删除，不检查是否仍被房源引用。
	// - 未命中任何行时返回 commonerrors.ErrRepoNotFound。
	Delete(ctx context.Context, id uint64) error
}

type dictionaryRepository[T DictionaryEntity] struct {
	db     *gorm.DB
	logger *zap.Logger
	table  string   // 仅用于日志
	orders []string // List 的排序子句，按顺序应用
}

func newDictionaryRepository[T DictionaryEntity](db *gorm.DB, logger *zap.Logger, table string, orders ...string) DictionaryRepository[T] {
	return &dictionaryRepository[T]{db: db, logger: logger, table: table, orders: orders}
}

// NewDistrictRepository 区域按 sort_order 优先排序，未设置排序值的新记录排在最后
func NewDistrictRepository(db *gorm.DB, logger *zap.Logger) DictionaryRepository[entities.District] {
	return newDictionaryRepository[entities.District](db, logger, "districts", "sort_order ASC", "created_at ASC", "id ASC")
}

func NewDeveloperRepository(db *gorm.DB, logger *zap.Logger) DictionaryRepository[entities.Developer] {
	return newDictionaryRepository[entities.Developer](db, logger, "developers", "created_at ASC", "id ASC")
}

func NewPhoneRepository(db *gorm.DB, logger *zap.Logger) DictionaryRepository[entities.Phone] {
	return newDictionaryRepository[entities.Phone](db, logger, "phones", "created_at ASC", "id ASC")
}

func NewMessengerRepository(db *gorm.DB, logger *zap.Logger) DictionaryRepository[entities.Messenger] {
	return newDictionaryRepository[entities.Messenger](db, logger, "messengers", "created_at ASC", "id ASC")
}

func NewRegionRepository(db *gorm.DB, logger *zap.Logger) DictionaryRepository[entities.Region] {
	return newDictionaryRepository[entities.Region](db, logger, "regions", "created_at ASC", "id ASC")
}

func (r *dictionaryRepository[T]) List(ctx context.Context) ([]*T, error) {
	query := r.db.WithContext(ctx).Model(new(T))
	for _, order := range r.orders {
		query = query.Order(order)
	}
	var rows []*T
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("查询 %s 列表失败: %w", r.table, err)
	}
	return rows, nil
}

func (r *dictionaryRepository[T]) Create(ctx context.Context, row *T) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		r.logger.Error("创建字典记录失败", zap.String("table", r.table), zap.Error(err))
		return err
	}
	return nil
}

func (r *dictionaryRepository[T]) Update(ctx context.Context, id uint64, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		r.logger.Error("更新字典记录失败", zap.String("table", r.table), zap.Uint64("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新字典记录但未找到", zap.String("table", r.table), zap.Uint64("id", id))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *dictionaryRepository[T]) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		r.logger.Error("删除字典记录失败", zap.String("table", r.table), zap.Uint64("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

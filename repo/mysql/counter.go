package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/house_service/models/entities"
)

// CounterRepository 命名计数器
type CounterRepository interface {
	// Next 将计数器原子加一并返回自增后的值；计数器行不存在时以 1 创建。
	// 必须传入事务：自增产生的行锁持有到事务结束，保证并发创建拿到不同的值，
	// 且事务回滚时计数器一并回滚。失败时原样返回驱动错误。
	Next(ctx context.Context, tx *gorm.DB, name string) (int64, error)
}

type counterRepository struct{}

func NewCounterRepository() CounterRepository {
	return &counterRepository{}
}

func (r *counterRepository) Next(ctx context.Context, tx *gorm.DB, name string) (int64, error) {
	// MySQL: INSERT ... ON DUPLICATE KEY UPDATE value = value + 1
	upsert := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": gorm.Expr("value + ?", 1)}),
	}).Create(&entities.Counter{Name: name, Value: 1})
	if upsert.Error != nil {
		return 0, upsert.Error
	}

	var counter entities.Counter
	if err := tx.WithContext(ctx).Where("name = ?", name).First(&counter).Error; err != nil {
		return 0, err
	}
	return counter.Value, nil
}

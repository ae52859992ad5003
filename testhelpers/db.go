// Package testhelpers 提供测试用的内存数据库与日志。
package testhelpers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Xushengqwer/house_service/dependencies"
)

// NewTestDB 打开一个独立的内存 SQLite 库并迁移全部表，外键开启。
// 单连接保证事务与普通查询看到同一个库。
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dependencies.AutoMigrate(db))
	return db
}

// NopLogger 测试中不输出日志
func NopLogger() *zap.Logger {
	return zap.NewNop()
}

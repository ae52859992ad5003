// dependencies/mysql.go
package dependencies

import (
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	appConfig "github.com/Xushengqwer/house_service/config"
	"github.com/Xushengqwer/house_service/models/entities"
)

const (
	mysqlConnectRetries       = 5
	mysqlConnectRetryInterval = 2 * time.Second
)

// InitMySQL 初始化 MySQL 连接，配置读写分离 (如果配置了从库)、连接池，并执行自动迁移
func InitMySQL(cfg *appConfig.HouseConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	mysqlCfg := cfg.MySQLConfig
	if mysqlCfg.Write.DSN == "" {
		return nil, fmt.Errorf("主数据库 DSN (mysqlConfig.write.dsn) 未配置")
	}

	gormConfig := &gorm.Config{
		Logger: core.NewGormLogger(logger, cfg.GormLogConfig),
	}

	// 1. 主库（带重试，容器编排下 MySQL 往往比服务晚就绪）
	db, err := openWithRetry(mysqlCfg.Write.DSN, gormConfig, logger)
	if err != nil {
		return nil, err
	}

	// 2. 读写分离
	if err := registerReplicas(db, mysqlCfg, logger); err != nil {
		return nil, err
	}

	// 3. 连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("无法获取数据库对象: %w", err)
	}
	maxIdle, maxOpen, maxLife := mysqlCfg.PoolSettings()
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(maxLife) * time.Second)
	logger.Info("配置数据库连接池",
		zap.Int("最大空闲连接数", maxIdle),
		zap.Int("最大打开连接数", maxOpen),
		zap.Int("连接最大生命周期(秒)", maxLife),
	)
	if pingErr := sqlDB.Ping(); pingErr != nil {
		return nil, fmt.Errorf("配置连接池后 Ping 失败: %w", pingErr)
	}

	// 4. 自动迁移，默认发送到主库 (Source)
	logger.Info("开始执行数据库自动迁移...")
	if migrateErr := AutoMigrate(db); migrateErr != nil {
		logger.Error("数据库自动迁移失败", zap.Error(migrateErr))
		return nil, fmt.Errorf("数据库自动迁移失败: %w", migrateErr)
	}
	logger.Info("成功初始化 MySQL 连接 (包括读写分离和自动迁移)")
	return db, nil
}

func openWithRetry(dsn string, gormConfig *gorm.Config, logger *core.ZapLogger) (*gorm.DB, error) {
	var lastErr error
	logger.Info("开始连接主数据库...")
	for i := 0; i < mysqlConnectRetries; i++ {
		db, err := gorm.Open(mysql.Open(dsn), gormConfig)
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					logger.Info("成功连接到主数据库")
					return db, nil
				}
			} else {
				err = dbErr
			}
		}
		lastErr = err
		logger.Warn("无法连接到主数据库，尝试重试",
			zap.Int("retry", i+1), zap.Int("maxRetries", mysqlConnectRetries), zap.Error(err))
		if i < mysqlConnectRetries-1 {
			time.Sleep(mysqlConnectRetryInterval)
		}
	}
	logger.Error("无法连接到主数据库", zap.Error(lastErr))
	return nil, fmt.Errorf("无法连接到主数据库: %w", lastErr)
}

// registerReplicas 只有配置了有效从库时才启用 dbresolver，读请求按严格轮询分配。
// 事务内的读写始终走主库。
func registerReplicas(db *gorm.DB, mysqlCfg appConfig.MySQLConfig, logger *core.ZapLogger) error {
	replicas := make([]gorm.Dialector, 0, len(mysqlCfg.Read))
	for i, replicaCfg := range mysqlCfg.Read {
		if replicaCfg.DSN == "" {
			logger.Warn("发现空的从库 DSN 配置，已跳过", zap.Int("index", i))
			continue
		}
		replicas = append(replicas, mysql.Open(replicaCfg.DSN))
	}
	if len(replicas) == 0 {
		logger.Info("未配置有效的从数据库，不启用读写分离")
		return nil
	}

	err := db.Use(dbresolver.Register(dbresolver.Config{
		Sources:  []gorm.Dialector{mysql.Open(mysqlCfg.Write.DSN)},
		Replicas: replicas,
		Policy:   dbresolver.StrictRoundRobinPolicy(),
	}))
	if err != nil {
		return fmt.Errorf("配置 GORM 读写分离失败: %w", err)
	}
	logger.Info("成功配置 GORM 读写分离插件", zap.Int("从库数量", len(replicas)))
	return nil
}

// AutoMigrate 迁移房源服务的全部表。
// 字典表和房源表先于关联表创建，关联表上的外键 (ON DELETE CASCADE) 随之建立。
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Counter{},
		&entities.District{},
		&entities.Developer{},
		&entities.Phone{},
		&entities.Messenger{},
		&entities.Region{},
		&entities.House{},
		&entities.HousePhone{},
		&entities.HouseMessenger{},
	)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/house_service/config"
	"github.com/Xushengqwer/house_service/dependencies"
	"github.com/Xushengqwer/house_service/mq/producer"
	"github.com/Xushengqwer/house_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/house_service/repo/redis"
	"github.com/Xushengqwer/house_service/service"
)

func main() {
	// --- 0. 命令行参数 ---
	var numHouses int
	var configFile string
	var waitSeconds int
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numHouses, "n", 30, "要生成的房源数量 (默认: 30)")
	flag.IntVar(&waitSeconds, "wait", 3, "数据填充后等待异步 Kafka 事件发送完成的最长秒数 (默认: 3秒)")
	flag.Parse()

	if numHouses <= 0 {
		fmt.Println("错误: 生成的房源数量必须大于 0")
		os.Exit(1)
	}
	if waitSeconds < 0 {
		fmt.Println("错误: 等待秒数不能为负")
		os.Exit(1)
	}

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		absConfigFile = configFile
	}

	// --- 1. 配置 ---
	var cfg appConfig.HouseConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}

	// --- 2. 日志 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() { _ = logger.Logger().Sync() }()
	baseLogger := logger.Logger()

	// --- 3. MySQL ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}

	// --- 4. 可选依赖：Redis 用于写后失效，Kafka 用于通知在线实例刷新目录 ---
	var listingCache redisRepo.ListingCache
	if rdb, err := dependencies.InitRedis(&cfg.RedisConfig, logger); err != nil {
		logger.Warn("初始化 Redis 失败 (Seeder)，跳过缓存失效", zap.Error(err))
	} else {
		listingCache = redisRepo.NewListingCache(rdb, 0, baseLogger)
		defer rdb.Close()
	}

	var publisher producer.HouseEventPublisher
	if len(cfg.KafkaConfig.Brokers) > 0 && cfg.KafkaConfig.Topics.HouseChanged != "" {
		kafkaProducer := producer.NewKafkaProducer(cfg.KafkaConfig, baseLogger)
		publisher = kafkaProducer
		defer kafkaProducer.Close()
	}

	// --- 5. Repositories / Services ---
	phoneRepo := mysql.NewPhoneRepository(db, baseLogger)
	messengerRepo := mysql.NewMessengerRepository(db, baseLogger)
	services := seedServices{
		districts:  service.NewDistrictService(mysql.NewDistrictRepository(db, baseLogger), listingCache, baseLogger),
		developers: service.NewDeveloperService(mysql.NewDeveloperRepository(db, baseLogger), listingCache, baseLogger),
		phones:     service.NewPhoneService(phoneRepo, listingCache, baseLogger),
		messengers: service.NewMessengerService(messengerRepo, listingCache, baseLogger),
		houses: service.NewHouseService(
			db,
			mysql.NewHouseRepository(db, baseLogger),
			mysql.NewHouseLinkRepository(db, baseLogger),
			mysql.NewCounterRepository(),
			phoneRepo,
			messengerRepo,
			listingCache,
			publisher,
			baseLogger,
		),
	}

	// --- 6. 填充 ---
	ctx := context.Background()
	startTime := time.Now()
	if err := Seed(ctx, services, baseLogger, numHouses); err != nil {
		logger.Fatal("数据填充失败", zap.Error(err))
	}
	logger.Info("数据填充主要逻辑完成", zap.Duration("耗时", time.Since(startTime)))

	if publisher != nil {
		drainCtx, cancel := context.WithTimeout(ctx, time.Duration(waitSeconds)*time.Second)
		if err := services.houses.Drain(drainCtx); err != nil {
			logger.Warn(fmt.Sprintf("Seeder: %d 秒内仍有 Kafka 事件未发送完成", waitSeconds), zap.Error(err))
		}
		cancel()
	}
	fmt.Printf("数据填充完成！总耗时: %v\n", time.Since(startTime))
}

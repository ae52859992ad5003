package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/house_service/config"
	"github.com/Xushengqwer/house_service/constant"
	"github.com/Xushengqwer/house_service/controller"
	"github.com/Xushengqwer/house_service/dependencies"
	_ "github.com/Xushengqwer/house_service/docs" // swag 生成的文档
	"github.com/Xushengqwer/house_service/mq/consumer"
	"github.com/Xushengqwer/house_service/mq/producer"
	"github.com/Xushengqwer/house_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/house_service/repo/redis"
	"github.com/Xushengqwer/house_service/router"
	"github.com/Xushengqwer/house_service/service"
	"github.com/Xushengqwer/house_service/tasks"
)

// @title           House Service API
// @version         1.0
// @description     房源服务，提供房源与字典的后台管理、图片上传以及公共目录查询。
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8083
// @schemes http https
func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 配置
	var cfg appConfig.HouseConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 2. Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		logger.Info("正在同步日志...")
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	baseLogger := logger.Logger()
	logger.Info("Logger 初始化成功")

	// 3. 分布式追踪
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := sharedTracing.InitTracerProvider(
			constant.ServiceName,
			constant.ServiceVersion,
			cfg.TracerConfig,
		)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("正在关闭 TracerProvider...")
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
	}

	// --- 4. 核心依赖 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(dbErr))
	}
	logger.Info("MySQL 数据库连接成功")

	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(redisErr))
	}
	logger.Info("Redis 连接成功")

	cosClient, cosErr := dependencies.InitCOS(&cfg.COSConfig, logger)
	if cosErr != nil {
		logger.Fatal("初始化 COS 客户端失败", zap.Error(cosErr))
	}
	logger.Info("COS 客户端初始化成功")

	// 未配置 brokers 时 publisher 保持为 nil 接口，服务层据此跳过事件发布
	var publisher producer.HouseEventPublisher
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 && cfg.KafkaConfig.Topics.HouseChanged != "" {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, baseLogger)
		publisher = kafkaProducer
		logger.Info("Kafka 生产者已初始化", zap.String("topic", cfg.KafkaConfig.Topics.HouseChanged))
	} else {
		logger.Warn("未配置 Kafka brokers 或 houseChanged 主题，房源变更事件不会发布")
	}

	// --- 5. Repositories ---
	houseRepo := mysql.NewHouseRepository(db, baseLogger)
	houseLinkRepo := mysql.NewHouseLinkRepository(db, baseLogger)
	counterRepo := mysql.NewCounterRepository()
	districtRepo := mysql.NewDistrictRepository(db, baseLogger)
	developerRepo := mysql.NewDeveloperRepository(db, baseLogger)
	phoneRepo := mysql.NewPhoneRepository(db, baseLogger)
	messengerRepo := mysql.NewMessengerRepository(db, baseLogger)
	regionRepo := mysql.NewRegionRepository(db, baseLogger)

	listingTTL := time.Duration(cfg.ListingCacheConfig.TTLSeconds) * time.Second
	listingCache := redisrepo.NewListingCache(rdb, listingTTL, baseLogger)
	logger.Debug("Repositories 初始化完成")

	// --- 6. Services ---
	houseService := service.NewHouseService(db, houseRepo, houseLinkRepo, counterRepo, phoneRepo, messengerRepo, listingCache, publisher, baseLogger)
	catalogService := service.NewCatalogService(houseRepo, districtRepo, listingCache, baseLogger)
	districtService := service.NewDistrictService(districtRepo, listingCache, baseLogger)
	developerService := service.NewDeveloperService(developerRepo, listingCache, baseLogger)
	phoneService := service.NewPhoneService(phoneRepo, listingCache, baseLogger)
	messengerService := service.NewMessengerService(messengerRepo, listingCache, baseLogger)
	regionService := service.NewRegionService(regionRepo, listingCache, baseLogger)
	imageService := service.NewImageService(cosClient, baseLogger)
	logger.Debug("Services 初始化完成")

	// --- 7. Controllers ---
	houseController := controller.NewHouseController(houseService)
	dictionaryController := controller.NewDictionaryController(districtService, developerService, phoneService, messengerService, regionService)
	uploadController := controller.NewUploadController(imageService)
	catalogController := controller.NewCatalogController(catalogService)

	// --- 8. Kafka 消费者：收到房源变更后重建公共目录缓存 ---
	var houseConsumer *consumer.Consumer
	var consumerWg sync.WaitGroup
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	if topic := cfg.KafkaConfig.Topics.HouseChanged; len(cfg.KafkaConfig.Brokers) > 0 && topic != "" {
		groupID := cfg.KafkaConfig.ConsumerGroupID
		if groupID == "" {
			groupID = constant.ServiceName + "_group"
			logger.Warn("Kafka ConsumerGroupID 未配置，使用默认值", zap.String("groupID", groupID))
		}
		handler := consumer.NewListingRefreshHandler(catalogService, baseLogger)
		c, err := consumer.NewConsumer(&cfg.KafkaConfig, groupID, topic, handler, baseLogger)
		if err != nil {
			logger.Fatal("初始化房源变更消费者失败", zap.Error(err))
		}
		houseConsumer = c
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			houseConsumer.Start(consumerCtx)
		}()
		logger.Info("房源变更消费者已启动", zap.String("topic", topic))
	} else {
		logger.Warn("Kafka 未配置完整，跳过房源变更消费者")
	}

	// --- 9. 定时任务 ---
	warmTask, err := tasks.NewListingWarmTask(catalogService, cfg.ListingCacheConfig.WarmCronSpec, baseLogger)
	if err != nil {
		logger.Fatal("初始化公共目录预热任务失败", zap.Error(err))
	}

	// --- 10. HTTP ---
	ginRouter := router.SetupRouter(logger, &cfg, houseController, dictionaryController, uploadController, catalogController)
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}
	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
	}()

	// --- 11. 优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// a. HTTP，允许处理完当前请求
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	// b. 消费者
	consumerCancel()
	consumerWg.Wait()
	if houseConsumer != nil {
		if err := houseConsumer.Close(); err != nil {
			logger.Error("关闭 Kafka 消费者时出错", zap.Error(err))
		}
	}

	// c. 定时任务，等待正在执行的预热结束
	select {
	case <-warmTask.Stop().Done():
		logger.Info("公共目录预热任务已停止")
	case <-shutdownCtx.Done():
		logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
	}

	// d. 等待写操作触发的事件发布结束，再关闭生产者
	if err := houseService.Drain(shutdownCtx); err != nil {
		logger.Error("等待房源事件发布超时", zap.Error(err))
	}
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		}
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := rdb.Close(); err != nil {
		logger.Error("关闭 Redis 连接失败", zap.Error(err))
	}

	logger.Info("服务已成功关闭")
}

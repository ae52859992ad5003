package router

import (
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appConfig "github.com/Xushengqwer/house_service/config"
	"github.com/Xushengqwer/house_service/constant"
	"github.com/Xushengqwer/house_service/controller"
	"github.com/Xushengqwer/house_service/middleware"
)

// SetupRouter 配置 Gin 引擎、全局中间件和路由注册。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.HouseConfig,
	houseController *controller.HouseController,
	dictionaryController *controller.DictionaryController,
	uploadController *controller.UploadController,
	catalogController *controller.CatalogController,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	router := gin.New()

	// 1. OTel，最先注册以便后续中间件拿到 Span
	router.Use(otelgin.Middleware(constant.ServiceName))

	// 2. Panic Recovery
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))

	// 3. 访问日志
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}

	// 4. 超时控制，配置单位为秒
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))

	// 5. 网关透传的用户信息
	router.Use(commonMiddleware.UserContextMiddleware())

	logger.Debug("已注册全局中间件")

	v1 := router.Group("/api/v1/estate")

	// 公共目录
	catalogController.RegisterRoutes(v1)

	// 后台：要求已认证用户
	admin := v1.Group("/admin", middleware.AdminGuardMiddleware())
	houseController.RegisterRoutes(admin)
	dictionaryController.RegisterRoutes(admin)
	uploadController.RegisterRoutes(admin)
	logger.Info("所有控制器路由已注册到 /api/v1/estate 分组")

	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))
	logger.Info("Swagger UI endpoint registered at /swagger/*any")

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return router
}

package controller

import (
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/house_service/service"
)

// CatalogController 公共目录，无需认证
type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetPublicListing 公共目录
// @Summary      上架房源目录 (公开)
// @Description  返回全部上架房源及区域列表，用于前台筛选。优先读缓存，查询失败时 data 为 null。
// @Tags         catalog (公共目录)
// @Produce      json
// @Success      200 {object} vo.PublicListingResponseWrapper "目录"
// @Router       /api/v1/estate/houses [get]
func (ctrl *CatalogController) GetPublicListing(c *gin.Context) {
	response.RespondSuccess(c, ctrl.catalogService.GetPublicListing(c.Request.Context()), "目录获取成功")
}

// GetPublicHouse 公开房源详情
// @Summary      房源详情 (公开)
// @Description  只返回上架房源，已下架或不存在时 data 为 null。
// @Tags         catalog (公共目录)
// @Produce      json
// @Param        id path int true "房源 ID"
// @Success      200 {object} vo.HouseResponseWrapper "房源详情"
// @Router       /api/v1/estate/houses/{id} [get]
func (ctrl *CatalogController) GetPublicHouse(c *gin.Context) {
	response.RespondSuccess(c, ctrl.catalogService.GetPublicHouse(c.Request.Context(), pathID(c)), "房源详情获取成功")
}

func (ctrl *CatalogController) RegisterRoutes(group *gin.RouterGroup) {
	houses := group.Group("/houses")
	{
		houses.GET("", ctrl.GetPublicListing)
		houses.GET("/:id", ctrl.GetPublicHouse)
	}
}

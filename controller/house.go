package controller

import (
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/house_service/models/dto"
	"github.com/Xushengqwer/house_service/service"
)

// HouseController 后台房源管理
type HouseController struct {
	houseService service.HouseService
}

func NewHouseController(houseService service.HouseService) *HouseController {
	return &HouseController{houseService: houseService}
}

// GetHouses 获取全部房源
// @Summary      房源列表 (后台)
// @Description  返回全部房源（含未上架）。withLinks=true 时同时展开电话与即时通讯关联。查询失败时 data 为 null。
// @Tags         admin-houses (后台房源)
// @Produce      json
// @Param        withLinks query bool false "是否展开关联的电话与即时通讯"
// @Success      200 {object} vo.HouseListResponseWrapper "房源列表"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Router       /api/v1/estate/admin/houses [get]
func (ctrl *HouseController) GetHouses(c *gin.Context) {
	withLinks := c.Query("withLinks") == "true"
	houses := ctrl.houseService.GetHouses(c.Request.Context(), withLinks)
	response.RespondSuccess(c, houses, "房源列表获取成功")
}

// GetDefaultSelection 新建表单的默认勾选
// @Summary      默认联系方式
// @Description  返回标记为默认 (isDefault) 的电话与即时通讯 ID，用于预填新建房源表单。
// @Tags         admin-houses (后台房源)
// @Produce      json
// @Success      200 {object} vo.DefaultSelectionResponseWrapper "默认勾选"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Router       /api/v1/estate/admin/houses/defaults [get]
func (ctrl *HouseController) GetDefaultSelection(c *gin.Context) {
	response.RespondSuccess(c, ctrl.houseService.GetDefaultSelection(c.Request.Context()), "默认联系方式获取成功")
}

// GetHouse 获取单个房源
// @Summary      房源详情 (后台)
// @Description  按 ID 获取房源及其关联，不存在时 data 为 null。
// @Tags         admin-houses (后台房源)
// @Produce      json
// @Param        id path int true "房源 ID"
// @Success      200 {object} vo.HouseResponseWrapper "房源详情"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Router       /api/v1/estate/admin/houses/{id} [get]
func (ctrl *HouseController) GetHouse(c *gin.Context) {
	response.RespondSuccess(c, ctrl.houseService.GetHouse(c.Request.Context(), pathID(c)), "房源详情获取成功")
}

// CreateHouse 新建房源
// @Summary      新建房源
// @Description  按固定顺序校验必填字段，只返回第一个不合格字段。成功后分配自增的 humanCode，并写入选中的电话与即时通讯。
// @Tags         admin-houses (后台房源)
// @Accept       json
// @Produce      json
// @Param        request body dto.HouseRequest true "房源表单"
// @Success      200 {object} vo.ActionResultResponseWrapper "创建成功"
// @Failure      400 {object} vo.ActionResultResponseWrapper "校验失败，data.fieldName 指出字段"
// @Failure      500 {object} vo.BaseResponseWrapper "持久化失败"
// @Router       /api/v1/estate/admin/houses [post]
func (ctrl *HouseController) CreateHouse(c *gin.Context) {
	var req dto.HouseRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = nil
	respondWrite(c, ctrl.houseService.CreateHouse(c.Request.Context(), &req), "房源创建成功")
}

// UpdateHouse 更新房源
// @Summary      更新房源
// @Description  路径中的 ID 覆盖请求体。标量列整体更新，电话与即时通讯关联整体替换；humanCode 不变。
// @Tags         admin-houses (后台房源)
// @Accept       json
// @Produce      json
// @Param        id path int true "房源 ID"
// @Param        request body dto.HouseRequest true "房源表单"
// @Success      200 {object} vo.ActionResultResponseWrapper "更新成功"
// @Failure      400 {object} vo.ActionResultResponseWrapper "缺少 ID 或校验失败"
// @Failure      404 {object} vo.BaseResponseWrapper "房源不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "持久化失败"
// @Router       /api/v1/estate/admin/houses/{id} [put]
func (ctrl *HouseController) UpdateHouse(c *gin.Context) {
	var req dto.HouseRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = nil
	if id := pathID(c); id != 0 {
		req.ID = &id
	}
	respondWrite(c, ctrl.houseService.UpdateHouse(c.Request.Context(), &req), "房源更新成功")
}

// DeleteHouse 删除房源
// @Summary      删除房源
// @Description  物理删除房源，关联的电话与即时通讯行级联删除。
// @Tags         admin-houses (后台房源)
// @Produce      json
// @Param        id path int true "房源 ID"
// @Success      200 {object} vo.ActionResultResponseWrapper "删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "缺少 ID"
// @Failure      404 {object} vo.BaseResponseWrapper "房源不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "持久化失败"
// @Router       /api/v1/estate/admin/houses/{id} [delete]
func (ctrl *HouseController) DeleteHouse(c *gin.Context) {
	respondWrite(c, ctrl.houseService.DeleteHouse(c.Request.Context(), pathID(c)), "房源删除成功")
}

// GetHousePhones 全部房源-电话关联
// @Summary      房源电话关联列表
// @Tags         admin-houses (后台房源)
// @Produce      json
// @Success      200 {object} vo.HousePhoneListResponseWrapper "关联列表"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Router       /api/v1/estate/admin/house-phones [get]
func (ctrl *HouseController) GetHousePhones(c *gin.Context) {
	response.RespondSuccess(c, ctrl.houseService.GetHousePhones(c.Request.Context()), "房源电话关联获取成功")
}

// CreateHousePhone 单独添加一条房源-电话关联
// @Summary      新建房源电话关联
// @Tags         admin-houses (后台房源)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateHousePhoneRequest true "关联"
// @Success      200 {object} vo.ActionResultResponseWrapper "创建成功"
// @Failure      400 {object} vo.ActionResultResponseWrapper "houseId 或 phoneId 缺失"
// @Failure      500 {object} vo.BaseResponseWrapper "持久化失败"
// @Router       /api/v1/estate/admin/house-phones [post]
func (ctrl *HouseController) CreateHousePhone(c *gin.Context) {
	var req dto.CreateHousePhoneRequest
	if !bindJSON(c, &req) {
		return
	}
	respondWrite(c, ctrl.houseService.CreateHousePhone(c.Request.Context(), &req), "房源电话关联创建成功")
}

// RegisterRoutes 注册到 /admin 分组下
func (ctrl *HouseController) RegisterRoutes(admin *gin.RouterGroup) {
	houses := admin.Group("/houses")
	{
		houses.GET("", ctrl.GetHouses)
		houses.GET("/defaults", ctrl.GetDefaultSelection) // 静态段优先于 /:id 匹配
		houses.GET("/:id", ctrl.GetHouse)
		houses.POST("", ctrl.CreateHouse)
		houses.PUT("/:id", ctrl.UpdateHouse)
		houses.DELETE("/:id", ctrl.DeleteHouse)
	}

	housePhones := admin.Group("/house-phones")
	{
		housePhones.GET("", ctrl.GetHousePhones)
		housePhones.POST("", ctrl.CreateHousePhone)
	}
}

package controller

import (
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/house_service/models/dto"
	"github.com/Xushengqwer/house_service/service"
)

// DictionaryController 后台字典：区域、开发商、电话、即时通讯、地区。
// 五类字典路由形态一致：GET/POST /dict/{name}，PUT/DELETE /dict/{name}/:id。
type DictionaryController struct {
	districtService  service.DistrictService
	developerService service.DeveloperService
	phoneService     service.PhoneService
	messengerService service.MessengerService
	regionService    service.RegionService
}

func NewDictionaryController(
	districtService service.DistrictService,
	developerService service.DeveloperService,
	phoneService service.PhoneService,
	messengerService service.MessengerService,
	regionService service.RegionService,
) *DictionaryController {
	return &DictionaryController{
		districtService:  districtService,
		developerService: developerService,
		phoneService:     phoneService,
		messengerService: messengerService,
		regionService:    regionService,
	}
}

// --- 区域 ---

// ListDistricts 区域列表
// @Summary      区域列表
// @Description  按 sortOrder 升序；未设置 sortOrder 的区域排在最后。
// @Tags         admin-dict (后台字典)
// @Produce      json
// @Success      200 {object} vo.DistrictListResponseWrapper "区域列表"
// @Router       /api/v1/estate/admin/dict/districts [get]
func (ctrl *DictionaryController) ListDistricts(c *gin.Context) {
	response.RespondSuccess(c, ctrl.districtService.ListDistricts(c.Request.Context()), "区域列表获取成功")
}

// CreateDistrict 新建区域
// @Summary      新建区域
// @Tags         admin-dict (后台字典)
// @Accept       json
// @Produce      json
// @Param        request body dto.DistrictRequest true "区域"
// @Success      200 {object} vo.ActionResultResponseWrapper "创建成功"
// @Failure      400 {object} vo.ActionResultResponseWrapper "标题为空"
// @Failure      500 {object} vo.BaseResponseWrapper "持久化失败"
// @Router       /api/v1/estate/admin/dict/districts [post]
func (ctrl *DictionaryController) CreateDistrict(c *gin.Context) {
	var req dto.DistrictRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = 0
	respondWrite(c, ctrl.districtService.CreateDistrict(c.Request.Context(), &req), "区域创建成功")
}

// UpdateDistrict 更新区域
// @Summary      更新区域
// @Tags         admin-dict (后台字典)
// @Accept       json
// @Produce      json
// @Param        id path int true "区域 ID"
// @Param        request body dto.DistrictRequest true "区域"
// @Success      200 {object} vo.ActionResultResponseWrapper "更新成功"
// @Failure      400 {object} vo.ActionResultResponseWrapper "缺少 ID 或标题为空"
// @Failure      404 {object} vo.BaseResponseWrapper "区域不存在"
// @Router       /api/v1/estate/admin/dict/districts/{id} [put]
func (ctrl *DictionaryController) UpdateDistrict(c *gin.Context) {
	var req dto.DistrictRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = pathID(c)
	respondWrite(c, ctrl.districtService.UpdateDistrict(c.Request.Context(), &req), "区域更新成功")
}

// DeleteDistrict 删除区域
// @Summary      删除区域
// @Tags         admin-dict (后台字典)
// @Produce      json
// @Param        id path int true "区域 ID"
// @Success      200 {object} vo.ActionResultResponseWrapper "删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "缺少 ID"
// @Failure      404 {object} vo.BaseResponseWrapper "区域不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "仍被房源引用等持久化错误"
// @Router       /api/v1/estate/admin/dict/districts/{id} [delete]
func (ctrl *DictionaryController) DeleteDistrict(c *gin.Context) {
	respondWrite(c, ctrl.districtService.DeleteDistrict(c.Request.Context(), pathID(c)), "区域删除成功")
}

// --- 开发商 ---

// ListDevelopers 开发商列表
// @Summary      开发商列表
// @Tags         admin-dict (后台字典)
// @Produce      json
// @Success      200 {object} vo.DeveloperListResponseWrapper "开发商列表"
// @Router       /api/v1/estate/admin/dict/developers [get]
func (ctrl *DictionaryController) ListDevelopers(c *gin.Context) {
	response.RespondSuccess(c, ctrl.developerService.ListDevelopers(c.Request.Context()), "开发商列表获取成功")
}

// CreateDeveloper 新建开发商
// @Summary      新建开发商
// @Tags         admin-dict (后台字典)
// @Accept       json
// @Produce      json
// @Param        request body dto.DeveloperRequest true "开发商"
// @Success      200 {object} vo.ActionResultResponseWrapper "创建成功"
// @Failure      400 {object} vo.ActionResultResponseWrapper "标题为空"
// @Router       /api/v1/estate/admin/dict/developers [post]
func (ctrl *DictionaryController) CreateDeveloper(c *gin.Context) {
	var req dto.DeveloperRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = 0
	respondWrite(c, ctrl.developerService.CreateDeveloper(c.Request.Context(), &req), "开发商创建成功")
}

// UpdateDeveloper 更新开发商
// @Summary      更新开发商
// @Tags         admin-dict (后台字典)
// @Accept       json
// @Produce      json
// @Param        id path int true "开发商 ID"
// @Param        request body dto.DeveloperRequest true "开发商"
// @Success      200 {object} vo.ActionResultResponseWrapper "更新成功"
// @Failure      400 {object} vo.ActionResultResponseWrapper "缺少 ID 或标题为空"
// @Router       /api/v1/estate/admin/dict/developers/{id} [put]
func (ctrl *DictionaryController) UpdateDeveloper(c *gin.Context) {
	var req dto.DeveloperRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = pathID(c)
	respondWrite(c, ctrl.developerService.UpdateDeveloper(c.Request.Context(), &req), "开发商更新成功")
}

// DeleteDeveloper 删除开发商
// @Summary      删除开发商
// @Tags         admin-dict (后台字典)
// @Produce      json
// @Param        id path int true "开发商 ID"
// @Success      200 {object} vo.ActionResultResponseWrapper "删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "缺少 ID"
// @Router       /api/v1/estate/admin/dict/developers/{id} [delete]
func (ctrl *DictionaryController) DeleteDeveloper(c *gin.Context) {
	respondWrite(c, ctrl.developerService.DeleteDeveloper(c.Request.Context(), pathID(c)), "开发商删除成功")
}

// --- 电话 ---

// ListPhones 电话列表
// @Summary      电话列表
// @Tags         admin-dict (后台字典)
// @Produce      json
// @Success      200 {object} vo.PhoneListResponseWrapper "电话列表"
// @Router       /api/v1/estate/admin/dict/phones [get]
func (ctrl *DictionaryController) ListPhones(c *gin.Context) {
	response.RespondSuccess(c, ctrl.phoneService.ListPhones(c.Request.Context()), "电话列表获取成功")
}

// CreatePhone 新建电话
// @Summary      新建电话
// @Tags         admin-dict (后台字典)
// @Accept       json
// @Produce      json
// @Param        request body dto.PhoneRequest true "电话"
// @Success      200 {object} vo.ActionResultResponseWrapper "创建成功"
// @Failure      400 {object} vo.ActionResultResponseWrapper "号码或描述为空"
// @Router       /api/v1/estate/admin/dict/phones [post]
func (ctrl *DictionaryController) CreatePhone(c *gin.Context) {
	var req dto.PhoneRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = 0
	respondWrite(c, ctrl.phoneService.CreatePhone(c.Request.Context(), &req), "电话创建成功")
}

// UpdatePhone 更新电话
// @Summary      更新电话
// @Tags         admin-dict (后台字典)
// @Accept       json
// @Produce      json
// @Param        id path int true "电话 ID"
// @Param        request body dto.PhoneRequest true "电话"
// @Success      200 {object} vo.ActionResultResponseWrapper "更新成功"
// @Failure      400 {object} vo.ActionResultResponseWrapper "缺少 ID 或字段为空"
// @Router       /api/v1/estate/admin/dict/phones/{id} [put]
func (ctrl *DictionaryController) UpdatePhone(c *gin.Context) {
	var req dto.PhoneRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = pathID(c)
	respondWrite(c, ctrl.phoneService.UpdatePhone(c.Request.Context(), &req), "电话更新成功")
}

// DeletePhone 删除电话，引用它的房源关联级联删除
// @Summary      删除电话
// @Tags         admin-dict (后台字典)
// @Produce      json
// @Param        id path int true "电话 ID"
// @Success      200 {object} vo.ActionResultResponseWrapper "删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "缺少 ID"
// @Router       /api/v1/estate/admin/dict/phones/{id} [delete]
func (ctrl *DictionaryController) DeletePhone(c *gin.Context) {
	respondWrite(c, ctrl.phoneService.DeletePhone(c.Request.Context(), pathID(c)), "电话删除成功")
}

// --- 即时通讯 ---

// ListMessengers 即时通讯列表
// @Summary      即时通讯列表
// @Tags         admin-dict (后台字典)
// @Produce      json
// @Success      200 {object} vo.MessengerListResponseWrapper "即时通讯列表"
// @Router       /api/v1/estate/admin/dict/messengers [get]
func (ctrl *DictionaryController) ListMessengers(c *gin.Context) {
	response.RespondSuccess(c, ctrl.messengerService.ListMessengers(c.Request.Context()), "即时通讯列表获取成功")
}

// CreateMessenger 新建即时通讯
// @Summary      新建即时通讯
// @Tags         admin-dict (后台字典)
// @Accept       json
// @Produce      json
// @Param        request body dto.MessengerRequest true "即时通讯"
// @Success      200 {object} vo.ActionResultResponseWrapper "创建成功"
// @Failure      400 {object} vo.ActionResultResponseWrapper "链接或描述为空"
// @Router       /api/v1/estate/admin/dict/messengers [post]
func (ctrl *DictionaryController) CreateMessenger(c *gin.Context) {
	var req dto.MessengerRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = 0
	respondWrite(c, ctrl.messengerService.CreateMessenger(c.Request.Context(), &req), "即时通讯创建成功")
}

// UpdateMessenger 更新即时通讯
// @Summary      更新即时通讯
// @Tags         admin-dict (后台字典)
// @Accept       json
// @Produce      json
// @Param        id path int true "即时通讯 ID"
// @Param        request body dto.MessengerRequest true "即时通讯"
// @Success      200 {object} vo.ActionResultResponseWrapper "更新成功"
// @Failure      400 {object} vo.ActionResultResponseWrapper "缺少 ID 或字段为空"
// @Router       /api/v1/estate/admin/dict/messengers/{id} [put]
func (ctrl *DictionaryController) UpdateMessenger(c *gin.Context) {
	var req dto.MessengerRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = pathID(c)
	respondWrite(c, ctrl.messengerService.UpdateMessenger(c.Request.Context(), &req), "即时通讯更新成功")
}

// DeleteMessenger 删除即时通讯
// @Summary      删除即时通讯
// @Tags         admin-dict (后台字典)
// @Produce      json
// @Param        id path int true "即时通讯 ID"
// @Success      200 {object} vo.ActionResultResponseWrapper "删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "缺少 ID"
// @Router       /api/v1/estate/admin/dict/messengers/{id} [delete]
func (ctrl *DictionaryController) DeleteMessenger(c *gin.Context) {
	respondWrite(c, ctrl.messengerService.DeleteMessenger(c.Request.Context(), pathID(c)), "即时通讯删除成功")
}

// --- 地区 ---

// ListRegions 地区列表
// @Summary      地区列表
// @Tags         admin-dict (后台字典)
// @Produce      json
// @Success      200 {object} vo.RegionListResponseWrapper "地区列表"
// @Router       /api/v1/estate/admin/dict/regions [get]
func (ctrl *DictionaryController) ListRegions(c *gin.Context) {
	response.RespondSuccess(c, ctrl.regionService.ListRegions(c.Request.Context()), "地区列表获取成功")
}

// CreateRegion 新建地区
// @Summary      新建地区
// @Tags         admin-dict (后台字典)
// @Accept       json
// @Produce      json
// @Param        request body dto.RegionRequest true "地区"
// @Success      200 {object} vo.ActionResultResponseWrapper "创建成功"
// @Failure      400 {object} vo.ActionResultResponseWrapper "标题为空"
// @Router       /api/v1/estate/admin/dict/regions [post]
func (ctrl *DictionaryController) CreateRegion(c *gin.Context) {
	var req dto.RegionRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = 0
	respondWrite(c, ctrl.regionService.CreateRegion(c.Request.Context(), &req), "地区创建成功")
}

// UpdateRegion 更新地区
// @Summary      更新地区
// @Tags         admin-dict (后台字典)
// @Accept       json
// @Produce      json
// @Param        id path int true "地区 ID"
// @Param        request body dto.RegionRequest true "地区"
// @Success      200 {object} vo.ActionResultResponseWrapper "更新成功"
// @Failure      400 {object} vo.ActionResultResponseWrapper "缺少 ID 或标题为空"
// @Router       /api/v1/estate/admin/dict/regions/{id} [put]
func (ctrl *DictionaryController) UpdateRegion(c *gin.Context) {
	var req dto.RegionRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = pathID(c)
	respondWrite(c, ctrl.regionService.UpdateRegion(c.Request.Context(), &req), "地区更新成功")
}

// DeleteRegion 删除地区
// @Summary      删除地区
// @Tags         admin-dict (后台字典)
// @Produce      json
// @Param        id path int true "地区 ID"
// @Success      200 {object} vo.ActionResultResponseWrapper "删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "缺少 ID"
// @Router       /api/v1/estate/admin/dict/regions/{id} [delete]
func (ctrl *DictionaryController) DeleteRegion(c *gin.Context) {
	respondWrite(c, ctrl.regionService.DeleteRegion(c.Request.Context(), pathID(c)), "地区删除成功")
}

// RegisterRoutes 注册到 /admin 分组下
func (ctrl *DictionaryController) RegisterRoutes(admin *gin.RouterGroup) {
	dict := admin.Group("/dict")

	districts := dict.Group("/districts")
	{
		districts.GET("", ctrl.ListDistricts)
		districts.POST("", ctrl.CreateDistrict)
		districts.PUT("/:id", ctrl.UpdateDistrict)
		districts.DELETE("/:id", ctrl.DeleteDistrict)
	}

	developers := dict.Group("/developers")
	{
		developers.GET("", ctrl.ListDevelopers)
		developers.POST("", ctrl.CreateDeveloper)
		developers.PUT("/:id", ctrl.UpdateDeveloper)
		developers.DELETE("/:id", ctrl.DeleteDeveloper)
	}

	phones := dict.Group("/phones")
	{
		phones.GET("", ctrl.ListPhones)
		phones.POST("", ctrl.CreatePhone)
		phones.PUT("/:id", ctrl.UpdatePhone)
		phones.DELETE("/:id", ctrl.DeletePhone)
	}

	messengers := dict.Group("/messengers")
	{
		messengers.GET("", ctrl.ListMessengers)
		messengers.POST("", ctrl.CreateMessenger)
		messengers.PUT("/:id", ctrl.UpdateMessenger)
		messengers.DELETE("/:id", ctrl.DeleteMessenger)
	}

	regions := dict.Group("/regions")
	{
		regions.GET("", ctrl.ListRegions)
		regions.POST("", ctrl.CreateRegion)
		regions.PUT("/:id", ctrl.UpdateRegion)
		regions.DELETE("/:id", ctrl.DeleteRegion)
	}
}

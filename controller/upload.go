package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/house_service/constant"
	"github.com/Xushengqwer/house_service/models/dto"
	"github.com/Xushengqwer/house_service/myErrors"
	"github.com/Xushengqwer/house_service/service"
)

// UploadController 房源图片上传到 COS
type UploadController struct {
	imageService service.ImageService
}

func NewUploadController(imageService service.ImageService) *UploadController {
	return &UploadController{imageService: imageService}
}

// UploadImage 上传一张房源图片
// @Summary      上传房源图片
// @Description  kind 为 gallery (图库) 或 layout (户型图)。返回的 url 由前端写入房源表单的 gallery / layout 字段。
// @Tags         admin-uploads (后台上传)
// @Accept       multipart/form-data
// @Produce      json
// @Param        kind formData string true "图片类别" Enums(gallery, layout)
// @Param        file formData file true "图片文件 (最大 10MB)"
// @Success      200 {object} vo.UploadImageResponseWrapper "上传成功"
// @Failure      400 {object} vo.BaseResponseWrapper "类别或文件不合法"
// @Failure      500 {object} vo.BaseResponseWrapper "上传 COS 失败"
// @Router       /api/v1/estate/admin/uploads/images [post]
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(constant.MaxImageUploadBytes + 1<<20); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "解析表单数据失败: "+err.Error())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "缺少图片文件: "+err.Error())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无法读取图片文件: "+err.Error())
		return
	}
	defer file.Close()

	result, err := ctrl.imageService.UploadImage(
		c.Request.Context(),
		dto.ImageKind(c.PostForm("kind")),
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		respondImageError(c, err)
		return
	}
	response.RespondSuccess(c, result, "图片上传成功")
}

// DeleteImage 删除一张房源图片
// @Summary      删除房源图片
// @Description  只允许删除房源图片目录下的对象。
// @Tags         admin-uploads (后台上传)
// @Produce      json
// @Param        objectKey query string true "对象键"
// @Success      200 {object} vo.ActionResultResponseWrapper "删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "对象键不合法"
// @Failure      500 {object} vo.BaseResponseWrapper "删除 COS 对象失败"
// @Router       /api/v1/estate/admin/uploads/images [delete]
func (ctrl *UploadController) DeleteImage(c *gin.Context) {
	if err := ctrl.imageService.DeleteImage(c.Request.Context(), c.Query("objectKey")); err != nil {
		respondImageError(c, err)
		return
	}
	respondWrite(c, nil, "图片删除成功")
}

func respondImageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, myErrors.ErrInvalidImageKind),
		errors.Is(err, myErrors.ErrInvalidImageFile),
		errors.Is(err, myErrors.ErrInvalidObjectKey):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, err.Error())
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "图片存储失败: "+err.Error())
	}
}

func (ctrl *UploadController) RegisterRoutes(admin *gin.RouterGroup) {
	uploads := admin.Group("/uploads")
	{
		uploads.POST("/images", ctrl.UploadImage)
		uploads.DELETE("/images", ctrl.DeleteImage)
	}
}

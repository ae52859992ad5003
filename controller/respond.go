package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/house_service/models/vo"
	"github.com/Xushengqwer/house_service/myErrors"
)

// respondWrite 把写操作的 service 结果映射为 HTTP 响应。
// 失败时 data 同样是 ActionResultVO：error 为可直接展示的消息，
// 持久化失败时即驱动原始错误；校验失败时 fieldName 指出具体字段。
func respondWrite(c *gin.Context, err error, successMsg string) {
	if err == nil {
		response.RespondSuccess(c, vo.ActionResultVO{Success: true}, successMsg)
		return
	}

	if fieldErr, ok := myErrors.AsFieldError(err); ok {
		respondFailure(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, fieldErr.Message, fieldErr.FieldName)
		return
	}

	switch {
	case errors.Is(err, myErrors.ErrMissingID), errors.Is(err, myErrors.ErrInvalidEnumValue):
		respondFailure(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, err.Error(), "")
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		respondFailure(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, notFoundMessage, "")
	default:
		respondFailure(c, http.StatusInternalServerError, response.ErrCodeServerInternal, err.Error(), "")
	}
}

const notFoundMessage = "记录不存在"

func respondFailure(c *gin.Context, status int, code any, message, fieldName string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
		"data": vo.ActionResultVO{
			Error:     message,
			FieldName: fieldName,
		},
	})
}

// pathID 解析路径参数 :id，非法或为 0 时返回 0
func pathID(c *gin.Context) uint64 {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return false
	}
	return true
}

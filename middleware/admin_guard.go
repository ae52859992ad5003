package middleware

import (
	"net/http"

	"github.com/Xushengqwer/go-common/constants"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
)

// AdminGuardMiddleware 后台路由的准入检查。
// 认证由网关完成，网关透传的用户 ID 经 UserContextMiddleware 写入 gin.Context；
// 这里只确认该值存在且非空。
func AdminGuardMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDValue, exists := c.Get(string(constants.UserIDKey))
		if !exists {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取用户信息 (Context Key Not Found)")
			c.Abort()
			return
		}
		userID, ok := userIDValue.(string)
		if !ok || userID == "" {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取有效的用户 ID")
			c.Abort()
			return
		}
		c.Next()
	}
}

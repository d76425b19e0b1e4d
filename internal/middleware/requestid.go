package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求 ID 使用的 HTTP 头
const RequestIDHeader = "X-Request-ID"

// RequestID 为每个请求分配一个 UUID，写入上下文和响应头
// 客户端已经携带请求 ID 时沿用原值，便于跨服务追踪
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}

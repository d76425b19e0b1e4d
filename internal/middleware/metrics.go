package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shorturl-service/internal/metrics"
)

// Metrics 记录每个请求的计数和耗时
// endpoint 使用注册时的路由模板（如 /api/stats/:code），避免标签基数爆炸
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, endpoint,
		).Observe(time.Since(start).Seconds())
	}
}

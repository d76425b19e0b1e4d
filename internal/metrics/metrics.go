package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 使用 promauto 自动注册到默认 registry
var (
	// HTTPRequestsTotal 按方法、路由和状态码统计的请求总数
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP 请求总数",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTPRequestDuration 请求耗时直方图，用于计算 P50/P95/P99
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP 请求耗时（秒）",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	// URLsCreatedTotal 成功创建的短链接总数
	URLsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urls_created_total",
			Help: "成功创建的短链接总数",
		},
	)

	// RedirectsTotal 成功重定向的总次数
	RedirectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redirects_total",
			Help: "成功重定向的总次数",
		},
	)
)

// RecordURLCreated 记录一次短链接创建
func RecordURLCreated() {
	URLsCreatedTotal.Inc()
}

// RecordRedirect 记录一次成功重定向
func RecordRedirect() {
	RedirectsTotal.Inc()
}

package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shorturl-service/internal/metrics"
	"shorturl-service/internal/model"
	"shorturl-service/internal/shortcode"
	"shorturl-service/internal/store"
)

// ShortLinkHandler 处理器
type ShortLinkHandler struct {
	store      *store.URLStore
	codeLength int
}

// NewShortLinkHandler 创建处理器实例
func NewShortLinkHandler(urlStore *store.URLStore, codeLength int) *ShortLinkHandler {
	if codeLength <= 0 {
		codeLength = shortcode.DefaultLength
	}
	return &ShortLinkHandler{
		store:      urlStore,
		codeLength: codeLength,
	}
}

// CreateShortLinkRequest 创建短链接的请求体
// URL 使用指针以区分「字段缺失」和「空字符串」两种错误
type CreateShortLinkRequest struct {
	URL *string `json:"url" example:"https://github.com/gin-gonic/gin"`
}

// CreateShortLinkResponse 创建短链接的响应体
type CreateShortLinkResponse struct {
	ShortCode string `json:"short_code" example:"Ab3xYz"`
	ShortURL  string `json:"short_url" example:"http://localhost:8080/Ab3xYz"`
}

// StatsResponse 单个短码的统计数据
type StatsResponse struct {
	URL       string    `json:"url"`
	Clicks    int64     `json:"clicks"`
	CreatedAt time.Time `json:"created_at"`
}

// HealthCheck godoc
// @Summary 健康检查
// @Description 返回服务运行状态
// @Tags Health
// @Produce json
// @Success 200 {object} gin.H
// @Router / [get]
func (h *ShortLinkHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "URL Shortener API",
	})
}

// APIHealth godoc
// @Summary API 健康检查
// @Description 确认 API 层工作正常
// @Tags Health
// @Produce json
// @Success 200 {object} gin.H
// @Router /api/health [get]
func (h *ShortLinkHandler) APIHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "URL Shortener API is running",
	})
}

// CreateShortLink godoc
// @Summary 创建短链接
// @Description 为一个长 URL 创建一个新的 6 位短码
// @Tags ShortLink
// @Accept json
// @Produce json
// @Param url body CreateShortLinkRequest true "长链接 URL"
// @Success 201 {object} CreateShortLinkResponse "成功响应"
// @Failure 400 {object} gin.H "请求无效"
// @Failure 500 {object} gin.H "短码空间耗尽或内部错误"
// @Router /api/shorten [post]
func (h *ShortLinkHandler) CreateShortLink(c *gin.Context) {
	var req CreateShortLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}

	if !shortcode.IsValidURL(*req.URL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL format"})
		return
	}

	// 注意：快照在 Save 加锁之前获取，两个并发请求可能采样到同一个短码，
	// 后写入的会覆盖先写入的。这是一个已知且接受的极小概率冲突窗口。
	existing := h.store.Codes()
	code, err := shortcode.Generate(h.codeLength, existing)
	if err != nil {
		if errors.Is(err, shortcode.ErrGenerationExhausted) {
			zap.S().Warnf("短码生成失败，键空间已饱和: %v", err)
		} else {
			zap.S().Errorf("短码生成失败: %v", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.store.Save(code, *req.URL)
	metrics.RecordURLCreated()

	c.JSON(http.StatusCreated, CreateShortLinkResponse{
		ShortCode: code,
		ShortURL:  "http://" + c.Request.Host + "/" + code,
	})
}

// RedirectToOriginal godoc
// @Summary 短码重定向
// @Description 根据短码 302 跳转到原始 URL，并累加点击数
// @Tags ShortLink
// @Param code path string true "6 位短码"
// @Success 302 "跳转到原始 URL"
// @Failure 404 {object} gin.H "短码格式错误或不存在"
// @Router /{code} [get]
func (h *ShortLinkHandler) RedirectToOriginal(c *gin.Context) {
	code := c.Param("code")
	entry, ok := h.lookup(c, code)
	if !ok {
		return
	}

	// 点击计数在重定向之前同步完成，stats 查询立即可见
	h.store.IncrementClicks(code)
	metrics.RecordRedirect()

	c.Redirect(http.StatusFound, entry.OriginalURL)
}

// GetStats godoc
// @Summary 查询短码统计
// @Description 返回短码对应的原始 URL、点击数和创建时间
// @Tags ShortLink
// @Produce json
// @Param code path string true "6 位短码"
// @Success 200 {object} StatsResponse
// @Failure 404 {object} gin.H "短码格式错误或不存在"
// @Router /api/stats/{code} [get]
func (h *ShortLinkHandler) GetStats(c *gin.Context) {
	code := c.Param("code")
	entry, ok := h.lookup(c, code)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		URL:       entry.OriginalURL,
		Clicks:    entry.ClickCount,
		CreatedAt: entry.CreatedAt,
	})
}

// GetOverview godoc
// @Summary 全局统计
// @Description 返回短链接总数和累计点击数
// @Tags ShortLink
// @Produce json
// @Success 200 {object} gin.H
// @Router /api/stats [get]
func (h *ShortLinkHandler) GetOverview(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total_links":  h.store.Len(),
		"total_clicks": h.store.TotalClicks(),
	})
}

// lookup 校验短码格式并查询记录，失败时直接写出 404 响应
func (h *ShortLinkHandler) lookup(c *gin.Context, code string) (model.Entry, bool) {
	if !shortcode.IsValidShortCode(code) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid short code format"})
		return model.Entry{}, false
	}

	entry, ok := h.store.Get(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Short code not found"})
		return model.Entry{}, false
	}
	return entry, true
}

package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"shorturl-service/internal/config"
	"shorturl-service/internal/handler"
	"shorturl-service/internal/middleware"
	"shorturl-service/internal/store"
	"shorturl-service/pkg/logger"

	_ "shorturl-service/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title URL Shortener API
// @version 1.0
// @description 短链接服务：创建短码、302 跳转、点击统计
// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	cfg, cfgErr := config.Load("configs/config.yaml")
	if cfgErr != nil {
		cfg = config.Default()
	}

	logger.InitLogger(logger.Options{
		Filename:   cfg.Log.Filename,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer func() {
		if err := logger.Logger.Sync(); err != nil {
			fmt.Println("日志同步失败:", err)
		}
	}()
	sugaredLogger := zap.S()

	if cfgErr != nil {
		sugaredLogger.Warnf("配置加载失败，使用默认配置: %v", cfgErr)
	}

	// 唯一的内存存储实例，在进程启动时创建并注入到所有处理器
	urlStore := store.NewURLStore()
	sugaredLogger.Info("✅ 内存存储初始化成功")

	if cfg.App.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.GinZapRecovery(logger.Logger, true))
	router.Use(middleware.GinZapLogger(logger.Logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(cors.Default())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	urlHandler := handler.NewShortLinkHandler(urlStore, cfg.ShortCode.Length)
	registerRoutes(router, urlHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	sugaredLogger.Infof("🚀 服务启动成功, 访问 http://localhost:%d", cfg.Server.Port)
	sugaredLogger.Infof("📚 Swagger 文档地址: http://localhost:%d/swagger/index.html", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugaredLogger.Fatalf("服务启动失败: %v", err)
	}
}

func registerRoutes(router *gin.Engine, urlHandler *handler.ShortLinkHandler) {
	router.GET("/", urlHandler.HealthCheck)
	router.GET("/:code", urlHandler.RedirectToOriginal)

	api := router.Group("/api")
	{
		api.GET("/health", urlHandler.APIHealth)
		api.POST("/shorten", urlHandler.CreateShortLink)
		api.GET("/stats", urlHandler.GetOverview)
		api.GET("/stats/:code", urlHandler.GetStats)
	}
}

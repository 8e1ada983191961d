package router

import (
	"chatbridge/api"
	"chatbridge/config"
	_ "chatbridge/docs"
	"chatbridge/middleware"
	"chatbridge/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件（挂件需要跨域嵌入任意站点）
	r.Use(CORSMiddleware())

	// 挂件桥接入口（无需登录，按 api_key 校验）
	bridgeHandler := api.NewBridgeHandler(
		service.NewAccessService(),
		service.NewHistoryService(),
		service.NewUsageLogService(),
		service.NewCompletionService(&cfg.AI),
	)
	r.POST("/client-widget-bridge", bridgeHandler.Chat)

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组（后台管理）
	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			// 用户相关
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			// API密钥管理
			apiKeyHandler := api.NewApiKeyHandler()
			apiKeys := authorized.Group("/api-keys")
			{
				apiKeys.POST("", apiKeyHandler.Create)
				apiKeys.GET("", apiKeyHandler.List)
				apiKeys.GET("/:id", apiKeyHandler.Get)
				apiKeys.PUT("/:id", apiKeyHandler.Update)
				apiKeys.DELETE("/:id", apiKeyHandler.Delete)
			}

			// 订阅管理
			subscriptionHandler := api.NewSubscriptionHandler()
			subscriptions := authorized.Group("/subscriptions")
			{
				subscriptions.POST("", subscriptionHandler.Create)
				subscriptions.GET("", subscriptionHandler.List)
				subscriptions.POST("/:id/cancel", subscriptionHandler.Cancel)
			}

			// 使用日志
			usageHandler := api.NewUsageHandler(cfg)
			usageLogs := authorized.Group("/usage-logs")
			{
				usageLogs.GET("", usageHandler.List)
				usageLogs.GET("/export/csv", usageHandler.ExportCSV)
				usageLogs.GET("/export/excel", usageHandler.ExportExcel)
				usageLogs.POST("/send-report", usageHandler.SendReport)
			}

			// 会话查询
			sessionHandler := api.NewSessionHandler()
			sessions := authorized.Group("/sessions")
			{
				sessions.GET("", sessionHandler.List)
				sessions.GET("/:session_id", sessionHandler.Get)
				sessions.DELETE("/:session_id", sessionHandler.Delete)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

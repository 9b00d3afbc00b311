package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fridgechef/internal/api/handlers/health"
	recipeHandler "fridgechef/internal/api/handlers/recipe"
	"fridgechef/internal/api/middleware"
	"fridgechef/internal/core/ai/cache"
	aiservice "fridgechef/internal/core/ai/service"
	recipeService "fridgechef/internal/core/recipe"
	"fridgechef/internal/core/vision"
	"fridgechef/internal/infrastructure/config"
	"fridgechef/internal/infrastructure/storage"
	"fridgechef/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 單一請求的處理超時
	timeoutDuration = 120 * time.Second
	// 請求體大小限制 (10MB)
	maxBodySize = 10 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, cacheManager *cache.CacheManager, store storage.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("ai_enabled", cfg.OpenRouter.Enabled),
		zap.Bool("vision_enabled", cfg.Vision.Enabled),
		zap.String("model", cfg.OpenRouter.Model),
		zap.Duration("timeout", timeoutDuration),
	)

	// 初始化服務
	aiService, err := aiservice.NewService(cfg, cacheManager)
	if err != nil {
		common.LogError("Failed to initialize AI service", zap.Error(err))
		return nil, fmt.Errorf("failed to initialize AI service: %w", err)
	}

	recipeSvc := recipeService.NewService(cfg, aiService, store)
	visionSvc := vision.NewService(cfg, aiService)

	// 全局中間件：設置超時與服務
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("cache_manager", cacheManager)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		handler := recipeHandler.NewHandler(recipeSvc, visionSvc)

		recipeGroup := api.Group("/recipe")
		{
			// 使用食材生成食譜（AI 優先，規則引擎保底）
			recipeGroup.POST("/generate", handler.HandleGenerate)
		}

		ingredientGroup := api.Group("/ingredient")
		{
			// 從圖片辨識食材
			ingredientGroup.POST("/recognize", handler.HandleRecognizeIngredients)

			// 食材名稱補全
			ingredientGroup.GET("/suggest", handler.HandleSuggestIngredients)
		}

		nutritionGroup := api.Group("/nutrition")
		{
			nutritionGroup.POST("/analyze", handler.HandleAnalyzeNutrition)
		}

		recipesGroup := api.Group("/recipes")
		{
			recipesGroup.GET("", handler.HandleListRecipes)
			recipesGroup.GET("/history", handler.HandleHistory)
			recipesGroup.GET("/:id", handler.HandleGetRecipe)
			recipesGroup.DELETE("/:id", handler.HandleDeleteRecipe)
			recipesGroup.PUT("/:id/rating", handler.HandleRateRecipe)
		}

		preferencesGroup := api.Group("/preferences")
		{
			preferencesGroup.GET("", handler.HandleGetPreferences)
			preferencesGroup.PUT("", handler.HandleSavePreferences)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}

package recipe

import (
	"net/http"

	recipeService "fridgechef/internal/core/recipe"
	"fridgechef/internal/core/vision"
	"fridgechef/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler 食譜處理程序
type Handler struct {
	recipeService *recipeService.Service
	visionService *vision.Service
}

// NewHandler 創建食譜處理程序
func NewHandler(recipeSvc *recipeService.Service, visionSvc *vision.Service) *Handler {
	return &Handler{
		recipeService: recipeSvc,
		visionService: visionSvc,
	}
}

// GenerateResponse 食譜生成響應
// Notice 只在回退到規則引擎時出現
type GenerateResponse struct {
	Recipe *common.Recipe `json:"recipe"`
	Source string         `json:"source"`
	Notice string         `json:"notice,omitempty"`
}

// HandleGenerate 生成食譜
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := ensureRequestID(c)

	common.LogInfo("開始處理食譜生成請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req common.RecipeGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format: ingredients is required and must not be empty",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	recipe, notice, err := h.recipeService.GenerateRecipe(c.Request.Context(), &req, requestID)
	if err != nil {
		writeServiceError(c, err, requestID)
		return
	}

	common.LogInfo("食譜生成完成",
		zap.String("request_id", requestID),
		zap.String("recipe_id", recipe.ID),
		zap.String("source", recipe.Source),
	)

	c.JSON(http.StatusOK, GenerateResponse{
		Recipe: recipe,
		Source: recipe.Source,
		Notice: notice,
	})
}

// HandleListRecipes 列出所有食譜
func (h *Handler) HandleListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipes(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, ensureRequestID(c))
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes, "count": len(recipes)})
}

// HandleGetRecipe 取得單一食譜
func (h *Handler) HandleGetRecipe(c *gin.Context) {
	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err, ensureRequestID(c))
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// HandleDeleteRecipe 刪除食譜
func (h *Handler) HandleDeleteRecipe(c *gin.Context) {
	if err := h.recipeService.DeleteRecipe(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err, ensureRequestID(c))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// RatingRequest 評分請求
type RatingRequest struct {
	Rating int `json:"rating" binding:"required"`
}

// HandleRateRecipe 為食譜評分
func (h *Handler) HandleRateRecipe(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format: rating is required",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	recipe, err := h.recipeService.RateRecipe(c.Request.Context(), c.Param("id"), req.Rating)
	if err != nil {
		writeServiceError(c, err, requestID)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// HandleHistory 取得最近生成的食譜
func (h *Handler) HandleHistory(c *gin.Context) {
	recipes, err := h.recipeService.GetHistory(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, ensureRequestID(c))
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes, "count": len(recipes)})
}

// HandleGetPreferences 取得使用者偏好
func (h *Handler) HandleGetPreferences(c *gin.Context) {
	prefs, err := h.recipeService.GetPreferences(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, ensureRequestID(c))
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// HandleSavePreferences 儲存使用者偏好
func (h *Handler) HandleSavePreferences(c *gin.Context) {
	var prefs common.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	if err := h.recipeService.SavePreferences(c.Request.Context(), &prefs); err != nil {
		writeServiceError(c, err, ensureRequestID(c))
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// ensureRequestID 取出或補發請求 ID
func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// writeServiceError 將服務錯誤轉成 HTTP 回應
func writeServiceError(c *gin.Context, err error, requestID string) {
	if customErr, ok := err.(*common.CustomError); ok {
		c.JSON(customErr.Status, gin.H{
			"error": customErr.Message,
			"code":  customErr.Code,
		})
		return
	}

	common.LogError("服務處理失敗",
		zap.Error(err),
		zap.String("request_id", requestID),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
		"code":  common.ErrCodeInternalError,
	})
}

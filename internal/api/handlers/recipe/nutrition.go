package recipe

import (
	"net/http"

	"fridgechef/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// NutritionRequest 營養分析請求
type NutritionRequest struct {
	Ingredients []common.Ingredient `json:"ingredients" binding:"required,min=1"`
	Servings    int                 `json:"servings,omitempty"`
}

// NutritionResponse 營養分析響應
type NutritionResponse struct {
	Nutrition common.NutritionFacts  `json:"nutrition"`
	Health    *common.HealthAnalysis `json:"health"`
	Servings  int                    `json:"servings"`
}

// HandleAnalyzeNutrition 計算每份營養並給出健康分析
func (h *Handler) HandleAnalyzeNutrition(c *gin.Context) {
	var req NutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format: ingredients is required and must not be empty",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	if req.Servings < 1 {
		req.Servings = 1
	}

	nutrition, health := h.recipeService.AnalyzeNutrition(req.Ingredients, req.Servings)

	c.JSON(http.StatusOK, NutritionResponse{
		Nutrition: nutrition,
		Health:    health,
		Servings:  req.Servings,
	})
}

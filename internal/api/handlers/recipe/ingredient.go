package recipe

import (
	"net/http"

	"fridgechef/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecognizeRequest 食材影像辨識請求
type RecognizeRequest struct {
	Image string `json:"image" binding:"required"` // base64 編碼圖片
}

// RecognizeResponse 食材影像辨識響應
type RecognizeResponse struct {
	Ingredients []common.RecognizedIngredient `json:"ingredients"`
	Notice      string                        `json:"notice,omitempty"`
}

// HandleRecognizeIngredients 從圖片辨識食材
func (h *Handler) HandleRecognizeIngredients(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req RecognizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format: image is required",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	common.LogInfo("開始處理食材辨識請求",
		zap.String("request_id", requestID),
		zap.Int("image_length", len(req.Image)),
	)

	ingredients, notice, err := h.visionService.RecognizeIngredients(c.Request.Context(), req.Image)
	if err != nil {
		writeServiceError(c, err, requestID)
		return
	}

	c.JSON(http.StatusOK, RecognizeResponse{
		Ingredients: ingredients,
		Notice:      notice,
	})
}

// HandleSuggestIngredients 食材名稱補全
func (h *Handler) HandleSuggestIngredients(c *gin.Context) {
	query := c.Query("q")
	suggestions := h.recipeService.SuggestIngredients(query)
	c.JSON(http.StatusOK, gin.H{
		"query":       query,
		"suggestions": suggestions,
	})
}

package recipe

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	recipeService "fridgechef/internal/core/recipe"
	"fridgechef/internal/core/vision"
	"fridgechef/internal/infrastructure/config"
	"fridgechef/internal/infrastructure/storage"
	"fridgechef/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func newTestRouter() *gin.Engine {
	cfg := &config.Config{
		Image: config.ImageConfig{MaxSizeBytes: 1024 * 1024},
	}
	recipeSvc := recipeService.NewService(cfg, nil, storage.NewMemoryStore())
	visionSvc := vision.NewService(cfg, nil)
	handler := NewHandler(recipeSvc, visionSvc)

	router := gin.New()
	api := router.Group("/api/v1")
	api.POST("/recipe/generate", handler.HandleGenerate)
	api.POST("/ingredient/recognize", handler.HandleRecognizeIngredients)
	api.GET("/ingredient/suggest", handler.HandleSuggestIngredients)
	api.POST("/nutrition/analyze", handler.HandleAnalyzeNutrition)
	api.GET("/recipes", handler.HandleListRecipes)
	api.GET("/recipes/history", handler.HandleHistory)
	api.GET("/recipes/:id", handler.HandleGetRecipe)
	api.PUT("/recipes/:id/rating", handler.HandleRateRecipe)
	api.GET("/preferences", handler.HandleGetPreferences)
	api.PUT("/preferences", handler.HandleSavePreferences)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleGenerateRequiresIngredients(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipe/generate", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/recipe/generate", map[string]interface{}{
		"ingredients": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGenerateFallsBackToRuleEngine(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipe/generate", map[string]interface{}{
		"ingredients":  []string{"chicken", "tomato", "rice"},
		"meal_type":    "dinner",
		"cooking_time": 30,
		"servings":     2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Recipe)
	assert.Equal(t, "rule-based", resp.Source)
	assert.NotEmpty(t, resp.Notice)
	assert.NotEmpty(t, resp.Recipe.Steps)
	assert.NotEmpty(t, resp.Recipe.Tags)
	assert.Greater(t, resp.Recipe.Nutrition.Calories, 0.0)
}

func TestHandleGenerateThenRateAndFetch(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipe/generate", map[string]interface{}{
		"ingredients": []string{"egg", "spinach"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	id := resp.Recipe.ID

	w = doJSON(t, router, http.MethodPut, "/api/v1/recipes/"+id+"/rating", map[string]interface{}{
		"rating": 5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recipe common.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, 5, recipe.Rating)

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)
}

func TestHandleRateRecipeInvalidRating(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipe/generate", map[string]interface{}{
		"ingredients": []string{"tomato"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = doJSON(t, router, http.MethodPut, "/api/v1/recipes/"+resp.Recipe.ID+"/rating", map[string]interface{}{
		"rating": 9,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetRecipeNotFound(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/recipes/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleSuggestIngredients(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/ingredient/suggest?q=to", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tomato")

	// 輸入太短回傳空列表
	w = doJSON(t, router, http.MethodGet, "/api/v1/ingredient/suggest?q=x", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"suggestions":[]`)
}

func TestHandleAnalyzeNutrition(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/nutrition/analyze", map[string]interface{}{
		"ingredients": []map[string]string{
			{"name": "tomato", "quantity": "200", "unit": "g"},
		},
		"servings": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp NutritionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 36.0, resp.Nutrition.Calories)
	require.NotNil(t, resp.Health)
	assert.GreaterOrEqual(t, resp.Health.HealthScore, 0)

	// 空食材列表是硬性錯誤
	w = doJSON(t, router, http.MethodPost, "/api/v1/nutrition/analyze", map[string]interface{}{
		"ingredients": []map[string]string{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRecognizeRejectsInvalidImage(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/ingredient/recognize", map[string]interface{}{
		"image": "garbage",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlePreferencesRoundTrip(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPut, "/api/v1/preferences", map[string]interface{}{
		"allergies":   []string{"peanut"},
		"spice_level": "hot",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/preferences", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "peanut")
}

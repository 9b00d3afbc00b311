package recipe

import (
	"context"
	"fmt"
	"strings"
	"time"

	aiservice "fridgechef/internal/core/ai/service"
	"fridgechef/internal/infrastructure/config"
	"fridgechef/internal/infrastructure/storage"
	"fridgechef/internal/pkg/common"

	"go.uber.org/zap"
)

// FallbackNotice 回退到規則引擎時附加的使用者提示
const FallbackNotice = "AI service was unavailable, recipe was generated by the built-in recipe engine"

// Service 食譜服務
// 生成流程：AI 供應商優先，任何失敗回退到規則引擎，營養一律由解析器回填
type Service struct {
	config     *config.Config
	aiService  *aiservice.Service
	store      storage.Store
	classifier *Classifier
	composer   *Composer
	resolver   *NutritionResolver
	scorer     *HealthScorer
	suggester  *SuggestionEngine
}

// NewService 創建食譜服務
func NewService(cfg *config.Config, ai *aiservice.Service, store storage.Store) *Service {
	classifier := NewClassifier(nil)
	return &Service{
		config:     cfg,
		aiService:  ai,
		store:      store,
		classifier: classifier,
		composer:   NewComposer(classifier, NewQuantityEstimator(), nil),
		resolver:   NewNutritionResolver(nil, nil, classifier),
		scorer:     NewHealthScorer(),
		suggester:  NewSuggestionEngine(nil),
	}
}

// aiRecipePayload AI 回應的預期 JSON 結構
type aiRecipePayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Ingredients []struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Unit     string `json:"unit"`
	} `json:"ingredients"`
	Steps       []string `json:"steps"`
	CookingTime int      `json:"cooking_time"`
	Servings    int      `json:"servings"`
	Difficulty  string   `json:"difficulty"`
	Cuisine     string   `json:"cuisine"`
	Tags        []string `json:"tags"`
}

// GenerateRecipe 生成食譜
// 空食材列表是唯一的硬性錯誤；其餘失敗一律回退，notice 告知呼叫端
func (s *Service) GenerateRecipe(ctx context.Context, request *common.RecipeGenerationRequest, requestID string) (*common.Recipe, string, error) {
	if len(request.Ingredients) == 0 {
		return nil, "", common.ErrEmptyIngredients
	}

	if request.Servings < 1 {
		request.Servings = 2
	}
	if request.CookingTime < 1 {
		request.CookingTime = 30
	}

	recipe, notice := s.generateWithFallback(ctx, request, requestID)

	// 營養回填：AI 不負責營養，一律由解析器計算
	recipe.Nutrition = s.resolver.CalculateRecipeNutrition(recipe.Ingredients, recipe.Servings)

	// 持久化失敗不阻斷回應，食譜仍交付給呼叫端
	if err := s.store.SaveRecipe(ctx, recipe); err != nil {
		common.LogWarn("食譜儲存失敗",
			zap.String("recipe_id", recipe.ID),
			zap.Error(err),
		)
	} else if err := s.store.PushHistory(ctx, recipe.ID); err != nil {
		common.LogWarn("歷史紀錄更新失敗",
			zap.String("recipe_id", recipe.ID),
			zap.Error(err),
		)
	}

	return recipe, notice, nil
}

// generateWithFallback 先嘗試 AI，任何失敗落到規則引擎
func (s *Service) generateWithFallback(ctx context.Context, request *common.RecipeGenerationRequest, requestID string) (*common.Recipe, string) {
	if s.aiService != nil {
		recipe, err := s.generateWithAI(ctx, request)
		if err == nil {
			return recipe, ""
		}
		common.LogFallback(err.Error(), requestID)
	}

	return s.composer.Compose(request), FallbackNotice
}

// generateWithAI 呼叫 AI 供應商鏈並解析回應
func (s *Service) generateWithAI(ctx context.Context, request *common.RecipeGenerationRequest) (*common.Recipe, error) {
	prompt := buildRecipePrompt(request)

	resp, err := s.aiService.ProcessRequest(ctx, prompt, "")
	if err != nil {
		return nil, err
	}

	jsonContent := common.ExtractJSONObject(resp.Content)

	var payload aiRecipePayload
	if err := common.ParseJSON(jsonContent, &payload); err != nil {
		// 模型偶爾回傳未加引號的鍵，補上引號再試一次
		if retryErr := common.ParseJSON(common.QuoteJSONKeys(jsonContent), &payload); retryErr != nil {
			return nil, fmt.Errorf("failed to parse AI recipe: %w", err)
		}
	}

	if payload.Name == "" {
		return nil, fmt.Errorf("AI recipe name is empty")
	}
	if len(payload.Steps) == 0 {
		return nil, fmt.Errorf("AI recipe steps are empty")
	}
	if len(payload.Ingredients) == 0 {
		return nil, fmt.Errorf("AI recipe ingredients are empty")
	}

	ingredients := make([]common.Ingredient, 0, len(payload.Ingredients))
	for _, ing := range payload.Ingredients {
		if ing.Name == "" {
			continue
		}
		quantity, unit := ing.Quantity, ing.Unit
		if quantity == "" {
			quantity, unit = s.composer.estimator.Estimate(ing.Name, request.Servings)
		}
		ingredients = append(ingredients, common.Ingredient{
			Name:     ing.Name,
			Quantity: quantity,
			Unit:     unit,
			Category: string(s.classifier.Detect(common.NormalizeName(ing.Name))),
		})
	}
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("AI recipe has no usable ingredients")
	}

	// 缺漏欄位以請求值補齊
	cookingTime := payload.CookingTime
	if cookingTime < 1 {
		cookingTime = request.CookingTime
	}
	servings := payload.Servings
	if servings < 1 {
		servings = request.Servings
	}
	cuisine := payload.Cuisine
	if cuisine == "" {
		cuisine = "International"
	}
	tags := payload.Tags
	if len(tags) == 0 {
		tags = []string{"homemade"}
	}

	return &common.Recipe{
		ID:          common.GenerateUUID(),
		Name:        payload.Name,
		Description: payload.Description,
		Ingredients: ingredients,
		Steps:       payload.Steps,
		CookingTime: cookingTime,
		Servings:    servings,
		Difficulty:  normalizeDifficulty(payload.Difficulty),
		Cuisine:     cuisine,
		Tags:        tags,
		Source:      "ai",
		CreatedAt:   time.Now(),
	}, nil
}

// buildRecipePrompt 組裝 AI 食譜生成的提示詞
func buildRecipePrompt(request *common.RecipeGenerationRequest) string {
	var sb strings.Builder

	sb.WriteString("You are a professional chef. Create one recipe using the available ingredients below.\n\n")
	sb.WriteString("Available ingredients:\n")
	sb.WriteString(common.FormatIngredientNames(request.Ingredients))

	if len(request.ExcludeIngredients) > 0 {
		sb.WriteString("\nDo NOT use these ingredients:\n")
		sb.WriteString(common.FormatIngredientNames(request.ExcludeIngredients))
	}

	if request.Preferences != nil {
		prefs := request.Preferences
		if len(prefs.DietaryRestrictions) > 0 {
			sb.WriteString("\nDietary restrictions: " + common.StringSliceToString(prefs.DietaryRestrictions) + "\n")
		}
		if len(prefs.Allergies) > 0 {
			sb.WriteString("Allergies (must avoid): " + common.StringSliceToString(prefs.Allergies) + "\n")
		}
		if len(prefs.TastePreferences) > 0 {
			sb.WriteString("Taste preferences: " + common.StringSliceToString(prefs.TastePreferences) + "\n")
		}
		if len(prefs.CuisinePreferences) > 0 {
			sb.WriteString("Preferred cuisines: " + common.StringSliceToString(prefs.CuisinePreferences) + "\n")
		}
		if prefs.SpiceLevel != "" {
			sb.WriteString(fmt.Sprintf("Spice level: %s\n", prefs.SpiceLevel))
		}
	}

	if request.MealType != "" {
		sb.WriteString(fmt.Sprintf("\nMeal type: %s\n", request.MealType))
	}
	sb.WriteString(fmt.Sprintf("Cooking time limit: %d minutes\n", request.CookingTime))
	sb.WriteString(fmt.Sprintf("Servings: %d\n", request.Servings))

	sb.WriteString(`
Respond with ONLY a JSON object, no markdown fences and no commentary, in this exact shape:
{
  "name": "recipe name",
  "description": "one sentence description",
  "ingredients": [{"name": "ingredient", "quantity": "2", "unit": "cup"}],
  "steps": ["step 1", "step 2"],
  "cooking_time": 30,
  "servings": 2,
  "difficulty": "Easy",
  "cuisine": "Asian",
  "tags": ["dinner", "easy"]
}`)

	return sb.String()
}

// normalizeDifficulty 將 AI 回傳的難度字串正規化，無法辨識時取 Medium
func normalizeDifficulty(value string) common.Difficulty {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "easy":
		return common.DifficultyEasy
	case "hard":
		return common.DifficultyHard
	default:
		return common.DifficultyMedium
	}
}

// AnalyzeNutrition 計算每份營養並給出健康分析
func (s *Service) AnalyzeNutrition(ingredients []common.Ingredient, servings int) (common.NutritionFacts, *common.HealthAnalysis) {
	if servings < 1 {
		servings = 1
	}
	nutrition := s.resolver.CalculateRecipeNutrition(ingredients, servings)
	return nutrition, s.scorer.Analyze(nutrition)
}

// AnalyzeHealth 對既有的營養資訊做健康分析
func (s *Service) AnalyzeHealth(nutrition common.NutritionFacts) *common.HealthAnalysis {
	return s.scorer.Analyze(nutrition)
}

// SuggestIngredients 食材名稱補全
func (s *Service) SuggestIngredients(partialInput string) []string {
	return s.suggester.Suggest(partialInput)
}

// GetRecipe 取得單一食譜
func (s *Service) GetRecipe(ctx context.Context, id string) (*common.Recipe, error) {
	return s.store.GetRecipe(ctx, id)
}

// ListRecipes 列出所有食譜
func (s *Service) ListRecipes(ctx context.Context) ([]common.Recipe, error) {
	return s.store.ListRecipes(ctx)
}

// DeleteRecipe 刪除食譜
func (s *Service) DeleteRecipe(ctx context.Context, id string) error {
	return s.store.DeleteRecipe(ctx, id)
}

// RateRecipe 為食譜評分（1..5）
func (s *Service) RateRecipe(ctx context.Context, id string, rating int) (*common.Recipe, error) {
	return s.store.RateRecipe(ctx, id, rating)
}

// GetHistory 取得最近生成的食譜（最新在前，上限 50 筆）
func (s *Service) GetHistory(ctx context.Context) ([]common.Recipe, error) {
	ids, err := s.store.GetHistory(ctx)
	if err != nil {
		return nil, err
	}

	recipes := make([]common.Recipe, 0, len(ids))
	for _, id := range ids {
		recipe, err := s.store.GetRecipe(ctx, id)
		if err != nil {
			// 歷史裡的食譜可能已被刪除，跳過即可
			continue
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, nil
}

// GetPreferences 取得使用者偏好
func (s *Service) GetPreferences(ctx context.Context) (*common.UserPreferences, error) {
	return s.store.GetPreferences(ctx)
}

// SavePreferences 儲存使用者偏好
func (s *Service) SavePreferences(ctx context.Context, prefs *common.UserPreferences) error {
	return s.store.SavePreferences(ctx, prefs)
}

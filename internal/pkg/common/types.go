package common

import (
	"strings"
	"time"
)

// Category 食材分類
type Category string

const (
	CategoryProtein   Category = "protein"
	CategoryVegetable Category = "vegetable"
	CategoryGrain     Category = "grain"
	CategoryDairy     Category = "dairy"
	CategorySpice     Category = "spice"
	CategoryOther     Category = "other"
)

// MealType 餐別
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
	MealDessert   MealType = "dessert"
)

// Difficulty 食譜難度
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// SpiceLevel 辣度偏好
type SpiceLevel string

const (
	SpiceMild   SpiceLevel = "mild"
	SpiceMedium SpiceLevel = "medium"
	SpiceHot    SpiceLevel = "hot"
)

// Ingredient 食材
// Quantity 為不透明的數字文字（例如 "2"、"1.5"），Unit 為單位字串
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Category string `json:"category,omitempty"`
}

// NutritionFacts 營養資訊
// 解析表內部為每 100g，成品食譜為每份絕對值；所有欄位 >= 0
type NutritionFacts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

// Add 逐欄位相加
func (n NutritionFacts) Add(o NutritionFacts) NutritionFacts {
	return NutritionFacts{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
		Fiber:    n.Fiber + o.Fiber,
		Sugar:    n.Sugar + o.Sugar,
		Sodium:   n.Sodium + o.Sodium,
	}
}

// Scale 逐欄位乘上係數
func (n NutritionFacts) Scale(factor float64) NutritionFacts {
	return NutritionFacts{
		Calories: n.Calories * factor,
		Protein:  n.Protein * factor,
		Carbs:    n.Carbs * factor,
		Fat:      n.Fat * factor,
		Fiber:    n.Fiber * factor,
		Sugar:    n.Sugar * factor,
		Sodium:   n.Sodium * factor,
	}
}

// UserPreferences 使用者偏好
// 自由字串集合，核心不強制固定詞彙
type UserPreferences struct {
	DietaryRestrictions []string   `json:"dietary_restrictions"`
	Allergies           []string   `json:"allergies"`
	TastePreferences    []string   `json:"taste_preferences"`
	CuisinePreferences  []string   `json:"cuisine_preferences"`
	SpiceLevel          SpiceLevel `json:"spice_level"`
}

// RecipeGenerationRequest 食譜生成請求
type RecipeGenerationRequest struct {
	Ingredients        []string         `json:"ingredients" binding:"required,min=1"`
	ExcludeIngredients []string         `json:"exclude_ingredients,omitempty"`
	Preferences        *UserPreferences `json:"preferences,omitempty"`
	MealType           MealType         `json:"meal_type,omitempty"`
	CookingTime        int              `json:"cooking_time,omitempty"` // 分鐘
	Servings           int              `json:"servings,omitempty"`
}

// Recipe 食譜
// 由規則引擎或 AI 生成；建立後只透過評分與營養回填修改
type Recipe struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Ingredients []Ingredient   `json:"ingredients"`
	Steps       []string       `json:"steps"`
	CookingTime int            `json:"cooking_time"`
	Servings    int            `json:"servings"`
	Difficulty  Difficulty     `json:"difficulty"`
	Cuisine     string         `json:"cuisine"`
	Tags        []string       `json:"tags"`
	Nutrition   NutritionFacts `json:"nutrition"`
	Rating      int            `json:"rating,omitempty"` // 1..5
	Source      string         `json:"source,omitempty"` // "ai" 或 "rule-based"
	CreatedAt   time.Time      `json:"created_at"`
}

// CategoryBuckets 分類結果
// 每個輸入食材恰好落在一個桶
type CategoryBuckets struct {
	Proteins   []string `json:"proteins"`
	Vegetables []string `json:"vegetables"`
	Grains     []string `json:"grains"`
	Dairy      []string `json:"dairy"`
	Spices     []string `json:"spices"`
	Others     []string `json:"others"`
}

// Total 所有桶的食材總數
func (b CategoryBuckets) Total() int {
	return len(b.Proteins) + len(b.Vegetables) + len(b.Grains) +
		len(b.Dairy) + len(b.Spices) + len(b.Others)
}

// HealthAnalysis 健康分析結果
type HealthAnalysis struct {
	Analysis        []string `json:"analysis"`
	HealthScore     int      `json:"health_score"`
	Recommendations []string `json:"recommendations"`
}

// RecognizedIngredient 影像辨識出的食材
type RecognizedIngredient struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// NormalizeName 食材名稱正規化（identity 以 name 判定，不分大小寫、去除前後空白）
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FormatIngredientNames 格式化食材名稱列表（prompt 用）
func FormatIngredientNames(names []string) string {
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString("- ")
		sb.WriteString(name)
		sb.WriteString("\n")
	}
	return sb.String()
}

package recipe

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"fridgechef/internal/pkg/common"
)

// 食譜名稱模板：%s 依序為主食材與餐別詞
var nameTemplates = []string{
	"%s %s",
	"Savory %s %s",
	"Homestyle %s %s",
	"Quick %s %s",
	"%s %s Special",
}

// 需要較長烹煮時間的硬質蔬菜
var hardVegetables = []string{"carrot", "potato", "onion"}

// 菜系猜測規則：三個關鍵字同時出現即命中
var cuisineRules = []struct {
	keywords [3]string
	cuisine  string
}{
	{[3]string{"soy", "ginger", "rice"}, "Asian"},
	{[3]string{"pasta", "tomato", "basil"}, "Italian"},
	{[3]string{"cumin", "coriander", "turmeric"}, "Indian"},
	{[3]string{"lime", "cilantro", "chili"}, "Mexican"},
}

// Composer 規則式食譜產生器
// AI 供應商失敗時的保底路徑，對任何非空食材列表都必須產出結構完整的食譜
type Composer struct {
	classifier *Classifier
	estimator  *QuantityEstimator
	rng        *rand.Rand
}

// NewComposer 創建食譜產生器
// src 為名稱模板選擇用的隨機來源，nil 時以當前時間播種
func NewComposer(classifier *Classifier, estimator *QuantityEstimator, src rand.Source) *Composer {
	if classifier == nil {
		classifier = NewClassifier(nil)
	}
	if estimator == nil {
		estimator = NewQuantityEstimator()
	}
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Composer{
		classifier: classifier,
		estimator:  estimator,
		rng:        rand.New(src),
	}
}

// Compose 依規則產生食譜，永不失敗
// 營養欄位保持全零，由呼叫端回填
func (c *Composer) Compose(request *common.RecipeGenerationRequest) *common.Recipe {
	servings := request.Servings
	if servings < 1 {
		servings = 2
	}
	cookingTime := request.CookingTime
	if cookingTime < 1 {
		cookingTime = 30
	}

	ingredients := c.filterExcluded(request)
	buckets := c.classifier.Classify(ingredients)

	name := c.composeName(buckets, request.MealType)
	steps := c.composeSteps(buckets, cookingTime)

	recipeIngredients := make([]common.Ingredient, 0, len(ingredients))
	for _, ing := range ingredients {
		quantity, unit := c.estimator.Estimate(ing, servings)
		recipeIngredients = append(recipeIngredients, common.Ingredient{
			Name:     ing,
			Quantity: quantity,
			Unit:     unit,
			Category: string(c.classifier.Detect(common.NormalizeName(ing))),
		})
	}

	return &common.Recipe{
		ID:          common.GenerateUUID(),
		Name:        name,
		Description: fmt.Sprintf("A simple homemade dish made with %s.", strings.Join(ingredients, ", ")),
		Ingredients: recipeIngredients,
		Steps:       steps,
		CookingTime: cookingTime,
		Servings:    servings,
		Difficulty:  difficultyFor(len(steps), cookingTime, len(recipeIngredients)),
		Cuisine:     guessCuisine(ingredients),
		Tags:        composeTags(buckets, request.MealType),
		Nutrition:   common.NutritionFacts{},
		Source:      "rule-based",
		CreatedAt:   time.Now(),
	}
}

// filterExcluded 過濾排除清單與過敏原
func (c *Composer) filterExcluded(request *common.RecipeGenerationRequest) []string {
	excluded := make(map[string]bool)
	for _, name := range request.ExcludeIngredients {
		excluded[common.NormalizeName(name)] = true
	}
	if request.Preferences != nil {
		for _, name := range request.Preferences.Allergies {
			excluded[common.NormalizeName(name)] = true
		}
	}

	if len(excluded) == 0 {
		return request.Ingredients
	}

	filtered := make([]string, 0, len(request.Ingredients))
	for _, name := range request.Ingredients {
		if !excluded[common.NormalizeName(name)] {
			filtered = append(filtered, name)
		}
	}
	// 全部被排除時退回原列表，確保仍有食譜可產出
	if len(filtered) == 0 {
		return request.Ingredients
	}
	return filtered
}

// composeName 從最多三個主食材與餐別組合名稱
// 主食材優先序：蛋白質 > 蔬菜 > 穀物
func (c *Composer) composeName(buckets common.CategoryBuckets, mealType common.MealType) string {
	var mains []string
	for _, bucket := range [][]string{buckets.Proteins, buckets.Vegetables, buckets.Grains} {
		for _, name := range bucket {
			if len(mains) >= 3 {
				break
			}
			mains = append(mains, titleCase(name))
		}
	}
	if len(mains) == 0 {
		for _, name := range append(buckets.Others, buckets.Dairy...) {
			if len(mains) >= 3 {
				break
			}
			mains = append(mains, titleCase(name))
		}
	}

	mainPart := "Mixed"
	if len(mains) > 0 {
		mainPart = strings.Join(mains, " & ")
	}

	mealWord := "Dish"
	if mealType != "" {
		mealWord = titleCase(string(mealType))
	}

	template := nameTemplates[c.rng.Intn(len(nameTemplates))]
	return fmt.Sprintf(template, mainPart, mealWord)
}

// composeSteps 產生依序的烹飪步驟
// 備料永遠第一步，合併上桌永遠最後一步
func (c *Composer) composeSteps(buckets common.CategoryBuckets, cookingTime int) []string {
	steps := []string{
		"Wash and prepare all ingredients. Chop vegetables and measure out seasonings.",
	}

	if len(buckets.Proteins) > 0 {
		proteinTime := proportionalMinutes(cookingTime, 3)
		if containsKeyword(buckets.Proteins, "egg") {
			steps = append(steps, fmt.Sprintf(
				"Beat the %s and cook in a lightly oiled pan over medium heat until just set, about %d minutes.",
				strings.Join(lowerAll(buckets.Proteins), " and "), proteinTime))
		} else {
			steps = append(steps, fmt.Sprintf(
				"Season the %s and cook over medium-high heat until browned and cooked through, about %d minutes.",
				strings.Join(lowerAll(buckets.Proteins), " and "), proteinTime))
		}
	}

	hard, soft := splitVegetables(buckets.Vegetables)
	if len(hard) > 0 {
		steps = append(steps, fmt.Sprintf(
			"Add the %s and cook until tender, about %d minutes.",
			strings.Join(lowerAll(hard), " and "), proportionalMinutes(cookingTime, 3)))
	}
	if len(soft) > 0 {
		steps = append(steps, fmt.Sprintf(
			"Stir in the %s and cook briefly until just softened, about %d minutes.",
			strings.Join(lowerAll(soft), " and "), proportionalMinutes(cookingTime, 6)))
	}

	if containsKeyword(buckets.Grains, "rice") || containsKeyword(buckets.Grains, "pasta") {
		steps = append(steps, fmt.Sprintf(
			"Meanwhile, cook the %s according to package directions and drain.",
			strings.Join(lowerAll(buckets.Grains), " and ")))
	}

	if len(buckets.Spices) > 0 {
		steps = append(steps, fmt.Sprintf(
			"Season with %s and adjust to taste.",
			strings.Join(lowerAll(buckets.Spices), ", ")))
	}

	steps = append(steps, "Combine everything, plate, and serve hot.")
	return steps
}

// splitVegetables 將蔬菜分為硬質與軟質
func splitVegetables(vegetables []string) (hard, soft []string) {
	for _, veg := range vegetables {
		name := strings.ToLower(veg)
		isHard := false
		for _, kw := range hardVegetables {
			if strings.Contains(name, kw) {
				isHard = true
				break
			}
		}
		if isHard {
			hard = append(hard, veg)
		} else {
			soft = append(soft, veg)
		}
	}
	return hard, soft
}

// guessCuisine 以關鍵字共現猜測菜系
func guessCuisine(ingredients []string) string {
	joined := strings.ToLower(strings.Join(ingredients, " "))
	for _, rule := range cuisineRules {
		if strings.Contains(joined, rule.keywords[0]) &&
			strings.Contains(joined, rule.keywords[1]) &&
			strings.Contains(joined, rule.keywords[2]) {
			return rule.cuisine
		}
	}
	return "International"
}

// composeTags 產生標籤
func composeTags(buckets common.CategoryBuckets, mealType common.MealType) []string {
	var tags []string
	if mealType != "" {
		tags = append(tags, string(mealType))
	}
	if len(buckets.Proteins) == 0 {
		tags = append(tags, "vegetarian")
		if len(buckets.Dairy) == 0 {
			tags = append(tags, "vegan")
		}
	}
	if len(buckets.Vegetables) > len(buckets.Proteins) {
		tags = append(tags, "healthy")
	}
	return append(tags, "homemade", "easy")
}

// difficultyFor 加權難度分數：0.3×步驟數 + 0.01×烹飪時間 + 0.1×食材數
func difficultyFor(stepCount, cookingTime, ingredientCount int) common.Difficulty {
	score := 0.3*float64(stepCount) + 0.01*float64(cookingTime) + 0.1*float64(ingredientCount)
	switch {
	case score < 3:
		return common.DifficultyEasy
	case score < 6:
		return common.DifficultyMedium
	default:
		return common.DifficultyHard
	}
}

// proportionalMinutes 依總烹飪時間的比例估算步驟時間，至少 1 分鐘
func proportionalMinutes(cookingTime, divisor int) int {
	minutes := int(math.Round(float64(cookingTime) / float64(divisor)))
	if minutes < 1 {
		return 1
	}
	return minutes
}

func containsKeyword(names []string, keyword string) bool {
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), keyword) {
			return true
		}
	}
	return false
}

func lowerAll(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = strings.ToLower(name)
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

package recipe

import (
	"math"
	"strconv"
	"strings"

	"fridgechef/internal/pkg/common"
)

// NutritionResolver 營養解析器
// 解析鏈：精確查表 > 模糊比對 > 分類預估 > 低熱量保底
type NutritionResolver struct {
	table      map[string]common.NutritionFacts
	unitGrams  map[string]float64
	classifier *Classifier
}

// NewNutritionResolver 創建營養解析器
// table 或 unitGrams 為 nil 時使用預設表
func NewNutritionResolver(table map[string]common.NutritionFacts, unitGrams map[string]float64, classifier *Classifier) *NutritionResolver {
	if table == nil {
		table = DefaultNutritionTable()
	}
	if unitGrams == nil {
		unitGrams = DefaultUnitGrams()
	}
	if classifier == nil {
		classifier = NewClassifier(nil)
	}
	return &NutritionResolver{
		table:      table,
		unitGrams:  unitGrams,
		classifier: classifier,
	}
}

// ResolveNutrition 解析單一食材的營養資訊
// 回傳值為該食材份量的絕對值（非每 100g）
func (r *NutritionResolver) ResolveNutrition(ingredient common.Ingredient) common.NutritionFacts {
	per100g := r.lookupPer100g(ingredient.Name)
	grams := r.ConvertToGrams(ingredient.Quantity, ingredient.Unit)
	return roundFacts(per100g.Scale(grams / 100))
}

// lookupPer100g 依解析鏈取得每 100g 營養資訊
func (r *NutritionResolver) lookupPer100g(name string) common.NutritionFacts {
	normalized := common.NormalizeName(name)
	if normalized == "" {
		return fallbackNutrition
	}

	// 1. 精確查表
	if facts, ok := r.table[normalized]; ok {
		return facts
	}

	// 2. 模糊比對：取子字串包含分數與詞彙重疊率的較大者，門檻 0.6
	bestScore := 0.0
	var bestFacts common.NutritionFacts
	for key, facts := range r.table {
		score := fuzzyScore(normalized, key)
		if score > bestScore {
			bestScore = score
			bestFacts = facts
		}
	}
	if bestScore > 0.6 {
		return bestFacts
	}

	// 3. 分類預估
	if facts, ok := categoryDefaults[r.detectCategory(normalized)]; ok {
		return facts
	}

	// 4. 低熱量保底
	return fallbackNutrition
}

// detectCategory 分類偵測
// 關鍵字無命中時沿用複數字尾經驗法則：長度 > 4 且以 s 結尾視為蔬菜
func (r *NutritionResolver) detectCategory(name string) common.Category {
	category := r.classifier.Detect(name)
	if category == common.CategoryOther && len(name) > 4 && strings.HasSuffix(name, "s") {
		return common.CategoryVegetable
	}
	return category
}

// fuzzyScore 模糊比對分數
// 子字串包含固定 0.8，與詞彙重疊率取較大者
func fuzzyScore(name, key string) float64 {
	containment := 0.0
	if strings.Contains(name, key) || strings.Contains(key, name) {
		containment = 0.8
	}
	return math.Max(containment, wordOverlap(name, key))
}

// wordOverlap 詞彙重疊率：共同詞數除以較多詞的一方
func wordOverlap(a, b string) float64 {
	wordsA := strings.Fields(a)
	wordsB := strings.Fields(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(wordsA))
	for _, w := range wordsA {
		setA[w] = true
	}

	overlap := 0
	for _, w := range wordsB {
		if setA[w] {
			overlap++
		}
	}

	denom := len(wordsA)
	if len(wordsB) > denom {
		denom = len(wordsB)
	}
	return float64(overlap) / float64(denom)
}

// ConvertToGrams 將份量與單位換算為公克
// 份量無法解析時取 100；未知單位以 100g 計
func (r *NutritionResolver) ConvertToGrams(quantity, unit string) float64 {
	amount := parseLeadingNumber(quantity)

	multiplier, ok := r.unitGrams[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		multiplier = 100
	}
	return amount * multiplier
}

// parseLeadingNumber 解析字串開頭的數字文字，失敗回傳 100
func parseLeadingNumber(s string) float64 {
	s = strings.TrimSpace(s)

	end := 0
	seenDot := false
	for end < len(s) {
		ch := s[end]
		if ch >= '0' && ch <= '9' {
			end++
			continue
		}
		if ch == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}

	if end == 0 {
		return 100
	}

	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 100
	}
	return value
}

// CalculateRecipeNutrition 計算整份食譜的營養資訊
// 加總所有食材後除以份數（servings > 1 時）；呼叫端保證 servings >= 1
func (r *NutritionResolver) CalculateRecipeNutrition(ingredients []common.Ingredient, servings int) common.NutritionFacts {
	var total common.NutritionFacts
	for _, ing := range ingredients {
		total = total.Add(r.ResolveNutrition(ing))
	}

	if servings > 1 {
		total = total.Scale(1 / float64(servings))
	}
	return roundFacts(total)
}

// roundFacts 精度規則：熱量與鈉取整數，其餘取一位小數
func roundFacts(n common.NutritionFacts) common.NutritionFacts {
	return common.NutritionFacts{
		Calories: math.Round(n.Calories),
		Protein:  round1(n.Protein),
		Carbs:    round1(n.Carbs),
		Fat:      round1(n.Fat),
		Fiber:    round1(n.Fiber),
		Sugar:    round1(n.Sugar),
		Sodium:   math.Round(n.Sodium),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

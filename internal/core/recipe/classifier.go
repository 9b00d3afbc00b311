package recipe

import (
	"strings"

	"fridgechef/internal/pkg/common"
)

// CategoryKeywords 分類關鍵字表
// 建構後唯讀；測試可注入自訂表
type CategoryKeywords struct {
	Proteins   []string
	Vegetables []string
	Grains     []string
	Dairy      []string
	Spices     []string
}

// DefaultCategoryKeywords 預設分類關鍵字
func DefaultCategoryKeywords() *CategoryKeywords {
	return &CategoryKeywords{
		Proteins: []string{
			"chicken", "beef", "pork", "fish", "salmon", "tuna", "shrimp",
			"egg", "tofu", "turkey", "lamb", "bacon", "sausage", "ham",
			"duck", "crab",
		},
		Vegetables: []string{
			"tomato", "onion", "carrot", "potato", "broccoli", "spinach",
			"lettuce", "cucumber", "cabbage", "mushroom", "zucchini",
			"celery", "eggplant", "corn", "kale", "asparagus", "cauliflower",
			"bean sprout",
		},
		Grains: []string{
			"rice", "pasta", "bread", "noodle", "oat", "flour", "quinoa",
			"barley", "wheat", "tortilla", "couscous",
		},
		Dairy: []string{
			"milk", "cheese", "yogurt", "butter", "cream",
		},
		Spices: []string{
			"salt", "pepper", "garlic", "ginger", "cumin", "coriander",
			"turmeric", "basil", "oregano", "thyme", "paprika", "chili",
			"cinnamon", "cilantro", "parsley", "soy sauce", "vinegar",
			"sugar", "sesame oil",
		},
	}
}

// Classifier 食材分類器
// 每個食材恰好落在一個桶，空輸入得到全空桶
type Classifier struct {
	keywords *CategoryKeywords
}

// NewClassifier 創建分類器；keywords 為 nil 時使用預設表
func NewClassifier(keywords *CategoryKeywords) *Classifier {
	if keywords == nil {
		keywords = DefaultCategoryKeywords()
	}
	return &Classifier{keywords: keywords}
}

// Classify 將食材分到六個類別桶
// 依固定優先序比對：蛋白質 > 蔬菜 > 穀物 > 乳製品 > 辛香料，無命中落入 others
func (c *Classifier) Classify(ingredients []string) common.CategoryBuckets {
	var buckets common.CategoryBuckets

	for _, raw := range ingredients {
		name := common.NormalizeName(raw)
		switch c.Detect(name) {
		case common.CategoryProtein:
			buckets.Proteins = append(buckets.Proteins, raw)
		case common.CategoryVegetable:
			buckets.Vegetables = append(buckets.Vegetables, raw)
		case common.CategoryGrain:
			buckets.Grains = append(buckets.Grains, raw)
		case common.CategoryDairy:
			buckets.Dairy = append(buckets.Dairy, raw)
		case common.CategorySpice:
			buckets.Spices = append(buckets.Spices, raw)
		default:
			buckets.Others = append(buckets.Others, raw)
		}
	}

	return buckets
}

// Detect 偵測單一食材的類別；name 須已正規化
// 空字串直接落入 others，避免雙向比對對空字串恆為真
func (c *Classifier) Detect(name string) common.Category {
	if name == "" {
		return common.CategoryOther
	}
	if matchAny(name, c.keywords.Proteins) {
		return common.CategoryProtein
	}
	if matchAny(name, c.keywords.Vegetables) {
		return common.CategoryVegetable
	}
	if matchAny(name, c.keywords.Grains) {
		return common.CategoryGrain
	}
	if matchAny(name, c.keywords.Dairy) {
		return common.CategoryDairy
	}
	if matchAny(name, c.keywords.Spices) {
		return common.CategorySpice
	}
	return common.CategoryOther
}

// matchAny 雙向子字串比對：食材包含關鍵字，或關鍵字包含食材
func matchAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) || strings.Contains(kw, name) {
			return true
		}
	}
	return false
}

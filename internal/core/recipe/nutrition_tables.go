package recipe

import (
	"fridgechef/internal/pkg/common"
)

// DefaultNutritionTable 每 100g 營養資訊查找表
// 建構後唯讀；數值為常見食材的概略值
func DefaultNutritionTable() map[string]common.NutritionFacts {
	return map[string]common.NutritionFacts{
		// 蛋白質
		"chicken":        {Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, Sugar: 0, Sodium: 74},
		"chicken breast": {Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, Sugar: 0, Sodium: 74},
		"beef":           {Calories: 250, Protein: 26, Carbs: 0, Fat: 15, Fiber: 0, Sugar: 0, Sodium: 72},
		"pork":           {Calories: 242, Protein: 27, Carbs: 0, Fat: 14, Fiber: 0, Sugar: 0, Sodium: 62},
		"salmon":         {Calories: 208, Protein: 20, Carbs: 0, Fat: 13, Fiber: 0, Sugar: 0, Sodium: 59},
		"tuna":           {Calories: 132, Protein: 28, Carbs: 0, Fat: 1.3, Fiber: 0, Sugar: 0, Sodium: 47},
		"shrimp":         {Calories: 99, Protein: 24, Carbs: 0.2, Fat: 0.3, Fiber: 0, Sugar: 0, Sodium: 111},
		"egg":            {Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, Fiber: 0, Sugar: 1.1, Sodium: 124},
		"tofu":           {Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8, Fiber: 0.3, Sugar: 0.6, Sodium: 7},
		"bacon":          {Calories: 541, Protein: 37, Carbs: 1.4, Fat: 42, Fiber: 0, Sugar: 0, Sodium: 1717},

		// 蔬菜
		"tomato":      {Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2, Fiber: 1.2, Sugar: 2.6, Sodium: 5},
		"onion":       {Calories: 40, Protein: 1.1, Carbs: 9.3, Fat: 0.1, Fiber: 1.7, Sugar: 4.2, Sodium: 4},
		"carrot":      {Calories: 41, Protein: 0.9, Carbs: 9.6, Fat: 0.2, Fiber: 2.8, Sugar: 4.7, Sodium: 69},
		"potato":      {Calories: 77, Protein: 2, Carbs: 17, Fat: 0.1, Fiber: 2.2, Sugar: 0.8, Sodium: 6},
		"broccoli":    {Calories: 34, Protein: 2.8, Carbs: 6.6, Fat: 0.4, Fiber: 2.6, Sugar: 1.7, Sodium: 33},
		"spinach":     {Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, Fiber: 2.2, Sugar: 0.4, Sodium: 79},
		"lettuce":     {Calories: 15, Protein: 1.4, Carbs: 2.9, Fat: 0.2, Fiber: 1.3, Sugar: 0.8, Sodium: 28},
		"cucumber":    {Calories: 15, Protein: 0.7, Carbs: 3.6, Fat: 0.1, Fiber: 0.5, Sugar: 1.7, Sodium: 2},
		"cabbage":     {Calories: 25, Protein: 1.3, Carbs: 5.8, Fat: 0.1, Fiber: 2.5, Sugar: 3.2, Sodium: 18},
		"mushroom":    {Calories: 22, Protein: 3.1, Carbs: 3.3, Fat: 0.3, Fiber: 1, Sugar: 2, Sodium: 5},
		"zucchini":    {Calories: 17, Protein: 1.2, Carbs: 3.1, Fat: 0.3, Fiber: 1, Sugar: 2.5, Sodium: 8},
		"corn":        {Calories: 86, Protein: 3.3, Carbs: 19, Fat: 1.4, Fiber: 2, Sugar: 3.2, Sodium: 15},
		"cauliflower": {Calories: 25, Protein: 1.9, Carbs: 5, Fat: 0.3, Fiber: 2, Sugar: 1.9, Sodium: 30},

		// 穀物
		"rice":   {Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4, Sugar: 0.1, Sodium: 1},
		"pasta":  {Calories: 131, Protein: 5, Carbs: 25, Fat: 1.1, Fiber: 1.8, Sugar: 0.6, Sodium: 1},
		"bread":  {Calories: 265, Protein: 9, Carbs: 49, Fat: 3.2, Fiber: 2.7, Sugar: 5, Sodium: 491},
		"noodle": {Calories: 138, Protein: 4.5, Carbs: 25, Fat: 2.1, Fiber: 1.2, Sugar: 0.6, Sodium: 5},
		"oat":    {Calories: 389, Protein: 17, Carbs: 66, Fat: 6.9, Fiber: 10.6, Sugar: 0, Sodium: 2},
		"quinoa": {Calories: 120, Protein: 4.4, Carbs: 21, Fat: 1.9, Fiber: 2.8, Sugar: 0.9, Sodium: 7},
		"flour":  {Calories: 364, Protein: 10, Carbs: 76, Fat: 1, Fiber: 2.7, Sugar: 0.3, Sodium: 2},

		// 乳製品
		"milk":   {Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3, Fiber: 0, Sugar: 5.1, Sodium: 43},
		"cheese": {Calories: 402, Protein: 25, Carbs: 1.3, Fat: 33, Fiber: 0, Sugar: 0.5, Sodium: 621},
		"yogurt": {Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4, Fiber: 0, Sugar: 3.2, Sodium: 36},
		"butter": {Calories: 717, Protein: 0.9, Carbs: 0.1, Fat: 81, Fiber: 0, Sugar: 0.1, Sodium: 11},
		"cream":  {Calories: 340, Protein: 2.1, Carbs: 2.8, Fat: 36, Fiber: 0, Sugar: 2.9, Sodium: 26},

		// 辛香料與油品
		"garlic":    {Calories: 149, Protein: 6.4, Carbs: 33, Fat: 0.5, Fiber: 2.1, Sugar: 1, Sodium: 17},
		"ginger":    {Calories: 80, Protein: 1.8, Carbs: 18, Fat: 0.8, Fiber: 2, Sugar: 1.7, Sodium: 13},
		"olive oil": {Calories: 884, Protein: 0, Carbs: 0, Fat: 100, Fiber: 0, Sugar: 0, Sodium: 2},
		"soy sauce": {Calories: 53, Protein: 8.1, Carbs: 4.9, Fat: 0.6, Fiber: 0.8, Sugar: 0.4, Sodium: 5493},
		"sugar":     {Calories: 387, Protein: 0, Carbs: 100, Fat: 0, Fiber: 0, Sugar: 100, Sodium: 1},

		// 水果
		"apple":  {Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, Fiber: 2.4, Sugar: 10, Sodium: 1},
		"banana": {Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, Fiber: 2.6, Sugar: 12, Sodium: 1},
		"lemon":  {Calories: 29, Protein: 1.1, Carbs: 9.3, Fat: 0.3, Fiber: 2.8, Sugar: 2.5, Sodium: 2},
		"avocado": {Calories: 160, Protein: 2, Carbs: 8.5, Fat: 14.7, Fiber: 6.7, Sugar: 0.7, Sodium: 7},
	}
}

// DefaultUnitGrams 單位換算表：每一單位對應的公克數
// 重量單位為精確值，體積單位以近似水密度換算，計數單位為固定估計值
func DefaultUnitGrams() map[string]float64 {
	return map[string]float64{
		"g":           1,
		"gram":        1,
		"grams":       1,
		"kg":          1000,
		"mg":          0.001,
		"oz":          28.35,
		"lb":          453.59,
		"ml":          1,
		"l":           1000,
		"cup":         240,
		"cups":        240,
		"tbsp":        15,
		"tablespoon":  15,
		"tablespoons": 15,
		"tsp":         5,
		"teaspoon":    5,
		"teaspoons":   5,
		"clove":       3,
		"cloves":      3,
		"piece":       100,
		"pieces":      100,
		"medium":      120,
		"slice":       25,
		"slices":      25,
		"pinch":       1,
	}
}

// 分類預估值（每 100g）：查找表與模糊比對都失敗時使用
var categoryDefaults = map[common.Category]common.NutritionFacts{
	common.CategoryProtein:   {Calories: 200, Protein: 25, Carbs: 0, Fat: 10, Fiber: 0, Sugar: 0, Sodium: 80},
	common.CategoryVegetable: {Calories: 25, Protein: 1.5, Carbs: 5, Fat: 0.2, Fiber: 2, Sugar: 2.5, Sodium: 10},
	common.CategoryGrain:     {Calories: 350, Protein: 10, Carbs: 70, Fat: 2, Fiber: 4, Sugar: 1, Sodium: 5},
	common.CategoryDairy:     {Calories: 150, Protein: 8, Carbs: 8, Fat: 9, Fiber: 0, Sugar: 8, Sodium: 120},
	common.CategorySpice:     {Calories: 50, Protein: 2, Carbs: 10, Fat: 1, Fiber: 2, Sugar: 1, Sodium: 100},
}

// 最終保底值（每 100g）：低熱量預設
var fallbackNutrition = common.NutritionFacts{
	Calories: 50, Protein: 2, Carbs: 8, Fat: 1, Fiber: 1, Sugar: 2, Sodium: 10,
}

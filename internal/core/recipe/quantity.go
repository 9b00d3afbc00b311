package recipe

import (
	"math"
	"strconv"
	"strings"
)

// quantityRule 份量規則：關鍵字命中即套用，順序即優先序
type quantityRule struct {
	keywords []string
	quantity func(servings int) string
	unit     string
}

// QuantityEstimator 份量估算器
// 依關鍵字規則表為每個食材給出合理的份量與單位
type QuantityEstimator struct {
	rules []quantityRule
}

// NewQuantityEstimator 創建份量估算器
func NewQuantityEstimator() *QuantityEstimator {
	fixed := func(q string) func(int) string {
		return func(int) string { return q }
	}
	halfServings := func(servings int) string {
		return strconv.Itoa(int(math.Ceil(float64(servings) / 2)))
	}
	quarterServings := func(servings int) string {
		return strconv.Itoa(int(math.Ceil(float64(servings) / 4)))
	}

	return &QuantityEstimator{
		rules: []quantityRule{
			{keywords: []string{"salt", "pepper"}, quantity: fixed("1"), unit: "tsp"},
			{keywords: []string{"garlic", "ginger"}, quantity: fixed("2"), unit: "cloves"},
			{keywords: []string{"onion", "tomato", "potato"}, quantity: halfServings, unit: "medium"},
			{keywords: []string{"rice", "pasta"}, quantity: quarterServings, unit: "cup"},
			{keywords: []string{"oil", "butter"}, quantity: fixed("2"), unit: "tbsp"},
		},
	}
}

// Estimate 估算食材份量；servings 由呼叫端保證 >= 1
// 無規則命中時以 ceil(servings/2) piece 作為預設
func (e *QuantityEstimator) Estimate(ingredientName string, servings int) (quantity string, unit string) {
	name := strings.ToLower(ingredientName)

	for _, rule := range e.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.quantity(servings), rule.unit
			}
		}
	}

	return strconv.Itoa(int(math.Ceil(float64(servings) / 2))), "piece"
}

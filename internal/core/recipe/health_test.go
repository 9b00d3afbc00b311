package recipe

import (
	"testing"

	"fridgechef/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeAllZeroNutrition(t *testing.T) {
	s := NewHealthScorer()

	result := s.Analyze(common.NutritionFacts{})

	require.NotNil(t, result)
	assert.Equal(t, 50, result.HealthScore)
}

func TestAnalyzeScoreAlwaysInRange(t *testing.T) {
	s := NewHealthScorer()

	inputs := []common.NutritionFacts{
		{},
		{Calories: 100, Protein: 20, Fiber: 8, Sodium: 100},
		{Calories: 900, Sugar: 40, Sodium: 2000, Fat: 60},
		{Calories: 150, Protein: 30, Fiber: 10, Sodium: 50, Fat: 1},
		{Calories: 5000, Protein: 0.1, Sugar: 500, Sodium: 9000, Fat: 400},
	}

	for _, n := range inputs {
		result := s.Analyze(n)
		assert.GreaterOrEqual(t, result.HealthScore, 0, "input %+v", n)
		assert.LessOrEqual(t, result.HealthScore, 100, "input %+v", n)
	}
}

func TestAnalyzeHighProteinBonus(t *testing.T) {
	s := NewHealthScorer()

	low := s.Analyze(common.NutritionFacts{Calories: 400, Protein: 10})
	high := s.Analyze(common.NutritionFacts{Calories: 400, Protein: 20})
	assert.Equal(t, 15, high.HealthScore-low.HealthScore)
}

func TestAnalyzeLowProteinRecommendation(t *testing.T) {
	s := NewHealthScorer()

	result := s.Analyze(common.NutritionFacts{Calories: 400, Protein: 2})
	assert.NotEmpty(t, result.Recommendations)
}

func TestAnalyzeHighSodiumPenalty(t *testing.T) {
	s := NewHealthScorer()

	normal := s.Analyze(common.NutritionFacts{Calories: 400, Protein: 10, Sodium: 500})
	salty := s.Analyze(common.NutritionFacts{Calories: 400, Protein: 10, Sodium: 1200})

	assert.Equal(t, 10, normal.HealthScore-salty.HealthScore)
	assert.NotEmpty(t, salty.Recommendations)
}

func TestAnalyzeHighCaloriePenaltyAndRecommendation(t *testing.T) {
	s := NewHealthScorer()

	// 脂肪佔比 28%，不觸發脂肪加減分，只剩高熱量 -5
	result := s.Analyze(common.NutritionFacts{Calories: 800, Protein: 10, Sodium: 400, Fat: 25})
	assert.Equal(t, 45, result.HealthScore)
	assert.NotEmpty(t, result.Recommendations)
}

func TestAnalyzeFatPercentage(t *testing.T) {
	s := NewHealthScorer()

	// 脂肪熱量佔比 > 35%：45g 脂肪 × 9 = 405 kcal，佔 800 的 50%
	fatty := s.Analyze(common.NutritionFacts{Calories: 800, Protein: 10, Sodium: 400, Fat: 45})
	assert.Equal(t, 40, fatty.HealthScore)

	// 佔比 < 20%：10g × 9 = 90 kcal，佔 800 的 11%
	lean := s.Analyze(common.NutritionFacts{Calories: 800, Protein: 10, Sodium: 400, Fat: 10})
	assert.Equal(t, 50, lean.HealthScore)
}

func TestAnalyzeBestCaseClampsAt100(t *testing.T) {
	s := NewHealthScorer()

	// 低熱量 +10、高蛋白 +15、高纖 +10、低鈉 +5、低脂 +5 = 95，不超過 100
	result := s.Analyze(common.NutritionFacts{
		Calories: 150, Protein: 20, Fiber: 8, Sodium: 100, Fat: 2,
	})
	assert.Equal(t, 95, result.HealthScore)
	assert.NotEmpty(t, result.Analysis)
}

package recipe

import (
	"fridgechef/internal/pkg/common"
)

// HealthScorer 健康評分器
// 以固定門檻對每份營養值加減分，基準分 50，結果夾在 [0,100]
type HealthScorer struct{}

// NewHealthScorer 創建健康評分器
func NewHealthScorer() *HealthScorer {
	return &HealthScorer{}
}

// Analyze 分析每份營養資訊，產出評語、分數與建議
func (s *HealthScorer) Analyze(nutrition common.NutritionFacts) *common.HealthAnalysis {
	score := 50
	var analysis, recommendations []string

	// 熱量門檻只在有數據時加分，避免全零輸入被灌分
	if nutrition.Calories > 0 && nutrition.Calories < 200 {
		score += 10
		analysis = append(analysis, "Light meal with moderate calories")
	} else if nutrition.Calories > 600 {
		score -= 5
		recommendations = append(recommendations, "Consider reducing portion size to lower the calories per serving")
	}

	if nutrition.Protein > 15 {
		score += 15
		analysis = append(analysis, "Good source of protein")
	} else if nutrition.Protein < 5 {
		recommendations = append(recommendations, "Add a protein source such as eggs, tofu, or chicken")
	}

	if nutrition.Fiber > 5 {
		score += 10
		analysis = append(analysis, "High in dietary fiber")
	}

	if nutrition.Sugar > 15 {
		score -= 5
		recommendations = append(recommendations, "Reduce added sugar or sweet ingredients")
	}

	if nutrition.Sodium > 800 {
		score -= 10
		recommendations = append(recommendations, "Reduce salt and high-sodium condiments")
	} else if nutrition.Sodium > 0 && nutrition.Sodium < 200 {
		score += 5
		analysis = append(analysis, "Low in sodium")
	}

	if nutrition.Calories > 0 {
		fatPercent := nutrition.Fat * 9 / nutrition.Calories * 100
		if fatPercent > 35 {
			score -= 5
			analysis = append(analysis, "High proportion of calories from fat")
		} else if fatPercent < 20 {
			score += 5
			analysis = append(analysis, "Low in fat")
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return &common.HealthAnalysis{
		Analysis:        analysis,
		HealthScore:     score,
		Recommendations: recommendations,
	}
}

package vision

import (
	"context"
	"sort"
	"strings"

	aiservice "fridgechef/internal/core/ai/service"
	"fridgechef/internal/core/recipe"
	"fridgechef/internal/infrastructure/config"
	"fridgechef/internal/pkg/common"

	"go.uber.org/zap"
)

// UnavailableNotice 視覺供應商不可用時附加的使用者提示
const UnavailableNotice = "Image recognition service was unavailable, no ingredients were detected"

// 辨識標籤別名：偵測結果常見寫法對應到標準食材名稱
var detectionAliases = map[string]string{
	"scallion":     "onion",
	"green onion":  "onion",
	"bell pepper":  "pepper",
	"capsicum":     "pepper",
	"courgette":    "zucchini",
	"aubergine":    "eggplant",
	"prawn":        "shrimp",
	"minced meat":  "beef",
	"ground beef":  "beef",
	"mozzarella":   "cheese",
	"parmesan":     "cheese",
	"spring onion": "onion",
}

// 通用食物關鍵字：無法對應標準名稱但含這些字樣的偵測結果原樣保留
var genericFoodKeywords = []string{
	"food", "fruit", "vegetable", "meat", "fish", "sauce",
	"bean", "berry", "herb", "nut", "seafood",
}

// Service 食材影像辨識服務
// 將視覺供應商的偵測結果對應到標準食材名稱
type Service struct {
	config    *config.Config
	aiService *aiservice.Service
	canonical []string
}

// NewService 創建影像辨識服務
func NewService(cfg *config.Config, ai *aiservice.Service) *Service {
	keywords := recipe.DefaultCategoryKeywords()

	var canonical []string
	seen := make(map[string]bool)
	for _, list := range [][]string{
		keywords.Proteins, keywords.Vegetables, keywords.Grains,
		keywords.Dairy, keywords.Spices,
	} {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				canonical = append(canonical, name)
			}
		}
	}
	sort.Strings(canonical)

	return &Service{
		config:    cfg,
		aiService: ai,
		canonical: canonical,
	}
}

// detectionPayload 視覺供應商的預期 JSON 結構
type detectionPayload struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// RecognizeIngredients 從 base64 圖片辨識食材
// 圖片格式錯誤是硬性錯誤；供應商失敗回傳空結果與提示，不視為錯誤
func (s *Service) RecognizeIngredients(ctx context.Context, imageData string) ([]common.RecognizedIngredient, string, error) {
	cleaned, err := ValidateImage(imageData, s.config.Image.MaxSizeBytes)
	if err != nil {
		return nil, "", err
	}

	if s.aiService == nil {
		return []common.RecognizedIngredient{}, UnavailableNotice, nil
	}

	resp, err := s.aiService.ProcessRequest(ctx, recognitionPrompt, cleaned)
	if err != nil {
		common.LogWarn("影像辨識供應商失敗",
			zap.Error(err),
		)
		return []common.RecognizedIngredient{}, UnavailableNotice, nil
	}

	detections, err := parseDetections(resp.Content)
	if err != nil {
		common.LogWarn("影像辨識回應解析失敗",
			zap.Error(err),
		)
		return []common.RecognizedIngredient{}, UnavailableNotice, nil
	}

	return s.mapDetections(detections), "", nil
}

const recognitionPrompt = `You are a food recognition system. Identify every food ingredient visible in the image.
Respond with ONLY a JSON array, no markdown fences and no commentary, in this exact shape:
[{"name": "tomato", "confidence": 0.95}]
Use lowercase English ingredient names. Confidence is between 0 and 1.`

// parseDetections 從回應內容擷取 JSON 陣列並解析
func parseDetections(content string) ([]detectionPayload, error) {
	txt := strings.TrimSpace(content)
	txt = strings.TrimPrefix(txt, "```json")
	txt = strings.TrimPrefix(txt, "```")
	txt = strings.TrimSuffix(txt, "```")
	txt = strings.TrimSpace(txt)
	if start, end := strings.Index(txt, "["), strings.LastIndex(txt, "]"); start != -1 && end > start {
		txt = txt[start : end+1]
	}

	var detections []detectionPayload
	if err := common.ParseJSON(txt, &detections); err != nil {
		return nil, err
	}
	return detections, nil
}

// mapDetections 將偵測結果對應到標準食材名稱
// 無法對應且不含通用食物關鍵字的偵測結果直接捨棄
func (s *Service) mapDetections(detections []detectionPayload) []common.RecognizedIngredient {
	results := make([]common.RecognizedIngredient, 0, len(detections))
	best := make(map[string]float64)

	for _, det := range detections {
		name := common.NormalizeName(det.Name)
		if name == "" {
			continue
		}

		canonical, ok := s.toCanonical(name)
		if !ok {
			if !containsGenericFood(name) {
				continue
			}
			canonical = name
		}

		if conf, exists := best[canonical]; !exists || det.Confidence > conf {
			best[canonical] = det.Confidence
		}
	}

	names := make([]string, 0, len(best))
	for name := range best {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		results = append(results, common.RecognizedIngredient{
			Name:       name,
			Confidence: best[name],
		})
	}
	return results
}

// toCanonical 別名表優先，其次對標準名稱做雙向子字串比對
func (s *Service) toCanonical(name string) (string, bool) {
	if alias, ok := detectionAliases[name]; ok {
		return alias, true
	}
	for _, canonical := range s.canonical {
		if strings.Contains(name, canonical) || strings.Contains(canonical, name) {
			return canonical, true
		}
	}
	return "", false
}

func containsGenericFood(name string) bool {
	for _, kw := range genericFoodKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

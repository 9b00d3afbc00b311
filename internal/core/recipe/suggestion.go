package recipe

import (
	"sort"
	"strings"

	"fridgechef/internal/pkg/common"
)

const maxSuggestions = 8

// SuggestionEngine 食材名稱補全引擎
// 排序優先序：前綴 > 包含 > 模糊（編輯距離）> 意圖詞 > 類別名稱
type SuggestionEngine struct {
	keywords *CategoryKeywords
	known    []string
}

// NewSuggestionEngine 創建補全引擎；keywords 為 nil 時使用預設表
func NewSuggestionEngine(keywords *CategoryKeywords) *SuggestionEngine {
	if keywords == nil {
		keywords = DefaultCategoryKeywords()
	}

	var known []string
	seen := make(map[string]bool)
	for _, list := range [][]string{
		keywords.Proteins, keywords.Vegetables, keywords.Grains,
		keywords.Dairy, keywords.Spices,
	} {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				known = append(known, name)
			}
		}
	}
	sort.Strings(known)

	return &SuggestionEngine{keywords: keywords, known: known}
}

// Suggest 依部分輸入回傳最多 8 筆補全建議
// 輸入長度小於 2 時回傳空列表
func (e *SuggestionEngine) Suggest(partialInput string) []string {
	input := common.NormalizeName(partialInput)
	if len(input) < 2 {
		return []string{}
	}

	results := make([]string, 0, maxSuggestions)
	seen := make(map[string]bool)
	add := func(names ...string) {
		for _, name := range names {
			if len(results) >= maxSuggestions {
				return
			}
			if !seen[name] {
				seen[name] = true
				results = append(results, name)
			}
		}
	}

	// 前綴命中
	for _, name := range e.known {
		if strings.HasPrefix(name, input) {
			add(name)
		}
	}

	// 包含命中
	for _, name := range e.known {
		if strings.Contains(name, input) {
			add(name)
		}
	}

	// 模糊命中：編輯距離 <= 2，距離近者優先
	type fuzzyMatch struct {
		name     string
		distance int
	}
	var fuzzy []fuzzyMatch
	for _, name := range e.known {
		if seen[name] {
			continue
		}
		if d := editDistance(input, name); d <= 2 {
			fuzzy = append(fuzzy, fuzzyMatch{name: name, distance: d})
		}
	}
	sort.SliceStable(fuzzy, func(i, j int) bool {
		return fuzzy[i].distance < fuzzy[j].distance
	})
	for _, m := range fuzzy {
		add(m.name)
	}

	// 意圖詞命中
	if strings.Contains(input, "meat") {
		add(e.keywords.Proteins...)
	}
	if strings.Contains(input, "veg") {
		add(e.keywords.Vegetables...)
	}
	if strings.Contains(input, "grain") {
		add(e.keywords.Grains...)
	}

	// 類別名稱命中（單複數皆可）
	for categoryName, list := range map[string][]string{
		"protein":   e.keywords.Proteins,
		"vegetable": e.keywords.Vegetables,
		"grain":     e.keywords.Grains,
		"dairy":     e.keywords.Dairy,
		"spice":     e.keywords.Spices,
	} {
		if input == categoryName || input == categoryName+"s" {
			add(list...)
		}
	}

	return results
}

// editDistance Levenshtein 編輯距離
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

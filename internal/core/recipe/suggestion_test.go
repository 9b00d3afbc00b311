package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestShortInputReturnsEmpty(t *testing.T) {
	e := NewSuggestionEngine(nil)

	assert.Empty(t, e.Suggest("x"))
	assert.Empty(t, e.Suggest(""))
	assert.Empty(t, e.Suggest(" a "))
}

func TestSuggestPrefixBeforeFuzzy(t *testing.T) {
	e := NewSuggestionEngine(nil)

	results := e.Suggest("to")
	require.NotEmpty(t, results)
	assert.Contains(t, results, "tomato")
	assert.Contains(t, results, "tofu")

	// 前綴命中必定排在任何純模糊命中之前
	tomatoIdx := indexOf(results, "tomato")
	for i, name := range results {
		if name != "tomato" && name != "tofu" && !hasPrefix(name, "to") {
			assert.Greater(t, i, tomatoIdx, "non-prefix match %q before tomato", name)
		}
	}
}

func TestSuggestContainsMatch(t *testing.T) {
	e := NewSuggestionEngine(nil)

	results := e.Suggest("ee")
	assert.Contains(t, results, "beef")
	assert.Contains(t, results, "cheese")
}

func TestSuggestCapEight(t *testing.T) {
	e := NewSuggestionEngine(nil)

	for _, input := range []string{"to", "ch", "meat", "vegetable", "ri"} {
		results := e.Suggest(input)
		assert.LessOrEqual(t, len(results), 8, "input %q", input)
	}
}

func TestSuggestIntentWords(t *testing.T) {
	e := NewSuggestionEngine(nil)

	results := e.Suggest("meat")
	require.NotEmpty(t, results)
	// 意圖詞帶出蛋白質名稱
	assert.Contains(t, results, "chicken")
}

func TestSuggestCategoryNames(t *testing.T) {
	e := NewSuggestionEngine(nil)

	results := e.Suggest("grains")
	require.NotEmpty(t, results)
	assert.Contains(t, results, "rice")
}

func TestSuggestDeduplicated(t *testing.T) {
	e := NewSuggestionEngine(nil)

	results := e.Suggest("tomato")
	seen := make(map[string]bool)
	for _, name := range results {
		assert.False(t, seen[name], "duplicate %q", name)
		seen[name] = true
	}
}

func indexOf(list []string, target string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return -1
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

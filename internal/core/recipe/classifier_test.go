package recipe

import (
	"testing"

	"fridgechef/internal/pkg/common"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBasicCategories(t *testing.T) {
	c := NewClassifier(nil)

	buckets := c.Classify([]string{"chicken", "tomato", "rice", "milk", "salt", "dragonfruit"})

	assert.Equal(t, []string{"chicken"}, buckets.Proteins)
	assert.Equal(t, []string{"tomato"}, buckets.Vegetables)
	assert.Equal(t, []string{"rice"}, buckets.Grains)
	assert.Equal(t, []string{"milk"}, buckets.Dairy)
	assert.Equal(t, []string{"salt"}, buckets.Spices)
	assert.Equal(t, []string{"dragonfruit"}, buckets.Others)
}

func TestClassifyEveryIngredientLandsInExactlyOneBucket(t *testing.T) {
	c := NewClassifier(nil)

	inputs := [][]string{
		{"chicken"},
		{"chicken", "tomato", "rice"},
		{"zzz", "qqq", "xyzzy"},
		{"Chicken Breast", "cherry tomato", "BASMATI RICE", "greek yogurt", "black pepper", "mystery item"},
		{"", "  ", "onion"},
	}

	for _, ingredients := range inputs {
		buckets := c.Classify(ingredients)
		assert.Equal(t, len(ingredients), buckets.Total(), "input %v", ingredients)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	c := NewClassifier(nil)

	buckets := c.Classify(nil)
	assert.Equal(t, 0, buckets.Total())
}

func TestClassifyBidirectionalSubstring(t *testing.T) {
	c := NewClassifier(nil)

	// 食材包含關鍵字
	assert.Equal(t, common.CategoryProtein, c.Detect("grilled chicken thigh"))
	// 關鍵字包含食材
	assert.Equal(t, common.CategoryVegetable, c.Detect("broc"))
}

func TestClassifyPriorityOrder(t *testing.T) {
	c := NewClassifier(nil)

	// 同時命中蛋白質與蔬菜關鍵字時，蛋白質優先
	buckets := c.Classify([]string{"chicken and tomato skewer"})
	assert.Len(t, buckets.Proteins, 1)
	assert.Empty(t, buckets.Vegetables)
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := NewClassifier(nil)

	buckets := c.Classify([]string{"CHICKEN", "Tomato", "  rice  "})
	assert.Len(t, buckets.Proteins, 1)
	assert.Len(t, buckets.Vegetables, 1)
	assert.Len(t, buckets.Grains, 1)
}

package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateSeasonings(t *testing.T) {
	e := NewQuantityEstimator()

	quantity, unit := e.Estimate("salt", 2)
	assert.Equal(t, "1", quantity)
	assert.Equal(t, "tsp", unit)

	quantity, unit = e.Estimate("black pepper", 6)
	assert.Equal(t, "1", quantity)
	assert.Equal(t, "tsp", unit)
}

func TestEstimateGarlicIndependentOfServings(t *testing.T) {
	e := NewQuantityEstimator()

	for _, servings := range []int{1, 2, 4, 8} {
		quantity, unit := e.Estimate("garlic", servings)
		assert.Equal(t, "2", quantity)
		assert.Equal(t, "cloves", unit)
	}
}

func TestEstimateScalesWithServings(t *testing.T) {
	e := NewQuantityEstimator()

	quantity, unit := e.Estimate("tomato", 4)
	assert.Equal(t, "2", quantity)
	assert.Equal(t, "medium", unit)

	quantity, unit = e.Estimate("tomato", 5)
	assert.Equal(t, "3", quantity)
	assert.Equal(t, "medium", unit)

	quantity, unit = e.Estimate("rice", 4)
	assert.Equal(t, "1", quantity)
	assert.Equal(t, "cup", unit)

	quantity, unit = e.Estimate("rice", 6)
	assert.Equal(t, "2", quantity)
	assert.Equal(t, "cup", unit)
}

func TestEstimateOilAndButter(t *testing.T) {
	e := NewQuantityEstimator()

	quantity, unit := e.Estimate("olive oil", 3)
	assert.Equal(t, "2", quantity)
	assert.Equal(t, "tbsp", unit)

	quantity, unit = e.Estimate("butter", 1)
	assert.Equal(t, "2", quantity)
	assert.Equal(t, "tbsp", unit)
}

func TestEstimateDefault(t *testing.T) {
	e := NewQuantityEstimator()

	quantity, unit := e.Estimate("dragonfruit", 3)
	assert.Equal(t, "2", quantity)
	assert.Equal(t, "piece", unit)

	quantity, unit = e.Estimate("dragonfruit", 1)
	assert.Equal(t, "1", quantity)
	assert.Equal(t, "piece", unit)
}

func TestEstimateFirstRuleWins(t *testing.T) {
	e := NewQuantityEstimator()

	// "garlic salt" 同時命中 salt 與 garlic，排序在前的 salt 規則優先
	quantity, unit := e.Estimate("garlic salt", 4)
	assert.Equal(t, "1", quantity)
	assert.Equal(t, "tsp", unit)
}

package recipe

import (
	"math/rand"
	"testing"

	"fridgechef/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComposer(seed int64) *Composer {
	return NewComposer(nil, nil, rand.NewSource(seed))
}

func TestComposeNeverFails(t *testing.T) {
	c := newTestComposer(1)

	requests := []*common.RecipeGenerationRequest{
		{Ingredients: []string{"chicken", "tomato", "rice"}},
		{Ingredients: []string{"zzz", "qqq"}},
		{Ingredients: []string{"salt"}},
		{Ingredients: []string{"tomato"}, MealType: common.MealDinner, CookingTime: 45, Servings: 4},
	}

	for _, req := range requests {
		recipe := c.Compose(req)
		require.NotNil(t, recipe)
		assert.NotEmpty(t, recipe.ID)
		assert.NotEmpty(t, recipe.Name)
		assert.GreaterOrEqual(t, len(recipe.Steps), 1, "ingredients %v", req.Ingredients)
		assert.GreaterOrEqual(t, len(recipe.Tags), 1, "ingredients %v", req.Ingredients)
		assert.GreaterOrEqual(t, recipe.Servings, 1)
		assert.Equal(t, "rule-based", recipe.Source)
	}
}

func TestComposeSeededNameIsDeterministic(t *testing.T) {
	req := &common.RecipeGenerationRequest{
		Ingredients: []string{"chicken", "tomato"},
		MealType:    common.MealDinner,
	}

	first := newTestComposer(42).Compose(req)
	second := newTestComposer(42).Compose(req)
	assert.Equal(t, first.Name, second.Name)
}

func TestComposeStepsOrder(t *testing.T) {
	c := newTestComposer(1)

	recipe := c.Compose(&common.RecipeGenerationRequest{
		Ingredients: []string{"chicken", "carrot", "spinach", "rice", "salt"},
		CookingTime: 30,
		Servings:    2,
	})

	require.GreaterOrEqual(t, len(recipe.Steps), 6)
	// 備料永遠第一步，合併上桌永遠最後一步
	assert.Contains(t, recipe.Steps[0], "prepare")
	assert.Contains(t, recipe.Steps[len(recipe.Steps)-1], "serve")
	// 蛋白質步驟在蔬菜步驟之前
	assert.Contains(t, recipe.Steps[1], "chicken")
}

func TestComposeEggBranch(t *testing.T) {
	c := newTestComposer(1)

	recipe := c.Compose(&common.RecipeGenerationRequest{
		Ingredients: []string{"egg", "spinach"},
	})

	assert.Contains(t, recipe.Steps[1], "Beat the")
}

func TestComposeCuisineGuess(t *testing.T) {
	c := newTestComposer(1)

	cases := []struct {
		ingredients []string
		cuisine     string
	}{
		{[]string{"soy sauce", "ginger", "rice"}, "Asian"},
		{[]string{"pasta", "tomato", "basil"}, "Italian"},
		{[]string{"cumin", "coriander", "turmeric"}, "Indian"},
		{[]string{"lime", "cilantro", "chili"}, "Mexican"},
		{[]string{"chicken", "potato"}, "International"},
	}

	for _, tc := range cases {
		recipe := c.Compose(&common.RecipeGenerationRequest{Ingredients: tc.ingredients})
		assert.Equal(t, tc.cuisine, recipe.Cuisine, "ingredients %v", tc.ingredients)
	}
}

func TestComposeTags(t *testing.T) {
	c := newTestComposer(1)

	// 無蛋白質無乳製品：vegetarian + vegan + healthy
	recipe := c.Compose(&common.RecipeGenerationRequest{
		Ingredients: []string{"tomato", "spinach"},
		MealType:    common.MealLunch,
	})
	assert.Contains(t, recipe.Tags, "lunch")
	assert.Contains(t, recipe.Tags, "vegetarian")
	assert.Contains(t, recipe.Tags, "vegan")
	assert.Contains(t, recipe.Tags, "healthy")
	assert.Contains(t, recipe.Tags, "homemade")
	assert.Contains(t, recipe.Tags, "easy")

	// 有乳製品：vegetarian 但非 vegan
	recipe = c.Compose(&common.RecipeGenerationRequest{
		Ingredients: []string{"tomato", "cheese"},
	})
	assert.Contains(t, recipe.Tags, "vegetarian")
	assert.NotContains(t, recipe.Tags, "vegan")

	// 有蛋白質：非 vegetarian
	recipe = c.Compose(&common.RecipeGenerationRequest{
		Ingredients: []string{"chicken"},
	})
	assert.NotContains(t, recipe.Tags, "vegetarian")
}

func TestComposeExclusions(t *testing.T) {
	c := newTestComposer(1)

	recipe := c.Compose(&common.RecipeGenerationRequest{
		Ingredients:        []string{"chicken", "tomato"},
		ExcludeIngredients: []string{"Chicken"},
	})

	for _, ing := range recipe.Ingredients {
		assert.NotEqual(t, "chicken", common.NormalizeName(ing.Name))
	}
}

func TestComposeAllergiesExcluded(t *testing.T) {
	c := newTestComposer(1)

	recipe := c.Compose(&common.RecipeGenerationRequest{
		Ingredients: []string{"shrimp", "rice"},
		Preferences: &common.UserPreferences{Allergies: []string{"shrimp"}},
	})

	for _, ing := range recipe.Ingredients {
		assert.NotEqual(t, "shrimp", common.NormalizeName(ing.Name))
	}
}

func TestComposeDifficulty(t *testing.T) {
	assert.Equal(t, common.DifficultyEasy, difficultyFor(3, 15, 2))
	assert.Equal(t, common.DifficultyMedium, difficultyFor(7, 30, 8))
	assert.Equal(t, common.DifficultyHard, difficultyFor(10, 120, 20))
}

func TestComposeNutritionStartsAtZero(t *testing.T) {
	c := newTestComposer(1)

	recipe := c.Compose(&common.RecipeGenerationRequest{
		Ingredients: []string{"chicken", "rice"},
	})
	assert.Equal(t, common.NutritionFacts{}, recipe.Nutrition)
}

package storage

import (
	"context"
	"fmt"
	"testing"

	"fridgechef/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRecipeLifecycle(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	recipe := &common.Recipe{ID: "r1", Name: "Tomato Soup"}
	require.NoError(t, s.SaveRecipe(ctx, recipe))

	got, err := s.GetRecipe(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Tomato Soup", got.Name)

	// 取得的是副本，改動不影響儲存內容
	got.Name = "changed"
	again, err := s.GetRecipe(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Tomato Soup", again.Name)

	recipes, err := s.ListRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, recipes, 1)

	require.NoError(t, s.DeleteRecipe(ctx, "r1"))
	_, err = s.GetRecipe(ctx, "r1")
	assert.Equal(t, common.ErrRecipeNotFound, err)

	assert.Equal(t, common.ErrRecipeNotFound, s.DeleteRecipe(ctx, "r1"))
}

func TestMemoryStoreRateRecipe(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.SaveRecipe(ctx, &common.Recipe{ID: "r1"}))

	rated, err := s.RateRecipe(ctx, "r1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, rated.Rating)

	for _, rating := range []int{0, -1, 6} {
		_, err := s.RateRecipe(ctx, "r1", rating)
		assert.Equal(t, common.ErrInvalidRating, err, "rating %d", rating)
	}

	_, err = s.RateRecipe(ctx, "missing", 3)
	assert.Equal(t, common.ErrRecipeNotFound, err)
}

func TestMemoryStoreHistoryCapAndOrder(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		require.NoError(t, s.PushHistory(ctx, fmt.Sprintf("r%d", i)))
	}

	history, err := s.GetHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 50)
	// 最新在前
	assert.Equal(t, "r59", history[0])
	assert.Equal(t, "r10", history[49])
}

func TestMemoryStoreHistoryDeduplicates(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.PushHistory(ctx, "a"))
	require.NoError(t, s.PushHistory(ctx, "b"))
	require.NoError(t, s.PushHistory(ctx, "a"))

	history, err := s.GetHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, history)
}

func TestMemoryStorePreferences(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	// 未設定時回傳空偏好而非錯誤
	prefs, err := s.GetPreferences(ctx)
	require.NoError(t, err)
	require.NotNil(t, prefs)
	assert.Empty(t, prefs.DietaryRestrictions)

	require.NoError(t, s.SavePreferences(ctx, &common.UserPreferences{
		DietaryRestrictions: []string{"vegetarian"},
		SpiceLevel:          common.SpiceMild,
	}))

	prefs, err = s.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"vegetarian"}, prefs.DietaryRestrictions)
	assert.Equal(t, common.SpiceMild, prefs.SpiceLevel)
}

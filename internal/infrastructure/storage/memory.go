package storage

import (
	"context"
	"sync"

	"fridgechef/internal/pkg/common"
)

// MemoryStore 程序內記憶體儲存
// Redis 停用時的替代實作，行為與 RedisStore 一致
type MemoryStore struct {
	mu          sync.RWMutex
	recipes     map[string]common.Recipe
	preferences *common.UserPreferences
	history     []string // 最新在前
}

// NewMemoryStore 創建記憶體儲存
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		recipes: make(map[string]common.Recipe),
	}
}

// SaveRecipe 儲存食譜
func (s *MemoryStore) SaveRecipe(ctx context.Context, recipe *common.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes[recipe.ID] = *recipe
	return nil
}

// GetRecipe 取得食譜
func (s *MemoryStore) GetRecipe(ctx context.Context, id string) (*common.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recipe, ok := s.recipes[id]
	if !ok {
		return nil, common.ErrRecipeNotFound
	}
	return &recipe, nil
}

// ListRecipes 列出所有食譜
func (s *MemoryStore) ListRecipes(ctx context.Context) ([]common.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recipes := make([]common.Recipe, 0, len(s.recipes))
	for _, recipe := range s.recipes {
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

// DeleteRecipe 刪除食譜
func (s *MemoryStore) DeleteRecipe(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipes[id]; !ok {
		return common.ErrRecipeNotFound
	}
	delete(s.recipes, id)
	return nil
}

// RateRecipe 更新食譜評分（1..5）
func (s *MemoryStore) RateRecipe(ctx context.Context, id string, rating int) (*common.Recipe, error) {
	if rating < 1 || rating > 5 {
		return nil, common.ErrInvalidRating
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	recipe, ok := s.recipes[id]
	if !ok {
		return nil, common.ErrRecipeNotFound
	}
	recipe.Rating = rating
	s.recipes[id] = recipe
	return &recipe, nil
}

// SavePreferences 儲存使用者偏好
func (s *MemoryStore) SavePreferences(ctx context.Context, prefs *common.UserPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *prefs
	s.preferences = &cp
	return nil
}

// GetPreferences 取得使用者偏好
func (s *MemoryStore) GetPreferences(ctx context.Context) (*common.UserPreferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.preferences == nil {
		return &common.UserPreferences{}, nil
	}
	cp := *s.preferences
	return &cp, nil
}

// PushHistory 將食譜 ID 加入歷史（最新在前，上限 50 筆）
func (s *MemoryStore) PushHistory(ctx context.Context, recipeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 去除已存在的相同 ID
	filtered := s.history[:0]
	for _, id := range s.history {
		if id != recipeID {
			filtered = append(filtered, id)
		}
	}
	s.history = append([]string{recipeID}, filtered...)

	if len(s.history) > historyLimit {
		s.history = s.history[:historyLimit]
	}
	return nil
}

// GetHistory 取得歷史紀錄
func (s *MemoryStore) GetHistory(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out, nil
}

// Close 關閉儲存
func (s *MemoryStore) Close() error {
	return nil
}

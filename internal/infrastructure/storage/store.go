package storage

import (
	"context"

	"fridgechef/internal/infrastructure/config"
	"fridgechef/internal/pkg/common"
)

// 歷史紀錄上限（最新在前）
const historyLimit = 50

// Store 食譜與偏好持久化介面
// 四個邏輯鍵：食譜集合、使用者紀錄、偏好設定、最近食譜歷史
type Store interface {
	SaveRecipe(ctx context.Context, recipe *common.Recipe) error
	GetRecipe(ctx context.Context, id string) (*common.Recipe, error)
	ListRecipes(ctx context.Context) ([]common.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
	RateRecipe(ctx context.Context, id string, rating int) (*common.Recipe, error)

	SavePreferences(ctx context.Context, prefs *common.UserPreferences) error
	GetPreferences(ctx context.Context) (*common.UserPreferences, error)

	PushHistory(ctx context.Context, recipeID string) error
	GetHistory(ctx context.Context) ([]string, error)

	Close() error
}

// NewStore 依設定建立儲存實例
// Redis 停用時改用程序內記憶體儲存
func NewStore(cfg *config.Config) (Store, error) {
	if cfg.Redis.Enabled {
		return NewRedisStore(cfg)
	}
	return NewMemoryStore(), nil
}

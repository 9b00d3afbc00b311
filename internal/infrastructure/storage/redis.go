package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"fridgechef/internal/infrastructure/config"
	"fridgechef/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Redis 鍵名
const (
	keyRecipes     = "fridgechef:recipes"     // hash: id -> recipe JSON
	keyUser        = "fridgechef:user"        // string: user record JSON
	keyPreferences = "fridgechef:preferences" // string: preferences JSON
	keyHistory     = "fridgechef:history"     // list: recipe id，最新在前
)

// RedisStore Redis 持久化儲存
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 創建 Redis 儲存
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis 儲存已初始化",
		zap.String("addr", cfg.Redis.Addr),
		zap.Int("db", cfg.Redis.DB),
	)

	return &RedisStore{client: client}, nil
}

// SaveRecipe 儲存食譜
func (s *RedisStore) SaveRecipe(ctx context.Context, recipe *common.Recipe) error {
	data, err := json.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe: %w", err)
	}
	if err := s.client.HSet(ctx, keyRecipes, recipe.ID, data).Err(); err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}
	return nil
}

// GetRecipe 取得食譜
func (s *RedisStore) GetRecipe(ctx context.Context, id string) (*common.Recipe, error) {
	data, err := s.client.HGet(ctx, keyRecipes, id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, common.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	var recipe common.Recipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe: %w", err)
	}
	return &recipe, nil
}

// ListRecipes 列出所有食譜
func (s *RedisStore) ListRecipes(ctx context.Context) ([]common.Recipe, error) {
	entries, err := s.client.HGetAll(ctx, keyRecipes).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	recipes := make([]common.Recipe, 0, len(entries))
	for _, raw := range entries {
		var recipe common.Recipe
		if err := json.Unmarshal([]byte(raw), &recipe); err != nil {
			common.LogWarn("略過無法解析的食譜", zap.Error(err))
			continue
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

// DeleteRecipe 刪除食譜
func (s *RedisStore) DeleteRecipe(ctx context.Context, id string) error {
	removed, err := s.client.HDel(ctx, keyRecipes, id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if removed == 0 {
		return common.ErrRecipeNotFound
	}
	return nil
}

// RateRecipe 更新食譜評分（1..5）
func (s *RedisStore) RateRecipe(ctx context.Context, id string, rating int) (*common.Recipe, error) {
	if rating < 1 || rating > 5 {
		return nil, common.ErrInvalidRating
	}
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	recipe.Rating = rating
	if err := s.SaveRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// SavePreferences 儲存使用者偏好
func (s *RedisStore) SavePreferences(ctx context.Context, prefs *common.UserPreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := s.client.Set(ctx, keyPreferences, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// GetPreferences 取得使用者偏好
func (s *RedisStore) GetPreferences(ctx context.Context) (*common.UserPreferences, error) {
	data, err := s.client.Get(ctx, keyPreferences).Bytes()
	if err != nil {
		if err == redis.Nil {
			// 尚未設定偏好時回傳空值
			return &common.UserPreferences{}, nil
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	var prefs common.UserPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	return &prefs, nil
}

// PushHistory 將食譜 ID 加入歷史（最新在前，上限 50 筆）
func (s *RedisStore) PushHistory(ctx context.Context, recipeID string) error {
	pipe := s.client.TxPipeline()
	pipe.LRem(ctx, keyHistory, 0, recipeID)
	pipe.LPush(ctx, keyHistory, recipeID)
	pipe.LTrim(ctx, keyHistory, 0, historyLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push history: %w", err)
	}
	return nil
}

// GetHistory 取得歷史紀錄
func (s *RedisStore) GetHistory(ctx context.Context) ([]string, error) {
	ids, err := s.client.LRange(ctx, keyHistory, 0, historyLimit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return ids, nil
}

// Close 關閉儲存
func (s *RedisStore) Close() error {
	return s.client.Close()
}

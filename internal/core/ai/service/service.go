package service

import (
	"context"
	"strings"
	"time"

	"fridgechef/internal/core/ai/cache"
	"fridgechef/internal/core/ai/openrouter"
	"fridgechef/internal/core/ai/provider"
	"fridgechef/internal/infrastructure/config"
	"fridgechef/internal/pkg/common"
)

// Response AI 回應結構
type Response struct {
	Content  string
	CacheHit bool
}

// Service AI 服務
// 將供應商鏈與回應快取包成統一入口；供應商全數失敗時錯誤
// 由呼叫端決定回退（食譜生成落到規則引擎）
type Service struct {
	config       *config.Config
	textChain    *provider.Chain
	visionChain  *provider.Chain
	cacheManager *cache.CacheManager
}

// NewService 創建 AI 服務
func NewService(cfg *config.Config, cacheManager *cache.CacheManager) (*Service, error) {
	var textProviders, visionProviders []provider.Provider

	if cfg.OpenRouter.Enabled && cfg.OpenRouter.APIKey != "" {
		textProviders = append(textProviders, openrouter.NewClient(
			cfg.OpenRouter.APIKey,
			cfg.OpenRouter.Model,
			cfg.OpenRouter.MaxTokens,
			cfg.OpenRouter.Timeout,
		))
	}
	if cfg.Vision.Enabled && cfg.OpenRouter.APIKey != "" {
		visionProviders = append(visionProviders, openrouter.NewClient(
			cfg.OpenRouter.APIKey,
			cfg.Vision.Model,
			cfg.OpenRouter.MaxTokens,
			cfg.Vision.Timeout,
		))
	}

	return &Service{
		config:       cfg,
		textChain:    provider.NewChain(textProviders...),
		visionChain:  provider.NewChain(visionProviders...),
		cacheManager: cacheManager,
	}, nil
}

// ProcessRequest 統一對外方法
// imageData 不為空時走視覺供應商鏈
func (s *Service) ProcessRequest(ctx context.Context, prompt string, imageData string) (*Response, error) {
	// 統一 prompt 格式，去除多餘空白，確保快取 key 一致
	prompt = strings.TrimSpace(prompt)
	prompt = strings.Join(strings.Fields(prompt), " ")

	// 檢查緩存
	if s.cacheManager != nil {
		if val, err := s.cacheManager.Get(ctx, prompt, imageData); err == nil && val != "" {
			return &Response{Content: val, CacheHit: true}, nil
		}
	}

	chain := s.textChain
	if imageData != "" {
		chain = s.visionChain
	}

	start := time.Now()
	content, err := chain.Generate(ctx, prompt, imageData)
	common.LogAICall(prompt, time.Since(start), err, "")
	if err != nil {
		return nil, err
	}

	if s.cacheManager != nil {
		_ = s.cacheManager.Set(ctx, prompt, imageData, content)
	}

	return &Response{Content: content}, nil
}

// Close 關閉服務
func (s *Service) Close() error {
	if err := s.textChain.Close(); err != nil {
		return err
	}
	return s.visionChain.Close()
}

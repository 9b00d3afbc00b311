package provider

import (
	"context"
	"errors"

	"fridgechef/internal/pkg/common"

	"go.uber.org/zap"
)

// ErrNoProvider 沒有可用的供應商
var ErrNoProvider = errors.New("no AI provider available")

// Provider 定義 AI 供應商介面
// 每個供應商都是可失敗的策略：成功即回傳，失敗則換下一個
type Provider interface {
	// Name 供應商名稱（記錄用）
	Name() string

	// Generate 生成回應；imageData 為空字串時為純文字請求
	Generate(ctx context.Context, prompt string, imageData string) (string, error)

	// Close 關閉供應商連接
	Close() error
}

// Chain 依序嘗試的供應商鏈
// 超時與錯誤一視同仁：落到下一個供應商
type Chain struct {
	providers []Provider
}

// NewChain 創建供應商鏈
func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// Generate 依序嘗試每個供應商，全部失敗時回傳最後的錯誤
func (c *Chain) Generate(ctx context.Context, prompt string, imageData string) (string, error) {
	if len(c.providers) == 0 {
		return "", ErrNoProvider
	}

	var lastErr error
	for _, p := range c.providers {
		content, err := p.Generate(ctx, prompt, imageData)
		if err == nil {
			return content, nil
		}
		lastErr = err
		common.LogWarn("供應商失敗，嘗試下一個",
			zap.String("provider", p.Name()),
			zap.Error(err),
		)
	}
	return "", lastErr
}

// Close 關閉所有供應商
func (c *Chain) Close() error {
	var lastErr error
	for _, p := range c.providers {
		if err := p.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

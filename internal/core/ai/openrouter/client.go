package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fridgechef/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const baseURL = "https://openrouter.ai/api/v1"

// Client OpenRouter API 客戶端
// 同一個 API Key 可建立文字與視覺兩種模型的客戶端
type Client struct {
	client    *resty.Client
	model     string
	maxTokens int
}

// NewClient 創建 OpenRouter 客戶端
func NewClient(apiKey, model string, maxTokens int, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey)).
		SetHeader("HTTP-Referer", "https://fridgechef.app").
		SetHeader("X-Title", "FridgeChef")

	return &Client{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}
}

// Name 供應商名稱
func (c *Client) Name() string {
	return "openrouter:" + c.model
}

// Generate 生成回應；imageData 不為空時以多模態訊息送出
func (c *Client) Generate(ctx context.Context, prompt string, imageData string) (string, error) {
	// 簡化 prompt：去除多餘換行、前後空白
	simplePrompt := strings.TrimSpace(prompt)

	msgContent := []map[string]interface{}{
		{
			"type": "text",
			"text": simplePrompt,
		},
	}
	if imageData != "" {
		url := imageData
		if !strings.HasPrefix(imageData, "data:image/") {
			url = fmt.Sprintf("data:image/jpeg;base64,%s", imageData)
		}
		msgContent = append(msgContent, map[string]interface{}{
			"type": "image_url",
			"image_url": map[string]string{
				"url": url,
			},
		})
	}

	// 構建請求
	req := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": msgContent,
			},
		},
		"max_tokens": c.maxTokens,
	}

	common.LogDebug("發送 OpenRouter 請求",
		zap.String("model", c.model),
		zap.Int("prompt_length", len(simplePrompt)),
		zap.Bool("has_image", imageData != ""),
	)

	// 發送請求
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")

	if err != nil {
		return "", fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("OpenRouter API returned error (status %d): %s", resp.StatusCode(), resp.String())
	}

	// 解析回應
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenRouter response")
	}

	content := result.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty content in OpenRouter response")
	}

	return content, nil
}

// Close 關閉客戶端
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}

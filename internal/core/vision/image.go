package vision

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/webp"

	"fridgechef/internal/pkg/common"
)

// ValidateImage 驗證 base64 圖片並回傳去除 data URI 前綴後的內容
// 支援 jpeg、png、webp；超過 maxBytes 或無法解碼時回傳錯誤
func ValidateImage(data string, maxBytes int64) (string, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return "", common.ErrInvalidImageFormat
	}

	// 去除 data:image/...;base64, 前綴
	if strings.HasPrefix(data, "data:") {
		idx := strings.Index(data, ",")
		if idx == -1 {
			return "", common.ErrInvalidImageFormat
		}
		data = data[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", common.ErrInvalidImageFormat
	}

	if int64(len(raw)) > maxBytes {
		return "", common.ErrInvalidImageSize
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return "", common.ErrInvalidImageFormat
	}
	switch format {
	case "jpeg", "png", "webp":
		return data, nil
	default:
		return "", common.ErrInvalidImageFormat
	}
}

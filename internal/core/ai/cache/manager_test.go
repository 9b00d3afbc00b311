package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"fridgechef/internal/infrastructure/config"
	"fridgechef/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func newTestConfig(maxSize int, ttl time.Duration) *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			MaxSize:         maxSize,
			TTL:             ttl,
			CleanupInterval: time.Minute,
		},
	}
}

func TestManagerDisabledReturnsNil(t *testing.T) {
	cfg := &config.Config{}
	m := NewManager(cfg)
	assert.Nil(t, m)

	// nil 管理器的方法可以安全呼叫
	_, err := m.Get(context.Background(), "p", "")
	assert.Error(t, err)
	assert.NoError(t, m.Set(context.Background(), "p", "", "v"))
	assert.NoError(t, m.Close())
}

func TestManagerSetAndGet(t *testing.T) {
	m := NewManager(newTestConfig(10, time.Minute))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "prompt", "", "response"))

	val, err := m.Get(ctx, "prompt", "")
	require.NoError(t, err)
	assert.Equal(t, "response", val)
}

func TestManagerMiss(t *testing.T) {
	m := NewManager(newTestConfig(10, time.Minute))
	require.NotNil(t, m)
	defer m.Close()

	_, err := m.Get(context.Background(), "unknown", "")
	assert.Error(t, err)
}

func TestManagerMultimodalKeysAreDistinct(t *testing.T) {
	m := NewManager(newTestConfig(10, time.Minute))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "prompt", "", "text-only"))
	require.NoError(t, m.Set(ctx, "prompt", "imagedata", "with-image"))

	val, err := m.Get(ctx, "prompt", "")
	require.NoError(t, err)
	assert.Equal(t, "text-only", val)

	val, err = m.Get(ctx, "prompt", "imagedata")
	require.NoError(t, err)
	assert.Equal(t, "with-image", val)
}

func TestManagerExpiry(t *testing.T) {
	m := NewManager(newTestConfig(10, 10*time.Millisecond))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "prompt", "", "response"))

	time.Sleep(20 * time.Millisecond)

	_, err := m.Get(ctx, "prompt", "")
	assert.Error(t, err)
}

func TestManagerLRUEviction(t *testing.T) {
	m := NewManager(newTestConfig(2, time.Minute))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "a", "", "1"))
	require.NoError(t, m.Set(ctx, "b", "", "2"))

	// a 被多次訪問，b 成為 LRU 淘汰對象
	_, err := m.Get(ctx, "a", "")
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "c", "", "3"))

	_, err = m.Get(ctx, "a", "")
	assert.NoError(t, err)
	_, err = m.Get(ctx, "b", "")
	assert.Error(t, err)
}

func TestManagerStats(t *testing.T) {
	m := NewManager(newTestConfig(10, time.Minute))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "prompt", "", "response"))
	_, _ = m.Get(ctx, "prompt", "")
	_, _ = m.Get(ctx, "missing", "")

	stats := m.GetStats()
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.Equal(t, 1, stats["size"])
}

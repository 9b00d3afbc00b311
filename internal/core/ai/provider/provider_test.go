package provider

import (
	"context"
	"errors"
	"os"
	"testing"

	"fridgechef/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

type fakeProvider struct {
	name    string
	content string
	err     error
	calls   int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(ctx context.Context, prompt string, imageData string) (string, error) {
	f.calls++
	return f.content, f.err
}

func (f *fakeProvider) Close() error { return nil }

func TestChainEmptyReturnsErrNoProvider(t *testing.T) {
	chain := NewChain()

	_, err := chain.Generate(context.Background(), "prompt", "")
	assert.Equal(t, ErrNoProvider, err)
}

func TestChainFirstSuccessWins(t *testing.T) {
	first := &fakeProvider{name: "first", content: "result"}
	second := &fakeProvider{name: "second", content: "unused"}
	chain := NewChain(first, second)

	content, err := chain.Generate(context.Background(), "prompt", "")
	require.NoError(t, err)
	assert.Equal(t, "result", content)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestChainFallsThroughOnFailure(t *testing.T) {
	first := &fakeProvider{name: "first", err: errors.New("boom")}
	second := &fakeProvider{name: "second", content: "fallback"}
	chain := NewChain(first, second)

	content, err := chain.Generate(context.Background(), "prompt", "")
	require.NoError(t, err)
	assert.Equal(t, "fallback", content)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestChainAllFailReturnsLastError(t *testing.T) {
	lastErr := errors.New("last failure")
	chain := NewChain(
		&fakeProvider{name: "first", err: errors.New("first failure")},
		&fakeProvider{name: "second", err: lastErr},
	)

	_, err := chain.Generate(context.Background(), "prompt", "")
	assert.Equal(t, lastErr, err)
}

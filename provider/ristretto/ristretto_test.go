package ristretto

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pr "github.com/unkn0wn-root/localstorage/provider"
	"github.com/unkn0wn-root/localstorage/provider/providertest"
)

func newTestProvider(t *testing.T, maxCost int64) *Provider {
	t.Helper()
	p, err := New(Config{NumCounters: 1000, MaxCost: maxCost, BufferItems: 64})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p
}

func TestConformance(t *testing.T) {
	providertest.Run(t, func(t *testing.T) pr.Provider { return newTestProvider(t, 1<<20) })
}

func TestSetRejectedAboveMaxCost(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t, 16)

	err := p.SetItem(ctx, "big", strings.Repeat("x", 64))
	assert.ErrorIs(t, err, ErrRejected)

	_, ok, err := p.GetItem(ctx, "big")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := p.Length(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestLengthDropsEvictedKeys(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t, 1<<20)
	require.NoError(t, p.SetItem(ctx, "a", "1"))
	require.NoError(t, p.SetItem(ctx, "b", "2"))

	// evict behind the provider's back
	p.c.Del("a")
	p.c.Wait()

	n, err := p.Length(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	k, ok, err := p.Key(ctx, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b", k)
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

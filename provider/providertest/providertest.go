// Package providertest is a conformance suite for provider.Provider
// implementations.
package providertest

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pr "github.com/unkn0wn-root/localstorage/provider"
)

// Factory returns an empty provider. Register cleanup on t.
type Factory func(t *testing.T) pr.Provider

// Run executes every contract test against providers built by newProvider.
func Run(t *testing.T, newProvider Factory) {
	t.Helper()
	tests := []struct {
		name string
		fn   func(*testing.T, pr.Provider)
	}{
		{"MissOnEmpty", testMissOnEmpty},
		{"Transparent", testTransparent},
		{"LastWriteWins", testLastWriteWins},
		{"RemoveItem", testRemoveItem},
		{"Clear", testClear},
		{"KeyEnumeration", testKeyEnumeration},
		{"KeyOutOfRange", testKeyOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.fn(t, newProvider(t))
		})
	}
}

func testMissOnEmpty(t *testing.T, p pr.Provider) {
	ctx := context.Background()
	v, ok, err := p.GetItem(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", v)

	n, err := p.Length(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func testTransparent(t *testing.T, p pr.Provider) {
	ctx := context.Background()
	values := map[string]string{
		"json":    `{"id":2,"name":"Jane Smith"}`,
		"broken":  `[{ id: 5, name: "Jane Smith"}]`,
		"empty":   "",
		"unicode": "zażółć gęślą jaźń ☃",
		"spaces":  "  padded  ",
	}
	for k, v := range values {
		require.NoError(t, p.SetItem(ctx, k, v))
	}
	for k, want := range values {
		got, ok, err := p.GetItem(ctx, k)
		require.NoError(t, err)
		require.True(t, ok, "key %q missing", k)
		assert.Equal(t, want, got, "key %q", k)
	}
}

func testLastWriteWins(t *testing.T, p pr.Provider) {
	ctx := context.Background()
	require.NoError(t, p.SetItem(ctx, "k", "one"))
	require.NoError(t, p.SetItem(ctx, "k", "two"))

	got, ok, err := p.GetItem(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "two", got)

	n, err := p.Length(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func testRemoveItem(t *testing.T, p pr.Provider) {
	ctx := context.Background()
	require.NoError(t, p.SetItem(ctx, "a", "1"))
	require.NoError(t, p.SetItem(ctx, "b", "2"))

	require.NoError(t, p.RemoveItem(ctx, "a"))
	require.NoError(t, p.RemoveItem(ctx, "missing"))

	_, ok, err := p.GetItem(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	got, ok, err := p.GetItem(ctx, "b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", got)

	n, err := p.Length(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func testClear(t *testing.T, p pr.Provider) {
	ctx := context.Background()
	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, p.SetItem(ctx, k, k))
	}
	require.NoError(t, p.Clear(ctx))

	n, err := p.Length(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, ok, err := p.GetItem(ctx, "b")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.SetItem(ctx, "after", "x"))
	n, err = p.Length(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func testKeyEnumeration(t *testing.T, p pr.Provider) {
	ctx := context.Background()
	want := []string{"alpha", "beta", "gamma", "delta"}
	for _, k := range want {
		require.NoError(t, p.SetItem(ctx, k, "v"))
	}

	n, err := p.Length(ctx)
	require.NoError(t, err)
	require.Equal(t, len(want), n)

	got := make([]string, 0, n)
	for i := 0; i < n; i++ {
		k, ok, err := p.Key(ctx, i)
		require.NoError(t, err)
		require.True(t, ok, "index %d", i)
		got = append(got, k)

		again, _, err := p.Key(ctx, i)
		require.NoError(t, err)
		assert.Equal(t, k, again, "index %d not stable", i)
	}
	sort.Strings(got)
	sorted := append([]string(nil), want...)
	sort.Strings(sorted)
	assert.Equal(t, sorted, got)
}

func testKeyOutOfRange(t *testing.T, p pr.Provider) {
	ctx := context.Background()
	require.NoError(t, p.SetItem(ctx, "only", "v"))

	for _, i := range []int{-1, 1, 100} {
		k, ok, err := p.Key(ctx, i)
		require.NoError(t, err)
		assert.False(t, ok, "index %d", i)
		assert.Equal(t, "", k)
	}
}

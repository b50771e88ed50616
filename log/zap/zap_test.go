package zap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/localstorage"
	"github.com/unkn0wn-root/localstorage/provider/memory"
)

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := ZapLogger{L: zap.New(core)}

	l.Warn("backend slow", localstorage.Fields{"key": "k", "err": errors.New("timeout")})
	l.Info("no fields", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "backend slow", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "k", ctx["key"])
	assert.Equal(t, "timeout", ctx["err"])
	assert.Empty(t, entries[1].Context)
}

func TestZapLoggerWithService(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.DebugLevel)
	p := memory.New()
	svc, err := localstorage.New(localstorage.Options{
		Provider: p,
		Logger:   ZapLogger{L: zap.New(core)},
	})
	require.NoError(t, err)

	require.NoError(t, p.SetItem(ctx, "legacy", "not json"))
	got, err := localstorage.GetItem[string](ctx, svc, "legacy")
	require.NoError(t, err)
	assert.Equal(t, "not json", got)
	assert.Equal(t, 1, logs.FilterField(zap.String("key", "legacy")).Len())
}

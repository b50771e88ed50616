package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/localstorage"
)

func TestLogrusLogger(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := LogrusLogger{E: base.WithField("type", "localstorage")}

	l.Debug("write canceled by hook", localstorage.Fields{"key": "k"})
	l.Error("boom", nil)

	require.Len(t, hook.AllEntries(), 2)
	first := hook.AllEntries()[0]
	assert.Equal(t, logrus.DebugLevel, first.Level)
	assert.Equal(t, "k", first.Data["key"])
	assert.Equal(t, "localstorage", first.Data["type"])
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

package zap

import (
	"go.uber.org/zap"

	"github.com/unkn0wn-root/localstorage"
)

var _ localstorage.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

func (z ZapLogger) Debug(msg string, f localstorage.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f localstorage.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f localstorage.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f localstorage.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f localstorage.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, v))
	}
	return out
}

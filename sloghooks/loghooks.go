package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/localstorage"
	"github.com/unkn0wn-root/localstorage/internal/util"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	ChangedEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

// Hooks logs change events. It never cancels a write.
type Hooks struct {
	l    *slog.Logger
	opts Options

	changedCtr atomic.Uint64
}

var _ localstorage.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	return util.RedactKey(k)
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Changing(e *localstorage.ChangingEvent) {
	if h.l == nil {
		return
	}
	h.l.Debug("localstorage.changing",
		"key", h.redact(e.Key),
		"had_old", e.HadOld)
}

func (h *Hooks) Changed(e localstorage.ChangedEvent) {
	if h.l == nil || !sample(h.opts.ChangedEvery, &h.changedCtr) {
		return
	}
	h.l.Info("localstorage.changed",
		"key", h.redact(e.Key),
		"had_old", e.HadOld,
		"old_len", len(e.OldValue))
}

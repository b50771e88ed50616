// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{ChangedEvery: 10})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	svc, _ := localstorage.New(localstorage.Options{
//	    Provider: provider,
//	    Hooks:    hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/localstorage"
)

// Hooks delivers Changed events on background workers and drops them when
// the queue is full. Changing stays synchronous so the inner hook can still
// cancel writes.
//
// ChangedEvent.NewValue is the caller's value, not a copy, and the inner
// hook reads it after SetItem has returned. Callers that pass maps, slices
// or pointers must not mutate them afterwards if the inner hook inspects
// NewValue; store an immutable value or copy it before writing.
type Hooks struct {
	inner localstorage.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ localstorage.Hooks = (*Hooks)(nil)

func New(inner localstorage.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Hooks must not be used
// after Close.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) Changing(e *localstorage.ChangingEvent) { h.inner.Changing(e) }
func (h *Hooks) Changed(e localstorage.ChangedEvent) {
	h.try(func() { h.inner.Changed(e) })
}

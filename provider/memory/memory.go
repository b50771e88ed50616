// Package memory is an in-process provider backed by a map. Nothing is
// persisted beyond the process lifetime; use it for tests and ephemeral
// state.
package memory

import (
	"context"
	"sync"

	pr "github.com/unkn0wn-root/localstorage/provider"
)

// Provider keeps entries in insertion order so Key(i) is deterministic.
// Overwriting a key keeps its original position.
type Provider struct {
	mu    sync.RWMutex
	items map[string]string
	order []string
}

var _ pr.Provider = (*Provider)(nil)

func New() *Provider {
	return &Provider{items: make(map[string]string)}
}

// NewWithItems returns a provider seeded with items. Keys are inserted in
// the order given by keys; items missing from keys are ignored.
func NewWithItems(keys []string, items map[string]string) *Provider {
	p := New()
	for _, k := range keys {
		if v, ok := items[k]; ok {
			p.set(k, v)
		}
	}
	return p
}

func (p *Provider) GetItem(_ context.Context, key string) (string, bool, error) {
	p.mu.RLock()
	v, ok := p.items[key]
	p.mu.RUnlock()
	return v, ok, nil
}

func (p *Provider) SetItem(_ context.Context, key, text string) error {
	p.mu.Lock()
	p.set(key, text)
	p.mu.Unlock()
	return nil
}

func (p *Provider) set(key, text string) {
	if _, ok := p.items[key]; !ok {
		p.order = append(p.order, key)
	}
	p.items[key] = text
}

func (p *Provider) RemoveItem(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.items[key]; !ok {
		return nil
	}
	delete(p.items, key)
	for i, k := range p.order {
		if k == key {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return nil
}

func (p *Provider) Clear(_ context.Context) error {
	p.mu.Lock()
	p.items = make(map[string]string)
	p.order = nil
	p.mu.Unlock()
	return nil
}

func (p *Provider) Length(_ context.Context) (int, error) {
	p.mu.RLock()
	n := len(p.items)
	p.mu.RUnlock()
	return n, nil
}

func (p *Provider) Key(_ context.Context, index int) (string, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if index < 0 || index >= len(p.order) {
		return "", false, nil
	}
	return p.order[index], true, nil
}

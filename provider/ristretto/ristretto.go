package ristretto

import (
	"context"
	"errors"
	"sort"
	"sync"

	rc "github.com/dgraph-io/ristretto"

	pr "github.com/unkn0wn-root/localstorage/provider"
)

// ErrRejected is returned by SetItem when the cache refused the entry
// (admission policy or cost above MaxCost).
var ErrRejected = errors.New("ristretto: entry rejected")

// Provider is a bounded in-memory store. Entries can be evicted under cost
// pressure; evicted keys drop out of Length and Key the next time they are
// consulted. Ristretto has no key enumeration, so the provider keeps its own
// key index.
type Provider struct {
	c    *rc.Cache
	cost func(key, text string) int64

	mu   sync.Mutex
	keys map[string]struct{}
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
	// Cost of an entry; nil => len(key)+len(text), minimum 1.
	Cost func(key, text string) int64
}

func New(cfg Config) (*Provider, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters:        cfg.NumCounters,
		MaxCost:            cfg.MaxCost,
		BufferItems:        cfg.BufferItems,
		Metrics:            cfg.Metrics,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	cost := cfg.Cost
	if cost == nil {
		cost = defaultCost
	}
	return &Provider{c: c, cost: cost, keys: make(map[string]struct{})}, nil
}

func defaultCost(key, text string) int64 {
	if n := int64(len(key) + len(text)); n > 0 {
		return n
	}
	return 1
}

func (p *Provider) GetItem(_ context.Context, key string) (string, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		// self-heal: drop unexpected entry shape
		p.c.Del(key)
		return "", false, nil
	}
	return s, true, nil
}

// SetItem waits for the write to be applied so a following GetItem observes
// it, then verifies the entry was admitted.
func (p *Provider) SetItem(_ context.Context, key, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.c.Set(key, text, p.cost(key, text)) {
		return ErrRejected
	}
	p.c.Wait()
	if _, ok := p.c.Get(key); !ok {
		delete(p.keys, key)
		return ErrRejected
	}
	p.keys[key] = struct{}{}
	return nil
}

func (p *Provider) RemoveItem(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.c.Del(key)
	p.c.Wait()
	delete(p.keys, key)
	return nil
}

func (p *Provider) Clear(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.c.Clear()
	p.keys = make(map[string]struct{})
	return nil
}

func (p *Provider) Length(_ context.Context) (int, error) {
	return len(p.liveKeys()), nil
}

// Key orders live keys lexically.
func (p *Provider) Key(_ context.Context, index int) (string, bool, error) {
	keys := p.liveKeys()
	if index < 0 || index >= len(keys) {
		return "", false, nil
	}
	return keys[index], true, nil
}

// liveKeys prunes index entries the cache has evicted and returns the rest
// sorted.
func (p *Provider) liveKeys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.keys))
	for k := range p.keys {
		if _, ok := p.c.Get(k); !ok {
			delete(p.keys, k)
			continue
		}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (p *Provider) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Helper to expose metrics if desired by the application (not part of provider.Provider).
func (p *Provider) Metrics() *rc.Metrics { return p.c.Metrics }

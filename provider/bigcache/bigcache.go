package bigcache

import (
	"context"
	"errors"
	"sort"
	"time"

	bc "github.com/allegro/bigcache/v3"

	pr "github.com/unkn0wn-root/localstorage/provider"
)

// noExpiry stands in for "keep forever"; bigcache evicts anything older than
// its LifeWindow and has no per-entry TTL.
const noExpiry = 100 * 365 * 24 * time.Hour

type Provider struct {
	c *bc.BigCache
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	LifeWindow         time.Duration // 0 = entries never expire
	CleanWindow        time.Duration // 0 = no background cleanup
	Shards             int           // power of two; 0 = bigcache default
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*Provider, error) {
	life := cfg.LifeWindow
	if life <= 0 {
		life = noExpiry
	}
	conf := bc.DefaultConfig(life)
	conf.CleanWindow = cfg.CleanWindow
	if cfg.Shards > 0 {
		conf.Shards = cfg.Shards
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}
	return &Provider{c: c}, nil
}

func (p *Provider) GetItem(_ context.Context, key string) (string, bool, error) {
	b, err := p.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

func (p *Provider) SetItem(_ context.Context, key, text string) error {
	return p.c.Set(key, []byte(text))
}

func (p *Provider) RemoveItem(_ context.Context, key string) error {
	err := p.c.Delete(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil
	}
	return err
}

func (p *Provider) Clear(_ context.Context) error {
	return p.c.Reset()
}

func (p *Provider) Length(_ context.Context) (int, error) {
	return p.c.Len(), nil
}

// Key orders keys lexically; bigcache iterates shards in hash order.
func (p *Provider) Key(_ context.Context, index int) (string, bool, error) {
	if index < 0 {
		return "", false, nil
	}
	keys, err := p.keys()
	if err != nil {
		return "", false, err
	}
	if index >= len(keys) {
		return "", false, nil
	}
	return keys[index], true, nil
}

func (p *Provider) keys() ([]string, error) {
	keys := make([]string, 0, p.c.Len())
	it := p.c.Iterator()
	for it.SetNext() {
		e, err := it.Value()
		if err != nil {
			return nil, err
		}
		keys = append(keys, e.Key())
	}
	sort.Strings(keys)
	return keys, nil
}

func (p *Provider) Close(_ context.Context) error {
	return p.c.Close()
}

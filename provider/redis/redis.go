package redis

import (
	"context"
	"errors"
	"sort"

	goredis "github.com/redis/go-redis/v9"

	pr "github.com/unkn0wn-root/localstorage/provider"
)

var ErrNilClient = errors.New("redis provider: nil client")

const defaultHash = "localstorage"

// Redis keeps one storage area in a single Redis hash, so Clear and Length
// are one command each and never touch unrelated keys.
type Redis struct {
	rdb         goredis.UniversalClient
	hash        string
	closeClient bool
}

var _ pr.Provider = (*Redis)(nil)

type Config struct {
	Client      goredis.UniversalClient
	CloseClient bool   // set true only if this provider exclusively owns the client
	Hash        string // redis key of the hash holding the entries; "" => "localstorage"
}

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	hash := cfg.Hash
	if hash == "" {
		hash = defaultHash
	}
	return &Redis{rdb: cfg.Client, hash: hash, closeClient: cfg.CloseClient}, nil
}

func (p *Redis) GetItem(ctx context.Context, key string) (string, bool, error) {
	s, err := p.rdb.HGet(ctx, p.hash, key).Result()
	if err == goredis.Nil {
		return "", false, nil // miss
	}
	if err != nil {
		return "", false, err // transport/server error
	}
	return s, true, nil
}

func (p *Redis) SetItem(ctx context.Context, key, text string) error {
	return p.rdb.HSet(ctx, p.hash, key, text).Err()
}

func (p *Redis) RemoveItem(ctx context.Context, key string) error {
	return p.rdb.HDel(ctx, p.hash, key).Err()
}

func (p *Redis) Clear(ctx context.Context) error {
	return p.rdb.Del(ctx, p.hash).Err()
}

func (p *Redis) Length(ctx context.Context) (int, error) {
	n, err := p.rdb.HLen(ctx, p.hash).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Key orders fields lexically; Redis hash field order is unspecified.
func (p *Redis) Key(ctx context.Context, index int) (string, bool, error) {
	if index < 0 {
		return "", false, nil
	}
	keys, err := p.rdb.HKeys(ctx, p.hash).Result()
	if err != nil {
		return "", false, err
	}
	if index >= len(keys) {
		return "", false, nil
	}
	sort.Strings(keys)
	return keys[index], true, nil
}

// Close releases the underlying redis client only when this provider owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (p *Redis) Close(context.Context) error {
	if p.closeClient {
		if err := p.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}

// Package bolt is a file-backed provider on bbolt. Entries survive process
// restarts; each Provider owns one bucket, so several stores can share a
// database file.
package bolt

import (
	"bytes"
	"context"
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	pr "github.com/unkn0wn-root/localstorage/provider"
)

const defaultBucket = "default"

var ErrNilDB = errors.New("bolt provider: nil db")

type Provider struct {
	db      *bolt.DB
	bucket  []byte
	closeDB bool
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	// Path of the database file, e.g. /var/lib/app/storage.db. Ignored when
	// DB is set.
	Path string
	// DB is an already open database. The provider closes it only when
	// CloseDB is true.
	DB      *bolt.DB
	CloseDB bool
	// Bucket namespaces the entries; "" => "default".
	Bucket string
	// Timeout waiting for the file lock on open; 0 => 1s.
	Timeout time.Duration
}

func New(cfg Config) (*Provider, error) {
	p := &Provider{db: cfg.DB, closeDB: cfg.CloseDB, bucket: []byte(defaultBucket)}
	if cfg.Bucket != "" {
		p.bucket = []byte(cfg.Bucket)
	}
	if p.db == nil {
		if cfg.Path == "" {
			return nil, ErrNilDB
		}
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = time.Second
		}
		db, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: timeout})
		if err != nil {
			return nil, err
		}
		p.db = db
		p.closeDB = true
	}

	err := p.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(p.bucket)
		return err
	})
	if err != nil {
		if p.closeDB {
			_ = p.db.Close()
		}
		return nil, err
	}
	return p, nil
}

func (p *Provider) GetItem(_ context.Context, key string) (string, bool, error) {
	var (
		text  string
		found bool
	)
	err := p.db.View(func(tx *bolt.Tx) error {
		// Cursor seek tells an empty value apart from a missing key.
		k, v := tx.Bucket(p.bucket).Cursor().Seek([]byte(key))
		if k != nil && bytes.Equal(k, []byte(key)) {
			text, found = string(v), true
		}
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return text, found, nil
}

func (p *Provider) SetItem(_ context.Context, key, text string) error {
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(p.bucket).Put([]byte(key), []byte(text))
	})
}

func (p *Provider) RemoveItem(_ context.Context, key string) error {
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(p.bucket).Delete([]byte(key))
	})
}

func (p *Provider) Clear(_ context.Context) error {
	return p.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(p.bucket); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		_, err := tx.CreateBucket(p.bucket)
		return err
	})
}

func (p *Provider) Length(_ context.Context) (int, error) {
	var n int
	err := p.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(p.bucket).Stats().KeyN
		return nil
	})
	return n, err
}

// Key walks the bucket in byte order of keys.
func (p *Provider) Key(_ context.Context, index int) (string, bool, error) {
	if index < 0 {
		return "", false, nil
	}
	var (
		key   string
		found bool
	)
	err := p.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(p.bucket).Cursor()
		i := 0
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			if i == index {
				key, found = string(k), true
				return nil
			}
			i++
		}
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return key, found, nil
}

// Close releases the database only when this provider owns it.
func (p *Provider) Close(context.Context) error {
	if p.closeDB {
		return p.db.Close()
	}
	return nil
}

package dict

import (
	"caesar/internal/ctxlog"
	"caesar/internal/db"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Store persists parsed word lists between runs.
type Store interface {
	Get(path string, size int64, modTime time.Time) (db.Entry, bool, error)
	Put(path string, entry db.Entry) error
}

type identity struct {
	path    string
	size    int64
	modTime time.Time
}

func (id identity) String() string {
	return fmt.Sprintf("%s@%d/%d", id.path, id.size, id.modTime.UnixNano())
}

// Cache loads each version of a word list once and shares the result.
// It is safe for concurrent use.
type Cache struct {
	store Store
	group singleflight.Group

	mx      sync.RWMutex
	entries map[identity]Dictionary
}

// NewCache returns a cache. store may be nil.
func NewCache(store Store) *Cache {
	return &Cache{
		store:   store,
		entries: map[identity]Dictionary{},
	}
}

func (c *Cache) get(id identity) (Dictionary, bool) {
	c.mx.RLock()
	defer c.mx.RUnlock()
	d, ok := c.entries[id]
	return d, ok
}

func (c *Cache) put(id identity, d Dictionary) {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.entries[id] = d
}

// Open loads the dictionary for s with the same failure policy as Source.Open.
func (c *Cache) Open(ctx context.Context, s Source) (Dictionary, bool, error) {
	path := s.path()

	id, err := stat(path)
	if err != nil {
		if s.Explicit {
			return Dictionary{}, false, fmt.Errorf("dict: %w: %w", ErrNotFound, err)
		}
		ctxlog.Get(ctx).Debug("default dictionary unavailable", "path", path, "error", err)
		return Dictionary{}, false, nil
	}

	d, err := c.load(ctx, id)
	if err != nil {
		if s.Explicit {
			return Dictionary{}, false, err
		}
		ctxlog.Get(ctx).Debug("default dictionary unavailable", "path", path, "error", err)
		return Dictionary{}, false, nil
	}
	return d, true, nil
}

func stat(path string) (identity, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return identity{}, err
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return identity{}, err
	}
	if fi.IsDir() {
		return identity{}, fmt.Errorf("%q is a directory", abs)
	}
	return identity{path: abs, size: fi.Size(), modTime: fi.ModTime()}, nil
}

func (c *Cache) load(ctx context.Context, id identity) (Dictionary, error) {
	if d, ok := c.get(id); ok {
		return d, nil
	}

	v, err, _ := c.group.Do(id.String(), func() (any, error) {
		if d, ok := c.get(id); ok {
			return d, nil
		}

		logger := ctxlog.Get(ctx).With("path", id.path)

		if c.store != nil {
			entry, ok, err := c.store.Get(id.path, id.size, id.modTime)
			if err != nil {
				logger.Warn("dictionary store lookup failed", "error", err)
			} else if ok {
				logger.Debug("dictionary loaded from store", "words", len(entry.Words))
				d := New(entry.Words...)
				c.put(id, d)
				return d, nil
			}
		}

		d, err := readFile(ctx, id.path)
		if err != nil {
			return nil, err
		}
		logger.Debug("dictionary parsed", "words", d.Len())
		c.put(id, d)

		if c.store != nil {
			err := c.store.Put(id.path, db.Entry{
				Size:     id.size,
				ModTime:  id.modTime,
				Words:    d.Words(),
				LoadedAt: time.Now(),
			})
			if err != nil {
				logger.Warn("dictionary store update failed", "error", err)
			}
		}
		return d, nil
	})
	if err != nil {
		return Dictionary{}, err
	}
	return v.(Dictionary), nil
}

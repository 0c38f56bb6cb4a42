// Package db stores parsed word lists in a BoltDB file so they can be reused across runs.
package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var (
	bucketDictionaries = []byte("dictionaries")
)

type Config struct {
	File    string        `yaml:"file"`
	Timeout time.Duration `yaml:"timeout"`
}

type DB struct {
	bolt *bbolt.DB
}

func Open(config Config) *DB {
	if config.File == "" {
		panic("db: file is required")
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	err := os.MkdirAll(filepath.Dir(config.File), 0755)
	if err != nil {
		panic(fmt.Errorf("db: create db dir: %w", err))
	}

	b, err := bbolt.Open(config.File, 0600, &bbolt.Options{
		Timeout: config.Timeout,
	})
	if err != nil {
		panic(fmt.Errorf("db: open bbolt db: %w", err))
	}

	err = b.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDictionaries)
		if err != nil {
			return fmt.Errorf("create bucket %q: %w", bucketDictionaries, err)
		}
		return nil
	})
	if err != nil {
		b.Close()
		panic(fmt.Errorf("db: initialize buckets: %w", err))
	}

	return &DB{bolt: b}
}

func (d *DB) Close() error {
	err := d.bolt.Close()
	if err != nil {
		return fmt.Errorf("db: close bbolt db: %w", err)
	}
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func (d *DB) Closer() io.Closer {
	return closerFunc(d.Close)
}

// Entry is a word list parsed from the file at its key.
// Size and ModTime identify the version of the file it was parsed from.
type Entry struct {
	Size     int64     `json:"size"`
	ModTime  time.Time `json:"mod_time"`
	Words    []string  `json:"words"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Fresh reports whether the entry was parsed from a file with the given size and mtime.
func (e Entry) Fresh(size int64, modTime time.Time) bool {
	return e.Size == size && e.ModTime.Equal(modTime)
}

func (d *DB) view(fn func(b *bbolt.Bucket) error) error {
	return d.bolt.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketDictionaries)
		if b == nil {
			return fmt.Errorf("db: dictionaries bucket not found")
		}
		return fn(b)
	})
}

func (d *DB) update(fn func(b *bbolt.Bucket) error) error {
	return d.bolt.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketDictionaries)
		if b == nil {
			return fmt.Errorf("db: dictionaries bucket not found")
		}
		return fn(b)
	})
}

// Get returns the entry stored for path.
// A stale entry is reported as missing.
func (d *DB) Get(path string, size int64, modTime time.Time) (Entry, bool, error) {
	var (
		entry Entry
		found bool
	)
	err := d.view(func(b *bbolt.Bucket) error {
		data := b.Get([]byte(path))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &entry); err != nil {
			return fmt.Errorf("db: unmarshal dictionary %q: %w", path, err)
		}
		found = entry.Fresh(size, modTime)
		return nil
	})
	if err != nil || !found {
		return Entry{}, false, err
	}
	return entry, true, nil
}

func (d *DB) Put(path string, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("db: marshal dictionary %q: %w", path, err)
	}
	return d.update(func(b *bbolt.Bucket) error {
		return b.Put([]byte(path), data)
	})
}

// Delete removes the entry for path. Deleting a missing entry is not an error.
func (d *DB) Delete(path string) error {
	return d.update(func(b *bbolt.Bucket) error {
		return b.Delete([]byte(path))
	})
}

var errStop = fmt.Errorf("stop iteration")

func (d *DB) All() iter.Seq2[string, Entry] {
	return func(yield func(string, Entry) bool) {
		err := d.view(func(b *bbolt.Bucket) error {
			return b.ForEach(func(k, v []byte) error {
				var entry Entry
				err := json.Unmarshal(v, &entry)
				if err != nil {
					return fmt.Errorf("db: unmarshal dictionary %q: %w", k, err)
				}

				if !yield(string(k), entry) {
					return errStop
				}
				return nil
			})
		})

		if err != nil {
			if errors.Is(err, errStop) {
				return
			}
			panic(fmt.Errorf("db: get all dictionaries: %w", err))
		}
	}
}

// Package dict loads the word lists used to judge decoded text.
//
// A dictionary comes from one of two kinds of source with different failure
// policies. An explicit source that cannot be read is an error wrapping
// ErrNotFound. The default source that cannot be read yields no dictionary and
// no error, so an unconfigured environment fails closed.
package dict

import (
	"bufio"
	"caesar/internal/ctxlog"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// DefaultPath is the word list used when no explicit source is configured.
const DefaultPath = "/usr/share/dict/words"

var ErrNotFound = errors.New("dictionary not found")

// Dictionary is an immutable set of words. The zero value is empty.
type Dictionary struct {
	words map[string]struct{}
}

func New(words ...string) Dictionary {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w != "" {
			m[w] = struct{}{}
		}
	}
	return Dictionary{words: m}
}

// Parse reads one word per line. Blank lines are skipped.
func Parse(r io.Reader) (Dictionary, error) {
	var words []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		words = append(words, strings.TrimSuffix(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return Dictionary{}, fmt.Errorf("dict: scan: %w", err)
	}
	return New(words...), nil
}

func (d Dictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

func (d Dictionary) Len() int {
	return len(d.words)
}

// Words returns the words in sorted order.
func (d Dictionary) Words() []string {
	words := make([]string, 0, len(d.words))
	for w := range d.words {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

func readFile(ctx context.Context, path string) (Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return Dictionary{}, fmt.Errorf("dict: %w: %w", ErrNotFound, err)
	}
	defer ctxlog.Close(ctx, "dictionary file", file)

	d, err := Parse(file)
	if err != nil {
		return Dictionary{}, fmt.Errorf("%w: %q: %w", ErrNotFound, path, err)
	}
	return d, nil
}

// Load reads an explicitly configured word list.
func Load(ctx context.Context, path string) (Dictionary, error) {
	if path == "" {
		return Dictionary{}, fmt.Errorf("dict: %w: empty path", ErrNotFound)
	}
	return readFile(ctx, path)
}

// LoadDefault reads the default word list at path, or DefaultPath if path is empty.
// It reports false instead of an error when the list cannot be read.
func LoadDefault(ctx context.Context, path string) (Dictionary, bool) {
	if path == "" {
		path = DefaultPath
	}
	d, err := readFile(ctx, path)
	if err != nil {
		ctxlog.Get(ctx).Debug("default dictionary unavailable", "path", path, "error", err)
		return Dictionary{}, false
	}
	return d, true
}

// Source names where a dictionary comes from.
type Source struct {
	Path     string `yaml:"path"`
	Explicit bool   `yaml:"explicit"`
}

func (s Source) path() string {
	if s.Path == "" && !s.Explicit {
		return DefaultPath
	}
	return s.Path
}

// Open loads the dictionary without caching.
// ok is false only for a default source that could not be read.
func (s Source) Open(ctx context.Context) (d Dictionary, ok bool, err error) {
	if s.Explicit {
		d, err = Load(ctx, s.Path)
		return d, err == nil, err
	}
	d, ok = LoadDefault(ctx, s.Path)
	return d, ok, nil
}

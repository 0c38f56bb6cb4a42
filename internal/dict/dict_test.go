package dict

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fruit = "apple\nbanana\ncherry\ndate\nelderberry\nfig\ngrape\n"

func writeWords(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParse(t *testing.T) {
	d, err := Parse(strings.NewReader("apple\r\n\nbanana\n\ncherry"))
	require.NoError(t, err)

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []string{"apple", "banana", "cherry"}, d.Words())
	assert.True(t, d.Contains("banana"))
	assert.False(t, d.Contains(""))
	assert.False(t, d.Contains("Apple"))
}

func TestZeroValue(t *testing.T) {
	var d Dictionary
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.Contains("apple"))
	assert.Empty(t, d.Words())
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	d, err := Load(ctx, writeWords(t, fruit))
	require.NoError(t, err)
	assert.Equal(t, 7, d.Len())

	_, err = Load(ctx, filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadDefault(t *testing.T) {
	ctx := context.Background()

	d, ok := LoadDefault(ctx, writeWords(t, fruit))
	assert.True(t, ok)
	assert.True(t, d.Contains("fig"))

	d, ok = LoadDefault(ctx, filepath.Join(t.TempDir(), "missing.txt"))
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())
}

func TestSourceOpen(t *testing.T) {
	ctx := context.Background()
	missing := filepath.Join(t.TempDir(), "missing.txt")

	_, ok, err := Source{Path: missing}.Open(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = Source{Path: missing, Explicit: true}.Open(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, ok)

	d, ok, err := Source{Path: writeWords(t, fruit), Explicit: true}.Open(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, d.Contains("grape"))
}

func TestSourceDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, Source{}.path())
	assert.Equal(t, "", Source{Explicit: true}.path())
	assert.Equal(t, "/x", Source{Path: "/x"}.path())
}

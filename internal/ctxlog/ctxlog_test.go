package ctxlog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelWarn,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		have, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, have, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestStoreGetWith(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))

	ctx := Store(context.Background(), logger)
	ctx = With(ctx, "shift", 3)
	Get(ctx).Info("accepted")

	assert.Contains(t, buf.String(), "shift=3")
	assert.Contains(t, buf.String(), "msg=accepted")
}

func TestGetDefault(t *testing.T) {
	assert.Same(t, slog.Default(), Get(context.Background()))
}

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("boom") }

func TestClose(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := Store(context.Background(), slog.New(slog.NewTextHandler(buf, nil)))

	err := Close(ctx, "thing", failingCloser{})
	assert.EqualError(t, err, "boom")
	assert.Contains(t, buf.String(), "closer=thing")
}

// Package ctxlog provides context-aware structured logging utilities.
package ctxlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type Config struct {
	// Dir receives a log file per run. Empty logs to stderr only.
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// ParseLevel parses debug, info, warn or error. Empty means warn.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelWarn, nil
	}
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.ToUpper(s)))
	if err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

var setupOnce sync.Once

// Setup installs the default logger on first use and stores it in ctx.
// Later calls reuse the installed logger.
func Setup(ctx context.Context, name string, config Config) context.Context {
	setupOnce.Do(func() {
		level, err := ParseLevel(config.Level)
		if err != nil {
			panic(fmt.Errorf("ctxlog: %w", err))
		}

		var w io.Writer = os.Stderr
		if config.Dir != "" {
			err := os.MkdirAll(config.Dir, 0755)
			if err != nil {
				panic(fmt.Errorf("ctxlog: create log dir: %w", err))
			}

			file := filepath.Join(config.Dir, name+"-"+time.Now().Format("2006-01-02-15-04-05.log"))
			logFile, err := os.Create(file)
			if err != nil {
				panic(fmt.Errorf("ctxlog: create log file: %w", err))
			}
			w = io.MultiWriter(os.Stderr, logFile)
		}

		logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger.With("app", name))
	})

	return Store(ctx, slog.Default())
}

type ctxKey struct{}

var key ctxKey

func Store(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, key, log)
}

func Get(ctx context.Context) *slog.Logger {
	log, ok := ctx.Value(key).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return log
}

func Close(ctx context.Context, name string, closer io.Closer) error {
	logger := Get(ctx)
	err := closer.Close()
	if err != nil {
		logger.Error("failed to close", "closer", name, "error", err)
		return err
	}
	return nil
}

func With(ctx context.Context, kv ...any) context.Context {
	return Store(ctx, Get(ctx).With(kv...))
}

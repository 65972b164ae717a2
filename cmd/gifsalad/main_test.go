package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/gifsalad/gifsalad"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	for level, want := range map[string]slog.Level{"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "warn": slog.LevelWarn, "error": slog.LevelError} {
		l, err := new_logger(level)
		require.NoError(t, err)
		require.True(t, l.Enabled(context.Background(), want))
		require.False(t, l.Enabled(context.Background(), want-1))
	}
	_, err := new_logger("loud")
	require.Error(t, err)
}

func TestProgressIgnoresStaleUpdates(t *testing.T) {
	p := &progress{}
	p.update(gifsalad.Progress{Effect: "blur", Done: 3, Total: 10})
	p.update(gifsalad.Progress{Effect: "blur", Done: 2, Total: 10})
	require.Equal(t, 3, p.done)
	p.update(gifsalad.Progress{Effect: "mirror", Done: 4, Total: 10})
	require.Equal(t, 4, p.done)
	p.finish()
	(&progress{}).finish()
}

func TestPoolSizeIsNotAFlag(t *testing.T) {
	var names []string
	for _, f := range command.Flags {
		names = append(names, f.Names()...)
	}
	require.Contains(t, names, "output-root")
	require.NotContains(t, names, "workers")
}

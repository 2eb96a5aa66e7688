package internal

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for raw, want := range tests {
		assert.Equal(t, want, ParseLevel(raw), "level %q", raw)
	}
}

func TestPadding(t *testing.T) {
	p := UniformPadding(4)
	assert.Equal(t, 8, p.Horizontal())
	assert.Equal(t, 8, p.Vertical())

	h := HorizontalPadding(10)
	assert.Equal(t, 20, h.Horizontal())
	assert.Equal(t, 0, h.Vertical())
}

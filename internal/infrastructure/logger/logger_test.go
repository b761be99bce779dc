package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetup_LevelMapping(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"critical", slog.LevelError},
		{"CRITICAL", slog.LevelError},
		{"not-a-level", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	ctx := context.Background()
	for _, c := range cases {
		l := Setup(c.in)
		assert.True(t, l.Handler().Enabled(ctx, c.want), "level %q should enable %v", c.in, c.want)
		if c.want > slog.LevelDebug {
			assert.False(t, l.Handler().Enabled(ctx, c.want-1), "level %q should not enable below threshold", c.in)
		}
	}
}

func TestLogger_DefaultsToInfo(t *testing.T) {
	l := Logger()
	assert.NotNil(t, l)
	assert.True(t, l.Handler().Enabled(context.Background(), slog.LevelInfo))
}

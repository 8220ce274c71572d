package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/FloatyJellyfish/mod-updater/internal/adapters/logger"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func newTestHandler(t *testing.T) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}), buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		goldenName string
	}{
		{name: "info", level: slog.LevelInfo, goldenName: "handler_info"},
		{name: "warn", level: slog.LevelWarn, goldenName: "handler_warn"},
		{name: "error", level: slog.LevelError, goldenName: "handler_error"},
		{name: "debug filtered", level: slog.LevelDebug, goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newTestHandler(t)
			slog.New(handler).Log(t.Context(), tt.level, "message")

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	handler, buf := newTestHandler(t)

	lg := slog.New(handler.WithAttrs([]slog.Attr{slog.String("run", "abc")}))
	lg.Info("resolved", "count", 3, slog.Group("filter", slog.String("loader", "fabric")))

	g := goldie.New(t)
	g.Assert(t, "handler_attrs", buf.Bytes())
}

func TestPrettyHandler_Groups(t *testing.T) {
	handler, buf := newTestHandler(t)

	lg := slog.New(handler.WithGroup("task").WithGroup("").WithGroup("file"))
	lg.Info("written", "name", "sodium.jar")

	assert.Equal(t, "written task.file.name=sodium.jar\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler, _ := newTestHandler(t)

	assert.False(t, handler.Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelError))
}

package board

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerSilentByDefault(t *testing.T) {
	SetLogger(nil)
	// Must not panic and must swallow everything.
	Logger().Warn("nobody hears this")
	Logger().Error("nor this")
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	Logger().Warn("path is empty", "size", 0)
	out := buf.String()
	if !strings.Contains(out, "path is empty") || !strings.Contains(out, "size=0") {
		t.Errorf("unexpected log output: %q", out)
	}

	// Passing nil restores the silent logger.
	SetLogger(nil)
	buf.Reset()
	Logger().Warn("silenced")
	if buf.Len() != 0 {
		t.Errorf("expected silence, got %q", buf.String())
	}
}

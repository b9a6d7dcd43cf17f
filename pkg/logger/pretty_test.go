package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestPrettyHandler_WritesMessageAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	l.With(slog.String("op", "test")).Error("boom", slog.Any("error", errors.New("bad")))

	out := buf.String()
	if !strings.Contains(out, "boom") {
		t.Fatalf("message missing: %q", out)
	}
	if !strings.Contains(out, `"error":"bad"`) || !strings.Contains(out, `"op":"test"`) {
		t.Fatalf("attrs missing: %q", out)
	}
}

func TestPrettyHandler_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing written, got %q", buf.String())
	}
}

package pixscale

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger enabled at error level, want silent")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("scaling frame", "width", 320)
	if !strings.Contains(buf.String(), "scaling frame") {
		t.Errorf("log output = %q, want message recorded", buf.String())
	}

	// nil restores the silent default.
	SetLogger(nil)
	buf.Reset()
	Logger().Error("should not appear")
	if buf.Len() != 0 {
		t.Errorf("log output after SetLogger(nil) = %q, want empty", buf.String())
	}
}

// loggerRecorder is an Accelerator that records logger propagation.
type loggerRecorder struct {
	stubAccelerator
	got *slog.Logger
}

func (r *loggerRecorder) SetLogger(l *slog.Logger) { r.got = l }

func TestSetLoggerPropagatesToAccelerator(t *testing.T) {
	defer func() {
		resetAccelerator()
		SetLogger(nil)
	}()

	rec := &loggerRecorder{}
	if err := RegisterAccelerator(rec); err != nil {
		t.Fatalf("RegisterAccelerator() error = %v", err)
	}
	if rec.got == nil {
		t.Fatal("registration did not propagate the logger")
	}

	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(l)
	if rec.got != l {
		t.Error("SetLogger did not propagate to the registered accelerator")
	}
}

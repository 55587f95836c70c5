package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info shown at info", log.InfoLevel, func(l *log.Logger) { l.Info("loaded tour") }, true},
		{"debug hidden at info", log.InfoLevel, func(l *log.Logger) { l.Debug("placed item") }, false},
		{"debug shown at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("placed item") }, true},
		{"warn shown at info", log.InfoLevel, func(l *log.Logger) { l.Warn("unknown flow") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("wrote output = %v, want %v (%q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestStopwatchFinish(t *testing.T) {
	var buf bytes.Buffer
	startStopwatch(newLogger(&buf, log.InfoLevel)).finish("Rendered %d flows", 3)

	out := buf.String()
	if !strings.Contains(out, "Rendered 3 flows") || !strings.Contains(out, "took=") {
		t.Errorf("output = %q, want message and took field", out)
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should fall back to log.Default")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	got := loggerFromContext(withLogger(context.Background(), custom))
	if got != custom {
		t.Fatal("loggerFromContext did not return the attached logger")
	}
	got.Info("hello")
	if buf.Len() == 0 {
		t.Error("attached logger did not write")
	}
}

func TestCLISetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("placed item", "item", "welcome")
	if !bytes.Contains(buf.Bytes(), []byte("item=welcome")) {
		t.Errorf("debug output = %q, want item=welcome", buf.String())
	}
}

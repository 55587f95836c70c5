package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopHelpHooks{}
	h.OnItemShown(ctx, "welcome", "intro", "save-button")
	h.OnItemHidden(ctx, "welcome", "intro")
	h.OnFlowEnabled(ctx, "welcome", false)
	h.OnHelpEnabled(ctx, true)

	NoopTargetHooks{}.OnTargetRegistered(ctx, "save-button", true)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Help().(NoopHelpHooks); !ok {
		t.Error("Help() should return NoopHelpHooks by default")
	}
	if _, ok := Target().(NoopTargetHooks); !ok {
		t.Error("Target() should return NoopTargetHooks by default")
	}

	customHelp := &testHelpHooks{}
	SetHelpHooks(customHelp)
	if Help() != customHelp {
		t.Error("SetHelpHooks should set custom hooks")
	}

	customTarget := &testTargetHooks{}
	SetTargetHooks(customTarget)
	if Target() != customTarget {
		t.Error("SetTargetHooks should set custom hooks")
	}

	Reset()
	if _, ok := Help().(NoopHelpHooks); !ok {
		t.Error("Reset() should restore NoopHelpHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testHelpHooks{}
	SetHelpHooks(custom)
	SetHelpHooks(nil)

	if Help() != custom {
		t.Error("SetHelpHooks(nil) should be ignored")
	}

	Reset()
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	h := NewLogHooks(l)
	h.OnItemShown(context.Background(), "welcome", "intro", "save-button")
	h.OnTargetRegistered(context.Background(), "save-button", false)

	out := buf.String()
	for _, want := range []string{"item shown", "intro", "save-button", "registered=false"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestFanout(t *testing.T) {
	a, b := &testHelpHooks{}, &testHelpHooks{}
	f := Fanout{a, b}

	f.OnItemShown(context.Background(), "f", "i", "t")
	f.OnHelpEnabled(context.Background(), false)

	for _, h := range []*testHelpHooks{a, b} {
		if h.shown != 1 || h.toggled != 1 {
			t.Errorf("hooks saw shown=%d toggled=%d, want 1 and 1", h.shown, h.toggled)
		}
	}
}

func TestLoggerNil(t *testing.T) {
	if Logger(nil) == nil {
		t.Fatal("Logger(nil) returned nil")
	}
	Logger(nil).Info("dropped")
}

// Test implementations
type testHelpHooks struct {
	NoopHelpHooks
	shown   int
	toggled int
}

func (h *testHelpHooks) OnItemShown(context.Context, string, string, string) { h.shown++ }
func (h *testHelpHooks) OnHelpEnabled(context.Context, bool)                 { h.toggled++ }

type testTargetHooks struct{ NoopTargetHooks }

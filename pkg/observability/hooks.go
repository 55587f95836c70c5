// Package observability provides hooks for help-system events.
//
// Libraries in this module never talk to a metrics or analytics backend
// directly. The controller and the target registry emit events through the
// hooks registered here, and main decides where they go.
//
// Until something is registered every hook is a no-op. Two sinks ship with the module: [LogHooks] writes events to a
// charmbracelet/log logger and the redisink subpackage publishes them to a
// Redis channel.
//
// # Usage
//
//	observability.SetHelpHooks(observability.Fanout{
//	    observability.NewLogHooks(logger),
//	    sink,
//	})
//	defer observability.Reset()
//
// The controller emits events like this:
//
//	observability.Help().OnItemShown(ctx, flowID, itemID, targetID)
package observability

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Help Hooks
// =============================================================================

// HelpHooks receives events from the help controller.
type HelpHooks interface {
	OnItemShown(ctx context.Context, flowID, itemID, targetID string)
	OnItemHidden(ctx context.Context, flowID, itemID string)
	OnFlowEnabled(ctx context.Context, flowID string, enabled bool)
	OnHelpEnabled(ctx context.Context, enabled bool)
}

// =============================================================================
// Target Hooks
// =============================================================================

// TargetHooks receives events from the target registry.
type TargetHooks interface {
	// OnTargetRegistered records a host element mounting (registered=true)
	// or unmounting (registered=false).
	OnTargetRegistered(ctx context.Context, targetID string, registered bool)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopHelpHooks is a no-op implementation of HelpHooks.
type NoopHelpHooks struct{}

func (NoopHelpHooks) OnItemShown(context.Context, string, string, string) {}
func (NoopHelpHooks) OnItemHidden(context.Context, string, string)        {}
func (NoopHelpHooks) OnFlowEnabled(context.Context, string, bool)         {}
func (NoopHelpHooks) OnHelpEnabled(context.Context, bool)                 {}

// NoopTargetHooks is a no-op implementation of TargetHooks.
type NoopTargetHooks struct{}

func (NoopTargetHooks) OnTargetRegistered(context.Context, string, bool) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	helpHooks   HelpHooks   = NoopHelpHooks{}
	targetHooks TargetHooks = NoopTargetHooks{}
	hooksMu     sync.RWMutex
)

// SetHelpHooks replaces the help hooks. A nil h is ignored.
func SetHelpHooks(h HelpHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		helpHooks = h
	}
}

// SetTargetHooks replaces the target hooks. A nil h is ignored.
func SetTargetHooks(h TargetHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		targetHooks = h
	}
}

func Help() HelpHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return helpHooks
}

func Target() TargetHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return targetHooks
}

// Reset puts the no-op hooks back.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	helpHooks = NoopHelpHooks{}
	targetHooks = NoopTargetHooks{}
}

// =============================================================================
// Loggers
// =============================================================================

var discard = log.New(io.Discard)

// Logger returns l, or a logger that discards everything when l is nil.
// Library constructors use it so a nil logger is always safe.
func Logger(l *log.Logger) *log.Logger {
	if l == nil {
		return discard
	}
	return l
}

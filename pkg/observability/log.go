package observability

import (
	"context"

	"github.com/charmbracelet/log"
)

// LogHooks writes help and target events to a logger at debug level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to l.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{logger: Logger(l).WithPrefix("events")}
}

func (h *LogHooks) OnItemShown(_ context.Context, flowID, itemID, targetID string) {
	h.logger.Debug("item shown", "flow", flowID, "item", itemID, "target", targetID)
}

func (h *LogHooks) OnItemHidden(_ context.Context, flowID, itemID string) {
	h.logger.Debug("item hidden", "flow", flowID, "item", itemID)
}

func (h *LogHooks) OnFlowEnabled(_ context.Context, flowID string, enabled bool) {
	h.logger.Debug("flow toggled", "flow", flowID, "enabled", enabled)
}

func (h *LogHooks) OnHelpEnabled(_ context.Context, enabled bool) {
	h.logger.Debug("help toggled", "enabled", enabled)
}

func (h *LogHooks) OnTargetRegistered(_ context.Context, targetID string, registered bool) {
	h.logger.Debug("target", "id", targetID, "registered", registered)
}

// Fanout forwards every help event to each of its hooks in order.
type Fanout []HelpHooks

func (f Fanout) OnItemShown(ctx context.Context, flowID, itemID, targetID string) {
	for _, h := range f {
		h.OnItemShown(ctx, flowID, itemID, targetID)
	}
}

func (f Fanout) OnItemHidden(ctx context.Context, flowID, itemID string) {
	for _, h := range f {
		h.OnItemHidden(ctx, flowID, itemID)
	}
}

func (f Fanout) OnFlowEnabled(ctx context.Context, flowID string, enabled bool) {
	for _, h := range f {
		h.OnFlowEnabled(ctx, flowID, enabled)
	}
}

func (f Fanout) OnHelpEnabled(ctx context.Context, enabled bool) {
	for _, h := range f {
		h.OnHelpEnabled(ctx, enabled)
	}
}

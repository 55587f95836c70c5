package help

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/dynhelp/pkg/observability"
	"github.com/matzehuels/dynhelp/pkg/target"
)

// AppAPI is what host code may do with the help system.
type AppAPI interface {
	// RegisterTargetItem returns the ref callback for a target id.
	RegisterTargetItem(targetID string) target.RefFunc
	// EnableHelp flips the global switch.
	EnableHelp(enabled bool)
	// EnableFlow enables or disables one flow. Disabling persists across
	// later changes of the flow's active item.
	EnableFlow(flowID string, enabled bool)
	// Translate looks up a display string, returning key when unknown.
	Translate(key string) string
}

// APIMsg delivers the current API to the host. The boundary sends it once
// with a placeholder at startup and once each time the API changes.
type APIMsg struct {
	API AppAPI
}

// Registrar hands out ref callbacks for target ids. [*target.Registry]
// implements it.
type Registrar interface {
	RegisterTargetItem(targetID string) target.RefFunc
}

// RegistrarMsg delivers the registration capability to the host. It is sent
// once at startup, independently of [APIMsg], and stays valid
// for the lifetime of the controller. Hosts that only register targets need
// nothing else.
type RegistrarMsg struct {
	Registrar Registrar
}

// apiReadyMsg is emitted by a controller's Init command.
type apiReadyMsg struct {
	api AppAPI
}

// placeholder stands in for the controller until it is ready.
type placeholder struct {
	logger *log.Logger
}

// Placeholder returns an AppAPI whose methods do nothing except log a debug
// diagnostic. It is safe to call from anywhere and never fails.
func Placeholder(logger *log.Logger) AppAPI {
	return &placeholder{logger: observability.Logger(logger).WithPrefix("help")}
}

func (p *placeholder) RegisterTargetItem(targetID string) target.RefFunc {
	p.logger.Debug("registerTargetItem called before help is ready", "target", targetID)
	return func(target.Element) {
		p.logger.Debug("target ref ignored, help not ready", "target", targetID)
	}
}

func (p *placeholder) EnableHelp(enabled bool) {
	p.logger.Debug("enableHelp called before help is ready", "enabled", enabled)
}

func (p *placeholder) EnableFlow(flowID string, enabled bool) {
	p.logger.Debug("enableFlow called before help is ready", "flow", flowID, "enabled", enabled)
}

func (p *placeholder) Translate(key string) string {
	return key
}

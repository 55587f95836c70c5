package help

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/dynhelp/pkg/bridge"
	"github.com/matzehuels/dynhelp/pkg/observability"
	"github.com/matzehuels/dynhelp/pkg/target"
)

// Boundary runs a host model and a help controller as siblings and draws
// the controller's items over the host's frame.
//
// Data crosses on two independent channels. The registration capability
// flows down to the host through [RegistrarMsg]; it is fixed per controller,
// so it is sent once and works before the API is ready. The controller API
// flows up to the host through [APIMsg], sent once per change. Ref callbacks
// write straight into the registry, which the controller reads on its next
// View. Neither direction causes the other side to re-render.
type Boundary struct {
	host tea.Model
	ctrl *Controller

	api       *bridge.Channel[AppAPI]
	delivered uint64

	targets    *bridge.Channel[*target.Registry]
	registered uint64

	logger *log.Logger
}

var _ tea.Model = (*Boundary)(nil)

// NewBoundary wraps host and ctrl. Until ctrl is initialised the host gets a
// placeholder API.
func NewBoundary(host tea.Model, ctrl *Controller, logger *log.Logger) *Boundary {
	logger = observability.Logger(logger)
	b := &Boundary{
		host:    host,
		ctrl:    ctrl,
		api:     bridge.New(Placeholder(logger), func(a, b AppAPI) bool { return a == b }),
		targets: bridge.New[*target.Registry](nil, nil),
		logger:  logger.WithPrefix("boundary"),
	}
	b.targets.Publish(ctrl.Targets())
	return b
}

// Host returns the current host model.
func (b *Boundary) Host() tea.Model { return b.host }

// Controller returns the wrapped controller.
func (b *Boundary) Controller() *Controller { return b.ctrl }

// API returns whatever API the host currently sees.
func (b *Boundary) API() AppAPI {
	api, _ := b.api.Load()
	return api
}

// Targets returns the registry host elements register into. It never
// changes for the lifetime of the boundary.
func (b *Boundary) Targets() *target.Registry {
	reg, _ := b.targets.Load()
	return reg
}

// Init starts both models and hands the registrar and the placeholder API
// to the host.
func (b *Boundary) Init() tea.Cmd {
	placeholder := b.API()
	return tea.Batch(
		b.host.Init(),
		b.ctrl.Init(),
		func() tea.Msg { return registrarReadyMsg{} },
		func() tea.Msg { return placeholderMsg{api: placeholder} },
	)
}

// Update routes msg to the side that wants it.
func (b *Boundary) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case apiReadyMsg:
		b.api.Publish(msg.api)
		return b, b.deliver()

	case registrarReadyMsg:
		return b, b.deliverRegistrar()

	case placeholderMsg:
		// Init commands run concurrently; the real API may already be there.
		if b.delivered != 0 {
			return b, nil
		}
		return b, b.updateHost(APIMsg{API: msg.api})

	case tea.WindowSizeMsg:
		_, ctrlCmd := b.ctrl.Update(msg)
		return b, tea.Batch(ctrlCmd, b.updateHost(msg))

	case tea.KeyMsg:
		if b.ctrl.HandlesKey(msg) {
			_, cmd := b.ctrl.Update(msg)
			return b, cmd
		}
	}
	return b, b.updateHost(msg)
}

// View draws the host frame with visible help items composited on top.
// The controller renders first so the host frame already carries this
// frame's highlight classes.
func (b *Boundary) View() string {
	items := b.ctrl.Render()
	return Overlay(b.host.View(), items, b.ctrl.Viewport())
}

type placeholderMsg struct {
	api AppAPI
}

type registrarReadyMsg struct{}

// deliverRegistrar forwards the registry to the host when it has not seen
// the current one yet.
func (b *Boundary) deliverRegistrar() tea.Cmd {
	reg, version, changed := b.targets.Since(b.registered)
	if !changed || reg == nil {
		return nil
	}
	b.registered = version
	return b.updateHost(RegistrarMsg{Registrar: reg})
}

// deliver forwards the API to the host when its version moved since the
// last delivery.
func (b *Boundary) deliver() tea.Cmd {
	api, version, changed := b.api.Since(b.delivered)
	if !changed {
		return nil
	}
	b.delivered = version
	b.logger.Debug("delivering help api", "version", version)
	return b.updateHost(APIMsg{API: api})
}

func (b *Boundary) updateHost(msg tea.Msg) tea.Cmd {
	next, cmd := b.host.Update(msg)
	b.host = next
	return cmd
}

package help

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/dynhelp/pkg/classes"
	"github.com/matzehuels/dynhelp/pkg/geometry"
	"github.com/matzehuels/dynhelp/pkg/target"
)

// hostModel is a minimal host: it registers its search box once it has an
// API and counts what it receives.
type hostModel struct {
	api     AppAPI
	apiMsgs int
	keys    []string
	inits   int
	box     *target.Box
}

func (h *hostModel) Init() tea.Cmd {
	h.inits++
	return nil
}

func (h *hostModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case APIMsg:
		h.api = msg.API
		h.apiMsgs++
		h.api.RegisterTargetItem("T")(h.box)
	case tea.KeyMsg:
		h.keys = append(h.keys, msg.String())
	}
	return h, nil
}

func (h *hostModel) View() string {
	return "host frame"
}

func newTestBoundary(t *testing.T) (*Boundary, *hostModel) {
	t.Helper()
	host := &hostModel{box: target.NewBox(scenarioBounds)}
	ctrl := NewController(scenarioState(t), Options{})
	return NewBoundary(host, ctrl, nil), host
}

func TestBoundaryStartsWithPlaceholder(t *testing.T) {
	b, host := newTestBoundary(t)
	if _, ok := b.API().(*placeholder); !ok {
		t.Fatalf("API() = %T, want placeholder", b.API())
	}

	b.Update(placeholderMsg{api: b.API()})
	if host.apiMsgs != 1 {
		t.Fatalf("host received %d APIMsg, want 1", host.apiMsgs)
	}
	// Registering through the placeholder goes nowhere.
	if _, ok := b.Targets().Lookup("T"); ok {
		t.Error("placeholder registration must not reach the registry")
	}
}

func TestBoundaryDeliversAPIOncePerChange(t *testing.T) {
	b, host := newTestBoundary(t)
	ready := b.Controller().Init()()

	b.Update(ready)
	b.Update(ready)
	if host.apiMsgs != 1 {
		t.Errorf("host received %d APIMsg for one API, want 1", host.apiMsgs)
	}
	if host.api != AppAPI(b.Controller()) {
		t.Errorf("host API = %T, want the controller", host.api)
	}
	if _, ok := b.Targets().Lookup("T"); !ok {
		t.Error("registration through the live API should reach the registry")
	}

	// A late placeholder from Init must not replace the live API.
	b.Update(placeholderMsg{api: Placeholder(nil)})
	if host.apiMsgs != 1 || host.api != AppAPI(b.Controller()) {
		t.Error("late placeholder overwrote the live API")
	}
}

func TestBoundaryRoutesKeys(t *testing.T) {
	b, host := newTestBoundary(t)
	b.Update(b.Controller().Init()())
	b.Update(tea.WindowSizeMsg{Width: 800, Height: 600})

	// Nothing rendered yet, so esc belongs to the host.
	b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if len(host.keys) != 1 {
		t.Fatalf("host keys = %v, want [esc]", host.keys)
	}

	view := b.View()
	if !strings.Contains(view, "first step") {
		t.Fatalf("View() missing help item:\n%s", view)
	}

	b.Update(runeKey('j'))
	b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := strings.Join(host.keys, ","); got != "esc,j" {
		t.Errorf("host keys = %s, want esc,j", got)
	}
	if f, _ := b.Controller().State().Flow("F"); f.Active != 1 {
		t.Errorf("esc with an item on screen should advance, active = %d", f.Active)
	}
}

func TestBoundaryViewComposites(t *testing.T) {
	b, _ := newTestBoundary(t)
	b.Update(b.Controller().Init()())
	b.Update(tea.WindowSizeMsg{Width: 200, Height: 130})

	view := b.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 130 {
		t.Fatalf("view has %d lines, want the full viewport", len(lines))
	}
	if !strings.HasPrefix(lines[0], "host frame") {
		t.Errorf("host frame lost: %q", lines[0])
	}
	if !strings.Contains(lines[121], "first step") && !strings.Contains(lines[122], "first step") {
		t.Errorf("item not drawn below the target:\n%s", strings.Join(lines[118:126], "\n"))
	}
}

func TestBoundaryHostInitOnce(t *testing.T) {
	b, host := newTestBoundary(t)
	b.Init()
	b.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	b.Update(b.Controller().Init()())
	if host.inits != 1 {
		t.Errorf("host Init ran %d times", host.inits)
	}
	if b.Host() != tea.Model(host) {
		t.Error("host model replaced")
	}
}

func TestBoundaryIgnoresViewportless(t *testing.T) {
	b, _ := newTestBoundary(t)
	if got := b.View(); got != "host frame" {
		t.Errorf("View() = %q, want the bare host frame", got)
	}
}

// markerHost registers its boxes through the registrar alone and prints
// whether each one carries the highlight class.
type markerHost struct {
	boxes      map[string]*target.Box
	registrars int
}

func (h *markerHost) Init() tea.Cmd { return nil }

func (h *markerHost) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(RegistrarMsg); ok {
		h.registrars++
		for id, box := range h.boxes {
			msg.Registrar.RegisterTargetItem(id)(box)
		}
	}
	return h, nil
}

func (h *markerHost) View() string {
	mark := func(id string) string {
		if h.boxes[id].HasClass(classes.TargetHighlight) {
			return "lit"
		}
		return "plain"
	}
	return fmt.Sprintf("T=%s U=%s", mark("T"), mark("U"))
}

func newMarkerBoundary(t *testing.T) (*Boundary, *markerHost) {
	t.Helper()
	host := &markerHost{boxes: map[string]*target.Box{
		"T": target.NewBox(scenarioBounds),
		"U": target.NewBox(geometry.Rect{Top: 60, Bottom: 62, Left: 10, Right: 40}),
	}}
	b := NewBoundary(host, NewController(scenarioState(t), Options{}), nil)
	return b, host
}

func TestBoundaryHighlightsInSameFrame(t *testing.T) {
	b, _ := newMarkerBoundary(t)
	b.Update(registrarReadyMsg{})
	b.Update(b.Controller().Init()())
	b.Update(tea.WindowSizeMsg{Width: 200, Height: 130})

	view := b.View()
	if !strings.Contains(view, "first step") || !strings.HasPrefix(view, "T=lit U=plain") {
		t.Fatalf("first frame = %q..., want I1 drawn with T lit", strings.SplitN(view, "\n", 2)[0])
	}

	b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	view = b.View()
	if !strings.Contains(view, "second step") || !strings.HasPrefix(view, "T=plain U=lit") {
		t.Errorf("after esc = %q..., want I2 drawn with U lit", strings.SplitN(view, "\n", 2)[0])
	}
}

func TestBoundaryDeliversRegistrarOnce(t *testing.T) {
	b, host := newMarkerBoundary(t)
	b.Update(registrarReadyMsg{})
	b.Update(registrarReadyMsg{})
	if host.registrars != 1 {
		t.Fatalf("host received %d RegistrarMsg, want 1", host.registrars)
	}
	// Registration works before the controller API has been delivered.
	if _, ok := b.API().(*placeholder); !ok {
		t.Fatalf("API() = %T, want placeholder", b.API())
	}
	if _, ok := b.Targets().Lookup("U"); !ok {
		t.Error("registrar registration should reach the registry")
	}
}

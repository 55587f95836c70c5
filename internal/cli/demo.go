package cli

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dynhelp/pkg/classes"
	"github.com/matzehuels/dynhelp/pkg/config"
	"github.com/matzehuels/dynhelp/pkg/flow"
	"github.com/matzehuels/dynhelp/pkg/geometry"
	"github.com/matzehuels/dynhelp/pkg/help"
	"github.com/matzehuels/dynhelp/pkg/observability"
	"github.com/matzehuels/dynhelp/pkg/observability/redisink"
	"github.com/matzehuels/dynhelp/pkg/target"
)

//go:embed demo_tour.toml
var demoTour []byte

// demoOpts holds the command-line flags for the demo command.
type demoOpts struct {
	watch       bool   // reload the tour file when it changes
	eventsRedis string // publish help events to this Redis address
	eventsChan  string // Redis channel for help events
	logFile     string // write logs here while the program owns the terminal
}

// demoCommand creates the demo command, which runs a small bubbletea host
// with a tour overlaid.
func (c *CLI) demoCommand() *cobra.Command {
	var opts demoOpts

	cmd := &cobra.Command{
		Use:   "demo [file]",
		Short: "Run a tour inside a demo terminal program",
		Long: `Run a tour inside a demo terminal program.

The demo draws a mock mail client with five targets: header, search,
sidebar, content and status. Without a file the tour in
~/.config/dynhelp/tour.toml is used, or a built-in one.

Keys:
  esc  next item      s  skip the tour     x  never show help again
  h    toggle help    b  toggle sidebar    r  restart the tour
  q    quit`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: tourFileCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return c.runDemo(cmd.Context(), path, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload the tour file when it changes")
	cmd.Flags().StringVar(&opts.eventsRedis, "events-redis", "", "publish help events to Redis at this address")
	cmd.Flags().StringVar(&opts.eventsChan, "events-channel", redisink.DefaultChannel, "Redis channel for help events")
	cmd.Flags().StringVar(&opts.logFile, "log", "", "write logs to this file while the demo runs")

	return cmd
}

// loadDemoTour loads path, the user's tour or the built-in one, in that
// order, and returns the tour with the path it came from.
func loadDemoTour(path string) (*config.Tour, string, error) {
	if path == "" {
		if p, ok := defaultTourPath(); ok {
			path = p
		}
	}
	if path != "" {
		t, err := config.Load(path)
		return t, path, err
	}
	f, err := config.Parse(demoTour, config.FormatTOML)
	if err != nil {
		return nil, "", err
	}
	t, err := f.Build()
	return t, "", err
}

func (c *CLI) runDemo(ctx context.Context, path string, opts demoOpts) error {
	t, path, err := loadDemoTour(path)
	if err != nil {
		return fmt.Errorf("load tour: %w", err)
	}
	if opts.watch && path == "" {
		return errors.New("--watch needs a tour file")
	}

	// The program owns the terminal, so logs only go somewhere when asked.
	var logger *log.Logger
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = newLogger(f, loggerFromContext(ctx).GetLevel())
	}
	logger = observability.Logger(logger)

	logHooks := observability.NewLogHooks(logger)
	hooks := observability.Fanout{logHooks}
	if opts.eventsRedis != "" {
		sink, err := redisink.New(ctx, redisink.Config{
			Addr:    opts.eventsRedis,
			Channel: opts.eventsChan,
			Logger:  logger,
		})
		if err != nil {
			return fmt.Errorf("connect events sink: %w", err)
		}
		defer sink.Close()
		hooks = append(hooks, sink)
	}
	observability.SetHelpHooks(hooks)
	observability.SetTargetHooks(logHooks)
	defer observability.Reset()

	ctrl := help.NewController(t.State, help.Options{
		Logger:       logger,
		Translations: t.Translations,
		MarginSize:   t.MarginSize,
		Debug:        t.Debug || logger.GetLevel() <= log.DebugLevel,
		Context:      ctx,
	})
	host := newDemoModel(ctrl)
	p := tea.NewProgram(help.NewBoundary(host, ctrl, logger), tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.watch {
		go func() {
			err := config.Watch(ctx, path, logger, func(t *config.Tour, err error) {
				p.Send(tourReloadedMsg{tour: t, err: err})
			})
			if err != nil {
				logger.Error("watch tour", "path", path, "err", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}

// =============================================================================
// Demo host
// =============================================================================

// Demo target ids.
const (
	targetHeader  = "header"
	targetSearch  = "search"
	targetSidebar = "sidebar"
	targetContent = "content"
	targetStatus  = "status"
)

var demoTargets = []string{targetHeader, targetSearch, targetSidebar, targetContent, targetStatus}

const (
	sidebarWidth    = 24
	demoMinWidth    = sidebarWidth + 20
	demoMinHeight   = 10
	headerHeight    = 3
	searchHeight    = 3
	statusBarHeight = 1
)

// tourReloadedMsg carries the result of a tour file reload.
type tourReloadedMsg struct {
	tour *config.Tour
	err  error
}

// tourControl is what the demo host needs from the help controller beyond
// the AppAPI it is handed.
type tourControl interface {
	Reset()
	Load(*flow.State)
	State() *flow.State
	Keys() help.KeyMap
}

type demoKeys struct {
	Quit    key.Binding
	Help    key.Binding
	Sidebar key.Binding
	Restart key.Binding
	tour    help.KeyMap
}

func newDemoKeys(tour help.KeyMap) demoKeys {
	return demoKeys{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "toggle help")),
		Sidebar: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "sidebar")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart tour")),
		tour:    tour,
	}
}

func (k demoKeys) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Quit, k.Help, k.Sidebar, k.Restart}, k.tour.ShortHelp()...)
}

func (k demoKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit, k.Help, k.Sidebar, k.Restart}, k.tour.ShortHelp()}
}

// demoModel is a mock mail client. It lays out five target boxes and
// registers them once through the boundary's registrar.
type demoModel struct {
	api    help.AppAPI
	tour   tourControl
	keys   demoKeys
	footer bhelp.Model

	boxes   map[string]*target.Box
	width   int
	height  int
	sidebar bool
	status  string
}

func newDemoModel(tour tourControl) *demoModel {
	m := &demoModel{
		tour:    tour,
		keys:    newDemoKeys(tour.Keys()),
		footer:  bhelp.New(),
		boxes:   make(map[string]*target.Box, len(demoTargets)),
		sidebar: true,
	}
	for _, id := range demoTargets {
		m.boxes[id] = target.NewBox(geometry.Rect{})
	}
	return m
}

func (m *demoModel) Init() tea.Cmd { return nil }

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case help.RegistrarMsg:
		for _, id := range demoTargets {
			msg.Registrar.RegisterTargetItem(id)(m.boxes[id])
		}

	case help.APIMsg:
		m.api = msg.API

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.footer.Width = msg.Width
		m.layout()

	case tourReloadedMsg:
		if msg.err != nil {
			m.status = "reload failed: " + firstLine(msg.err.Error())
			break
		}
		m.tour.Load(msg.tour.State)
		m.status = "tour reloaded"

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			on := !m.tour.State().SystemEnabled()
			if m.api != nil {
				m.api.EnableHelp(on)
			}
			m.status = "help " + onOff(on)
		case key.Matches(msg, m.keys.Sidebar):
			m.sidebar = !m.sidebar
			m.layout()
			m.status = "sidebar " + onOff(m.sidebar)
		case key.Matches(msg, m.keys.Restart):
			m.tour.Reset()
			m.status = "tour restarted"
		}
	}
	return m, nil
}

// layout moves every box to where View draws it.
func (m *demoModel) layout() {
	rects := demoLayout(m.width, m.height, m.sidebar)
	for _, id := range demoTargets {
		b := m.boxes[id]
		r, ok := rects[id]
		if !ok {
			b.Hide()
			continue
		}
		b.SetBounds(r)
	}
}

// demoLayout returns the bounds of each visible region for a w×h screen.
// Regions missing from the result are collapsed.
func demoLayout(w, h int, sidebar bool) map[string]geometry.Rect {
	if w < demoMinWidth || h < demoMinHeight {
		return nil
	}
	side := 0
	if sidebar {
		side = sidebarWidth
	}
	middle := h - headerHeight - statusBarHeight

	rects := map[string]geometry.Rect{
		targetHeader:  geometry.RectAt(0, 0, w, headerHeight),
		targetSearch:  geometry.RectAt(side, headerHeight, w-side, searchHeight),
		targetContent: geometry.RectAt(side, headerHeight+searchHeight, w-side, middle-searchHeight),
		targetStatus:  geometry.RectAt(0, h-statusBarHeight, w, statusBarHeight),
	}
	if sidebar {
		rects[targetSidebar] = geometry.RectAt(0, headerHeight, side, middle)
	}
	return rects
}

var (
	demoBorder      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted)
	demoHighlighted = demoBorder.BorderForeground(colorAccent)
)

// panel draws a bordered region filling r.
func (m *demoModel) panel(id, body string) string {
	r := m.boxes[id].Bounds()
	style := demoBorder
	if m.boxes[id].HasClass(classes.TargetHighlight) {
		style = demoHighlighted
	}
	return style.Width(r.Width() - 2).Height(r.Height() - 2).MaxHeight(r.Height()).Render(body)
}

func (m *demoModel) View() string {
	if m.width == 0 {
		return ""
	}
	if demoLayout(m.width, m.height, m.sidebar) == nil {
		return StyleDim.Render(fmt.Sprintf("window too small (need %dx%d)", demoMinWidth, demoMinHeight))
	}

	header := m.panel(targetHeader, StyleTitle.Render("dynhelp mail")+StyleDim.Render("  "+m.status))
	search := m.panel(targetSearch, StyleDim.Render("Search: ")+"▏")
	content := m.panel(targetContent, m.contentBody())
	main := lipgloss.JoinVertical(lipgloss.Left, search, content)
	if m.sidebar {
		sidebar := m.panel(targetSidebar, strings.Join([]string{"Inbox", "Starred", "Sent", "Archive"}, "\n"))
		main = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
	}
	status := lipgloss.NewStyle().MaxWidth(m.width).Render(m.footer.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, header, main, status)
}

func (m *demoModel) contentBody() string {
	var b strings.Builder
	s := m.tour.State()
	fmt.Fprintf(&b, "help %s\n\n", onOff(s.SystemEnabled()))
	for _, f := range s.Flows() {
		step := "done"
		if !f.Complete() {
			step = fmt.Sprintf("step %d/%d", f.Active+1, len(f.Items))
		}
		if !f.Enabled {
			step = "disabled"
		}
		fmt.Fprintf(&b, "%-12s %s\n", f.ID, StyleDim.Render(step))
	}
	return b.String()
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

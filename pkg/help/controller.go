package help

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/dynhelp/pkg/flow"
	"github.com/matzehuels/dynhelp/pkg/geometry"
	"github.com/matzehuels/dynhelp/pkg/observability"
	"github.com/matzehuels/dynhelp/pkg/target"
)

// Options configures a Controller. The zero value is usable.
type Options struct {
	// Targets is the registry hosts register into. A new one is created when nil.
	Targets *target.Registry
	Logger  *log.Logger
	Theme   *Theme
	Keys    *KeyMap
	// Translations are merged over DefaultCatalog.
	Translations map[string]string
	// MarginSize is the default gap between target and item. Zero means
	// geometry.DefaultMarginSize.
	MarginSize int
	// Debug logs the geometry of every item, not just items with debug set.
	Debug bool
	// Context is passed to observability hooks.
	Context context.Context
}

// Controller owns flow state and places visible items. It implements
// tea.Model and AppAPI.
type Controller struct {
	store      *flow.Store
	targets    *target.Registry
	keys       KeyMap
	catalog    Catalog
	marginSize int
	debug      bool
	ctx        context.Context
	logger     *log.Logger

	mu       sync.Mutex
	renderer itemRenderer
	viewport geometry.Viewport
	placed   map[string]*placement
	shown    []RenderedItem
}

// NewController creates a controller starting from initial.
func NewController(initial *flow.State, opts Options) *Controller {
	logger := observability.Logger(opts.Logger).WithPrefix("help")
	targets := opts.Targets
	if targets == nil {
		targets = target.NewRegistry(opts.Logger)
	}
	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	size := opts.MarginSize
	if size <= 0 {
		size = geometry.DefaultMarginSize
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	catalog := DefaultCatalog().Merge(opts.Translations)

	return &Controller{
		store:      flow.NewStore(initial, opts.Logger),
		targets:    targets,
		keys:       keys,
		catalog:    catalog,
		marginSize: size,
		debug:      opts.Debug,
		ctx:        ctx,
		logger:     logger,
		renderer:   itemRenderer{theme: theme, catalog: catalog, wrapWidth: 46},
		placed:     make(map[string]*placement),
	}
}

// =============================================================================
// AppAPI
// =============================================================================

// RegisterTargetItem returns the ref callback for targetID.
func (c *Controller) RegisterTargetItem(targetID string) target.RefFunc {
	return c.targets.RegisterTargetItem(targetID)
}

// EnableHelp flips the global switch.
func (c *Controller) EnableHelp(enabled bool) {
	if c.dispatch(flow.EnableHelp{Enabled: enabled}) {
		observability.Help().OnHelpEnabled(c.ctx, enabled)
	}
}

// EnableFlow enables or disables a flow. Unknown flows are logged and ignored.
func (c *Controller) EnableFlow(flowID string, enabled bool) {
	if c.dispatch(flow.EnableFlow{Flow: flowID, Enabled: enabled}) {
		observability.Help().OnFlowEnabled(c.ctx, flowID, enabled)
	}
}

// Translate looks up key in the controller's catalog.
func (c *Controller) Translate(key string) string {
	return c.catalog.Translate(key)
}

// =============================================================================
// Controller extras
// =============================================================================

// EnableItem enables or disables a single item.
func (c *Controller) EnableItem(itemID string, enabled bool) {
	c.dispatch(flow.EnableItem{Item: itemID, Enabled: enabled})
}

// Advance moves a flow to its next item.
func (c *Controller) Advance(flowID string) {
	c.dispatch(flow.Advance{Flow: flowID})
}

// Retreat moves a flow back one item.
func (c *Controller) Retreat(flowID string) {
	c.dispatch(flow.Retreat{Flow: flowID})
}

// Reset restores the state the controller was created or last loaded with.
func (c *Controller) Reset() {
	c.dispatch(flow.Reset{})
}

// Load replaces the flow state, e.g. after a tour file changed on disk.
func (c *Controller) Load(next *flow.State) {
	c.store.Replace(next)
}

// State returns the current snapshot.
func (c *Controller) State() *flow.State {
	return c.store.Snapshot()
}

// Targets returns the registry hosts register into.
func (c *Controller) Targets() *target.Registry {
	return c.targets
}

// Keys returns the controller's bindings.
func (c *Controller) Keys() KeyMap {
	return c.keys
}

// Viewport returns the last window size seen.
func (c *Controller) Viewport() geometry.Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewport
}

func (c *Controller) dispatch(a flow.Action) bool {
	if err := c.store.Dispatch(a); err != nil {
		c.logger.Warn("ignored help action", "action", a, "err", err)
		return false
	}
	return true
}

// =============================================================================
// tea.Model
// =============================================================================

// Init hands the controller's API to whoever runs it.
func (c *Controller) Init() tea.Cmd {
	return func() tea.Msg { return apiReadyMsg{api: c} }
}

// Update handles window size and the item keys.
func (c *Controller) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.mu.Lock()
		c.viewport = geometry.Viewport{Width: msg.Width, Height: msg.Height}
		c.mu.Unlock()
	case tea.KeyMsg:
		c.handleKey(msg)
	}
	return c, nil
}

// View draws the visible items over a blank viewport. Hosts normally go
// through Boundary, which draws them over the host frame instead.
func (c *Controller) View() string {
	items := c.Render()
	if len(items) == 0 {
		return ""
	}
	return Overlay("", items, c.Viewport())
}

// HandlesKey reports whether msg is one of the item keys and an item is on
// screen to receive it.
func (c *Controller) HandlesKey(msg tea.KeyMsg) bool {
	if c.current() == nil {
		return false
	}
	return key.Matches(msg, c.keys.Dismiss, c.keys.Skip, c.keys.DontShow)
}

func (c *Controller) handleKey(msg tea.KeyMsg) {
	cur := c.current()
	if cur == nil {
		return
	}
	switch {
	case key.Matches(msg, c.keys.Dismiss):
		c.Advance(cur.FlowID)
	case key.Matches(msg, c.keys.Skip):
		c.EnableFlow(cur.FlowID, false)
	case key.Matches(msg, c.keys.DontShow):
		c.EnableHelp(false)
	}
}

// current returns the first item drawn by the last Render.
func (c *Controller) current() *RenderedItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.shown) == 0 {
		return nil
	}
	it := c.shown[0]
	return &it
}

// =============================================================================
// Rendering
// =============================================================================

// Render computes every visible item for the current frame. Items that
// stopped rendering since the last call drop their highlight markers.
// Help hooks run after the controller lock is released.
func (c *Controller) Render() []RenderedItem {
	out, events := c.render()
	for _, emit := range events {
		emit()
	}
	return out
}

// hookEvent is a deferred observability call.
type hookEvent func()

func (c *Controller) render() ([]RenderedItem, []hookEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.viewport.Empty() {
		return nil, c.hideAll()
	}
	var out []RenderedItem
	state := c.store.Snapshot()
	for _, it := range flow.VisibleItems(state, c.targets) {
		bounds, ok := c.targets.Bounds(it.Config.Target)
		if !ok {
			continue
		}
		out = append(out, c.place(it, bounds))
	}
	return out, c.sync(out)
}

func (c *Controller) place(it flow.Item, bounds geometry.Rect) RenderedItem {
	view := c.renderer.render(it)
	w, h := lipgloss.Width(view), lipgloss.Height(view)

	req := geometry.Request{
		Target:   bounds,
		Position: it.Config.ResolvedPosition(),
		Anchor:   it.Config.ResolvedAnchor(),
		Margin:   it.Config.ResolvedMargin(c.marginSize),
		Viewport: c.viewport,
		Width:    w,
		Height:   h,
	}
	p, ok := c.placed[it.ID]
	if !ok {
		p = &placement{initialWidth: c.viewport.Width}
		c.placed[it.ID] = p
	}
	if p.update(req) && (it.Config.Debug || c.debug) {
		c.logger.Debug("placed item",
			"item", it.ID,
			"target", it.Config.Target,
			"bounds", bounds,
			"position", req.Position,
			"anchor", req.Anchor,
			"style", p.style,
			"box", p.box,
			"viewport", c.viewport,
		)
	}

	return RenderedItem{
		ItemID:   it.ID,
		FlowID:   it.Flow,
		TargetID: it.Config.Target,
		DOMID:    it.Config.DOMID,
		Classes:  classesFor(it),
		Style:    p.style,
		Box:      p.box,
		View:     view,
	}
}

// sync updates highlight markers for the items now on screen and returns
// the hook events to emit once c.mu is released.
func (c *Controller) sync(now []RenderedItem) []hookEvent {
	var events []hookEvent
	state := c.store.Snapshot()
	current := make(map[string]bool, len(now))
	for _, r := range now {
		current[r.ItemID] = true
	}
	for _, prev := range c.shown {
		if !current[prev.ItemID] {
			events = append(events, c.hide(prev))
		}
	}

	before := make(map[string]bool, len(c.shown))
	for _, prev := range c.shown {
		before[prev.ItemID] = true
	}
	for _, r := range now {
		if before[r.ItemID] {
			continue
		}
		if it, ok := state.Item(r.ItemID); ok && it.Config.HighlightTarget {
			c.targets.Highlight(r.TargetID, r.ItemID)
		}
		ctx, flowID, itemID, targetID := c.ctx, r.FlowID, r.ItemID, r.TargetID
		events = append(events, func() {
			observability.Help().OnItemShown(ctx, flowID, itemID, targetID)
		})
	}
	c.shown = now
	return events
}

func (c *Controller) hide(r RenderedItem) hookEvent {
	c.targets.Unhighlight(r.TargetID, r.ItemID)
	delete(c.placed, r.ItemID)
	ctx, flowID, itemID := c.ctx, r.FlowID, r.ItemID
	return func() { observability.Help().OnItemHidden(ctx, flowID, itemID) }
}

func (c *Controller) hideAll() []hookEvent {
	var events []hookEvent
	for _, r := range c.shown {
		events = append(events, c.hide(r))
	}
	c.shown = nil
	return events
}

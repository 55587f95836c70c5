// Package help renders help flows on top of a bubbletea program.
//
// # Overview
//
// A [Controller] owns the flow state ([flow.Store]) and the target table
// ([target.Registry]). Each frame it asks which items are effectively visible,
// places each one next to its target with [geometry.Resolve], corrects the
// placement against the viewport, and hands back [RenderedItem] values that
// [Overlay] draws onto the host frame.
//
// A [Boundary] is the top-level tea.Model. It runs the host model and the
// controller side by side:
//
//	host := newApp()
//	ctrl := help.NewController(state, help.Options{Logger: logger})
//	p := tea.NewProgram(help.NewBoundary(host, ctrl, logger))
//
// The host never receives controller re-renders and the controller never
// receives host messages it has no use for. The host learns about the
// controller only through [APIMsg], delivered once with a [Placeholder] at
// startup and once more when the real controller is ready.
//
// # Targets
//
// Hosts register the elements help points at through the ref callbacks of
// [AppAPI.RegisterTargetItem]:
//
//	case help.APIMsg:
//	    m.api = msg.API
//	    m.api.RegisterTargetItem("search")(m.searchBox)
//
// Registration is read on the controller's next View; it never triggers a
// render by itself.
//
// # Keys
//
// While an item is on screen the controller claims three keys: esc dismisses
// the item, s skips its flow and x turns help off. All other keys go to the
// host. See [DefaultKeyMap].
package help

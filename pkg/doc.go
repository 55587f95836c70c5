// Package pkg provides the libraries behind dynhelp, contextual help and
// product tours for bubbletea programs.
//
// # Overview
//
// A host program marks parts of its screen as targets. A tour is a set of
// flows, each an ordered list of items; every item points at a target and is
// drawn next to it when its flow reaches it. End users step through items,
// skip a flow, or turn help off.
//
// The packages split along that path:
//
//  1. [geometry] - Anchor an overlay to a target and keep it on screen
//  2. [flow] - Which flow and item is active, enabled and visible
//  3. [target] - The registry of host elements items can point at
//  4. [help] - The bubbletea controller, the boundary model and compositing
//  5. [config] - Tour files in TOML or YAML, with live reload
//
// # Architecture
//
// One frame of a host program wrapped in a boundary:
//
//	host Update (layout)  ──ref callbacks──▶  [target] Registry
//	                                               │
//	[flow] Store snapshot ──▶ [help] Controller ◀──┘
//	                               │
//	                    [geometry] Resolve / Correct
//	                               │
//	host View ──────────▶ [help] Overlay ──▶ terminal
//
// The controller API reaches the host as a message, and targets reach the
// controller through the registry. Neither direction re-renders the other.
//
// # Quick Start
//
//	tour, err := config.Load("tour.toml")
//	if err != nil {
//	    return err
//	}
//	ctrl := help.NewController(tour.State, help.Options{
//	    Translations: tour.Translations,
//	    MarginSize:   tour.MarginSize,
//	})
//	p := tea.NewProgram(help.NewBoundary(host, ctrl, logger))
//	_, err = p.Run()
//
// The host registers its regions when it receives [help.APIMsg]:
//
//	case help.APIMsg:
//	    m.api = msg.API
//	    m.api.RegisterTargetItem("search")(m.searchBox)
//
// # Main Packages
//
//   - [geometry]: positions, anchors, margins, placement and correction
//   - [flow]: tour state snapshots, actions and visibility
//   - [target]: target registry, highlight markers and the Box element
//   - [bridge]: versioned single-value channels used by the boundary
//   - [help]: controller, item rendering, theme, keys and the boundary
//   - [classes]: classification hook names applied to targets and items
//   - [config]: tour file schema, validation and file watching
//   - [observability]: help event hooks with log and Redis sinks
//   - [render] and [render/flowgraph]: flow diagrams as DOT, SVG, PDF or PNG
//   - [preview]: HTTP preview of a tour file
//   - [errors]: structured error codes
//   - [buildinfo]: version reporting
//
// [geometry]: https://pkg.go.dev/github.com/matzehuels/dynhelp/pkg/geometry
// [flow]: https://pkg.go.dev/github.com/matzehuels/dynhelp/pkg/flow
// [target]: https://pkg.go.dev/github.com/matzehuels/dynhelp/pkg/target
// [bridge]: https://pkg.go.dev/github.com/matzehuels/dynhelp/pkg/bridge
// [help]: https://pkg.go.dev/github.com/matzehuels/dynhelp/pkg/help
// [help.APIMsg]: https://pkg.go.dev/github.com/matzehuels/dynhelp/pkg/help#APIMsg
// [classes]: https://pkg.go.dev/github.com/matzehuels/dynhelp/pkg/classes
// [config]: https://pkg.go.dev/github.com/matzehuels/dynhelp/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/dynhelp/pkg/observability
// [render]: https://pkg.go.dev/github.com/matzehuels/dynhelp/pkg/render
// [render/flowgraph]: https://pkg.go.dev/github.com/matzehuels/dynhelp/pkg/render/flowgraph
// [preview]: https://pkg.go.dev/github.com/matzehuels/dynhelp/pkg/preview
// [errors]: https://pkg.go.dev/github.com/matzehuels/dynhelp/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/dynhelp/pkg/buildinfo
package pkg

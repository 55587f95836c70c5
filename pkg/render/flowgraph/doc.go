// Package flowgraph draws help flows as Graphviz diagrams.
//
// Tour authors use it to check a tour at a glance: every flow is a cluster,
// items are chained in order, and the item currently on screen is filled.
//
//	dot := flowgraph.ToDOT(state, flowgraph.Options{Targets: true})
//	svg, err := flowgraph.RenderSVG(ctx, dot)
//
// [Render] covers the other output formats of [render.Format].
package flowgraph

// Package render holds output plumbing shared by dynhelp's diagram renderers.
//
// [Convert] turns SVG into PDF or PNG through the external rsvg-convert tool
// (from librsvg); [FormatFromPath] maps output file names to a [Format].
// The flow diagrams themselves live in [flowgraph].
//
//	dot := flowgraph.ToDOT(state, flowgraph.Options{})
//	svg, err := flowgraph.RenderSVG(ctx, dot)
//	pdf, err := render.Convert(ctx, svg, render.FormatPDF)
//
// [flowgraph]: github.com/matzehuels/dynhelp/pkg/render/flowgraph
package render

package flowgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dynhelp/pkg/flow"
	"github.com/matzehuels/dynhelp/pkg/render"
)

// Options configures flow diagram rendering.
type Options struct {
	// Detailed adds position, anchor and margin to item labels.
	Detailed bool
	// Targets draws each target once and links items to it.
	Targets bool
}

// ToDOT converts flow state to Graphviz DOT. Each flow becomes a cluster of
// its items in order; the active item is filled, disabled or hidden flows
// and items are dashed.
func ToDOT(s *flow.State, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  compound=true;\n")
	buf.WriteString("\n")

	var targets []string
	for i, f := range s.Flows() {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%q;\n", fmtFlowLabel(f))
		if !f.Enabled || !f.Visible {
			buf.WriteString("    style=dashed;\n")
		}
		for _, it := range s.Items(f.ID) {
			attrs := fmtItemAttrs(it, f, s.SystemEnabled(), opts.Detailed)
			fmt.Fprintf(&buf, "    %q [%s];\n", it.ID, strings.Join(attrs, ", "))
			if !slices.Contains(targets, it.Config.Target) {
				targets = append(targets, it.Config.Target)
			}
		}
		for j := 1; j < len(f.Items); j++ {
			fmt.Fprintf(&buf, "    %q -> %q;\n", f.Items[j-1], f.Items[j])
		}
		buf.WriteString("  }\n")
	}

	if opts.Targets {
		buf.WriteString("\n")
		for _, t := range targets {
			fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse, style=dotted];\n", targetNode(t), t)
		}
		for _, f := range s.Flows() {
			for _, it := range s.Items(f.ID) {
				fmt.Fprintf(&buf, "  %q -> %q [style=dotted, arrowhead=none];\n", it.ID, targetNode(it.Config.Target))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func targetNode(id string) string {
	return "target:" + id
}

func fmtFlowLabel(f flow.Flow) string {
	var flags []string
	if !f.Enabled {
		flags = append(flags, "disabled")
	}
	if !f.Visible {
		flags = append(flags, "hidden")
	}
	if f.Complete() && len(f.Items) > 0 {
		flags = append(flags, "complete")
	}
	if len(flags) == 0 {
		return f.ID
	}
	return f.ID + " (" + strings.Join(flags, ", ") + ")"
}

func fmtItemLabel(it flow.Item, detailed bool) string {
	if !detailed {
		return it.ID
	}
	c := it.Config
	parts := []string{
		"target: " + c.Target,
		"position: " + c.ResolvedPosition().String(),
		"anchor: " + c.ResolvedAnchor().String(),
	}
	if c.Margin != nil {
		parts = append(parts, "margin: "+c.Margin.String())
	}
	return it.ID + "\n" + strings.Join(parts, "\n")
}

func fmtItemAttrs(it flow.Item, f flow.Flow, systemEnabled bool, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtItemLabel(it, detailed))}
	switch {
	case !it.Enabled || !it.Visible:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	case f.ActiveItem() == it.ID && f.Enabled && f.Visible && systemEnabled:
		attrs = append(attrs, "fillcolor=\"#5fd7af\"", "penwidth=2")
	case f.ActiveItem() == it.ID:
		attrs = append(attrs, "fillcolor=\"#d0f0e6\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// Render renders a DOT graph in the given format. PDF and PNG go through
// SVG and need rsvg-convert.
func Render(ctx context.Context, dot string, format render.Format) ([]byte, error) {
	if format == render.FormatDOT {
		return []byte(dot), nil
	}
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.Convert(ctx, svg, format)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the SVG scales from its viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

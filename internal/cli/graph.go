package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dynhelp/pkg/config"
	"github.com/matzehuels/dynhelp/pkg/render"
	"github.com/matzehuels/dynhelp/pkg/render/flowgraph"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output   string // output file; its extension picks the format
	detailed bool   // add position, anchor and margin to item labels
	targets  bool   // draw targets and link items to them
}

// graphCommand creates the graph command for drawing flow diagrams.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Draw the flows of a tour",
		Long: `Draw the flows of a tour as a diagram.

Each flow becomes a cluster of its items in order. The item that starts
active is filled; disabled and hidden flows and items are dashed.

The output format follows the extension of --output: .svg (default), .dot,
.pdf or .png. PDF and PNG need rsvg-convert from librsvg.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: tourFileCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.svg)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show item geometry in labels")
	cmd.Flags().BoolVar(&opts.targets, "targets", false, "draw the targets items point at")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, input string, opts graphOpts) error {
	if opts.output == "" {
		opts.output = strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
	}
	format, err := render.FormatFromPath(opts.output)
	if err != nil {
		return err
	}

	t, err := config.Load(input)
	if err != nil {
		return fmt.Errorf("load tour %s: %w", input, err)
	}

	watch := startStopwatch(loggerFromContext(ctx))
	dot := flowgraph.ToDOT(t.State, flowgraph.Options{Detailed: opts.detailed, Targets: opts.targets})

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()
	data, err := flowgraph.Render(ctx, dot, format)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render %s: %w", format, err)
	}
	spinner.Stop()

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	watch.finish("Rendered %s", plural(len(t.State.Flows()), "flow"))
	printSuccess("Flow diagram written")
	printFile(opts.output)
	return nil
}

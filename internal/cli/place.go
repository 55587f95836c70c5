package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dynhelp/pkg/geometry"
)

// placeOpts holds the command-line flags for the place command.
type placeOpts struct {
	target     string
	viewport   string
	position   string
	anchor     string
	margin     string
	marginSize int
	size       string
	initial    int
}

// placeCommand creates the place command, which runs one placement through
// the same resolve and correct steps the overlay uses.
func (c *CLI) placeCommand() *cobra.Command {
	opts := placeOpts{
		position:   geometry.DefaultPosition.String(),
		marginSize: geometry.DefaultMarginSize,
		size:       "30x5",
	}

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute where an item is drawn",
		Long: `Compute where an item is drawn for a target and viewport.

The target is given as top,bottom,left,right in cells and the viewport as
WxH. Without --anchor the corner opposite --position is used. The resolved
style, the box after correction and any edge the box still crosses are
printed.`,
		Example: `  dynhelp place --target 100,120,50,150 --viewport 800x600 --position bottom-right
  dynhelp place --target 2,3,70,80 --viewport 80x24 --anchor bottom-right --size 24x4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, initial, err := opts.request()
			if err != nil {
				return err
			}
			printPlacement(req, initial)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.target, "target", "", "target bounds as top,bottom,left,right")
	cmd.Flags().StringVar(&opts.viewport, "viewport", "", "viewport size as WxH")
	cmd.Flags().StringVar(&opts.position, "position", opts.position, "point of the target the item attaches to")
	cmd.Flags().StringVar(&opts.anchor, "anchor", "", "corner of the item pinned to that point (default: opposite of position)")
	cmd.Flags().StringVar(&opts.margin, "margin", "", "CSS margin shorthand (default: gap on the side facing the target)")
	cmd.Flags().IntVar(&opts.marginSize, "margin-size", opts.marginSize, "default gap in cells")
	cmd.Flags().StringVar(&opts.size, "size", opts.size, "item size as WxH")
	cmd.Flags().IntVar(&opts.initial, "initial-width", 0, "viewport width when the item first mounted (default: viewport width)")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("viewport")
	_ = cmd.RegisterFlagCompletionFunc("position", positionCompletion)
	_ = cmd.RegisterFlagCompletionFunc("anchor", positionCompletion)

	return cmd
}

func positionCompletion(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(geometry.All))
	for i, p := range geometry.All {
		names[i] = p.String()
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// request turns the flags into a placement request and initial width.
func (o placeOpts) request() (geometry.Request, int, error) {
	var req geometry.Request
	var err error

	if req.Target, err = geometry.ParseRect(o.target); err != nil {
		return req, 0, fmt.Errorf("--target: %w", err)
	}
	if req.Viewport, err = geometry.ParseViewport(o.viewport); err != nil {
		return req, 0, fmt.Errorf("--viewport: %w", err)
	}
	if req.Width, req.Height, err = geometry.ParseSize(o.size); err != nil {
		return req, 0, fmt.Errorf("--size: %w", err)
	}
	if req.Position, err = geometry.ParsePosition(o.position); err != nil {
		return req, 0, fmt.Errorf("--position: %w", err)
	}
	req.Anchor = geometry.DefaultAnchor(req.Position)
	if o.anchor != "" {
		if req.Anchor, err = geometry.ParsePosition(o.anchor); err != nil {
			return req, 0, fmt.Errorf("--anchor: %w", err)
		}
	}
	if o.marginSize < 0 {
		return req, 0, fmt.Errorf("--margin-size must not be negative")
	}
	req.Margin = geometry.DefaultMarginOfSize(req.Position, o.marginSize)
	if o.margin != "" {
		if req.Margin, err = geometry.ParseMargin(o.margin); err != nil {
			return req, 0, fmt.Errorf("--margin: %w", err)
		}
	}

	initial := o.initial
	if initial <= 0 {
		initial = req.Viewport.Width
	}
	return req, initial, nil
}

func printPlacement(req geometry.Request, initial int) {
	resolved := geometry.Resolve(req.Target, req.Position, req.Anchor, req.Viewport)
	style, box := geometry.Layout(req, initial)

	printKeyValue("Target", req.Target.String())
	printKeyValue("Viewport", req.Viewport.String())
	printKeyValue("Position", req.Position.String())
	printKeyValue("Anchor", req.Anchor.String())
	printKeyValue("Resolved", resolved.String())
	printKeyValue("Margin", req.Margin.String())
	printKeyValue("Style", StyleHighlight.Render(style.String()))
	printKeyValue("Box", box.String())

	var edges []string
	top, right, bottom, left := geometry.Overflows(box, req.Viewport)
	for _, e := range []struct {
		name string
		hit  bool
	}{{"top", top}, {"right", right}, {"bottom", bottom}, {"left", left}} {
		if e.hit {
			edges = append(edges, e.name)
		}
	}
	if len(edges) > 0 {
		printWarning("box crosses the %s edge", strings.Join(edges, " and "))
	}
}

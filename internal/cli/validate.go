package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dynhelp/pkg/config"
	"github.com/matzehuels/dynhelp/pkg/flow"
)

// validateCommand creates the validate command for checking tour files.
func (c *CLI) validateCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a tour file",
		Long: `Check a tour file and summarise its flows.

Every problem in the file is reported: unknown positions, malformed margins,
duplicate ids and flows without an id. A valid file is printed as a table
with the resolved position, anchor and margin of each item and the reason
it would or would not be shown when the tour starts.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: tourFileCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args[0], quiet)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report problems")

	return cmd
}

// runValidate loads the tour at path and reports on it.
func (c *CLI) runValidate(ctx context.Context, path string, quiet bool) error {
	logger := loggerFromContext(ctx)
	logger.Debug("validating tour", "path", path)

	t, err := config.Load(path)
	if err != nil {
		printError("%s is not a valid tour", path)
		for _, line := range strings.Split(err.Error(), "\n") {
			printDetail("%s", line)
		}
		return fmt.Errorf("validate %s: %w", path, err)
	}
	if quiet {
		return nil
	}

	printSuccess("%s is valid", StyleHighlight.Render(path))
	flows, items, active := tourStats(t.State)
	printStats(flows, items, active)
	printNewline()

	if !t.Enabled {
		printWarning("help is disabled in [settings]; nothing will be shown")
	}
	for _, f := range t.State.Flows() {
		if len(f.Items) == 0 {
			printWarning("flow %s has no items", f.ID)
		}
	}

	if items > 0 {
		fmt.Fprintln(out, StyleTitle.Render("Items"))
		fmt.Fprintln(out, itemTable(t).Render())
		printNewline()
	}
	printNextStep("Preview it", "dynhelp preview "+path)
	return nil
}

func tourStats(s *flow.State) (flows, items, active int) {
	for _, f := range s.Flows() {
		flows++
		items += len(f.Items)
		if !f.Complete() {
			active++
		}
	}
	return flows, items, active
}

// itemTable lists every item with its resolved geometry and start status.
func itemTable(t *config.Tour) *table.Table {
	s := t.State
	var rows [][]string
	var shown []bool
	for _, f := range s.Flows() {
		for _, it := range s.Items(f.ID) {
			v := flow.Explain(s, it.ID, flow.LaidOut)
			rows = append(rows, []string{
				f.ID,
				it.ID,
				it.Config.Target,
				it.Config.ResolvedPosition().String(),
				it.Config.ResolvedAnchor().String(),
				it.Config.ResolvedMargin(t.MarginSize).String(),
				v.Reason(),
			})
			shown = append(shown, v.Visible())
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorLabel).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("Flow", "Item", "Target", "Position", "Anchor", "Margin", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < len(shown) && shown[row] {
				if col == 6 {
					return base.Inherit(StyleSuccess)
				}
				return base.Foreground(colorText)
			}
			return base.Foreground(colorMuted)
		})
}

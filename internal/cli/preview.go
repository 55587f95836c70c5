package cli

import (
	"context"
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dynhelp/pkg/config"
	"github.com/matzehuels/dynhelp/pkg/preview"
)

const defaultPreviewAddr = "localhost:8080"

// previewCommand creates the preview command, which serves a tour file
// over HTTP.
func (c *CLI) previewCommand() *cobra.Command {
	addr := defaultPreviewAddr

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Serve a tour for review in a browser",
		Long: `Serve a tour for review in a browser.

The tour file is read on every request, so edits show up on refresh. The
index page shows the flow diagram and a table of items; /api/state and
/api/place return JSON.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: tourFileCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "address to listen on")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, path, addr string) error {
	// Fail early on a broken file instead of on the first request.
	if _, err := config.Load(path); err != nil {
		return fmt.Errorf("load tour %s: %w", path, err)
	}

	logger := loggerFromContext(ctx)
	srv := preview.New(preview.FileLoader(path), logger.WithPrefix("preview"))

	printInfo("Serving %s", StyleHighlight.Render(path))
	printDetail("%s", StyleLink.Render(previewURL(addr)))
	printDetail("press ctrl+c to stop")
	return srv.ListenAndServe(ctx, addr)
}

func previewURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}

// Package cli implements the dynhelp command-line interface.
//
// The commands load tour files, check them, and show them in several
// forms: running inside a demo terminal program, as a flow diagram, as
// computed placements, and as a browser preview. The CLI is built with
// cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - demo: Run a bubbletea host with the tour overlaid
//   - validate: Check a tour file and summarise its flows
//   - graph: Draw the flows of a tour as SVG, DOT, PDF or PNG
//   - place: Compute where an item lands for a target and viewport
//   - preview: Serve a tour over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// turns on placement diagnostics in the demo. Loggers are passed through
// context.Context.
//
// # Example
//
//	import "github.com/matzehuels/dynhelp/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(ctx, os.Args[1:]); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

const timeFormat = "15:04:05.00"

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Level:           level,
	})
}

// stopwatch logs how long a command step took, e.g. "Rendered 2 flows (31ms)".
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

func startStopwatch(l *log.Logger) stopwatch {
	return stopwatch{logger: l, start: time.Now()}
}

func (s stopwatch) finish(format string, args ...any) {
	elapsed := time.Since(s.start).Round(time.Millisecond)
	s.logger.Info(fmt.Sprintf(format, args...), "took", elapsed)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default when ctx carries no logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// captureOutput redirects user-facing output to w for the rest of the test.
func captureOutput(t *testing.T, w io.Writer) {
	t.Helper()
	saved := out
	out = w
	t.Cleanup(func() { out = saved })
}

func TestPrintStats(t *testing.T) {
	tests := []struct {
		flows, items, active int
		want                 []string
	}{
		{1, 1, 1, []string{"1 flow", "1 item", "1 active"}},
		{2, 5, 0, []string{"2 flows", "5 items", "0 active"}},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		captureOutput(t, &buf)
		printStats(tt.flows, tt.items, tt.active)
		for _, w := range tt.want {
			if !strings.Contains(buf.String(), w) {
				t.Errorf("printStats(%d, %d, %d) = %q, missing %q", tt.flows, tt.items, tt.active, buf.String(), w)
			}
		}
	}
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	captureOutput(t, &buf)

	printSuccess("wrote %s", "flows.svg")
	printWarning("flow %s has no items", "empty")
	printKeyValue("Style", "{top:1}")
	printFile("flows.svg")

	got := buf.String()
	for _, want := range []string{"✓ wrote flows.svg", "flow empty has no items", "Style", "→"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

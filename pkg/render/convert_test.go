package render

import (
	"context"
	"testing"

	"github.com/matzehuels/dynhelp/pkg/errors"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"out.svg", FormatSVG, true},
		{"OUT.PDF", FormatPDF, true},
		{"flows.dot", FormatDOT, true},
		{"flows.gv", FormatDOT, true},
		{"a/b/c.png", FormatPNG, true},
		{"out.jpeg", "", false},
		{"noext", "", false},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("FormatFromPath(%q) error code = %s", tt.path, errors.GetCode(err))
		}
	}
}

func TestConvertSVGPassthrough(t *testing.T) {
	in := []byte("<svg/>")
	out, err := Convert(context.Background(), in, FormatSVG)
	if err != nil || string(out) != "<svg/>" {
		t.Errorf("Convert(svg) = %q, %v", out, err)
	}
	if _, err := Convert(context.Background(), in, FormatDOT); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Convert(dot) error = %v", err)
	}
}

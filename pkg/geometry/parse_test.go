package geometry

import (
	"testing"

	"github.com/matzehuels/dynhelp/pkg/errors"
)

func TestParseRect(t *testing.T) {
	tests := []struct {
		in      string
		want    Rect
		wantErr bool
	}{
		{"100,120,50,150", Rect{Top: 100, Bottom: 120, Left: 50, Right: 150}, false},
		{" 1, 2, 3, 4 ", Rect{Top: 1, Bottom: 2, Left: 3, Right: 4}, false},
		{"5,5,0,10", Rect{Top: 5, Bottom: 5, Left: 0, Right: 10}, false},
		{"1,2,3", Rect{}, true},
		{"a,2,3,4", Rect{}, true},
		{"10,5,0,1", Rect{}, true},
		{"", Rect{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRect(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRect(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidInput)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseRect(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"800x600", 800, 600, false},
		{"80X24", 80, 24, false},
		{"80", 0, 0, true},
		{"0x24", 0, 0, true},
		{"ax24", 0, 0, true},
		{"80x-1", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := ParseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("ParseSize(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.w, tt.h)
			}
		})
	}

	vp, err := ParseViewport("800x600")
	if err != nil || vp != (Viewport{Width: 800, Height: 600}) {
		t.Errorf("ParseViewport = %v, %v", vp, err)
	}
}

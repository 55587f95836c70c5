package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/dynhelp/pkg/errors"
)

const sampleTour = `
[[flow]]
id = "welcome"

  [[flow.item]]
  id = "hello"
  target = "header"

  [[flow.item]]
  id = "bye"
  target = "footer"
  position = "top-left"
`

func writeTour(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	captureOutput(t, &buf)

	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetOut(&buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(withLogger(context.Background(), newLogger(&bytes.Buffer{}, LogInfo)))
	return buf.String(), err
}

func TestValidateCommand(t *testing.T) {
	path := writeTour(t, "tour.toml", sampleTour)

	got, err := execute(t, "validate", path)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	for _, want := range []string{"is valid", "1 flow", "2 items", "hello", "bye", "not the active item", "dynhelp preview"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	got, err = execute(t, "validate", "--quiet", path)
	if err != nil || got != "" {
		t.Errorf("validate --quiet = %q, %v", got, err)
	}
}

func TestValidateCommandReportsProblems(t *testing.T) {
	path := writeTour(t, "bad.yaml", `
flow:
  - id: a
    item:
      - id: x
        target: t
        position: middle
  - id: a
`)

	got, err := execute(t, "validate", path)
	if err == nil {
		t.Fatal("validate accepted a bad tour")
	}
	if !errors.Is(err, errors.ErrCodeInvalidPosition) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidPosition)
	}
	if !strings.Contains(got, "not a valid tour") || !strings.Contains(got, "middle") {
		t.Errorf("output = %q", got)
	}
}

func TestValidateWarnings(t *testing.T) {
	path := writeTour(t, "tour.toml", "[settings]\nenabled = false\n\n[[flow]]\nid = \"empty\"\n")
	got, err := execute(t, "validate", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"help is disabled", "flow empty has no items"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestGraphCommandDOT(t *testing.T) {
	path := writeTour(t, "tour.toml", sampleTour)
	dst := filepath.Join(t.TempDir(), "flows.dot")

	got, err := execute(t, "graph", path, "-o", dst, "--targets")
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	if !strings.Contains(got, dst) {
		t.Errorf("output does not name %s:\n%s", dst, got)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"digraph G", `"hello" -> "bye"`, `"target:footer"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("DOT missing %s", want)
		}
	}
}

func TestGraphCommandDefaultsToSVG(t *testing.T) {
	path := writeTour(t, "tour.toml", sampleTour)
	if _, err := execute(t, "graph", path); err != nil {
		t.Fatalf("graph: %v", err)
	}
	data, err := os.ReadFile(strings.TrimSuffix(path, ".toml") + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("output is not SVG")
	}
}

func TestGraphCommandRejectsFormat(t *testing.T) {
	path := writeTour(t, "tour.toml", sampleTour)
	_, err := execute(t, "graph", path, "-o", "flows.txt")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestPlaceCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "default anchor",
			args: []string{"--target", "100,120,50,150", "--viewport", "800x600"},
			want: []string{"{top:120 left:150}", "0 0 0 4px", "{top:120 left:150 margin:0 0 0 4px}", "top-left"},
		},
		{
			name: "explicit anchor",
			args: []string{"--target", "100,120,50,150", "--viewport", "800x600", "--anchor", "bottom-right"},
			want: []string{"{bottom:480 right:650}", "{bottom:480 right:650 margin:0 0 0 4px}"},
		},
		{
			name: "pinned to the right edge",
			args: []string{"--target", "2,3,70,80", "--viewport", "80x24", "--size", "20x4"},
			want: []string{"right:0", "crosses the right edge"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, append([]string{"place"}, tt.args...)...)
			if err != nil {
				t.Fatalf("place: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output missing %q:\n%s", w, got)
				}
			}
		})
	}
}

func TestPlaceCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad target", []string{"--target", "1,2", "--viewport", "80x24"}, errors.ErrCodeInvalidInput},
		{"bad viewport", []string{"--target", "1,2,3,4", "--viewport", "80"}, errors.ErrCodeInvalidInput},
		{"bad position", []string{"--target", "1,2,3,4", "--viewport", "80x24", "--position", "up"}, errors.ErrCodeInvalidPosition},
		{"bad margin", []string{"--target", "1,2,3,4", "--viewport", "80x24", "--margin", "1 2 3 4 5"}, errors.ErrCodeInvalidMargin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"place"}, tt.args...)...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}

	if _, err := execute(t, "place", "--viewport", "80x24"); err == nil {
		t.Error("place without --target should fail")
	}
}

func TestPreviewCommandRejectsBadTour(t *testing.T) {
	_, err := execute(t, "preview", filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestPreviewURL(t *testing.T) {
	tests := map[string]string{
		"localhost:8080": "http://localhost:8080",
		":9000":          "http://localhost:9000",
		"0.0.0.0:80":     "http://0.0.0.0:80",
	}
	for addr, want := range tests {
		if got := previewURL(addr); got != want {
			t.Errorf("previewURL(%q) = %q, want %q", addr, got, want)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	got, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "dynhelp") {
		t.Error("bash completion does not mention dynhelp")
	}
}

func TestDemoWatchNeedsFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, err := execute(t, "demo", "--watch")
	if err == nil || !strings.Contains(err.Error(), "--watch needs a tour file") {
		t.Errorf("demo --watch = %v", err)
	}
}

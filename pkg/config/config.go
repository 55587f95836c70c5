package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/dynhelp/pkg/errors"
	"github.com/matzehuels/dynhelp/pkg/flow"
	"github.com/matzehuels/dynhelp/pkg/geometry"
)

// Format is a tour file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported tour file extension %q (want .toml, .yaml or .yml)", filepath.Ext(path))
}

// =============================================================================
// File schema
// =============================================================================

// File is the decoded form of a tour file. Pointer fields distinguish unset
// from false.
type File struct {
	Settings     Settings          `toml:"settings" yaml:"settings"`
	Translations map[string]string `toml:"translations" yaml:"translations"`
	Flows        []FlowDef         `toml:"flow" yaml:"flow"`
}

// Settings apply to the whole tour.
type Settings struct {
	Enabled    *bool `toml:"enabled" yaml:"enabled"`
	MarginSize int   `toml:"margin_size" yaml:"margin_size"`
	Debug      bool  `toml:"debug" yaml:"debug"`
}

// FlowDef is one [[flow]] table.
type FlowDef struct {
	ID      string    `toml:"id" yaml:"id"`
	Enabled *bool     `toml:"enabled" yaml:"enabled"`
	Visible *bool     `toml:"visible" yaml:"visible"`
	Items   []ItemDef `toml:"item" yaml:"item"`
}

// ItemDef is one [[flow.item]] table.
type ItemDef struct {
	ID              string `toml:"id" yaml:"id"`
	Target          string `toml:"target" yaml:"target"`
	Position        string `toml:"position" yaml:"position"`
	Anchor          string `toml:"anchor" yaml:"anchor"`
	Margin          string `toml:"margin" yaml:"margin"`
	DOMID           string `toml:"dom_id" yaml:"dom_id"`
	HighlightTarget *bool  `toml:"highlight_target" yaml:"highlight_target"`
	Debug           bool   `toml:"debug" yaml:"debug"`
	Enabled         *bool  `toml:"enabled" yaml:"enabled"`
	Visible         *bool  `toml:"visible" yaml:"visible"`
	Title           string `toml:"title" yaml:"title"`
	Content         string `toml:"content" yaml:"content"`
	Markdown        bool   `toml:"markdown" yaml:"markdown"`
}

// =============================================================================
// Loaded tour
// =============================================================================

// Tour is a validated tour file.
type Tour struct {
	Path         string
	Enabled      bool
	MarginSize   int
	Debug        bool
	Translations map[string]string
	Definitions  []flow.Definition
	State        *flow.State
}

// Load reads, decodes and validates the tour file at path.
func Load(path string) (*Tour, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "tour file %s", path)
		}
		return nil, fmt.Errorf("read tour file: %w", err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	t, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.Path = path
	return t, nil
}

// Parse decodes a tour file without validating it.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
	return &f, nil
}

// Build validates f and turns it into flow definitions. Every invalid
// flow or item is reported; the returned error joins them.
func (f *File) Build() (*Tour, error) {
	t := &Tour{
		Enabled:      boolOr(f.Settings.Enabled, true),
		MarginSize:   f.Settings.MarginSize,
		Debug:        f.Settings.Debug,
		Translations: f.Translations,
	}
	if t.MarginSize < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "settings: margin_size must not be negative")
	}
	if t.MarginSize == 0 {
		t.MarginSize = geometry.DefaultMarginSize
	}

	var errs []error
	for i, fd := range f.Flows {
		def, err := fd.definition(t.Debug)
		if err != nil {
			errs = append(errs, fmt.Errorf("flow %d: %w", i+1, err))
			continue
		}
		t.Definitions = append(t.Definitions, def)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	state, err := flow.Build(t.Enabled, t.Definitions...)
	if err != nil {
		return nil, err
	}
	t.State = state
	return t, nil
}

func (fd FlowDef) definition(debug bool) (flow.Definition, error) {
	if fd.ID == "" {
		return flow.Definition{}, errors.New(errors.ErrCodeInvalidConfig, "flow has no id")
	}
	def := flow.Definition{Flow: flow.Flow{
		ID:      fd.ID,
		Enabled: boolOr(fd.Enabled, true),
		Visible: boolOr(fd.Visible, true),
	}}

	var errs []error
	for i, d := range fd.Items {
		it, err := d.item(debug)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s item %d: %w", fd.ID, i+1, err))
			continue
		}
		def.Items = append(def.Items, it)
	}
	return def, errors.Join(errs...)
}

func (d ItemDef) item(debug bool) (flow.Item, error) {
	if d.Target == "" {
		return flow.Item{}, errors.New(errors.ErrCodeInvalidConfig, "item has no target")
	}
	id := d.ID
	if id == "" {
		id = uuid.NewString()
	}

	it := flow.NewItem(id, d.Target, flow.Content{
		Title:    d.Title,
		Body:     d.Content,
		Markdown: d.Markdown,
	})
	it.Enabled = boolOr(d.Enabled, true)
	it.Visible = boolOr(d.Visible, true)
	it.Config.DOMID = d.DOMID
	it.Config.HighlightTarget = boolOr(d.HighlightTarget, true)
	it.Config.Debug = d.Debug || debug

	var errs []error
	if d.Position != "" {
		p, err := geometry.ParsePosition(d.Position)
		if err != nil {
			errs = append(errs, err)
		}
		it.Config.Position = p
	}
	if d.Anchor != "" {
		a, err := geometry.ParsePosition(d.Anchor)
		if err != nil {
			errs = append(errs, err)
		}
		it.Config.Anchor = a
	}
	if d.Margin != "" {
		m, err := geometry.ParseMargin(d.Margin)
		if err != nil {
			errs = append(errs, err)
		}
		it.Config.Margin = &m
	}
	return it, errors.Join(errs...)
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

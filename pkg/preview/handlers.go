package preview

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/matzehuels/dynhelp/pkg/config"
	"github.com/matzehuels/dynhelp/pkg/errors"
	"github.com/matzehuels/dynhelp/pkg/flow"
	"github.com/matzehuels/dynhelp/pkg/geometry"
	"github.com/matzehuels/dynhelp/pkg/render/flowgraph"
)

// Default overlay size for /api/place when size is omitted.
const (
	defaultWidth  = 30
	defaultHeight = 5
)

type stateView struct {
	Path    string     `json:"path,omitempty"`
	Enabled bool       `json:"enabled"`
	Flows   []flowView `json:"flows"`
}

type flowView struct {
	ID       string     `json:"id"`
	Enabled  bool       `json:"enabled"`
	Visible  bool       `json:"visible"`
	Active   int        `json:"active"`
	Complete bool       `json:"complete"`
	Items    []itemView `json:"items"`
}

type itemView struct {
	ID       string `json:"id"`
	Target   string `json:"target"`
	Position string `json:"position"`
	Anchor   string `json:"anchor"`
	Margin   string `json:"margin"`
	Enabled  bool   `json:"enabled"`
	Visible  bool   `json:"visible"`
	Active   bool   `json:"active"`
	Status   string `json:"status"`
	Title    string `json:"title,omitempty"`
}

type placeView struct {
	Style    string        `json:"style"`
	Box      geometry.Rect `json:"box"`
	Overflow []string      `json:"overflow,omitempty"`
}

type errorView struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func newStateView(t *config.Tour) stateView {
	s := t.State
	v := stateView{Path: t.Path, Enabled: s.SystemEnabled(), Flows: []flowView{}}
	for _, f := range s.Flows() {
		fv := flowView{
			ID:       f.ID,
			Enabled:  f.Enabled,
			Visible:  f.Visible,
			Active:   f.Active,
			Complete: f.Complete(),
			Items:    []itemView{},
		}
		for _, it := range s.Items(f.ID) {
			fv.Items = append(fv.Items, itemView{
				ID:       it.ID,
				Target:   it.Config.Target,
				Position: it.Config.ResolvedPosition().String(),
				Anchor:   it.Config.ResolvedAnchor().String(),
				Margin:   it.Config.ResolvedMargin(t.MarginSize).String(),
				Enabled:  it.Enabled,
				Visible:  it.Visible,
				Active:   f.ActiveItem() == it.ID,
				Status:   flow.Explain(s, it.ID, flow.LaidOut).Reason(),
				Title:    it.Content.Title,
			})
		}
		v.Flows = append(v.Flows, fv)
	}
	return v
}

func (s *Server) tour(w http.ResponseWriter) (*config.Tour, bool) {
	t, err := s.load()
	if err != nil {
		s.logger.Warn("load tour", "error", err)
		s.writeError(w, http.StatusInternalServerError, err)
		return nil, false
	}
	return t, true
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tour(w)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, newStateView(t))
}

func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tour(w)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	_, _ = w.Write([]byte(flowgraph.ToDOT(t.State, graphOptions(r))))
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tour(w)
	if !ok {
		return
	}
	svg, err := flowgraph.RenderSVG(r.Context(), flowgraph.ToDOT(t.State, graphOptions(r)))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

func graphOptions(r *http.Request) flowgraph.Options {
	q := r.URL.Query()
	return flowgraph.Options{
		Detailed: q.Has("detailed"),
		Targets:  q.Has("targets"),
	}
}

func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	req, err := parsePlace(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	style, box := geometry.Layout(req, req.Viewport.Width)

	var overflow []string
	top, right, bottom, left := geometry.Overflows(box, req.Viewport)
	for _, e := range []struct {
		name string
		hit  bool
	}{{"top", top}, {"right", right}, {"bottom", bottom}, {"left", left}} {
		if e.hit {
			overflow = append(overflow, e.name)
		}
	}
	s.writeJSON(w, http.StatusOK, placeView{Style: style.String(), Box: box, Overflow: overflow})
}

func parsePlace(r *http.Request) (geometry.Request, error) {
	q := r.URL.Query()
	var req geometry.Request
	var err error

	if req.Target, err = geometry.ParseRect(q.Get("target")); err != nil {
		return req, err
	}
	if req.Viewport, err = geometry.ParseViewport(q.Get("viewport")); err != nil {
		return req, err
	}
	req.Width, req.Height = defaultWidth, defaultHeight
	if v := q.Get("size"); v != "" {
		if req.Width, req.Height, err = geometry.ParseSize(v); err != nil {
			return req, err
		}
	}
	if v := q.Get("position"); v != "" {
		if req.Position, err = geometry.ParsePosition(v); err != nil {
			return req, err
		}
	}
	req.Position = req.Position.OrDefault(geometry.DefaultPosition)
	if v := q.Get("anchor"); v != "" {
		if req.Anchor, err = geometry.ParsePosition(v); err != nil {
			return req, err
		}
	}
	req.Anchor = req.Anchor.OrDefault(geometry.DefaultAnchor(req.Position))

	size := geometry.DefaultMarginSize
	if v := q.Get("margin_size"); v != "" {
		if size, err = strconv.Atoi(v); err != nil || size < 0 {
			return req, errors.New(errors.ErrCodeInvalidMargin, "invalid margin_size %q", v)
		}
	}
	req.Margin = geometry.DefaultMarginOfSize(req.Position, size)
	if v := q.Get("margin"); v != "" {
		if req.Margin, err = geometry.ParseMargin(v); err != nil {
			return req, err
		}
	}
	return req, nil
}

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>dynhelp preview</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; margin-top: 1rem; }
td, th { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
tr.active { background: #d0f0e6; }
.graph svg { max-width: 100%; height: auto; }
.error { color: #b00020; }
</style>
</head>
<body>
<h1>{{if .State.Path}}{{.State.Path}}{{else}}tour{{end}}</h1>
<p>help {{if .State.Enabled}}enabled{{else}}disabled{{end}}</p>
<div class="graph">{{if .GraphErr}}<p class="error">{{.GraphErr}}</p>{{else}}{{.SVG}}{{end}}</div>
{{range .State.Flows}}
<h2>{{.ID}}{{if not .Enabled}} (disabled){{end}}{{if not .Visible}} (hidden){{end}}{{if .Complete}} (complete){{end}}</h2>
<table>
<tr><th>item</th><th>target</th><th>position</th><th>anchor</th><th>margin</th><th>status</th><th>title</th></tr>
{{range .Items}}<tr{{if .Active}} class="active"{{end}}><td>{{.ID}}</td><td>{{.Target}}</td><td>{{.Position}}</td><td>{{.Anchor}}</td><td>{{.Margin}}</td><td>{{.Status}}</td><td>{{.Title}}</td></tr>
{{end}}</table>
{{end}}
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tour(w)
	if !ok {
		return
	}
	data := struct {
		State    stateView
		SVG      template.HTML
		GraphErr string
	}{State: newStateView(t)}

	svg, err := flowgraph.RenderSVG(r.Context(), flowgraph.ToDOT(t.State, graphOptions(r)))
	if err != nil {
		s.logger.Warn("render flow graph", "error", err)
		data.GraphErr = err.Error()
	} else {
		data.SVG = template.HTML(svg)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("render index", "error", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorView{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}

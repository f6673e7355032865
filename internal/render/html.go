package render

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"sync"

	"github.com/alexisbeaulieu97/wxaverages/internal/chart"
	wxerrors "github.com/alexisbeaulieu97/wxaverages/pkg/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// DefaultScripts are the Highcharts bundles loaded by generated pages.
// highcharts-more provides the areasplinerange series type.
var DefaultScripts = []string{
	"https://code.highcharts.com/highcharts.js",
	"https://code.highcharts.com/highcharts-more.js",
}

const FormatHTML = "html"

type pageData struct {
	Title    string
	RenderTo string
	Scripts  []string
	Options  *chart.Configuration
	Message  string
}

// HTMLEngine writes a standalone page that constructs the chart with
// Highcharts in the browser. The page embeds the effective options, so
// defaults registered here are already merged in.
type HTMLEngine struct {
	Defaults

	mu      sync.Mutex
	out     io.Writer
	scripts []string
}

// NewHTMLEngine returns an engine writing pages to out.
func NewHTMLEngine(out io.Writer, scripts ...string) *HTMLEngine {
	if len(scripts) == 0 {
		scripts = DefaultScripts
	}
	return &HTMLEngine{out: out, scripts: append([]string(nil), scripts...)}
}

// NewChart renders cfg as an HTML page.
func (e *HTMLEngine) NewChart(ctx context.Context, cfg *chart.Configuration) (*Chart, error) {
	target := renderTarget(cfg)
	if err := ctx.Err(); err != nil {
		return nil, wxerrors.NewRenderError(target, err)
	}

	effective, err := e.Apply(cfg)
	if err != nil {
		return nil, wxerrors.NewRenderError(target, err)
	}

	var buf bytes.Buffer
	data := pageData{
		Title:    titleText(effective),
		RenderTo: target,
		Scripts:  e.scripts,
		Options:  effective,
	}
	if err := pages.ExecuteTemplate(&buf, "chart.html", data); err != nil {
		return nil, wxerrors.NewRenderError(target, err)
	}

	e.mu.Lock()
	n, err := e.out.Write(buf.Bytes())
	e.mu.Unlock()
	if err != nil {
		return nil, wxerrors.NewRenderError(target, err)
	}

	return &Chart{RenderTo: target, Options: effective, Format: FormatHTML, Bytes: n}, nil
}

// WritePlaceholder writes a page telling the reader the chart could not be
// produced. It is not a render: no chart is constructed.
func WritePlaceholder(w io.Writer, renderTo, title string, cause error) error {
	message := "The chart is currently unavailable."
	if cause != nil {
		message = "The chart is currently unavailable: " + cause.Error()
	}
	return pages.ExecuteTemplate(w, "placeholder.html", pageData{
		Title:    title,
		RenderTo: renderTo,
		Message:  message,
	})
}

func renderTarget(cfg *chart.Configuration) string {
	if cfg == nil || cfg.Chart == nil {
		return ""
	}
	return cfg.Chart.RenderTo
}

func titleText(cfg *chart.Configuration) string {
	if cfg == nil || cfg.Title == nil || cfg.Title.Text == nil {
		return ""
	}
	return *cfg.Title.Text
}

var _ Engine = (*HTMLEngine)(nil)

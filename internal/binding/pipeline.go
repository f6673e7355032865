// Package binding fetches the averages document once, splices it into a
// built chart configuration and hands the result to a rendering engine.
package binding

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexisbeaulieu97/wxaverages/internal/chart"
	"github.com/alexisbeaulieu97/wxaverages/internal/ports"
	"github.com/alexisbeaulieu97/wxaverages/internal/render"
	"github.com/alexisbeaulieu97/wxaverages/internal/source"
	wxerrors "github.com/alexisbeaulieu97/wxaverages/pkg/errors"
)

// DefaultTimeout bounds the fetch of the source document.
const DefaultTimeout = 30 * time.Second

// Pipeline binds one source document to one chart. It accepts a single run;
// later runs fail with INVALID_STATE.
type Pipeline struct {
	fetcher source.Fetcher
	engine  render.Engine
	timeout time.Duration
	log     ports.Logger

	used atomic.Bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithLogger sets the logger used for step reporting.
func WithLogger(log ports.Logger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// New returns a pipeline reading through fetcher and rendering with engine.
func New(fetcher source.Fetcher, engine render.Engine, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher: fetcher,
		engine:  engine,
		timeout: DefaultTimeout,
		log:     ports.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BindAndRender fetches sourceURL, fills cfg's series data, axis titles,
// tooltip suffixes and subtitle from it and renders cfg exactly once. cfg is
// left untouched when the fetch or the document fails.
func (p *Pipeline) BindAndRender(ctx context.Context, cfg *chart.Configuration, sourceURL string) (*render.Chart, error) {
	if !p.used.CompareAndSwap(false, true) {
		return nil, newStateError("pipeline has already run")
	}
	return p.run(ctx, cfg, sourceURL)
}

func (p *Pipeline) run(ctx context.Context, cfg *chart.Configuration, sourceURL string) (*render.Chart, error) {
	if ports.GetCorrelationID(ctx) == "" {
		ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
	}
	log := p.log.With("source", sourceURL)

	if err := checkShape(cfg); err != nil {
		log.Error(ctx, "chart configuration rejected", "error", err)
		return nil, err
	}
	if p.fetcher == nil || p.engine == nil {
		return nil, newStateError("pipeline requires a fetcher and an engine")
	}

	log.Debug(ctx, "fetching source document", "timeout", p.timeout.String())
	started := time.Now()

	fetchCtx, cancel := context.WithTimeout(ctx, p.timeout)
	body, err := p.fetcher.Fetch(fetchCtx, sourceURL)
	cancel()
	if err != nil {
		bindErr := p.fetchFailure(sourceURL, err)
		log.Error(ctx, "source fetch failed", "code", string(bindErr.Code), "error", err)
		return nil, bindErr
	}
	log.Debug(ctx, "source document fetched", "bytes", len(body), "duration_ms", time.Since(started).Milliseconds())

	record, err := source.Decode(bytes.NewReader(body))
	if err != nil {
		log.Error(ctx, "source document rejected", "error", err)
		return nil, newMalformedError(sourceURL, err)
	}

	bind(cfg, record)
	log.Debug(ctx, "source document bound", "generated", *record.Generated)

	handle, err := p.engine.NewChart(ctx, cfg)
	if err != nil {
		log.Error(ctx, "chart render failed", "error", err)
		return nil, newError(ErrCodeRender, "chart could not be rendered", err, map[string]interface{}{
			"render_to": renderTarget(cfg),
		})
	}

	log.Info(ctx, "chart rendered", "render_to", handle.RenderTo, "format", handle.Format, "bytes", handle.Bytes)
	return handle, nil
}

func (p *Pipeline) fetchFailure(sourceURL string, err error) *Error {
	info := map[string]interface{}{"source": sourceURL}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		info["timeout"] = p.timeout.String()
		return newError(ErrCodeTimeout, "source document fetch timed out", err, info)
	case errors.Is(err, context.Canceled):
		return newError(ErrCodeCancelled, "source document fetch cancelled", err, info)
	}

	var fetchErr *wxerrors.FetchError
	if errors.As(err, &fetchErr) && fetchErr.StatusCode != 0 {
		info["status"] = fetchErr.StatusCode
	}
	return newError(ErrCodeFetch, "source document could not be fetched", err, info)
}

// bind writes the record into cfg. Series are assigned by position.
func bind(cfg *chart.Configuration, record *source.Record) {
	temps := record.TemperaturePlot.Series

	cfg.Series[chart.SeriesMeanRange].Data = temps.MeanMinMax.Data
	cfg.Series[chart.SeriesMean].Data = temps.Mean.Data
	cfg.Series[chart.SeriesMax].Data = temps.Max.Data
	cfg.Series[chart.SeriesMin].Data = temps.Min.Data
	cfg.Series[chart.SeriesRainfall].Data = record.RainPlot.Series.Average.Data

	cfg.YAxis[chart.AxisTemperature].Title.Text = chart.String("Temperature " + record.TemperatureLabel())
	cfg.YAxis[chart.AxisRainfall].Title.Text = chart.String("Rainfall " + record.RainLabel())

	cfg.PlotOptions.AreaSplineRange.Tooltip.ValueSuffix = chart.String(record.TemperatureUnits())
	cfg.PlotOptions.Spline.Tooltip.ValueSuffix = chart.String(record.TemperatureUnits())
	cfg.PlotOptions.Column.Tooltip.ValueSuffix = chart.String(record.RainUnits())

	cfg.Subtitle.Text = chart.String("Updated: " + *record.Generated)
}

// checkShape rejects configurations bind cannot write into.
func checkShape(cfg *chart.Configuration) error {
	switch {
	case cfg == nil:
		return newStateError("chart configuration is nil")
	case len(cfg.Series) != chart.SeriesCount:
		return newStateError(fmt.Sprintf("chart configuration has %d series, want %d", len(cfg.Series), chart.SeriesCount))
	case len(cfg.YAxis) != chart.AxisCount:
		return newStateError(fmt.Sprintf("chart configuration has %d y axes, want %d", len(cfg.YAxis), chart.AxisCount))
	case cfg.Subtitle == nil:
		return newStateError("chart configuration has no subtitle")
	case cfg.PlotOptions == nil:
		return newStateError("chart configuration has no plot options")
	}

	for i, axis := range cfg.YAxis {
		if axis.Title == nil {
			return newStateError(fmt.Sprintf("y axis %d has no title", i))
		}
	}

	groups := map[string]*chart.SeriesOptions{
		chart.TypeAreaSplineRange: cfg.PlotOptions.AreaSplineRange,
		chart.TypeSpline:          cfg.PlotOptions.Spline,
		chart.TypeColumn:          cfg.PlotOptions.Column,
	}
	for name, group := range groups {
		if group == nil || group.Tooltip == nil {
			return newStateError(fmt.Sprintf("plot options for %s have no tooltip", name))
		}
	}
	return nil
}

func renderTarget(cfg *chart.Configuration) string {
	if cfg.Chart == nil {
		return ""
	}
	return cfg.Chart.RenderTo
}

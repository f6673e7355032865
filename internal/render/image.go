package render

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/alexisbeaulieu97/wxaverages/internal/chart"
	wxerrors "github.com/alexisbeaulieu97/wxaverages/pkg/errors"
)

const (
	FormatPNG = "png"

	DefaultImageWidth  = 1024
	DefaultImageHeight = 512
)

var errNoPlottableData = errors.New("no series holds plottable data")

// ImageEngine rasterises charts to PNG. Series types map onto line plots:
// the range band becomes a filled high line masked by its low line, splines
// become lines and columns become filled areas on the secondary axis.
type ImageEngine struct {
	Defaults

	mu     sync.Mutex
	out    io.Writer
	width  int
	height int
}

// NewImageEngine returns an engine writing PNG images to out. Non-positive
// dimensions fall back to the defaults unless the chart sets its own.
func NewImageEngine(out io.Writer, width, height int) *ImageEngine {
	if width <= 0 {
		width = DefaultImageWidth
	}
	if height <= 0 {
		height = DefaultImageHeight
	}
	return &ImageEngine{out: out, width: width, height: height}
}

// NewChart renders cfg as a PNG image.
func (e *ImageEngine) NewChart(ctx context.Context, cfg *chart.Configuration) (*Chart, error) {
	target := renderTarget(cfg)
	if err := ctx.Err(); err != nil {
		return nil, wxerrors.NewRenderError(target, err)
	}

	effective, err := e.Apply(cfg)
	if err != nil {
		return nil, wxerrors.NewRenderError(target, err)
	}

	graph, err := buildGraph(effective, e.width, e.height)
	if err != nil {
		return nil, wxerrors.NewRenderError(target, err)
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, wxerrors.NewRenderError(target, err)
	}

	e.mu.Lock()
	n, err := e.out.Write(buf.Bytes())
	e.mu.Unlock()
	if err != nil {
		return nil, wxerrors.NewRenderError(target, err)
	}

	return &Chart{RenderTo: target, Options: effective, Format: FormatPNG, Bytes: n}, nil
}

func buildGraph(cfg *chart.Configuration, width, height int) (gochart.Chart, error) {
	if cfg.Chart != nil {
		if cfg.Chart.Width != nil && *cfg.Chart.Width > 0 {
			width = *cfg.Chart.Width
		}
		if cfg.Chart.Height != nil && *cfg.Chart.Height > 0 {
			height = *cfg.Chart.Height
		}
	}

	canvas := drawing.ColorWhite
	background := drawing.ColorWhite
	if cfg.Chart != nil {
		background = parseColor(cfg.Chart.BackgroundColor.Primary(), background)
		canvas = parseColor(cfg.Chart.PlotBackgroundColor.Primary(), canvas)
	}

	graph := gochart.Chart{
		Width:  width,
		Height: height,
		Background: gochart.Style{
			FillColor: background,
			Padding:   gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		Canvas: gochart.Style{FillColor: canvas},
	}

	if title := titleText(cfg); title != "" {
		graph.Title = title
		graph.TitleStyle = gochart.Style{FontColor: parseColor(styleColor(cfg.Title.Style), drawing.ColorBlack)}
	}

	if cfg.XAxis != nil {
		ticks := make([]gochart.Tick, len(cfg.XAxis.Categories))
		for i, label := range cfg.XAxis.Categories {
			ticks[i] = gochart.Tick{Value: float64(i), Label: label}
		}
		graph.XAxis = gochart.XAxis{
			Ticks: ticks,
			Style: axisStyle(cfg.XAxis),
		}
	}
	if len(cfg.YAxis) > chart.AxisTemperature {
		graph.YAxis = yAxis(cfg.YAxis[chart.AxisTemperature])
	}
	if len(cfg.YAxis) > chart.AxisRainfall {
		graph.YAxisSecondary = yAxis(cfg.YAxis[chart.AxisRainfall])
	}

	for _, s := range cfg.Series {
		graph.Series = append(graph.Series, plotSeries(s, canvas)...)
	}
	if len(graph.Series) == 0 {
		return graph, errNoPlottableData
	}

	if cfg.Legend == nil || cfg.Legend.Enabled == nil || *cfg.Legend.Enabled {
		graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}
	}
	return graph, nil
}

func plotSeries(s chart.Series, canvas drawing.Color) []gochart.Series {
	color := parseColor(s.Color, gochart.ColorBlue)
	axis := gochart.YAxisPrimary
	if s.YAxis != nil && *s.YAxis == chart.AxisRainfall {
		axis = gochart.YAxisSecondary
	}

	switch data := s.Data.(type) {
	case chart.Ranges:
		var xs, lows, highs []float64
		for i, point := range data {
			if len(point) != 2 || point[0] == nil || point[1] == nil {
				continue
			}
			xs = append(xs, float64(i))
			lows = append(lows, *point[0])
			highs = append(highs, *point[1])
		}
		if len(xs) == 0 {
			return nil
		}
		alpha := uint8(255)
		if s.FillOpacity != nil {
			alpha = uint8(clamp(*s.FillOpacity, 0, 1) * 255)
		}
		return []gochart.Series{
			gochart.ContinuousSeries{
				Name:    s.Name,
				YAxis:   axis,
				XValues: xs,
				YValues: highs,
				Style:   gochart.Style{StrokeColor: color, StrokeWidth: 1, FillColor: color.WithAlpha(alpha)},
			},
			gochart.ContinuousSeries{
				YAxis:   axis,
				XValues: append([]float64(nil), xs...),
				YValues: lows,
				Style:   gochart.Style{StrokeColor: color, StrokeWidth: 1, FillColor: canvas},
			},
		}
	case chart.Values:
		var xs, ys []float64
		for i, v := range data {
			if v == nil {
				continue
			}
			xs = append(xs, float64(i))
			ys = append(ys, *v)
		}
		if len(xs) == 0 {
			return nil
		}
		style := gochart.Style{StrokeColor: color, StrokeWidth: 2}
		if s.Type == chart.TypeColumn {
			style.FillColor = color.WithAlpha(160)
		}
		return []gochart.Series{gochart.ContinuousSeries{
			Name:    s.Name,
			YAxis:   axis,
			XValues: xs,
			YValues: ys,
			Style:   style,
		}}
	default:
		return nil
	}
}

func yAxis(axis chart.Axis) gochart.YAxis {
	out := gochart.YAxis{Style: axisStyle(&axis)}
	if axis.Title != nil && axis.Title.Text != nil {
		out.Name = *axis.Title.Text
		out.NameStyle = gochart.Style{FontColor: parseColor(styleColor(axis.Title.Style), drawing.ColorBlack)}
	}
	return out
}

func axisStyle(axis *chart.Axis) gochart.Style {
	style := gochart.Style{
		StrokeColor: parseColor(axis.LineColor, drawing.ColorBlack),
		StrokeWidth: 1,
	}
	if axis.LineWidth != nil {
		style.StrokeWidth = *axis.LineWidth
	}
	if axis.Labels != nil {
		style.FontColor = parseColor(styleColor(axis.Labels.Style), drawing.ColorBlack)
	}
	return style
}

func styleColor(s *chart.Style) string {
	if s == nil {
		return ""
	}
	return s.Color
}

// parseColor understands #rgb, #rrggbb, rgb() and rgba(). Anything else
// yields fallback.
func parseColor(raw string, fallback drawing.Color) drawing.Color {
	s := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return fallback
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return fallback
		}
		return drawing.ColorFromHex(hex)
	case strings.HasPrefix(strings.ToLower(s), "rgb"):
		open := strings.IndexByte(s, '(')
		end := strings.LastIndexByte(s, ')')
		if open < 0 || end <= open {
			return fallback
		}
		parts := strings.Split(s[open+1:end], ",")
		if len(parts) != 3 && len(parts) != 4 {
			return fallback
		}
		var channels [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
			if err != nil {
				return fallback
			}
			channels[i] = uint8(clamp(float64(v), 0, 255))
		}
		alpha := uint8(255)
		if len(parts) == 4 {
			a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
			if err != nil {
				return fallback
			}
			alpha = uint8(clamp(a, 0, 1) * 255)
		}
		return drawing.Color{R: channels[0], G: channels[1], B: channels[2], A: alpha}
	}
	return fallback
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var _ Engine = (*ImageEngine)(nil)

package chart

import (
	"encoding/json"
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// Series positions inside Configuration.Series. The order is also the
// z-order, range band at the back of the temperature plots and rainfall on
// the secondary axis behind everything.
const (
	SeriesMeanRange = iota
	SeriesMean
	SeriesMax
	SeriesMin
	SeriesRainfall

	SeriesCount
)

// Axis positions inside Configuration.YAxis.
const (
	AxisTemperature = iota
	AxisRainfall

	AxisCount
)

// Series type names understood by the rendering engines.
const (
	TypeAreaSplineRange = "areasplinerange"
	TypeSpline          = "spline"
	TypeColumn          = "column"
)

// Configuration is a complete Highcharts options tree. JSON field names match
// the Highcharts API so a marshalled Configuration can be handed to the
// library unchanged.
type Configuration struct {
	Chart       *Canvas      `json:"chart,omitempty"`
	Colors      []string     `json:"colors,omitempty"`
	Labels      *Labels      `json:"labels,omitempty"`
	Legend      *Legend      `json:"legend,omitempty"`
	Navigation  *Navigation  `json:"navigation,omitempty"`
	PlotOptions *PlotOptions `json:"plotOptions,omitempty"`
	Series      []Series     `json:"series,omitempty"`
	Subtitle    *Title       `json:"subtitle,omitempty"`
	Title       *Title       `json:"title,omitempty"`
	Toolbar     *Toolbar     `json:"toolbar,omitempty"`
	Tooltip     *Tooltip     `json:"tooltip,omitempty"`
	XAxis       *Axis        `json:"xAxis,omitempty"`
	YAxis       []Axis       `json:"yAxis,omitempty"`
}

// Canvas maps to the Highcharts "chart" group.
type Canvas struct {
	BackgroundColor     *Color   `json:"backgroundColor,omitempty"`
	BorderColor         string   `json:"borderColor,omitempty"`
	BorderRadius        *float64 `json:"borderRadius,omitempty"`
	BorderWidth         *float64 `json:"borderWidth,omitempty"`
	Height              *int     `json:"height,omitempty"`
	PlotBackgroundColor *Color   `json:"plotBackgroundColor,omitempty"`
	PlotBorderWidth     *float64 `json:"plotBorderWidth,omitempty"`
	PlotShadow          *bool    `json:"plotShadow,omitempty"`
	RenderTo            string   `json:"renderTo,omitempty"`
	Width               *int     `json:"width,omitempty"`
}

// Color is either a plain CSS color or a linear gradient.
type Color struct {
	Solid    string
	Gradient *Gradient
}

// SolidColor wraps a CSS color string.
func SolidColor(c string) *Color { return &Color{Solid: c} }

// MarshalJSON emits the gradient object when present, otherwise the color string.
func (c Color) MarshalJSON() ([]byte, error) {
	if c.Gradient != nil {
		return json.Marshal(c.Gradient)
	}
	return json.Marshal(c.Solid)
}

// Primary returns the color a flat renderer should use: the solid color or
// the first gradient stop.
func (c *Color) Primary() string {
	if c == nil {
		return ""
	}
	if c.Gradient != nil && len(c.Gradient.Stops) > 0 {
		return c.Gradient.Stops[0].Color
	}
	return c.Solid
}

// Gradient is a Highcharts linear gradient.
type Gradient struct {
	LinearGradient LinearGradient `json:"linearGradient"`
	Stops          []GradientStop `json:"stops"`
}

// LinearGradient holds the gradient vector in relative coordinates.
type LinearGradient struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// GradientStop marshals as the [offset, color] pair Highcharts expects.
type GradientStop struct {
	Offset float64
	Color  string
}

func (s GradientStop) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{s.Offset, s.Color})
}

// Style is a subset of CSS used for chart text.
type Style struct {
	Color      string `json:"color,omitempty"`
	Font       string `json:"font,omitempty"`
	FontSize   string `json:"fontSize,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`
	WhiteSpace string `json:"whiteSpace,omitempty"`
}

type Labels struct {
	Style *Style `json:"style,omitempty"`
}

type Legend struct {
	BorderWidth     *float64 `json:"borderWidth,omitempty"`
	Enabled         *bool    `json:"enabled,omitempty"`
	ItemHiddenStyle *Style   `json:"itemHiddenStyle,omitempty"`
	ItemHoverStyle  *Style   `json:"itemHoverStyle,omitempty"`
	ItemStyle       *Style   `json:"itemStyle,omitempty"`
	Margin          *float64 `json:"margin,omitempty"`
	Padding         *float64 `json:"padding,omitempty"`
	SymbolHeight    *float64 `json:"symbolHeight,omitempty"`
	SymbolPadding   *float64 `json:"symbolPadding,omitempty"`
	SymbolRadius    *float64 `json:"symbolRadius,omitempty"`
	SymbolWidth     *float64 `json:"symbolWidth,omitempty"`
}

type Navigation struct {
	ButtonOptions *ButtonOptions `json:"buttonOptions,omitempty"`
}

type ButtonOptions struct {
	HoverSymbolStroke string       `json:"hoverSymbolStroke,omitempty"`
	SymbolStroke      string       `json:"symbolStroke,omitempty"`
	Theme             *ButtonTheme `json:"theme,omitempty"`
}

type ButtonTheme struct {
	Fill   *Color `json:"fill,omitempty"`
	Stroke string `json:"stroke,omitempty"`
}

type Toolbar struct {
	ItemStyle *Style `json:"itemStyle,omitempty"`
}

// PlotOptions carries per-series-type defaults.
type PlotOptions struct {
	AreaSplineRange *SeriesOptions `json:"areasplinerange,omitempty"`
	Column          *SeriesOptions `json:"column,omitempty"`
	Spline          *SeriesOptions `json:"spline,omitempty"`
}

type SeriesOptions struct {
	BorderWidth *float64       `json:"borderWidth,omitempty"`
	LineWidth   *float64       `json:"lineWidth,omitempty"`
	Marker      *Marker        `json:"marker,omitempty"`
	Shadow      *bool          `json:"shadow,omitempty"`
	Tooltip     *SeriesTooltip `json:"tooltip,omitempty"`
}

type Marker struct {
	Enabled *bool    `json:"enabled,omitempty"`
	Radius  *float64 `json:"radius,omitempty"`
	Symbol  string   `json:"symbol,omitempty"`
}

type SeriesTooltip struct {
	ValueSuffix *string `json:"valueSuffix,omitempty"`
}

// Series is one plotted data sequence. Data is nil until bound and then holds
// Values or Ranges.
type Series struct {
	Color       string   `json:"color,omitempty"`
	Data        any      `json:"data,omitempty"`
	FillOpacity *float64 `json:"fillOpacity,omitempty"`
	Name        string   `json:"name,omitempty"`
	Type        string   `json:"type,omitempty"`
	YAxis       *int     `json:"yAxis,omitempty"`
	ZIndex      *int     `json:"zIndex,omitempty"`
}

// Title is used for the title, the subtitle and axis titles.
type Title struct {
	Align  string   `json:"align,omitempty"`
	Margin *float64 `json:"margin,omitempty"`
	Style  *Style   `json:"style,omitempty"`
	Text   *string  `json:"text,omitempty"`
	X      *float64 `json:"x,omitempty"`
}

type Tooltip struct {
	BackgroundColor string   `json:"backgroundColor,omitempty"`
	BorderWidth     *float64 `json:"borderWidth,omitempty"`
	Crosshairs      []bool   `json:"crosshairs,omitempty"`
	Enabled         *bool    `json:"enabled,omitempty"`
	Shared          *bool    `json:"shared,omitempty"`
	Style           *Style   `json:"style,omitempty"`
	ValueSuffix     *string  `json:"valueSuffix,omitempty"`
}

type Axis struct {
	AllowDecimals      *bool    `json:"allowDecimals,omitempty"`
	Categories         []string `json:"categories,omitempty"`
	EndOnTick          *bool    `json:"endOnTick,omitempty"`
	GridLineColor      string   `json:"gridLineColor,omitempty"`
	GridLineWidth      *float64 `json:"gridLineWidth,omitempty"`
	Labels             *Labels  `json:"labels,omitempty"`
	LineColor          string   `json:"lineColor,omitempty"`
	LineWidth          *float64 `json:"lineWidth,omitempty"`
	MinorGridLineWidth *float64 `json:"minorGridLineWidth,omitempty"`
	MinorTickColor     string   `json:"minorTickColor,omitempty"`
	MinorTickInterval  string   `json:"minorTickInterval,omitempty"`
	MinorTickLength    *float64 `json:"minorTickLength,omitempty"`
	MinorTickWidth     *float64 `json:"minorTickWidth,omitempty"`
	Opposite           *bool    `json:"opposite,omitempty"`
	ShowLastLabel      *bool    `json:"showLastLabel,omitempty"`
	StartOnTick        *bool    `json:"startOnTick,omitempty"`
	TickColor          string   `json:"tickColor,omitempty"`
	TickWidth          *float64 `json:"tickWidth,omitempty"`
	Title              *Title   `json:"title,omitempty"`
}

// Clone returns a deep copy that shares no pointers, slices or series data
// with c.
func (c *Configuration) Clone() (*Configuration, error) {
	if c == nil {
		return nil, nil
	}
	var out Configuration
	if err := deepcopy.Copy(&out, *c); err != nil {
		return nil, fmt.Errorf("clone configuration: %w", err)
	}
	return &out, nil
}

// Complete reports whether every series has been given data.
func (c *Configuration) Complete() bool {
	if c == nil || len(c.Series) != SeriesCount {
		return false
	}
	for _, s := range c.Series {
		if s.Data == nil {
			return false
		}
	}
	return true
}

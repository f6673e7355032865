// Package theme declares the gray averages theme and registers it with a
// rendering engine.
package theme

import (
	"github.com/alexisbeaulieu97/wxaverages/internal/chart"
)

const (
	textColor = "#555"
	titleFont = "16px Lucida Grande, Lucida Sans Unicode, Verdana, Arial, Helvetica, sans-serif"
	axisFont  = "bold 12px Lucida Grande, Lucida Sans Unicode, Verdana, Arial, Helvetica, sans-serif"
)

// Registrar is the part of a rendering engine the theme needs.
type Registrar interface {
	SetOptions(defaults chart.Configuration)
}

// Apply registers the gray theme as rec's default options. Charts created
// before the call are unaffected. Calling it again re-registers the same
// values.
func Apply(rec Registrar) {
	rec.SetOptions(Gray())
}

// Gray returns the averages theme, based on the Highcharts gray theme. Every
// call builds a fresh value so callers cannot alter the theme for others.
func Gray() chart.Configuration {
	return chart.Configuration{
		Chart: &chart.Canvas{
			BackgroundColor: chart.SolidColor("rgb(208, 208, 208)"),
			BorderWidth:     chart.Float(1),
			BorderColor:     "#000000",
			BorderRadius:    chart.Float(8),
			PlotShadow:      chart.Bool(false),
			PlotBorderWidth: chart.Float(0),
		},
		Colors: []string{
			"#B44242", "#4242B4", "#42B442", "#DF5353", "#aaeeee", "#ff0066",
			"#eeaaee", "#55BF3B", "#DF5353", "#7798BF", "#aaeeee",
		},
		Labels: &chart.Labels{Style: &chart.Style{Color: "#CCC"}},
		Legend: &chart.Legend{
			BorderWidth:     chart.Float(0),
			ItemStyle:       &chart.Style{Color: textColor},
			ItemHoverStyle:  &chart.Style{Color: "#FFF"},
			ItemHiddenStyle: &chart.Style{Color: "#999"},
			Margin:          chart.Float(5),
			Padding:         chart.Float(4),
			SymbolPadding:   chart.Float(2),
		},
		PlotOptions: &chart.PlotOptions{
			Column: &chart.SeriesOptions{Shadow: chart.Bool(false)},
		},
		Subtitle: &chart.Title{Style: &chart.Style{Color: textColor}},
		Title: &chart.Title{
			Margin: chart.Float(5),
			Style:  &chart.Style{Color: textColor, Font: titleFont},
		},
		XAxis: &chart.Axis{
			Labels: &chart.Labels{Style: &chart.Style{
				Color:      textColor,
				FontWeight: "bold",
				WhiteSpace: "nowrap",
			}},
			MinorGridLineWidth: chart.Float(0),
			MinorTickInterval:  "auto",
			MinorTickLength:    chart.Float(10),
			TickColor:          textColor,
			Title:              &chart.Title{Style: &chart.Style{Color: textColor}},
		},
		YAxis: []chart.Axis{{
			AllowDecimals:     chart.Bool(false),
			GridLineColor:     "#AAA",
			GridLineWidth:     chart.Float(1),
			Labels:            &chart.Labels{Style: &chart.Style{Color: textColor}},
			LineWidth:         chart.Float(1),
			MinorTickColor:    textColor,
			MinorTickInterval: "auto",
			MinorTickLength:   chart.Float(2),
			MinorTickWidth:    chart.Float(1),
			TickWidth:         chart.Float(1),
			Title:             &chart.Title{Style: &chart.Style{Color: textColor, Font: axisFont}},
		}},
		Toolbar: &chart.Toolbar{ItemStyle: &chart.Style{Color: "#CCC"}},
		Tooltip: &chart.Tooltip{
			BackgroundColor: "rgba(255, 255, 204, .7)",
			BorderWidth:     chart.Float(0),
			Style:           &chart.Style{Color: textColor},
		},
		Navigation: &chart.Navigation{ButtonOptions: &chart.ButtonOptions{
			SymbolStroke:      "#DDDDDD",
			HoverSymbolStroke: "#FFFFFF",
			Theme: &chart.ButtonTheme{
				Fill: &chart.Color{Gradient: &chart.Gradient{
					LinearGradient: chart.LinearGradient{X1: 0, Y1: 0, X2: 0, Y2: 1},
					Stops: []chart.GradientStop{
						{Offset: 0.4, Color: "#606060"},
						{Offset: 0.6, Color: "#333333"},
					},
				}},
				Stroke: "#000000",
			},
		}},
	}
}

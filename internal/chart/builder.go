package chart

// Build assembles the averages chart configuration from opts. It performs no
// validation and no I/O: every series is present without data, axis titles
// and tooltip value suffixes are present but empty, ready for the binding
// step to fill in.
func Build(opts Options) *Configuration {
	return &Configuration{
		Chart: &Canvas{
			PlotBackgroundColor: &Color{Gradient: &Gradient{
				LinearGradient: LinearGradient{X1: 0, Y1: 0, X2: 1, Y2: 1},
				Stops: []GradientStop{
					{Offset: 0, Color: opts.BackgroundColorStop1},
					{Offset: 1, Color: opts.BackgroundColorStop2},
				},
			}},
			RenderTo: opts.RenderTo,
		},
		Legend: &Legend{
			Enabled:      Bool(opts.ShowLegend),
			SymbolHeight: Float(12),
			SymbolRadius: Float(0),
			SymbolWidth:  Float(12),
		},
		PlotOptions: &PlotOptions{
			AreaSplineRange: &SeriesOptions{
				LineWidth: Float(0),
				Marker:    buildMarker(opts),
				Tooltip:   &SeriesTooltip{ValueSuffix: String("")},
			},
			Column: &SeriesOptions{
				BorderWidth: Float(0),
				Tooltip:     &SeriesTooltip{ValueSuffix: String("")},
			},
			Spline: &SeriesOptions{
				LineWidth: Float(1),
				Marker:    buildMarker(opts),
				Tooltip:   &SeriesTooltip{ValueSuffix: String("")},
			},
		},
		Series: buildSeries(opts),
		Subtitle: &Title{
			Align: opts.UpdatedAlign,
			Style: &Style{FontSize: opts.UpdatedFontSize},
			Text:  String(""),
			X:     Float(opts.UpdatedXOffset),
		},
		Title: &Title{Text: String(opts.Title)},
		Tooltip: &Tooltip{
			Crosshairs:  []bool{true, false},
			Enabled:     Bool(opts.EnableTooltip),
			Shared:      Bool(true),
			Style:       &Style{FontSize: opts.TooltipFontSize},
			ValueSuffix: String(""),
		},
		XAxis: &Axis{
			Categories: append([]string(nil), opts.Months...),
			LineColor:  opts.XAxisLineColor,
			LineWidth:  Float(opts.XAxisLineWidth),
			Title: &Title{
				Style: &Style{Color: opts.XAxisTitleColor, Font: opts.XAxisTitleFont},
			},
		},
		YAxis: []Axis{
			AxisTemperature: {
				EndOnTick:          Bool(true),
				LineColor:          opts.YAxisLineColor,
				LineWidth:          Float(opts.YAxisLineWidth),
				MinorGridLineWidth: Float(0),
				ShowLastLabel:      Bool(true),
				StartOnTick:        Bool(true),
				Title: &Title{
					Style: &Style{Color: opts.YAxisTitleColor, Font: opts.YAxisTitleFont},
					Text:  String(""),
				},
			},
			AxisRainfall: {
				LineColor: opts.YAxisLineColor,
				LineWidth: Float(opts.YAxisLineWidth),
				Opposite:  Bool(true),
				Title:     &Title{Text: String("")},
			},
		},
	}
}

func buildMarker(opts Options) *Marker {
	return &Marker{
		Enabled: Bool(opts.MarkerEnabled),
		Radius:  Float(1),
		Symbol:  opts.MarkerSymbol,
	}
}

func buildSeries(opts Options) []Series {
	series := make([]Series, SeriesCount)
	series[SeriesMeanRange] = Series{
		Name:        opts.AvTempRangeLabel,
		Type:        TypeAreaSplineRange,
		Color:       opts.AvTempRangeColor,
		FillOpacity: Float(opts.AvTempRangeOpacity),
		ZIndex:      Int(4),
	}
	series[SeriesMean] = Series{
		Name:   opts.AvTempLabel,
		Type:   TypeSpline,
		Color:  opts.AvTempColor,
		ZIndex: Int(3),
	}
	series[SeriesMax] = Series{
		Name:   opts.MaxTempLabel,
		Type:   TypeSpline,
		Color:  opts.MaxTempColor,
		ZIndex: Int(2),
	}
	series[SeriesMin] = Series{
		Name:   opts.MinTempLabel,
		Type:   TypeSpline,
		Color:  opts.MinTempColor,
		ZIndex: Int(1),
	}
	series[SeriesRainfall] = Series{
		Name:   opts.AvgRainfallLabel,
		Type:   TypeColumn,
		Color:  opts.AvgRainfallColor,
		ZIndex: Int(0),
		YAxis:  Int(AxisRainfall),
	}
	return series
}

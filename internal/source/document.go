package source

import "github.com/alexisbeaulieu97/wxaverages/internal/chart"

// Document is the averages payload as written by the report generator: a
// JSON array holding a single Record.
type Document []Record

// Record carries the temperature and rainfall plots and the generation
// timestamp.
type Record struct {
	TemperaturePlot *TemperaturePlot `json:"temperatureplot" validate:"required"`
	RainPlot        *RainPlot        `json:"rainplot" validate:"required"`
	Generated       *string          `json:"generated" validate:"required"`
}

type TemperaturePlot struct {
	Series     *TemperatureSeries `json:"series" validate:"required"`
	YAxisLabel *Text              `json:"yAxisLabel" validate:"required"`
	YAxisUnits *Text              `json:"yAxisUnits" validate:"required"`
}

type TemperatureSeries struct {
	MeanMinMax *RangeSeries `json:"outTempMeanMinMax" validate:"required"`
	Mean       *ValueSeries `json:"outTempMean" validate:"required"`
	Max        *ValueSeries `json:"outTempMax" validate:"required"`
	Min        *ValueSeries `json:"outTempMin" validate:"required"`
}

type RainPlot struct {
	Series     *RainSeries `json:"series" validate:"required"`
	YAxisLabel *Text       `json:"yAxisLabel" validate:"required"`
	YAxisUnits *Text       `json:"yAxisUnits" validate:"required"`
}

type RainSeries struct {
	Average *ValueSeries `json:"rainAvg" validate:"required"`
}

// Text is a {"text": "..."} holder. An empty string is allowed, a missing key
// is not.
type Text struct {
	Text *string `json:"text" validate:"required"`
}

// RangeSeries holds [low, high] pairs; either value may be null.
type RangeSeries struct {
	Data chart.Ranges `json:"data" validate:"required,dive,len=2"`
}

// ValueSeries holds one value per month; values may be null.
type ValueSeries struct {
	Data chart.Values `json:"data" validate:"required"`
}

// TemperatureLabel returns the temperature axis label text.
func (r *Record) TemperatureLabel() string { return *r.TemperaturePlot.YAxisLabel.Text }

// TemperatureUnits returns the temperature unit suffix.
func (r *Record) TemperatureUnits() string { return *r.TemperaturePlot.YAxisUnits.Text }

// RainLabel returns the rainfall axis label text.
func (r *Record) RainLabel() string { return *r.RainPlot.YAxisLabel.Text }

// RainUnits returns the rainfall unit suffix.
func (r *Record) RainUnits() string { return *r.RainPlot.YAxisUnits.Text }

// Package render turns a finished chart.Configuration into output. Each
// engine owns its default options; nothing is shared between engines.
package render

import (
	"context"

	"github.com/alexisbeaulieu97/wxaverages/internal/chart"
)

// Engine is the rendering contract consumed by the binding pipeline and the
// theme.
type Engine interface {
	// SetOptions registers defaults applied to every chart constructed
	// afterwards. The last registration wins.
	SetOptions(defaults chart.Configuration)
	// NewChart renders cfg once and returns a handle to the result. cfg is
	// not modified.
	NewChart(ctx context.Context, cfg *chart.Configuration) (*Chart, error)
}

// Chart is the handle returned for a rendered chart.
type Chart struct {
	RenderTo string
	// Options is the effective configuration after defaults were applied.
	Options *chart.Configuration
	Format  string
	Bytes   int
}

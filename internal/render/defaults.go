package render

import (
	"fmt"
	"reflect"
	"sync"

	"dario.cat/mergo"
	"github.com/tiendc/go-deepcopy"

	"github.com/alexisbeaulieu97/wxaverages/internal/chart"
)

// Defaults holds the engine-wide options registered through SetOptions and
// applies them beneath each chart's own options. The registered value is
// never handed out; every Apply works on private copies.
type Defaults struct {
	mu   sync.RWMutex
	opts *chart.Configuration
}

// SetOptions replaces the registered defaults.
func (d *Defaults) SetOptions(defaults chart.Configuration) {
	stored, err := defaults.Clone()
	if err != nil {
		stored = &defaults
	}
	d.mu.Lock()
	d.opts = stored
	d.mu.Unlock()
}

// Registered reports whether any defaults have been set.
func (d *Defaults) Registered() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.opts != nil
}

// Apply returns a copy of cfg with the registered defaults filled in wherever
// cfg leaves an option unset. Values set on cfg always win, including explicit
// false and zero. A single defaults yAxis entry applies to every axis of the
// chart, and series without a color take one from the defaults palette in
// order.
func (d *Defaults) Apply(cfg *chart.Configuration) (*chart.Configuration, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil chart configuration")
	}
	out, err := cfg.Clone()
	if err != nil {
		return nil, err
	}

	d.mu.RLock()
	registered := d.opts
	d.mu.RUnlock()
	if registered == nil {
		return out, nil
	}

	base, err := registered.Clone()
	if err != nil {
		return nil, err
	}
	axisDefaults := base.YAxis
	base.YAxis = nil

	if err := mergo.Merge(out, base, mergo.WithTransformers(keepExplicit{})); err != nil {
		return nil, fmt.Errorf("apply default options: %w", err)
	}

	if len(axisDefaults) > 0 {
		if len(out.YAxis) == 0 {
			out.YAxis = []chart.Axis{{}}
		}
		for i := range out.YAxis {
			var axis chart.Axis
			if err := deepcopy.Copy(&axis, axisDefaults[0]); err != nil {
				return nil, fmt.Errorf("copy axis defaults: %w", err)
			}
			if err := mergo.Merge(&out.YAxis[i], axis, mergo.WithTransformers(keepExplicit{})); err != nil {
				return nil, fmt.Errorf("apply axis defaults: %w", err)
			}
		}
	}

	if len(out.Colors) > 0 {
		for i := range out.Series {
			if out.Series[i].Color == "" {
				out.Series[i].Color = out.Colors[i%len(out.Colors)]
			}
		}
	}

	return out, nil
}

var explicitTypes = map[reflect.Type]struct{}{
	reflect.TypeOf((*bool)(nil)):    {},
	reflect.TypeOf((*int)(nil)):     {},
	reflect.TypeOf((*float64)(nil)): {},
	reflect.TypeOf((*string)(nil)):  {},
}

// keepExplicit stops mergo from descending into a set scalar pointer, which
// would otherwise overwrite an explicit false or zero with the default.
type keepExplicit struct{}

func (keepExplicit) Transformer(t reflect.Type) func(dst, src reflect.Value) error {
	if _, ok := explicitTypes[t]; ok {
		return func(dst, src reflect.Value) error { return nil }
	}
	return nil
}

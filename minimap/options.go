package minimap

import (
	"time"

	"github.com/gogpu/panzoom"
)

// Option configures a Projector during creation.
type Option func(*options)

type options struct {
	panel        panzoom.Rect
	newID        panzoom.IDGenerator
	initialDelay time.Duration
	now          func() time.Time
}

// defaultOptions places the panel in the bottom-right corner of the
// viewport, inset by the configured margin.
func defaultOptions(cfg panzoom.Config, viewport panzoom.Point) options {
	return options{
		panel: panzoom.NewRect(
			viewport.X-cfg.OverviewWidth-cfg.OverviewMargin,
			viewport.Y-cfg.OverviewHeight-cfg.OverviewMargin,
			cfg.OverviewWidth,
			cfg.OverviewHeight,
		),
		newID:        panzoom.NewID,
		initialDelay: cfg.InitialRefreshDelay,
		now:          time.Now,
	}
}

// WithPanel sets the panel's initial screen rectangle.
func WithPanel(r panzoom.Rect) Option {
	return func(o *options) {
		o.panel = r
	}
}

// WithIDGenerator replaces the random identifier source used by CreateProxy.
func WithIDGenerator(gen panzoom.IDGenerator) Option {
	return func(o *options) {
		o.newID = gen
	}
}

// WithInitialRefreshDelay overrides the configured first-refresh delay.
func WithInitialRefreshDelay(d time.Duration) Option {
	return func(o *options) {
		o.initialDelay = d
	}
}

// WithClock sets the time source used to schedule the first refresh.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

package panzoom

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Default configuration values.
const (
	DefaultCanvasWidth       = 10000
	DefaultCanvasHeight      = 10000
	DefaultMinScale          = 0.1
	DefaultMaxScale          = 5.0
	DefaultWheelStep         = 0.1
	DefaultDoubleClickFactor = 2.0

	DefaultDoubleClickInterval = 300 * time.Millisecond
	DefaultDoubleClickSlop     = 4.0
)

// Config holds the tunables shared by the controller, the overview
// projector, the editor and the desktop host.
type Config struct {
	// Logical world size. Not enforced on pan/zoom; used for projection,
	// centering and rectangle drag restriction.
	CanvasWidth  float64 `env:"PANZOOM_CANVAS_WIDTH"  envDefault:"10000"`
	CanvasHeight float64 `env:"PANZOOM_CANVAS_HEIGHT" envDefault:"10000"`

	MinScale          float64 `env:"PANZOOM_MIN_SCALE"           envDefault:"0.1"`
	MaxScale          float64 `env:"PANZOOM_MAX_SCALE"           envDefault:"5"`
	WheelStep         float64 `env:"PANZOOM_WHEEL_STEP"          envDefault:"0.1"`
	DoubleClickFactor float64 `env:"PANZOOM_DOUBLE_CLICK_FACTOR" envDefault:"2"`

	// Screen size of the viewport in pixels.
	ViewportWidth  float64 `env:"PANZOOM_VIEWPORT_WIDTH"  envDefault:"1280"`
	ViewportHeight float64 `env:"PANZOOM_VIEWPORT_HEIGHT" envDefault:"720"`

	// Overview panel size and its margin from the viewport's bottom-right corner.
	OverviewWidth  float64 `env:"PANZOOM_OVERVIEW_WIDTH"  envDefault:"200"`
	OverviewHeight float64 `env:"PANZOOM_OVERVIEW_HEIGHT" envDefault:"200"`
	OverviewMargin float64 `env:"PANZOOM_OVERVIEW_MARGIN" envDefault:"20"`

	// Delay before the first viewport indicator refresh.
	InitialRefreshDelay time.Duration `env:"PANZOOM_INITIAL_REFRESH_DELAY" envDefault:"100ms"`

	// Pointer travel, in screen pixels, below which a press and release on
	// the overview panel counts as a click rather than a panel drag.
	DragDeadZone float64 `env:"PANZOOM_DRAG_DEAD_ZONE" envDefault:"4"`

	// Two clicks form a double-click when the second follows the first
	// within DoubleClickInterval and lands within DoubleClickSlop pixels.
	DoubleClickInterval time.Duration `env:"PANZOOM_DOUBLE_CLICK_INTERVAL" envDefault:"300ms"`
	DoubleClickSlop     float64       `env:"PANZOOM_DOUBLE_CLICK_SLOP"     envDefault:"4"`
}

// DefaultConfig returns the configuration used when no environment
// overrides are present.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:         DefaultCanvasWidth,
		CanvasHeight:        DefaultCanvasHeight,
		MinScale:            DefaultMinScale,
		MaxScale:            DefaultMaxScale,
		WheelStep:           DefaultWheelStep,
		DoubleClickFactor:   DefaultDoubleClickFactor,
		ViewportWidth:       1280,
		ViewportHeight:      720,
		OverviewWidth:       200,
		OverviewHeight:      200,
		OverviewMargin:      20,
		InitialRefreshDelay: 100 * time.Millisecond,
		DragDeadZone:        4,
		DoubleClickInterval: DefaultDoubleClickInterval,
		DoubleClickSlop:     DefaultDoubleClickSlop,
	}
}

// LoadConfigFromEnv parses PANZOOM_* environment variables on top of the
// defaults and validates the result.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration that would make the coordinate model
// degenerate (division by a zero canvas size, an empty zoom range).
func (c Config) Validate() error {
	switch {
	case c.CanvasWidth <= 0 || c.CanvasHeight <= 0:
		return fmt.Errorf("%w: canvas size %gx%g", ErrInvalidConfig, c.CanvasWidth, c.CanvasHeight)
	case c.MinScale <= 0 || c.MaxScale < c.MinScale:
		return fmt.Errorf("%w: scale bounds [%g, %g]", ErrInvalidConfig, c.MinScale, c.MaxScale)
	case c.WheelStep <= 0 || c.WheelStep >= 1:
		return fmt.Errorf("%w: wheel step %g", ErrInvalidConfig, c.WheelStep)
	case c.DoubleClickFactor <= 0:
		return fmt.Errorf("%w: double-click factor %g", ErrInvalidConfig, c.DoubleClickFactor)
	case c.OverviewWidth <= 0 || c.OverviewHeight <= 0:
		return fmt.Errorf("%w: overview size %gx%g", ErrInvalidConfig, c.OverviewWidth, c.OverviewHeight)
	case c.DoubleClickInterval <= 0 || c.DoubleClickSlop < 0:
		return fmt.Errorf("%w: double-click window %v/%gpx", ErrInvalidConfig, c.DoubleClickInterval, c.DoubleClickSlop)
	}
	return nil
}

// CanvasBounds returns the world-space rectangle of the logical canvas.
func (c Config) CanvasBounds() Rect {
	return Rect{Width: c.CanvasWidth, Height: c.CanvasHeight}
}

// ViewportSize returns the viewport dimensions as a point.
func (c Config) ViewportSize() Point {
	return Point{X: c.ViewportWidth, Y: c.ViewportHeight}
}

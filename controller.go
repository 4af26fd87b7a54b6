package panzoom

import (
	"fmt"
	"log/slog"
	"slices"
)

// Observer receives a snapshot of the transform after every change.
type Observer func(Transform)

type observer struct {
	id uint32
	fn Observer
}

// Controller is the single source of truth for the screen/world transform.
// It converts pan and zoom input into transform updates and notifies its
// observers synchronously, in subscription order, after each one.
//
// A Controller is not safe for concurrent use; drive it from one event loop.
type Controller struct {
	cfg      Config
	t        Transform
	viewport Point

	disablePan bool
	dragging   bool
	dragAnchor Point // pointer position minus translation at drag start

	observers []observer
	nextID    uint32
}

// NewController creates a controller for the configured canvas and viewport.
// Unless WithInitialTransform is given, the canvas starts centered in the
// viewport at scale 1.
func NewController(cfg Config, opts ...ControllerOption) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}

	options := defaultControllerOptions()
	for _, opt := range opts {
		opt(&options)
	}

	c := &Controller{
		cfg:      cfg,
		viewport: cfg.ViewportSize(),
	}
	for _, fn := range options.observers {
		c.Subscribe(fn)
	}
	if options.initial != nil {
		c.apply(*options.initial)
	} else {
		c.apply(c.centered(1))
	}
	return c, nil
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}

// Transform returns a snapshot of the current transform.
func (c *Controller) Transform() Transform {
	return c.t
}

// Pan sets the translation, keeping the scale. Panning is unbounded.
func (c *Controller) Pan(x, y float64) {
	c.apply(Transform{TranslateX: x, TranslateY: y, Scale: c.t.Scale})
}

// SetPanAndScale sets all three transform fields. The caller is
// responsible for keeping scale within the configured bounds.
func (c *Controller) SetPanAndScale(x, y, scale float64) {
	c.apply(Transform{TranslateX: x, TranslateY: y, Scale: scale})
}

// SetOptions applies runtime toggles.
func (c *Controller) SetOptions(o Options) {
	c.disablePan = o.DisablePan
}

// PanDisabled reports whether drag-to-pan is currently refused.
func (c *Controller) PanDisabled() bool {
	return c.disablePan
}

// SetViewportSize records the viewport dimensions in screen pixels.
// It does not change the transform, but observers are notified so that
// size-dependent views (the overview indicator) refresh.
func (c *Controller) SetViewportSize(w, h float64) {
	if c.viewport.X == w && c.viewport.Y == h {
		return
	}
	c.viewport = Point{X: w, Y: h}
	c.notify()
}

// ViewportSize returns the viewport dimensions in screen pixels.
func (c *Controller) ViewportSize() Point {
	return c.viewport
}

// ViewportCenter returns the center of the viewport in screen space.
func (c *Controller) ViewportCenter() Point {
	return c.viewport.Div(2)
}

// Center pans so that the canvas is centered in the viewport at the
// current scale.
func (c *Controller) Center() {
	c.apply(c.centered(c.t.Scale))
}

func (c *Controller) centered(scale float64) Transform {
	return Transform{
		TranslateX: (c.viewport.X - c.cfg.CanvasWidth*scale) / 2,
		TranslateY: (c.viewport.Y - c.cfg.CanvasHeight*scale) / 2,
		Scale:      scale,
	}
}

// BeginDrag starts a drag-to-pan gesture at screen point p. It returns
// false, and changes nothing, when panning is disabled or a drag is
// already in progress.
func (c *Controller) BeginDrag(p Point) bool {
	if c.disablePan || c.dragging {
		return false
	}
	c.dragging = true
	c.dragAnchor = p.Sub(c.t.Translation())
	Logger().Debug("pan drag started", slog.Float64("x", p.X), slog.Float64("y", p.Y))
	return true
}

// Drag moves the canvas so that the point grabbed by BeginDrag follows p.
// Without an active drag it does nothing.
func (c *Controller) Drag(p Point) {
	if !c.dragging {
		return
	}
	t := p.Sub(c.dragAnchor)
	c.Pan(t.X, t.Y)
}

// EndDrag finishes the drag-to-pan gesture, if any.
func (c *Controller) EndDrag() {
	if c.dragging {
		c.dragging = false
		Logger().Debug("pan drag ended")
	}
}

// Dragging reports whether a drag-to-pan gesture is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Wheel zooms one step around screen point p. A negative deltaY (wheel
// rotated away from the user) zooms in. The resulting scale is clamped to
// the configured bounds; when clamping leaves the scale unchanged nothing
// is applied and observers are not notified.
func (c *Controller) Wheel(p Point, deltaY float64) {
	cur := c.Transform()
	factor := 1 - c.cfg.WheelStep
	if deltaY < 0 {
		factor = 1 + c.cfg.WheelStep
	}
	scale := ClampScale(cur.Scale*factor, c.cfg.MinScale, c.cfg.MaxScale)
	if scale == cur.Scale {
		return
	}
	c.apply(cur.ZoomAt(p, scale))
}

// DoubleClick zooms in around screen point p by the double-click factor,
// capped at the maximum scale.
func (c *Controller) DoubleClick(p Point) {
	cur := c.Transform()
	scale := ClampScale(cur.Scale*c.cfg.DoubleClickFactor, c.cfg.MinScale, c.cfg.MaxScale)
	next := cur.ZoomAt(p, scale)
	c.SetPanAndScale(next.TranslateX, next.TranslateY, next.Scale)
}

// Subscribe registers fn to be called after every transform change.
func (c *Controller) Subscribe(fn Observer) Subscription {
	c.nextID++
	c.observers = append(c.observers, observer{id: c.nextID, fn: fn})
	return Subscription{id: c.nextID, c: c}
}

// apply stores t and notifies observers.
func (c *Controller) apply(t Transform) {
	c.t = t
	Logger().Debug("transform applied",
		slog.Float64("tx", t.TranslateX),
		slog.Float64("ty", t.TranslateY),
		slog.Float64("scale", t.Scale))
	c.notify()
}

func (c *Controller) notify() {
	if len(c.observers) == 0 {
		return
	}
	// Observers may unsubscribe while being notified.
	for _, o := range slices.Clone(c.observers) {
		o.fn(c.t)
	}
}

// Subscription identifies a registered Observer.
type Subscription struct {
	id uint32
	c  *Controller
}

// Remove unregisters the observer. Removing twice is a no-op.
func (s Subscription) Remove() {
	if s.c == nil {
		return
	}
	s.c.observers = slices.DeleteFunc(s.c.observers, func(o observer) bool {
		return o.id == s.id
	})
}

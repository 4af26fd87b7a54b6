// Package minimap keeps an overview of the whole canvas in sync with the
// rectangles drawn on it and with the current viewport.
//
// Overview geometry is expressed in percentages of the logical canvas, so
// it is independent of the panel's on-screen size:
//
//	pct = world / canvasDimension * 100
//
// The Projector observes a panzoom.Controller and never mutates it except
// through Pan when the user clicks the overview background.
package minimap

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/panzoom"
)

// Proxy is the overview representation of one rectangle.
type Proxy struct {
	ForID     panzoom.ID
	LeftPct   float64
	TopPct    float64
	WidthPct  float64
	HeightPct float64
}

// Rect returns the proxy geometry in percentage space.
func (p Proxy) Rect() panzoom.Rect {
	return panzoom.NewRect(p.LeftPct, p.TopPct, p.WidthPct, p.HeightPct)
}

// Indicator is the visible part of the canvas, in percentages of the
// overview panel. It may extend past [0, 100] when the viewport shows area
// outside the canvas.
type Indicator struct {
	LeftPct   float64
	TopPct    float64
	WidthPct  float64
	HeightPct float64
}

// Rect returns the indicator geometry in percentage space.
func (i Indicator) Rect() panzoom.Rect {
	return panzoom.NewRect(i.LeftPct, i.TopPct, i.WidthPct, i.HeightPct)
}

// Target classifies what lies under a screen point on the overview.
type Target int

const (
	TargetOutside Target = iota
	TargetBackground
	TargetProxy
	TargetIndicator
)

func (t Target) String() string {
	switch t {
	case TargetOutside:
		return "outside"
	case TargetBackground:
		return "background"
	case TargetProxy:
		return "proxy"
	case TargetIndicator:
		return "indicator"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// Projector maintains the overview panel: one Proxy per rectangle, the
// viewport indicator, and the panel's own screen placement.
// It is not safe for concurrent use.
type Projector struct {
	ctrl   *panzoom.Controller
	canvas panzoom.Point
	newID  panzoom.IDGenerator

	proxies []*Proxy
	index   map[panzoom.ID]*Proxy

	indicator Indicator
	panel     panzoom.Rect
	sub       panzoom.Subscription

	// Until the panel is dragged it keeps cornerOffset from the
	// viewport's bottom-right corner.
	viewport     panzoom.Point
	anchored     bool
	cornerOffset panzoom.Point

	refreshPending bool
	refreshAt      time.Time
}

// NewProjector creates a projector observing ctrl. The controller must
// exist first; a nil controller yields panzoom.ErrNilController.
//
// The first indicator refresh is deferred by the configured initial delay
// and fires from Poll, so that the host's layout has settled.
func NewProjector(ctrl *panzoom.Controller, opts ...Option) (*Projector, error) {
	if ctrl == nil {
		return nil, fmt.Errorf("new projector: %w", panzoom.ErrNilController)
	}
	cfg := ctrl.Config()

	viewport := ctrl.ViewportSize()
	options := defaultOptions(cfg, viewport)
	for _, opt := range opts {
		opt(&options)
	}

	p := &Projector{
		ctrl:         ctrl,
		canvas:       panzoom.Pt(cfg.CanvasWidth, cfg.CanvasHeight),
		newID:        options.newID,
		index:        make(map[panzoom.ID]*Proxy),
		panel:        options.panel,
		viewport:     viewport,
		anchored:     true,
		cornerOffset: viewport.Sub(options.panel.Origin()),
	}
	p.sub = ctrl.Subscribe(func(panzoom.Transform) { p.onControllerChange() })
	p.refreshPending = true
	p.refreshAt = options.now().Add(options.initialDelay)
	return p, nil
}

// Close stops observing the controller.
func (p *Projector) Close() error {
	p.sub.Remove()
	p.refreshPending = false
	return nil
}

// CreateProxy registers r with the overview. A rectangle without an
// identifier gets a fresh one, shared by the rectangle and its proxy.
func (p *Projector) CreateProxy(r *panzoom.Rectangle) panzoom.ID {
	if r.ID == "" {
		r.ID = p.newID()
	}
	px, ok := p.index[r.ID]
	if !ok {
		px = &Proxy{ForID: r.ID}
		p.index[r.ID] = px
		p.proxies = append(p.proxies, px)
	}
	p.project(px, r)
	panzoom.Logger().Debug("overview proxy created", slog.String("id", string(r.ID)))
	return r.ID
}

// UpdateProxy recomputes the proxy linked to r. It reports false when r
// has no proxy.
func (p *Projector) UpdateProxy(r *panzoom.Rectangle) bool {
	px, ok := p.index[r.ID]
	if !ok {
		return false
	}
	p.project(px, r)
	return true
}

// UpdateAll recomputes the proxy of every rectangle in rects. Rectangles
// without a proxy are skipped.
func (p *Projector) UpdateAll(rects []*panzoom.Rectangle) {
	for _, r := range rects {
		p.UpdateProxy(r)
	}
}

func (p *Projector) project(px *Proxy, r *panzoom.Rectangle) {
	px.LeftPct = percent(r.Left, p.canvas.X)
	px.TopPct = percent(r.Top, p.canvas.Y)
	px.WidthPct = percent(r.Width, p.canvas.X)
	px.HeightPct = percent(r.Height, p.canvas.Y)
}

func percent(v, dim float64) float64 {
	return v / dim * 100
}

// Proxy returns a copy of the proxy for id.
func (p *Projector) Proxy(id panzoom.ID) (Proxy, bool) {
	px, ok := p.index[id]
	if !ok {
		return Proxy{}, false
	}
	return *px, true
}

// Proxies returns copies of all proxies in creation order.
func (p *Projector) Proxies() []Proxy {
	out := make([]Proxy, len(p.proxies))
	for i, px := range p.proxies {
		out[i] = *px
	}
	return out
}

// Len returns the number of proxies.
func (p *Projector) Len() int {
	return len(p.proxies)
}

func (p *Projector) onControllerChange() {
	if vp := p.ctrl.ViewportSize(); vp != p.viewport {
		p.viewport = vp
		p.fitViewport()
	}
	p.UpdateViewportIndicator()
}

// UpdateViewportIndicator recomputes the indicator from the controller's
// current transform and viewport size.
func (p *Projector) UpdateViewportIndicator() {
	t := p.ctrl.Transform()
	vp := p.ctrl.ViewportSize()
	w := p.canvas.X * t.Scale
	h := p.canvas.Y * t.Scale
	p.indicator = Indicator{
		LeftPct:   percent(-t.TranslateX, w),
		TopPct:    percent(-t.TranslateY, h),
		WidthPct:  percent(vp.X, w),
		HeightPct: percent(vp.Y, h),
	}
}

// Indicator returns the last computed viewport indicator.
func (p *Projector) Indicator() Indicator {
	return p.indicator
}

// Poll runs the deferred initial indicator refresh once now has reached
// its deadline. It reports whether the refresh ran.
func (p *Projector) Poll(now time.Time) bool {
	if !p.refreshPending || now.Before(p.refreshAt) {
		return false
	}
	p.refreshPending = false
	p.UpdateViewportIndicator()
	return true
}

// CancelInitialRefresh drops a pending deferred refresh.
func (p *Projector) CancelInitialRefresh() {
	p.refreshPending = false
}

// RefreshPending reports whether the deferred refresh has yet to run.
func (p *Projector) RefreshPending() bool {
	return p.refreshPending
}

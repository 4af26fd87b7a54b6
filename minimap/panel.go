package minimap

import (
	"log/slog"
	"slices"

	"github.com/gogpu/panzoom"
)

// Panel returns the overview panel's rectangle in screen space.
func (p *Projector) Panel() panzoom.Rect {
	return p.panel
}

// MovePanel repositions the panel by delta screen pixels. Its content is
// in percentages, so nothing else changes. A moved panel no longer
// follows the viewport's bottom-right corner on resize.
func (p *Projector) MovePanel(delta panzoom.Point) {
	p.panel = p.panel.Translate(delta)
	p.anchored = false
}

// fitViewport keeps the panel on screen after a viewport size change.
// An anchored panel is re-placed at its corner offset first.
func (p *Projector) fitViewport() {
	if p.anchored {
		origin := p.viewport.Sub(p.cornerOffset)
		p.panel = panzoom.NewRect(origin.X, origin.Y, p.panel.Width, p.panel.Height)
	}
	p.panel = p.panel.ClampInside(panzoom.NewRect(0, 0, p.viewport.X, p.viewport.Y))
	panzoom.Logger().Debug("overview panel fitted",
		slog.Float64("left", p.panel.Left),
		slog.Float64("top", p.panel.Top),
		slog.Bool("anchored", p.anchored))
}

// ToScreen maps a percentage-space rectangle onto the panel.
func (p *Projector) ToScreen(pct panzoom.Rect) panzoom.Rect {
	sx := p.panel.Width / 100
	sy := p.panel.Height / 100
	return panzoom.NewRect(
		p.panel.Left+pct.Left*sx,
		p.panel.Top+pct.Top*sy,
		pct.Width*sx,
		pct.Height*sy,
	)
}

// ToWorld maps a screen point on the panel to the canvas point it depicts.
func (p *Projector) ToWorld(s panzoom.Point) panzoom.Point {
	fx := (s.X - p.panel.Left) / p.panel.Width
	fy := (s.Y - p.panel.Top) / p.panel.Height
	return panzoom.Pt(fx*p.canvas.X, fy*p.canvas.Y)
}

// HitTest classifies screen point s. Proxies paint above the indicator,
// and the most recent proxy paints above older ones.
func (p *Projector) HitTest(s panzoom.Point) Target {
	if !p.panel.Contains(s) {
		return TargetOutside
	}
	for _, px := range slices.Backward(p.proxies) {
		if p.ToScreen(px.Rect()).Contains(s) {
			return TargetProxy
		}
	}
	if p.ToScreen(p.indicator.Rect()).Contains(s) {
		return TargetIndicator
	}
	return TargetBackground
}

// HandleClick recenters the viewport on the canvas point under s, keeping
// the current scale. Clicks on anything but the panel background are
// ignored; the return value reports whether the viewport moved.
func (p *Projector) HandleClick(s panzoom.Point, target Target) bool {
	if target != TargetBackground {
		return false
	}
	world := p.ToWorld(s)
	scale := p.ctrl.Transform().Scale
	t := p.ctrl.ViewportCenter().Sub(world.Mul(scale))
	panzoom.Logger().Debug("overview click",
		slog.Float64("world_x", world.X),
		slog.Float64("world_y", world.Y))
	// Pan notifies observers, which refreshes the indicator.
	p.ctrl.Pan(t.X, t.Y)
	return true
}
